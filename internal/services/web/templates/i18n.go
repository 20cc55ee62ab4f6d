package templates

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for web templates.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// DefaultLocalizer returns the English printer used when no locale
// negotiation happened. Untranslated keys pass through unchanged.
func DefaultLocalizer() Localizer {
	return message.NewPrinter(language.AmericanEnglish)
}

// T returns a translated string or a key-derived fallback.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	if keyString, ok := key.(string); ok {
		if len(args) > 0 {
			return fmt.Sprintf(keyString, args...)
		}
		return keyString
	}
	return ""
}
