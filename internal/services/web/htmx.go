package web

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// htmxRequestHeader is the HTMX request header used to detect partial updates.
const htmxRequestHeader = "HX-Request"

// isHTMXRequest reports whether the request was initiated by HTMX.
func isHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(htmxRequestHeader), "true")
}

// writeComponent buffers a templ component render so partial failures never
// leak half a fragment to the client.
func writeComponent(w http.ResponseWriter, r *http.Request, statusCode int, component templ.Component) error {
	var buf bytes.Buffer
	if err := component.Render(r.Context(), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err := w.Write(buf.Bytes())
	return err
}
