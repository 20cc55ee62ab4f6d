// Package ai wraps the completion provider used to generate recipe text.
//
// Handlers depend on the Client interface only; the OpenAI-backed
// implementation is selected at wiring time so tests can substitute fakes.
package ai
