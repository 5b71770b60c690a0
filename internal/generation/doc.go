// Package generation defines the interface for producing mnemonic hints
// with an external AI service. It keeps the quiz engine decoupled from the
// Gemini integration in internal/platform/gemini.
package generation
