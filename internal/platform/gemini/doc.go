// Package gemini implements the generation.Generator interface using
// Google's Gemini API to produce mnemonic hints for learnable items.
package gemini
