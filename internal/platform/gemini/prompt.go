package gemini

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/mkurosawa/kotoba-api/internal/domain"
)

// defaultPromptTemplate asks for a short, vivid mnemonic as structured JSON.
// The response schema passed to the API enforces the same shape.
const defaultPromptTemplate = `You are helping a beginner learn Japanese.
The learner just answered incorrectly for the {{.Category}} item "{{.DisplayForm}}",
whose correct answer is "{{.Answer}}".

Write a short, vivid mnemonic that links the appearance or sound of
"{{.DisplayForm}}" to "{{.Answer}}", plus one simple example sentence in
Japanese using it and its English translation.

Respond with JSON only:
{"mnemonic": "...", "example_sentence": "...", "translation": "..."}`

// promptData is the template input for one mnemonic request.
type promptData struct {
	DisplayForm string
	Category    string
	Answer      string
}

// mnemonicSchema is the expected JSON shape of the model response.
type mnemonicSchema struct {
	Mnemonic        string `json:"mnemonic"`
	ExampleSentence string `json:"example_sentence,omitempty"`
	Translation     string `json:"translation,omitempty"`
}

func buildPrompt(tmpl *template.Template, item domain.LearnableItem) (string, error) {
	data := promptData{
		DisplayForm: item.DisplayForm,
		Category:    string(item.Category),
		Answer:      item.ExpectedAnswer(),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}
