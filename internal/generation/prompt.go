package generation

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/phrazzld/wonderwords/internal/domain"
)

//go:embed prompts/word_explorer.tmpl
var defaultPromptTemplate string

// promptData represents the data passed to the prompt template
type promptData struct {
	Word string
}

// PromptBuilder renders the instruction prompt for a word.
// Building a prompt is a pure function of the word.
type PromptBuilder struct {
	tmpl *template.Template
}

// NewPromptBuilder parses templateText. An empty templateText selects the
// embedded default template.
func NewPromptBuilder(templateText string) (*PromptBuilder, error) {
	if strings.TrimSpace(templateText) == "" {
		templateText = defaultPromptTemplate
	}

	tmpl, err := template.New("word_explorer").Option("missingkey=error").Parse(templateText)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", ErrInvalidConfig, err)
	}

	return &PromptBuilder{tmpl: tmpl}, nil
}

// NewPromptBuilderFromFile loads the template from path, or uses the
// embedded default when path is empty.
func NewPromptBuilderFromFile(path string) (*PromptBuilder, error) {
	if path == "" {
		return NewPromptBuilder("")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
			ErrInvalidConfig, path, err)
	}

	return NewPromptBuilder(string(content))
}

// Build returns the prompt for word. word is expected to be normalized
// already; a blank word is rejected.
func (b *PromptBuilder) Build(word string) (string, error) {
	if strings.TrimSpace(word) == "" {
		return "", domain.ErrEmptyInput
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, promptData{Word: word}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), nil
}
