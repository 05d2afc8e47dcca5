package generation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/phrazzld/wonderwords/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptBuilder_DefaultTemplate(t *testing.T) {
	t.Parallel()

	builder, err := NewPromptBuilder("")
	require.NoError(t, err)

	prompt, err := builder.Build("happy")
	require.NoError(t, err)

	assert.Contains(t, prompt, `"happy"`)
	for _, key := range []string{`"meaning"`, `"opposites"`, `"similar_words"`, `"sentences"`, `"image_prompt"`} {
		assert.Contains(t, prompt, key, "prompt should describe the %s key", key)
	}
	assert.Contains(t, prompt, "three opposite words")
	assert.Contains(t, prompt, "three similar words")
	assert.Contains(t, prompt, "5 to 6 words")
	assert.Contains(t, prompt, "ONLY with pure JSON")
}

func TestPromptBuilder_Deterministic(t *testing.T) {
	t.Parallel()

	builder, err := NewPromptBuilder("")
	require.NoError(t, err)

	first, err := builder.Build("brave")
	require.NoError(t, err)
	second, err := builder.Build("brave")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPromptBuilder_EmptyWord(t *testing.T) {
	t.Parallel()

	builder, err := NewPromptBuilder("")
	require.NoError(t, err)

	for _, word := range []string{"", "   "} {
		_, err := builder.Build(word)
		assert.ErrorIs(t, err, domain.ErrEmptyInput)
	}
}

func TestPromptBuilder_NoHTMLEscaping(t *testing.T) {
	t.Parallel()

	builder, err := NewPromptBuilder("Word: {{.Word}}")
	require.NoError(t, err)

	prompt, err := builder.Build("don't")
	require.NoError(t, err)
	assert.Equal(t, "Word: don't", prompt)
}

func TestPromptBuilder_InvalidTemplate(t *testing.T) {
	t.Parallel()

	_, err := NewPromptBuilder("{{.Word")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestPromptBuilder_UnknownField(t *testing.T) {
	t.Parallel()

	builder, err := NewPromptBuilder("{{.Missing}}")
	require.NoError(t, err)

	_, err = builder.Build("happy")
	assert.Error(t, err)
}

func TestNewPromptBuilderFromFile(t *testing.T) {
	t.Parallel()

	t.Run("custom template", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prompt.tmpl")
		require.NoError(t, os.WriteFile(path, []byte("Explain {{.Word}} as JSON."), 0o600))

		builder, err := NewPromptBuilderFromFile(path)
		require.NoError(t, err)

		prompt, err := builder.Build("kind")
		require.NoError(t, err)
		assert.Equal(t, "Explain kind as JSON.", prompt)
	})

	t.Run("empty path uses default", func(t *testing.T) {
		builder, err := NewPromptBuilderFromFile("")
		require.NoError(t, err)

		prompt, err := builder.Build("kind")
		require.NoError(t, err)
		assert.Contains(t, prompt, `For the word "kind"`)
		assert.Contains(t, prompt, "pure JSON")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewPromptBuilderFromFile(filepath.Join(t.TempDir(), "nope.tmpl"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}
