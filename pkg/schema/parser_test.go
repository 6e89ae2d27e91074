package schema_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/schema"
)

func TestYAMLParser(t *testing.T) {
	p := schema.NewYAMLParser()

	t.Run("parses forms", func(t *testing.T) {
		doc, err := p.Parse(context.Background(), []byte(`
forms:
  signup:
    fields:
      - name: username
        rules:
          - type: length
            min: 3
            max: 16
`))
		require.NoError(t, err)
		require.Contains(t, doc.Forms, "signup")

		field := doc.Forms["signup"].Fields[0]
		assert.Equal(t, "username", field.Name)
		require.Len(t, field.Rules, 1)
		assert.Equal(t, "length", field.Rules[0].Type)
		assert.Equal(t, 3, field.Rules[0].Min)
		require.NotNil(t, field.Rules[0].Max)
		assert.Equal(t, 16, *field.Rules[0].Max)
	})

	t.Run("rejects malformed content", func(t *testing.T) {
		_, err := p.Parse(context.Background(), []byte("forms: [unclosed"))
		assert.ErrorIs(t, err, schema.ErrFailedToParseYAML)
	})

	t.Run("honours cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Parse(ctx, []byte("forms: {}"))
		assert.ErrorIs(t, err, schema.ErrParsingCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("supports extensions", func(t *testing.T) {
		assert.True(t, p.SupportsFileExtension(".yaml"))
		assert.True(t, p.SupportsFileExtension("YML"))
		assert.False(t, p.SupportsFileExtension("json"))
	})
}

func TestJSONParser(t *testing.T) {
	p := schema.NewJSONParser()

	t.Run("parses forms", func(t *testing.T) {
		doc, err := p.Parse(context.Background(), []byte(`{"forms":{"login":{"fields":[{"name":"email","rules":[{"type":"is-required"}]}]}}}`))
		require.NoError(t, err)
		assert.Equal(t, "is-required", doc.Forms["login"].Fields[0].Rules[0].Type)
	})

	t.Run("rejects malformed content", func(t *testing.T) {
		_, err := p.Parse(context.Background(), []byte(`{"forms":`))
		assert.ErrorIs(t, err, schema.ErrFailedToParseJSON)
	})

	t.Run("supports extensions", func(t *testing.T) {
		assert.True(t, p.SupportsFileExtension(".json"))
		assert.False(t, p.SupportsFileExtension("yaml"))
	})
}

func TestLoadFile(t *testing.T) {
	ctx := context.Background()

	t.Run("loads yaml", func(t *testing.T) {
		doc, err := schema.LoadFile(ctx, "testdata/forms.yaml")
		require.NoError(t, err)
		assert.Len(t, doc.Forms, 2)
	})

	t.Run("loads json", func(t *testing.T) {
		doc, err := schema.LoadFile(ctx, "testdata/forms.json")
		require.NoError(t, err)
		assert.Len(t, doc.Forms["login"].Fields, 2)
	})

	t.Run("rejects unknown extension", func(t *testing.T) {
		_, err := schema.LoadFile(ctx, "testdata/forms.toml")
		assert.ErrorIs(t, err, schema.ErrUnsupportedFormat)
	})

	t.Run("reports missing file", func(t *testing.T) {
		_, err := schema.LoadFile(ctx, "testdata/missing.yaml")
		assert.ErrorIs(t, err, schema.ErrFailedToReadFile)
	})
}
