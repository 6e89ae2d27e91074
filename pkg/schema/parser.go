package schema

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes schema content of one file format.
type Parser interface {
	Parse(ctx context.Context, content []byte) (Document, error)

	// SupportsFileExtension accepts extensions with or without a leading dot.
	SupportsFileExtension(ext string) bool
}

type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(ctx context.Context, content []byte) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, errors.Join(ErrParsingCancelled, err)
	}

	var doc Document
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return Document{}, errors.Join(ErrFailedToParseYAML, err)
	}
	return doc, nil
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) Parse(ctx context.Context, content []byte) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, errors.Join(ErrParsingCancelled, err)
	}

	var doc Document
	if err := json.Unmarshal(content, &doc); err != nil {
		return Document{}, errors.Join(ErrFailedToParseJSON, err)
	}
	return doc, nil
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

// NewParserForFile picks a parser by file extension, or returns nil.
func NewParserForFile(filename string) Parser {
	ext := filepath.Ext(filename)
	for _, p := range []Parser{NewYAMLParser(), NewJSONParser()} {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// LoadFile reads and parses a schema file, choosing the parser by extension.
func LoadFile(ctx context.Context, path string) (Document, error) {
	parser := NewParserForFile(path)
	if parser == nil {
		return Document{}, errors.Join(ErrUnsupportedFormat, errors.New(path))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Document{}, errors.Join(ErrFailedToReadFile, err)
	}

	return parser.Parse(ctx, content)
}
