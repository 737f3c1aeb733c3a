// Package cssparse reads type scale custom properties back out of a
// stylesheet produced by typescale (or edited by hand afterwards).
package cssparse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Property is a custom property declaration found in a stylesheet.
type Property struct {
	Name   string // "--font-size-h1"
	Value  string // "5.5rem", whitespace trimmed
	Line   int    // 1-based
	Column int    // 1-based, start of Name
}

// Sheet holds the custom properties of one stylesheet in source order.
// A property declared twice keeps its last value, like the cascade would.
type Sheet struct {
	Filename   string
	Properties []Property

	index map[string]int
	lines []string
}

// Line returns source line n (1-based), or "" when out of range.
func (s *Sheet) Line(n int) string {
	if n < 1 || n > len(s.lines) {
		return ""
	}
	return s.lines[n-1]
}

// Lookup returns the property with the given name.
func (s *Sheet) Lookup(name string) (Property, bool) {
	i, ok := s.index[name]
	if !ok {
		return Property{}, false
	}
	return s.Properties[i], true
}

func (s *Sheet) add(p Property) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[p.Name]; ok {
		s.Properties[i] = p
		return
	}
	s.index[p.Name] = len(s.Properties)
	s.Properties = append(s.Properties, p)
}

// Parser extracts custom properties from CSS.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new parser. A nil logger discards output.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("cssparse")}
}

// Parse is a convenience wrapper around (*Parser).Parse without logging.
func Parse(data []byte, filename string) (*Sheet, error) {
	return NewParser(nil).Parse(data, filename)
}

// ParseFile reads and parses a stylesheet from disk.
func (p *Parser) ParseFile(path string) (*Sheet, error) {
	// #nosec G304 - path comes from the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return p.Parse(data, path)
}

// Parse collects every custom property declared in data, including those
// nested in at-rule blocks such as @theme or @media.
func (p *Parser) Parse(data []byte, filename string) (*Sheet, error) {
	sheet := &Sheet{Filename: filename, lines: strings.Split(string(data), "\n")}
	p.log.Debug("Parsing stylesheet", zap.String("file", filename), zap.Int("bytes", len(data)))

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	loc := locator{data: data}

	// Blocks of at-rules the parser does not know (@theme) arrive as raw
	// tokens; pending accumulates a declaration across them.
	var (
		pending   *Property
		seenColon bool
		value     strings.Builder
	)
	flush := func() {
		if pending != nil {
			pending.Value = strings.TrimSpace(value.String())
			sheet.add(*pending)
		}
		pending = nil
		seenColon = false
		value.Reset()
	}

	for {
		gt, tt, text := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			flush()
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%s: %w", filename, err)
			}
			p.log.Debug("Parsed stylesheet", zap.String("file", filename), zap.Int("properties", len(sheet.Properties)))
			return sheet, nil

		case css.CustomPropertyGrammar:
			flush()
			prop := loc.property(text)
			prop.Value = tokensString(parser.Values())
			sheet.add(prop)

		case css.TokenGrammar:
			switch {
			case tt == css.CustomPropertyNameToken:
				flush()
				prop := loc.property(text)
				pending = &prop
			case pending == nil:
			case tt == css.SemicolonToken:
				flush()
			case !seenColon:
				seenColon = tt == css.ColonToken
			default:
				value.Write(text)
			}

		default:
			flush()
		}
	}
}

// locator finds declaration positions by searching forward from the
// previous match, so a name repeated in the source resolves to the right
// occurrence.
type locator struct {
	data   []byte
	cursor int
}

func (l *locator) property(name []byte) Property {
	offset := l.cursor
	if i := bytes.Index(l.data[l.cursor:], name); i >= 0 {
		offset = l.cursor + i
		l.cursor = offset + len(name)
	}
	line, col, _ := parse.Position(bytes.NewReader(l.data), offset)
	return Property{Name: string(name), Line: line, Column: col}
}

// tokensString joins token data and trims surrounding whitespace.
func tokensString(tokens []css.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.Write(t.Data)
	}
	return strings.TrimSpace(sb.String())
}
