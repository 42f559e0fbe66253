// Package markdown extracts Mermaid diagrams from fenced code blocks.
package markdown

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Language is the fence info string that marks a diagram block.
const Language = "mermaid"

// ErrNoDiagramBlock indicates the document has no block at the requested index.
var ErrNoDiagramBlock = errors.New("no mermaid block found")

// parser is stateless after construction and safe for concurrent use.
var parser = goldmark.New().Parser()

// ExtractDiagrams returns the body of every ```mermaid block, in document
// order. Block bodies keep their line endings.
func ExtractDiagrams(source []byte) [][]byte {
	doc := parser.Parse(text.NewReader(source))

	var diagrams [][]byte
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		block, ok := n.(*ast.FencedCodeBlock)
		if !ok || string(block.Language(source)) != Language {
			return ast.WalkContinue, nil
		}

		var buf bytes.Buffer
		lines := block.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(source))
		}
		diagrams = append(diagrams, buf.Bytes())
		return ast.WalkSkipChildren, nil
	})
	return diagrams
}

// ExtractDiagram returns the index-th (0-based) mermaid block.
func ExtractDiagram(source []byte, index int) ([]byte, error) {
	diagrams := ExtractDiagrams(source)
	if index < 0 || index >= len(diagrams) {
		return nil, fmt.Errorf("%w: block %d (document has %d)", ErrNoDiagramBlock, index, len(diagrams))
	}
	return diagrams[index], nil
}
