// Package parse builds stylesheet trees from CSS source using the
// tree-sitter CSS grammar.
package parse

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/css"

	"github.com/jacoelho/cssq/internal/css/ast"
)

var (
	ErrTooLarge = errors.New("parse: input too large")
	ErrEncoding = errors.New("parse: input is not valid UTF-8")
	ErrSyntax   = errors.New("parse: syntax error")
)

// DefaultMaxSize is the largest input accepted unless overridden.
const DefaultMaxSize = 10 * 1024 * 1024

// Options configures a Parser.
type Options struct {
	// MaxSize is the maximum input size in bytes.
	MaxSize int

	// Strict rejects input the grammar could only parse with error recovery.
	// Otherwise unparseable regions are skipped.
	Strict bool
}

func DefaultOptions() Options {
	return Options{
		MaxSize: DefaultMaxSize,
	}
}

type Option func(*Options)

func WithMaxSize(size int) Option {
	return func(o *Options) {
		if size > 0 {
			o.MaxSize = size
		}
	}
}

func WithStrict(strict bool) Option {
	return func(o *Options) {
		o.Strict = strict
	}
}

// Parser is safe for concurrent use; each call gets its own tree-sitter
// parser instance.
type Parser struct {
	options Options
}

func NewParser(opts ...Option) *Parser {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Parser{options: options}
}

// Parse is shorthand for NewParser(opts...).Parse(ctx, src).
func Parse(ctx context.Context, src []byte, opts ...Option) (*ast.Node, error) {
	return NewParser(opts...).Parse(ctx, src)
}

// Parse returns the finalized style-sheet node for src.
func (p *Parser) Parse(ctx context.Context, src []byte) (*ast.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse canceled before start: %w", err)
	}
	if len(src) > p.options.MaxSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", ErrTooLarge, len(src), p.options.MaxSize)
	}
	if !utf8.Valid(src) {
		return nil, ErrEncoding
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(css.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if p.options.Strict && root.HasError() {
		line, col := firstError(root)
		return nil, fmt.Errorf("%w at %d:%d", ErrSyntax, line, col)
	}

	b := &builder{src: src}
	sheet := b.stylesheet(root)
	ast.Finalize(sheet)
	return sheet, nil
}

// firstError locates the first ERROR or missing node, 1-based.
func firstError(n *sitter.Node) (int, int) {
	if n.IsError() || n.IsMissing() {
		return int(n.StartPoint().Row) + 1, int(n.StartPoint().Column) + 1
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.HasError() || child.IsError() || child.IsMissing() {
			return firstError(child)
		}
	}
	return int(n.StartPoint().Row) + 1, int(n.StartPoint().Column) + 1
}
