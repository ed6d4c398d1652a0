package parse

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/matchembeds/intern"
	"github.com/katalvlaran/matchembeds/structure"
)

// Sentinel errors for malformed input. Parse errors are wrapped with
// context via fmt.Errorf at the point of discovery (only the
// unterminated-quote error names a line number); callers should match
// against these with errors.Is.
var (
	// ErrUnexpectedToken indicates a token appeared where the grammar
	// forbids it (e.g. a ')' with no matching '(').
	ErrUnexpectedToken = errors.New("parse: unexpected token")

	// ErrUnexpectedEOF indicates the input ended inside a quoted symbol.
	// Input that ends anywhere else mid-structure is reported as
	// ErrUnexpectedToken.
	ErrUnexpectedEOF = errors.New("parse: unexpected end of input")
)

// parser consumes a token stream with one token of lookahead.
type parser struct {
	lex        *lexer
	predicates *intern.Table

	tok token
}

func newParser(lex *lexer, predicates *intern.Table) (*parser, error) {
	p := &parser{lex: lex, predicates: predicates}
	if err := p.advance(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok

	return nil
}

func (p *parser) expect(kind tokenKind, what string) error {
	if p.tok.kind != kind {
		return fmt.Errorf("parse: expected %s, got token kind %d: %w", what, p.tok.kind, ErrUnexpectedToken)
	}

	return p.advance()
}

// parseStructure parses one '{' prop (',' prop)* '}' block. Element
// names are interned into a fresh, structure-local table (each structure
// has its own universe), while predicate names are interned into the
// parser's shared table, so the same predicate symbol denotes the same
// predicate index in both structures of a file.
func (p *parser) parseStructure() (structure.Structure, error) {
	elements := intern.New()

	if err := p.expect(tokLBrace, "'{'"); err != nil {
		return structure.Structure{}, err
	}

	var tuples []structure.Tuple
	if p.tok.kind != tokRBrace {
		for {
			tup, err := p.parseProp(elements)
			if err != nil {
				return structure.Structure{}, err
			}
			tuples = append(tuples, tup)

			if p.tok.kind != tokComma {
				break
			}
			if err := p.advance(); err != nil {
				return structure.Structure{}, err
			}
		}
	}

	if err := p.expect(tokRBrace, "'}'"); err != nil {
		return structure.Structure{}, err
	}

	return structure.New(elements.ElementCount(), tuples)
}

// parseProp parses one `symbol` or `symbol '(' arg (',' arg)* ')'`.
func (p *parser) parseProp(elements *intern.Table) (structure.Tuple, error) {
	if p.tok.kind != tokIdent {
		return structure.Tuple{}, fmt.Errorf("parse: expected predicate symbol: %w", ErrUnexpectedToken)
	}
	pred := p.predicates.Predicate(p.tok.text)
	if err := p.advance(); err != nil {
		return structure.Tuple{}, err
	}

	if p.tok.kind != tokLParen {
		return structure.Tuple{Pred: pred, Args: nil}, nil
	}
	if err := p.advance(); err != nil {
		return structure.Tuple{}, err
	}

	var args []int
	for {
		if p.tok.kind != tokIdent {
			return structure.Tuple{}, fmt.Errorf("parse: expected argument symbol: %w", ErrUnexpectedToken)
		}
		args = append(args, elements.Element(p.tok.text))
		if err := p.advance(); err != nil {
			return structure.Tuple{}, err
		}
		if p.tok.kind != tokComma {
			break
		}
		if err := p.advance(); err != nil {
			return structure.Tuple{}, err
		}
	}

	if err := p.expect(tokRParen, "')'"); err != nil {
		return structure.Tuple{}, err
	}

	return structure.Tuple{Pred: pred, Args: args}, nil
}

// ReadPair parses exactly two back-to-back structures from r, sharing
// one predicate namespace between them (so the same predicate name
// denotes the same predicate index in both) while giving each structure
// its own element namespace (each has its own, independently sized,
// universe).
func ReadPair(r io.Reader, predicates *intern.Table) (structure.Structure, structure.Structure, error) {
	p, err := newParser(newLexer(r), predicates)
	if err != nil {
		return structure.Structure{}, structure.Structure{}, err
	}

	a, err := p.parseStructure()
	if err != nil {
		return structure.Structure{}, structure.Structure{}, fmt.Errorf("parse: reading first structure: %w", err)
	}

	b, err := p.parseStructure()
	if err != nil {
		return structure.Structure{}, structure.Structure{}, fmt.Errorf("parse: reading second structure: %w", err)
	}

	if p.tok.kind != tokEOF {
		return structure.Structure{}, structure.Structure{}, fmt.Errorf("parse: trailing input after second structure: %w", ErrUnexpectedToken)
	}

	return a, b, nil
}
