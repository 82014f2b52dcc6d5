package sexpr

import "fmt"

// Parse reads one tree from the input text. Trailing whitespace is allowed;
// any other trailing content is a *SyntaxError.
func Parse(input string) (Node, error) {
	p := &parser{lex: newLexer(input)}
	if err := p.advance(); err != nil {
		return Node{}, err
	}

	node, err := p.parseNode()
	if err != nil {
		return Node{}, err
	}

	if p.tok.typ != tokenEOF {
		return Node{}, &SyntaxError{
			Message: fmt.Sprintf("trailing content %q after tree", p.tok.value),
			Pos:     p.tok.pos,
		}
	}

	return node, nil
}

type parser struct {
	lex *lexer
	tok token
}

// advance pulls the next token from the lexer.
func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// parseNode parses one node starting at the current token.
func (p *parser) parseNode() (Node, error) {
	switch p.tok.typ {
	case tokenLParen:
		return p.parseList()

	case tokenString:
		node := Str(p.tok.value)
		if err := p.advance(); err != nil {
			return Node{}, err
		}
		return node, nil

	case tokenAtom:
		node := classifyAtom(p.tok.value)
		if err := p.advance(); err != nil {
			return Node{}, err
		}
		return node, nil

	case tokenRParen:
		return Node{}, &SyntaxError{Message: "unexpected )", Pos: p.tok.pos}

	default:
		return Node{}, &SyntaxError{Message: "unexpected end of input", Pos: p.tok.pos}
	}
}

// parseList parses ( node... ) starting at the opening parenthesis.
func (p *parser) parseList() (Node, error) {
	open := p.tok.pos
	if err := p.advance(); err != nil { // consume (
		return Node{}, err
	}

	var children []Node
	for {
		switch p.tok.typ {
		case tokenRParen:
			if err := p.advance(); err != nil {
				return Node{}, err
			}
			return List(children...), nil

		case tokenEOF:
			return Node{}, &SyntaxError{Message: "unterminated list", Pos: open}

		default:
			child, err := p.parseNode()
			if err != nil {
				return Node{}, err
			}
			children = append(children, child)
		}
	}
}
