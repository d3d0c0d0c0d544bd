package vector

import (
	"fmt"
	"strconv"

	"github.com/viant/parsly"
)

// ParseVector parses a resource vector literal. Values are separated by
// whitespace or commas and may be enclosed in square brackets:
// "1 0 2", "1,0,2" and "[1, 0, 2]" are equivalent.
func ParseVector(input string) ([]int, error) {
	p := newParser(input)
	var ret []int
	var err error
	if p.cursor.MatchAfterOptional(whitespaceToken, openSquareBracketToken).Code == openSquareBracketCode {
		ret, err = p.bracketed()
	} else {
		ret, _, err = p.values()
	}
	if err == nil {
		err = p.end()
	}
	if err != nil {
		return nil, fmt.Errorf("invalid vector %q: %w", input, err)
	}
	if len(ret) == 0 {
		return nil, fmt.Errorf("invalid vector %q: no values", input)
	}
	return ret, nil
}

// ParseMatrix parses a matrix literal, either nested brackets
// "[[0,1,0],[2,0,0]]" or rows separated by semicolons "0 1 0; 2 0 0".
// Rows must not be empty; their lengths are not checked here.
func ParseMatrix(input string) ([][]int, error) {
	p := newParser(input)
	var ret [][]int
	var err error
	if p.cursor.MatchAfterOptional(whitespaceToken, openSquareBracketToken).Code == openSquareBracketCode {
		ret, err = p.nested()
	} else {
		ret, err = p.rows()
	}
	if err != nil {
		return nil, fmt.Errorf("invalid matrix %q: %w", input, err)
	}
	if len(ret) == 0 {
		return nil, fmt.Errorf("invalid matrix %q: no rows", input)
	}
	for i, row := range ret {
		if len(row) == 0 {
			return nil, fmt.Errorf("invalid matrix %q: row %d is empty", input, i)
		}
	}
	return ret, nil
}

type parser struct {
	cursor *parsly.Cursor
}

func newParser(input string) *parser {
	return &parser{cursor: parsly.NewCursor("", []byte(input), 0)}
}

// values reads integers up to EOF or one of the stop tokens and returns the
// code that ended the sequence.
func (p *parser) values(stop ...*parsly.Token) ([]int, int, error) {
	candidates := append([]*parsly.Token{integerToken, commaToken}, stop...)
	var ret []int
	separated := false
	for {
		matched := p.cursor.MatchAfterOptional(whitespaceToken, candidates...)
		switch matched.Code {
		case integerCode:
			value, err := strconv.Atoi(matched.Text(p.cursor))
			if err != nil {
				return nil, 0, err
			}
			ret = append(ret, value)
			separated = false
		case commaCode:
			if len(ret) == 0 || separated {
				return nil, 0, p.cursor.NewError(integerToken)
			}
			separated = true
		case parsly.EOF:
			if separated {
				return nil, 0, p.cursor.NewError(integerToken)
			}
			return ret, parsly.EOF, nil
		default:
			for _, token := range stop {
				if matched.Code == token.Code {
					if separated {
						return nil, 0, p.cursor.NewError(integerToken)
					}
					return ret, matched.Code, nil
				}
			}
			return nil, 0, p.cursor.NewError(candidates...)
		}
	}
}

// bracketed reads values after '[' up to the matching ']'.
func (p *parser) bracketed() ([]int, error) {
	ret, code, err := p.values(closeSquareBracketToken)
	if err != nil {
		return nil, err
	}
	if code != closeSquareBracketCode {
		return nil, p.cursor.NewError(closeSquareBracketToken)
	}
	return ret, nil
}

// nested reads bracketed rows after the outer '['. Commas between rows are
// optional.
func (p *parser) nested() ([][]int, error) {
	var ret [][]int
	separated := true
	for {
		matched := p.cursor.MatchAfterOptional(whitespaceToken, openSquareBracketToken, commaToken, closeSquareBracketToken)
		switch matched.Code {
		case openSquareBracketCode:
			row, err := p.bracketed()
			if err != nil {
				return nil, err
			}
			ret = append(ret, row)
			separated = false
		case commaCode:
			if separated {
				return nil, p.cursor.NewError(openSquareBracketToken)
			}
			separated = true
		case closeSquareBracketCode:
			return ret, p.end()
		default:
			return nil, p.cursor.NewError(openSquareBracketToken, closeSquareBracketToken)
		}
	}
}

func (p *parser) rows() ([][]int, error) {
	var ret [][]int
	for {
		row, code, err := p.values(semicolonToken)
		if err != nil {
			return nil, err
		}
		ret = append(ret, row)
		if code == parsly.EOF {
			return ret, nil
		}
	}
}

// end fails unless only whitespace remains.
func (p *parser) end() error {
	p.cursor.MatchOne(whitespaceToken)
	if p.cursor.HasMore() {
		return fmt.Errorf("unexpected input at position %d", p.cursor.Pos)
	}
	return nil
}
