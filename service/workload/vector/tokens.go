package vector

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes start at 1 so they never clash with parsly.EOF.
const (
	whitespaceCode = iota + 1
	integerCode
	commaCode
	semicolonCode
	openSquareBracketCode
	closeSquareBracketCode
)

var (
	whitespaceToken         = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	integerToken            = parsly.NewToken(integerCode, "Integer", newIntegerMatcher())
	commaToken              = parsly.NewToken(commaCode, ",", matcher.NewByte(','))
	semicolonToken          = parsly.NewToken(semicolonCode, ";", matcher.NewByte(';'))
	openSquareBracketToken  = parsly.NewToken(openSquareBracketCode, "[", matcher.NewByte('['))
	closeSquareBracketToken = parsly.NewToken(closeSquareBracketCode, "]", matcher.NewByte(']'))
)

func newIntegerMatcher() parsly.Matcher {
	return &integerMatcher{}
}

// integerMatcher matches an optionally signed decimal integer.
type integerMatcher struct{}

func (m *integerMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	i := pos
	if i < size && input[i] == '-' {
		i++
	}
	digits := i
	for i < size && isDigit(input[i]) {
		i++
	}
	if i == digits {
		return 0
	}
	return i - pos
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
