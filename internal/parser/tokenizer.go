package parser

import (
	"unicode"
)

type TokenKind int

const (
	Keyword TokenKind = iota + 1
	Word
)

// Token is a whitespace separated chunk of a command line
type Token struct {
	Kind  TokenKind
	Value string
	Pos   int // byte offset in the line
}

var keywords = map[string]struct{}{
	"insert": {},
	"select": {},
}

// Tokenize splits a line on whitespace, keywords are matched case sensitively
func Tokenize(line string) []Token {
	var (
		tokens []Token
		start  = -1
	)
	for i, r := range line {
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, newToken(line[start:i], start))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, newToken(line[start:], start))
	}
	return tokens
}

func newToken(value string, pos int) Token {
	kind := Word
	if _, ok := keywords[value]; ok {
		kind = Keyword
	}
	return Token{Kind: kind, Value: value, Pos: pos}
}
