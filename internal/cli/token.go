package cli

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type TokenKind int

const (
	TokenCommand TokenKind = iota
	TokenName
	TokenNumber
	TokenList
)

func (k TokenKind) String() string {
	switch k {
	case TokenCommand:
		return "command"
	case TokenName:
		return "name"
	case TokenNumber:
		return "number"
	case TokenList:
		return "list"
	}
	return "unknown"
}

// Token is one element of a command line. Text holds the lower-cased keyword
// of a command or the unquoted text of a name.
type Token struct {
	Kind   TokenKind
	Text   string
	Number float64
	List   []string
}

/*
splitInput breaks a line into words and comma separated lists.
A word containing a comma opens a list, the list ends with the first
following word that has no comma:

	a, b, c d  ->  [a b c] d
*/
func splitInput(line string) []any {
	var out []any
	var list []string
	inList := false

	for _, word := range strings.Fields(line) {
		switch {
		case strings.Contains(word, ","):
			inList = true
			for _, part := range strings.Split(word, ",") {
				if part != "" {
					list = append(list, part)
				}
			}
		case inList:
			list = append(list, word)
			out = append(out, list)
			list, inList = nil, false
		default:
			out = append(out, word)
		}
	}
	if inList {
		out = append(out, list)
	}
	return out
}

func isQuoted(word string) bool {
	return len(word) >= 2 && strings.HasPrefix(word, `"`) && strings.HasSuffix(word, `"`)
}

// Tokenize classifies every word of line. Bare words must be known command
// keywords, matched case-insensitively.
func Tokenize(line string) ([]Token, error) {
	var tokens []Token
	for _, w := range splitInput(line) {
		if list, ok := w.([]string); ok {
			tokens = append(tokens, Token{Kind: TokenList, List: list})
			continue
		}

		word := w.(string)
		if f, err := strconv.ParseFloat(word, 64); err == nil {
			tokens = append(tokens, Token{Kind: TokenNumber, Text: word, Number: f})
			continue
		}
		if isQuoted(word) {
			tokens = append(tokens, Token{Kind: TokenName, Text: word[1 : len(word)-1]})
			continue
		}
		keyword := strings.ToLower(word)
		if _, ok := commands[keyword]; !ok {
			return nil, errors.Errorf("invalid command %s", word)
		}
		tokens = append(tokens, Token{Kind: TokenCommand, Text: keyword})
	}
	return tokens, nil
}
