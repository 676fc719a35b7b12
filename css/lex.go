package css

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

func lexer(s string) *css.Lexer {
	return css.NewLexer(parse.NewInputString(s))
}

// Tokenize splits a property value into its top-level, whitespace separated
// components. Functional notation is kept in one piece, with inner whitespace
// collapsed to single blanks:
//
//	Tokenize("1px  solid rgb(1,  2, 3)")  // => ["1px", "solid", "rgb(1, 2, 3)"]
//
// Comments are dropped.
func Tokenize(value string) []string {
	l := lexer(value)
	var tokens []string
	var b strings.Builder
	depth := 0
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			flush()
			return tokens
		case css.CommentToken:
			continue
		case css.WhitespaceToken:
			if depth == 0 {
				flush()
			} else {
				b.WriteByte(' ')
			}
			continue
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			if depth > 0 {
				depth--
			}
		}
		b.Write(data)
	}
}

// functionArgs decomposes a functional notation token like "rgb(1, 2, 3)"
// into its lower case name and its arguments. Arguments may be separated by
// commas, whitespace or '/'; seps[i] is the separator between args[i] and
// args[i+1], with ' ' for plain whitespace. Empty arguments are not
// admitted. The function must span the complete token.
func functionArgs(token string) (name string, args []string, seps []byte, ok bool) {
	l := lexer(strings.TrimSpace(token))
	tt, data := l.Next()
	if tt != css.FunctionToken {
		return "", nil, nil, false
	}
	name = strings.ToLower(strings.TrimSuffix(string(data), "("))
	var b strings.Builder
	var sep byte
	depth := 1
	flush := func() {
		if b.Len() > 0 {
			if len(args) > 0 {
				seps = append(seps, sep)
			}
			args = append(args, b.String())
			b.Reset()
			sep = 0
		}
	}
	separator := func(c byte) bool {
		flush()
		if c == ' ' {
			if sep == 0 {
				sep = ' '
			}
			return true
		}
		if len(args) == 0 || (sep != 0 && sep != ' ') {
			return false // empty argument
		}
		sep = c
		return true
	}
	for depth > 0 {
		tt, data = l.Next()
		switch tt {
		case css.ErrorToken:
			return "", nil, nil, false // unbalanced
		case css.CommentToken:
			continue
		case css.WhitespaceToken:
			if depth == 1 {
				separator(' ')
				continue
			}
		case css.CommaToken:
			if depth == 1 {
				if !separator(',') {
					return "", nil, nil, false
				}
				continue
			}
		case css.DelimToken:
			if depth == 1 && string(data) == "/" {
				if !separator('/') {
					return "", nil, nil, false
				}
				continue
			}
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth == 0 {
				flush()
				if sep == ',' || sep == '/' {
					return "", nil, nil, false // dangling separator
				}
				continue
			}
		}
		b.Write(data)
	}
	if tt, _ = l.Next(); tt != css.ErrorToken {
		return "", nil, nil, false // trailing garbage after ')'
	}
	return name, args, seps, true
}

// numericToken checks that s consists of exactly one numeric CSS token and
// splits it into number and unit (unit is "%" for percentages and empty for
// plain numbers).
func numericToken(s string) (tt css.TokenType, num string, unit string, ok bool) {
	l := lexer(s)
	tt, data := l.Next()
	switch tt {
	case css.NumberToken, css.PercentageToken, css.DimensionToken:
	default:
		return tt, "", "", false
	}
	if next, _ := l.Next(); next != css.ErrorToken {
		return tt, "", "", false
	}
	text := string(data)
	n := numberPrefix(text)
	return tt, text[:n], strings.ToLower(text[n:]), n > 0
}

// numberPrefix returns the length of the CSS number at the start of s.
func numberPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i+1 < len(s) && s[i] == '.' && isDigit(s[i+1]) {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
