// pkg/flagparse/parser.go

// Package flagparse tokenizes the flag-oriented stdout of the discovery
// tool. Output words carry a two-character flag prefix ("-L", "-l",
// "-I", ...) immediately followed by their value; the split is a fixed
// positional convention of the tool's output format, not shell parsing.
package flagparse

import "strings"

// Token is one flag/value pair from the tool output.
type Token struct {
	Flag  string // two-character prefix, e.g. "-L"
	Value string // remainder of the word
}

// Tokens splits raw output on single spaces and converts each word into
// a Token. Words of two characters or fewer are dropped: a flag with no
// value carries no information here. Pure and order-preserving; parsing
// the same input twice yields the same sequence.
func Tokens(raw string) []Token {
	var tokens []Token
	for _, word := range strings.Split(raw, " ") {
		if len(word) <= 2 {
			continue
		}
		tokens = append(tokens, Token{Flag: word[:2], Value: word[2:]})
	}
	return tokens
}

// Frameworks scans the output for "-framework <name>" word pairs, which
// the two-character split cannot represent. Names are returned in order
// of appearance. A trailing "-framework" with no following word is
// ignored.
func Frameworks(raw string) []string {
	words := strings.Split(raw, " ")
	var names []string
	for i := 0; i < len(words); i++ {
		if words[i] != "-framework" {
			continue
		}
		if i+1 < len(words) {
			i++
			names = append(names, words[i])
		}
	}
	return names
}
