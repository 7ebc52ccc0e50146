package textdiff

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Mode selects the comparison unit.
type Mode int

const (
	// ModeLine compares whole lines.
	ModeLine Mode = iota
	// ModeWord compares runs of whitespace and non-whitespace.
	ModeWord
)

func (m Mode) String() string {
	switch m {
	case ModeLine:
		return "line"
	case ModeWord:
		return "word"
	default:
		return "unknown"
	}
}

// ParseMode converts "line" or "word" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line", "lines", "":
		return ModeLine, nil
	case "word", "words":
		return ModeWord, nil
	default:
		return ModeLine, fmt.Errorf("unknown diff mode %q (want \"line\" or \"word\")", s)
	}
}

// Options control how comparison keys are normalized.
// IgnoreWhitespace only applies in line mode.
type Options struct {
	IgnoreCase       bool `json:"ignore_case" yaml:"ignore_case"`
	IgnoreWhitespace bool `json:"ignore_whitespace" yaml:"ignore_whitespace"`
}

// Token is one comparison unit. Original is kept for output, Key is used
// for equality.
type Token struct {
	Original string
	Key      string
}

// Tokenize splits text into tokens for the given mode.
// The empty string always yields no tokens.
func Tokenize(text string, mode Mode, opts Options) []Token {
	if text == "" {
		return nil
	}
	if mode == ModeWord {
		return tokenizeWords(text, opts)
	}
	return tokenizeLines(text, opts)
}

// Keys returns the comparison key of every token, in order.
func Keys(tokens []Token) []string {
	keys := make([]string, len(tokens))
	for i, t := range tokens {
		keys[i] = t.Key
	}
	return keys
}

func tokenizeLines(text string, opts Options) []Token {
	lines := strings.Split(text, "\n")
	tokens := make([]Token, len(lines))
	for i, line := range lines {
		key := line
		if opts.IgnoreWhitespace {
			key = strings.TrimSpace(key)
		}
		if opts.IgnoreCase {
			key = strings.ToLower(key)
		}
		tokens[i] = Token{Original: line, Key: key}
	}
	return tokens
}

// tokenizeWords splits text into alternating maximal runs of whitespace and
// non-whitespace. Concatenating every Original reproduces text.
func tokenizeWords(text string, opts Options) []Token {
	var tokens []Token

	start := 0
	inSpace := false
	for i, r := range text {
		space := isSpace(r)
		if i == 0 {
			inSpace = space
			continue
		}
		if space != inSpace {
			tokens = append(tokens, newWordToken(text[start:i], opts))
			start = i
			inSpace = space
		}
	}
	tokens = append(tokens, newWordToken(text[start:], opts))

	return tokens
}

func newWordToken(s string, opts Options) Token {
	key := s
	if opts.IgnoreCase {
		key = strings.ToLower(key)
	}
	return Token{Original: s, Key: key}
}

// isSpace treats invalid UTF-8 bytes as non-whitespace so they stay attached
// to the surrounding word.
func isSpace(r rune) bool {
	if r == utf8.RuneError {
		return false
	}
	return unicode.IsSpace(r)
}
