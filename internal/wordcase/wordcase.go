// Package wordcase detects the casing pattern of a word and re-applies it to
// another word.
package wordcase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Case is the casing pattern of a word.
type Case int

const (
	// Lower means all characters are lowercase or uncased.
	Lower Case = iota
	// Upper means all characters are uppercase or uncased.
	Upper
	// Sentence means the first character is uppercase and all others are
	// lowercase or uncased.
	Sentence
	// Mixed means no consistent pattern was found.
	Mixed
)

func (c Case) String() string {
	switch c {
	case Lower:
		return "lowercase"
	case Upper:
		return "UPPERCASE"
	case Sentence:
		return "Sentencecase"
	case Mixed:
		return "MixedCase"
	default:
		return "unknown"
	}
}

// Detect reports the casing pattern of s.
//
// Uncased characters (digits, punctuation, most non-Latin scripts) satisfy
// both the lowercase and uppercase predicates, so they never force a Mixed
// result on their own; an all-uncased string, including the empty string,
// detects as Lower. A single uppercase letter detects as Sentence rather
// than Upper: its (empty) tail vacuously satisfies both rest predicates and
// the Sentence rule is checked first.
func Detect(s string) Case {
	first, width := utf8.DecodeRuneInString(s)
	if width == 0 {
		return Lower
	}
	rest := s[width:]

	firstIsLower := !unicode.IsUpper(first)
	firstIsUpper := !unicode.IsLower(first)
	restIsLower := !strings.ContainsFunc(rest, unicode.IsUpper)
	restIsUpper := !strings.ContainsFunc(rest, unicode.IsLower)

	switch {
	case firstIsLower && restIsLower:
		return Lower
	case firstIsUpper && restIsLower:
		return Sentence
	case firstIsUpper && restIsUpper:
		return Upper
	default:
		return Mixed
	}
}

// Apply returns s converted to the given casing pattern. Applying Mixed
// returns s unchanged.
func Apply(s string, c Case) string {
	switch c {
	case Lower:
		return strings.ToLower(s)
	case Upper:
		return strings.ToUpper(s)
	case Sentence:
		return toSentenceCase(s)
	default:
		return s
	}
}

// toSentenceCase uppercases the first grapheme cluster and lowercases the
// rest, so a base letter and its combining marks are cased as one unit.
func toSentenceCase(s string) string {
	first, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	if first == "" {
		return ""
	}
	return strings.ToUpper(first) + strings.ToLower(rest)
}
