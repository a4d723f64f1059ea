// Package piglatin rewrites Latin-script words of arbitrary Unicode text into
// pig latin.
//
// Input text is split at Unicode word boundaries (UAX #29); each word-like
// unit whose first character is in the Latin script is rewritten, and every
// other unit (whitespace, punctuation, digits, other scripts) passes through
// verbatim. The casing pattern of each word is preserved, so "Hello" becomes
// "Ellohay" and "HELLO" becomes "ELLOHAY".
package piglatin

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/LeopoldTal/porcus/internal/chartype"
	"github.com/LeopoldTal/porcus/internal/wordcase"
	"github.com/clipperhouse/uax29/v2/words"
	"github.com/rivo/uniseg"
	"github.com/samber/lo"
)

const (
	// DefaultConsonantSuffix is appended to words starting with a consonant,
	// e.g. "nix" -> "ixn"+"ay".
	DefaultConsonantSuffix = "ay"
	// DefaultVowelSuffix is appended to words starting with a vowel,
	// e.g. "egg" -> "egg"+"way".
	DefaultVowelSuffix = "way"
)

// Transformer rewrites text into pig latin with a fixed pair of suffixes.
// The zero value appends no suffixes; use New or NewDefault.
type Transformer struct {
	consonantSuffix string
	vowelSuffix     string
}

// New returns a Transformer with custom suffixes. Empty suffixes are legal
// and simply append nothing.
func New(consonantSuffix, vowelSuffix string) Transformer {
	return Transformer{
		consonantSuffix: consonantSuffix,
		vowelSuffix:     vowelSuffix,
	}
}

// NewDefault returns a Transformer with the usual "ay"/"way" suffixes.
func NewDefault() Transformer {
	return New(DefaultConsonantSuffix, DefaultVowelSuffix)
}

// Transform rewrites every Latin-script word of s into pig latin, leaving
// all other segments untouched. It is a pure function: identical input
// always yields identical output, and no input fails.
func (t Transformer) Transform(s string) string {
	var units []string
	tokens := words.FromString(s)
	for tokens.Next() {
		units = append(units, tokens.Value())
	}
	out := lo.Map(units, func(unit string, _ int) string {
		return t.transformWord(unit)
	})
	return strings.Join(out, "")
}

// transformWord rewrites a single word-boundary unit, matching the casing of
// the result to the casing of the original.
func (t Transformer) transformWord(s string) string {
	if shouldSkip(s) {
		return s
	}
	return wordcase.Apply(t.uncasedPigLatin(s), wordcase.Detect(s))
}

// uncasedPigLatin moves the leading consonant cluster of s to the end and
// appends the configured suffix, ignoring case.
func (t Transformer) uncasedPigLatin(s string) string {
	graphemes := splitGraphemes(s)

	prefixLen := 0
	for hasConsonantAt(graphemes, prefixLen) {
		prefixLen++
	}

	if prefixLen == 0 {
		return s + t.vowelSuffix
	}
	prefix := strings.Join(graphemes[:prefixLen], "")
	suffix := strings.Join(graphemes[prefixLen:], "")
	return suffix + prefix + t.consonantSuffix
}

// shouldSkip reports whether a unit passes through unchanged: empty units
// and units whose first character is outside the Latin script.
func shouldSkip(s string) bool {
	first, width := utf8.DecodeRuneInString(s)
	if width == 0 {
		return true
	}
	return !unicode.Is(unicode.Latin, first)
}

// hasConsonantAt reports whether the grapheme at index extends the leading
// consonant cluster. An ambiguous letter counts as a consonant only when the
// next grapheme is a vowel, so "yoga" is consonant-initial but "Ypres" and
// "yy" are vowel-initial.
func hasConsonantAt(graphemes []string, index int) bool {
	switch chartype.At(graphemes, index) {
	case chartype.Consonant:
		return true
	case chartype.Ambiguous:
		return chartype.At(graphemes, index+1) == chartype.Vowel
	default:
		return false
	}
}

func splitGraphemes(s string) []string {
	var graphemes []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		graphemes = append(graphemes, gr.Str())
	}
	return graphemes
}
