// Package chartype classifies grapheme clusters as vowels or consonants.
//
// Only the first rune of a grapheme's canonical (NFD) decomposition is
// inspected, so precomposed and decomposed forms of the same letter classify
// identically: "ç" and "ç" are both consonants. Anything outside the
// Latin script is opaque to the classifier and reported as NonLatin.
package chartype

import (
	"unicode"
	"unicode/utf8"

	"github.com/LeopoldTal/porcus/internal/latin"
	"golang.org/x/text/unicode/norm"
)

// CharType is the vowel-or-consonant classification of a grapheme.
type CharType int

const (
	// Vowel is a Latin vowel, e.g. "A", "æ", "ő", "ɛ".
	Vowel CharType = iota
	// Consonant is a Latin consonant, e.g. "B", "ç", "ł", "ʁ". Word-internal
	// punctuation such as "'" also classifies as a consonant.
	Consonant
	// Ambiguous is a Latin letter that may be a vowel or a consonant
	// depending on what follows, e.g. "Y".
	Ambiguous
	// NonLatin is anything outside the Latin script: spaces, digits,
	// punctuation, other scripts.
	NonLatin
	// Empty is the classification of an empty or out-of-range grapheme.
	Empty
)

func (t CharType) String() string {
	switch t {
	case Vowel:
		return "vowel"
	case Consonant:
		return "consonant"
	case Ambiguous:
		return "ambiguous"
	case NonLatin:
		return "non-latin"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// At classifies the grapheme at the given index of a grapheme cluster
// sequence. Out-of-range indexes and empty graphemes classify as Empty.
//
// Classification is relative to English orthography and wrong for some
// languages: "w", a Welsh vowel, classifies as a consonant. Latin-script
// modifier letters such as "ʰ" carry no vowel entry and also classify as
// consonants.
func At(graphemes []string, index int) CharType {
	first, ok := firstNFDRuneAt(graphemes, index)
	if !ok {
		return Empty
	}
	switch {
	case latin.IsVowel(first):
		return Vowel
	case latin.IsAmbiguous(first):
		return Ambiguous
	case latin.IsWordPunct(first):
		return Consonant
	case unicode.Is(unicode.Latin, first):
		return Consonant
	default:
		return NonLatin
	}
}

func firstNFDRuneAt(graphemes []string, index int) (rune, bool) {
	if index < 0 || index >= len(graphemes) || graphemes[index] == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(norm.NFD.String(graphemes[index]))
	return r, true
}
