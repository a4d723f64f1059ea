package chartype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtEmpty(t *testing.T) {
	assert.Equal(t, Empty, At(nil, 0))
	assert.Equal(t, Empty, At([]string{""}, 0))
	assert.Equal(t, Empty, At([]string{"a"}, 42))
	assert.Equal(t, Empty, At([]string{"a"}, -1))
}

func TestAtVowels(t *testing.T) {
	graphemes := []string{"a", "e", "i", "o", "u", "A", "å", "ã", "é", "Î", "ö", "ø", "œ", "ə"}
	for i, g := range graphemes {
		assert.Equal(t, Vowel, At(graphemes, i), "grapheme %q", g)
	}
}

func TestAtConsonants(t *testing.T) {
	graphemes := []string{"b", "B", "ç", "Đ", "þ", "ñ", "ß", "ʔ", "Ⅰ"}
	for i, g := range graphemes {
		assert.Equal(t, Consonant, At(graphemes, i), "grapheme %q", g)
	}
}

func TestAtAmbiguous(t *testing.T) {
	graphemes := []string{"y", "Y", "Ÿ", "ȳ", "ỿ", "Ｙ"}
	for i, g := range graphemes {
		assert.Equal(t, Ambiguous, At(graphemes, i), "grapheme %q", g)
	}
}

func TestAtNonLatin(t *testing.T) {
	graphemes := []string{" ", "\"", ",", ".", "π"}
	for i, g := range graphemes {
		assert.Equal(t, NonLatin, At(graphemes, i), "grapheme %q", g)
	}
}

func TestAtWordPunctuationIsConsonant(t *testing.T) {
	graphemes := []string{"'", "’", "·", "״"}
	for i, g := range graphemes {
		assert.Equal(t, Consonant, At(graphemes, i), "grapheme %q", g)
	}
}

func TestAtModifiersAreConsonants(t *testing.T) {
	graphemes := []string{"ʰ", "ᵃ", "ʸ"}
	for i, g := range graphemes {
		assert.Equal(t, Consonant, At(graphemes, i), "grapheme %q", g)
	}
}

// Precomposed and decomposed forms of the same letter must classify the same.
func TestAtCanonicalEquivalence(t *testing.T) {
	graphemes := []string{"ç", "ç", "é", "é"}
	assert.Equal(t, Consonant, At(graphemes, 0))
	assert.Equal(t, Consonant, At(graphemes, 1))
	assert.Equal(t, Vowel, At(graphemes, 2))
	assert.Equal(t, Vowel, At(graphemes, 3))
}

func TestCharTypeString(t *testing.T) {
	assert.Equal(t, "vowel", Vowel.String())
	assert.Equal(t, "consonant", Consonant.String())
	assert.Equal(t, "ambiguous", Ambiguous.String())
	assert.Equal(t, "non-latin", NonLatin.String())
	assert.Equal(t, "empty", Empty.String())
}
