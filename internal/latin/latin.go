// Package latin holds the classification tables for Latin-script letters:
// which codepoints are vowels, which may be vowels depending on context, and
// which punctuation marks behave like consonants inside a word.
//
// The tables are editorial data, biased toward English orthography (Welsh
// treats "w" as a vowel; here it is a consonant). Every entry is stored in
// its decomposed form, so "á" is covered by the entry for "a"; callers are
// expected to look up the first rune of an NFD-decomposed grapheme.
package latin

// vowels lists Latin-script letters which are always vowels.
var vowels = map[rune]bool{
	// Basic Latin
	'A': true, 'E': true, 'I': true, 'O': true, 'U': true,
	'a': true, 'e': true, 'i': true, 'o': true, 'u': true,
	// Latin-1 supplement ordinal indicators
	'ª': true, 'º': true,
	// Latin-1 supplement and Extended-A letters
	'Æ': true, 'Ø': true, 'æ': true, 'ø': true, 'ı': true,
	'Ĳ': true, 'ĳ': true, 'Œ': true, 'œ': true,
	// Extended-B: non-European, historic, Sencoten
	'Ǝ': true, 'Ə': true, 'Ɛ': true, 'Ɩ': true, 'Ɨ': true, 'Ɵ': true, 'Ʊ': true,
	'ǝ': true, 'Ⱥ': true,
	'Ȣ': true, 'ȣ': true, 'Ʉ': true, 'Ɇ': true, 'ɇ': true,
	// IPA
	'ɐ': true, 'ɑ': true, 'ɒ': true,
	'ɘ': true, 'ə': true, 'ɚ': true, 'ɛ': true, 'ɜ': true, 'ɝ': true, 'ɞ': true,
	'ɨ': true, 'ɩ': true, 'ɪ': true,
	'ɵ': true, 'ɶ': true, 'ɷ': true,
	'ʉ': true, 'ʊ': true,
	// Phonetic extensions
	'ᴀ': true, 'ᴁ': true, 'ᴂ': true,
	'ᴇ': true, 'ᴈ': true,
	'ᴉ': true,
	'ᴏ': true, 'ᴐ': true, 'ᴑ': true, 'ᴒ': true, 'ᴓ': true, 'ᴔ': true,
	'ᴕ': true, 'ᴖ': true, 'ᴗ': true,
	'ᴜ': true, 'ᴝ': true, 'ᴞ': true, 'ᵫ': true,
	'ᵻ': true, 'ᵼ': true, 'ᵾ': true, 'ᵿ': true,
	'ᶏ': true, 'ᶐ': true, 'ᶒ': true, 'ᶓ': true, 'ᶔ': true, 'ᶕ': true,
	'ᶖ': true, 'ᶗ': true, 'ᶙ': true,
	'ẚ': true,
	// Super- and subscripts
	'ⁱ': true,
	'ₐ': true, 'ₑ': true, 'ₒ': true, 'ₔ': true,
	// Extended-C
	'ⱥ': true,
	'Ɑ': true, 'Ɐ': true, 'Ɒ': true,
	'ⱸ': true, 'ⱺ': true, 'ⱻ': true,
	// Extended-D: medievalist ligatures and abbreviations
	'Ꜳ': true, 'ꜳ': true, 'Ꜵ': true, 'ꜵ': true, 'Ꜷ': true, 'ꜷ': true,
	'Ꜹ': true, 'ꜹ': true, 'Ꜻ': true, 'ꜻ': true, 'Ꜽ': true, 'ꜽ': true,
	'Ꝋ': true, 'ꝋ': true, 'Ꝍ': true, 'ꝍ': true, 'Ꝏ': true, 'ꝏ': true,
	'Ꝫ': true, 'ꝫ': true, 'Ꝭ': true, 'ꝭ': true, 'ꝸ': true,
	// Extended-D: Volapük, African, Ugaritic and Egyptological letters
	'Ꞛ': true, 'ꞛ': true, 'Ꞝ': true, 'ꞝ': true, 'Ꞟ': true, 'ꞟ': true,
	'Ɜ': true, 'Ɪ': true,
	'Ꞷ': true, 'ꞷ': true, 'Ꞹ': true, 'ꞹ': true,
	'Ꞻ': true, 'ꞻ': true, 'Ꞽ': true, 'ꞽ': true, 'Ꞿ': true, 'ꞿ': true,
	'ꟷ': true, 'ꟹ': true, 'ꟾ': true,
	// Extended-E: German dialectology, Sakha, Americanist
	'ꬰ': true, 'ꬱ': true,
	'ꬲ': true, 'ꬳ': true, 'ꬴ': true,
	'ꬽ': true, 'ꬾ': true, 'ꬿ': true, 'ꭀ': true, 'ꭁ': true, 'ꭂ': true,
	'ꭃ': true, 'ꭄ': true,
	'ꭎ': true, 'ꭏ': true, 'ꭐ': true, 'ꭑ': true, 'ꭒ': true,
	'ꭠ': true, 'ꭡ': true, 'ꭢ': true, 'ꭣ': true,
	'ꭤ': true,
	// Fullwidth forms
	'Ａ': true, 'Ｅ': true, 'Ｉ': true, 'Ｏ': true, 'Ｕ': true,
	'ａ': true, 'ｅ': true, 'ｉ': true, 'ｏ': true, 'ｕ': true,
}

// ambiguous lists letters which act as a vowel or a consonant depending on
// the letter that follows. Currently all variants of "y".
var ambiguous = map[rune]bool{
	'Y': true, 'y': true,
	'Ƴ': true, 'ƴ': true,
	'Ɏ': true, 'ɏ': true,
	'ʎ': true, 'ʏ': true,
	'Ỿ': true, 'ỿ': true,
	'Ｙ': true, 'ｙ': true,
	'ꭚ': true,
}

// wordPunct lists punctuation which may appear inside a word and is treated
// as a consonant rather than a boundary, e.g. the apostrophe in "M'lady".
var wordPunct = map[rune]bool{
	'\'': true, // apostrophe
	'’':  true, // right single quotation mark
	'＇': true, // fullwidth apostrophe
	'·':  true, // middle dot
	'՟':  true, // Armenian abbreviation mark
	'״':  true, // Hebrew gershayim
	'‧':  true, // hyphenation point
}

// IsVowel reports whether r is an always-vowel Latin letter.
func IsVowel(r rune) bool { return vowels[r] }

// IsAmbiguous reports whether r is a letter whose vowel role depends on
// context.
func IsAmbiguous(r rune) bool { return ambiguous[r] }

// IsWordPunct reports whether r is word-internal punctuation that counts as
// a consonant.
func IsWordPunct(r rune) bool { return wordPunct[r] }
