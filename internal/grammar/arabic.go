// Package grammar implements rule-based detection of Arabic grammatical
// constructions over morphologically tagged segment sequences.
//
// The detectors are bounded-window heuristic matchers, not a parser: they
// rely on the case, class and position tags supplied by the corpus
// annotator and never build a dependency tree.
package grammar

import "strings"

// stripDiacritics removes harakat, the superscript alef and tatweel from
// Arabic text, leaving the bare letter skeleton.
func stripDiacritics(s string) string {
	return strings.Map(func(r rune) rune {
		// Arabic diacritics range: U+064B to U+065F
		if r >= 0x064B && r <= 0x065F {
			return -1
		}
		// Superscript alef (dagger alif): U+0670
		if r == 0x0670 {
			return -1
		}
		// Tatweel (kashida): U+0640
		if r == 0x0640 {
			return -1
		}
		return r
	}, s)
}

// normalizeArabic strips diacritics and folds letter variants so that
// lexicon lookups match both plain and fully vocalized Quranic script.
func normalizeArabic(s string) string {
	s = stripDiacritics(s)

	replacements := map[rune]rune{
		'أ': 'ا', // Alef with hamza above
		'إ': 'ا', // Alef with hamza below
		'آ': 'ا', // Alef with madda
		'ٱ': 'ا', // Alef wasla, common in Quranic orthography
		'ى': 'ي', // Alef maksura to yeh
	}

	return strings.Map(func(r rune) rune {
		if folded, ok := replacements[r]; ok {
			return folded
		}
		return r
	}, s)
}

// runeLen returns the number of letters in the diacritic-stripped form.
func runeLen(s string) int {
	return len([]rune(stripDiacritics(s)))
}
