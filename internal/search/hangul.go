// ABOUTME: Hangul helpers for choseong (initial consonant) matching.
// ABOUTME: Reduces precomposed syllables to their leading jamo for abbreviated search input.
package search

import "strings"

// choseongTable lists the 19 initial consonants in syllable-block order.
const choseongTable = "ㄱㄲㄴㄷㄸㄹㅁㅂㅃㅅㅆㅇㅈㅉㅊㅋㅌㅍㅎ"

const (
	hangulBase = 0xAC00 // 가
	hangulEnd  = 0xD7A3 // 힣
	// Each choseong spans 21 vowels x 28 finals = 588 syllables.
	syllablesPerChoseong = 588
)

var choseongRunes = []rune(choseongTable)

// isHangulSyllable reports whether r is a precomposed Hangul syllable.
func isHangulSyllable(r rune) bool {
	return r >= hangulBase && r <= hangulEnd
}

// isChoseongJamo reports whether r is one of the 19 initial consonants.
func isChoseongJamo(r rune) bool {
	return strings.ContainsRune(choseongTable, r)
}

// ContainsHangul reports whether s contains any Hangul syllable or
// compatibility jamo.
func ContainsHangul(s string) bool {
	for _, r := range s {
		if isHangulSyllable(r) || (r >= 0x3130 && r <= 0x318F) {
			return true
		}
	}
	return false
}

// IsChoseongOnly reports whether s is non-empty and consists entirely
// of initial-consonant jamo, e.g. "ㅂㅊ" for "벤치".
func IsChoseongOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isChoseongJamo(r) {
			return false
		}
	}
	return true
}

// ChoseongOf reduces each Hangul syllable in s to its initial
// consonant. Jamo pass through unchanged; non-Hangul runes are kept
// as-is so mixed strings stay comparable.
func ChoseongOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isHangulSyllable(r) {
			b.WriteRune(choseongRunes[(r-hangulBase)/syllablesPerChoseong])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
