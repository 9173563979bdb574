package lemma

// Hangul syllable blocks in the range U+AC00..U+D7A3 are algorithmically
// composed from three jamo indices (leading consonant, vowel, trailing
// consonant). decompose/compose implement that algorithm so the rewrite
// rules in rules.go can reason about individual jamo instead of whole
// syllables, the way phonology.go reasons about individual Latin letters
// for Azerbaijani vowel harmony.

const (
	hangulBase  = 0xAC00
	hangulLast  = 0xD7A3
	choCount    = 19
	jungCount   = 21
	jongCount   = 28
	jongNone    = 0 // no trailing consonant (받침 없음)
	jongLieul   = 8 // index of trailing ㄹ within the jong table
	jungEu      = 18
	jungA       = 0
	jungEo      = 4
)

var jongTable = [jongCount]rune{
	0, 'ᆨ', 'ᆩ', 'ᆪ', 'ᆫ', 'ᆬ', 'ᆭ', 'ᆮ', 'ᆯ', 'ᆰ',
	'ᆱ', 'ᆲ', 'ᆳ', 'ᆴ', 'ᆵ', 'ᆶ', 'ᆷ', 'ᆸ', 'ᆹ', 'ᆺ',
	'ᆻ', 'ᆼ', 'ᆽ', 'ᆾ', 'ᆿ', 'ᇀ', 'ᇁ', 'ᇂ',
}

// syllable holds the decomposed indices of one Hangul block.
type syllable struct {
	cho, jung, jong int
}

// decompose splits r into its leading/vowel/trailing jamo indices. ok is
// false if r is not a precomposed Hangul syllable.
func decompose(r rune) (s syllable, ok bool) {
	if r < hangulBase || r > hangulLast {
		return syllable{}, false
	}
	offset := int(r) - hangulBase
	s.jong = offset % jongCount
	s.jung = (offset / jongCount) % jungCount
	s.cho = offset / (jungCount * jongCount)
	return s, true
}

// compose rebuilds a Hangul syllable from jamo indices.
func compose(s syllable) rune {
	offset := (s.cho*jungCount+s.jung)*jongCount + s.jong
	return rune(hangulBase + offset)
}

// lastSyllable returns the decomposed last rune of s, if it is Hangul.
func lastSyllable(s string) (syllable, bool) {
	r := []rune(s)
	if len(r) == 0 {
		return syllable{}, false
	}
	return decompose(r[len(r)-1])
}

// firstSyllable returns the decomposed first rune of s, if it is Hangul.
func firstSyllable(s string) (syllable, bool) {
	r := []rune(s)
	if len(r) == 0 {
		return syllable{}, false
	}
	return decompose(r[0])
}

// replaceLast returns s with its last rune replaced by r.
func replaceLast(s string, r rune) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[len(runes)-1] = r
	return string(runes)
}

// replaceFirst returns s with its first rune replaced by r.
func replaceFirst(s string, r rune) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(r) + string(runes[1:])
}
