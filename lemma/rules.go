package lemma

// Candidate is one proposed (stem, ending) rewrite of a verb/adjective
// split point, to be checked against the Verb/Adjective and Eomi emission
// tables by the lattice builder.
type Candidate struct {
	Stem   string
	Ending string
}

// Lemmatizer proposes morphological rewrites of a (stem, ending) split.
// Implementations model morphophonemic alternations: vowel contraction,
// ㅡ-elision, and consonant-irregular restoration. A Lemmatizer need not be
// exhaustive — the lattice builder only keeps candidates that land in the
// Verb/Adjective and Eomi emission tables, so over-generation is cheap and
// under-generation just means a surface form falls back to Unk inference.
type Lemmatizer interface {
	Candidates(stem, ending string) []Candidate
}

// RuleLemmatizer is a small table-driven Lemmatizer, built the way
// collatinus' assim/desassim/decontracte rewrite tables are: each rule
// looks at the boundary between stem and ending and proposes an
// alternative split that undoes one specific phonological process.
//
// Known limitations:
//   - Vowel contraction and ㅡ-elision tables cover the common cases
//     (와/워/와요-style merges, 써/떠-style elision) but not every
//     dialectal or archaic alternation.
//   - ㄹ-irregular restoration only tries reinserting a final ㄹ; it does
//     not attempt ㄷ, ㅂ, or 르-irregular restoration.
//   - Candidates are proposed blind to the dictionary; callers are
//     expected to validate against emission tables.
type RuleLemmatizer struct{}

// NewRuleLemmatizer returns the default table-driven Lemmatizer.
func NewRuleLemmatizer() *RuleLemmatizer { return &RuleLemmatizer{} }

// contraction maps a contracted vowel-jung index to the (stem jung,
// inserted-syllable jung) pair it came from, e.g. ㅘ (jung index 9) comes
// from stem jung ㅗ (8) plus an elided 아 syllable (jung 0).
var contraction = map[int][2]int{
	9:  {8, jungA},   // ㅘ <- ㅗ + 아 (보 + 아 -> 봐)
	14: {13, jungEo}, // ㅝ <- ㅜ + 어 (배우 + 어 -> 배워)
	6:  {20, jungEo}, // ㅕ <- ㅣ + 어 (피 + 어 -> 펴)
}

func (RuleLemmatizer) Candidates(stem, ending string) []Candidate {
	var out []Candidate
	out = append(out, identity(stem, ending)...)
	out = append(out, vowelContraction(stem, ending)...)
	out = append(out, euElision(stem, ending)...)
	out = append(out, lIrregular(stem, ending)...)
	return out
}

// identity always proposes the split unchanged: most verb/ending
// boundaries (e.g. 먹 + 었다) need no phonological repair at all.
func identity(stem, ending string) []Candidate {
	return []Candidate{{Stem: stem, Ending: ending}}
}

// vowelContraction undoes a contracted vowel on the last syllable of
// stem, restoring the elided syllable as a new leading syllable of
// ending. E.g. stem "와" (ending already split off) is treated as if it
// were stem "오" + an elided "아" that belongs to ending.
func vowelContraction(stem, ending string) []Candidate {
	last, ok := lastSyllable(stem)
	if !ok {
		return nil
	}
	base, hasBase := contraction[last.jung]
	if !hasBase {
		return nil
	}
	newStem := replaceLast(stem, compose(syllable{cho: last.cho, jung: base[0], jong: last.jong}))
	elided := compose(syllable{cho: 11 /* ᄋ */, jung: base[1], jong: jongNone})
	newEnding := string(elided) + ending
	return []Candidate{{Stem: newStem, Ending: newEnding}}
}

// euElision undoes ㅡ-elision: a stem like "써" (from 쓰다) lost its
// ㅡ when followed by a 아/어-initial ending. Restoring it means
// replacing the stem's last jung with ㅡ and folding the elided vowel
// onto the front of ending.
func euElision(stem, ending string) []Candidate {
	last, ok := lastSyllable(stem)
	if !ok || last.jung == jungEu {
		return nil
	}
	if last.jung != jungA && last.jung != jungEo {
		return nil
	}
	newStem := replaceLast(stem, compose(syllable{cho: last.cho, jung: jungEu, jong: jongNone}))
	elided := compose(syllable{cho: 11 /* ᄋ */, jung: last.jung, jong: last.jong})
	newEnding := string(elided) + ending
	return []Candidate{{Stem: newStem, Ending: newEnding}}
}

// lIrregular tries reinserting a final ㄹ onto stem (e.g. surface "사는"
// split as stem "사" / ending "는" might really be 살- + -는, with the ㄹ
// dropped before ㄴ/ㅂ/ㅅ-initial endings).
func lIrregular(stem, ending string) []Candidate {
	last, ok := lastSyllable(stem)
	if !ok || last.jong != jongNone {
		return nil
	}
	newStem := replaceLast(stem, compose(syllable{cho: last.cho, jung: last.jung, jong: jongLieul}))
	return []Candidate{{Stem: newStem, Ending: ending}}
}
