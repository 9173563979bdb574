package lemma

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityAlwaysPresent(t *testing.T) {
	cands := NewRuleLemmatizer().Candidates("먹", "었다")
	assert.Contains(t, cands, Candidate{Stem: "먹", Ending: "었다"})
}

func TestVowelContractionRestoresStem(t *testing.T) {
	cands := NewRuleLemmatizer().Candidates("봐", "요")
	found := false
	for _, c := range cands {
		if c.Stem == "보" {
			found = true
			assert.Equal(t, "아요", c.Ending)
		}
	}
	assert.True(t, found, "expected a 보+아 candidate, got %v", cands)
}

func TestLIrregularReinsertsFinalRieul(t *testing.T) {
	cands := NewRuleLemmatizer().Candidates("사", "는")
	found := false
	for _, c := range cands {
		if c.Stem == "살" {
			found = true
			assert.Equal(t, "는", c.Ending)
		}
	}
	assert.True(t, found, "expected a 살+는 candidate, got %v", cands)
}

func TestBridgeRecoversFromPanic(t *testing.T) {
	b := NewBridge(panicLemmatizer{})
	assert.NotPanics(t, func() {
		got := b.Propose("a", "b")
		assert.Nil(t, got)
	})
}

type panicLemmatizer struct{}

func (panicLemmatizer) Candidates(stem, ending string) []Candidate {
	panic("boom")
}
