package lattice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hangeul-nlp/postagger/lemma"
	"github.com/hangeul-nlp/postagger/model"
)

func newTestStore(t *testing.T) *model.Store {
	t.Helper()
	s, err := model.Load(strings.NewReader(`{
		"emission": {
			"Noun": {"사과": -1.0, "사과주스": -3.0},
			"Verb": {"먹": -1.2},
			"Eomi": {"었다": -0.8}
		},
		"transition": {
			"Noun_Verb": -0.5,
			"Verb_Eomi": -0.4
		},
		"begin": {"Noun": -0.2}
	}`))
	require.NoError(t, err)
	return s
}

func TestBuildEmptySentenceIsBOSToEOS(t *testing.T) {
	s := newTestStore(t)
	l := Build("", s, lemma.NewBridge(nil))
	require.Len(t, l.Edges, 1)
	assert.Equal(t, l.BOS, l.Edges[0].From)
	assert.Equal(t, l.EOS, l.Edges[0].To)
}

func TestBuildWhitespaceOnlyIsBOSToEOS(t *testing.T) {
	s := newTestStore(t)
	l := Build("   ", s, lemma.NewBridge(nil))
	require.Len(t, l.Edges, 1)
	assert.Equal(t, l.BOS, l.Edges[0].From)
	assert.Equal(t, l.EOS, l.Edges[0].To)
}

func TestBuildAllUnknownIsSingleUnkBridge(t *testing.T) {
	s := newTestStore(t)
	l := Build("xyz", s, lemma.NewBridge(nil))
	require.Len(t, l.Edges, 2)
	assert.Equal(t, "xyz", l.Edges[0].To.Surface)
	assert.Equal(t, l.Edges[0].To, l.Edges[1].From)
}

func TestBuildKnownWordProducesDirectEdge(t *testing.T) {
	s := newTestStore(t)
	l := Build("사과", s, lemma.NewBridge(nil))
	found := false
	for _, e := range l.Edges {
		if e.From == l.BOS && e.To.Surface == "사과" {
			found = true
		}
	}
	assert.True(t, found, "expected BOS->사과 edge, got %+v", l.Edges)
}

func TestBuildLemmatizesVerbEnding(t *testing.T) {
	s := newTestStore(t)
	l := Build("먹었다", s, lemma.NewBridge(nil))
	found := false
	for _, e := range l.Edges {
		if e.To.Surface == "먹 + 었다" {
			found = true
			assert.True(t, e.To.IsTwoMorph())
		}
	}
	assert.True(t, found, "expected a 먹+었다 lemmatized node, got %+v", l.Edges)
}
