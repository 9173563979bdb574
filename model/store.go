// Package model holds the immutable log-probability tables (emission,
// transition, begin) that the decoder scores every lattice edge against,
// plus the smoothing floors derived from them.
package model

import (
	"sort"
	"sync"

	"github.com/hangeul-nlp/postagger/tag"
)

type transitionKey struct {
	from, to tag.ID
}

// Store is the trained model: emission P(word|tag), transition
// P(tag_next|tag_prev), and begin P(tag|BOS) tables, plus the derived
// smoothing floors. Safe for concurrent reads; AddEntry takes a write
// lock and must not overlap with concurrent Tag calls against the same
// Store (see decode.Decoder).
type Store struct {
	mu sync.RWMutex

	tags *tag.Table

	emission   map[tag.ID]map[string]float64
	transition map[transitionKey]float64
	begin      map[tag.ID]float64

	maxWordLen    int
	minEmission   float64
	minTransition float64
}

// Tags returns the tag table backing this store, so callers can translate
// between tag.ID and its string name.
func (s *Store) Tags() *tag.Table { return s.tags }

// MaxWordLen returns the longest word, in runes, present in any emission
// table. Callers should treat this as fixed for the life of the Store:
// AddEntry does not retroactively extend it, matching the "implementer's
// choice" carve-out in the model contract.
func (s *Store) MaxWordLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxWordLen
}

// MinEmission returns the smoothing floor for unseen (tag, word) pairs.
func (s *Store) MinEmission() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.minEmission
}

// MinTransition returns the smoothing floor for unseen (tag, tag) pairs.
func (s *Store) MinTransition() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.minTransition
}

// Emit returns the stored log-probability of word under tag, or def if no
// such entry exists.
func (s *Store) Emit(t tag.ID, word string, def float64) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words, ok := s.emission[t]
	if !ok {
		return def
	}
	if logp, ok := words[word]; ok {
		return logp
	}
	return def
}

// Contains reports whether word is present in tag's emission table.
func (s *Store) Contains(t tag.ID, word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words, ok := s.emission[t]
	if !ok {
		return false
	}
	_, ok = words[word]
	return ok
}

// Trans returns the stored log-probability of transitioning from prev to
// next, or def if no such entry exists.
func (s *Store) Trans(prev, next tag.ID, def float64) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if logp, ok := s.transition[transitionKey{prev, next}]; ok {
		return logp
	}
	return def
}

// Begin returns the stored log-probability of a sentence starting with
// tag t, or def if no such entry exists.
func (s *Store) Begin(t tag.ID, def float64) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if logp, ok := s.begin[t]; ok {
		return logp
	}
	return def
}

// TagsContaining returns every tag whose emission table contains word,
// sorted by tag.ID. Map iteration order is randomized per range, and the
// lattice builder appends a candidate node per tag in the order this
// returns them, so an unsorted result would make tie-broken decode output
// nondeterministic across calls against the same Store.
func (s *Store) TagsContaining(word string) []tag.ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var found []tag.ID
	for t, words := range s.emission {
		if _, ok := words[word]; ok {
			found = append(found, t)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i] < found[j] })
	return found
}

// TagID resolves a tag name to its interned id, registering it if unseen.
// Used by lattice.Build to resolve Verb/Adjective/Eomi and by the decoder's
// Unk resolution to resolve Noun.
func (s *Store) TagID(name string) tag.ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tags.IDOrAdd(name)
}

// AddEntry inserts or overwrites emission[tag][word] = score. This is the
// sole permitted post-construction mutation and must happen
// before any concurrent Tag call begins; it does not touch MaxWordLen,
// MinEmission, or MinTransition, so a user dictionary entry longer than
// every trained word, or scored below the trained floor, is still found by
// exact lookup but will not widen the lattice's candidate-span search or
// lower the smoothing floor.
func (s *Store) AddEntry(word string, tagName string, score float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.tags.IDOrAdd(tagName)
	words, ok := s.emission[id]
	if !ok {
		words = make(map[string]float64, 1)
		s.emission[id] = words
	}
	words[word] = score
}
