package model

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/hangeul-nlp/postagger/tag"
)

// transitionSep is the separator joining the previous and next tag names in
// a persisted transition key, e.g. "Noun_Josa". Training must not produce
// tag names containing this separator.
const transitionSep = "_"

// Artifact is the on-disk shape of a trained model: three top-level
// mappings, all probabilities already natural-log transformed. It is
// also what train.ToLogProb produces from raw corpus counts.
type Artifact struct {
	Emission   map[string]map[string]float64 `json:"emission"`
	Transition map[string]float64            `json:"transition"`
	Begin      map[string]float64            `json:"begin"`
}

// Load reads a JSON model artifact from r and builds a ready-to-use Store.
func Load(r io.Reader) (*Store, error) {
	var a Artifact
	dec := json.NewDecoder(r)
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("%w: decode json: %v", ErrModelLoad, err)
	}
	if a.Emission == nil || a.Transition == nil || a.Begin == nil {
		return nil, fmt.Errorf("%w: missing emission, transition, or begin section", ErrModelLoad)
	}
	return FromArtifact(&a)
}

// FromArtifact builds a Store directly from an in-memory Artifact,
// without a JSON round trip — the path train.ToLogProb's output takes
// straight into a freshly trained Decoder.
func FromArtifact(a *Artifact) (*Store, error) {
	if len(a.Emission) == 0 || len(a.Transition) == 0 {
		return nil, ErrEmptyModel
	}

	table := tag.NewTable()
	s := &Store{
		tags:       table,
		emission:   make(map[tag.ID]map[string]float64, len(a.Emission)),
		transition: make(map[transitionKey]float64, len(a.Transition)),
		begin:      make(map[tag.ID]float64, len(a.Begin)),
	}

	minEmission := 0.0
	first := true
	for tagName, words := range a.Emission {
		id := table.IDOrAdd(tagName)
		wordMap := make(map[string]float64, len(words))
		for w, logp := range words {
			wordMap[w] = logp
			if n := runeLen(w); n > s.maxWordLen {
				s.maxWordLen = n
			}
			if first || logp < minEmission {
				minEmission = logp
				first = false
			}
		}
		s.emission[id] = wordMap
	}
	s.minEmission = minEmission - 0.05

	minTransition := 0.0
	first = true
	for key, logp := range a.Transition {
		parts := strings.SplitN(key, transitionSep, 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: malformed transition key %q", ErrModelLoad, key)
		}
		from := table.IDOrAdd(parts[0])
		to := table.IDOrAdd(parts[1])
		s.transition[transitionKey{from, to}] = logp
		if first || logp < minTransition {
			minTransition = logp
			first = false
		}
	}
	s.minTransition = minTransition - 0.05

	for tagName, logp := range a.Begin {
		id := table.IDOrAdd(tagName)
		s.begin[id] = logp
	}

	return s, nil
}

// Save writes the Store back out as a JSON artifact, re-encoding the
// in-memory tables to their string form. It does not include user
// dictionary entries added after AddEntry was called as a separate
// section; they are merged into the emission table directly.
func Save(w io.Writer, s *Store) error {
	a := Artifact{
		Emission:   make(map[string]map[string]float64, len(s.emission)),
		Transition: make(map[string]float64, len(s.transition)),
		Begin:      make(map[string]float64, len(s.begin)),
	}
	for id, words := range s.emission {
		a.Emission[s.tags.Name(id)] = words
	}
	for key, logp := range s.transition {
		name := s.tags.Name(key.from) + transitionSep + s.tags.Name(key.to)
		a.Transition[name] = logp
	}
	for id, logp := range s.begin {
		a.Begin[s.tags.Name(id)] = logp
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(&a); err != nil {
		return fmt.Errorf("model: encode json: %w", err)
	}
	return nil
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
