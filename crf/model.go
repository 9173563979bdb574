package crf

import "sync"

// Model is a linear weight vector over feature strings: Score sums the
// weight of every feature present, Update bumps each by delta. It plays
// the role TrainedCRFTagger.score and the (never-wired) pycrfsuite
// coefficients play in CRF.py, collapsed into one perceptron-style
// accumulator since no trainer is provided. Safe for concurrent use,
// the same sync.RWMutex pattern model.Store uses over its tables.
type Model struct {
	mu      sync.RWMutex
	weights map[string]float64
}

// NewModel returns an empty Model.
func NewModel() *Model {
	return &Model{weights: make(map[string]float64)}
}

// Score sums the weight of every feature in features, treating an
// unseen feature as weight zero.
func (m *Model) Score(features []string) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var score float64
	for _, f := range features {
		score += m.weights[f]
	}
	return score
}

// Update adds delta to every feature's weight in features, registering
// any feature not already present.
func (m *Model) Update(features []string, delta float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range features {
		m.weights[f] += delta
	}
}
