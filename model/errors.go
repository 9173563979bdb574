package model

import "errors"

// ErrModelLoad is wrapped with additional context whenever a model artifact
// is missing, malformed, or missing one of the three required sections.
var ErrModelLoad = errors.New("model: failed to load artifact")

// ErrEmptyModel is returned when an artifact parses but contains zero
// emissions or zero transitions, leaving min_emission, min_transition, and
// max_word_len undefined.
var ErrEmptyModel = errors.New("model: artifact has no emissions or no transitions")
