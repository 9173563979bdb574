package train

import "errors"

// ErrNoSentences signals that Count was given no sentences to learn
// from, so ToLogProb would only ever produce NaN/divide-by-zero tables.
var ErrNoSentences = errors.New("train: no sentences to count")
