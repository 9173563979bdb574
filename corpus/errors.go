package corpus

import "errors"

// ErrMalformedLine signals a corpus line missing its tab-separated morph
// field, or a morph piece missing its trailing "/TAG" segment.
var ErrMalformedLine = errors.New("corpus: malformed line")
