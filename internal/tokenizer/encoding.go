// Package tokenizer provides token counting for the five tiktoken-family BPE
// encodings loctok supports. An Encoding is constructed once per process from
// its name and shared read-only across every worker goroutine; Count never
// mutates shared state and has no I/O.
package tokenizer

import (
	"fmt"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// Encoding is an immutable handle to a named BPE encoder. The only
// operation it exposes is a pure, thread-safe token count.
type Encoding interface {
	// Count returns the number of tokens the encoding would produce for
	// text. text must be valid UTF-8; callers are responsible for
	// validating that before calling Count.
	Count(text string) int

	// Name returns the encoding name this instance was constructed with.
	Name() string
}

// tiktokenEncoding is an Encoding backed by pkoukk/tiktoken-go. The
// underlying BPE tables are loaded once at construction and never mutated,
// so a single instance may be shared across any number of goroutines.
type tiktokenEncoding struct {
	name string
	enc  *tiktoken.Tiktoken
}

// New constructs the Encoding for the given name. Unknown names are a
// fatal configuration error.
func New(name string) (Encoding, error) {
	if !Known(name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}

	enc, err := tiktoken.GetEncoding(name)
	if err != nil {
		return nil, fmt.Errorf("loading encoding %q: %w", name, err)
	}

	return &tiktokenEncoding{name: name, enc: enc}, nil
}

// Count returns the exact number of BPE tokens in text. Safe for
// concurrent use; returns 0 for empty text.
func (e *tiktokenEncoding) Count(text string) int {
	if text == "" {
		return 0
	}
	return len(e.enc.Encode(text, nil, nil))
}

// Name returns the BPE encoding name (e.g. "cl100k_base").
func (e *tiktokenEncoding) Name() string {
	return e.name
}
