package tokenizer

import "fmt"

// Default is the encoding selected when --encoding is not given.
const Default = "o200k_base"

// ErrUnknownEncoding is returned by New when an unrecognised encoding name
// is requested. Commands treat this as a configuration error (exit 1).
var ErrUnknownEncoding = fmt.Errorf("unknown encoding")

// Info describes an encoding's informative-only metadata: the model
// families it backs and its nominal context window. Neither field affects
// token counting; Info is used only for reporting.
type Info struct {
	Models         []string
	NominalContext int
}

// infoByName is the static name → metadata table. Declared as data so new
// encodings never require touching the counting logic.
var infoByName = map[string]Info{
	"o200k_base": {
		Models:         []string{"GPT-4o", "GPT-4.1", "o1", "o3", "o4"},
		NominalContext: 200_000,
	},
	"cl100k_base": {
		Models:         []string{"GPT-4", "GPT-3.5-turbo", "text-embedding-3-*"},
		NominalContext: 8_192,
	},
	"p50k_base": {
		Models:         []string{"text-davinci-003", "code-davinci-002"},
		NominalContext: 4_096,
	},
	"p50k_edit": {
		Models:         []string{"text-davinci-edit-001", "code-davinci-edit-001"},
		NominalContext: 4_096,
	},
	"r50k_base": {
		Models:         []string{"davinci", "curie", "babbage", "ada"},
		NominalContext: 2_049,
	},
}

// Known reports whether name is one of the five supported encoding names.
func Known(name string) bool {
	_, ok := infoByName[name]
	return ok
}

// InfoFor returns the informational metadata for name. Callers should check
// Known first; InfoFor returns the zero Info for unrecognised names.
func InfoFor(name string) Info {
	return infoByName[name]
}

// Names returns the five supported encoding names in the canonical order
// used for --help text and error messages.
func Names() []string {
	return []string{"o200k_base", "cl100k_base", "p50k_base", "p50k_edit", "r50k_base"}
}
