// Package language maps file extensions to display language names. The
// mapping is a closed, static table: language detection never inspects file
// content, only the final extension.
package language

import "strings"

// Language is a closed enumeration of display names. Unmatched extensions
// map to Other.
type Language string

// Other is the fallback language for unmatched or missing extensions.
const Other Language = "Other"

// byExtension maps a lowercase extension (without the leading dot) to its
// display language. Declared as data, not branching code, so adding a new
// extension never touches the file-stat pipeline.
var byExtension = map[string]Language{
	"rs": "Rust",

	"ts":  "TypeScript",
	"tsx": "TypeScript",

	"js":  "JavaScript",
	"jsx": "JavaScript",
	"mjs": "JavaScript",
	"cjs": "JavaScript",

	"py":  "Python",
	"pyi": "Python",

	"go": "Go",

	"java": "Java",

	"kt":  "Kotlin",
	"kts": "Kotlin",

	"swift": "Swift",

	// .h is ambiguous between C and C++; canonicalized to C. Unambiguous
	// C++ header spellings map to C++.
	"c": "C",
	"h": "C",

	"cc":  "C++",
	"cpp": "C++",
	"cxx": "C++",
	"hpp": "C++",
	"hh":  "C++",
	"hxx": "C++",

	"cs": "C#",

	"rb": "Ruby",

	"php": "PHP",

	"sh":   "Shell",
	"bash": "Shell",
	"zsh":  "Shell",

	"md":       "Markdown",
	"markdown": "Markdown",

	"yaml": "YAML",
	"yml":  "YAML",

	"toml": "TOML",

	"json": "JSON",

	"html": "HTML",
	"htm":  "HTML",

	"css": "CSS",

	"svg": "SVG",

	"vue": "Vue",

	"txt": "Text",
}

// FromPath resolves the Language for a file path by inspecting its final
// extension, case-insensitively. Files without an extension resolve to
// Other.
func FromPath(path string) Language {
	ext := finalExtension(path)
	if ext == "" {
		return Other
	}
	if lang, ok := byExtension[strings.ToLower(ext)]; ok {
		return lang
	}
	return Other
}

// finalExtension returns the final extension of path without the leading
// dot, or "" if path has no extension. A leading dot on the base name
// itself (e.g. ".gitignore") is not treated as an extension.
func finalExtension(path string) string {
	base := path
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	dot := strings.LastIndexByte(base, '.')
	if dot <= 0 {
		return ""
	}
	return base[dot+1:]
}
