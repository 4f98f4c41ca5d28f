package ast

import (
	"strings"
	"unicode/utf8"
)

// IsImportPath reports whether path is valid as the path operand of an
// import statement (spec §4.2, §6): a relative or absolute slash-separated
// path ending in a file with an extension. Valid: "a.a", "a/a.a",
// "/a/a.a", "../a.a", "a/../a.a". Invalid: "", "/", "a", "aa.", "a/", "..".
func IsImportPath(path string) bool {
	if path == "" || path[len(path)-1] == '/' {
		return false
	}
	names := strings.Split(path, "/")
	for i, name := range names[:len(names)-1] {
		if i == 0 && name == "" {
			continue // a leading "/" makes the path absolute.
		}
		if name != ".." && !isDirComponent(name) {
			return false
		}
	}
	return isFileComponent(names[len(names)-1])
}

func isDirComponent(name string) bool {
	if name == "" || utf8.RuneCountInString(name) >= 256 {
		return false
	}
	if name == "." || strings.Contains(name, "..") {
		return false
	}
	if name[0] == ' ' || name[len(name)-1] == ' ' {
		return false
	}
	return !isReservedName(name)
}

func isFileComponent(name string) bool {
	length := utf8.RuneCountInString(name)
	if length <= 2 || length >= 256 {
		return false
	}
	if name[0] == '.' || name[len(name)-1] == '.' {
		return false
	}
	lower := strings.ToLower(name)
	dot := strings.LastIndexByte(lower, '.')
	if dot < 0 {
		return false // an extension is required.
	}
	ext := lower[dot+1:]
	if strings.IndexByte(ext, '.') >= 0 {
		return false
	}
	if name[0] == ' ' || name[len(name)-1] == ' ' {
		return false
	}
	return !isReservedName(name)
}

// isReservedName rejects names that are not portable across filesystems
// (Windows device names and characters invalid in a Windows path), so an
// import path validated here is always safe to use as a copy destination
// during emission.
func isReservedName(name string) bool {
	const del = '\x7f'
	for i := 0; i < len(name); i++ {
		switch c := name[i]; {
		case c == '"' || c == '*' || c == '/' || c == ':' || c == '<' || c == '>' || c == '?' || c == '\\' || c == '|' || c == del:
			return true
		case c <= '\x1f':
			return true
		}
	}
	switch name {
	case "con", "prn", "aux", "nul",
		"com0", "com1", "com2", "com3", "com4", "com5", "com6", "com7", "com8", "com9",
		"lpt0", "lpt1", "lpt2", "lpt3", "lpt4", "lpt5", "lpt6", "lpt7", "lpt8", "lpt9":
		return true
	}
	if len(name) >= 4 {
		switch name[:4] {
		case "con.", "prn.", "aux.", "nul.":
			return true
		}
	}
	if len(name) >= 5 {
		switch name[:5] {
		case "com0.", "com1.", "com2.", "com3.", "com4.", "com5.", "com6.",
			"com7.", "com8.", "com9.", "lpt0.", "lpt1.", "lpt2.", "lpt3.",
			"lpt4.", "lpt5.", "lpt6.", "lpt7.", "lpt8.", "lpt9.":
			return true
		}
	}
	return false
}

// ImportPlacement is a slot in the emitted output where an imported file's
// contents are placed (spec §4.5, §6).
type ImportPlacement int

const (
	PlacementUnknown ImportPlacement = iota
	PlacementHtmlHead
	PlacementJavascriptInit
	PlacementJavascriptSlideChange
)

// placementState drives ClassifyImportPath's right-to-left walk over the
// extension chain of an import path.
type placementState int

const (
	stateUnknown placementState = iota
	stateHTMLUnknown
	stateHTMLHead
)

// ClassifyImportPath determines the ImportPlacement an import statement's
// path resolves to, by walking its extension chain right-to-left (spec
// §4.5, §6). Only "*.head.html" is currently recognised; any other chain
// resolves to PlacementUnknown.
func ClassifyImportPath(path string) ImportPlacement {
	base := path
	if slash := strings.LastIndexByte(base, '/'); slash >= 0 {
		base = base[slash+1:]
	}
	parts := strings.Split(base, ".")
	st := stateUnknown
	for i := len(parts) - 1; i >= 1; i-- {
		ext := strings.ToLower(parts[i])
		switch st {
		case stateUnknown:
			if ext == "html" {
				st = stateHTMLUnknown
			} else {
				return PlacementUnknown
			}
		case stateHTMLUnknown:
			if ext == "head" {
				st = stateHTMLHead
			} else {
				return PlacementUnknown
			}
		default:
			return PlacementUnknown
		}
	}
	if st == stateHTMLHead {
		return PlacementHtmlHead
	}
	return PlacementUnknown
}
