// File: pkg/pack/types.go
package pack

// Arguments holds the configuration options for one packing run.
type Arguments struct {
	Paths       []string // File or directory paths to render.
	Output      string   // Optional destination file for the artifact.
	NoClipboard bool     // If true, the clipboard write is skipped.
	RulesFile   string   // Per-root rules file name; empty means the default.
}

// binaryPlaceholder replaces the content of files classified as binary.
const binaryPlaceholder = "[Binary file]"

// indentUnit is the indentation applied per tree depth level.
const indentUnit = "    "

// branchMarker prefixes every entry line in the file map.
const branchMarker = "├── "
