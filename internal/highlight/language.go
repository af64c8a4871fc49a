package highlight

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// languageMap maps common extensions to Chroma language identifiers.
var languageMap = map[string]string{
	".go":    "go",
	".py":    "python",
	".js":    "javascript",
	".ts":    "typescript",
	".tsx":   "tsx",
	".c":     "c",
	".h":     "c",
	".cpp":   "cpp",
	".cc":    "cpp",
	".hpp":   "cpp",
	".rs":    "rust",
	".rb":    "ruby",
	".java":  "java",
	".sh":    "bash",
	".bash":  "bash",
	".zsh":   "zsh",
	".lua":   "lua",
	".sql":   "sql",
	".html":  "html",
	".css":   "css",
	".json":  "json",
	".yaml":  "yaml",
	".yml":   "yaml",
	".toml":  "toml",
	".ini":   "ini",
	".md":    "markdown",
	".vim":   "vim",
	".proto": "protobuf",
}

// DetectLanguage returns the Chroma language identifier for path, or ""
// when no lexer fits and the character-class colorizer should be used.
func DetectLanguage(path string) string {
	if path == "" {
		return ""
	}
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := languageMap[ext]; ok {
		return lang
	}

	switch strings.ToLower(filepath.Base(path)) {
	case "dockerfile":
		return "docker"
	case "makefile":
		return "make"
	}

	if lex := lexers.Match(filepath.Base(path)); lex != nil {
		if name := strings.ToLower(lex.Config().Name); name != "plaintext" {
			return name
		}
	}
	return ""
}
