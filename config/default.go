// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/filesan-cli/filesan/color"
	"github.com/filesan-cli/filesan/constant"
	"github.com/filesan-cli/filesan/key"
	"github.com/filesan-cli/filesan/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Filesan + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case int64:
		return "int64"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case map[string][]string:
		return "map[string][]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

// DefaultCategories is the factory category table mapping bucket names to file extensions.
var DefaultCategories = map[string][]string{
	"Documents": {".pdf", ".doc", ".docx", ".txt", ".rtf", ".odt", ".xls",
		".xlsx", ".ppt", ".pptx", ".csv", ".md", ".tex"},
	"Images": {".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".ico",
		".tiff", ".webp", ".heic", ".raw"},
	"Videos": {".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm",
		".m4v", ".mpg", ".mpeg"},
	"Audio": {".mp3", ".wav", ".flac", ".aac", ".ogg", ".wma", ".m4a",
		".opus", ".aiff"},
	"Archives": {".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz",
		".iso", ".dmg"},
	"Code": {".py", ".js", ".java", ".cpp", ".c", ".h", ".cs", ".php",
		".rb", ".go", ".rs", ".swift", ".kt", ".html", ".css", ".sql"},
	"Executables": {".exe", ".msi", ".app", ".deb", ".rpm", ".apk"},
}

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.OrganizeCategories, DefaultCategories, "Category table mapping bucket names to lowercase file extensions (with the leading dot).\nAn extension belongs to at most one category; re-registering one overrides the previous owner with a warning")
	register(key.OrganizeDefaultCategory, "Other", "Category used for files whose extension is unknown or missing")
	register(key.OrganizeIgnoreFiles, []string{".ds_store", "thumbs.db", "desktop.ini"}, "File names (case-insensitive) that are never organized")
	register(key.OrganizeIgnoreFolders, []string{"node_modules", ".git", "__pycache__"}, "Folder names that are pruned entirely during recursive scans and never receive moves")
	register(key.OrganizeIgnoreHidden, true, "Skip dotfiles during scanning (non-Windows platforms only)")
	register(key.OrganizeDuplicateStrategy, "rename", "What to do when the destination already exists.\nAvailable options are: rename, skip, overwrite")
	register(key.OrganizeMoveSymlinks, true, "Move symbolic links as the link itself rather than skipping them")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.LogsFile, "filesan.log", "Log file name inside the logs directory")
	register(key.LogsMaxSize, 5242880, "Rotate the log file once it exceeds this size in bytes")
	register(key.LogsBackupCount, 3, "Number of rotated log backups to retain")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.CliColored, true, "Enable colored CLI output")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
