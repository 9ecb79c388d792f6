package backup

import (
	"fmt"
	"strings"
	"time"
)

// Format is a serialisation format for task backups.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat normalises a user supplied format name. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// ContentType is the MIME type served for downloads.
func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml"
	case FormatTOML:
		return "application/toml"
	default:
		return "application/json"
	}
}

// Filename suggests a download name, e.g. tasks-backup-2024-05-01.json.
func Filename(f Format, now time.Time) string {
	return fmt.Sprintf("tasks-backup-%s.%s", now.Format("2006-01-02"), f)
}
