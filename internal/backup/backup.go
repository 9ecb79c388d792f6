// Package backup encodes and decodes whole task lists for export and import.
package backup

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"task-reminder/internal/model"
)

// tomlDocument wraps the list because TOML has no top-level arrays.
type tomlDocument struct {
	Tasks []model.Task `toml:"tasks"`
}

// Encode serialises tasks. JSON output is an indented array.
func Encode(tasks []model.Task, f Format) ([]byte, error) {
	if tasks == nil {
		tasks = []model.Task{}
	}

	switch f {
	case FormatJSON:
		return json.MarshalIndent(tasks, "", "  ")
	case FormatYAML:
		return yaml.Marshal(tasks)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(tomlDocument{Tasks: tasks}); err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// Decode parses a backup and checks every task is usable. JSON input is
// additionally validated against the embedded schema.
func Decode(data []byte, f Format) ([]model.Task, error) {
	var tasks []model.Task

	switch f {
	case FormatJSON:
		if err := validateSchema(data); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &tasks); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &tasks); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
		}
	case FormatTOML:
		var doc tomlDocument
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
		}
		tasks = doc.Tasks
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}

	if err := validateTasks(tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}
