package backup

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"task-reminder/internal/model"
)

//go:embed tasks.schema.json
var schemaJSON []byte

const schemaURL = "https://task-reminder.local/schema/tasks.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func taskSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

func validateSchema(data []byte) error {
	schema, err := taskSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidData, schemaMessage(err))
	}
	return nil
}

// schemaMessage flattens a validation error tree into "path: message" leaves.
func schemaMessage(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	var msgs []string
	collectSchemaErrors(ve, &msgs)
	return strings.Join(msgs, "; ")
}

func collectSchemaErrors(ve *jsonschema.ValidationError, msgs *[]string) {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*msgs = append(*msgs, fmt.Sprintf("%s: %s", loc, ve.Message))
		return
	}
	for _, cause := range ve.Causes {
		collectSchemaErrors(cause, msgs)
	}
}

// validateTasks is the structural check shared by every format.
func validateTasks(tasks []model.Task) error {
	seen := make(map[string]struct{}, len(tasks))
	for i := range tasks {
		t := &tasks[i]
		if strings.TrimSpace(t.ID) == "" {
			return fmt.Errorf("%w: task %d has no id", ErrInvalidData, i)
		}
		if strings.TrimSpace(t.Title) == "" {
			return fmt.Errorf("%w: task %q has no title", ErrInvalidData, t.ID)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidData, t.ID)
		}
		seen[t.ID] = struct{}{}

		if t.Priority == "" {
			t.Priority = model.PriorityMedium
		}
		if !t.Priority.Valid() {
			return fmt.Errorf("%w: task %q has priority %q", ErrInvalidData, t.ID, t.Priority)
		}
	}
	return nil
}
