// Package schemas validates model-generated JSON against the embedded JSON
// Schema documents before any of it is trusted.
package schemas

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Schema names accepted by ValidateJSONString.
const (
	FeedbackSchema     = "feedback"
	QuestionsSchema    = "questions"
	ImprovementsSchema = "improvements"
)

var (
	schemaCache = make(map[string]*gojsonschema.Schema)
	schemaMu    sync.Mutex
)

// ValidationError reports the individual field failures of a document.
type ValidationError struct {
	Schema string
	Errors []string
}

// Error returns a description of the validation failures.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("document failed %s schema validation: %s", e.Schema, strings.Join(e.Errors, "; "))
}

// getSchema compiles and caches the named schema.
func getSchema(name string) (*gojsonschema.Schema, error) {
	schemaMu.Lock()
	defer schemaMu.Unlock()

	if schema, ok := schemaCache[name]; ok {
		return schema, nil
	}

	data, err := schemaFiles.ReadFile(name + ".schema.json")
	if err != nil {
		return nil, fmt.Errorf("unknown schema %q: %w", name, err)
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %q: %w", name, err)
	}

	schemaCache[name] = schema
	return schema, nil
}

// ValidateJSONString validates a JSON document against the named schema.
// It returns a *ValidationError when the document is well-formed JSON but
// violates the schema.
func ValidateJSONString(name, document string) error {
	schema, err := getSchema(name)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(document))
	if err != nil {
		return fmt.Errorf("failed to validate document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Schema: name}
	for _, desc := range result.Errors() {
		verr.Errors = append(verr.Errors, desc.String())
	}
	return verr
}
