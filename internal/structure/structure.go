package structure

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed structure.yaml
var defaultStructure []byte

//go:embed schema/structure.schema.json
var schemaBytes []byte

// SupportedVersions is the range of structure document versions this build understands.
const SupportedVersions = "^1.0.0"

// ErrInvalidPath is wrapped by errors for folder entries that are not
// clean, relative, forward-slash paths.
var ErrInvalidPath = errors.New("invalid folder path")

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// Spec is an ordered, validated list of relative folder paths.
type Spec struct {
	Version *semver.Version
	folders []string
}

type document struct {
	Version string   `yaml:"version" json:"version"`
	Folders []string `yaml:"folders" json:"folders"`
}

// Folders returns the folder list in creation order. The caller owns the copy.
func (s *Spec) Folders() []string {
	out := make([]string, len(s.folders))
	copy(out, s.folders)
	return out
}

// Len returns the number of folder entries.
func (s *Spec) Len() int { return len(s.folders) }

// Default returns the folder structure built into the binary.
func Default() (*Spec, error) {
	spec, err := Parse(defaultStructure)
	if err != nil {
		return nil, fmt.Errorf("loading built-in structure: %w", err)
	}
	return spec, nil
}

// Parse validates a structure document and returns its folder list.
func Parse(data []byte) (*Spec, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding structure: %w", err)
	}

	v, err := checkVersion(doc.Version)
	if err != nil {
		return nil, err
	}

	for i, f := range doc.Folders {
		if err := ValidatePath(f); err != nil {
			return nil, fmt.Errorf("folders[%d]: %w", i, err)
		}
	}

	return &Spec{Version: v, folders: doc.Folders}, nil
}

// ValidatePath checks that p is a relative, forward-slash separated path with
// no empty, "." or ".." segments.
func ValidatePath(p string) error {
	if p == "" {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if strings.HasPrefix(p, "/") {
		return fmt.Errorf("%w: %q is absolute", ErrInvalidPath, p)
	}
	if strings.Contains(p, `\`) {
		return fmt.Errorf("%w: %q must use forward slashes", ErrInvalidPath, p)
	}
	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case "":
			return fmt.Errorf("%w: %q has an empty segment", ErrInvalidPath, p)
		case ".", "..":
			return fmt.Errorf("%w: %q contains %q", ErrInvalidPath, p, seg)
		}
	}
	return nil
}

// checkVersion parses the document version and matches it against SupportedVersions.
func checkVersion(version string) (*semver.Version, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return nil, fmt.Errorf("parsing structure version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return nil, fmt.Errorf("parsing supported range: %w", err)
	}
	if !c.Check(v) {
		return nil, fmt.Errorf("structure version %s is not supported (want %s)", v, SupportedVersions)
	}
	return v, nil
}

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("structure.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("structure.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// validateSchema round-trips the decoded YAML through JSON so the validator
// sees json.Number values, then reports the first leaf issue.
func validateSchema(raw interface{}) error {
	schema, err := getSchema()
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	jsonData, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("unexpected validation error type: %w", err)
	}
	return fmt.Errorf("invalid structure: %s", firstIssue(ve))
}

func firstIssue(ve *jsonschema.ValidationError) string {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	msg := ve.Error()
	if ve.ErrorKind != nil {
		msg = ve.ErrorKind.LocalizedString(printer)
	}
	if len(ve.InstanceLocation) == 0 {
		return msg
	}
	return "/" + strings.Join(ve.InstanceLocation, "/") + ": " + msg
}
