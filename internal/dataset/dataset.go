// Package dataset loads numeric samples for the statistical CLI.
//
// Three encodings are accepted, dispatched on the file extension: JSON
// documents validated against the embedded dataset schema, LZ4-framed plain
// text, and plain text. Plain text holds float values separated by
// whitespace or commas, with #-prefixed comments.
package dataset

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/pierrec/lz4/v4"
	"github.com/xeipuuv/gojsonschema"
)

// Sentinel parse errors.
var (
	// ErrBadValue is returned when a plain-text token does not parse as a
	// float.
	ErrBadValue = errors.New("unparsable sample value")

	// ErrSchemaViolation is returned when a JSON dataset does not conform
	// to the dataset schema.
	ErrSchemaViolation = errors.New("dataset schema violation")
)

// File extensions with dedicated decoders.
const (
	extJSON = ".json"
	extLZ4  = ".lz4"
)

// StdinPath is the path argument that selects standard input.
const StdinPath = "-"

// Dataset is the JSON document shape accepted by Load.
type Dataset struct {
	Name   string    `json:"name,omitempty"`
	Values []float64 `json:"values"`
}

// Load reads a sample from path. StdinPath reads plain text from standard
// input; otherwise the extension picks the decoder, defaulting to plain
// text. Only JSON documents can carry a dataset name; plain-text and LZ4
// datasets are named after the file.
func Load(path string) (*Dataset, error) {
	if path == StdinPath {
		values, err := ParseText(os.Stdin)
		if err != nil {
			return nil, err
		}

		return &Dataset{Values: values}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sample: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case extJSON:
		data, readErr := io.ReadAll(file)
		if readErr != nil {
			return nil, fmt.Errorf("read sample: %w", readErr)
		}

		return ParseJSON(data)
	case extLZ4:
		values, parseErr := ParseText(lz4.NewReader(file))
		if parseErr != nil {
			return nil, parseErr
		}

		return &Dataset{Name: datasetName(path), Values: values}, nil
	default:
		values, parseErr := ParseText(file)
		if parseErr != nil {
			return nil, parseErr
		}

		return &Dataset{Name: datasetName(path), Values: values}, nil
	}
}

// datasetName derives a display name from a sample path: the base name
// without the compression suffix and format extension, so
// "runs/latency.txt.lz4" becomes "latency".
func datasetName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, extLZ4)

	if ext := filepath.Ext(name); ext != name {
		name = strings.TrimSuffix(name, ext)
	}

	return name
}

// ParseText reads whitespace- or comma-separated float values from r.
// Everything from a '#' to the end of its line is a comment.
func ParseText(r io.Reader) ([]float64, error) {
	var values []float64

	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++

		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}

		for _, field := range strings.FieldsFunc(text, isSeparator) {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q on line %d", ErrBadValue, field, line)
			}

			values = append(values, value)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read sample: %w", err)
	}

	return values, nil
}

// isSeparator reports whether r separates values in plain-text samples.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == ','
}

// ParseJSON validates data against the dataset schema and decodes the
// document.
func ParseJSON(data []byte) (*Dataset, error) {
	schemaBytes, err := SchemaFS.ReadFile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded schema: %w", err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("validate dataset: %w", err)
	}

	if !result.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrSchemaViolation, describeSchemaErrors(result.Errors()))
	}

	var doc Dataset

	decodeErr := json.Unmarshal(data, &doc)
	if decodeErr != nil {
		return nil, fmt.Errorf("decode dataset: %w", decodeErr)
	}

	return &doc, nil
}

// describeSchemaErrors flattens validation errors into one line.
func describeSchemaErrors(validationErrors []gojsonschema.ResultError) string {
	descriptions := make([]string, 0, len(validationErrors))

	for _, validationErr := range validationErrors {
		descriptions = append(descriptions,
			fmt.Sprintf("%s: %s", validationErr.Field(), validationErr.Description()))
	}

	return strings.Join(descriptions, "; ")
}
