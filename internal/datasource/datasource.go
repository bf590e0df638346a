package datasource

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"healthgrid/internal/domain"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	ErrUnknownKind       = errors.New("unknown dataset kind")
)

// Format is a dataset file encoding
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Extensions lists the file extensions Load understands
var Extensions = []string{".csv", ".json", ".toml", ".yaml", ".yml"}

// FormatOf returns the format implied by a file extension
func FormatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, true
	case ".json":
		return FormatJSON, true
	case ".toml":
		return FormatTOML, true
	case ".yaml", ".yml":
		return FormatYAML, true
	}
	return "", false
}

// Load reads a dataset file. Bundle formats (JSON, TOML, YAML) may hold every
// kind; a non-empty kind keeps only that one. CSV files hold a single kind,
// detected from the header when kind is empty.
func Load(path string, kind domain.DatasetKind) (domain.Bundle, error) {
	format, ok := FormatOf(path)
	if !ok {
		return domain.Bundle{}, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return domain.Bundle{}, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	bundle, err := Decode(f, format, kind)
	if err != nil {
		return domain.Bundle{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("Loaded %d records from %s", bundle.Len(), path)
	return bundle, nil
}

// Decode reads a dataset in the given format from r
func Decode(r io.Reader, format Format, kind domain.DatasetKind) (domain.Bundle, error) {
	if kind != "" && !kind.Valid() {
		return domain.Bundle{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	if format == FormatCSV {
		return decodeCSV(r, kind)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return domain.Bundle{}, fmt.Errorf("failed to read dataset: %w", err)
	}

	var bundle domain.Bundle
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&bundle)
	case FormatTOML:
		err = toml.Unmarshal(data, &bundle)
	case FormatYAML:
		err = yaml.Unmarshal(data, &bundle)
	default:
		return domain.Bundle{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return domain.Bundle{}, fmt.Errorf("failed to parse %s: %w", format, err)
	}

	return Only(bundle, kind), nil
}

// Only keeps the records of one kind; an empty kind keeps everything
func Only(b domain.Bundle, kind domain.DatasetKind) domain.Bundle {
	switch kind {
	case domain.KindMeasurements:
		return domain.Bundle{Measurements: b.Measurements}
	case domain.KindFood:
		return domain.Bundle{Food: b.Food}
	case domain.KindSupplements:
		return domain.Bundle{Supplements: b.Supplements}
	}
	return b
}

// KindsIn lists the kinds with at least one record, in display order
func KindsIn(b domain.Bundle) []domain.DatasetKind {
	var kinds []domain.DatasetKind
	if len(b.Measurements) > 0 {
		kinds = append(kinds, domain.KindMeasurements)
	}
	if len(b.Food) > 0 {
		kinds = append(kinds, domain.KindFood)
	}
	if len(b.Supplements) > 0 {
		kinds = append(kinds, domain.KindSupplements)
	}
	return kinds
}
