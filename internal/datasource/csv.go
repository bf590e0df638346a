package datasource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"healthgrid/internal/domain"
)

// timeLayouts are tried in order for timestamp cells
var timeLayouts = []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"}

// record is one CSV row addressed by lower-cased header name
type record struct {
	line   int
	fields map[string]string
}

func (r record) str(name string) string {
	return strings.TrimSpace(r.fields[name])
}

func (r record) asFloat(name string) (float64, error) {
	s := r.str(name)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: column %s: %w", r.line, name, err)
	}
	return v, nil
}

func (r record) asInt(name string) (int, error) {
	s := r.str(name)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("line %d: column %s: %w", r.line, name, err)
	}
	return v, nil
}

func (r record) asBool(name string) (bool, error) {
	s := strings.ToLower(r.str(name))
	switch s {
	case "", "no", "n":
		return false, nil
	case "yes", "y":
		return true, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("line %d: column %s: %w", r.line, name, err)
	}
	return v, nil
}

func (r record) asTime(name string) (time.Time, error) {
	s := r.str(name)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("line %d: column %s: unrecognized time %q", r.line, name, s)
}

// DetectKind guesses the record kind from a CSV header
func DetectKind(header []string) (domain.DatasetKind, bool) {
	has := make(map[string]bool, len(header))
	for _, h := range header {
		has[normalizeHeader(h)] = true
	}
	switch {
	case has["sku"]:
		return domain.KindSupplements, true
	case has["calories"] || has["food"]:
		return domain.KindFood, true
	case has["unit"] || has["taken_at"]:
		return domain.KindMeasurements, true
	}
	return "", false
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ReplaceAll(h, " ", "_")
}

func decodeCSV(r io.Reader, kind domain.DatasetKind) (domain.Bundle, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return domain.Bundle{}, fmt.Errorf("CSV file is empty")
	}
	if err != nil {
		return domain.Bundle{}, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i := range header {
		header[i] = normalizeHeader(header[i])
	}

	if kind == "" {
		detected, ok := DetectKind(header)
		if !ok {
			return domain.Bundle{}, fmt.Errorf("%w: cannot detect kind from header %v", ErrUnknownKind, header)
		}
		kind = detected
	}

	var bundle domain.Bundle
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.Bundle{}, fmt.Errorf("failed to read CSV: %w", err)
		}
		line++

		rec := record{line: line, fields: make(map[string]string, len(header))}
		for i, value := range row {
			if i < len(header) {
				rec.fields[header[i]] = value
			}
		}

		if err := appendRecord(&bundle, kind, rec); err != nil {
			return domain.Bundle{}, err
		}
	}
	return bundle, nil
}

func appendRecord(b *domain.Bundle, kind domain.DatasetKind, rec record) error {
	switch kind {
	case domain.KindMeasurements:
		m, err := measurementFrom(rec)
		if err != nil {
			return err
		}
		b.Measurements = append(b.Measurements, m)
	case domain.KindFood:
		f, err := foodFrom(rec)
		if err != nil {
			return err
		}
		b.Food = append(b.Food, f)
	case domain.KindSupplements:
		s, err := supplementFrom(rec)
		if err != nil {
			return err
		}
		b.Supplements = append(b.Supplements, s)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return nil
}

func measurementFrom(rec record) (domain.Measurement, error) {
	value, err := rec.asFloat("value")
	if err != nil {
		return domain.Measurement{}, err
	}
	takenAt, err := rec.asTime("taken_at")
	if err != nil {
		return domain.Measurement{}, err
	}
	return domain.Measurement{
		ID:      rec.str("id"),
		Kind:    rec.str("kind"),
		Value:   value,
		Unit:    rec.str("unit"),
		TakenAt: takenAt,
		Note:    rec.str("note"),
	}, nil
}

func foodFrom(rec record) (domain.FoodEntry, error) {
	var (
		f   domain.FoodEntry
		err error
	)
	f.ID = rec.str("id")
	f.Meal = rec.str("meal")
	f.Food = rec.str("food")
	if f.Calories, err = rec.asInt("calories"); err != nil {
		return f, err
	}
	if f.ProteinG, err = rec.asFloat("protein_g"); err != nil {
		return f, err
	}
	if f.CarbsG, err = rec.asFloat("carbs_g"); err != nil {
		return f, err
	}
	if f.FatG, err = rec.asFloat("fat_g"); err != nil {
		return f, err
	}
	if f.LoggedAt, err = rec.asTime("logged_at"); err != nil {
		return f, err
	}
	return f, nil
}

func supplementFrom(rec record) (domain.Supplement, error) {
	var (
		s   domain.Supplement
		err error
	)
	s.SKU = rec.str("sku")
	s.Name = rec.str("name")
	s.Brand = rec.str("brand")
	s.Category = rec.str("category")
	if s.PriceCents, err = rec.asInt("price_cents"); err != nil {
		return s, err
	}
	if s.InStock, err = rec.asBool("in_stock"); err != nil {
		return s, err
	}
	if s.Rating, err = rec.asFloat("rating"); err != nil {
		return s, err
	}
	return s, nil
}
