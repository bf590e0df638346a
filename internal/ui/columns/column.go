package columns

import (
	"errors"
	"fmt"
	"log"
	"math"
	"reflect"
	"strconv"
	"sync"
	"time"
)

// Align controls horizontal text alignment within a cell
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Validation errors returned by Validate
var (
	ErrEmptyKey     = errors.New("column key is empty")
	ErrDuplicateKey = errors.New("duplicate column key")
	ErrNoAccessor   = errors.New("column has no accessor")
)

// Column declares how a grid extracts, formats, sorts and filters one field of T.
//
// The accessor is either Value or Field. Field names an exported struct field
// (or a key of a map with string keys) and is only consulted when Value is nil.
type Column[T any] struct {
	Key         string
	Header      string
	Field       string
	Value       func(T) any
	Format      func(any) string
	Compare     func(a, b any) int
	Sortable    bool
	Filterable  bool
	Interactive bool
	Align       Align
	Width       int
	Description string
}

// Entry pairs a row with its position in the original collection
type Entry[T any] struct {
	Row   T
	Index int
}

// Entries wraps rows with their original positions
func Entries[T any](rows []T) []Entry[T] {
	entries := make([]Entry[T], len(rows))
	for i, row := range rows {
		entries[i] = Entry[T]{Row: row, Index: i}
	}
	return entries
}

// Title returns the header text, falling back to the key
func (c Column[T]) Title() string {
	if c.Header != "" {
		return c.Header
	}
	return c.Key
}

// Raw returns the accessor value for row. ok is false when the accessor
// panics or yields an undefined value (nil, nil pointer, NaN).
func (c Column[T]) Raw(row T) (v any, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			warnOnce(c.Key, r)
			v, ok = nil, false
		}
	}()

	switch {
	case c.Value != nil:
		v = c.Value(row)
	case c.Field != "":
		var found bool
		v, found = fieldValue(row, c.Field)
		if !found {
			return nil, false
		}
	default:
		return nil, false
	}

	if !defined(v) {
		return nil, false
	}
	return v, true
}

// Text returns the rendered cell text for row. Search, filtering and the
// renderer all go through Text so display and matching never disagree.
func (c Column[T]) Text(row T) (string, bool) {
	v, ok := c.Raw(row)
	if !ok {
		return "", false
	}
	if c.Format == nil {
		return FormatValue(v), true
	}
	return c.format(v)
}

func (c Column[T]) format(v any) (s string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			warnOnce(c.Key, r)
			s, ok = "", false
		}
	}()
	return c.Format(v), true
}

// FormatValue renders a defined accessor value as cell text
func FormatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 {
			return x.Format("2006-01-02")
		}
		return x.Format("2006-01-02 15:04")
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

// Validate checks that every column has a unique, non-empty key and an accessor
func Validate[T any](cols []Column[T]) error {
	seen := make(map[string]bool, len(cols))
	for i, col := range cols {
		if col.Key == "" {
			return fmt.Errorf("column %d: %w", i, ErrEmptyKey)
		}
		if seen[col.Key] {
			return fmt.Errorf("column %q: %w", col.Key, ErrDuplicateKey)
		}
		if col.Value == nil && col.Field == "" {
			return fmt.Errorf("column %q: %w", col.Key, ErrNoAccessor)
		}
		seen[col.Key] = true
	}
	return nil
}

// IndexOf returns the position of the column with key, or -1
func IndexOf[T any](cols []Column[T], key string) int {
	for i, col := range cols {
		if col.Key == key {
			return i
		}
	}
	return -1
}

var warned sync.Map

// warnOnce logs a recovered accessor failure once per column key
func warnOnce(key string, r any) {
	if _, loaded := warned.LoadOrStore(key, true); !loaded {
		log.Printf("column %q: accessor failed: %v", key, r)
	}
}

func defined(v any) bool {
	if v == nil {
		return false
	}
	switch x := v.(type) {
	case float64:
		return !math.IsNaN(x)
	case float32:
		return !math.IsNaN(float64(x))
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

// fieldValue looks up name on a struct (or pointer to struct) or a string-keyed map
func fieldValue(row any, name string) (any, bool) {
	rv := reflect.ValueOf(row)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		f := rv.FieldByName(name)
		if !f.IsValid() || !f.CanInterface() {
			return nil, false
		}
		return f.Interface(), true
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	}
	return nil, false
}
