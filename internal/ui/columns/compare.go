package columns

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	collatorMu sync.Mutex
	collator   = collate.New(language.English, collate.IgnoreCase)
)

// CompareStrings orders strings by locale collation, case-insensitively.
// Strings that collate equal fall back to byte order so the result is total.
func CompareStrings(a, b string) int {
	collatorMu.Lock()
	c := collator.CompareString(a, b)
	collatorMu.Unlock()
	if c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// CompareValues three-way compares two defined accessor values.
//
// Values of the same kind compare naturally (numbers numerically, times
// chronologically, false before true, strings by collation). Mixed kinds fall
// back to comparing their formatted text.
func CompareValues(a, b any) int {
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return CompareStrings(x, y)
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		}
	}

	if c, ok := compareNumbers(a, b); ok {
		return c
	}

	return CompareStrings(FormatValue(a), FormatValue(b))
}

func compareNumbers(a, b any) (int, bool) {
	x, ok := asFloat(a)
	if !ok {
		return 0, false
	}
	y, ok := asFloat(b)
	if !ok {
		return 0, false
	}
	switch {
	case x < y:
		return -1, true
	case x > y:
		return 1, true
	}
	return 0, true
}

func asFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// DefaultRowID derives a row identity from an ID field or an "id" map key.
// positional is true when neither exists and the original index was used.
func DefaultRowID(row any, index int) (id string, positional bool) {
	for _, name := range []string{"ID", "Id", "id"} {
		if v, ok := fieldValue(row, name); ok && defined(v) {
			if s := FormatValue(v); s != "" {
				return s, false
			}
		}
	}
	return fmt.Sprintf("#%d", index), true
}
