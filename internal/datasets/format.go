package datasets

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Number formats a float with at most decimals fraction digits, trimming zeros
func Number(decimals int) func(any) string {
	return func(v any) string {
		f, ok := v.(float64)
		if !ok {
			return fmt.Sprint(v)
		}
		s := strconv.FormatFloat(f, 'f', decimals, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		return s
	}
}

// Grams renders a macro-nutrient amount
func Grams(v any) string {
	return Number(1)(v) + " g"
}

// Money renders an integer amount of cents as dollars
func Money(v any) string {
	cents, ok := v.(int)
	if !ok {
		return fmt.Sprint(v)
	}
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// Stars renders a 0-5 rating as filled and empty stars plus the number
func Stars(v any) string {
	r, ok := v.(float64)
	if !ok {
		return fmt.Sprint(v)
	}
	r = math.Max(0, math.Min(5, r))
	full := int(math.Round(r))
	return strings.Repeat("★", full) + strings.Repeat("☆", 5-full) + " " + strconv.FormatFloat(r, 'f', 1, 64)
}

// Date renders only the calendar day
func Date(v any) string {
	t, ok := v.(time.Time)
	if !ok {
		return fmt.Sprint(v)
	}
	return t.Format("2006-01-02")
}

// DateTime renders day and minute
func DateTime(v any) string {
	t, ok := v.(time.Time)
	if !ok {
		return fmt.Sprint(v)
	}
	return t.Format("2006-01-02 15:04")
}

// YesNo renders a boolean
func YesNo(v any) string {
	if b, ok := v.(bool); ok && b {
		return "yes"
	}
	return "no"
}

// optionalString and friends turn zero values into undefined cells
func optionalString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func optionalTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

func optionalFloat(f float64) any {
	if f == 0 {
		return nil
	}
	return f
}
