package usecase

import (
	"math"
	"strconv"
	"strings"
)

// Admin edit payloads arrive as raw JSON maps, so every value needs
// coercion before it can hit a typed column. The storefront's admin UI
// sends blanks for cleared text inputs and strings for numeric inputs
// often enough that silent coercion beats rejection here.

// stringOrNil turns a decoded JSON value into a nullable text column
// value. Blank and non-string values become NULL.
func stringOrNil(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}

	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// numberOrNil turns a decoded JSON value into a nullable numeric column
// value. Accepts JSON numbers and numeric strings; anything else,
// including NaN and blank strings, becomes NULL.
func numberOrNil(v any) *float64 {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return nil
		}
		return &n
	case string:
		trimmed := strings.TrimSpace(n)
		if trimmed == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return nil
		}
		return &parsed
	}
	return nil
}

// boolAsInt turns a decoded JSON value into a nullable 0/1 flag column
// value. Accepts booleans, numbers and the usual string spellings.
func boolAsInt(v any) *int {
	yes, no := 1, 0

	switch b := v.(type) {
	case bool:
		if b {
			return &yes
		}
		return &no
	case float64:
		if b != 0 {
			return &yes
		}
		return &no
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "1", "true", "yes":
			return &yes
		case "0", "false", "no":
			return &no
		}
	}
	return nil
}
