package utils

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// SlugID derives a URL-safe identifier from a display name, e.g.
// "Castle w/ Slide" -> "castle-w-slide".
func SlugID(name string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// GenerateInvoiceNumber creates an invoice reference with a timestamp part.
// Format: INV-YYYYMMDD-RANDOM
func GenerateInvoiceNumber() string {
	datePart := time.Now().Format("20060102")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("INV-%s-%s", datePart, randomPart)
}
