package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// Slugify converts a string to a URL-friendly slug
func Slugify(s string) string {
	// Convert to lowercase
	s = strings.ToLower(s)

	// Replace spaces with hyphens
	s = strings.ReplaceAll(s, " ", "-")

	// Remove non-alphanumeric characters except hyphens
	reg := regexp.MustCompile("[^a-z0-9-]")
	s = reg.ReplaceAllString(s, "")

	// Remove multiple consecutive hyphens
	reg = regexp.MustCompile("-+")
	s = reg.ReplaceAllString(s, "-")

	// Trim hyphens from start and end
	s = strings.Trim(s, "-")

	return s
}

// GenerateKOTNo builds a kitchen order ticket number from the day and a
// per-day sequence, e.g. KOT-20260831-007
func GenerateKOTNo(now time.Time, seq int64) string {
	return fmt.Sprintf("KOT-%s-%03d", now.Format("20060102"), seq)
}

// GenerateBillNo builds a bill number from the day and a per-day
// sequence, e.g. BILL-20260831-012
func GenerateBillNo(now time.Time, seq int64) string {
	return fmt.Sprintf("BILL-%s-%03d", now.Format("20060102"), seq)
}
