package models

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// NewUserID builds an identifier from the name initials, the current Unix
// time in milliseconds and a random suffix. Collisions are possible but
// accepted for this single-writer demo store; see DESIGN.md.
func NewUserID(firstName, lastName string, now time.Time) string {
	return fmt.Sprintf("%s%s%d%d",
		initial(firstName, "U"), initial(lastName, "S"),
		now.UnixMilli(), rand.Intn(10000))
}

// NewCardID builds a vault-unique card identifier.
func NewCardID(now time.Time) string {
	return fmt.Sprintf("CARD%d%d", now.UnixMilli(), rand.Intn(1000))
}

func initial(name, fallback string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	r := []rune(name)
	return strings.ToUpper(string(r[0]))
}
