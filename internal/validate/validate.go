// Package validate holds the input validation rules for every entity the
// API writes. The rules are deliberately decoupled from the persistence
// schema so they can be unit-tested without a database; handlers run them
// before any storage call and return 400 with the field map on failure.
package validate

import (
	"regexp"
	"strings"
)

// Errors maps field names to human-readable messages. A nil or empty map
// means the input passed.
type Errors map[string]string

// OK reports whether validation found no problems.
func (e Errors) OK() bool { return len(e) == 0 }

func (e Errors) set(field, msg string) { e[field] = msg }

// emailRe is intentionally loose: one @, no spaces, a dot in the domain.
// Real verification happens when the agency replies to the address.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email reports whether s looks like an email address.
func Email(s string) bool { return emailRe.MatchString(s) }

func (e Errors) require(field, v string) bool {
	if strings.TrimSpace(v) == "" {
		e.set(field, field+" is required")
		return false
	}
	return true
}

func (e Errors) maxLen(field, v string, max int) {
	if len(v) > max {
		e.set(field, field+" is too long")
	}
}

func (e Errors) email(field, v string) {
	if !Email(v) {
		e.set(field, field+" must be a valid email address")
	}
}
