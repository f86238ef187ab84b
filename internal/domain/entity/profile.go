package entity

import "strings"

// UserProfile is the caller-owned contact record. Absence of a profile
// (a nil *UserProfile) means the caller has not completed setup yet; a
// profile is only ever created by an explicit save, never implicitly.
type UserProfile struct {
	Name        string // Required, non-empty after trimming.
	Email       string // Optional; empty when unset.
	PhoneNumber string // Optional; empty when unset.
}

// IsComplete reports whether the profile satisfies the minimum the
// admin area requires before granting access.
func (p *UserProfile) IsComplete() bool {
	return p != nil && strings.TrimSpace(p.Name) != ""
}
