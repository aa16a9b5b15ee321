// Package types holds the shared data structures used across the
// application. Keeping them in one place prevents import cycles: the
// roster, the storage backends and the menu handlers can all import types
// without depending on each other.
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultMaxNameLength is the longest first or last name accepted when no
// configuration says otherwise.
const DefaultMaxNameLength = 19

// Student represents a single student record.
//
// Number is the 1-based position the record had when it was appended. It
// is stored, not derived, so records loaded from a file keep whatever
// number the file carried.
type Student struct {
	Number    int    `json:"number"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
}

// NameRule checks a single name token against the configured bounds.
//
// The maximum length is only known at runtime (it comes from config), so
// the rule is applied with validator.Var and a tag built once in
// NewNameRule rather than with a static struct tag.
type NameRule struct {
	validate *validator.Validate
	tag      string
	max      int
}

// NewNameRule returns a rule accepting non-empty names of at most maxLen
// characters. A non-positive maxLen falls back to DefaultMaxNameLength.
func NewNameRule(maxLen int) *NameRule {
	if maxLen <= 0 {
		maxLen = DefaultMaxNameLength
	}

	return &NameRule{
		validate: validator.New(),
		tag:      fmt.Sprintf("required,max=%d", maxLen),
		max:      maxLen,
	}
}

// Max returns the longest accepted name length.
func (r *NameRule) Max() int {
	return r.max
}

// Check returns nil for an acceptable name, or validator.ValidationErrors
// describing which bound was broken.
func (r *NameRule) Check(name string) error {
	return r.validate.Var(name, r.tag)
}

// Valid reports whether both names of s pass the rule.
func (r *NameRule) Valid(s Student) bool {
	return r.Check(s.FirstName) == nil && r.Check(s.LastName) == nil
}
