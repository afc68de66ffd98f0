package ident

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

// idPattern is the documented shape of generated identifiers.
var idPattern = regexp.MustCompile(`^id_\d+_[0-9a-z]+$`)

// TestNewID_Format verifies generated identifiers match the documented
// id_<digits>_<base36> pattern.
func TestNewID_Format(t *testing.T) {
	for i := 0; i < 10; i++ {
		id := NewID()
		assert.Regexp(t, idPattern, id)
	}
}

// TestNewID_Distinct verifies successive calls produce distinct values,
// even when they land in the same millisecond.
func TestNewID_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.False(t, seen[id], "duplicate id generated: %s", id)
		seen[id] = true
	}
}

// TestValidateEmail covers the accepted and rejected forms.
func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"standard address", "user@example.com", false},
		{"subdomain", "user@mail.example.com", false},
		{"plus tag", "user+tag@example.com", false},
		{"dotted local part", "first.last@example.com", false},
		{"empty", "", true},
		{"missing at", "userexample.com", true},
		{"two ats", "user@@example.com", true},
		{"missing local part", "@example.com", true},
		{"missing domain", "user@", true},
		{"domain without tld", "user@localhost", true},
		{"consecutive dots in local", "first..last@example.com", true},
		{"consecutive dots in domain", "user@example..com", true},
		{"leading dot in local", ".user@example.com", true},
		{"trailing dot in local", "user.@example.com", true},
		{"leading dot in domain", "user@.example.com", true},
		{"trailing dot in domain", "user@example.com.", true},
		{"contains space", "user name@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
