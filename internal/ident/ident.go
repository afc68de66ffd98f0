// Package ident provides small identity helpers: scaffold run identifiers
// stamped into generated project manifests, and author email validation
// for config files and the interactive flow.
package ident

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// NewID generates a unique identifier for a scaffold run.
//
// The format is "id_<millis>_<base36>", combining the current Unix
// timestamp in milliseconds with a random base36 suffix. Successive calls
// produce distinct values even within the same millisecond thanks to the
// random component.
func NewID() string {
	millis := time.Now().UnixMilli()
	// 9 base36 digits of randomness, zero-padded for a stable width.
	suffix := strconv.FormatInt(rand.Int63n(36*36*36*36*36*36*36*36*36), 36)
	for len(suffix) < 9 {
		suffix = "0" + suffix
	}
	return fmt.Sprintf("id_%d_%s", millis, suffix)
}

// ValidateEmail checks that s is a plausible email address.
//
// The rules are deliberately conservative rather than RFC-complete:
//   - exactly one "@" separating a non-empty local part and domain
//   - no consecutive dots anywhere
//   - neither part may start or end with a dot
//   - the domain must contain at least one dot (a TLD)
//   - no whitespace
func ValidateEmail(s string) error {
	if s == "" {
		return fmt.Errorf("email must not be empty")
	}
	if strings.ContainsAny(s, " \t\n") {
		return fmt.Errorf("invalid email %q: must not contain whitespace", s)
	}
	if strings.Contains(s, "..") {
		return fmt.Errorf("invalid email %q: must not contain consecutive dots", s)
	}

	at := strings.Count(s, "@")
	if at != 1 {
		return fmt.Errorf("invalid email %q: must contain exactly one @", s)
	}

	parts := strings.SplitN(s, "@", 2)
	local, domain := parts[0], parts[1]

	if local == "" {
		return fmt.Errorf("invalid email %q: missing local part", s)
	}
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return fmt.Errorf("invalid email %q: local part must not start or end with a dot", s)
	}

	if domain == "" {
		return fmt.Errorf("invalid email %q: missing domain", s)
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return fmt.Errorf("invalid email %q: domain must not start or end with a dot", s)
	}
	if !strings.Contains(domain, ".") {
		return fmt.Errorf("invalid email %q: domain must contain a dot", s)
	}

	return nil
}
