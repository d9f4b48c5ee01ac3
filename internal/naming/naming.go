// Package naming allocates collision-free display names inside a scene.
package naming

import (
	"errors"
	"fmt"
)

// DefaultMaxProbe is the number of index slots tried before giving up.
const DefaultMaxProbe = 999

var ErrNamespaceExhausted = errors.New("naming: no free identifier")

// Probe returns the first index in [0, maxProbe) whose candidate name is
// not taken.
func Probe(candidate func(i int) string, taken func(name string) bool, maxProbe int) (int, error) {
	for i := 0; i < maxProbe; i++ {
		if !taken(candidate(i)) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q after %d attempts", ErrNamespaceExhausted, candidate(0), maxProbe)
}

// AllocateUniqueID returns the first "{base} ({i})" not present in
// existing.
func AllocateUniqueID(base string, existing map[string]struct{}, maxProbe int) (string, error) {
	candidate := func(i int) string { return Indexed(base, i) }
	i, err := Probe(candidate, func(name string) bool {
		_, ok := existing[name]
		return ok
	}, maxProbe)
	if err != nil {
		return "", err
	}
	return candidate(i), nil
}

// Indexed formats base with a probe index.
func Indexed(base string, i int) string {
	return fmt.Sprintf("%s (%d)", base, i)
}
