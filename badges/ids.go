// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package badges

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Badge ids carry 96 bits of entropy rendered as 24 lowercase hex characters.
// That keeps collisions astronomically unlikely even across very large
// stores, so the rejection sampling below essentially never loops.
const idByteLength = 12

// maxIDAttempts caps the rejection sampling loop. Hitting the cap means the
// randomness source is broken, not that we got unlucky.
const maxIDAttempts = 100

func randomID() (string, error) {
	buf := make([]byte, idByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed reading random bytes for badge id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// uniqueID generates a badge id that is not already used anywhere in the
// store. used is consulted against the union of all classes' badge ids.
func uniqueID(generate func() (string, error), used func(string) bool) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := generate()
		if err != nil {
			return "", err
		}
		if !used(id) {
			return id, nil
		}
	}
	return "", ErrTooManyIDCollisions
}
