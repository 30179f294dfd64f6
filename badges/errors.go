// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package badges

import (
	"errors"
	"fmt"
)

// Domain rejections are ordinary outcomes, not failures. Their texts are part
// of the authoring API response surface.
var (
	ErrClassExists = errors.New("The Badge Class already exists")
	ErrNoSuchClass = errors.New("No such Badge Class!")
)

// ErrTooManyIDCollisions means the id generator produced an implausible
// number of duplicates. With 96 bits of entropy this signals a broken
// randomness source, not bad luck.
var ErrTooManyIDCollisions = errors.New("badge id generation exceeded the collision retry cap")

// IsRejection reports whether err is an expected domain rejection, as opposed
// to a remote or structural failure. Rejections are never logged as errors.
func IsRejection(err error) bool {
	return errors.Is(err, ErrClassExists) || errors.Is(err, ErrNoSuchClass)
}

// StructuralError means the remote tree violates the store's own layout
// invariants. It is fatal at initialization: the engine refuses to run
// against a store it cannot fully trust.
type StructuralError struct {
	// Subject identifies the broken declaration, e.g. "issuer" or a class name.
	Subject string

	// Missing is the required file that could not be found.
	Missing string
}

func (e StructuralError) Error() string {
	if e.Subject == "issuer" {
		return fmt.Sprintf("invalid declaration of the issuer: cannot find file %q", e.Missing)
	}
	return fmt.Sprintf("invalid declaration of the class %q: cannot find file %q", e.Subject, e.Missing)
}
