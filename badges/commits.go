// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package badges

import (
	"fmt"
	"strings"
)

// Commit messages are a machine-parseable audit log, not incidental text.
// History reconciliation depends on the exact shape of the class metadata
// message, so changing any of these templates is a breaking change to every
// store already written with them.
const (
	classMetadataPrefix = "Add metadata for class '"
	messageSuffix       = "'"
)

func classMetadataCommit(name string) string {
	return fmt.Sprintf("Add metadata for class '%s'", name)
}

func classImageCommit(name string) string {
	return fmt.Sprintf("Add image for class '%s'", name)
}

func issuerMetadataCommit(name string) string {
	return fmt.Sprintf("Add metadata for an issuer '%s'", name)
}

func issuerImageCommit(name string) string {
	return fmt.Sprintf("Add image for an issuer '%s'", name)
}

func issuerAwardPageCommit(name string) string {
	return fmt.Sprintf("Add awarding page for an issuer '%s'", name)
}

func badgeCommit(id, class string) string {
	return fmt.Sprintf("Add badge '%s' in class '%s'", id, class)
}

// parseClassCreation extracts the class name from a class metadata commit
// message. The name sits between the quote delimiters; anything not matching
// the template exactly is not a creation marker.
func parseClassCreation(message string) (string, bool) {
	if !strings.HasPrefix(message, classMetadataPrefix) || !strings.HasSuffix(message, messageSuffix) {
		return "", false
	}
	name := message[len(classMetadataPrefix) : len(message)-len(messageSuffix)]
	if name == "" {
		return "", false
	}
	return name, true
}
