// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package badges

import "strings"

// Fixed store layout. The root holds the issuer files; each class gets one
// directory; each badge is one json file inside its class directory.
const (
	IssuerFile    = "issuer.json"
	ImageFile     = "img.png"
	AwardPageFile = "award.html"
	ClassFile     = "class.json"

	jsonSuffix = ".json"
)

// Slug returns the path-safe form of a human-entered class name: surrounding
// whitespace dropped, internal whitespace runs collapsed to single
// underscores.
func Slug(name string) string {
	return strings.Join(strings.Fields(name), "_")
}

// classPath returns the repository path of a file inside a class directory.
func classPath(slug, file string) string {
	return slug + "/" + file
}

// badgeFile returns the file name of a badge assertion.
func badgeFile(id string) string {
	return id + jsonSuffix
}

// joinURL builds an absolute URL under the public storage root.
func joinURL(base string, parts ...string) string {
	b := strings.TrimSuffix(base, "/")
	if len(parts) == 0 {
		return b
	}
	return b + "/" + strings.Join(parts, "/")
}
