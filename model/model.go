// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package model

// Field names in these documents are fixed by the Open Badges hosted-assertion
// format. Consumers fetch them straight from the published store, so renaming
// a field is a breaking change to every badge already issued.

// Issuer is the issuer.json document published at the store root.
type Issuer struct {
	// Name is the human readable organization name.
	Name string `json:"name"`

	// URL is the issuer's homepage, always carrying an explicit scheme.
	URL string `json:"url"`

	// Description is a short blurb about the issuer.
	Description string `json:"description"`

	// Image is the absolute URL of the issuer image asset.
	Image string `json:"image"`

	// Email is the contact address for the issuer.
	Email string `json:"email"`
}

// Class is the class.json document published under each class directory.
type Class struct {
	// Name is the human readable class name, before slug normalization.
	Name string `json:"name"`

	// Description explains what the badge is awarded for.
	Description string `json:"description"`

	// Image is the absolute URL of the class image asset.
	Image string `json:"image"`

	// Criteria is the URL describing how the badge is earned.
	Criteria string `json:"criteria"`

	// Issuer is the absolute URL of the issuer.json document.
	Issuer string `json:"issuer"`
}

// Recipient identifies who a badge was awarded to. Identities are plain
// unhashed emails.
type Recipient struct {
	Type     string `json:"type"`
	Hashed   bool   `json:"hashed"`
	Identity string `json:"identity"`
}

// Verification tells consumers how to validate a hosted assertion.
type Verification struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Assertion is one issuance of a class to a recipient, published as
// <id>.json inside the class directory.
type Assertion struct {
	// UID is the badge identifier, unique across every class in the store.
	UID string `json:"uid"`

	Recipient Recipient `json:"recipient"`

	// Badge is the absolute URL of the parent class.json document.
	Badge string `json:"badge"`

	// IssuedOn is the issuance time in seconds since the Unix epoch.
	IssuedOn int64 `json:"issuedOn"`

	Verify Verification `json:"verify"`
}

// NewEmailRecipient builds the recipient object used by every assertion this
// store produces.
func NewEmailRecipient(email string) Recipient {
	return Recipient{
		Type:     "email",
		Hashed:   false,
		Identity: email,
	}
}

// NewHostedVerification points consumers at the published assertion document.
func NewHostedVerification(url string) Verification {
	return Verification{
		Type: "hosted",
		URL:  url,
	}
}
