// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package badges

import (
	"fmt"
	"sync"
)

// ClassRecord is the in-memory view of one class: its slug and the ids of
// every badge issued against it, in issuance order.
type ClassRecord struct {
	Name     string   `json:"name"`
	BadgeIDs []string `json:"badgeIds"`
}

// State is the reconciled in-memory model of the remote store: the issuer
// flag plus the class sequence ordered by remote creation time, oldest first.
//
// The remote repository stays the durable source of truth; State is a cache
// advanced only after remote writes succeed, so it under-counts reality
// rather than over-counting it. Mutations are expected to be serialized by a
// single coordinating caller; the internal lock only keeps concurrent readers
// safe.
type State struct {
	lock    sync.Mutex
	issuer  bool
	classes []ClassRecord
}

// NewState builds a State from reconciliation output. The given class
// sequence is adopted as the creation order.
func NewState(issuerPresent bool, classes []ClassRecord) *State {
	s := &State{issuer: issuerPresent}
	s.classes = make([]ClassRecord, len(classes))
	copy(s.classes, classes)
	return s
}

// HasIssuer reports whether the issuer has been published.
func (s *State) HasIssuer() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.issuer
}

// MarkIssuer records a successful issuer publication. Never reversed.
func (s *State) MarkIssuer() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.issuer = true
}

// HasClass reports whether a class with the given slug exists.
func (s *State) HasClass(slug string) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.indexOf(slug) >= 0
}

// AppendClass adds a new empty class at the tail, keeping creation order.
// Duplicate slugs are rejected.
func (s *State) AppendClass(slug string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.indexOf(slug) >= 0 {
		return ErrClassExists
	}
	s.classes = append(s.classes, ClassRecord{Name: slug})
	return nil
}

// AppendBadge records a newly issued badge id on its class.
func (s *State) AppendBadge(slug, id string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	i := s.indexOf(slug)
	if i < 0 {
		return ErrNoSuchClass
	}
	s.classes[i].BadgeIDs = append(s.classes[i].BadgeIDs, id)
	return nil
}

// ContainsBadgeID tests id membership against the union of every class's
// badge ids. Badge ids are unique store-wide, not merely per class.
func (s *State) ContainsBadgeID(id string) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	for _, c := range s.classes {
		for _, b := range c.BadgeIDs {
			if b == id {
				return true
			}
		}
	}
	return false
}

// Classes returns a deep copy of the class sequence in creation order.
func (s *State) Classes() []ClassRecord {
	s.lock.Lock()
	defer s.lock.Unlock()
	out := make([]ClassRecord, len(s.classes))
	for i, c := range s.classes {
		out[i] = ClassRecord{Name: c.Name}
		if c.BadgeIDs != nil {
			out[i].BadgeIDs = append([]string{}, c.BadgeIDs...)
		}
	}
	return out
}

func (s *State) String() string {
	s.lock.Lock()
	defer s.lock.Unlock()
	return fmt.Sprintf("state{issuer: %t, classes: %d}", s.issuer, len(s.classes))
}

// indexOf must be called with the lock held.
func (s *State) indexOf(slug string) int {
	for i, c := range s.classes {
		if c.Name == slug {
			return i
		}
	}
	return -1
}
