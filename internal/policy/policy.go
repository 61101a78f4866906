// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package policy decides which notes an identity may see and mutate.
//
// The package is pure: it never touches storage. Single-note decisions are
// made by [Decide]; queries are restricted by the [models.Scope] returned
// from [ScopeFor], which the store renders into the WHERE clause of every
// statement so that the ownership check and the read or write are one
// atomic operation.
package policy

import "github.com/MKhiriev/go-note-keeper/models"

// Decision is the outcome of an access check.
type Decision int

const (
	// Denied is the zero value so an unset Decision never grants access.
	Denied Decision = iota
	Allowed
)

func (d Decision) String() string {
	if d == Allowed {
		return "allowed"
	}
	return "denied"
}

// Decide reports whether identity may access a note owned by ownerID.
// Admins may access every note, everyone else only their own. The note
// service re-checks rows returned by scoped reads with it.
func Decide(identity models.Identity, ownerID string) Decision {
	if identity.IsAdmin() {
		return Allowed
	}
	if identity.UserID != "" && identity.UserID == ownerID {
		return Allowed
	}
	return Denied
}

// ScopeFor returns the query scope of identity. Admins get every note
// together with the owner summary; everyone else is restricted to the
// notes they own.
func ScopeFor(identity models.Identity) models.Scope {
	if identity.IsAdmin() {
		return models.Scope{AllNotes: true, IncludeOwner: true}
	}
	return models.Scope{OwnerID: identity.UserID}
}

// Permits reports whether scope covers a note owned by ownerID. It is the
// in-memory mirror of the predicate the store renders from scope.
func Permits(scope models.Scope, ownerID string) bool {
	return scope.AllNotes || (scope.OwnerID != "" && scope.OwnerID == ownerID)
}
