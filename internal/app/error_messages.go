// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-note-keeper server handlers, middleware and the terminal client.
//
// All Msg* constants are human-readable message strings that are written into
// the "error" or "message" field of the response envelope. Keeping them in
// one place ensures consistent wording throughout the API and lets the client
// recognise them.
package app

// Authentication and registration.
const (
	// MsgEmailAlreadyRegistered is returned when a registration attempt uses
	// an email that belongs to an existing account.
	MsgEmailAlreadyRegistered = "Email already registered"

	// MsgUsernameAlreadyTaken is returned when a registration attempt uses a
	// username that belongs to an existing account.
	MsgUsernameAlreadyTaken = "Username already taken"

	// MsgProvideRegistrationData is returned when username, email or
	// password is missing from a registration request.
	MsgProvideRegistrationData = "Please provide username, email and password"

	MsgInvalidEmail        = "Please provide a valid email"
	MsgPasswordTooShort    = "Password must be at least 6 characters"
	MsgInvalidRole         = "Role must be either user or admin"
	MsgProvideEmailAndPass = "Please provide email and password"

	// MsgInvalidCredentials is returned for both an unknown email and a wrong
	// password, so the response does not reveal which accounts exist.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgNotAuthorized is returned when a protected route is called without
	// a usable bearer token.
	MsgNotAuthorized = "Not authorized, no token"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token fails
	// verification or its user no longer exists.
	MsgTokenIsExpiredOrInvalid = "Not authorized, token failed"

	MsgUserNotFound = "User not found"

	// MsgTooManyRequests is returned by the auth rate limiter.
	MsgTooManyRequests = "Too many requests, please try again later"
)

// Notes.
const (
	MsgTitleAndContentRequired = "Title and content are required"
	MsgNoteNotFound            = "Note not found"
	MsgNoteDeleted             = "Note deleted successfully"
)

// Generic.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "Invalid data provided"

	MsgServerIsRunning = "Server is running"
	MsgRouteNotFound   = "Route not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"

	// MsgRequestTimeout is returned when a request exceeds the configured
	// server timeout.
	MsgRequestTimeout = "Request timeout"
)
