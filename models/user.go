// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and profile
// management. It is the only persistent entity of the application.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque unique identifier assigned by the store at creation.
	ID string `json:"id"`

	// Email is the organizational e-mail address. Unique across all users.
	Email string `json:"email"`

	// RUT is the Chilean national identification number, kept with the
	// punctuation it was registered with. Unique across all users.
	RUT string `json:"rut"`

	// BirthDate is the calendar date of birth. Required, not range-checked.
	BirthDate Date `json:"birthDate"`

	// Name is the free-text display name.
	Name string `json:"name"`

	// PasswordHash is the one-way hash of the current password.
	// It is never serialized to JSON and never holds a plaintext value.
	PasswordHash string `json:"-"`

	// CreatedAt and UpdatedAt are maintained by the store.
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile returns the projection of u that is safe to return across the
// trust boundary. The password hash is never part of it.
func (u User) Profile() UserProfile {
	return UserProfile{
		ID:        u.ID,
		Email:     u.Email,
		RUT:       u.RUT,
		BirthDate: u.BirthDate,
		Name:      u.Name,
	}
}

// UserProfile is the public projection of a [User].
type UserProfile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	RUT       string `json:"rut"`
	BirthDate Date   `json:"birthDate"`
	Name      string `json:"name"`
}

// UserFilter is the predicate used to look a single user up in the store.
// Set fields are combined with AND; empty fields are ignored.
type UserFilter struct {
	// Email matches users with exactly this e-mail.
	Email string

	// RUT matches users with exactly this national ID (as stored).
	RUT string

	// ExcludeID skips the user with this ID, used to look for
	// "another" user owning a value.
	ExcludeID string
}

// IsEmpty reports whether no matching field is set. ExcludeID alone does not
// narrow the search to a single user, so it does not count.
func (f UserFilter) IsEmpty() bool {
	return f.Email == "" && f.RUT == ""
}
