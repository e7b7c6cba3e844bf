// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. Usernames and emails are unique;
// the assigned UserGroup decides whether the account can log in and whether
// it carries admin permissions.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username  string    // Unique public handle, used for login and subscription targeting.
	Email     string    // Unique contact email, accepted as a login identifier fallback.
	FirstName string    // Optional given name shown on profiles.
	LastName  string    // Optional family name shown on profiles.
	AvatarURL string    // Reference to the user's avatar image.
	DarkMode  bool      // UI theme preference.
	Group     UserGroup // Role assignment; defaults to GroupDefault at registration.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}

// FullName joins the first and last name, tolerating either being empty.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
