// Package entity contains the core business objects of the project.
package entity

// UserGroup represents the role assigned to a user account. The group decides
// login eligibility and admin permissions.
type UserGroup string

const (
	// GroupDefault is the standard group assigned at registration.
	GroupDefault UserGroup = "default"
	// GroupChef marks verified cooks whose recipes get a chef badge.
	GroupChef UserGroup = "chef"
	// GroupAdmin grants moderation and role-management permissions.
	GroupAdmin UserGroup = "admin"
	// GroupMuted keeps the account readable but blocks publishing.
	GroupMuted UserGroup = "muted"
	// GroupBanned blocks the account from logging in entirely.
	GroupBanned UserGroup = "banned"
)

// String returns the string representation of the UserGroup.
func (g UserGroup) String() string {
	return string(g)
}

// IsValid checks if the UserGroup is a known value.
func (g UserGroup) IsValid() bool {
	switch g {
	case GroupDefault, GroupChef, GroupAdmin, GroupMuted, GroupBanned:
		return true
	default:
		return false
	}
}

// CanLogin reports whether accounts in this group may establish a session.
func (g UserGroup) CanLogin() bool {
	return g != GroupBanned
}

// IsAdmin reports whether the group carries admin permissions.
func (g UserGroup) IsAdmin() bool {
	return g == GroupAdmin
}

// IsChef reports whether the group carries the chef badge.
func (g UserGroup) IsChef() bool {
	return g == GroupChef
}

// CanPublish reports whether accounts in this group may create content.
func (g UserGroup) CanPublish() bool {
	return g != GroupMuted && g != GroupBanned
}
