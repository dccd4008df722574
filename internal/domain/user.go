package domain

import "time"

// Identity is the authenticated user as seen by the access check and the handlers.
type Identity struct {
	UserID   int64
	Username string
}

type Account struct {
	UserID    int64
	ProfileID int64
	Username  string
	Email     string
	Password  string
}

type UserCore struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	Email     string
	Joined    time.Time
}

// FullName returns the user's first and last name, or the username when both are empty.
func (u UserCore) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	}
	return u.Username
}

type Profile struct {
	UserCore
	ProfileID int64
	Phone     string
	City      string
	Avatar    *Avatar
	Blogs     []Blog
}

// NewUser holds everything needed to register a local user and their profile.
type NewUser struct {
	UserCore
	Password string
	Phone    string
	City     string
}

// ProfileUpdate carries the editable profile fields. Omitted optional fields arrive as empty strings and are
// stored as such.
type ProfileUpdate struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	City      string
}
