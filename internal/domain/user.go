package domain

import "time"

const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super-admin"
)

type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

type Preferences struct {
	Currency      string `json:"currency"`
	Language      string `json:"language"`
	Notifications bool   `json:"notifications"`
}

type SocialLogins struct {
	Google   string `json:"google,omitempty"`
	Facebook string `json:"facebook,omitempty"`
}

// User is the server-side account record. Email is stored lowercased and is
// unique case-insensitively. PasswordHash is a bcrypt hash; plaintext never
// touches storage and the hash is never serialized.
type User struct {
	ID             string       `json:"id"`
	FirstName      string       `json:"firstName"`
	LastName       string       `json:"lastName"`
	Email          string       `json:"email"`
	PasswordHash   string       `json:"-"`
	Phone          string       `json:"phone,omitempty"`
	Address        Address      `json:"address,omitempty"`
	Role           string       `json:"role"`
	ProfilePicture string       `json:"profilePicture,omitempty"`
	Verified       bool         `json:"verified"`
	Preferences    Preferences  `json:"preferences"`
	SocialLogins   SocialLogins `json:"socialLogins,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

func DefaultPreferences() Preferences {
	return Preferences{Currency: "USD", Language: "en", Notifications: true}
}

func ValidRole(r string) bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}
