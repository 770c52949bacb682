package models

// UserRecord represents a user record in the store.
type UserRecord struct {
	ID           string `json:"id" db:"id"`                       // Opaque identifier assigned by the store
	Username     string `json:"username" db:"username"`           // Unique username
	Name         string `json:"name" db:"name"`                   // Display name, optional
	PasswordHash string `json:"password_hash" db:"password_hash"` // bcrypt hash, never the plaintext
	Adult        bool   `json:"adult" db:"adult"`                 // Defaults to true
}

// PublicUser is the projection of a user that may leave the service.
// swagger:model PublicUser
type PublicUser struct {
	// Identifier
	ID string `json:"id,omitempty"`

	// Username
	// example: mluukkai
	Username string `json:"username"`

	// Name
	// example: Matti Luukkainen
	Name string `json:"name"`

	// Adult
	// example: true
	Adult bool `json:"adult"`
}

// UserInput carries the fields of a registration request.
type UserInput struct {
	Username *string `json:"username"`
	Name     *string `json:"name"`
	Password *string `json:"password"`
	Adult    *bool   `json:"adult"`
}

// FormatUser drops the password hash from a stored user.
func FormatUser(r UserRecord) PublicUser {
	return PublicUser{
		ID:       r.ID,
		Username: r.Username,
		Name:     r.Name,
		Adult:    r.Adult,
	}
}
