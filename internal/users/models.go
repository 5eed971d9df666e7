package users

import (
	"strconv"
	"time"
)

// User is the account record. Email uniquely identifies at most one user;
// HashedPassword is a bcrypt hash and never leaves the process.
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:256;not null"`
	HashedPassword string    `json:"-" gorm:"size:256;not null"`
	Name           string    `json:"name" gorm:"size:256"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Subject returns the user id as carried in the JWT "sub" claim.
func (u *User) Subject() string {
	return strconv.FormatUint(uint64(u.ID), 10)
}

// Profile is the user representation returned by the profile endpoints.
type Profile struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ToProfile converts the record to its response shape.
func (u *User) ToProfile() Profile {
	return Profile{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// UpdateProfileRequest is the PUT /profile payload. Nil fields are left
// untouched.
type UpdateProfileRequest struct {
	Name  *string `json:"name" validate:"omitempty,max=256"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// UpdateProfileResponse carries the updated profile and, when anything
// actually changed, a freshly issued token pair.
type UpdateProfileResponse struct {
	Message      string  `json:"message"`
	Profile      Profile `json:"profile"`
	AccessToken  string  `json:"access_token,omitempty"`
	RefreshToken string  `json:"refresh_token,omitempty"`
	TokenType    string  `json:"token_type,omitempty"`
}
