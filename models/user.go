package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/borovikovd/realworld-backend-go/errs"
)

var emailRegex = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// User is a registered account. The password never leaves the auth layer;
// only its hash is stored here.
type User struct {
	ID           uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Email        string    `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex"`
	Username     string    `json:"username" db:"username" gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"type:text;not null"`
	Bio          *string   `json:"bio,omitempty" db:"bio" gorm:"type:text"`
	Image        *string   `json:"image,omitempty" db:"image" gorm:"type:text"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at" gorm:"not null"`
}

// NewUser validates registration inputs and builds a fresh account.
func NewUser(email, username, passwordHash string) (*User, error) {
	fieldErrs := errs.FieldErrors{}

	if strings.TrimSpace(email) == "" {
		fieldErrs.Add("email", "must not be blank")
	} else if !emailRegex.MatchString(email) {
		fieldErrs.Add("email", "must be a valid email address")
	}

	if strings.TrimSpace(username) == "" {
		fieldErrs.Add("username", "must not be blank")
	} else if len(username) < 3 || len(username) > 50 {
		fieldErrs.Add("username", "must be between 3 and 50 characters")
	}

	if !fieldErrs.Empty() {
		return nil, errs.NewValidationError(fieldErrs)
	}

	now := time.Now().UTC()
	return &User{
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// UpdateProfile applies a partial profile edit. Blank email/username are
// no-ops; bio and image are overwritten as given (clearing them is allowed).
func (u *User) UpdateProfile(email, username *string, bio, image *string) {
	if email != nil && strings.TrimSpace(*email) != "" {
		u.Email = *email
	}
	if username != nil && strings.TrimSpace(*username) != "" {
		u.Username = *username
	}
	u.Bio = bio
	u.Image = image
	u.UpdatedAt = time.Now().UTC()
}

func (u *User) UpdatePassword(newPasswordHash string) {
	u.PasswordHash = newPasswordHash
	u.UpdatedAt = time.Now().UTC()
}
