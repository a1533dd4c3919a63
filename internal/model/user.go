package model

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultProfilePic is assigned to users that never uploaded a picture.
const DefaultProfilePic = "default-pic.png"

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	// GetByEmailWithResetFloor returns the user only if its reset watermark
	// is set and not later than issuedAt.
	GetByEmailWithResetFloor(ctx context.Context, email string, issuedAt time.Time) (User, error)
	Update(ctx context.Context, user User) (User, error)
}

// User represents a stored user with authentication material.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Bio          string
	GucID        string
	ProfilePic   string
	// PasswordResetTokenDate is the reset token floor. Nil means no reset is pending.
	PasswordResetTokenDate *time.Time
	PasswordChangeDate     time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time

	pendingPassword *string
}

// SetPassword marks the plaintext secret as modified. It is hashed on the next save.
func (u *User) SetPassword(plaintext string) {
	u.pendingPassword = &plaintext
}

// PendingPassword returns the plaintext set by SetPassword, if any.
func (u *User) PendingPassword() (string, bool) {
	if u.pendingPassword == nil {
		return "", false
	}
	return *u.pendingPassword, true
}

// ClearPendingPassword drops the plaintext after it has been hashed.
func (u *User) ClearPendingPassword() {
	u.pendingPassword = nil
}

// FullName joins first and last name.
func FullName(firstName, lastName string) string {
	return strings.TrimSpace(firstName + " " + lastName)
}

// PublicProfile is the user view exposed to other users.
type PublicProfile struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	FullName   string    `json:"fullName"`
	Bio        string    `json:"bio"`
	GucID      string    `json:"gucId"`
	ProfilePic string    `json:"profilePic"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Public strips credentials and watermarks from the user.
func (u User) Public() PublicProfile {
	return PublicProfile{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		FullName:   FullName(u.FirstName, u.LastName),
		Bio:        u.Bio,
		GucID:      u.GucID,
		ProfilePic: u.ProfilePic,
		CreatedAt:  u.CreatedAt,
	}
}
