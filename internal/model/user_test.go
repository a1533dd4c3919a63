package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Ada", "Lovelace", "Ada Lovelace"},
		{"Ada", "", "Ada"},
		{"", "Lovelace", "Lovelace"},
		{"", "", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FullName(tt.first, tt.last))
	}
}

func TestUser_Public(t *testing.T) {
	reset := time.Now()
	u := User{
		ID:                     uuid.New(),
		Email:                  "ada.lovelace@student.guc.edu.eg",
		PasswordHash:           "$2a$10$secret",
		FirstName:              "Ada",
		LastName:               "Lovelace",
		GucID:                  "43-1234",
		ProfilePic:             DefaultProfilePic,
		PasswordResetTokenDate: &reset,
		PasswordChangeDate:     reset,
	}

	p := u.Public()
	assert.Equal(t, u.ID, p.ID)
	assert.Equal(t, "Ada Lovelace", p.FullName)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "password")
}

func TestUser_PendingPassword(t *testing.T) {
	var u User
	_, ok := u.PendingPassword()
	assert.False(t, ok)

	u.SetPassword("hunter2!x")
	got, ok := u.PendingPassword()
	assert.True(t, ok)
	assert.Equal(t, "hunter2!x", got)

	copied := u
	u.ClearPendingPassword()
	_, ok = u.PendingPassword()
	assert.False(t, ok)

	_, ok = copied.PendingPassword()
	assert.True(t, ok)
}
