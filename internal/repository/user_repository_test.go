package repository

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	errs "helpugee/internal/errors"
	"helpugee/internal/model"
)

func strPtr(s string) *string {
	return &s
}

func TestSuppressUserDetails(t *testing.T) {
	user := &model.User{
		Base:          model.Base{ID: 1},
		Username:      "kmueller",
		Password:      "$2b$10$xxxxxxxxxxxxxxxxxxxxxx",
		Forename:      strPtr("Klaus"),
		Surname:       strPtr("Mueller"),
		Phone:         strPtr("0151 1234567"),
		RadioCallName: strPtr("florian 1"),
		IsActive:      true,
	}

	SuppressUserDetails(user)

	assert.Contains(t, user.Username, "kmueller")
	assert.NotEqual(t, "kmueller", user.Username)
	assert.Empty(t, user.Password)
	assert.Nil(t, user.Forename)
	assert.Nil(t, user.Surname)
	assert.Nil(t, user.Phone)
	assert.Nil(t, user.RadioCallName)
	assert.False(t, user.IsActive)
	assert.LessOrEqual(t, len(user.Username), usernameMaxLen)
}

func TestSuppressUserDetails_TruncatesLongUsername(t *testing.T) {
	user := &model.User{Username: strings.Repeat("a", usernameMaxLen)}

	SuppressUserDetails(user)

	// prefix plus original exceeds the column width and is cut down
	assert.Len(t, user.Username, usernameMaxLen-1)
	assert.NotEqual(t, strings.Repeat("a", usernameMaxLen), user.Username)
}

func TestSuppressUserDetails_TruncatesOnRuneBoundary(t *testing.T) {
	user := &model.User{Username: strings.Repeat("ü", usernameMaxLen)}

	SuppressUserDetails(user)

	assert.True(t, utf8.ValidString(user.Username))
	assert.Equal(t, usernameMaxLen-1, utf8.RuneCountInString(user.Username))
}

func TestCheckConstraints(t *testing.T) {
	tests := []struct {
		name     string
		user     model.User
		expected error
	}{
		{
			name:     "valid user",
			user:     model.User{Username: "smeier", Password: "hash"},
			expected: nil,
		},
		{
			name:     "empty username",
			user:     model.User{Username: "", Password: "hash"},
			expected: errs.ErrUsernameEmpty,
		},
		{
			name:     "empty password",
			user:     model.User{Username: "smeier", Password: ""},
			expected: errs.ErrPasswordEmpty,
		},
		{
			name:     "both empty",
			user:     model.User{},
			expected: errs.ErrUsernameEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkConstraints(&tt.user)
			if tt.expected != nil {
				assert.Equal(t, tt.expected, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAdminRemains(t *testing.T) {
	active := func(id uint) model.User {
		return model.User{Base: model.Base{ID: id}, IsActive: true}
	}
	inactive := func(id uint) model.User {
		return model.User{Base: model.Base{ID: id}, IsActive: false}
	}

	tests := []struct {
		name      string
		admins    []model.User
		excludeID uint
		expected  error
	}{
		{
			name:      "another active admin remains",
			admins:    []model.User{active(1), active(2)},
			excludeID: 1,
			expected:  nil,
		},
		{
			name:      "target is the last active admin",
			admins:    []model.User{active(1)},
			excludeID: 1,
			expected:  errs.ErrLastAdminRemoved,
		},
		{
			name:      "only other admins are inactive",
			admins:    []model.User{active(1), inactive(2), inactive(3)},
			excludeID: 1,
			expected:  errs.ErrLastAdminRemoved,
		},
		{
			name:      "no admins at all",
			admins:    nil,
			excludeID: 1,
			expected:  errs.ErrLastAdminRemoved,
		},
		{
			name:      "target not among admins but one active remains",
			admins:    []model.User{active(2)},
			excludeID: 1,
			expected:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := adminRemains(tt.admins, tt.excludeID)
			if tt.expected != nil {
				assert.Equal(t, tt.expected, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
