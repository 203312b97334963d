package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	errs "helpugee/internal/errors"
	"helpugee/internal/model"
)

func TestUserService_RegisterUser(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)

	var stored *model.User
	repo.On("Add", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*model.User)
		}).
		Return(nil)

	user := &model.User{Username: "kmueller", SectionID: 2, IsActive: true}
	tempPassword, err := svc.RegisterUser(context.Background(), user)

	assert.NoError(t, err)
	assert.Len(t, tempPassword, tempPasswordLen)
	for _, r := range tempPassword {
		assert.True(t, strings.ContainsRune(tempPasswordCharset, r))
	}

	// only the hash reaches the repository, and it matches the plaintext
	assert.NotNil(t, stored)
	assert.NotEqual(t, tempPassword, stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte(tempPassword)))
}

func TestUserService_RegisterUser_RepoError(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)

	repo.On("Add", mock.Anything, mock.Anything).Return(errs.ErrUsernameNotUnique)

	tempPassword, err := svc.RegisterUser(context.Background(), &model.User{Username: "kmueller"})

	assert.Equal(t, errs.ErrUsernameNotUnique, err)
	assert.Empty(t, tempPassword)
}

func TestUserService_RegisterUser_DistinctPasswords(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)
	repo.On("Add", mock.Anything, mock.Anything).Return(nil)

	first, err := svc.RegisterUser(context.Background(), &model.User{Username: "a"})
	assert.NoError(t, err)
	second, err := svc.RegisterUser(context.Background(), &model.User{Username: "b"})
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestUserService_EditUser_ShortPasswordIgnored(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "empty password", password: ""},
		{name: "below threshold", password: "abc12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			svc := NewUserService(repo)
			repo.On("Edit", mock.Anything, mock.Anything).Return(nil)

			err := svc.EditUser(context.Background(), &model.User{Base: model.Base{ID: 1}, Username: "smeier"}, tt.password)

			assert.NoError(t, err)
			repo.AssertCalled(t, "Edit", mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything)
		})
	}
}

func TestUserService_EditUser_PasswordChanged(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)

	var changed *model.User
	repo.On("Edit", mock.Anything, mock.Anything).Return(nil)
	repo.On("ChangePassword", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			changed = args.Get(1).(*model.User)
		}).
		Return(nil)

	err := svc.EditUser(context.Background(), &model.User{Base: model.Base{ID: 1}, Username: "smeier"}, "newpass1")

	assert.NoError(t, err)
	assert.NotNil(t, changed)
	assert.NotEqual(t, "newpass1", changed.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(changed.Password), []byte("newpass1")))
}

func TestUserService_EditUser_EditFailureSkipsPasswordChange(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)
	repo.On("Edit", mock.Anything, mock.Anything).Return(errs.ErrLastAdminRemoved)

	err := svc.EditUser(context.Background(), &model.User{Base: model.Base{ID: 1}, Username: "admin"}, "newpass1")

	assert.Equal(t, errs.ErrLastAdminRemoved, err)
	repo.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything)
}

func TestUserService_RemoveUser(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)
	repo.On("Remove", mock.Anything, uint(4)).Return(errs.ErrLastAdminRemoved)

	err := svc.RemoveUser(context.Background(), 4)

	assert.Equal(t, errs.ErrLastAdminRemoved, err)
}
