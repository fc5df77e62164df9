package service

import (
	"context"
	"errors"
	"testing"

	"Parchment/internal/api/dto"
	"Parchment/internal/model"
	"Parchment/internal/repository"
	"Parchment/internal/pkg/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestUserService_CreateUser_Defaults(t *testing.T) {
	var created *model.User
	repo := &userRepoMock{
		GetUserByUsernameFunc: func(context.Context, string) (*model.User, error) { return nil, nil },
		CreateUserFunc: func(_ context.Context, u *model.User) error {
			u.ID = 1
			created = u
			return nil
		},
	}
	svc := NewUserService(repo, testHasher, newCacheStub(), &queueStub{})

	user, err := svc.CreateUser(context.Background(), &dto.CreateUserDTO{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	require.Same(t, created, user)

	assert.Equal(t, model.RoleViewer, user.Role)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsStaff)
	assert.NotEqual(t, "s3cret-pass", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret-pass")))
}

func TestUserService_CreateUser_ExplicitInactiveEditor(t *testing.T) {
	repo := &userRepoMock{
		GetUserByUsernameFunc: func(context.Context, string) (*model.User, error) { return nil, nil },
		CreateUserFunc:        func(context.Context, *model.User) error { return nil },
	}
	svc := NewUserService(repo, testHasher, newCacheStub(), &queueStub{})

	user, err := svc.CreateUser(context.Background(), &dto.CreateUserDTO{
		Username: "bob",
		Password: "s3cret-pass",
		Role:     model.RoleEditor,
		IsActive: util.Ptr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleEditor, user.Role)
	assert.False(t, user.IsActive)
}

func TestUserService_CreateUser_UsernameTaken(t *testing.T) {
	repo := &userRepoMock{
		GetUserByUsernameFunc: func(_ context.Context, username string) (*model.User, error) {
			return &model.User{ID: 9, Username: username}, nil
		},
	}
	svc := NewUserService(repo, testHasher, newCacheStub(), &queueStub{})

	_, err := svc.CreateUser(context.Background(), &dto.CreateUserDTO{Username: "alice", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, ErrUsernameExist)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUserService_CreateUser_DuplicateKeyRace(t *testing.T) {
	repo := &userRepoMock{
		GetUserByUsernameFunc: func(context.Context, string) (*model.User, error) { return nil, nil },
		CreateUserFunc:        func(context.Context, *model.User) error { return gorm.ErrDuplicatedKey },
	}
	svc := NewUserService(repo, testHasher, newCacheStub(), &queueStub{})

	_, err := svc.CreateUser(context.Background(), &dto.CreateUserDTO{Username: "alice", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, ErrUsernameExist)
}

func TestUserService_UpdateUser(t *testing.T) {
	stored := &model.User{ID: 1, Username: "alice", Role: model.RoleViewer, IsActive: true}
	var gotFields map[string]any
	repo := &userRepoMock{
		GetUserByIdFunc: func(_ context.Context, id uint64) (*model.User, error) {
			if id == stored.ID {
				return stored, nil
			}
			return nil, nil
		},
		GetUserByUsernameFunc: func(context.Context, string) (*model.User, error) { return nil, nil },
		UpdateUserFunc: func(_ context.Context, _ uint64, fields map[string]any) error {
			gotFields = fields
			return nil
		},
	}
	svc := NewUserService(repo, testHasher, newCacheStub(), &queueStub{})

	role := model.RoleAdmin
	_, err := svc.UpdateUser(context.Background(), 1, &dto.UpdateUserDTO{
		Username: util.Ptr("alice2"),
		Role:     &role,
		IsActive: util.Ptr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"username": "alice2", "role": model.RoleAdmin, "is_active": false}, gotFields)

	_, err = svc.UpdateUser(context.Background(), 2, &dto.UpdateUserDTO{})
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserService_UpdateUser_UsernameTaken(t *testing.T) {
	repo := &userRepoMock{
		GetUserByIdFunc: func(context.Context, uint64) (*model.User, error) {
			return &model.User{ID: 1, Username: "alice"}, nil
		},
		GetUserByUsernameFunc: func(context.Context, string) (*model.User, error) {
			return &model.User{ID: 2, Username: "bob"}, nil
		},
	}
	svc := NewUserService(repo, testHasher, newCacheStub(), &queueStub{})

	_, err := svc.UpdateUser(context.Background(), 1, &dto.UpdateUserDTO{Username: util.Ptr("bob")})
	assert.ErrorIs(t, err, ErrUsernameExist)
}

func TestUserService_DeleteUser_CleansUp(t *testing.T) {
	cache := newCacheStub()
	cache.entries["hello"] = &model.Content{Slug: "hello"}
	queue := &queueStub{}
	repo := &userRepoMock{
		GetUserByIdFunc: func(context.Context, uint64) (*model.User, error) {
			return &model.User{ID: 1, Username: "alice"}, nil
		},
		DeleteUserFunc: func(context.Context, uint64) (*repository.Removed, error) {
			return &repository.Removed{Slugs: []string{"hello"}, MediaKeys: []string{"media/a.png"}}, nil
		},
	}
	svc := NewUserService(repo, testHasher, cache, queue)

	user, err := svc.DeleteUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, []string{"hello"}, cache.invalidated)
	assert.Empty(t, cache.entries)
	assert.Equal(t, []string{"media/a.png"}, queue.keys)
}

func TestUserService_DeleteUser_StoreError(t *testing.T) {
	boom := errors.New("boom")
	queue := &queueStub{}
	repo := &userRepoMock{
		GetUserByIdFunc: func(context.Context, uint64) (*model.User, error) { return &model.User{ID: 1}, nil },
		DeleteUserFunc:  func(context.Context, uint64) (*repository.Removed, error) { return nil, boom },
	}
	svc := NewUserService(repo, testHasher, newCacheStub(), queue)

	_, err := svc.DeleteUser(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, queue.keys)
}
