package service

import (
	"Parchment/internal/api/dto"
	"Parchment/internal/model"
	"Parchment/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type UserService interface {
	CreateUser(ctx context.Context, dto *dto.CreateUserDTO) (*model.User, error)
	GetUser(ctx context.Context, id uint64) (*model.User, error)
	UpdateUser(ctx context.Context, id uint64, dto *dto.UpdateUserDTO) (*model.User, error)
	DeleteUser(ctx context.Context, id uint64) (*model.User, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
	hasher   PasswordHasher
	cache    ContentCache
	queue    MediaQueue
}

func NewUserService(userRepo repository.UserRepo, hasher PasswordHasher, cache ContentCache, queue MediaQueue) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		hasher:   hasher,
		cache:    cache,
		queue:    queue,
	}
}

func (s *UserServiceImpl) CreateUser(ctx context.Context, createDTO *dto.CreateUserDTO) (*model.User, error) {
	existing, err := s.userRepo.GetUserByUsername(ctx, createDTO.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameExist
	}

	user := &model.User{}
	if err = copier.Copy(user, createDTO); err != nil {
		return nil, err
	}
	if user.Role == "" {
		user.Role = model.RoleViewer
	}
	user.IsActive = createDTO.IsActive == nil || *createDTO.IsActive

	user.Password, err = s.hasher.Hash(createDTO.Password)
	if err != nil {
		return nil, err
	}

	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, translateStoreError(err, ErrUsernameExist, nil)
	}
	return user, nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id uint64) (*model.User, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, id uint64, updateDTO *dto.UpdateUserDTO) (*model.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if updateDTO.Username != nil && *updateDTO.Username != user.Username {
		other, err := s.userRepo.GetUserByUsername(ctx, *updateDTO.Username)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, ErrUsernameExist
		}
		fields["username"] = *updateDTO.Username
	}
	if updateDTO.Password != nil {
		hash, err := s.hasher.Hash(*updateDTO.Password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hash
	}
	setField(fields, "email", updateDTO.Email)
	setField(fields, "first_name", updateDTO.FirstName)
	setField(fields, "last_name", updateDTO.LastName)
	setField(fields, "role", updateDTO.Role)
	setField(fields, "is_active", updateDTO.IsActive)
	setField(fields, "is_staff", updateDTO.IsStaff)
	setField(fields, "is_superuser", updateDTO.IsSuperuser)

	if err = s.userRepo.UpdateUser(ctx, id, fields); err != nil {
		return nil, translateStoreError(err, ErrUsernameExist, nil)
	}
	return s.GetUser(ctx, id)
}

// DeleteUser 删除用户及其撰写的内容，返回删除前的用户
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id uint64) (*model.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	removed, err := s.userRepo.DeleteUser(ctx, id)
	if err != nil {
		return nil, err
	}
	cleanupRemoved(ctx, removed, s.cache, s.queue)
	return user, nil
}
