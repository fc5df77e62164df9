package repository

import (
	"Parchment/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	UpdateUser(ctx context.Context, id uint64, fields map[string]any) error
	DeleteUser(ctx context.Context, id uint64) (*Removed, error)
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	return getByID[model.User](ctx, s.db, id)
}

// GetUserByUsername 用户名列使用 utf8mb4_bin 排序规则，匹配区分大小写
func (s *UserRepoImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Where("username = ?", username).
		First(user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *UserRepoImpl) UpdateUser(ctx context.Context, id uint64, fields map[string]any) error {
	return updateByID[model.User](ctx, s.db, id, fields)
}

// DeleteUser 删除用户：级联删除其撰写的内容与安全日志，审核记录的 reviewer 置空
func (s *UserRepoImpl) DeleteUser(ctx context.Context, id uint64) (*Removed, error) {
	var removed *Removed
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var contentIDs []uint64
		if err := tx.Model(&model.Content{}).Where("author_id = ?", id).Pluck("id", &contentIDs).Error; err != nil {
			return err
		}

		var err error
		if removed, err = deleteContents(tx, contentIDs); err != nil {
			return err
		}

		result := tx.Model(&model.ContentApproval{}).Where("reviewer_id = ?", id).Update("reviewer_id", nil)
		if result.Error != nil {
			return result.Error
		}

		if result = tx.Where("user_id = ?", id).Delete(&model.SecurityLog{}); result.Error != nil {
			return result.Error
		}

		return tx.Delete(&model.User{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}
