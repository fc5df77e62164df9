package repository

import (
	"Parchment/internal/admin"
	"context"

	"gorm.io/gorm"
)

type AdminRepo interface {
	List(ctx context.Context, m *admin.ModelAdmin, q *admin.Query) ([]admin.Row, int64, error)
}

type AdminRepoImpl struct {
	db *gorm.DB
}

func NewAdminRepo(db *gorm.DB) AdminRepo {
	return &AdminRepoImpl{db: db}
}

// List 按过滤与搜索条件分页查询，id 倒序
func (s *AdminRepoImpl) List(ctx context.Context, m *admin.ModelAdmin, q *admin.Query) ([]admin.Row, int64, error) {
	scopes := m.Scopes(q)
	query := func() *gorm.DB {
		return s.db.WithContext(ctx).Table(m.Table).Scopes(scopes...)
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []admin.Row{}, 0, nil
	}

	tx := query().Order(m.Table + ".id DESC").Offset(q.Offset()).Limit(q.PageSize)
	for _, p := range m.Preloads {
		tx = tx.Preload(p)
	}

	rows, err := m.Find(tx)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
