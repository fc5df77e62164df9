package service

import (
	"Parchment/internal/admin"
	"Parchment/internal/api/dto"
	"Parchment/internal/repository"
	"context"
	"errors"
	"net/url"
	"time"
)

type AdminService interface {
	Describe() []*dto.AdminEntityDTO
	List(ctx context.Context, entity string, values url.Values) (*dto.AdminListDTO, error)
}

type AdminServiceImpl struct {
	site      *admin.Site
	adminRepo repository.AdminRepo
	now       func() time.Time
}

func NewAdminService(site *admin.Site, adminRepo repository.AdminRepo) AdminService {
	return &AdminServiceImpl{
		site:      site,
		adminRepo: adminRepo,
		now:       time.Now,
	}
}

// Describe 列出已注册实体的列、过滤器与搜索字段
func (s *AdminServiceImpl) Describe() []*dto.AdminEntityDTO {
	all := s.site.All()
	out := make([]*dto.AdminEntityDTO, 0, len(all))
	for _, m := range all {
		out = append(out, &dto.AdminEntityDTO{
			Name:         m.Name,
			Verbose:      m.Verbose,
			ListDisplay:  m.ListDisplay,
			ListFilter:   m.ListFilter,
			SearchFields: m.SearchFields,
		})
	}
	return out
}

// List 解析 q、过滤与分页参数后查询，未知参数或非法取值返回校验错误
func (s *AdminServiceImpl) List(ctx context.Context, entity string, values url.Values) (*dto.AdminListDTO, error) {
	m, ok := s.site.Get(entity)
	if !ok {
		return nil, ErrEntityNotFound
	}

	q, err := admin.ParseQuery(m, values, s.now())
	if err != nil {
		if errors.Is(err, admin.ErrUnknownFilter) || errors.Is(err, admin.ErrInvalidFilter) {
			return nil, invalid("%s", err.Error())
		}
		return nil, err
	}

	rows, total, err := s.adminRepo.List(ctx, m, q)
	if err != nil {
		return nil, err
	}

	out := &dto.AdminListDTO{
		Entity:   m.Name,
		Columns:  m.ListDisplay,
		Total:    total,
		Page:     q.Page,
		PageSize: q.PageSize,
		Rows:     make([]*dto.AdminRowDTO, 0, len(rows)),
	}
	for _, row := range rows {
		values := make(map[string]any, len(m.ListDisplay)+1)
		values["id"] = row.PrimaryKey()
		for _, col := range m.ListDisplay {
			values[col] = row.AdminValue(col)
		}
		out.Rows = append(out.Rows, &dto.AdminRowDTO{Display: row.String(), Values: values})
	}
	return out, nil
}
