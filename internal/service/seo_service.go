package service

import (
	"Parchment/internal/api/dto"
	"Parchment/internal/model"
	"Parchment/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type SEOService interface {
	CreateSEOData(ctx context.Context, dto *dto.CreateSEODataDTO) (*model.SEOData, error)
	GetSEOData(ctx context.Context, id uint64) (*model.SEOData, error)
	UpdateSEOData(ctx context.Context, id uint64, dto *dto.UpdateSEODataDTO) (*model.SEOData, error)
	DeleteSEOData(ctx context.Context, id uint64) (*model.SEOData, error)
}

type SEOServiceImpl struct {
	seoRepo     repository.SEODataRepo
	contentRepo repository.ContentRepo
}

func NewSEOService(seoRepo repository.SEODataRepo, contentRepo repository.ContentRepo) SEOService {
	return &SEOServiceImpl{
		seoRepo:     seoRepo,
		contentRepo: contentRepo,
	}
}

// CreateSEOData 每个内容至多一条 SEO 数据
func (s *SEOServiceImpl) CreateSEOData(ctx context.Context, createDTO *dto.CreateSEODataDTO) (*model.SEOData, error) {
	if err := requireContent(ctx, s.contentRepo, createDTO.ContentID); err != nil {
		return nil, err
	}
	if err := s.checkContentFree(ctx, createDTO.ContentID, 0); err != nil {
		return nil, err
	}

	seo := &model.SEOData{}
	if err := copier.Copy(seo, createDTO); err != nil {
		return nil, err
	}
	if err := s.seoRepo.CreateSEOData(ctx, seo); err != nil {
		return nil, translateStoreError(err, ErrSEODataExist, ErrContentNotFound)
	}
	return s.GetSEOData(ctx, seo.ID)
}

func (s *SEOServiceImpl) GetSEOData(ctx context.Context, id uint64) (*model.SEOData, error) {
	seo, err := s.seoRepo.GetSEODataById(ctx, id)
	if err != nil {
		return nil, err
	}
	if seo == nil {
		return nil, ErrSEODataNotFound
	}
	return seo, nil
}

func (s *SEOServiceImpl) UpdateSEOData(ctx context.Context, id uint64, updateDTO *dto.UpdateSEODataDTO) (*model.SEOData, error) {
	seo, err := s.GetSEOData(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if updateDTO.ContentID != nil && *updateDTO.ContentID != seo.ContentID {
		if err = requireContent(ctx, s.contentRepo, *updateDTO.ContentID); err != nil {
			return nil, err
		}
		if err = s.checkContentFree(ctx, *updateDTO.ContentID, id); err != nil {
			return nil, err
		}
		fields["content_id"] = *updateDTO.ContentID
	}
	setField(fields, "meta_title", updateDTO.MetaTitle)
	setField(fields, "meta_description", updateDTO.MetaDescription)
	setField(fields, "keywords", updateDTO.Keywords)
	setField(fields, "canonical_url", updateDTO.CanonicalURL)

	if err = s.seoRepo.UpdateSEOData(ctx, id, fields); err != nil {
		return nil, translateStoreError(err, ErrSEODataExist, ErrContentNotFound)
	}
	return s.GetSEOData(ctx, id)
}

func (s *SEOServiceImpl) DeleteSEOData(ctx context.Context, id uint64) (*model.SEOData, error) {
	seo, err := s.GetSEOData(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = s.seoRepo.DeleteSEOData(ctx, id); err != nil {
		return nil, err
	}
	return seo, nil
}

func (s *SEOServiceImpl) checkContentFree(ctx context.Context, contentID, selfID uint64) error {
	other, err := s.seoRepo.GetSEODataByContentId(ctx, contentID)
	if err != nil {
		return err
	}
	if other != nil && other.ID != selfID {
		return ErrSEODataExist
	}
	return nil
}
