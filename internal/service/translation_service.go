package service

import (
	"Parchment/internal/api/dto"
	"Parchment/internal/model"
	"Parchment/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type TranslationService interface {
	CreateTranslation(ctx context.Context, dto *dto.CreateTranslationDTO) (*model.ContentTranslation, error)
	GetTranslation(ctx context.Context, id uint64) (*model.ContentTranslation, error)
	GetTranslationsByContent(ctx context.Context, contentID uint64) ([]*model.ContentTranslation, error)
	UpdateTranslation(ctx context.Context, id uint64, dto *dto.UpdateTranslationDTO) (*model.ContentTranslation, error)
	DeleteTranslation(ctx context.Context, id uint64) (*model.ContentTranslation, error)
}

type TranslationServiceImpl struct {
	translationRepo repository.TranslationRepo
	contentRepo     repository.ContentRepo
}

func NewTranslationService(translationRepo repository.TranslationRepo, contentRepo repository.ContentRepo) TranslationService {
	return &TranslationServiceImpl{
		translationRepo: translationRepo,
		contentRepo:     contentRepo,
	}
}

func (s *TranslationServiceImpl) CreateTranslation(ctx context.Context, createDTO *dto.CreateTranslationDTO) (*model.ContentTranslation, error) {
	if err := requireContent(ctx, s.contentRepo, createDTO.ContentID); err != nil {
		return nil, err
	}

	translation := &model.ContentTranslation{}
	if err := copier.Copy(translation, createDTO); err != nil {
		return nil, err
	}
	if err := s.translationRepo.CreateTranslation(ctx, translation); err != nil {
		return nil, translateStoreError(err, nil, ErrContentNotFound)
	}
	return s.GetTranslation(ctx, translation.ID)
}

func (s *TranslationServiceImpl) GetTranslation(ctx context.Context, id uint64) (*model.ContentTranslation, error) {
	translation, err := s.translationRepo.GetTranslationById(ctx, id)
	if err != nil {
		return nil, err
	}
	if translation == nil {
		return nil, ErrTranslationNotFound
	}
	return translation, nil
}

func (s *TranslationServiceImpl) GetTranslationsByContent(ctx context.Context, contentID uint64) ([]*model.ContentTranslation, error) {
	if err := requireContent(ctx, s.contentRepo, contentID); err != nil {
		return nil, err
	}
	return s.translationRepo.GetTranslationsByContentId(ctx, contentID)
}

func (s *TranslationServiceImpl) UpdateTranslation(ctx context.Context, id uint64, updateDTO *dto.UpdateTranslationDTO) (*model.ContentTranslation, error) {
	if _, err := s.GetTranslation(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if updateDTO.ContentID != nil {
		if err := requireContent(ctx, s.contentRepo, *updateDTO.ContentID); err != nil {
			return nil, err
		}
		fields["content_id"] = *updateDTO.ContentID
	}
	setField(fields, "language", updateDTO.Language)
	setField(fields, "translated_title", updateDTO.TranslatedTitle)
	setField(fields, "translated_body", updateDTO.TranslatedBody)

	if err := s.translationRepo.UpdateTranslation(ctx, id, fields); err != nil {
		return nil, translateStoreError(err, nil, ErrContentNotFound)
	}
	return s.GetTranslation(ctx, id)
}

func (s *TranslationServiceImpl) DeleteTranslation(ctx context.Context, id uint64) (*model.ContentTranslation, error) {
	translation, err := s.GetTranslation(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = s.translationRepo.DeleteTranslation(ctx, id); err != nil {
		return nil, err
	}
	return translation, nil
}
