package service

import (
	"context"
	"testing"

	"Parchment/internal/api/dto"
	"Parchment/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSEOService_CreateSEOData(t *testing.T) {
	ctx := context.Background()
	var stored []*model.SEOData
	seoRepo := &seoRepoMock{
		GetSEODataByContentIdFunc: func(_ context.Context, contentID uint64) (*model.SEOData, error) {
			for _, s := range stored {
				if s.ContentID == contentID {
					return s, nil
				}
			}
			return nil, nil
		},
		GetSEODataByIdFunc: func(_ context.Context, id uint64) (*model.SEOData, error) {
			for _, s := range stored {
				if s.ID == id {
					return s, nil
				}
			}
			return nil, nil
		},
		CreateSEODataFunc: func(_ context.Context, seo *model.SEOData) error {
			seo.ID = uint64(len(stored) + 1)
			stored = append(stored, seo)
			return nil
		},
	}
	contentRepo := &contentRepoMock{GetContentByIdFunc: contentsByID(&model.Content{ID: 1}, &model.Content{ID: 2})}
	svc := NewSEOService(seoRepo, contentRepo)

	seo, err := svc.CreateSEOData(ctx, &dto.CreateSEODataDTO{ContentID: 1, MetaTitle: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), seo.ID)
	assert.Equal(t, "Hello", seo.MetaTitle)

	_, err = svc.CreateSEOData(ctx, &dto.CreateSEODataDTO{ContentID: 1, MetaTitle: "Again"})
	assert.ErrorIs(t, err, ErrSEODataExist)

	_, err = svc.CreateSEOData(ctx, &dto.CreateSEODataDTO{ContentID: 3, MetaTitle: "Orphan"})
	assert.ErrorIs(t, err, ErrContentNotFound)

	_, err = svc.CreateSEOData(ctx, &dto.CreateSEODataDTO{ContentID: 2, MetaTitle: "Other"})
	assert.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestSEOService_UpdateSEOData_MoveToTakenContent(t *testing.T) {
	stored := map[uint64]*model.SEOData{
		1: {ID: 1, ContentID: 1},
		2: {ID: 2, ContentID: 2},
	}
	seoRepo := &seoRepoMock{
		GetSEODataByIdFunc: func(_ context.Context, id uint64) (*model.SEOData, error) { return stored[id], nil },
		GetSEODataByContentIdFunc: func(_ context.Context, contentID uint64) (*model.SEOData, error) {
			for _, s := range stored {
				if s.ContentID == contentID {
					return s, nil
				}
			}
			return nil, nil
		},
	}
	contentRepo := &contentRepoMock{GetContentByIdFunc: contentsByID(&model.Content{ID: 1}, &model.Content{ID: 2})}
	svc := NewSEOService(seoRepo, contentRepo)

	target := uint64(2)
	_, err := svc.UpdateSEOData(context.Background(), 1, &dto.UpdateSEODataDTO{ContentID: &target})
	assert.ErrorIs(t, err, ErrSEODataExist)
}
