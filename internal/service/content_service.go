package service

import (
	"Parchment/internal/api/dto"
	"Parchment/internal/model"
	"Parchment/internal/pkg/es"
	"Parchment/internal/pkg/util"
	"Parchment/internal/repository"
	"context"
	log "log/slog"

	"github.com/jinzhu/copier"
)

const (
	defaultSearchSize = 10
	excerptLength     = 200
)

type ContentService interface {
	CreateContent(ctx context.Context, dto *dto.CreateContentDTO) (*model.Content, error)
	GetContent(ctx context.Context, id uint64) (*model.Content, error)
	GetContentBySlug(ctx context.Context, slug string) (*model.Content, error)
	UpdateContent(ctx context.Context, id uint64, dto *dto.UpdateContentDTO) (*model.Content, error)
	DeleteContent(ctx context.Context, id uint64) (*model.Content, error)
	SearchContents(ctx context.Context, dto *dto.ContentSearchDTO) (*dto.ContentSearchResultDTO, error)
}

type ContentServiceImpl struct {
	contentRepo   repository.ContentRepo
	userRepo      repository.UserRepo
	contentESRepo es.ContentRepo
	cache         ContentCache
	queue         MediaQueue
}

func NewContentService(
	contentRepo repository.ContentRepo,
	userRepo repository.UserRepo,
	contentESRepo es.ContentRepo,
	cache ContentCache,
	queue MediaQueue,
) ContentService {
	return &ContentServiceImpl{
		contentRepo:   contentRepo,
		userRepo:      userRepo,
		contentESRepo: contentESRepo,
		cache:         cache,
		queue:         queue,
	}
}

// CreateContent 未提供 slug 时由标题生成
func (s *ContentServiceImpl) CreateContent(ctx context.Context, createDTO *dto.CreateContentDTO) (*model.Content, error) {
	content := &model.Content{}
	if err := copier.Copy(content, createDTO); err != nil {
		return nil, err
	}
	if content.Slug == "" {
		content.Slug = util.Slugify(content.Title, model.SlugMaxLength)
		if content.Slug == "" {
			return nil, ErrSlugEmpty
		}
	}
	if content.Status == "" {
		content.Status = model.ContentDraft
	}

	if err := requireUser(ctx, s.userRepo, content.AuthorID, ErrUserNotFound); err != nil {
		return nil, err
	}
	if err := s.checkSlugFree(ctx, content.Slug, 0); err != nil {
		return nil, err
	}

	if err := s.contentRepo.CreateContent(ctx, content); err != nil {
		return nil, translateStoreError(err, ErrSlugExist, ErrUserNotFound)
	}
	return s.GetContent(ctx, content.ID)
}

func (s *ContentServiceImpl) GetContent(ctx context.Context, id uint64) (*model.Content, error) {
	content, err := s.contentRepo.GetContentById(ctx, id)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, ErrContentNotFound
	}
	return content, nil
}

// GetContentBySlug 先查缓存，未命中回源并回填。缓存不含作者，命中后按主键补全
func (s *ContentServiceImpl) GetContentBySlug(ctx context.Context, slug string) (*model.Content, error) {
	cached, err := s.cache.Get(ctx, slug)
	if err != nil {
		log.WarnContext(ctx, "content cache get failed", "slug", slug, "err", err)
	}
	if cached != nil {
		if cached.Author, err = s.userRepo.GetUserById(ctx, cached.AuthorID); err != nil {
			return nil, err
		}
		return cached, nil
	}

	version, verErr := s.cache.Version(ctx, slug)
	if verErr != nil {
		log.WarnContext(ctx, "content cache version failed", "slug", slug, "err", verErr)
	}

	content, err := s.contentRepo.GetContentBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, ErrContentNotFound
	}

	if verErr == nil {
		if err = s.cache.Set(ctx, content, version); err != nil {
			log.WarnContext(ctx, "content cache set failed", "slug", slug, "err", err)
		}
	}
	return content, nil
}

func (s *ContentServiceImpl) UpdateContent(ctx context.Context, id uint64, updateDTO *dto.UpdateContentDTO) (*model.Content, error) {
	content, err := s.GetContent(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if updateDTO.Slug != nil && *updateDTO.Slug != content.Slug {
		if err = s.checkSlugFree(ctx, *updateDTO.Slug, id); err != nil {
			return nil, err
		}
		fields["slug"] = *updateDTO.Slug
	}
	if updateDTO.AuthorID != nil && *updateDTO.AuthorID != content.AuthorID {
		if err = requireUser(ctx, s.userRepo, *updateDTO.AuthorID, ErrUserNotFound); err != nil {
			return nil, err
		}
		fields["author_id"] = *updateDTO.AuthorID
	}
	setField(fields, "title", updateDTO.Title)
	setField(fields, "body", updateDTO.Body)
	setField(fields, "status", updateDTO.Status)
	setField(fields, "published_at", updateDTO.PublishedAt)

	if err = s.contentRepo.UpdateContent(ctx, id, fields); err != nil {
		return nil, translateStoreError(err, ErrSlugExist, ErrUserNotFound)
	}

	if err = s.cache.Invalidate(ctx, content.Slug); err != nil {
		log.WarnContext(ctx, "invalidate content cache failed", "slug", content.Slug, "err", err)
	}
	return s.GetContent(ctx, id)
}

// DeleteContent 删除内容及其全部从属记录，返回删除前的内容
func (s *ContentServiceImpl) DeleteContent(ctx context.Context, id uint64) (*model.Content, error) {
	content, err := s.GetContent(ctx, id)
	if err != nil {
		return nil, err
	}

	removed, err := s.contentRepo.DeleteContent(ctx, id)
	if err != nil {
		return nil, err
	}
	cleanupRemoved(ctx, removed, s.cache, s.queue)
	return content, nil
}

func (s *ContentServiceImpl) SearchContents(ctx context.Context, searchDTO *dto.ContentSearchDTO) (*dto.ContentSearchResultDTO, error) {
	page, size := searchDTO.Page, searchDTO.Size
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultSearchSize
	}

	docs, total, err := s.contentESRepo.SearchPublished(ctx, searchDTO.Query, (page-1)*size, size)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ContentSummaryDTO, 0, len(docs))
	for _, doc := range docs {
		items = append(items, &dto.ContentSummaryDTO{
			ID:          doc.ID,
			Title:       doc.Title,
			Slug:        doc.Slug,
			Excerpt:     excerpt(doc.Body, excerptLength),
			AuthorID:    doc.AuthorID,
			PublishedAt: doc.PublishedAt,
		})
	}
	return &dto.ContentSearchResultDTO{Total: total, Items: items}, nil
}

func (s *ContentServiceImpl) checkSlugFree(ctx context.Context, slug string, selfID uint64) error {
	other, err := s.contentRepo.GetContentBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if other != nil && other.ID != selfID {
		return ErrSlugExist
	}
	return nil
}

func excerpt(body string, limit int) string {
	runes := []rune(body)
	if len(runes) <= limit {
		return body
	}
	return string(runes[:limit]) + "…"
}
