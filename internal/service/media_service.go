package service

import (
	"Parchment/internal/api/dto"
	"Parchment/internal/model"
	"Parchment/internal/pkg/util"
	"Parchment/internal/repository"
	"context"
	"io"
	log "log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// maxExtLength 超长扩展名直接丢弃，保证 key 不超过 100 个字符
const maxExtLength = 10

// MediaUpload 待上传的文件
type MediaUpload struct {
	ContentID uint64
	Filename  string
	Size      int64
	Reader    io.ReadSeeker
}

type MediaService interface {
	UploadMediaFile(ctx context.Context, upload *MediaUpload) (*dto.MediaFileDTO, error)
	CreateMediaFile(ctx context.Context, dto *dto.CreateMediaFileDTO) (*dto.MediaFileDTO, error)
	GetMediaFile(ctx context.Context, id uint64) (*dto.MediaFileDTO, error)
	UpdateMediaFile(ctx context.Context, id uint64, dto *dto.UpdateMediaFileDTO) (*dto.MediaFileDTO, error)
	DeleteMediaFile(ctx context.Context, id uint64) (*model.MediaFile, error)
	CleanupMedia(ctx context.Context, batch int) (int, error)
}

type MediaServiceImpl struct {
	mediaRepo   repository.MediaFileRepo
	contentRepo repository.ContentRepo
	storage     BlobStorage
	queue       MediaQueue
	now         func() time.Time
}

func NewMediaService(mediaRepo repository.MediaFileRepo, contentRepo repository.ContentRepo, storage BlobStorage, queue MediaQueue) MediaService {
	return &MediaServiceImpl{
		mediaRepo:   mediaRepo,
		contentRepo: contentRepo,
		storage:     storage,
		queue:       queue,
		now:         time.Now,
	}
}

// UploadMediaFile 上传到对象存储并登记媒体记录，登记失败时删除已上传的对象
func (s *MediaServiceImpl) UploadMediaFile(ctx context.Context, upload *MediaUpload) (*dto.MediaFileDTO, error) {
	if err := requireContent(ctx, s.contentRepo, upload.ContentID); err != nil {
		return nil, err
	}

	contentType, err := util.GetSafeContentType(upload.Reader)
	if err != nil {
		return nil, err
	}
	if !util.IsMediaType(contentType) {
		return nil, ErrFileNotSupported
	}

	objectName := s.objectName(upload.Filename)
	fileKey, err := s.storage.Upload(ctx, objectName, upload.Reader, upload.Size, contentType)
	if err != nil {
		return nil, err
	}

	media := &model.MediaFile{ContentID: upload.ContentID, File: fileKey}
	if err = s.mediaRepo.CreateMediaFile(ctx, media); err != nil {
		if delErr := s.storage.Delete(ctx, fileKey); delErr != nil {
			log.WarnContext(ctx, "rollback uploaded media failed", "key", fileKey, "err", delErr)
		}
		return nil, translateStoreError(err, nil, ErrContentNotFound)
	}

	log.InfoContext(ctx, "media upload success", "fileKey", fileKey, "type", contentType)
	return s.GetMediaFile(ctx, media.ID)
}

// objectName media/<yyyy>/<mm>/<dd>/<uuid><ext>
func (s *MediaServiceImpl) objectName(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if len(ext) > maxExtLength {
		ext = ""
	}
	return model.MediaUploadPrefix + s.now().UTC().Format("2006/01/02/") + uuid.NewString() + ext
}

// CreateMediaFile 登记已存在于对象存储中的文件
func (s *MediaServiceImpl) CreateMediaFile(ctx context.Context, createDTO *dto.CreateMediaFileDTO) (*dto.MediaFileDTO, error) {
	if err := requireContent(ctx, s.contentRepo, createDTO.ContentID); err != nil {
		return nil, err
	}

	media := &model.MediaFile{}
	if err := copier.Copy(media, createDTO); err != nil {
		return nil, err
	}
	if err := s.mediaRepo.CreateMediaFile(ctx, media); err != nil {
		return nil, translateStoreError(err, nil, ErrContentNotFound)
	}
	return s.GetMediaFile(ctx, media.ID)
}

func (s *MediaServiceImpl) GetMediaFile(ctx context.Context, id uint64) (*dto.MediaFileDTO, error) {
	media, err := s.getMediaFile(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.MediaFileDTO{MediaFile: media, URL: s.storage.PublicURL(media.File)}, nil
}

func (s *MediaServiceImpl) getMediaFile(ctx context.Context, id uint64) (*model.MediaFile, error) {
	media, err := s.mediaRepo.GetMediaFileById(ctx, id)
	if err != nil {
		return nil, err
	}
	if media == nil {
		return nil, ErrMediaNotFound
	}
	return media, nil
}

func (s *MediaServiceImpl) UpdateMediaFile(ctx context.Context, id uint64, updateDTO *dto.UpdateMediaFileDTO) (*dto.MediaFileDTO, error) {
	if _, err := s.getMediaFile(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if updateDTO.ContentID != nil {
		if err := requireContent(ctx, s.contentRepo, *updateDTO.ContentID); err != nil {
			return nil, err
		}
		fields["content_id"] = *updateDTO.ContentID
	}
	setField(fields, "file", updateDTO.File)

	if err := s.mediaRepo.UpdateMediaFile(ctx, id, fields); err != nil {
		return nil, translateStoreError(err, nil, ErrContentNotFound)
	}
	return s.GetMediaFile(ctx, id)
}

// DeleteMediaFile 删除记录，对象由清理任务异步删除
func (s *MediaServiceImpl) DeleteMediaFile(ctx context.Context, id uint64) (*model.MediaFile, error) {
	media, err := s.getMediaFile(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = s.mediaRepo.DeleteMediaFile(ctx, id); err != nil {
		return nil, err
	}
	if err = s.queue.Push(ctx, media.File); err != nil {
		log.ErrorContext(ctx, "enqueue media cleanup failed", "key", media.File, "err", err)
	}
	return media, nil
}

// CleanupMedia 从队列取出至多 batch 个 key 并删除对象，仍被其他记录引用的 key 直接出队，删除失败的重新入队
func (s *MediaServiceImpl) CleanupMedia(ctx context.Context, batch int) (int, error) {
	keys, err := s.queue.Pop(ctx, batch)
	if err != nil {
		return 0, err
	}

	var failed []string
	deleted := 0
	for _, key := range keys {
		refs, err := s.mediaRepo.CountMediaFilesByFile(ctx, key)
		if err != nil {
			log.WarnContext(ctx, "count media references failed", "key", key, "err", err)
			failed = append(failed, key)
			continue
		}
		if refs > 0 {
			log.InfoContext(ctx, "media object still referenced, skip", "key", key, "refs", refs)
			continue
		}
		if err = s.storage.Delete(ctx, key); err != nil {
			log.WarnContext(ctx, "delete media object failed", "key", key, "err", err)
			failed = append(failed, key)
			continue
		}
		deleted++
	}
	if len(failed) > 0 {
		if err = s.queue.Push(ctx, failed...); err != nil {
			return deleted, err
		}
	}
	return deleted, nil
}
