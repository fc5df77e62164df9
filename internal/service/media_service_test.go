package service

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"Parchment/internal/api/dto"
	"Parchment/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 最小的合法 PNG 文件头
var pngHeader = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89,
}

func newMediaFixture() (*MediaServiceImpl, *mediaRepoMock, *storageStub, *queueStub) {
	var stored []*model.MediaFile
	mediaRepo := &mediaRepoMock{
		CreateMediaFileFunc: func(_ context.Context, m *model.MediaFile) error {
			m.ID = uint64(len(stored) + 1)
			stored = append(stored, m)
			return nil
		},
		GetMediaFileByIdFunc: func(_ context.Context, id uint64) (*model.MediaFile, error) {
			for _, m := range stored {
				if m.ID == id {
					return m, nil
				}
			}
			return nil, nil
		},
		DeleteMediaFileFunc: func(_ context.Context, id uint64) error {
			for i, m := range stored {
				if m.ID == id {
					stored = append(stored[:i], stored[i+1:]...)
					break
				}
			}
			return nil
		},
		CountMediaFilesByFileFunc: func(_ context.Context, file string) (int64, error) {
			var n int64
			for _, m := range stored {
				if m.File == file {
					n++
				}
			}
			return n, nil
		},
	}
	storage := newStorageStub()
	queue := &queueStub{}
	contentRepo := &contentRepoMock{GetContentByIdFunc: contentsByID(&model.Content{ID: 1})}
	svc := NewMediaService(mediaRepo, contentRepo, storage, queue).(*MediaServiceImpl)
	svc.now = func() time.Time { return time.Date(2024, 3, 9, 23, 0, 0, 0, time.UTC) }
	return svc, mediaRepo, storage, queue
}

func TestMediaService_UploadMediaFile(t *testing.T) {
	svc, _, storage, _ := newMediaFixture()

	media, err := svc.UploadMediaFile(context.Background(), &MediaUpload{
		ContentID: 1,
		Filename:  "Cover.PNG",
		Size:      int64(len(pngHeader)),
		Reader:    bytes.NewReader(pngHeader),
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^media/2024/03/09/[0-9a-f-]{36}\.png$`), media.File)
	assert.Equal(t, "image/png", storage.uploaded[media.File])
	assert.Equal(t, "http://cdn.test/parchment/"+media.File, media.URL)
}

func TestMediaService_UploadMediaFile_Rejected(t *testing.T) {
	svc, _, storage, _ := newMediaFixture()
	ctx := context.Background()

	_, err := svc.UploadMediaFile(ctx, &MediaUpload{
		ContentID: 1,
		Filename:  "notes.txt",
		Reader:    bytes.NewReader([]byte("plain text notes")),
	})
	assert.ErrorIs(t, err, ErrFileNotSupported)

	_, err = svc.UploadMediaFile(ctx, &MediaUpload{
		ContentID: 7,
		Filename:  "a.png",
		Reader:    bytes.NewReader(pngHeader),
	})
	assert.ErrorIs(t, err, ErrContentNotFound)
	assert.Empty(t, storage.uploaded)
}

func TestMediaService_UploadMediaFile_RollbackOnStoreError(t *testing.T) {
	svc, mediaRepo, storage, _ := newMediaFixture()
	boom := errors.New("insert failed")
	mediaRepo.CreateMediaFileFunc = func(context.Context, *model.MediaFile) error { return boom }

	_, err := svc.UploadMediaFile(context.Background(), &MediaUpload{
		ContentID: 1,
		Filename:  "a.png",
		Reader:    bytes.NewReader(pngHeader),
	})
	assert.ErrorIs(t, err, boom)
	require.Len(t, storage.uploaded, 1)
	for key := range storage.uploaded {
		assert.Equal(t, []string{key}, storage.deleted)
	}
}

func TestMediaService_ObjectName_DropsLongExtension(t *testing.T) {
	svc, _, _, _ := newMediaFixture()

	name := svc.objectName("archive.verylongextension")
	assert.Regexp(t, `^media/2024/03/09/[0-9a-f-]{36}$`, name)
	assert.LessOrEqual(t, len(svc.objectName("x.jpeg")), 100)
}

func TestMediaService_DeleteMediaFile_Enqueues(t *testing.T) {
	svc, mediaRepo, _, queue := newMediaFixture()
	mediaRepo.GetMediaFileByIdFunc = func(context.Context, uint64) (*model.MediaFile, error) {
		return &model.MediaFile{ID: 3, File: "media/old.png"}, nil
	}
	mediaRepo.DeleteMediaFileFunc = func(context.Context, uint64) error { return nil }

	media, err := svc.DeleteMediaFile(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "media/old.png", media.File)
	assert.Equal(t, []string{"media/old.png"}, queue.keys)
}

func TestMediaService_CleanupMedia_RequeuesFailures(t *testing.T) {
	svc, _, storage, queue := newMediaFixture()
	queue.keys = []string{"media/a.png", "media/b.png", "media/c.png"}
	storage.DeleteErr = func(key string) error {
		if key == "media/b.png" {
			return errors.New("minio unavailable")
		}
		return nil
	}

	deleted, err := svc.CleanupMedia(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
	assert.Equal(t, []string{"media/a.png"}, storage.deleted)
	assert.Equal(t, []string{"media/c.png", "media/b.png"}, queue.keys)
}

func TestMediaService_CleanupMedia_KeepsSharedObject(t *testing.T) {
	svc, _, storage, queue := newMediaFixture()
	ctx := context.Background()

	first, err := svc.CreateMediaFile(ctx, &dto.CreateMediaFileDTO{ContentID: 1, File: "media/shared.png"})
	require.NoError(t, err)
	second, err := svc.CreateMediaFile(ctx, &dto.CreateMediaFileDTO{ContentID: 1, File: "media/shared.png"})
	require.NoError(t, err)

	_, err = svc.DeleteMediaFile(ctx, first.ID)
	require.NoError(t, err)
	deleted, err := svc.CleanupMedia(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, deleted)
	assert.Empty(t, storage.deleted)
	assert.Empty(t, queue.keys)

	_, err = svc.DeleteMediaFile(ctx, second.ID)
	require.NoError(t, err)
	deleted, err = svc.CleanupMedia(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
	assert.Equal(t, []string{"media/shared.png"}, storage.deleted)
}

func TestMediaService_CleanupMedia_RequeuesOnCountError(t *testing.T) {
	svc, mediaRepo, storage, queue := newMediaFixture()
	queue.keys = []string{"media/a.png"}
	mediaRepo.CountMediaFilesByFileFunc = func(context.Context, string) (int64, error) {
		return 0, errors.New("db down")
	}

	deleted, err := svc.CleanupMedia(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 0, deleted)
	assert.Empty(t, storage.deleted)
	assert.Equal(t, []string{"media/a.png"}, queue.keys)
}
