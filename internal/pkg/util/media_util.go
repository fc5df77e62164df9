package util

import (
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	MimePrefixImage = "image/"
	MimePrefixAudio = "audio/"
	MimePrefixVideo = "video/"
)

// GetSafeContentType 按文件头嗅探 MIME 类型，读取后将 reader 复位
func GetSafeContentType(reader io.ReadSeeker) (string, error) {
	mt, err := mimetype.DetectReader(reader)
	if err != nil {
		return "", err
	}
	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return mt.String(), nil
}

// IsMediaType 是否为允许上传的图片、音频或视频
func IsMediaType(contentType string) bool {
	return strings.HasPrefix(contentType, MimePrefixImage) ||
		strings.HasPrefix(contentType, MimePrefixAudio) ||
		strings.HasPrefix(contentType, MimePrefixVideo)
}
