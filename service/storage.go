package service

import (
	"Circle/config"
	"Circle/pkg/log"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

var _ IStorageService = (*StorageService)(nil)

// IStorageService 头像文件的本地存储。
// 保存后的公开路径形如 /profile_images/{userId}_{原文件名}，由静态路由对外提供。
type IStorageService interface {
	IsValidExtension(ext string) bool
	IsValidSize(size int64) bool

	// SaveFile 落盘并返回公开路径，失败返回空串
	SaveFile(header *multipart.FileHeader, userID int) string

	// DeleteFile 按公开路径删除，文件不存在或删除失败返回 false
	DeleteFile(publicPath string) bool
}

type StorageService struct {
	Config *config.Config
}

func (s *StorageService) IsValidExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, allowed := range s.Config.Upload.Extensions {
		if ext == allowed {
			return true
		}
	}
	log.L.Warn("extension not allowed", zap.String("ext", ext))
	return false
}

func (s *StorageService) IsValidSize(size int64) bool {
	if size > s.Config.Upload.MaxSize() {
		log.L.Warn("file too large", zap.Int64("size", size))
		return false
	}
	return true
}

func (s *StorageService) SaveFile(header *multipart.FileHeader, userID int) string {
	folder := s.Config.Upload.Folder
	fileName := fmt.Sprintf("%d_%s", userID, filepath.Base(header.Filename))
	filePath := filepath.Join(folder, fileName)

	if err := os.MkdirAll(folder, 0o755); err != nil {
		log.L.Error("create upload folder", zap.Error(err))
		return ""
	}

	src, err := header.Open()
	if err != nil {
		log.L.Error("open uploaded file", zap.Error(err))
		return ""
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		log.L.Error("create file", zap.String("path", filePath), zap.Error(err))
		return ""
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		log.L.Error("write file", zap.String("path", filePath), zap.Error(err))
		return ""
	}

	return "/" + folder + "/" + fileName
}

func (s *StorageService) DeleteFile(publicPath string) bool {
	filePath := filepath.Join(".", strings.TrimPrefix(publicPath, "/"))

	if _, err := os.Stat(filePath); err != nil {
		log.L.Info("file not found", zap.String("path", filePath))
		return false
	}
	if err := os.Remove(filePath); err != nil {
		log.L.Error("delete file", zap.String("path", filePath), zap.Error(err))
		return false
	}

	log.L.Info("file deleted", zap.String("path", filePath))
	return true
}
