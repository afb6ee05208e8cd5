package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"bridges/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UploadServiceInterface interface {
	// SaveImage stores an accepted image and returns its public URL. Files
	// that are not allowed images are skipped with accepted=false.
	SaveImage(file *multipart.FileHeader) (url string, accepted bool, err error)
	// Remove deletes a file previously returned by SaveImage.
	Remove(url string)
}

type UploadService struct {
	dir   string
	mount string
	log   *zap.Logger
}

func NewUploadService(dir, mount string, log *zap.Logger) (UploadServiceInterface, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &UploadService{
		dir:   dir,
		mount: strings.TrimRight(mount, "/"),
		log:   log,
	}, nil
}

func (s *UploadService) SaveImage(file *multipart.FileHeader) (string, bool, error) {
	if file == nil || file.Filename == "" || !utils.AllowedImage(file.Filename) {
		return "", false, nil
	}

	clean := utils.SecureFilename(file.Filename)
	if !utils.AllowedImage(clean) {
		return "", false, nil
	}

	// A short random prefix keeps equal client names from replacing each other.
	stored := uuid.NewString()[:8] + "_" + clean

	src, err := file.Open()
	if err != nil {
		return "", false, err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, stored))
	if err != nil {
		return "", false, err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(dst.Name())
		return "", false, err
	}
	if err := dst.Close(); err != nil {
		return "", false, err
	}

	s.log.Info("image stored", zap.String("file", stored), zap.Int64("bytes", file.Size))
	return s.mount + "/" + stored, true, nil
}

func (s *UploadService) Remove(url string) {
	name := strings.TrimPrefix(url, s.mount+"/")
	if name == url || name == "" || strings.ContainsAny(name, `/\`) {
		return
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		s.log.Warn("remove upload", zap.String("file", name), zap.Error(err))
	}
}
