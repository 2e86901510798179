package service

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appErrors "github.com/nsmosa/alumni-portal-api/pkg/errors"
	"github.com/nsmosa/alumni-portal-api/pkg/storage"
)

// allowed photo extensions, lowercase.
var imageExtensions = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {},
}

// UploadResult describes a stored photo and its access token.
type UploadResult struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UploadService stores admin-uploaded photos on disk and hands out signed
// download URLs. Files are never served by raw path: the token binds the
// path to its signature, so stored files cannot be enumerated.
type UploadService struct {
	files  *storage.LocalStorage
	signer *storage.SignedURLSigner
	logger *zap.Logger
}

// NewUploadService creates the service.
func NewUploadService(files *storage.LocalStorage, signer *storage.SignedURLSigner, logger *zap.Logger) *UploadService {
	return &UploadService{files: files, signer: signer, logger: logger}
}

// SaveImage stores one photo and returns its signed URL. The original
// filename only contributes its extension, which must be a known image
// type.
func (s *UploadService) SaveImage(filename string, r io.Reader) (*UploadResult, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := imageExtensions[ext]; !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported image type")
	}

	id := uuid.NewString()
	relPath := filepath.Join("photos", id+ext)
	if _, err := s.files.SaveStream(relPath, r); err != nil {
		return nil, appErrors.Wrap(err, "UPLOAD_FAILED", 500, "failed to store upload")
	}

	token, expiresAt, err := s.signer.Generate(id, relPath)
	if err != nil {
		return nil, appErrors.Wrap(err, "UPLOAD_FAILED", 500, "failed to sign upload url")
	}

	s.logger.Info("photo uploaded", zap.String("upload_id", id), zap.String("path", relPath))
	return &UploadResult{
		ID:        id,
		Path:      relPath,
		URL:       fmt.Sprintf("/api/v1/files/%s", token),
		ExpiresAt: expiresAt,
	}, nil
}

// Resolve validates a download token and returns the absolute file path.
func (s *UploadService) Resolve(token string) (string, error) {
	_, relPath, _, err := s.signer.Parse(token, false)
	if err != nil {
		return "", appErrors.Clone(appErrors.ErrNotFound, "invalid or expired file token")
	}
	return s.files.Path(relPath), nil
}
