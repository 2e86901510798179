package service

import (
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appErrors "github.com/nsmosa/alumni-portal-api/pkg/errors"
	"github.com/nsmosa/alumni-portal-api/pkg/storage"
)

func newUploadService(t *testing.T) *UploadService {
	t.Helper()
	files, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("upload-test-secret", time.Hour)
	return NewUploadService(files, signer, zap.NewNop())
}

func TestSaveImageAndResolve(t *testing.T) {
	svc := newUploadService(t)

	result, err := svc.SaveImage("Reunion Photo.JPG", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	require.NotEmpty(t, result.ID)
	require.True(t, strings.HasSuffix(result.Path, ".jpg"))
	require.True(t, strings.HasPrefix(result.URL, "/api/v1/files/"))

	token := strings.TrimPrefix(result.URL, "/api/v1/files/")
	path, err := svc.Resolve(token)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "jpeg-bytes", string(data))
}

func TestSaveImageRejectsNonImages(t *testing.T) {
	svc := newUploadService(t)

	for _, name := range []string{"malware.exe", "notes.txt", "archive.tar.gz", "noextension"} {
		_, err := svc.SaveImage(name, strings.NewReader("x"))
		require.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status, name)
	}
}

func TestResolveRejectsBadTokens(t *testing.T) {
	svc := newUploadService(t)

	_, err := svc.Resolve("garbage-token")
	require.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)

	// Tokens signed under a different secret do not resolve.
	other := storage.NewSignedURLSigner("other-secret", time.Hour)
	token, _, err := other.Generate("id", "photos/x.jpg")
	require.NoError(t, err)
	_, err = svc.Resolve(token)
	require.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}
