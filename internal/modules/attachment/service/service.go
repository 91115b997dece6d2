package attachment

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/zidaf/inayaspace/internal/entity"
	"github.com/zidaf/inayaspace/pkg/apperror"
	"github.com/zidaf/inayaspace/pkg/storage"
)

// 10 MB is generous for family photos while keeping the Cloudinary
// free tier happy.
const maxUploadSize = 10 << 20

var allowedMimePrefixes = []string{"image/", "video/"}

type Service interface {
	Upload(ctx context.Context, user *entity.User, file *multipart.FileHeader) (string, error)
}

type attachmentService struct {
	fileStorage storage.MediaStorage
	folder      string
}

func NewService(fileStorage storage.MediaStorage, folder string) Service {
	return &attachmentService{fileStorage: fileStorage, folder: folder}
}

func (s *attachmentService) Upload(ctx context.Context, user *entity.User, file *multipart.FileHeader) (string, error) {
	if s.fileStorage == nil {
		return "", fmt.Errorf("%w: uploads are not configured", apperror.ErrInternal)
	}
	if file.Size > maxUploadSize {
		return "", fmt.Errorf("%w: file exceeds the 10MB limit", apperror.ErrBadRequest)
	}

	contentType := file.Header.Get("Content-Type")
	allowed := false
	for _, prefix := range allowedMimePrefixes {
		if strings.HasPrefix(contentType, prefix) {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", fmt.Errorf("%w: only image and video uploads are accepted", apperror.ErrBadRequest)
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	return s.fileStorage.Upload(ctx, f, s.folder, file.Filename)
}
