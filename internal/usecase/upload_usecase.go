package usecase

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"practice-site/config"
	"practice-site/internal/delivery/dto"
	"practice-site/internal/service"
	"practice-site/pkg/slug"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidUploadType   = errors.New("invalid upload type")
	ErrUnsupportedFileType = errors.New("only image files are allowed")
	ErrFileTooLarge        = errors.New("file too large")
	ErrUploadNotFound      = errors.New("file not found")
	ErrInvalidFilename     = errors.New("invalid filename")
)

const DefaultUploadType = "general"

// UploadTypes are the sub-directories uploads may be stored under.
var UploadTypes = []string{DefaultUploadType, "services", "team", "blog", "gallery"}

var allowedImageTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"image/svg+xml",
}

type UploadUsecase interface {
	Save(ctx context.Context, kind string, file *multipart.FileHeader) (*dto.UploadResponse, error)
	Delete(ctx context.Context, kind, filename string) error
}

type uploadUsecase struct {
	log          *logrus.Logger
	dir          string
	maxSize      int64
	baseURL      string
	auditService service.AuditService
}

func NewUploadUsecase(log *logrus.Logger, cfg config.UploadConfig, baseURL string, auditService service.AuditService) UploadUsecase {
	return &uploadUsecase{
		log:          log,
		dir:          cfg.Dir,
		maxSize:      cfg.MaxSize,
		baseURL:      strings.TrimRight(baseURL, "/"),
		auditService: auditService,
	}
}

// Save stores an image under <dir>/<kind>/ with a unique name. The content
// type is sniffed from the bytes, not taken from the client.
func (u *uploadUsecase) Save(ctx context.Context, kind string, header *multipart.FileHeader) (*dto.UploadResponse, error) {
	if kind == "" {
		kind = DefaultUploadType
	}
	if !slices.Contains(UploadTypes, kind) {
		return nil, ErrInvalidUploadType
	}
	if u.maxSize > 0 && header.Size > u.maxSize {
		return nil, ErrFileTooLarge
	}

	src, err := header.Open()
	if err != nil {
		u.log.Warnf("Failed to open uploaded file: %+v", err)
		return nil, err
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		u.log.Warnf("Failed to detect upload content type: %+v", err)
		return nil, err
	}
	if !isAllowedImage(mtype) {
		return nil, ErrUnsupportedFileType
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		u.log.Warnf("Failed to rewind uploaded file: %+v", err)
		return nil, err
	}

	targetDir := filepath.Join(u.dir, kind)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		u.log.Warnf("Failed to create upload directory: %+v", err)
		return nil, err
	}

	filename := uploadFilename(header.Filename, mtype.Extension())
	dst, err := os.OpenFile(filepath.Join(targetDir, filename), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		u.log.Warnf("Failed to create upload file: %+v", err)
		return nil, err
	}

	size, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(dst.Name())
		u.log.Warnf("Failed to write upload file: %+v", err)
		return nil, err
	}

	response := &dto.UploadResponse{
		Filename: filename,
		Type:     kind,
		URL:      u.baseURL + "/uploads/" + kind + "/" + filename,
		Size:     size,
		MimeType: mimeBase(mtype.String()),
	}

	u.auditService.LogCreate(ctx, service.AuditActionUploadCreate, "upload", kind+"/"+filename, response)

	return response, nil
}

func (u *uploadUsecase) Delete(ctx context.Context, kind, filename string) error {
	if !slices.Contains(UploadTypes, kind) {
		return ErrInvalidUploadType
	}
	if !isBareFilename(filename) {
		return ErrInvalidFilename
	}

	if err := os.Remove(filepath.Join(u.dir, kind, filename)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrUploadNotFound
		}
		u.log.Warnf("Failed to delete upload: %+v", err)
		return err
	}

	u.auditService.LogDelete(ctx, service.AuditActionUploadDelete, "upload", kind+"/"+filename)

	return nil
}

func isAllowedImage(mtype *mimetype.MIME) bool {
	for _, allowed := range allowedImageTypes {
		if mtype.Is(allowed) {
			return true
		}
	}
	return false
}

// mimeBase strips parameters such as "; charset=utf-8".
func mimeBase(m string) string {
	if i := strings.IndexByte(m, ';'); i >= 0 {
		return strings.TrimSpace(m[:i])
	}
	return m
}

// uploadFilename keeps a readable stem of the original name and appends a
// short random suffix.
func uploadFilename(original, ext string) string {
	stem := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	base := slug.Generate(stem)
	if base == "" {
		base = "file"
	}
	return base + "-" + uuid.New().String()[:8] + ext
}

func isBareFilename(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}
