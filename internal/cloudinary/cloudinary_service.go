package cloudinary

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

//go:generate mockgen -source=cloudinary_service.go -destination=../mock/cloudinary/cloudinary_service_mock.go -package=mock
type Service interface {
	UploadImage(ctx context.Context, file io.Reader, filename string) (string, error)
	DeleteImage(ctx context.Context, imageURL string) error
}

type service struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewService(cloudName, apiKey, apiSecret, folder string) (Service, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &service{
		cld:    cld,
		folder: folder,
	}, nil
}

// UploadImage uploads a product image and returns its secure URL.
func (s *service) UploadImage(ctx context.Context, file io.Reader, filename string) (string, error) {
	name := strings.TrimSuffix(path.Base(filename), path.Ext(filename))

	res, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         s.folder,
		PublicID:       name,
		ResourceType:   "image",
		Transformation: "c_fill,w_800,h_800,q_auto",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("failed to upload image: %s", res.Error.Message)
	}

	return res.SecureURL, nil
}

// DeleteImage removes an image previously returned by UploadImage. URLs that
// do not point into the configured folder are ignored.
func (s *service) DeleteImage(ctx context.Context, imageURL string) error {
	publicID := ExtractPublicID(imageURL, s.folder)
	if publicID == "" {
		return nil
	}

	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

var versionSegment = regexp.MustCompile(`^v\d+/`)

// ExtractPublicID turns
// https://res.cloudinary.com/demo/image/upload/v1234567890/folder/filename.jpg
// into folder/filename. It returns "" when the URL is not an upload URL or
// lies outside folder.
func ExtractPublicID(url, folder string) string {
	const marker = "/upload/"
	i := strings.Index(url, marker)
	if i < 0 {
		return ""
	}

	rest := url[i+len(marker):]
	if q := strings.IndexAny(rest, "?#"); q >= 0 {
		rest = rest[:q]
	}
	rest = versionSegment.ReplaceAllString(rest, "")
	rest = strings.TrimSuffix(rest, path.Ext(rest))

	if folder != "" && !strings.HasPrefix(rest, strings.Trim(folder, "/")+"/") {
		return ""
	}
	return rest
}
