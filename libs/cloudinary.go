package libs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"table-order/config"
)

var ErrCloudinaryNotConfigured = errors.New("cloudinary credentials not configured")

const menuImageFolder = "menus"

type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryUploader prefers the separate credentials and falls back to CLOUDINARY_URL.
func NewCloudinaryUploader(cfg *config.Config) (*CloudinaryUploader, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)
	switch {
	case cfg.CloudName != "" && cfg.CloudAPIKey != "" && cfg.CloudSecret != "":
		cld, err = cloudinary.NewFromParams(cfg.CloudName, cfg.CloudAPIKey, cfg.CloudSecret)
	case cfg.CloudinaryURL != "":
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
	default:
		return nil, ErrCloudinaryNotConfigured
	}
	if err != nil {
		return nil, fmt.Errorf("initialize cloudinary: %w", err)
	}

	log.Println("Cloudinary uploader ready")
	return &CloudinaryUploader{cld: cld, folder: menuImageFolder}, nil
}

// UploadImage stores the image and returns its secure URL.
func (u *CloudinaryUploader) UploadImage(ctx context.Context, file io.Reader, publicID string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         u.folder,
		ResourceType:   "image",
		Transformation: "q_auto,f_auto",
	})
	if err != nil {
		return "", fmt.Errorf("upload to cloudinary: %w", err)
	}
	if resp == nil || resp.SecureURL == "" {
		msg := "empty response"
		if resp != nil && resp.Error.Message != "" {
			msg = resp.Error.Message
		}
		return "", fmt.Errorf("upload to cloudinary: %s", msg)
	}
	return resp.SecureURL, nil
}
