package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var ErrInvalidImageType = errors.New("invalid file type. Only jpg, jpeg, png, gif, webp allowed")

func ValidateImage(fileHeader *multipart.FileHeader, maxSize int64) error {
	if fileHeader == nil {
		return errors.New("image file is required")
	}
	if maxSize > 0 && fileHeader.Size > maxSize {
		return fmt.Errorf("file size exceeds maximum allowed size of %d bytes", maxSize)
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return ErrInvalidImageType
	}
	return nil
}

// ImagePublicID builds a cloud storage id from the file name without its extension.
func ImagePublicID(prefix, filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.ReplaceAll(strings.TrimSpace(base), " ", "_")
	if base == "" {
		return prefix
	}
	return prefix + "_" + base
}
