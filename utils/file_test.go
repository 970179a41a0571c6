package utils

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name    string
		file    *multipart.FileHeader
		wantErr bool
	}{
		{"png", &multipart.FileHeader{Filename: "dish.png", Size: 1024}, false},
		{"upper case jpg", &multipart.FileHeader{Filename: "DISH.JPG", Size: 1024}, false},
		{"webp", &multipart.FileHeader{Filename: "dish.webp", Size: 1024}, false},
		{"pdf", &multipart.FileHeader{Filename: "menu.pdf", Size: 1024}, true},
		{"too large", &multipart.FileHeader{Filename: "dish.png", Size: 6 << 20}, true},
		{"missing", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImage(tt.file, 5<<20)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestImagePublicID(t *testing.T) {
	assert.Equal(t, "menu_1_pad_thai", ImagePublicID("menu_1", "pad thai.jpg"))
	assert.Equal(t, "menu_1", ImagePublicID("menu_1", ".png"))
}
