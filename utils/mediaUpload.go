package utils

import (
	"bytes"
	"fmt"

	"github.com/Tej-ashwani/StudyNotion/config"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// UploadResult carries the fields of the media host response the controllers
// care about: the served URL and, for videos, the duration in seconds.
type UploadResult struct {
	SecureURL string  `json:"secure_url"`
	PublicID  string  `json:"public_id"`
	Duration  float64 `json:"duration"`
}

var mediaClient = resty.New()

// UploadMedia pushes a file to the Cloudinary unsigned upload endpoint using
// the configured preset and folder. Works for both images and videos via the
// auto resource type.
func UploadMedia(fileName string, data []byte) (*UploadResult, error) {
	if config.AppConfig.CloudinaryCloudName == "" {
		return nil, fmt.Errorf("media host is not configured")
	}

	url := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/auto/upload",
		config.AppConfig.CloudinaryCloudName)

	var result UploadResult
	resp, err := mediaClient.R().
		SetFileReader("file", fileName, bytes.NewReader(data)).
		SetFormData(map[string]string{
			"upload_preset": config.AppConfig.CloudinaryPreset,
			"folder":        config.AppConfig.FolderName,
			"public_id":     uuid.NewString(),
		}).
		SetResult(&result).
		Post(url)
	if err != nil {
		return nil, fmt.Errorf("media upload failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("media host rejected upload: %s", resp.Status())
	}

	return &result, nil
}
