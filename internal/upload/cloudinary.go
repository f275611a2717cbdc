package upload

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wb-go/wbf/logger"
)

// CloudinaryUploader stores proof images with Cloudinary's signed upload
// API and returns the stable secure URL. With no cloud name configured it
// returns a deterministic placeholder URL so local runs work without
// credentials.
type CloudinaryUploader struct {
	cloudName string
	apiKey    string
	apiSecret string
	folder    string
	client    *http.Client
	logger    logger.Logger
}

func NewCloudinaryUploader(cloudName, apiKey, apiSecret, folder string, logger logger.Logger) *CloudinaryUploader {
	if cloudName == "" {
		logger.Warn("cloudinary cloud name is empty, uploads return placeholder URLs")
	}
	return &CloudinaryUploader{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		folder:    folder,
		client:    &http.Client{Timeout: 30 * time.Second},
		logger:    logger,
	}
}

func (u *CloudinaryUploader) Upload(ctx context.Context, data []byte, name string) (string, error) {
	if u.cloudName == "" {
		return "https://storage.invalid/proofs/" + name, nil
	}

	publicID := name
	if u.folder != "" {
		publicID = u.folder + "/" + name
	}
	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	// Cloudinary signs the sorted non-credential params with the secret.
	signature := sha1.Sum([]byte("public_id=" + publicID + "&timestamp=" + timestamp + u.apiSecret))

	form := url.Values{}
	form.Set("file", "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString(data))
	form.Set("api_key", u.apiKey)
	form.Set("public_id", publicID)
	form.Set("timestamp", timestamp)
	form.Set("signature", hex.EncodeToString(signature[:]))

	endpoint := "https://api.cloudinary.com/v1_1/" + u.cloudName + "/image/upload"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upload image: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		SecureURL string `json:"secure_url"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if body.SecureURL == "" {
		return "", fmt.Errorf("upload image: empty secure_url in response")
	}

	u.logger.Debug("proof image uploaded",
		logger.String("public_id", publicID),
	)

	return body.SecureURL, nil
}
