package contentful

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/thesolution-at/alz-backend/internal/config"
	"github.com/thesolution-at/alz-backend/pkg/logger"
)

// Manager is the write-side store interface consumed by the admin facade
type Manager interface {
	CreateEntry(ctx context.Context, contentType string, fields map[string]interface{}) (*Entry, error)
	GetEntry(ctx context.Context, id string) (*Entry, error)
	PublishEntry(ctx context.Context, id string, version int) (*Entry, error)
	UnpublishEntry(ctx context.Context, id string, version int) (*Entry, error)
	DeleteEntry(ctx context.Context, id string, version int) error

	CreateUpload(ctx context.Context, data []byte) (string, error)
	CreateAsset(ctx context.Context, title, fileName, contentType, uploadID string) (*Entry, error)
	ProcessAsset(ctx context.Context, id string, version int) error
	WaitForAssetProcessing(ctx context.Context, id string) (*Entry, error)
	PublishAsset(ctx context.Context, id string, version int) (*Entry, error)
}

// ManagementClient talks to the management API of the remote store.
// All operations are scoped to one space and one environment.
type ManagementClient struct {
	httpClient *http.Client
	baseURL    string
	uploadURL  string
	token      string
	log        zerolog.Logger
}

// NewManagementClient creates a management API client
func NewManagementClient(cfg config.ContentfulConfig) *ManagementClient {
	return &ManagementClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL: fmt.Sprintf("https://%s/spaces/%s/environments/%s",
			cfg.ManagementHost, cfg.SpaceID, cfg.Environment),
		uploadURL: fmt.Sprintf("https://%s/spaces/%s", cfg.UploadHost, cfg.SpaceID),
		token:     cfg.ManagementToken,
		log:       logger.WithComponent("contentful-management"),
	}
}

// CreateEntry creates a draft entry of the given content type.
// Field values must already be locale-wrapped (see Localized).
func (c *ManagementClient) CreateEntry(ctx context.Context, contentType string, fields map[string]interface{}) (*Entry, error) {
	payload := map[string]interface{}{"fields": fields}
	headers := map[string]string{"X-Contentful-Content-Type": contentType}

	var entry Entry
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/entries", payload, headers, &entry); err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	return &entry, nil
}

// GetEntry fetches one entry including its version metadata
func (c *ManagementClient) GetEntry(ctx context.Context, id string) (*Entry, error) {
	var entry Entry
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL+"/entries/"+id, nil, nil, &entry); err != nil {
		return nil, fmt.Errorf("get entry %s: %w", id, err)
	}
	return &entry, nil
}

// PublishEntry publishes the entry at the given version
func (c *ManagementClient) PublishEntry(ctx context.Context, id string, version int) (*Entry, error) {
	headers := versionHeader(version)
	var entry Entry
	if err := c.doJSON(ctx, http.MethodPut, c.baseURL+"/entries/"+id+"/published", nil, headers, &entry); err != nil {
		return nil, fmt.Errorf("publish entry %s: %w", id, err)
	}
	return &entry, nil
}

// UnpublishEntry removes the published version of an entry
func (c *ManagementClient) UnpublishEntry(ctx context.Context, id string, version int) (*Entry, error) {
	headers := versionHeader(version)
	var entry Entry
	if err := c.doJSON(ctx, http.MethodDelete, c.baseURL+"/entries/"+id+"/published", nil, headers, &entry); err != nil {
		return nil, fmt.Errorf("unpublish entry %s: %w", id, err)
	}
	return &entry, nil
}

// DeleteEntry deletes an (unpublished) entry
func (c *ManagementClient) DeleteEntry(ctx context.Context, id string, version int) error {
	headers := versionHeader(version)
	if err := c.doJSON(ctx, http.MethodDelete, c.baseURL+"/entries/"+id, nil, headers, nil); err != nil {
		return fmt.Errorf("delete entry %s: %w", id, err)
	}
	return nil
}

// CreateUpload streams raw file bytes to the upload host and returns the
// upload id to link from an asset.
func (c *ManagementClient) CreateUpload(ctx context.Context, data []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL+"/uploads", bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var upload Entry
	if err := json.Unmarshal(body, &upload); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	return upload.Sys.ID, nil
}

// CreateAsset creates a draft asset referencing an existing upload
func (c *ManagementClient) CreateAsset(ctx context.Context, title, fileName, contentType, uploadID string) (*Entry, error) {
	payload := map[string]interface{}{
		"fields": map[string]interface{}{
			"title": Localized(title),
			"file": Localized(map[string]interface{}{
				"contentType": contentType,
				"fileName":    fileName,
				"uploadFrom": map[string]interface{}{
					"sys": map[string]interface{}{
						"type":     "Link",
						"linkType": "Upload",
						"id":       uploadID,
					},
				},
			}),
		},
	}

	var asset Entry
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/assets", payload, nil, &asset); err != nil {
		return nil, fmt.Errorf("create asset: %w", err)
	}
	return &asset, nil
}

// ProcessAsset asks the store to process the uploaded file
func (c *ManagementClient) ProcessAsset(ctx context.Context, id string, version int) error {
	headers := versionHeader(version)
	url := fmt.Sprintf("%s/assets/%s/files/%s/process", c.baseURL, id, Locale)
	if err := c.doJSON(ctx, http.MethodPut, url, nil, headers, nil); err != nil {
		return fmt.Errorf("process asset %s: %w", id, err)
	}
	return nil
}

// WaitForAssetProcessing polls the asset until its file URL appears.
// Processing is asynchronous on the store side and usually completes
// within a second or two.
func (c *ManagementClient) WaitForAssetProcessing(ctx context.Context, id string) (*Entry, error) {
	const attempts = 20

	for i := 0; i < attempts; i++ {
		asset, err := c.getAsset(ctx, id)
		if err != nil {
			return nil, err
		}
		if assetFileURL(asset) != "" {
			return asset, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(500 * time.Millisecond):
		}
	}

	return nil, fmt.Errorf("asset %s not processed in time", id)
}

// PublishAsset publishes a processed asset
func (c *ManagementClient) PublishAsset(ctx context.Context, id string, version int) (*Entry, error) {
	headers := versionHeader(version)
	var asset Entry
	if err := c.doJSON(ctx, http.MethodPut, c.baseURL+"/assets/"+id+"/published", nil, headers, &asset); err != nil {
		return nil, fmt.Errorf("publish asset %s: %w", id, err)
	}
	return &asset, nil
}

func (c *ManagementClient) getAsset(ctx context.Context, id string) (*Entry, error) {
	var asset Entry
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL+"/assets/"+id, nil, nil, &asset); err != nil {
		return nil, fmt.Errorf("get asset %s: %w", id, err)
	}
	return &asset, nil
}

// assetFileURL digs the processed file URL out of a management asset
func assetFileURL(asset *Entry) string {
	file, ok := asset.Fields["file"].(map[string]interface{})
	if !ok {
		return ""
	}
	localized, ok := file[Locale].(map[string]interface{})
	if !ok {
		return ""
	}
	url, _ := localized["url"].(string)
	return url
}

func versionHeader(version int) map[string]string {
	return map[string]string{"X-Contentful-Version": strconv.Itoa(version)}
}

// doJSON performs a management API call with JSON in and out. A nil out
// discards the response body (some calls answer 204).
func (c *ManagementClient) doJSON(ctx context.Context, method, url string, payload interface{}, headers map[string]string, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/vnd.contentful.management.v1+json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error().
			Int("status", resp.StatusCode).
			Str("method", method).
			Str("url", url).
			Str("body", string(respBody)).
			Msg("management API call failed")
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out != nil && len(respBody) > 0 {
		return json.Unmarshal(respBody, out)
	}
	return nil
}
