package contentful

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/thesolution-at/alz-backend/internal/config"
	"github.com/thesolution-at/alz-backend/pkg/logger"
)

// Reader is the read-side store interface consumed by the query facade
type Reader interface {
	GetEntries(ctx context.Context, q Query) (*EntryCollection, error)
}

// Client talks to the delivery API of the remote content store
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	log        zerolog.Logger
}

// NewClient creates a delivery API client for one space and environment
func NewClient(cfg config.ContentfulConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL: fmt.Sprintf("https://%s/spaces/%s/environments/%s",
			cfg.DeliveryHost, cfg.SpaceID, cfg.Environment),
		token: cfg.AccessToken,
		log:   logger.WithComponent("contentful"),
	}
}

// GetEntries queries published entries and resolves linked assets from
// the includes section, so mappers always see resolved file fields.
func (c *Client) GetEntries(ctx context.Context, q Query) (*EntryCollection, error) {
	params := url.Values{}
	if q.ContentType != "" {
		params.Set("content_type", q.ContentType)
	}
	if len(q.Order) > 0 {
		params.Set("order", strings.Join(q.Order, ","))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	include := q.Include
	if include == 0 {
		include = 2
	}
	params.Set("include", strconv.Itoa(include))
	for field, value := range q.Fields {
		params.Set(field, value)
	}

	reqURL := c.baseURL + "/entries?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("contentful request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("contentful read response: %w", err)
	}

	if resp.StatusCode == http.StatusBadRequest {
		return nil, fmt.Errorf("%w: %s", ErrInvalidQuery, string(body))
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Error().
			Int("status", resp.StatusCode).
			Str("content_type", q.ContentType).
			Str("body", string(body)).
			Msg("entries query failed")
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var collection EntryCollection
	if err := json.Unmarshal(body, &collection); err != nil {
		return nil, fmt.Errorf("contentful decode response: %w", err)
	}

	resolveAssetLinks(&collection)
	return &collection, nil
}

// resolveAssetLinks replaces asset links inside entry fields with the
// full asset records from includes, mirroring what the hosted SDK does.
func resolveAssetLinks(collection *EntryCollection) {
	if len(collection.Includes.Asset) == 0 {
		return
	}

	assets := make(map[string]Entry, len(collection.Includes.Asset))
	for _, asset := range collection.Includes.Asset {
		assets[asset.Sys.ID] = asset
	}

	for i := range collection.Items {
		for key, value := range collection.Items[i].Fields {
			collection.Items[i].Fields[key] = resolveValue(value, assets)
		}
	}
}

func resolveValue(value interface{}, assets map[string]Entry) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		if id, ok := assetLinkID(v); ok {
			if asset, found := assets[id]; found {
				return map[string]interface{}{
					"sys":    map[string]interface{}{"id": asset.Sys.ID, "type": "Asset"},
					"fields": asset.Fields,
				}
			}
			// unresolvable link, drop it so mappers treat it as missing
			return nil
		}
		return v
	case []interface{}:
		resolved := make([]interface{}, 0, len(v))
		for _, item := range v {
			resolved = append(resolved, resolveValue(item, assets))
		}
		return resolved
	default:
		return value
	}
}

// assetLinkID extracts the target id when the value is an asset link
func assetLinkID(m map[string]interface{}) (string, bool) {
	sys, ok := m["sys"].(map[string]interface{})
	if !ok {
		return "", false
	}
	if sys["type"] != "Link" || sys["linkType"] != "Asset" {
		return "", false
	}
	id, ok := sys["id"].(string)
	return id, ok
}
