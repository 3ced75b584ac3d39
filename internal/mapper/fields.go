package mapper

import (
	"strings"

	"github.com/thesolution-at/alz-backend/internal/domain"
)

// anyField returns the first present, non-nil value among the alias names
func anyField(fields map[string]interface{}, names ...string) interface{} {
	for _, name := range names {
		if v, ok := fields[name]; ok && v != nil {
			return v
		}
	}
	return nil
}

// stringField returns the first non-empty string among the alias names
func stringField(fields map[string]interface{}, names ...string) string {
	for _, name := range names {
		if s, ok := fields[name].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// numberField returns the first numeric value among the alias names.
// Anything that is not a JSON number counts as "no explicit value", not
// as zero, so entries without the field sort after those with one.
func numberField(fields map[string]interface{}, names ...string) (float64, bool) {
	for _, name := range names {
		if n, ok := fields[name].(float64); ok {
			return n, true
		}
	}
	return 0, false
}

// boolField treats explicit false and the string "false" as false;
// everything else (including a missing field) yields the default.
func boolField(fields map[string]interface{}, def bool, names ...string) bool {
	for _, name := range names {
		switch v := fields[name].(type) {
		case bool:
			return v
		case string:
			if v == "false" {
				return false
			}
		}
	}
	return def
}

// stringListField collects the string elements of the first list value
func stringListField(fields map[string]interface{}, names ...string) []string {
	for _, name := range names {
		list, ok := fields[name].([]interface{})
		if !ok {
			continue
		}
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// imageField resolves the first linked asset among the alias names into
// an Image, or nil when no asset with a file is present.
func imageField(fields map[string]interface{}, names ...string) *domain.Image {
	return assetImage(anyField(fields, names...))
}

// assetImage digs the file URL and dimensions out of a resolved asset
func assetImage(v interface{}) *domain.Image {
	asset, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	assetFields, ok := asset["fields"].(map[string]interface{})
	if !ok {
		return nil
	}
	file, ok := assetFields["file"].(map[string]interface{})
	if !ok {
		return nil
	}
	url, _ := file["url"].(string)
	if url == "" {
		return nil
	}

	img := &domain.Image{URL: absoluteURL(url)}
	if details, ok := file["details"].(map[string]interface{}); ok {
		if dims, ok := details["image"].(map[string]interface{}); ok {
			if w, ok := dims["width"].(float64); ok {
				img.Width = int(w)
			}
			if h, ok := dims["height"].(float64); ok {
				img.Height = int(h)
			}
		}
	}
	return img
}

// assetTitle returns the title field of a resolved asset, for alt texts
func assetTitle(v interface{}) string {
	asset, ok := v.(map[string]interface{})
	if !ok {
		return ""
	}
	assetFields, ok := asset["fields"].(map[string]interface{})
	if !ok {
		return ""
	}
	title, _ := assetFields["title"].(string)
	return title
}

// absoluteURL normalizes the store's protocol-relative URLs to https
func absoluteURL(url string) string {
	if strings.HasPrefix(url, "http") {
		return url
	}
	return "https:" + url
}
