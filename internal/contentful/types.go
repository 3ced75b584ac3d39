package contentful

import (
	"errors"
	"fmt"
)

// Locale all entries are written under a single locale
const Locale = "en-US"

// Sys store-assigned metadata of an entry or asset
type Sys struct {
	ID               string `json:"id"`
	Type             string `json:"type,omitempty"`
	Version          int    `json:"version,omitempty"`
	PublishedVersion int    `json:"publishedVersion,omitempty"`
}

// Entry is one raw record (entry or asset) from the store. The store
// enforces no schema at this layer, so Fields stays a loose map and the
// mapper package does all the typing.
type Entry struct {
	Sys    Sys                    `json:"sys"`
	Fields map[string]interface{} `json:"fields"`
}

// IsPublished reports whether the entry has a published version
func (e *Entry) IsPublished() bool {
	return e.Sys.PublishedVersion > 0
}

// EntryCollection is the delivery API response for an entries query
type EntryCollection struct {
	Total    int      `json:"total"`
	Skip     int      `json:"skip"`
	Limit    int      `json:"limit"`
	Items    []Entry  `json:"items"`
	Includes Includes `json:"includes"`
}

// Includes carries linked resources resolved alongside the items
type Includes struct {
	Asset []Entry `json:"Asset"`
	Entry []Entry `json:"Entry"`
}

// Query parameterizes a delivery API entries request
type Query struct {
	ContentType string
	// Order fields, ascending by default, "-field" for descending
	Order []string
	Limit int
	// Include linked-asset resolution depth
	Include int
	// Fields field-equality filters, e.g. "fields.slug" -> "mein-artikel"
	Fields map[string]string
}

// ErrInvalidQuery is returned for status-400 responses. The store answers
// 400 when the content type does not exist, which callers probing legacy
// type names treat as "skip this name".
var ErrInvalidQuery = errors.New("invalid query")

// APIError is a non-2xx response from the store, with the remote payload
// kept for diagnosing credential/space/permission problems.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("contentful: status %d: %s", e.StatusCode, e.Body)
}

// Localized wraps a field value in the single-locale map shape the
// management API expects.
func Localized(v interface{}) map[string]interface{} {
	return map[string]interface{}{Locale: v}
}
