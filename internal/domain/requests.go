package domain

// CreateNewsRequest body of POST /api/admin/news
type CreateNewsRequest struct {
	Title    string `json:"title" binding:"required"`
	Slug     string `json:"slug" binding:"required"`
	Excerpt  string `json:"excerpt" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category"`
}

// CreateNewsResult outcome of a news creation, including the
// informational deploy status (a failed deploy is not an error).
type CreateNewsResult struct {
	ID     string `json:"id"`
	Deploy string `json:"deploy"`
}

// DeleteResult outcome of an entry deletion
type DeleteResult struct {
	Deploy string `json:"deploy"`
}

// GalleryUpload describes one admin gallery upload after the multipart
// form has been read.
type GalleryUpload struct {
	Title       string
	Category    string
	FileName    string
	ContentType string
	Data        []byte
}

// AdminNewsItem compact news row for the admin panel listing
type AdminNewsItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Excerpt  string `json:"excerpt"`
	Date     string `json:"date"`
	Category string `json:"category,omitempty"`
	Image    *Image `json:"image,omitempty"`
}
