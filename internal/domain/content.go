package domain

// Image is a resolved linked asset (absolute URL plus pixel dimensions
// when the store reports them).
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// RichNode is one node of the store's rich-document tree.
// Leaf nodes of type "text" carry Value; containers carry Content.
type RichNode struct {
	NodeType string      `json:"nodeType"`
	Value    string      `json:"value,omitempty"`
	Content  []*RichNode `json:"content,omitempty"`
}

// NewsArticle is a published news entry. Title, Slug and Date are
// hard-required: an entry missing any of them never reaches a page.
type NewsArticle struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Excerpt  string `json:"excerpt"`
	Date     string `json:"date"`
	Content  string `json:"content,omitempty"`
	// ContentRichText keeps the original document tree for formatted
	// rendering; nil when the source field was a plain string.
	ContentRichText *RichNode `json:"contentRichText,omitempty"`
	Category        string    `json:"category,omitempty"`
	Image           *Image    `json:"image,omitempty"`
}

// TeamMember is one entry of the team page. Name and Role are required.
// Order is nil when the editor set no explicit position; nil sorts last.
type TeamMember struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Role  string   `json:"role"`
	Bio   string   `json:"bio,omitempty"`
	Order *float64 `json:"order,omitempty"`
	Photo *Image   `json:"photo,omitempty"`
}

// GalleryImage is one displayable image. Entries with several attached
// images are expanded into one GalleryImage per image; EntryID groups
// the siblings and ImageIndex/TotalImages drive "image i of n" in the
// lightbox.
type GalleryImage struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Src         string  `json:"src"`
	Alt         string  `json:"alt"`
	Category    string  `json:"category"`
	Order       float64 `json:"order"`
	EntryID     string  `json:"entryId"`
	ImageIndex  int     `json:"imageIndex"`
	TotalImages int     `json:"totalImages"`
}

// JobEntry is one job posting. Title is required; Location defaults to
// "Wien". Description holds plain text; DescriptionRichText is only set
// when the source was a rich document.
type JobEntry struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Department          string    `json:"department,omitempty"`
	Location            string    `json:"location"`
	Type                string    `json:"type,omitempty"`
	Description         string    `json:"description,omitempty"`
	DescriptionRichText *RichNode `json:"descriptionRichText,omitempty"`
	Requirements        []string  `json:"requirements"`
	Benefits            []string  `json:"benefits"`
	ContactEmail        string    `json:"contactEmail,omitempty"`
	PostedDate          string    `json:"postedDate,omitempty"`
	IsActive            bool      `json:"isActive"`
}
