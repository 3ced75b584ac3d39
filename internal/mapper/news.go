package mapper

import (
	"github.com/thesolution-at/alz-backend/internal/contentful"
	"github.com/thesolution-at/alz-backend/internal/domain"
)

// MapNewsEntry converts one raw entry into a NewsArticle. It returns nil
// when title, slug or date is missing; callers must filter nil results
// so a partial record never reaches a page.
func MapNewsEntry(entry contentful.Entry) *domain.NewsArticle {
	fields := entry.Fields

	title := stringField(fields, fieldAliases("news", "title")...)
	slug := stringField(fields, fieldAliases("news", "slug")...)
	date := stringField(fields, fieldAliases("news", "date")...)

	if title == "" || slug == "" || date == "" {
		return nil
	}

	content, rich := decodeText(anyField(fields, fieldAliases("news", "content")...))

	return &domain.NewsArticle{
		ID:              entry.Sys.ID,
		Title:           title,
		Slug:            slug,
		Excerpt:         stringField(fields, fieldAliases("news", "excerpt")...),
		Date:            date,
		Content:         content,
		ContentRichText: rich,
		Category:        stringField(fields, fieldAliases("news", "category")...),
		Image:           imageField(fields, fieldAliases("news", "image")...),
	}
}

// MapAdminNewsItem converts a raw entry into the compact admin row.
// The admin panel shows drafts-in-progress too, so only the title is
// required here.
func MapAdminNewsItem(entry contentful.Entry) *domain.AdminNewsItem {
	fields := entry.Fields

	title := stringField(fields, fieldAliases("news", "title")...)
	if title == "" {
		return nil
	}

	return &domain.AdminNewsItem{
		ID:       entry.Sys.ID,
		Title:    title,
		Slug:     stringField(fields, fieldAliases("news", "slug")...),
		Excerpt:  stringField(fields, fieldAliases("news", "excerpt")...),
		Date:     stringField(fields, fieldAliases("news", "date")...),
		Category: stringField(fields, fieldAliases("news", "category")...),
		Image:    imageField(fields, fieldAliases("news", "image")...),
	}
}
