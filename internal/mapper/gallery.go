package mapper

import (
	"fmt"

	"github.com/thesolution-at/alz-backend/internal/contentful"
	"github.com/thesolution-at/alz-backend/internal/domain"
)

// ExpandGalleryEntry turns one entry with N attached images into N
// gallery records. Entries without a title or without a single
// resolvable image file yield nothing; unresolvable files inside an
// otherwise valid list are skipped individually.
//
// The computed order is entryOrder*100 + index: the entry-level manual
// ordering survives a global ascending sort and the images of one entry
// stay contiguous. This assumes no entry ever carries 100 or more
// images; see the expander tests where that constraint is pinned.
func ExpandGalleryEntry(entry contentful.Entry) []domain.GalleryImage {
	fields := entry.Fields

	title := stringField(fields, fieldAliases("gallery", "title")...)
	if title == "" {
		return nil
	}

	rawImages, ok := anyField(fields, fieldAliases("gallery", "images")...).([]interface{})
	if !ok || len(rawImages) == 0 {
		return nil
	}

	// keep only the list elements with a resolved file
	type resolvedImage struct {
		img *domain.Image
		alt string
	}
	resolved := make([]resolvedImage, 0, len(rawImages))
	for _, raw := range rawImages {
		if img := assetImage(raw); img != nil {
			resolved = append(resolved, resolvedImage{img: img, alt: assetTitle(raw)})
		}
	}
	if len(resolved) == 0 {
		return nil
	}

	category := stringField(fields, fieldAliases("gallery", "category")...)
	if category == "" {
		category = "Allgemein"
	}

	entryOrder, _ := numberField(fields, fieldAliases("gallery", "order")...)

	total := len(resolved)
	images := make([]domain.GalleryImage, 0, total)
	for index, item := range resolved {
		imageTitle := title
		if total > 1 {
			imageTitle = fmt.Sprintf("%s (%d/%d)", title, index+1, total)
		}

		alt := item.alt
		if alt == "" {
			alt = imageTitle
		}

		images = append(images, domain.GalleryImage{
			ID:          fmt.Sprintf("%s-%d", entry.Sys.ID, index),
			Title:       imageTitle,
			Src:         item.img.URL,
			Alt:         alt,
			Category:    category,
			Order:       entryOrder*100 + float64(index),
			EntryID:     entry.Sys.ID,
			ImageIndex:  index,
			TotalImages: total,
		})
	}

	return images
}

// MapGalleryAdminEntry maps one gallery entry to a single admin row
// showing its first image, mirroring the panel's flat listing.
func MapGalleryAdminEntry(entry contentful.Entry) *domain.GalleryImage {
	expanded := ExpandGalleryEntry(entry)
	if len(expanded) == 0 {
		return nil
	}

	row := expanded[0]
	// the panel lists one row per entry under the entry's own id
	row.ID = entry.Sys.ID
	row.Title = stringField(entry.Fields, fieldAliases("gallery", "title")...)
	return &row
}
