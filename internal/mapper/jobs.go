package mapper

import (
	"github.com/thesolution-at/alz-backend/internal/contentful"
	"github.com/thesolution-at/alz-backend/internal/domain"
)

// MapJobEntry converts one raw entry into a JobEntry, or nil when the
// title is missing. The short plain description field wins over the
// long one; the rich-document tree of the long field is retained for
// formatted rendering either way.
func MapJobEntry(entry contentful.Entry) *domain.JobEntry {
	fields := entry.Fields

	title := stringField(fields, fieldAliases("job", "title")...)
	if title == "" {
		return nil
	}

	location := stringField(fields, fieldAliases("job", "location")...)
	if location == "" {
		location = "Wien"
	}

	longText, rich := decodeText(anyField(fields, fieldAliases("job", "description")...))
	description := stringField(fields, fieldAliases("job", "shortDescription")...)
	if description == "" {
		description = longText
	}

	requirements := stringListField(fields, fieldAliases("job", "requirements")...)
	if requirements == nil {
		requirements = []string{}
	}
	benefits := stringListField(fields, fieldAliases("job", "benefits")...)
	if benefits == nil {
		benefits = []string{}
	}

	return &domain.JobEntry{
		ID:                  entry.Sys.ID,
		Title:               title,
		Department:          stringField(fields, fieldAliases("job", "department")...),
		Location:            location,
		Type:                stringField(fields, fieldAliases("job", "type")...),
		Description:         description,
		DescriptionRichText: rich,
		Requirements:        requirements,
		Benefits:            benefits,
		ContactEmail:        stringField(fields, fieldAliases("job", "contactEmail")...),
		PostedDate:          stringField(fields, fieldAliases("job", "postedDate")...),
		IsActive:            boolField(fields, true, fieldAliases("job", "active")...),
	}
}
