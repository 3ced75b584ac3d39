package mapper

import (
	"github.com/thesolution-at/alz-backend/internal/contentful"
	"github.com/thesolution-at/alz-backend/internal/domain"
)

// MapTeamEntry converts one raw entry into a TeamMember, or nil when
// name or role is missing.
func MapTeamEntry(entry contentful.Entry) *domain.TeamMember {
	fields := entry.Fields

	name := stringField(fields, fieldAliases("team", "name")...)
	role := stringField(fields, fieldAliases("team", "role")...)
	if name == "" || role == "" {
		return nil
	}

	// bio may arrive as a rich document on newer schema revisions
	bio, _ := decodeText(anyField(fields, fieldAliases("team", "bio")...))

	member := &domain.TeamMember{
		ID:    entry.Sys.ID,
		Name:  name,
		Role:  role,
		Bio:   bio,
		Photo: imageField(fields, fieldAliases("team", "photo")...),
	}

	if order, ok := numberField(fields, fieldAliases("team", "order")...); ok {
		member.Order = &order
	}

	return member
}
