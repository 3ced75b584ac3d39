package mapper

// Field aliases per entity, in resolution order. The content model was
// renamed a few times over the product's history (German field ids came
// first, English ones later on some types), so every mapper tries the
// historical names in order and takes the first present value.
// Adding a new alias is a one-line change here.
var aliases = map[string]map[string][]string{
	"news": {
		"title":    {"titel", "title"},
		"slug":     {"slug"},
		"excerpt":  {"vorschautext", "excerpt"},
		"date":     {"datum", "publishDate", "date"},
		"content":  {"inhalt", "content"},
		"category": {"kategorie", "category"},
		"image":    {"titelbild", "coverImage"},
	},
	"team": {
		"name":  {"name", "titel", "vorname", "fullName"},
		"role":  {"funktion", "role", "rolle", "position"},
		"bio":   {"bio", "beschreibung", "text"},
		"order": {"order", "reihenfolge"},
		"photo": {"photo", "foto", "bild"},
	},
	"gallery": {
		"title":    {"titel", "title"},
		"images":   {"bild", "bilder"},
		"category": {"kategorie", "category"},
		"order":    {"reihenfolge", "order"},
	},
	"job": {
		"title":            {"titel", "title"},
		"department":       {"abteilung", "department"},
		"location":         {"standort", "location"},
		"type":             {"anstellungsart", "type"},
		"shortDescription": {"kurzbeschreibung"},
		"description":      {"beschreibung", "description"},
		"requirements":     {"anforderungen", "requirements"},
		"benefits":         {"benefits", "vorteile"},
		"contactEmail":     {"kontaktEmail", "email"},
		"postedDate":       {"datum", "postedDate"},
		"active":           {"aktiv", "isActive"},
	},
}

func fieldAliases(entity, field string) []string {
	return aliases[entity][field]
}
