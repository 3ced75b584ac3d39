package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/thesolution-at/alz-backend/internal/config"
	"github.com/thesolution-at/alz-backend/internal/contentful"
	"github.com/thesolution-at/alz-backend/pkg/cache"
	"github.com/thesolution-at/alz-backend/pkg/logger"
)

// --- Mock store ---

type mockStore struct {
	mock.Mock
}

func (m *mockStore) GetEntries(ctx context.Context, q contentful.Query) (*contentful.EntryCollection, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contentful.EntryCollection), args.Error(1)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Contentful.SpaceID = "space"
	cfg.Contentful.AccessToken = "token"
	return cfg
}

func newTestService(store contentful.Reader, cfg *config.Config) ContentService {
	logger.InitStructured("dev")
	return NewContentService(store, cache.NewService(nil), cfg)
}

func entriesOf(items ...contentful.Entry) *contentful.EntryCollection {
	return &contentful.EntryCollection{Total: len(items), Items: items}
}

func entry(id string, fields map[string]interface{}) contentful.Entry {
	return contentful.Entry{Sys: contentful.Sys{ID: id}, Fields: fields}
}

func forType(contentType string) interface{} {
	return mock.MatchedBy(func(q contentful.Query) bool {
		return q.ContentType == contentType
	})
}

// --- News ---

func TestGetNews_EnvError(t *testing.T) {
	store := new(mockStore)
	svc := newTestService(store, &config.Config{}) // no credentials

	news := svc.GetNews(context.Background(), 10, "")

	assert.Len(t, news, 1)
	assert.Equal(t, "env-error", news[0].ID)
	store.AssertNotCalled(t, "GetEntries")
}

func TestGetNews_PlaceholderCredentialsAreUnconfigured(t *testing.T) {
	store := new(mockStore)
	cfg := &config.Config{}
	cfg.Contentful.SpaceID = "TODO"
	cfg.Contentful.AccessToken = "TODO"
	svc := newTestService(store, cfg)

	news := svc.GetNews(context.Background(), 10, "")

	assert.Len(t, news, 1)
	assert.Equal(t, "env-error", news[0].ID)
}

func TestGetNews_ConnectionError(t *testing.T) {
	store := new(mockStore)
	store.On("GetEntries", mock.Anything, mock.Anything).
		Return(nil, errors.New("dial tcp: timeout"))
	svc := newTestService(store, testConfig())

	news := svc.GetNews(context.Background(), 10, "")

	assert.Len(t, news, 1)
	assert.Equal(t, "connection-error", news[0].ID)
	assert.Contains(t, news[0].Excerpt, "dial tcp")
}

func TestGetNews_FiltersInvalidRecords(t *testing.T) {
	store := new(mockStore)
	store.On("GetEntries", mock.Anything, forType("newsArtikel")).Return(entriesOf(
		entry("ok", map[string]interface{}{
			"titel": "Valid", "slug": "valid", "datum": "2025-05-01",
		}),
		entry("broken", map[string]interface{}{
			"titel": "No slug", "datum": "2025-05-01",
		}),
	), nil)
	svc := newTestService(store, testConfig())

	news := svc.GetNews(context.Background(), 10, "")

	assert.Len(t, news, 1)
	assert.Equal(t, "ok", news[0].ID)
	store.AssertExpectations(t)
}

func TestGetNews_CategoryFilterInQuery(t *testing.T) {
	store := new(mockStore)
	store.On("GetEntries", mock.Anything, mock.MatchedBy(func(q contentful.Query) bool {
		return q.Fields["fields.kategorie"] == "Schulleben" && q.Limit == 5
	})).Return(entriesOf(), nil)
	svc := newTestService(store, testConfig())

	news := svc.GetNews(context.Background(), 5, "Schulleben")

	assert.Empty(t, news)
	store.AssertExpectations(t)
}

func TestGetNewsBySlug(t *testing.T) {
	store := new(mockStore)
	store.On("GetEntries", mock.Anything, mock.MatchedBy(func(q contentful.Query) bool {
		return q.Fields["fields.slug"] == "sommerfest" && q.Limit == 1
	})).Return(entriesOf(
		entry("n1", map[string]interface{}{
			"titel": "Sommerfest", "slug": "sommerfest", "datum": "2025-06-01",
		}),
	), nil)
	svc := newTestService(store, testConfig())

	article := svc.GetNewsBySlug(context.Background(), "sommerfest")

	assert.NotNil(t, article)
	assert.Equal(t, "Sommerfest", article.Title)
}

func TestGetNewsBySlug_NilOnMissOrError(t *testing.T) {
	store := new(mockStore)
	store.On("GetEntries", mock.Anything, mock.Anything).Return(entriesOf(), nil).Once()
	svc := newTestService(store, testConfig())

	assert.Nil(t, svc.GetNewsBySlug(context.Background(), "nope"))

	store.On("GetEntries", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()
	assert.Nil(t, svc.GetNewsBySlug(context.Background(), "nope"))
}

// --- Team ---

func TestGetTeamMembers_Sorting(t *testing.T) {
	store := new(mockStore)
	store.On("GetEntries", mock.Anything, forType("teamMitglied")).Return(entriesOf(
		entry("m1", map[string]interface{}{"name": "Bob", "funktion": "Lehrer"}),
		entry("m2", map[string]interface{}{"name": "Zora", "funktion": "Lehrerin", "reihenfolge": float64(5)}),
		entry("m3", map[string]interface{}{"name": "alice", "funktion": "Lehrerin"}),
	), nil)
	svc := newTestService(store, testConfig())

	members := svc.GetTeamMembers(context.Background())

	assert.Len(t, members, 3)
	// explicit order sorts before missing order, regardless of name
	assert.Equal(t, "Zora", members[0].Name)
	// ties among missing-order members break case-insensitively
	assert.Equal(t, "alice", members[1].Name)
	assert.Equal(t, "Bob", members[2].Name)
}

func TestGetTeamMembers_EmptyWhenUnconfigured(t *testing.T) {
	store := new(mockStore)
	svc := newTestService(store, &config.Config{})

	members := svc.GetTeamMembers(context.Background())

	// secondary content degrades to an empty list, no diagnostic records
	assert.NotNil(t, members)
	assert.Empty(t, members)
}

func TestGetTeamMembers_EmptyOnError(t *testing.T) {
	store := new(mockStore)
	store.On("GetEntries", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
	svc := newTestService(store, testConfig())

	assert.Empty(t, svc.GetTeamMembers(context.Background()))
}

// --- Gallery ---

func galleryFixture(id, title string, order float64, urls ...string) contentful.Entry {
	images := make([]interface{}, 0, len(urls))
	for _, url := range urls {
		images = append(images, map[string]interface{}{
			"fields": map[string]interface{}{
				"file": map[string]interface{}{"url": url},
			},
		})
	}
	return entry(id, map[string]interface{}{
		"titel":       title,
		"reihenfolge": order,
		"bild":        images,
	})
}

func TestGetGalleryImagesByCategory_SourceFailureIsolated(t *testing.T) {
	store := new(mockStore)
	store.On("GetEntries", mock.Anything, forType("galerie")).
		Return(entriesOf(galleryFixture("g1", "Schulhof", 1, "//img/a.jpg")), nil)
	store.On("GetEntries", mock.Anything, forType("veranstaltungsGalerie")).
		Return(nil, errors.New("source down"))
	store.On("GetEntries", mock.Anything, forType("galerieBild")).
		Return(entriesOf(galleryFixture("g2", "Fest", 2, "//img/b.jpg")), nil)
	svc := newTestService(store, testConfig())

	images := svc.GetGalleryImagesByCategory(context.Background(), "all", 0)

	// the failing source loses only its own contribution
	assert.Len(t, images, 2)
	assert.Equal(t, "g1-0", images[0].ID)
	assert.Equal(t, "g2-0", images[1].ID)
}

func TestGetGalleryImagesByCategory_SortedByOrder(t *testing.T) {
	store := new(mockStore)
	store.On("GetEntries", mock.Anything, forType("galerie")).
		Return(entriesOf(galleryFixture("late", "Spät", 9, "//img/x.jpg")), nil)
	store.On("GetEntries", mock.Anything, forType("veranstaltungsGalerie")).
		Return(entriesOf(galleryFixture("early", "Früh", 1, "//img/y.jpg", "//img/z.jpg")), nil)
	store.On("GetEntries", mock.Anything, forType("galerieBild")).
		Return(entriesOf(), nil)
	svc := newTestService(store, testConfig())

	images := svc.GetGalleryImagesByCategory(context.Background(), "all", 0)

	assert.Len(t, images, 3)
	// entry order 1 (→ 100, 101) sorts before entry order 9 (→ 900)
	assert.Equal(t, []string{"early-0", "early-1", "late-0"},
		[]string{images[0].ID, images[1].ID, images[2].ID})
}

func TestGetGalleryImagesByCategory_CaseInsensitiveFilter(t *testing.T) {
	store := new(mockStore)
	withCategory := galleryFixture("g1", "Ausflug", 1, "//img/a.jpg")
	withCategory.Fields["kategorie"] = "Ausflüge"
	store.On("GetEntries", mock.Anything, forType("galerie")).
		Return(entriesOf(withCategory, galleryFixture("g2", "Anderes", 2, "//img/b.jpg")), nil)
	store.On("GetEntries", mock.Anything, forType("veranstaltungsGalerie")).
		Return(entriesOf(), nil)
	store.On("GetEntries", mock.Anything, forType("galerieBild")).
		Return(entriesOf(), nil)
	svc := newTestService(store, testConfig())

	images := svc.GetGalleryImagesByCategory(context.Background(), "ausflüge", 0)

	assert.Len(t, images, 1)
	assert.Equal(t, "g1-0", images[0].ID)
}

func TestGetGalleryImagesByCategory_Limit(t *testing.T) {
	store := new(mockStore)
	store.On("GetEntries", mock.Anything, forType("galerie")).
		Return(entriesOf(galleryFixture("g1", "Viele", 1, "//a", "//b", "//c")), nil)
	store.On("GetEntries", mock.Anything, forType("veranstaltungsGalerie")).
		Return(entriesOf(), nil)
	store.On("GetEntries", mock.Anything, forType("galerieBild")).
		Return(entriesOf(), nil)
	svc := newTestService(store, testConfig())

	images := svc.GetGalleryImagesByCategory(context.Background(), "all", 2)

	assert.Len(t, images, 2)
}

// --- Jobs ---

func TestGetJobListings_ActiveFilter(t *testing.T) {
	store := new(mockStore)
	store.On("GetEntries", mock.Anything, forType("jobAusschreibung")).Return(entriesOf(
		entry("j1", map[string]interface{}{"titel": "Aktiv", "datum": "2025-02-01"}),
		entry("j2", map[string]interface{}{"titel": "Inaktiv", "aktiv": false}),
		entry("j3", map[string]interface{}{"titel": "Neuer", "datum": "2025-03-01"}),
	), nil)
	store.On("GetEntries", mock.Anything, forType("stellenanzeige")).
		Return(nil, contentful.ErrInvalidQuery)
	store.On("GetEntries", mock.Anything, forType("jobListing")).
		Return(nil, contentful.ErrInvalidQuery)
	svc := newTestService(store, testConfig())

	jobs := svc.GetJobListings(context.Background())

	assert.Len(t, jobs, 2)
	// newest first
	assert.Equal(t, "Neuer", jobs[0].Title)
	assert.Equal(t, "Aktiv", jobs[1].Title)
}

func TestGetJobListings_AccumulatesAcrossTypeNames(t *testing.T) {
	store := new(mockStore)
	store.On("GetEntries", mock.Anything, forType("jobAusschreibung")).
		Return(entriesOf(entry("j1", map[string]interface{}{"titel": "Eins"})), nil)
	store.On("GetEntries", mock.Anything, forType("stellenanzeige")).
		Return(entriesOf(entry("j2", map[string]interface{}{"titel": "Zwei"})), nil)
	store.On("GetEntries", mock.Anything, forType("jobListing")).
		Return(nil, contentful.ErrInvalidQuery)
	svc := newTestService(store, testConfig())

	jobs := svc.GetJobListings(context.Background())

	assert.Len(t, jobs, 2)
}

func TestGetJobByID_NilOnFailure(t *testing.T) {
	store := new(mockStore)
	store.On("GetEntries", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
	svc := newTestService(store, testConfig())

	assert.Nil(t, svc.GetJobByID(context.Background(), "j1"))
}
