package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/thesolution-at/alz-backend/internal/config"
	"github.com/thesolution-at/alz-backend/internal/contentful"
	"github.com/thesolution-at/alz-backend/internal/domain"
	"github.com/thesolution-at/alz-backend/internal/mapper"
	"github.com/thesolution-at/alz-backend/pkg/cache"
	"github.com/thesolution-at/alz-backend/pkg/logger"
)

// Content type names in the remote store. The gallery lives in three
// types (general, per-event, and a legacy one kept for old entries) and
// job postings were renamed twice, so those are probed as lists.
const (
	newsContentType = "newsArtikel"
	teamContentType = "teamMitglied"
)

var (
	galleryContentTypes = []string{"galerie", "veranstaltungsGalerie", "galerieBild"}
	jobContentTypes     = []string{"jobAusschreibung", "stellenanzeige", "jobListing"}
)

const (
	defaultNewsLimit   = 10
	defaultLatestCount = 3
)

// ContentService is the typed read facade over the remote content
// store. No method ever returns an error to the caller: failures
// degrade per the fallback policy (diagnostic records for news, empty
// collections or nil elsewhere) and are logged here.
type ContentService interface {
	GetNews(ctx context.Context, limit int, category string) []domain.NewsArticle
	GetLatestNews(ctx context.Context, count int) []domain.NewsArticle
	GetNewsBySlug(ctx context.Context, slug string) *domain.NewsArticle
	GetTeamMembers(ctx context.Context) []domain.TeamMember
	GetTeamMemberByID(ctx context.Context, id string) *domain.TeamMember
	GetGalleryImagesByCategory(ctx context.Context, category string, limit int) []domain.GalleryImage
	GetJobListings(ctx context.Context) []domain.JobEntry
	GetJobByID(ctx context.Context, id string) *domain.JobEntry
}

type contentService struct {
	store contentful.Reader
	cache cache.Service
	cfg   *config.Config
	log   zerolog.Logger
}

// NewContentService creates a ContentService
func NewContentService(store contentful.Reader, cacheSvc cache.Service, cfg *config.Config) ContentService {
	return &contentService{
		store: store,
		cache: cacheSvc,
		cfg:   cfg,
		log:   logger.WithComponent("content"),
	}
}

// GetNews returns news sorted by date descending, optionally filtered
// by category. Configuration and transport problems surface as a single
// synthetic article so the rendered page shows an operator-visible
// diagnostic instead of silently looking empty.
func (s *contentService) GetNews(ctx context.Context, limit int, category string) []domain.NewsArticle {
	if limit <= 0 {
		limit = defaultNewsLimit
	}
	if !s.cfg.Contentful.Configured() {
		return []domain.NewsArticle{envErrorArticle()}
	}

	cacheKey := fmt.Sprintf("%s%d:%s", cache.PrefixNews, limit, category)
	var cached []domain.NewsArticle
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return cached
	}

	query := contentful.Query{
		ContentType: newsContentType,
		Order:       []string{"-fields.datum"},
		Limit:       limit,
	}
	if category != "" {
		query.Fields = map[string]string{"fields.kategorie": category}
	}

	collection, err := s.store.GetEntries(ctx, query)
	if err != nil {
		s.log.Error().Err(err).Msg("error fetching news")
		return []domain.NewsArticle{connectionErrorArticle(err)}
	}

	articles := mapNewsItems(collection.Items)
	s.cacheSet(ctx, cacheKey, articles, cache.TTLNews)
	return articles
}

// GetLatestNews returns the newest articles for the home page
func (s *contentService) GetLatestNews(ctx context.Context, count int) []domain.NewsArticle {
	if count <= 0 {
		count = defaultLatestCount
	}
	return s.GetNews(ctx, count, "")
}

// GetNewsBySlug returns at most one article, nil on any failure
func (s *contentService) GetNewsBySlug(ctx context.Context, slug string) *domain.NewsArticle {
	if !s.cfg.Contentful.Configured() {
		return nil
	}

	collection, err := s.store.GetEntries(ctx, contentful.Query{
		ContentType: newsContentType,
		Limit:       1,
		Fields:      map[string]string{"fields.slug": slug},
	})
	if err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("error fetching news by slug")
		return nil
	}
	if len(collection.Items) == 0 {
		return nil
	}

	return mapper.MapNewsEntry(collection.Items[0])
}

// GetTeamMembers returns all team members sorted by their explicit
// order; members without one come last, ties break by name.
func (s *contentService) GetTeamMembers(ctx context.Context) []domain.TeamMember {
	if !s.cfg.Contentful.Configured() {
		return []domain.TeamMember{}
	}

	cacheKey := cache.PrefixTeam + "all"
	var cached []domain.TeamMember
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return cached
	}

	collection, err := s.store.GetEntries(ctx, contentful.Query{
		ContentType: teamContentType,
		Limit:       50,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("error fetching team members")
		return []domain.TeamMember{}
	}

	members := make([]domain.TeamMember, 0, len(collection.Items))
	for _, entry := range collection.Items {
		if member := mapper.MapTeamEntry(entry); member != nil {
			members = append(members, *member)
		}
	}

	sortTeamMembers(members)
	s.cacheSet(ctx, cacheKey, members, cache.TTLTeam)
	return members
}

// GetTeamMemberByID returns one member, nil on any failure
func (s *contentService) GetTeamMemberByID(ctx context.Context, id string) *domain.TeamMember {
	if !s.cfg.Contentful.Configured() {
		return nil
	}

	collection, err := s.store.GetEntries(ctx, contentful.Query{
		ContentType: teamContentType,
		Limit:       1,
		Fields:      map[string]string{"sys.id": id},
	})
	if err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("error fetching team member")
		return nil
	}
	if len(collection.Items) == 0 {
		return nil
	}

	return mapper.MapTeamEntry(collection.Items[0])
}

// GetGalleryImagesByCategory aggregates images from all gallery content
// types, expanded into per-image records. The sources are queried
// concurrently and independently: one failing source only loses its own
// contribution. Category "all" (or empty) skips filtering.
func (s *contentService) GetGalleryImagesByCategory(ctx context.Context, category string, limit int) []domain.GalleryImage {
	if !s.cfg.Contentful.Configured() {
		return []domain.GalleryImage{}
	}

	cacheKey := fmt.Sprintf("%s%s:%d", cache.PrefixGallery, strings.ToLower(category), limit)
	var cached []domain.GalleryImage
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return cached
	}

	contributions := make([][]domain.GalleryImage, len(galleryContentTypes))
	var wg sync.WaitGroup
	for i, contentType := range galleryContentTypes {
		wg.Add(1)
		go func(i int, contentType string) {
			defer wg.Done()
			contributions[i] = s.fetchGallerySource(ctx, contentType)
		}(i, contentType)
	}
	wg.Wait()

	var images []domain.GalleryImage
	for _, contribution := range contributions {
		images = append(images, contribution...)
	}

	if category != "" && !strings.EqualFold(category, "all") {
		filtered := images[:0]
		for _, img := range images {
			if strings.EqualFold(img.Category, category) {
				filtered = append(filtered, img)
			}
		}
		images = filtered
	}

	sort.SliceStable(images, func(i, j int) bool {
		return images[i].Order < images[j].Order
	})

	if limit > 0 && len(images) > limit {
		images = images[:limit]
	}
	if images == nil {
		images = []domain.GalleryImage{}
	}

	s.cacheSet(ctx, cacheKey, images, cache.TTLGallery)
	return images
}

// fetchGallerySource queries one gallery content type; failures degrade
// to an empty contribution from that source only.
func (s *contentService) fetchGallerySource(ctx context.Context, contentType string) []domain.GalleryImage {
	collection, err := s.store.GetEntries(ctx, contentful.Query{
		ContentType: contentType,
		Limit:       100,
	})
	if err != nil {
		if errors.Is(err, contentful.ErrInvalidQuery) {
			// content type not present in this space
			s.log.Debug().Str("content_type", contentType).Msg("gallery source not available")
		} else {
			s.log.Error().Err(err).Str("content_type", contentType).Msg("error fetching gallery source")
		}
		return nil
	}

	var images []domain.GalleryImage
	for _, entry := range collection.Items {
		images = append(images, mapper.ExpandGalleryEntry(entry)...)
	}
	return images
}

// GetJobListings probes the historical job content-type names, keeps
// everything that is active and sorts newest first.
func (s *contentService) GetJobListings(ctx context.Context) []domain.JobEntry {
	if !s.cfg.Contentful.Configured() {
		return []domain.JobEntry{}
	}

	cacheKey := cache.PrefixJobs + "all"
	var cached []domain.JobEntry
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return cached
	}

	jobs := []domain.JobEntry{}
	for _, contentType := range jobContentTypes {
		collection, err := s.store.GetEntries(ctx, contentful.Query{
			ContentType: contentType,
			Limit:       50,
		})
		if err != nil {
			if errors.Is(err, contentful.ErrInvalidQuery) {
				// renamed away at some point, skip silently
				continue
			}
			s.log.Error().Err(err).Str("content_type", contentType).Msg("error fetching job listings")
			continue
		}

		for _, entry := range collection.Items {
			if job := mapper.MapJobEntry(entry); job != nil && job.IsActive {
				jobs = append(jobs, *job)
			}
		}
	}

	// newest first; undated entries keep their relative position
	sort.SliceStable(jobs, func(i, j int) bool {
		if jobs[i].PostedDate == "" || jobs[j].PostedDate == "" {
			return false
		}
		return jobs[i].PostedDate > jobs[j].PostedDate
	})

	s.cacheSet(ctx, cacheKey, jobs, cache.TTLJobs)
	return jobs
}

// GetJobByID returns one job posting, nil on any failure
func (s *contentService) GetJobByID(ctx context.Context, id string) *domain.JobEntry {
	if !s.cfg.Contentful.Configured() {
		return nil
	}

	collection, err := s.store.GetEntries(ctx, contentful.Query{
		Limit:  1,
		Fields: map[string]string{"sys.id": id},
	})
	if err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("error fetching job")
		return nil
	}
	if len(collection.Items) == 0 {
		return nil
	}

	return mapper.MapJobEntry(collection.Items[0])
}

func (s *contentService) cacheSet(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if err := s.cache.Set(ctx, key, value, ttl); err != nil {
		s.log.Debug().Err(err).Str("key", key).Msg("cache set failed")
	}
}

func mapNewsItems(items []contentful.Entry) []domain.NewsArticle {
	articles := make([]domain.NewsArticle, 0, len(items))
	for _, entry := range items {
		if article := mapper.MapNewsEntry(entry); article != nil {
			articles = append(articles, *article)
		}
	}
	return articles
}

func sortTeamMembers(members []domain.TeamMember) {
	sort.SliceStable(members, func(i, j int) bool {
		iOrder, jOrder := teamOrder(members[i]), teamOrder(members[j])
		if iOrder != jOrder {
			return iOrder < jOrder
		}
		// ties break case-insensitively so "alice" sorts before "Bob"
		return strings.ToLower(members[i].Name) < strings.ToLower(members[j].Name)
	})
}

func teamOrder(m domain.TeamMember) float64 {
	if m.Order == nil {
		// missing order sorts last
		return math.MaxFloat64
	}
	return *m.Order
}

// envErrorArticle is the synthetic record shown when the store
// credentials are missing. It is deliberately rendered as an
// article-like card so operators see the problem on the page itself.
func envErrorArticle() domain.NewsArticle {
	return domain.NewsArticle{
		ID:       "env-error",
		Title:    "⚠️ Contentful ist nicht konfiguriert",
		Slug:     "env-error",
		Excerpt:  "CONTENTFUL_SPACE_ID oder CONTENTFUL_ACCESS_TOKEN fehlt. Bitte die Umgebungsvariablen im Hosting-Dashboard setzen.",
		Date:     time.Now().Format(time.RFC3339),
		Category: "System",
	}
}

// connectionErrorArticle is the synthetic record for request-time
// transport failures, carrying the error message for diagnosis.
func connectionErrorArticle(err error) domain.NewsArticle {
	return domain.NewsArticle{
		ID:       "connection-error",
		Title:    "⚠️ Verbindung zu Contentful fehlgeschlagen",
		Slug:     "connection-error",
		Excerpt:  err.Error(),
		Date:     time.Now().Format(time.RFC3339),
		Category: "System",
	}
}
