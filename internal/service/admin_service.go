package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/thesolution-at/alz-backend/internal/common"
	"github.com/thesolution-at/alz-backend/internal/config"
	"github.com/thesolution-at/alz-backend/internal/contentful"
	"github.com/thesolution-at/alz-backend/internal/deploy"
	"github.com/thesolution-at/alz-backend/internal/domain"
	"github.com/thesolution-at/alz-backend/internal/mapper"
	"github.com/thesolution-at/alz-backend/internal/notify"
	"github.com/thesolution-at/alz-backend/pkg/cache"
	"github.com/thesolution-at/alz-backend/pkg/logger"
)

const galleryWriteContentType = "galerie"

// AdminService is the authenticated write facade over the store's
// management API, used only by the admin panel.
type AdminService interface {
	ListNews(ctx context.Context) ([]domain.AdminNewsItem, error)
	CreateNews(ctx context.Context, req *domain.CreateNewsRequest) (*domain.CreateNewsResult, error)
	DeleteNews(ctx context.Context, id string) (*domain.DeleteResult, error)

	ListGallery(ctx context.Context) ([]domain.GalleryImage, error)
	UploadGalleryImage(ctx context.Context, upload *domain.GalleryUpload) (string, error)
	DeleteGalleryEntry(ctx context.Context, id string) (*domain.DeleteResult, error)
}

type adminService struct {
	store    contentful.Reader
	manager  contentful.Manager
	cache    cache.Service
	notifier notify.Notifier
	deployer deploy.Trigger
	cfg      *config.Config
	log      zerolog.Logger
}

// NewAdminService creates an AdminService
func NewAdminService(
	store contentful.Reader,
	manager contentful.Manager,
	cacheSvc cache.Service,
	notifier notify.Notifier,
	deployer deploy.Trigger,
	cfg *config.Config,
) AdminService {
	return &adminService{
		store:    store,
		manager:  manager,
		cache:    cacheSvc,
		notifier: notifier,
		deployer: deployer,
		cfg:      cfg,
		log:      logger.WithComponent("admin"),
	}
}

// ListNews returns the compact news listing for the panel
func (s *adminService) ListNews(ctx context.Context) ([]domain.AdminNewsItem, error) {
	if !s.cfg.Contentful.Configured() {
		return nil, common.ErrNotConfigured
	}

	collection, err := s.store.GetEntries(ctx, contentful.Query{
		ContentType: newsContentType,
		Order:       []string{"-fields.datum"},
		Limit:       50,
	})
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}

	items := make([]domain.AdminNewsItem, 0, len(collection.Items))
	for _, entry := range collection.Items {
		if item := mapper.MapAdminNewsItem(entry); item != nil {
			items = append(items, *item)
		}
	}
	return items, nil
}

// CreateNews validates the request, enforces slug uniqueness, creates
// and publishes the entry, then fires the best-effort side effects.
func (s *adminService) CreateNews(ctx context.Context, req *domain.CreateNewsRequest) (*domain.CreateNewsResult, error) {
	if !s.cfg.Contentful.ManagementConfigured() {
		return nil, common.ErrNotConfigured
	}

	// slug uniqueness is enforced by a pre-check query: the store
	// itself has no unique constraint on the field
	existing, err := s.store.GetEntries(ctx, contentful.Query{
		ContentType: newsContentType,
		Limit:       1,
		Fields:      map[string]string{"fields.slug": req.Slug},
	})
	if err != nil {
		return nil, fmt.Errorf("slug pre-check: %w", err)
	}
	if len(existing.Items) > 0 {
		return nil, common.ErrDuplicateSlug
	}

	fields := map[string]interface{}{
		"titel":        contentful.Localized(req.Title),
		"slug":         contentful.Localized(req.Slug),
		"vorschautext": contentful.Localized(req.Excerpt),
		"inhalt":       contentful.Localized(paragraphDocument(req.Content)),
		"datum":        contentful.Localized(time.Now().Format(time.RFC3339)),
	}
	if req.Category != "" {
		fields["kategorie"] = contentful.Localized(req.Category)
	}

	entry, err := s.manager.CreateEntry(ctx, newsContentType, fields)
	if err != nil {
		return nil, fmt.Errorf("create news: %w", err)
	}

	if _, err := s.manager.PublishEntry(ctx, entry.Sys.ID, entry.Sys.Version); err != nil {
		return nil, fmt.Errorf("publish news %s: %w", entry.Sys.ID, err)
	}

	s.invalidate(ctx, cache.PrefixNews)
	s.notifyNewsPublished(req)
	deployResult := s.deployer.Trigger(ctx)

	s.log.Info().Str("id", entry.Sys.ID).Str("slug", req.Slug).Msg("news created")
	return &domain.CreateNewsResult{
		ID:     entry.Sys.ID,
		Deploy: deployStatus(deployResult),
	}, nil
}

// DeleteNews unpublishes (when published) and deletes one news entry
func (s *adminService) DeleteNews(ctx context.Context, id string) (*domain.DeleteResult, error) {
	if err := s.deleteEntry(ctx, id); err != nil {
		return nil, err
	}

	s.invalidate(ctx, cache.PrefixNews)
	deployResult := s.deployer.Trigger(ctx)

	s.log.Info().Str("id", id).Msg("news deleted")
	return &domain.DeleteResult{Deploy: deployStatus(deployResult)}, nil
}

// ListGallery returns one row per gallery entry for the panel
func (s *adminService) ListGallery(ctx context.Context) ([]domain.GalleryImage, error) {
	if !s.cfg.Contentful.Configured() {
		return nil, common.ErrNotConfigured
	}

	collection, err := s.store.GetEntries(ctx, contentful.Query{
		ContentType: galleryWriteContentType,
		Order:       []string{"fields.reihenfolge"},
		Limit:       100,
	})
	if err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}

	rows := make([]domain.GalleryImage, 0, len(collection.Items))
	for _, entry := range collection.Items {
		if row := mapper.MapGalleryAdminEntry(entry); row != nil {
			rows = append(rows, *row)
		}
	}
	return rows, nil
}

// UploadGalleryImage runs the full asset pipeline: upload, asset
// creation, processing, publish, then a linking gallery entry. A
// failure after the upload leaves an orphaned unpublished asset in the
// store; that is accepted and logged, there is no compensating rollback.
func (s *adminService) UploadGalleryImage(ctx context.Context, upload *domain.GalleryUpload) (string, error) {
	if !s.cfg.Contentful.ManagementConfigured() {
		return "", common.ErrNotConfigured
	}
	if upload.Title == "" || len(upload.Data) == 0 {
		return "", fmt.Errorf("%w: title and file are required", common.ErrInvalidInput)
	}
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return "", fmt.Errorf("%w: only images are allowed", common.ErrInvalidInput)
	}
	if int64(len(upload.Data)) > s.cfg.Upload.MaxBytes {
		return "", fmt.Errorf("%w: file exceeds %d bytes", common.ErrInvalidInput, s.cfg.Upload.MaxBytes)
	}

	category := upload.Category
	if category == "" {
		category = "Allgemein"
	}

	uploadID, err := s.manager.CreateUpload(ctx, upload.Data)
	if err != nil {
		return "", fmt.Errorf("upload file: %w", err)
	}

	asset, err := s.manager.CreateAsset(ctx, upload.Title, upload.FileName, upload.ContentType, uploadID)
	if err != nil {
		return "", fmt.Errorf("create asset: %w", err)
	}

	if err := s.manager.ProcessAsset(ctx, asset.Sys.ID, asset.Sys.Version); err != nil {
		s.log.Error().Err(err).Str("asset", asset.Sys.ID).Msg("asset left unprocessed")
		return "", err
	}

	processed, err := s.manager.WaitForAssetProcessing(ctx, asset.Sys.ID)
	if err != nil {
		s.log.Error().Err(err).Str("asset", asset.Sys.ID).Msg("asset left unpublished")
		return "", err
	}

	published, err := s.manager.PublishAsset(ctx, processed.Sys.ID, processed.Sys.Version)
	if err != nil {
		s.log.Error().Err(err).Str("asset", asset.Sys.ID).Msg("asset left unpublished")
		return "", err
	}

	entry, err := s.manager.CreateEntry(ctx, galleryWriteContentType, map[string]interface{}{
		"titel":     contentful.Localized(upload.Title),
		"kategorie": contentful.Localized(category),
		// upload time as order keeps new images at the end
		"reihenfolge": contentful.Localized(time.Now().UnixMilli()),
		"bild": contentful.Localized([]interface{}{
			map[string]interface{}{
				"sys": map[string]interface{}{
					"type":     "Link",
					"linkType": "Asset",
					"id":       published.Sys.ID,
				},
			},
		}),
	})
	if err != nil {
		s.log.Error().Err(err).Str("asset", published.Sys.ID).Msg("published asset left unlinked")
		return "", fmt.Errorf("create gallery entry: %w", err)
	}

	if _, err := s.manager.PublishEntry(ctx, entry.Sys.ID, entry.Sys.Version); err != nil {
		return "", fmt.Errorf("publish gallery entry %s: %w", entry.Sys.ID, err)
	}

	s.invalidate(ctx, cache.PrefixGallery)

	s.log.Info().Str("id", entry.Sys.ID).Str("title", upload.Title).Msg("gallery image uploaded")
	return entry.Sys.ID, nil
}

// DeleteGalleryEntry unpublishes and deletes one gallery entry
func (s *adminService) DeleteGalleryEntry(ctx context.Context, id string) (*domain.DeleteResult, error) {
	if err := s.deleteEntry(ctx, id); err != nil {
		return nil, err
	}

	s.invalidate(ctx, cache.PrefixGallery)
	deployResult := s.deployer.Trigger(ctx)

	s.log.Info().Str("id", id).Msg("gallery entry deleted")
	return &domain.DeleteResult{Deploy: deployStatus(deployResult)}, nil
}

// deleteEntry implements the unpublish-then-delete lifecycle
func (s *adminService) deleteEntry(ctx context.Context, id string) error {
	if !s.cfg.Contentful.ManagementConfigured() {
		return common.ErrNotConfigured
	}

	entry, err := s.manager.GetEntry(ctx, id)
	if err != nil {
		return err
	}

	version := entry.Sys.Version
	if entry.IsPublished() {
		unpublished, err := s.manager.UnpublishEntry(ctx, id, version)
		if err != nil {
			return err
		}
		version = unpublished.Sys.Version
	}

	return s.manager.DeleteEntry(ctx, id, version)
}

// notifyNewsPublished fires the Telegram notification as a detached
// task. The request context may be gone before the message is out, so
// the send runs under its own timeout.
func (s *adminService) notifyNewsPublished(req *domain.CreateNewsRequest) {
	message := notify.FormatNewsNotification(req.Title, req.Excerpt, "Admin-Panel")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		s.notifier.Send(ctx, message)
	}()
}

func (s *adminService) invalidate(ctx context.Context, prefix string) {
	if err := s.cache.DeleteByPrefix(ctx, prefix); err != nil {
		s.log.Debug().Err(err).Str("prefix", prefix).Msg("cache invalidation failed")
	}
}

func deployStatus(result deploy.Result) string {
	if result.Success {
		return "Deployment gestartet"
	}
	return "Deployment übersprungen"
}

// paragraphDocument wraps plain admin-panel text in the one-paragraph
// rich document shape the news content field expects.
func paragraphDocument(text string) map[string]interface{} {
	return map[string]interface{}{
		"nodeType": "document",
		"data":     map[string]interface{}{},
		"content": []interface{}{
			map[string]interface{}{
				"nodeType": "paragraph",
				"data":     map[string]interface{}{},
				"content": []interface{}{
					map[string]interface{}{
						"nodeType": "text",
						"value":    text,
						"marks":    []interface{}{},
						"data":     map[string]interface{}{},
					},
				},
			},
		},
	}
}
