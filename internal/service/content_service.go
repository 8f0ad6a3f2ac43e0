package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mishasvintus/builder_site/internal/builder"
	"github.com/mishasvintus/builder_site/internal/domain"
	"github.com/mishasvintus/builder_site/internal/logger"
)

// contentRevalidate is the cache window requested for page bodies.
const contentRevalidate = 5 * time.Second

// ContentFetcher is the content API client.
type ContentFetcher interface {
	Get(ctx context.Context, model string, opts builder.GetOptions) (*domain.ContentRecord, error)
}

// ContentService resolves request paths to CMS content.
//
// Metadata lookups are best-effort and never fail; body lookups are strict
// and return every error to the caller.
type ContentService struct {
	fetcher ContentFetcher
	log     logger.Logger
}

// NewContentService creates a content service. A nil fetcher means no API key
// is configured and every lookup falls back without calling the API.
func NewContentService(fetcher ContentFetcher, log logger.Logger) *ContentService {
	return &ContentService{fetcher: fetcher, log: log}
}

// Configured reports whether a content API client is available.
func (s *ContentService) Configured() bool {
	return s.fetcher != nil
}

// ResolveMetadata returns the page title and description for the path.
// Any failure is logged and replaced by the default metadata.
func (s *ContentService) ResolveMetadata(ctx context.Context, segments []string) domain.PageMetadata {
	if s.fetcher == nil {
		return domain.DefaultPageMetadata()
	}

	urlPath := domain.LookupKey(segments)
	record, err := s.fetcher.Get(ctx, domain.PageModel, builder.GetOptions{
		URLPath:   urlPath,
		Prerender: false,
	})
	if err != nil {
		s.log.Error("Error fetching metadata",
			logger.String("model", domain.PageModel),
			logger.String("url_path", urlPath),
			logger.Error(err),
		)
		return domain.DefaultPageMetadata()
	}

	return domain.MetadataFromRecord(record)
}

// ResolveContent returns the content entry for the path, or nil when none
// matches.
func (s *ContentService) ResolveContent(ctx context.Context, segments []string) (*domain.ContentRecord, error) {
	if s.fetcher == nil {
		return nil, ErrContentNotConfigured
	}

	urlPath := domain.LookupKey(segments)
	record, err := s.fetcher.Get(ctx, domain.PageModel, builder.GetOptions{
		URLPath:   urlPath,
		Prerender: false,
		CacheTTL:  contentRevalidate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content for %s: %w", urlPath, err)
	}

	return record, nil
}
