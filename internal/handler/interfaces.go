package handler

import (
	"context"

	"github.com/mishasvintus/builder_site/internal/domain"
	"github.com/mishasvintus/builder_site/internal/render"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// TeamServiceInterface defines the interface for team operations.
type TeamServiceInterface interface {
	TeamForSession(ctx context.Context, sess *domain.Session) (*domain.Team, error)
}

// ContentServiceInterface defines the interface for content resolution.
type ContentServiceInterface interface {
	Configured() bool
	ResolveMetadata(ctx context.Context, segments []string) domain.PageMetadata
	ResolveContent(ctx context.Context, segments []string) (*domain.ContentRecord, error)
}

// PageRenderer builds the HTML view for a request.
type PageRenderer interface {
	Page(content *domain.ContentRecord, model string, meta domain.PageMetadata) render.View
	MissingKey() render.View
}
