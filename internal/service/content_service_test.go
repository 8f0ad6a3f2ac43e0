package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mishasvintus/builder_site/internal/builder"
	"github.com/mishasvintus/builder_site/internal/domain"
	"github.com/mishasvintus/builder_site/internal/logger"
)

type fakeFetcher struct {
	record *domain.ContentRecord
	err    error

	calls int
	model string
	opts  builder.GetOptions
}

func (f *fakeFetcher) Get(_ context.Context, model string, opts builder.GetOptions) (*domain.ContentRecord, error) {
	f.calls++
	f.model = model
	f.opts = opts
	return f.record, f.err
}

func strPtr(s string) *string { return &s }

func TestContentService_ResolveMetadata_NoAPIKey(t *testing.T) {
	s := NewContentService(nil, logger.NewNop())

	for _, segments := range [][]string{nil, {"about"}, {"a", "b", "c"}} {
		meta := s.ResolveMetadata(context.Background(), segments)
		assert.Equal(t, domain.PageMetadata{Title: "Builder.io Page"}, meta)
	}
	assert.False(t, s.Configured())
}

func TestContentService_ResolveMetadata(t *testing.T) {
	tests := []struct {
		name    string
		fetcher *fakeFetcher
		want    domain.PageMetadata
	}{
		{
			name: "title and description",
			fetcher: &fakeFetcher{record: &domain.ContentRecord{
				Data: domain.ContentData{Title: strPtr("T"), Description: strPtr("D")},
			}},
			want: domain.PageMetadata{Title: "T", Description: strPtr("D")},
		},
		{
			name: "missing title",
			fetcher: &fakeFetcher{record: &domain.ContentRecord{
				Data: domain.ContentData{Description: strPtr("D")},
			}},
			want: domain.PageMetadata{Title: "Builder.io Page", Description: strPtr("D")},
		},
		{
			name:    "no content",
			fetcher: &fakeFetcher{},
			want:    domain.PageMetadata{Title: "Builder.io Page"},
		},
		{
			name:    "fetch failure",
			fetcher: &fakeFetcher{err: errors.New("network unreachable")},
			want:    domain.PageMetadata{Title: "Builder.io Page"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewContentService(tt.fetcher, logger.NewNop())

			meta := s.ResolveMetadata(context.Background(), []string{"docs", "intro"})

			assert.Equal(t, tt.want, meta)
			assert.Equal(t, 1, tt.fetcher.calls)
			assert.Equal(t, "page", tt.fetcher.model)
			assert.Equal(t, "/docs/intro", tt.fetcher.opts.URLPath)
			assert.False(t, tt.fetcher.opts.Prerender)
			assert.Zero(t, tt.fetcher.opts.CacheTTL)
		})
	}
}

func TestContentService_ResolveMetadata_LogsFailure(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	fetcher := &fakeFetcher{err: &builder.APIError{StatusCode: 503, Model: "page", URLPath: "/"}}
	s := NewContentService(fetcher, logger.NewFromZap(zap.New(core)))

	var meta domain.PageMetadata
	require.NotPanics(t, func() {
		meta = s.ResolveMetadata(context.Background(), nil)
	})

	assert.Equal(t, domain.PageMetadata{Title: "Builder.io Page"}, meta)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Error fetching metadata", logs.All()[0].Message)
	assert.Equal(t, "/", logs.All()[0].ContextMap()["url_path"])
}

func TestContentService_ResolveContent(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		s := NewContentService(nil, logger.NewNop())

		record, err := s.ResolveContent(context.Background(), []string{"about"})
		assert.ErrorIs(t, err, ErrContentNotConfigured)
		assert.Nil(t, record)
	})

	t.Run("returns record with revalidate hint", func(t *testing.T) {
		want := &domain.ContentRecord{ID: "p1"}
		fetcher := &fakeFetcher{record: want}
		s := NewContentService(fetcher, logger.NewNop())

		record, err := s.ResolveContent(context.Background(), nil)
		require.NoError(t, err)
		assert.Same(t, want, record)
		assert.Equal(t, "page", fetcher.model)
		assert.Equal(t, "/", fetcher.opts.URLPath)
		assert.False(t, fetcher.opts.Prerender)
		assert.Equal(t, 5*time.Second, fetcher.opts.CacheTTL)
	})

	t.Run("no content is not an error", func(t *testing.T) {
		s := NewContentService(&fakeFetcher{}, logger.NewNop())

		record, err := s.ResolveContent(context.Background(), []string{"missing"})
		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("fetch failure propagates", func(t *testing.T) {
		apiErr := &builder.APIError{StatusCode: 500, Model: "page", URLPath: "/about"}
		s := NewContentService(&fakeFetcher{err: apiErr}, logger.NewNop())

		record, err := s.ResolveContent(context.Background(), []string{"about"})
		require.Error(t, err)
		assert.Nil(t, record)

		var got *builder.APIError
		require.True(t, errors.As(err, &got))
		assert.Equal(t, 500, got.StatusCode)
	})
}
