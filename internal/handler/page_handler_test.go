package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mishasvintus/builder_site/internal/domain"
	"github.com/mishasvintus/builder_site/internal/handler"
	"github.com/mishasvintus/builder_site/internal/handler/mocks"
	"github.com/mishasvintus/builder_site/internal/render"
)

func strPtr(s string) *string { return &s }

func servePage(t *testing.T, h *handler.PageHandler, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	renderer, err := render.NewRenderer()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, engine := gin.CreateTestContext(w)
	engine.SetHTMLTemplate(renderer.Templates())
	c.Request = httptest.NewRequest(method, path, nil)

	h.Page(c)
	return w
}

func newRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	r, err := render.NewRenderer()
	require.NoError(t, err)
	return r
}

func TestPageHandler_MissingAPIKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, path := range []string{"/", "/about", "/blog/2024/post"} {
		t.Run(path, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			content := mocks.NewMockContentServiceInterface(ctrl)
			content.EXPECT().Configured().Return(false)

			w := servePage(t, handler.NewPageHandler(content, newRenderer(t)), http.MethodGet, path)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "Builder.io API Key Missing")
			assert.Contains(t, w.Body.String(), "<title>Builder.io Page</title>")
		})
	}
}

func TestPageHandler_Page(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		method         string
		path           string
		mockSetup      func(*mocks.MockContentServiceInterface)
		expectedStatus int
		contains       []string
	}{
		{
			name: "success - page with metadata",
			path: "/docs/intro",
			mockSetup: func(m *mocks.MockContentServiceInterface) {
				segments := []string{"docs", "intro"}
				m.EXPECT().Configured().Return(true)
				m.EXPECT().ResolveMetadata(gomock.Any(), segments).
					Return(domain.PageMetadata{Title: "Intro", Description: strPtr("Getting started")})
				m.EXPECT().ResolveContent(gomock.Any(), segments).
					Return(&domain.ContentRecord{ID: "c1", Data: domain.ContentData{Blocks: []domain.Block{
						{ID: "t", Component: &domain.Component{Name: "Text", Options: map[string]any{"text": "<p>Hello</p>"}}},
					}}}, nil)
			},
			expectedStatus: http.StatusOK,
			contains: []string{
				"<title>Intro</title>",
				`<meta name="description" content="Getting started">`,
				"<p>Hello</p>",
				`data-builder-model="page"`,
			},
		},
		{
			name: "success - root path uses empty segments",
			path: "/",
			mockSetup: func(m *mocks.MockContentServiceInterface) {
				m.EXPECT().Configured().Return(true)
				m.EXPECT().ResolveMetadata(gomock.Any(), []string{}).Return(domain.DefaultPageMetadata())
				m.EXPECT().ResolveContent(gomock.Any(), []string{}).Return(&domain.ContentRecord{ID: "home"}, nil)
			},
			expectedStatus: http.StatusOK,
			contains:       []string{`data-builder-content-id="home"`},
		},
		{
			name: "not found - no content for path",
			path: "/missing",
			mockSetup: func(m *mocks.MockContentServiceInterface) {
				m.EXPECT().Configured().Return(true)
				m.EXPECT().ResolveMetadata(gomock.Any(), []string{"missing"}).Return(domain.DefaultPageMetadata())
				m.EXPECT().ResolveContent(gomock.Any(), []string{"missing"}).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
			contains:       []string{"This page could not be found."},
		},
		{
			name: "error - content fetch failure fails the request",
			path: "/about",
			mockSetup: func(m *mocks.MockContentServiceInterface) {
				m.EXPECT().Configured().Return(true)
				m.EXPECT().ResolveMetadata(gomock.Any(), []string{"about"}).Return(domain.DefaultPageMetadata())
				m.EXPECT().ResolveContent(gomock.Any(), []string{"about"}).Return(nil, errors.New("upstream timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "error - unsupported method",
			method:         http.MethodPost,
			path:           "/about",
			mockSetup:      func(m *mocks.MockContentServiceInterface) {},
			expectedStatus: http.StatusNotFound,
			contains:       []string{`{"error":"Not Found"}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			content := mocks.NewMockContentServiceInterface(ctrl)
			tt.mockSetup(content)

			method := tt.method
			if method == "" {
				method = http.MethodGet
			}

			w := servePage(t, handler.NewPageHandler(content, newRenderer(t)), method, tt.path)

			assert.Equal(t, tt.expectedStatus, w.Code)
			for _, s := range tt.contains {
				assert.Contains(t, w.Body.String(), s)
			}
		})
	}
}

func TestPageHandler_DelegatesToRenderer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	content := mocks.NewMockContentServiceInterface(ctrl)
	renderer := mocks.NewMockPageRenderer(ctrl)

	meta := domain.PageMetadata{Title: "T"}
	record := &domain.ContentRecord{ID: "c1"}

	content.EXPECT().Configured().Return(true)
	content.EXPECT().ResolveMetadata(gomock.Any(), []string{"x"}).Return(meta)
	content.EXPECT().ResolveContent(gomock.Any(), []string{"x"}).Return(record, nil)
	renderer.EXPECT().Page(record, "page", meta).
		Return(render.View{Status: http.StatusOK, Template: render.TemplatePage, Data: render.PageData{Meta: meta, Model: "page", Content: record}})

	w := servePage(t, handler.NewPageHandler(content, renderer), http.MethodGet, "/x")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<title>T</title>")
}
