package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/jart/internal/jart/entity"
	"github.com/jimyag/jart/pkg/apierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockArticleService 是 ArticleService 的 mock 实现
type MockArticleService struct {
	mock.Mock
}

func (m *MockArticleService) ListArticles(ctx context.Context) ([]entity.Article, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Article), args.Error(1)
}

func (m *MockArticleService) DescribeArticle(ctx context.Context, articleID string) (*entity.Article, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockArticleService) CreateArticle(ctx context.Context, req *entity.CreateArticleRequest) (*entity.Article, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockArticleService) UpdateArticle(ctx context.Context, req *entity.UpdateArticleRequest) (*entity.Article, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockArticleService) DeleteArticle(ctx context.Context, articleID string) error {
	args := m.Called(ctx, articleID)
	return args.Error(0)
}

// MockTagService 是 TagService 的 mock 实现
type MockTagService struct {
	mock.Mock
}

func (m *MockTagService) ListTags(ctx context.Context) ([]entity.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Tag), args.Error(1)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) apierror.ErrorBody {
	t.Helper()
	env := decodeEnvelope(t, w)
	require.False(t, env.Success)
	var body apierror.ErrorBody
	require.NoError(t, json.Unmarshal(env.Data, &body))
	return body
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func newMockAPI(articleService *MockArticleService) *API {
	gin.SetMode(gin.TestMode)
	return newAPI("", articleService, new(MockTagService))
}

func sampleArticle() *entity.Article {
	return &entity.Article{
		ID:        "art-1",
		Title:     "A",
		Body:      "body",
		Tags:      []entity.Tag{{ID: "tag-1", Title: "x"}, {ID: "tag-2", Title: "y"}},
		CreatedAt: "2024-01-01T00:00:00Z",
		UpdatedAt: "2024-01-01T00:00:00Z",
	}
}

func TestArticle_CreateArticle(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name         string
		body         any
		mockSetup    func(*MockArticleService)
		expectStatus int
		expectCode   string
	}{
		{
			name: "successful create",
			body: map[string]any{"title": "A", "body": "body", "tags": "x,y"},
			mockSetup: func(m *MockArticleService) {
				m.On("CreateArticle", mock.Anything, mock.MatchedBy(func(req *entity.CreateArticleRequest) bool {
					return req.Title == "A" && req.Tags != nil && *req.Tags == "x,y"
				})).Return(sampleArticle(), nil)
			},
			expectStatus: http.StatusCreated,
		},
		{
			name:         "missing title",
			body:         map[string]any{"body": "body"},
			mockSetup:    func(*MockArticleService) {},
			expectStatus: http.StatusUnprocessableEntity,
			expectCode:   apierror.ErrInvalidParameter.Code,
		},
		{
			name:         "title too long",
			body:         map[string]any{"title": strings.Repeat("a", entity.MaxTitleLength+1)},
			mockSetup:    func(*MockArticleService) {},
			expectStatus: http.StatusUnprocessableEntity,
			expectCode:   apierror.ErrInvalidParameter.Code,
		},
		{
			name: "persistence failure",
			body: map[string]any{"title": "A"},
			mockSetup: func(m *MockArticleService) {
				m.On("CreateArticle", mock.Anything, mock.AnythingOfType("*entity.CreateArticleRequest")).
					Return(nil, apierror.WrapError(apierror.ErrInternalError, "Failed to create article", assert.AnError))
			},
			expectStatus: http.StatusOK,
			expectCode:   apierror.ErrInternalError.Code,
		},
		{
			name: "untyped error",
			body: map[string]any{"title": "A"},
			mockSetup: func(m *MockArticleService) {
				m.On("CreateArticle", mock.Anything, mock.AnythingOfType("*entity.CreateArticleRequest")).
					Return(nil, assert.AnError)
			},
			expectStatus: http.StatusOK,
			expectCode:   apierror.ErrInternalError.Code,
		},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockService := new(MockArticleService)
			tc.mockSetup(mockService)
			api := newMockAPI(mockService)

			w := doJSON(t, api.Handler(), http.MethodPost, "/api/articles", tc.body)

			assert.Equal(t, tc.expectStatus, w.Code)
			if tc.expectCode != "" {
				body := decodeError(t, w)
				assert.Equal(t, "error", body.Status)
				assert.Equal(t, tc.expectCode, body.Code)
				assert.NotEmpty(t, body.Message)
				assert.Equal(t, w.Header().Get("X-Request-ID"), body.RequestID)
			} else {
				env := decodeEnvelope(t, w)
				assert.True(t, env.Success)
				var article entity.Article
				require.NoError(t, json.Unmarshal(env.Data, &article))
				assert.Equal(t, "art-1", article.ID)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestArticle_UpdateArticle(t *testing.T) {
	t.Parallel()

	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		method := method
		t.Run(method, func(t *testing.T) {
			t.Parallel()

			mockService := new(MockArticleService)
			mockService.On("UpdateArticle", mock.Anything, mock.MatchedBy(func(req *entity.UpdateArticleRequest) bool {
				return req.ArticleID == "art-1" &&
					req.Title == nil &&
					req.Tags != nil && *req.Tags == "x"
			})).Return(sampleArticle(), nil)
			api := newMockAPI(mockService)

			w := doJSON(t, api.Handler(), method, "/api/articles/art-1", map[string]any{"tags": "x"})

			assert.Equal(t, http.StatusOK, w.Code)
			assert.True(t, decodeEnvelope(t, w).Success)
			mockService.AssertExpectations(t)
		})
	}

	t.Run("blank title rejected", func(t *testing.T) {
		t.Parallel()

		mockService := new(MockArticleService)
		api := newMockAPI(mockService)

		w := doJSON(t, api.Handler(), http.MethodPut, "/api/articles/art-1", map[string]any{"title": "  "})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockService.AssertNotCalled(t, "UpdateArticle", mock.Anything, mock.Anything)
	})

	t.Run("unknown article", func(t *testing.T) {
		t.Parallel()

		mockService := new(MockArticleService)
		mockService.On("UpdateArticle", mock.Anything, mock.Anything).
			Return(nil, apierror.WrapError(apierror.ErrArticleNotFound, "article art-9 does not exist", nil))
		api := newMockAPI(mockService)

		w := doJSON(t, api.Handler(), http.MethodPut, "/api/articles/art-9", map[string]any{"title": "B"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, apierror.ErrArticleNotFound.Code, decodeError(t, w).Code)
	})
}

func TestArticle_DeleteArticle(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name         string
		mockErr      error
		expectStatus int
	}{
		{
			name:         "successful delete",
			expectStatus: http.StatusNoContent,
		},
		{
			name:         "not found",
			mockErr:      apierror.WrapError(apierror.ErrArticleNotFound, "article art-1 does not exist", nil),
			expectStatus: http.StatusNotFound,
		},
		{
			name:         "persistence failure",
			mockErr:      apierror.WrapError(apierror.ErrInternalError, "Failed to delete article", assert.AnError),
			expectStatus: http.StatusOK,
		},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockService := new(MockArticleService)
			mockService.On("DeleteArticle", mock.Anything, "art-1").Return(tc.mockErr)
			api := newMockAPI(mockService)

			w := doJSON(t, api.Handler(), http.MethodDelete, "/api/articles/art-1", nil)

			assert.Equal(t, tc.expectStatus, w.Code)
			if tc.mockErr == nil {
				assert.Empty(t, w.Body.String())
			} else {
				assert.Equal(t, "error", decodeError(t, w).Status)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestArticle_ListAndDescribe(t *testing.T) {
	t.Parallel()

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		mockService := new(MockArticleService)
		mockService.On("ListArticles", mock.Anything).Return([]entity.Article{*sampleArticle()}, nil)
		api := newMockAPI(mockService)

		w := doJSON(t, api.Handler(), http.MethodGet, "/api/articles", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var articles []entity.Article
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &articles))
		require.Len(t, articles, 1)
		assert.Len(t, articles[0].Tags, 2)
	})

	t.Run("list failure", func(t *testing.T) {
		t.Parallel()

		mockService := new(MockArticleService)
		mockService.On("ListArticles", mock.Anything).Return(nil, assert.AnError)
		api := newMockAPI(mockService)

		w := doJSON(t, api.Handler(), http.MethodGet, "/api/articles", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "error", decodeError(t, w).Status)
	})

	t.Run("describe", func(t *testing.T) {
		t.Parallel()

		mockService := new(MockArticleService)
		mockService.On("DescribeArticle", mock.Anything, "art-1").Return(sampleArticle(), nil)
		api := newMockAPI(mockService)

		w := doJSON(t, api.Handler(), http.MethodGet, "/api/articles/art-1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decodeEnvelope(t, w).Success)
		mockService.AssertExpectations(t)
	})
}
