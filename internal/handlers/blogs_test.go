package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/bloglist/internal/models"
	"github.com/sbilibin2017/bloglist/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// withID attaches the chi {id} URL parameter to the request.
func withID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error
}

func TestListBlogsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		mockSetup    func(m *MockBlogLister)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			mockSetup: func(m *MockBlogLister) {
				m.EXPECT().List(gomock.Any()).Return([]models.Blog{
					{ID: "1", Title: "React patterns", Author: "Michael Chan", URL: "https://reactpatterns.com/", Likes: 7},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"id":"1","title":"React patterns","author":"Michael Chan","url":"https://reactpatterns.com/","likes":7}]`,
		},
		{
			name: "empty list",
			mockSetup: func(m *MockBlogLister) {
				m.EXPECT().List(gomock.Any()).Return([]models.Blog{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name: "storage failure",
			mockSetup: func(m *MockBlogLister) {
				m.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"something went wrong"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockBlogLister(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/blogs", nil)
			rr := httptest.NewRecorder()
			NewListBlogsHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestCreateBlogHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	created := models.Blog{ID: "1", Title: "X", URL: "u", Likes: 0}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockBlogCreator)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success without likes",
			body: `{"title":"X","url":"u"}`,
			mockSetup: func(m *MockBlogCreator) {
				m.EXPECT().
					Create(gomock.Any(), models.BlogInput{Title: strPtr("X"), URL: strPtr("u")}).
					Return(created, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":"1","title":"X","url":"u","likes":0}`,
		},
		{
			name: "all fields are forwarded",
			body: `{"title":"X","author":"A","url":"u","likes":5}`,
			mockSetup: func(m *MockBlogCreator) {
				m.EXPECT().
					Create(gomock.Any(), models.BlogInput{Title: strPtr("X"), Author: strPtr("A"), URL: strPtr("u"), Likes: intPtr(5)}).
					Return(models.Blog{ID: "1", Title: "X", Author: "A", URL: "u", Likes: 5}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":"1","title":"X","author":"A","url":"u","likes":5}`,
		},
		{
			name: "title missing",
			body: `{"url":"u"}`,
			mockSetup: func(m *MockBlogCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Blog{}, services.ErrTitleOrURLMissing)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"title or url missing"}`,
		},
		{
			name: "empty body reaches validation",
			body: ``,
			mockSetup: func(m *MockBlogCreator) {
				m.EXPECT().Create(gomock.Any(), models.BlogInput{}).Return(models.Blog{}, services.ErrTitleOrURLMissing)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"title or url missing"}`,
		},
		{
			name:         "invalid json",
			body:         `{invalid json}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"malformed request body"}`,
		},
		{
			name: "internal error",
			body: `{"title":"X","url":"u"}`,
			mockSetup: func(m *MockBlogCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Blog{}, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"something went wrong"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockBlogCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/blogs", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			NewCreateBlogHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestDeleteBlogHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		id           string
		err          error
		expectedCode int
		expectedErr  string
	}{
		{name: "removed", id: "5a422a851b54a676234d17f7", expectedCode: http.StatusNoContent},
		{name: "malformed id", id: "abc", err: services.ErrMalformedID, expectedCode: http.StatusBadRequest, expectedErr: "malformatted id"},
		{name: "internal error", id: "5a422a851b54a676234d17f7", err: errors.New("boom"), expectedCode: http.StatusInternalServerError, expectedErr: "something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockBlogRemover(ctrl)
			mockSvc.EXPECT().Remove(gomock.Any(), tt.id).Return(tt.err)

			req := withID(httptest.NewRequest(http.MethodDelete, "/api/blogs/"+tt.id, nil), tt.id)
			rr := httptest.NewRecorder()
			NewDeleteBlogHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedErr == "" {
				assert.Empty(t, rr.Body.Bytes())
				return
			}
			assert.Equal(t, tt.expectedErr, decodeError(t, rr))
		})
	}
}

func TestUpdateBlogHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const id = "5a422a851b54a676234d17f7"

	tests := []struct {
		name         string
		id           string
		body         string
		mockSetup    func(m *MockBlogUpdater)
		expectedCode int
		expectedBody string
	}{
		{
			name: "replaced",
			id:   id,
			body: `{"title":"New","url":"u2","likes":3}`,
			mockSetup: func(m *MockBlogUpdater) {
				m.EXPECT().
					Update(gomock.Any(), id, models.BlogInput{Title: strPtr("New"), URL: strPtr("u2"), Likes: intPtr(3)}).
					Return(models.Blog{ID: id, Title: "New", URL: "u2", Likes: 3}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":"5a422a851b54a676234d17f7","title":"New","url":"u2","likes":3}`,
		},
		{
			name: "malformed id",
			id:   "abc",
			body: `{"title":"New"}`,
			mockSetup: func(m *MockBlogUpdater) {
				m.EXPECT().Update(gomock.Any(), "abc", gomock.Any()).Return(models.Blog{}, services.ErrMalformedID)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"malformatted id"}`,
		},
		{
			name:         "invalid json",
			id:           id,
			body:         `{"likes":"many"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"malformed request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockBlogUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := withID(httptest.NewRequest(http.MethodPut, "/api/blogs/"+tt.id, bytes.NewBufferString(tt.body)), tt.id)
			rr := httptest.NewRecorder()
			NewUpdateBlogHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestBlogStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("report", func(t *testing.T) {
		mockSvc := NewMockStatsReporter(ctrl)
		mockSvc.EXPECT().Stats(gomock.Any()).Return(models.Report{
			TotalLikes:   7,
			FavoriteBlog: models.FavoriteBlog{Title: "React patterns", Author: "Michael Chan", Likes: 7},
			MostBlogs:    models.AuthorBlogs{Author: "Michael Chan", Blogs: 1},
			MostLikes:    models.AuthorLikes{Author: "Michael Chan", Likes: 7},
		}, nil)

		rr := httptest.NewRecorder()
		NewBlogStatsHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/api/blogs/stats", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{
			"totalLikes": 7,
			"favoriteBlog": {"title":"React patterns","author":"Michael Chan","likes":7},
			"mostBlogs": {"author":"Michael Chan","blogs":1},
			"mostLikes": {"author":"Michael Chan","likes":7}
		}`, rr.Body.String())
	})

	t.Run("no blogs", func(t *testing.T) {
		mockSvc := NewMockStatsReporter(ctrl)
		mockSvc.EXPECT().Stats(gomock.Any()).Return(models.Report{}, nil)

		rr := httptest.NewRecorder()
		NewBlogStatsHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/api/blogs/stats", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"totalLikes":0,"favoriteBlog":{},"mostBlogs":{},"mostLikes":{}}`, rr.Body.String())
	})

	t.Run("failure", func(t *testing.T) {
		mockSvc := NewMockStatsReporter(ctrl)
		mockSvc.EXPECT().Stats(gomock.Any()).Return(models.Report{}, errors.New("boom"))

		rr := httptest.NewRecorder()
		NewBlogStatsHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/api/blogs/stats", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "something went wrong", decodeError(t, rr))
	})
}

func TestNotFoundHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewNotFoundHandler()(rr, httptest.NewRequest(http.MethodGet, "/api/nothing", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "unknown endpoint", decodeError(t, rr))
}
