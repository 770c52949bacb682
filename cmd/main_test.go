package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/sbilibin2017/bloglist/internal/config"
	"github.com/sbilibin2017/bloglist/internal/middlewares"
	"github.com/sbilibin2017/bloglist/internal/models"
	"github.com/sbilibin2017/bloglist/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	oldVersion, oldCommit, oldDate := buildVersion, buildCommit, buildDate
	defer func() { buildVersion, buildCommit, buildDate = oldVersion, oldCommit, oldDate }()

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2025-09-26")
}

func memoryConfig(port string) config.Config {
	var cfg config.Config
	cfg.App.Host = "127.0.0.1"
	cfg.App.Port = port
	cfg.App.LogLevel = "error"
	cfg.Storage.Driver = config.DriverMemory
	cfg.Bcrypt.Cost = bcrypt.MinCost
	return cfg
}

// newTestServer serves the full router over a fresh store of the given config.
func newTestServer(t *testing.T, cfg config.Config) *httptest.Server {
	t.Helper()

	store, err := openStorage(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(store.close)

	blogService := services.NewBlogService(store.blogReader, store.blogWriter, nil, nil,
		services.WithAfterCommit(middlewares.AfterCommit))
	userService := services.NewUserService(store.userReader, store.userWriter, cfg.Bcrypt.Cost)

	srv := httptest.NewServer(newRouter(blogService, userService, store.writeMiddleware, "/swagger/doc.json"))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, data
}

var initialBlogs = []map[string]any{
	{"title": "React patterns", "author": "Michael Chan", "url": "https://reactpatterns.com/", "likes": 7},
	{"title": "Go To Statement Considered Harmful", "author": "Edsger W. Dijkstra", "url": "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html", "likes": 5},
}

func seedBlogs(t *testing.T, baseURL string) []models.Blog {
	t.Helper()

	blogs := make([]models.Blog, 0, len(initialBlogs))
	for _, b := range initialBlogs {
		res, body := doJSON(t, http.MethodPost, baseURL+"/api/blogs", b)
		require.Equal(t, http.StatusCreated, res.StatusCode)

		var blog models.Blog
		require.NoError(t, json.Unmarshal(body, &blog))
		blogs = append(blogs, blog)
	}
	return blogs
}

func listBlogs(t *testing.T, baseURL string) []models.Blog {
	t.Helper()

	res, body := doJSON(t, http.MethodGet, baseURL+"/api/blogs", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get("Content-Type"), "application/json")

	var blogs []models.Blog
	require.NoError(t, json.Unmarshal(body, &blogs))
	return blogs
}

func TestBlogsAPI(t *testing.T) {
	srv := newTestServer(t, memoryConfig("0"))
	seeded := seedBlogs(t, srv.URL)

	t.Run("blogs are returned as json with an id field", func(t *testing.T) {
		res, body := doJSON(t, http.MethodGet, srv.URL+"/api/blogs", nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)

		var raw []map[string]any
		require.NoError(t, json.Unmarshal(body, &raw))
		require.Len(t, raw, len(initialBlogs))
		for _, b := range raw {
			assert.NotEmpty(t, b["id"])
			assert.NotContains(t, b, "_id")
			assert.NotContains(t, b, "__v")
		}
	})

	t.Run("a valid blog can be added", func(t *testing.T) {
		res, _ := doJSON(t, http.MethodPost, srv.URL+"/api/blogs", map[string]any{
			"title": "First class tests", "author": "Robert C. Martin", "url": "http://blog.cleancoder.com/uncle-bob/2017/05/05/TestDefinitions.htmll", "likes": 10,
		})
		assert.Equal(t, http.StatusCreated, res.StatusCode)

		blogs := listBlogs(t, srv.URL)
		assert.Len(t, blogs, len(seeded)+1)
		assert.Equal(t, "First class tests", blogs[len(blogs)-1].Title)
	})

	t.Run("likes default to zero", func(t *testing.T) {
		res, body := doJSON(t, http.MethodPost, srv.URL+"/api/blogs", map[string]any{"title": "X", "url": "u"})
		assert.Equal(t, http.StatusCreated, res.StatusCode)
		assert.JSONEq(t, fmt.Sprintf(`{"id":%q,"title":"X","url":"u","likes":0}`, decodeID(t, body)), string(body))
	})

	t.Run("blog without title or url is rejected", func(t *testing.T) {
		before := len(listBlogs(t, srv.URL))

		for _, b := range []map[string]any{{"url": "u"}, {"title": "X"}} {
			res, body := doJSON(t, http.MethodPost, srv.URL+"/api/blogs", b)
			assert.Equal(t, http.StatusBadRequest, res.StatusCode)
			assert.JSONEq(t, `{"error":"title or url missing"}`, string(body))
		}

		assert.Len(t, listBlogs(t, srv.URL), before)
	})

	t.Run("negative likes are rejected", func(t *testing.T) {
		before := len(listBlogs(t, srv.URL))

		res, body := doJSON(t, http.MethodPost, srv.URL+"/api/blogs", map[string]any{"title": "X", "url": "u", "likes": -1})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.JSONEq(t, `{"error":"likes must not be negative"}`, string(body))

		assert.Len(t, listBlogs(t, srv.URL), before)
	})

	t.Run("update replaces the blog", func(t *testing.T) {
		res, body := doJSON(t, http.MethodPut, srv.URL+"/api/blogs/"+seeded[0].ID, map[string]any{
			"title": "React patterns", "url": "https://reactpatterns.com/", "likes": 8,
		})
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.JSONEq(t, fmt.Sprintf(`{"id":%q,"title":"React patterns","url":"https://reactpatterns.com/","likes":8}`, seeded[0].ID), string(body))
	})

	t.Run("update with malformed id", func(t *testing.T) {
		res, body := doJSON(t, http.MethodPut, srv.URL+"/api/blogs/not-an-id", map[string]any{"title": "X"})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.JSONEq(t, `{"error":"malformatted id"}`, string(body))
	})

	t.Run("stats reflect the store", func(t *testing.T) {
		res, body := doJSON(t, http.MethodGet, srv.URL+"/api/blogs/stats", nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)

		var report models.Report
		require.NoError(t, json.Unmarshal(body, &report))
		assert.Equal(t, 8+5+10+0, report.TotalLikes)
		assert.Equal(t, "First class tests", report.FavoriteBlog.Title)
	})

	t.Run("a blog can be deleted", func(t *testing.T) {
		before := len(listBlogs(t, srv.URL))

		res, body := doJSON(t, http.MethodDelete, srv.URL+"/api/blogs/"+seeded[1].ID, nil)
		assert.Equal(t, http.StatusNoContent, res.StatusCode)
		assert.Empty(t, body)

		blogs := listBlogs(t, srv.URL)
		assert.Len(t, blogs, before-1)
		for _, b := range blogs {
			assert.NotEqual(t, seeded[1].Title, b.Title)
		}

		res, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/blogs/"+seeded[1].ID, nil)
		assert.Equal(t, http.StatusNoContent, res.StatusCode)
	})

	t.Run("delete with malformed id", func(t *testing.T) {
		res, body := doJSON(t, http.MethodDelete, srv.URL+"/api/blogs/123", nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.JSONEq(t, `{"error":"malformatted id"}`, string(body))
	})
}

func decodeID(t *testing.T, body []byte) string {
	t.Helper()
	var blog models.Blog
	require.NoError(t, json.Unmarshal(body, &blog))
	return blog.ID
}

func TestUsersAPI(t *testing.T) {
	srv := newTestServer(t, memoryConfig("0"))

	res, body := doJSON(t, http.MethodPost, srv.URL+"/api/users", map[string]any{
		"username": "root", "name": "Superuser", "password": "sekret",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var root map[string]any
	require.NoError(t, json.Unmarshal(body, &root))
	assert.Equal(t, "root", root["username"])
	assert.Equal(t, true, root["adult"])
	assert.NotContains(t, root, "password")
	assert.NotContains(t, root, "passwordHash")

	t.Run("creation succeeds with a fresh username", func(t *testing.T) {
		res, _ := doJSON(t, http.MethodPost, srv.URL+"/api/users", map[string]any{
			"username": "mluukkai", "name": "Matti Luukkainen", "password": "salainen", "adult": false,
		})
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("duplicate username fails and leaves the users untouched", func(t *testing.T) {
		_, before := doJSON(t, http.MethodGet, srv.URL+"/api/users", nil)

		res, body := doJSON(t, http.MethodPost, srv.URL+"/api/users", map[string]any{
			"username": "root", "name": "Superuser", "password": "salainen",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.JSONEq(t, `{"error":"username must be unique"}`, string(body))

		_, after := doJSON(t, http.MethodGet, srv.URL+"/api/users", nil)
		assert.JSONEq(t, string(before), string(after))
	})

	t.Run("overlong password fails with a validation error", func(t *testing.T) {
		res, body := doJSON(t, http.MethodPost, srv.URL+"/api/users", map[string]any{
			"username": "verbose", "password": strings.Repeat("p", 73),
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.JSONEq(t, `{"error":"password must contain at most 72 bytes"}`, string(body))
	})

	t.Run("short password fails", func(t *testing.T) {
		res, body := doJSON(t, http.MethodPost, srv.URL+"/api/users", map[string]any{
			"username": "ab", "password": "pw",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.JSONEq(t, `{"error":"password must contain atleast 3 characters"}`, string(body))
	})
}

func TestRouter_Fallbacks(t *testing.T) {
	srv := newTestServer(t, memoryConfig("0"))

	tests := []struct {
		name         string
		method       string
		path         string
		body         string
		expectedCode int
		expectedBody string
	}{
		{name: "heartbeat", method: http.MethodGet, path: "/ping", expectedCode: http.StatusOK, expectedBody: "."},
		{name: "unknown route", method: http.MethodGet, path: "/api/nothing", expectedCode: http.StatusNotFound, expectedBody: `{"error":"unknown endpoint"}`},
		{name: "unsupported method", method: http.MethodPatch, path: "/api/blogs", expectedCode: http.StatusNotFound, expectedBody: `{"error":"unknown endpoint"}`},
		{name: "malformed body", method: http.MethodPost, path: "/api/blogs", body: `{"title":`, expectedCode: http.StatusBadRequest, expectedBody: `{"error":"malformed request body"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, bytes.NewBufferString(tt.body))
			require.NoError(t, err)

			res, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer res.Body.Close()

			body, _ := io.ReadAll(res.Body)
			assert.Equal(t, tt.expectedCode, res.StatusCode)
			if tt.expectedBody == "." {
				assert.Equal(t, ".", string(body))
				return
			}
			assert.JSONEq(t, tt.expectedBody, string(body))
		})
	}
}

func TestOpenStorage_UnknownDriver(t *testing.T) {
	cfg := memoryConfig("0")
	cfg.Storage.Driver = "sqlite"

	_, err := openStorage(context.Background(), cfg)
	assert.EqualError(t, err, `unknown storage driver "sqlite"`)
}

func TestRun_GracefulShutdown(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx, memoryConfig("0"))
	}()

	select {
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop")
	case err := <-errCh:
		assert.NoError(t, err)
	}
}

func TestRun_InvalidLogLevel(t *testing.T) {
	cfg := memoryConfig("0")
	cfg.App.LogLevel = "loud"

	assert.Error(t, run(context.Background(), cfg))
}

func TestRun_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping PostgreSQL container test in short mode")
	}

	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	pgHost, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	pgPort, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := memoryConfig("0")
	cfg.Storage.Driver = config.DriverPostgres
	cfg.Postgres.Host = pgHost
	cfg.Postgres.Port = pgPort.Int()
	cfg.Postgres.User = "user"
	cfg.Postgres.Password = "password"
	cfg.Postgres.DB = "testdb"
	cfg.Postgres.MaxOpenConns = 5
	cfg.Postgres.MaxIdleConns = 2

	srv := newTestServer(t, cfg)
	seeded := seedBlogs(t, srv.URL)

	blogs := listBlogs(t, srv.URL)
	assert.Equal(t, seeded, blogs)

	res, body := doJSON(t, http.MethodPost, srv.URL+"/api/users", map[string]any{"username": "root", "password": "sekret"})
	assert.Equal(t, http.StatusOK, res.StatusCode, string(body))

	res, body = doJSON(t, http.MethodPost, srv.URL+"/api/users", map[string]any{"username": "root", "password": "sekret"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.JSONEq(t, `{"error":"username must be unique"}`, string(body))

	res, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/blogs/"+seeded[0].ID, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)
	assert.Len(t, listBlogs(t, srv.URL), 1)
}
