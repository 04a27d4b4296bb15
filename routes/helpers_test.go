package routes

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"blog/config"
	"blog/database"
	"blog/middleware"
	"blog/models"
	"blog/services"
	"blog/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testApp struct {
	t      *testing.T
	router *gin.Engine
	db     *gorm.DB
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.ConfigureJWT("test-jwt-secret", time.Hour)

	db, err := database.Open("sqlite", filepath.Join(t.TempDir(), "test.db"), logger.Silent)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	cfg := &config.Config{
		PageSize:      10,
		SessionSecret: "test-session-secret",
	}

	return &testApp{t: t, router: NewRouter(db, cfg), db: db}
}

func (a *testApp) createUser(name, email string) *models.User {
	a.t.Helper()
	user, err := services.NewUserService(a.db).CreateUser(name, email, "test")
	require.NoError(a.t, err)
	return user
}

func (a *testApp) createPost(author *models.User, title, markdown string) *models.Post {
	a.t.Helper()
	post, err := services.NewPostService(a.db, 10).CreatePost(author.ID, &models.PostForm{Title: title, Content: markdown})
	require.NoError(a.t, err)
	return post
}

func (a *testApp) posts() []models.Post {
	a.t.Helper()
	var posts []models.Post
	require.NoError(a.t, a.db.Preload("Author").Order("id").Find(&posts).Error)
	return posts
}

func (a *testApp) reload(id uint) models.Post {
	a.t.Helper()
	var post models.Post
	require.NoError(a.t, a.db.First(&post, id).Error)
	return post
}

// sessionFor mints the cookie a successful login would have set.
func (a *testApp) sessionFor(user *models.User) *http.Cookie {
	a.t.Helper()
	token, err := utils.GenerateJWT(user.ID, true)
	require.NoError(a.t, err)
	return &http.Cookie{Name: middleware.SessionCookieName, Value: token}
}

func (a *testApp) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	return a.do(httptest.NewRequest(http.MethodGet, path, nil), cookies...)
}

func (a *testApp) postForm(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return a.do(req, cookies...)
}

func (a *testApp) postJSON(path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	return a.do(req)
}

func locationOf(t *testing.T, rec *httptest.ResponseRecorder) *url.URL {
	t.Helper()
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	return loc
}

func cookieNamed(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
