package middleware

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"blog/models"
	"blog/services"
	"blog/utils"

	"github.com/gin-gonic/gin"
)

const SessionCookieName = "blog_session"

const (
	userKey   = "user"
	userIDKey = "user_id"
	freshKey  = "fresh"
)

// Session resolves the current principal from the session cookie or a Bearer
// token. It never aborts; anonymous requests simply carry no user.
func Session(userService *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, fromCookie := sessionToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := utils.ValidateJWT(token)
		if err != nil {
			log.Printf("Session token rejected: %v", err)
			if fromCookie {
				ClearSessionCookie(c)
			}
			c.Next()
			return
		}

		user, err := userService.GetUserByID(claims.UserID)
		if err != nil {
			log.Printf("Session user %d not loaded: %v", claims.UserID, err)
			if fromCookie {
				ClearSessionCookie(c)
			}
			c.Next()
			return
		}

		c.Set(userKey, user)
		c.Set(userIDKey, user.ID)
		c.Set(freshKey, claims.Fresh)
		c.Next()
	}
}

// LoginRequired sends anonymous requests to the login page, remembering where
// they were going.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUserID(c) == 0 {
			c.Header("Cache-Control", "no-store")
			c.Redirect(http.StatusFound, LoginURL(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthRequired is the JSON API flavour of LoginRequired.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUserID(c) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(userKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}

func CurrentUserID(c *gin.Context) uint {
	if id, ok := c.Get(userIDKey); ok {
		if v, ok := id.(uint); ok {
			return v
		}
	}
	return 0
}

// IsFresh reports whether the session came straight from a password login.
func IsFresh(c *gin.Context) bool {
	return c.GetBool(freshKey)
}

var secureCookies bool

// ConfigureCookies marks session cookies Secure, for deployments behind TLS.
func ConfigureCookies(secure bool) {
	secureCookies = secure
}

func SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(utils.TokenTTL().Seconds()), "/", "", secureCookies, true)
}

func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secureCookies, true)
}

// LoginURL builds /login, carrying next when it is a safe local path.
func LoginURL(next string) string {
	if next = SafeNext(next); next == "" {
		return "/login"
	}
	return "/login?next=" + url.QueryEscape(next)
}

// SafeNext accepts only local absolute paths so login cannot redirect off-site.
func SafeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return ""
	}
	return next
}

func sessionToken(c *gin.Context) (string, bool) {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie, true
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):]), false
	}
	return "", false
}
