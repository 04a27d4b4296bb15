package controllers

import (
	"errors"
	"log"
	"net/http"

	"blog/middleware"
	"blog/models"
	"blog/services"
	"blog/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const badCredentialsMessage = "Incorrect username or password"

type AuthController struct {
	userService *services.UserService
	flashes     *utils.FlashStore
}

func NewAuthController(db *gorm.DB, flashes *utils.FlashStore) *AuthController {
	return &AuthController{
		userService: services.NewUserService(db),
		flashes:     flashes,
	}
}

func (ac *AuthController) LoginForm(c *gin.Context) {
	render(c, ac.flashes, http.StatusOK, "login.html", gin.H{
		"title": "Log in",
		"next":  middleware.SafeNext(c.Query("next")),
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	next := middleware.SafeNext(c.Query("next"))
	if next == "" {
		next = middleware.SafeNext(c.PostForm("next"))
	}

	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		flash(c, ac.flashes, "danger", badCredentialsMessage)
		c.Redirect(http.StatusFound, middleware.LoginURL(next))
		return
	}

	user, err := ac.userService.Authenticate(req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		log.Printf("Failed login for %q", models.NormalizeEmail(req.Email))
		flash(c, ac.flashes, "danger", badCredentialsMessage)
		c.Redirect(http.StatusFound, middleware.LoginURL(next))
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	token, err := utils.GenerateJWT(user.ID, true)
	if err != nil {
		serverError(c, err)
		return
	}
	middleware.SetSessionCookie(c, token)

	if next == "" {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

func (ac *AuthController) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}

// APILogin godoc
// @Summary Log in
// @Description Exchange email and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (ac *AuthController) APILogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.userService.Authenticate(req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	token, err := utils.GenerateJWT(user.ID, true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data":    user,
		"token":   token,
	})
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (ac *AuthController) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user, "fresh": middleware.IsFresh(c)})
}
