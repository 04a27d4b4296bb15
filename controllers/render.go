package controllers

import (
	"log"
	"net/http"
	"strconv"

	"blog/middleware"
	"blog/utils"

	"github.com/gin-gonic/gin"
)

// render adds the current user and any pending flashes to every page.
func render(c *gin.Context, flashes *utils.FlashStore, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if user, ok := middleware.CurrentUser(c); ok {
		data["currentUser"] = user
	}
	data["flashes"] = flashes.Pop(c.Writer, c.Request)

	c.HTML(status, name, data)
}

func notFound(c *gin.Context, flashes *utils.FlashStore) {
	render(c, flashes, http.StatusNotFound, "error.html", gin.H{
		"title":   "Not found",
		"message": "The page you asked for does not exist.",
	})
}

// serverError defers the response to middleware.ErrorHandler.
func serverError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func flash(c *gin.Context, flashes *utils.FlashStore, category, message string) {
	if err := flashes.Add(c.Writer, c.Request, category, message); err != nil {
		log.Printf("Failed to store flash message: %v", err)
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
