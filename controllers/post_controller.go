package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"blog/middleware"
	"blog/models"
	"blog/services"
	"blog/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostController struct {
	postService *services.PostService
	flashes     *utils.FlashStore
}

func NewPostController(db *gorm.DB, pageSize int, flashes *utils.FlashStore) *PostController {
	return &PostController{
		postService: services.NewPostService(db, pageSize),
		flashes:     flashes,
	}
}

// ListPosts serves / and /page/:page.
func (pc *PostController) ListPosts(c *gin.Context) {
	page := 1
	if raw := c.Param("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			notFound(c, pc.flashes)
			return
		}
		page = n
	}

	result, err := pc.postService.ListPosts(page)
	if err != nil {
		serverError(c, err)
		return
	}

	render(c, pc.flashes, http.StatusOK, "posts.html", gin.H{
		"posts":      result.Posts,
		"page":       result.Page,
		"totalPages": result.TotalPages,
		"hasNext":    result.HasNext,
		"hasPrev":    result.HasPrev,
	})
}

func (pc *PostController) AddPostForm(c *gin.Context) {
	render(c, pc.flashes, http.StatusOK, "add_post.html", gin.H{"title": "New post"})
}

func (pc *PostController) AddPost(c *gin.Context) {
	var form models.PostForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, pc.flashes, http.StatusBadRequest, "add_post.html", gin.H{
			"title":       "New post",
			"formError":   "Titles are limited to 1024 characters.",
			"formTitle":   c.PostForm("title"),
			"formContent": c.PostForm("content"),
		})
		return
	}

	post, err := pc.postService.CreatePost(middleware.CurrentUserID(c), &form)
	if err != nil {
		serverError(c, err)
		return
	}

	log.Printf("Post created: id=%d author=%d", post.ID, post.AuthorID)
	c.Redirect(http.StatusFound, "/")
}

func (pc *PostController) ViewPost(c *gin.Context) {
	pc.showPost(c, false)
}

// ConfirmDelete shows the post with a delete prompt. It never mutates.
func (pc *PostController) ConfirmDelete(c *gin.Context) {
	pc.showPost(c, true)
}

func (pc *PostController) EditPostForm(c *gin.Context) {
	post, ok := pc.authorPost(c)
	if !ok {
		return
	}

	render(c, pc.flashes, http.StatusOK, "edit_post.html", gin.H{
		"title":   "Edit " + post.Title,
		"post":    post,
		"content": post.EditableContent(),
	})
}

func (pc *PostController) EditPost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		notFound(c, pc.flashes)
		return
	}
	userID := middleware.CurrentUserID(c)
	if userID == 0 {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var form models.PostForm
	if err := c.ShouldBind(&form); err != nil {
		post, ok := pc.authorPost(c)
		if !ok {
			return
		}
		post.Title = c.PostForm("title")
		render(c, pc.flashes, http.StatusBadRequest, "edit_post.html", gin.H{
			"title":     "Edit post",
			"post":      post,
			"content":   c.PostForm("content"),
			"formError": "Titles are limited to 1024 characters.",
		})
		return
	}

	post, err := pc.postService.UpdatePost(id, userID, &form)
	if !pc.handleAuthorErr(c, err) {
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", post.ID))
}

func (pc *PostController) DeletePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		notFound(c, pc.flashes)
		return
	}
	userID := middleware.CurrentUserID(c)
	if userID == 0 {
		c.Redirect(http.StatusFound, "/")
		return
	}

	if !pc.handleAuthorErr(c, pc.postService.DeletePost(id, userID)) {
		return
	}

	log.Printf("Post deleted: id=%d author=%d", id, userID)
	c.Redirect(http.StatusFound, "/")
}

// ListPostsJSON godoc
// @Summary List posts
// @Description Paginated posts, newest first
// @Tags posts
// @Produce json
// @Param page query int false "1-indexed page" default(1)
// @Success 200 {object} map[string]interface{}
// @Router /posts [get]
func (pc *PostController) ListPostsJSON(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
		return
	}

	result, err := pc.postService.ListPosts(page)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": result.Posts,
		"pagination": gin.H{
			"page":        result.Page,
			"page_size":   pc.postService.PageSize(),
			"total_pages": result.TotalPages,
			"has_next":    result.HasNext,
			"has_prev":    result.HasPrev,
			"count":       result.Count,
		},
	})
}

// GetPostJSON godoc
// @Summary Get a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} map[string]string
// @Router /posts/{id} [get]
func (pc *PostController) GetPostJSON(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	post, err := pc.postService.GetPostByID(id)
	if errors.Is(err, services.ErrPostNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": post})
}

func (pc *PostController) showPost(c *gin.Context, confirm bool) {
	id, ok := parseID(c)
	if !ok {
		notFound(c, pc.flashes)
		return
	}

	post, err := pc.postService.GetPostByID(id)
	if errors.Is(err, services.ErrPostNotFound) {
		notFound(c, pc.flashes)
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	render(c, pc.flashes, http.StatusOK, "view_post.html", gin.H{
		"title":    post.Title,
		"post":     post,
		"confirm":  confirm,
		"isAuthor": post.IsAuthoredBy(middleware.CurrentUserID(c)),
	})
}

// authorPost loads the :id post for its author. Anonymous users and
// non-authors are sent back to the listing without explanation.
func (pc *PostController) authorPost(c *gin.Context) (*models.Post, bool) {
	id, ok := parseID(c)
	if !ok {
		notFound(c, pc.flashes)
		return nil, false
	}

	userID := middleware.CurrentUserID(c)
	if userID == 0 {
		c.Redirect(http.StatusFound, "/")
		return nil, false
	}

	post, err := pc.postService.AuthorizeAuthor(id, userID)
	if !pc.handleAuthorErr(c, err) {
		return nil, false
	}
	return post, true
}

// handleAuthorErr writes the response for a failed author-only operation and
// reports whether the caller may continue.
func (pc *PostController) handleAuthorErr(c *gin.Context, err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, services.ErrNotAuthor):
		c.Redirect(http.StatusFound, "/")
	case errors.Is(err, services.ErrPostNotFound):
		notFound(c, pc.flashes)
	default:
		serverError(c, err)
	}
	return false
}
