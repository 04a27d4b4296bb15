package routes

import (
	"net/http"

	"blog/config"
	"blog/controllers"
	_ "blog/docs"
	"blog/middleware"
	"blog/services"
	"blog/templates"
	"blog/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// NewRouter builds the fully wired engine used by main and by the handler tests.
func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(templates.Load())

	r.Use(middleware.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Session(services.NewUserService(db)))

	flashes := utils.NewFlashStore(cfg.SessionSecret)
	flashes.SetSecure(cfg.SecureCookies)

	authController := controllers.NewAuthController(db, flashes)
	postController := controllers.NewPostController(db, cfg.PageSize, flashes)
	userController := controllers.NewUserController(db, cfg.PageSize)

	SetupRoutes(r, authController, postController, userController)
	return r
}

func SetupRoutes(r *gin.Engine, authController *controllers.AuthController, postController *controllers.PostController, userController *controllers.UserController) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", postController.ListPosts)
	r.GET("/page/:page", postController.ListPosts)

	r.GET("/login", authController.LoginForm)
	r.POST("/login", authController.Login)
	r.POST("/logout", authController.Logout)

	post := r.Group("/post")
	{
		post.GET("/add", middleware.LoginRequired(), postController.AddPostForm)
		post.POST("/add", middleware.LoginRequired(), postController.AddPost)

		post.GET("/:id", postController.ViewPost)
		post.GET("/:id/edit", postController.EditPostForm)
		post.POST("/:id/edit", postController.EditPost)
		post.POST("/:id/confirm", postController.ConfirmDelete)
		post.GET("/:id/delete", postController.DeletePost)
		post.POST("/:id/delete", postController.DeletePost)
	}

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authController.APILogin)
			auth.GET("/me", middleware.AuthRequired(), authController.Me)
		}

		posts := api.Group("/posts")
		{
			posts.GET("", postController.ListPostsJSON)
			posts.GET("/:id", postController.GetPostJSON)
		}

		users := api.Group("/users")
		{
			users.GET("/:id", userController.GetUser)
			users.GET("/:id/posts", userController.GetUserPosts)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
