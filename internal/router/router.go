package router

import (
	"html/template"
	"net/http"
	"path/filepath"
	"time"

	"github.com/folio/internal/config"
	"github.com/folio/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures the Gin engine and routes.
func SetupRouter(api *handler.API, cfg config.AppConfig) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 3600,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("folio_session", store))

	r.SetFuncMap(template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("Jan 2, 2006")
		},
		"formatDateTime": func(t time.Time) string {
			return t.Format("Jan 2, 2006 15:04")
		},
	})
	webRoot := cfg.WebRoot
	if webRoot == "" {
		webRoot = "web"
	}
	api.SetWebRoot(webRoot)
	r.LoadHTMLGlob(filepath.Join(webRoot, "templates", "*.html"))

	r.Static("/static", filepath.Join(webRoot, "static"))

	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := api.DB().DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public site
	r.GET("/", api.ShowHome)
	r.GET("/about", api.ShowAbout)
	r.GET("/now", api.ShowNow)
	r.GET("/resume", api.ShowResume)
	r.GET("/resume/download", api.DownloadResume)
	r.GET("/blog", api.ShowBlog)
	r.GET("/blog/archive/:year", api.ShowBlogArchiveYear)
	r.GET("/blog/archive/:year/:month", api.ShowBlogArchiveMonth)
	r.GET("/blog/category/:slug", api.ShowBlogCategory)
	r.GET("/blog/tag/:slug", api.ShowBlogTag)
	r.GET("/blog/:slug", api.ShowBlogPost)
	r.POST("/blog/:slug/comment", api.AddComment)
	r.GET("/projects", api.ShowProjects)
	r.GET("/projects/:slug", api.ShowProjectDetail)
	r.GET("/contact", api.ShowContact)
	r.POST("/contact", api.SubmitContact)
	r.GET("/api/captcha", api.GetCaptcha)

	// Section JSON API for the inline editor (session required)
	sectionAPI := r.Group("/api")
	sectionAPI.Use(handler.AuthRequired())
	{
		sectionAPI.GET("/section/:page/:key", api.GetSection)
		sectionAPI.PUT("/section/:page/:key", api.UpdateSection)
		sectionAPI.POST("/section", api.CreateSection)
		sectionAPI.DELETE("/section/:id", api.DeleteSection)
		sectionAPI.GET("/sections/:page", api.ListSections)

		sectionAPI.POST("/markdown/preview", api.PreviewMarkdown)
	}

	// Admin area
	admin := r.Group("/admin")
	{
		admin.GET("", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/admin/dashboard")
		})
		admin.GET("/login", api.ShowLogin)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/dashboard", api.ShowDashboard)

			auth.GET("/settings", api.ShowSettings)
			auth.POST("/settings", api.UpdateSettings)

			auth.GET("/posts", api.ShowAdminPosts)
			auth.GET("/posts/new", api.ShowPostForm)
			auth.POST("/posts", api.CreatePost)
			auth.GET("/posts/:id/edit", api.ShowPostForm)
			auth.POST("/posts/:id", api.UpdatePost)
			auth.POST("/posts/:id/toggle", api.TogglePost)
			auth.POST("/posts/:id/delete", api.DeletePost)

			auth.GET("/projects", api.ShowAdminProjects)
			auth.GET("/projects/new", api.ShowProjectForm)
			auth.POST("/projects", api.CreateProject)
			auth.GET("/projects/:id/edit", api.ShowProjectForm)
			auth.POST("/projects/:id", api.UpdateProject)
			auth.POST("/projects/:id/delete", api.DeleteProject)

			auth.GET("/pages", api.ShowAdminPages)
			auth.GET("/pages/:slug/edit", api.ShowPageForm)
			auth.POST("/pages/:slug", api.UpdatePage)

			auth.GET("/resume", api.ShowAdminResume)
			auth.GET("/resume/new", api.ShowResumeForm)
			auth.POST("/resume", api.CreateResumeSection)
			auth.GET("/resume/:id/edit", api.ShowResumeForm)
			auth.POST("/resume/:id", api.UpdateResumeSection)
			auth.POST("/resume/:id/delete", api.DeleteResumeSection)

			auth.GET("/comments", api.ShowAdminComments)
			auth.POST("/comments/:id/approve", api.ApproveComment)
			auth.POST("/comments/:id/delete", api.DeleteComment)

			auth.GET("/messages", api.ShowAdminMessages)
			auth.GET("/messages/:id", api.ShowMessageDetail)
			auth.POST("/messages/:id/delete", api.DeleteMessage)

			auth.GET("/categories", api.ShowAdminCategories)
			auth.POST("/categories", api.CreateCategory)
			auth.POST("/categories/:id/delete", api.DeleteCategory)

			auth.GET("/tags", api.ShowAdminTags)
			auth.POST("/tags", api.CreateTag)
			auth.POST("/tags/:id/delete", api.DeleteTag)

			// JSON endpoints for the inline editor
			adminAPI := auth.Group("/api")
			{
				adminAPI.GET("/section/:page/:key", api.GetSection)
				adminAPI.PUT("/section/:page/:key", api.UpdateSection)
				adminAPI.POST("/section", api.CreateSection)
				adminAPI.DELETE("/section/:id", api.DeleteSection)
				adminAPI.GET("/sections/:page", api.ListSections)

				adminAPI.POST("/markdown/preview", api.PreviewMarkdown)
				adminAPI.POST("/upload", api.UploadImage)
			}
		}
	}

	return r
}
