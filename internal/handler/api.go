package handler

import (
	"github.com/folio/internal/db"
	"github.com/folio/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db         *gorm.DB
	sections   *service.SectionService
	settings   *service.SettingService
	pages      *service.PageService
	resume     *service.ResumeService
	posts      *service.PostService
	tags       *service.TagService
	categories *service.CategoryService
	comments   *service.CommentService
	projects   *service.ProjectService
	messages   *service.MessageService
	captcha    *service.CaptchaStore
	mailer     *service.Mailer
	uploadDir  string
	uploadURL  string
	webRoot    string
}

const siteSettingsContextKey = "__site_settings"

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, mailer *service.Mailer, uploadDir, uploadURL string) *API {
	return &API{
		db:         gdb,
		sections:   service.NewSectionService(gdb),
		settings:   service.NewSettingService(gdb),
		pages:      service.NewPageService(gdb),
		resume:     service.NewResumeService(gdb),
		posts:      service.NewPostService(gdb),
		tags:       service.NewTagService(gdb),
		categories: service.NewCategoryService(gdb),
		comments:   service.NewCommentService(gdb),
		projects:   service.NewProjectService(gdb),
		messages:   service.NewMessageService(gdb),
		captcha:    service.NewCaptchaStore(),
		mailer:     mailer,
		uploadDir:  uploadDir,
		uploadURL:  uploadURL,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}

// SetWebRoot points file-serving handlers at the directory the router
// serves templates and static assets from.
func (a *API) SetWebRoot(root string) {
	a.webRoot = root
}

// siteSettings loads the merged settings map once per request.
func (a *API) siteSettings(c *gin.Context) map[string]string {
	if cached, exists := c.Get(siteSettingsContextKey); exists {
		if view, ok := cached.(map[string]string); ok {
			return view
		}
	}

	settings, err := a.settings.GetAll()
	if err != nil {
		c.Error(err)
		settings = map[string]string{}
	}

	c.Set(siteSettingsContextKey, settings)
	return settings
}

// renderHTML renders a template with the site settings attached, so every
// page can reach the site name, contact links and footer text.
func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	settings := a.siteSettings(c)

	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}
	if _, exists := payload["settings"]; !exists {
		payload["settings"] = settings
	}
	if _, exists := payload["siteName"]; !exists {
		payload["siteName"] = settings[db.SettingKeySiteName]
	}

	c.HTML(status, template, payload)
}
