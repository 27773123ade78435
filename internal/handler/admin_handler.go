package handler

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/folio/internal/db"
	"github.com/folio/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// settingGroup bundles related settings keys for the settings form.
type settingGroup struct {
	Name string
	Keys []string
}

var settingGroups = []settingGroup{
	{Name: "Profile", Keys: []string{"site_name", "site_tagline", "site_email", "site_phone", "linkedin_url", "github_url"}},
	{Name: "Home Page", Keys: []string{"home_greeting", "home_intro", "home_current", "home_what_i_do", "home_cta"}},
	{Name: "Other", Keys: []string{"footer_text"}},
}

// adminPageRow is one row of the admin pages list. Default pages show up
// before they have a stored record.
type adminPageRow struct {
	Slug      string
	Title     string
	UpdatedAt time.Time
	Stored    bool
}

// AuthRequired guards the admin area. Pages bounce to the login form,
// JSON endpoints under /api and /admin/api answer 401.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get("user_id") == nil {
			if strings.HasPrefix(c.Request.URL.Path, "/admin/api/") ||
				strings.HasPrefix(c.Request.URL.Path, "/api/") {
				respondError(c, http.StatusUnauthorized, "Unauthorized")
			} else {
				c.Redirect(http.StatusFound, "/admin/login")
			}
			c.Abort()
			return
		}
		c.Next()
	}
}

// ShowLogin renders the login form, skipping straight to the dashboard
// for signed-in sessions.
func (a *API) ShowLogin(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get("user_id") != nil {
		c.Redirect(http.StatusSeeOther, "/admin/dashboard")
		return
	}
	a.renderHTML(c, http.StatusOK, "admin_login.html", gin.H{"title": "Login"})
}

// Login checks the submitted credentials against the users table.
func (a *API) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	var user db.User
	if err := a.db.Where("username = ?", username).First(&user).Error; err != nil {
		a.renderLoginError(c)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		a.renderLoginError(c)
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to save session")
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

func (a *API) renderLoginError(c *gin.Context) {
	a.renderHTML(c, http.StatusUnauthorized, "admin_login.html", gin.H{
		"title": "Login",
		"error": "Invalid username or password",
	})
}

// Logout drops the session.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/admin/login")
}

// ShowDashboard renders entity counts plus the latest posts and unread
// messages.
func (a *API) ShowDashboard(c *gin.Context) {
	session := sessions.Default(c)
	username, _ := session.Get("username").(string)

	totalPosts, publishedPosts, err := a.posts.CountByStatus()
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	projectCount, err := a.projects.Count()
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	pendingComments, err := a.comments.CountPending()
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	unreadMessages, err := a.messages.CountUnread()
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	recentPosts, err := a.posts.ListRecent(5)
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	recentMessages, err := a.messages.ListUnread(5)
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	a.renderHTML(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"title":    "Dashboard",
		"username": username,
		"stats": gin.H{
			"posts":           totalPosts,
			"published":       publishedPosts,
			"projects":        projectCount,
			"commentsPending": pendingComments,
			"messagesUnread":  unreadMessages,
		},
		"recentPosts":    recentPosts,
		"recentMessages": recentMessages,
	})
}

// ShowSettings renders the grouped settings form.
func (a *API) ShowSettings(c *gin.Context) {
	settings, err := a.settings.GetAll()
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load settings")
		return
	}

	a.renderHTML(c, http.StatusOK, "admin_settings.html", gin.H{
		"title":         "Site Settings",
		"siteSettings":  settings,
		"settingGroups": settingGroups,
	})
}

// UpdateSettings upserts every submitted settings key.
func (a *API) UpdateSettings(c *gin.Context) {
	for _, key := range service.DefaultSettingKeys() {
		value, ok := c.GetPostForm(key)
		if !ok {
			continue
		}
		if err := a.settings.Set(key, value, ""); err != nil {
			a.renderErrorPage(c, http.StatusInternalServerError, "failed to save settings")
			return
		}
	}
	c.Redirect(http.StatusSeeOther, "/admin/settings")
}

// ShowAdminPosts lists every post for the admin.
func (a *API) ShowAdminPosts(c *gin.Context) {
	posts, err := a.posts.ListAll()
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load posts")
		return
	}
	a.renderHTML(c, http.StatusOK, "admin_posts.html", gin.H{
		"title": "Posts",
		"posts": posts,
	})
}

// ShowPostForm renders the editor for a new or existing post.
func (a *API) ShowPostForm(c *gin.Context) {
	data := gin.H{"title": "New Post", "action": "/admin/posts"}

	if c.Param("id") != "" {
		id, err := parseUintParam(c, "id")
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/admin/posts")
			return
		}
		post, err := a.posts.Get(id)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/admin/posts")
			return
		}
		data["title"] = "Edit Post"
		data["action"] = fmt.Sprintf("/admin/posts/%d", post.ID)
		data["post"] = post
		data["tagNames"] = joinTagNames(post.Tags)
		data["categoryNames"] = joinCategoryNames(post.Categories)
	}

	a.renderHTML(c, http.StatusOK, "admin_post_form.html", data)
}

// CreatePost stores a new post from the editor form.
func (a *API) CreatePost(c *gin.Context) {
	input := postInputFromForm(c)
	if _, err := a.posts.Create(input); err != nil {
		a.renderPostFormError(c, "New Post", "/admin/posts", input, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/posts")
}

// UpdatePost rewrites an existing post from the editor form.
func (a *API) UpdatePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/admin/posts")
		return
	}

	input := postInputFromForm(c)
	if _, updateErr := a.posts.Update(id, input); updateErr != nil {
		if errors.Is(updateErr, service.ErrPostNotFound) {
			c.Redirect(http.StatusSeeOther, "/admin/posts")
			return
		}
		a.renderPostFormError(c, "Edit Post", fmt.Sprintf("/admin/posts/%d", id), input, updateErr)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/posts")
}

func (a *API) renderPostFormError(c *gin.Context, title, action string, input service.PostInput, err error) {
	status := http.StatusInternalServerError
	message := "failed to save post"
	if errors.Is(err, service.ErrPostInvalid) || errors.Is(err, service.ErrPostExists) {
		status = http.StatusBadRequest
		message = err.Error()
	}

	a.renderHTML(c, status, "admin_post_form.html", gin.H{
		"title":         title,
		"error":         message,
		"action":        action,
		"form":          input,
		"tagNames":      strings.Join(input.TagNames, ", "),
		"categoryNames": strings.Join(input.CategoryNames, ", "),
	})
}

// TogglePost flips a post between draft and published.
func (a *API) TogglePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err == nil {
		a.posts.TogglePublished(id)
	}
	c.Redirect(http.StatusSeeOther, "/admin/posts")
}

// DeletePost removes a post.
func (a *API) DeletePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err == nil {
		a.posts.Delete(id)
	}
	c.Redirect(http.StatusSeeOther, "/admin/posts")
}

func postInputFromForm(c *gin.Context) service.PostInput {
	return service.PostInput{
		Title:         c.PostForm("title"),
		Slug:          c.PostForm("slug"),
		Content:       c.PostForm("content"),
		Excerpt:       c.PostForm("excerpt"),
		Published:     formBool(c, "published"),
		TagNames:      splitCommaList(c.PostForm("tags")),
		CategoryNames: splitCommaList(c.PostForm("categories")),
	}
}

func joinTagNames(tags []db.Tag) string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return strings.Join(names, ", ")
}

func joinCategoryNames(categories []db.Category) string {
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.Name)
	}
	return strings.Join(names, ", ")
}

// ShowAdminProjects lists every project for the admin.
func (a *API) ShowAdminProjects(c *gin.Context) {
	projects, err := a.projects.List()
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load projects")
		return
	}
	a.renderHTML(c, http.StatusOK, "admin_projects.html", gin.H{
		"title":    "Projects",
		"projects": projects,
	})
}

// ShowProjectForm renders the editor for a new or existing project.
func (a *API) ShowProjectForm(c *gin.Context) {
	data := gin.H{"title": "New Project", "action": "/admin/projects"}

	if c.Param("id") != "" {
		id, err := parseUintParam(c, "id")
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/admin/projects")
			return
		}
		project, err := a.projects.Get(id)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/admin/projects")
			return
		}
		data["title"] = "Edit Project"
		data["action"] = fmt.Sprintf("/admin/projects/%d", project.ID)
		data["project"] = project
	}

	a.renderHTML(c, http.StatusOK, "admin_project_form.html", data)
}

// CreateProject stores a new project from the editor form.
func (a *API) CreateProject(c *gin.Context) {
	input := projectInputFromForm(c)
	if _, err := a.projects.Create(input); err != nil {
		a.renderProjectFormError(c, "New Project", "/admin/projects", input, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/projects")
}

// UpdateProject rewrites an existing project from the editor form.
func (a *API) UpdateProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/admin/projects")
		return
	}

	input := projectInputFromForm(c)
	if _, updateErr := a.projects.Update(id, input); updateErr != nil {
		if errors.Is(updateErr, service.ErrProjectNotFound) {
			c.Redirect(http.StatusSeeOther, "/admin/projects")
			return
		}
		a.renderProjectFormError(c, "Edit Project", fmt.Sprintf("/admin/projects/%d", id), input, updateErr)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/projects")
}

func (a *API) renderProjectFormError(c *gin.Context, title, action string, input service.ProjectInput, err error) {
	status := http.StatusInternalServerError
	message := "failed to save project"
	if errors.Is(err, service.ErrProjectInvalid) || errors.Is(err, service.ErrProjectExists) {
		status = http.StatusBadRequest
		message = err.Error()
	}

	a.renderHTML(c, status, "admin_project_form.html", gin.H{
		"title":  title,
		"error":  message,
		"action": action,
		"form":   projectFormValues(input),
	})
}

// projectFormValues flattens an input for template re-display.
func projectFormValues(input service.ProjectInput) gin.H {
	order := 0
	if input.SortOrder != nil {
		order = *input.SortOrder
	}
	return gin.H{
		"Title":            input.Title,
		"Slug":             input.Slug,
		"ShortDescription": input.ShortDescription,
		"Description":      input.Description,
		"TechStack":        input.TechStack,
		"Metrics":          input.Metrics,
		"GithubURL":        input.GithubURL,
		"LiveURL":          input.LiveURL,
		"Featured":         input.Featured,
		"SortOrder":        order,
	}
}

// DeleteProject removes a project.
func (a *API) DeleteProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err == nil {
		a.projects.Delete(id)
	}
	c.Redirect(http.StatusSeeOther, "/admin/projects")
}

func projectInputFromForm(c *gin.Context) service.ProjectInput {
	order := formInt(c, "order", 0)
	return service.ProjectInput{
		Title:            c.PostForm("title"),
		Slug:             c.PostForm("slug"),
		ShortDescription: c.PostForm("short_description"),
		Description:      c.PostForm("description"),
		TechStack:        c.PostForm("tech_stack"),
		Metrics:          c.PostForm("metrics"),
		GithubURL:        c.PostForm("github_url"),
		LiveURL:          c.PostForm("live_url"),
		Featured:         formBool(c, "featured"),
		SortOrder:        &order,
	}
}

// ShowAdminPages lists stored pages plus the built-in defaults that have
// not been edited yet.
func (a *API) ShowAdminPages(c *gin.Context) {
	pages, err := a.pages.ListPages()
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load pages")
		return
	}

	rows := make([]adminPageRow, 0, len(pages)+2)
	seen := make(map[string]bool, len(pages))
	for i := range pages {
		rows = append(rows, adminPageRow{
			Slug:      pages[i].Slug,
			Title:     pages[i].Title,
			UpdatedAt: pages[i].UpdatedAt,
			Stored:    true,
		})
		seen[pages[i].Slug] = true
	}

	var stubs []adminPageRow
	for slug, title := range service.DefaultPages() {
		if !seen[slug] {
			stubs = append(stubs, adminPageRow{Slug: slug, Title: title})
		}
	}
	sort.Slice(stubs, func(i, j int) bool { return stubs[i].Slug < stubs[j].Slug })
	rows = append(rows, stubs...)

	a.renderHTML(c, http.StatusOK, "admin_pages.html", gin.H{
		"title": "Pages",
		"pages": rows,
	})
}

// ShowPageForm renders the page editor, creating default pages on first
// access.
func (a *API) ShowPageForm(c *gin.Context) {
	page, err := a.pages.EnsurePage(c.Param("slug"))
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load page")
		return
	}

	a.renderHTML(c, http.StatusOK, "admin_page_form.html", gin.H{
		"title": "Edit Page",
		"page":  page,
	})
}

// UpdatePage saves the page editor form.
func (a *API) UpdatePage(c *gin.Context) {
	slug := c.Param("slug")
	_, err := a.pages.UpdatePage(slug, service.PageInput{
		Title:           c.PostForm("title"),
		Content:         c.PostForm("content"),
		MetaDescription: c.PostForm("meta_description"),
	})
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to save page")
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/pages")
}

// ShowAdminResume lists resume blocks, seeding defaults on first view.
func (a *API) ShowAdminResume(c *gin.Context) {
	sections, err := a.resume.ListAll()
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load resume")
		return
	}
	a.renderHTML(c, http.StatusOK, "admin_resume.html", gin.H{
		"title":    "Resume",
		"sections": sections,
	})
}

// ShowResumeForm renders the editor for a new or existing resume block.
func (a *API) ShowResumeForm(c *gin.Context) {
	data := gin.H{"title": "New Resume Block", "action": "/admin/resume"}

	if c.Param("id") != "" {
		id, err := parseUintParam(c, "id")
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/admin/resume")
			return
		}
		section, err := a.resume.Get(id)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/admin/resume")
			return
		}
		data["title"] = "Edit Resume Block"
		data["action"] = fmt.Sprintf("/admin/resume/%d", section.ID)
		data["section"] = section
	}

	a.renderHTML(c, http.StatusOK, "admin_resume_form.html", data)
}

// CreateResumeSection stores a new resume block.
func (a *API) CreateResumeSection(c *gin.Context) {
	input := resumeInputFromForm(c)
	if _, err := a.resume.Create(input); err != nil {
		a.renderResumeFormError(c, "New Resume Block", "/admin/resume", input, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/resume")
}

// UpdateResumeSection saves an edited resume block.
func (a *API) UpdateResumeSection(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/admin/resume")
		return
	}

	input := resumeInputFromForm(c)
	if _, updateErr := a.resume.Update(id, input); updateErr != nil {
		if errors.Is(updateErr, service.ErrResumeSectionNotFound) {
			c.Redirect(http.StatusSeeOther, "/admin/resume")
			return
		}
		a.renderResumeFormError(c, "Edit Resume Block", fmt.Sprintf("/admin/resume/%d", id), input, updateErr)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/resume")
}

func (a *API) renderResumeFormError(c *gin.Context, title, action string, input service.ResumeSectionInput, err error) {
	status := http.StatusInternalServerError
	message := "failed to save resume block"
	if errors.Is(err, service.ErrResumeSectionInvalid) {
		status = http.StatusBadRequest
		message = err.Error()
	}

	order := 0
	if input.SortOrder != nil {
		order = *input.SortOrder
	}
	visible := false
	if input.Visible != nil {
		visible = *input.Visible
	}

	a.renderHTML(c, status, "admin_resume_form.html", gin.H{
		"title":  title,
		"error":  message,
		"action": action,
		"form": gin.H{
			"SectionType": input.SectionType,
			"Title":       input.Title,
			"Content":     input.Content,
			"SortOrder":   order,
			"Visible":     visible,
		},
	})
}

// DeleteResumeSection removes a resume block.
func (a *API) DeleteResumeSection(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err == nil {
		a.resume.Delete(id)
	}
	c.Redirect(http.StatusSeeOther, "/admin/resume")
}

func resumeInputFromForm(c *gin.Context) service.ResumeSectionInput {
	order := formInt(c, "order", 0)
	visible := formBool(c, "visible")
	return service.ResumeSectionInput{
		SectionType: c.PostForm("section_type"),
		Title:       c.PostForm("title"),
		Content:     c.PostForm("content"),
		SortOrder:   &order,
		Visible:     &visible,
	}
}

// ShowAdminComments renders the moderation queue, pending first.
func (a *API) ShowAdminComments(c *gin.Context) {
	comments, err := a.comments.ListAll()
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load comments")
		return
	}
	a.renderHTML(c, http.StatusOK, "admin_comments.html", gin.H{
		"title":    "Comments",
		"comments": comments,
	})
}

// ApproveComment makes a comment visible.
func (a *API) ApproveComment(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err == nil {
		a.comments.Approve(id)
	}
	c.Redirect(http.StatusSeeOther, "/admin/comments")
}

// DeleteComment removes a comment.
func (a *API) DeleteComment(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err == nil {
		a.comments.Delete(id)
	}
	c.Redirect(http.StatusSeeOther, "/admin/comments")
}

// ShowAdminMessages renders the contact inbox.
func (a *API) ShowAdminMessages(c *gin.Context) {
	messages, err := a.messages.ListAll()
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load messages")
		return
	}
	a.renderHTML(c, http.StatusOK, "admin_messages.html", gin.H{
		"title":    "Messages",
		"messages": messages,
	})
}

// ShowMessageDetail renders one message and marks it read.
func (a *API) ShowMessageDetail(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/admin/messages")
		return
	}

	message, err := a.messages.Get(id)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/admin/messages")
		return
	}

	if !message.Read {
		if err := a.messages.MarkRead(message.ID); err != nil {
			a.renderErrorPage(c, http.StatusInternalServerError, "failed to update message")
			return
		}
		message.Read = true
	}

	a.renderHTML(c, http.StatusOK, "admin_message_detail.html", gin.H{
		"title":   "Message",
		"message": message,
	})
}

// DeleteMessage removes a message.
func (a *API) DeleteMessage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err == nil {
		a.messages.Delete(id)
	}
	c.Redirect(http.StatusSeeOther, "/admin/messages")
}

// ShowAdminCategories lists categories with usage counts.
func (a *API) ShowAdminCategories(c *gin.Context) {
	a.renderAdminCategories(c, http.StatusOK, "")
}

// CreateCategory adds a category from the inline form.
func (a *API) CreateCategory(c *gin.Context) {
	_, err := a.categories.Create(c.PostForm("name"), c.PostForm("description"))
	if err != nil {
		if errors.Is(err, service.ErrCategoryInvalid) || errors.Is(err, service.ErrCategoryExists) {
			a.renderAdminCategories(c, http.StatusBadRequest, err.Error())
			return
		}
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to save category")
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/categories")
}

// DeleteCategory removes a category.
func (a *API) DeleteCategory(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err == nil {
		a.categories.Delete(id)
	}
	c.Redirect(http.StatusSeeOther, "/admin/categories")
}

func (a *API) renderAdminCategories(c *gin.Context, status int, errMessage string) {
	categories, err := a.categories.ListUsage()
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load categories")
		return
	}
	data := gin.H{
		"title":      "Categories",
		"categories": categories,
	}
	if errMessage != "" {
		data["error"] = errMessage
	}
	a.renderHTML(c, status, "admin_categories.html", data)
}

// ShowAdminTags lists tags with usage counts.
func (a *API) ShowAdminTags(c *gin.Context) {
	a.renderAdminTags(c, http.StatusOK, "")
}

// CreateTag adds a tag from the inline form. Existing names are reused
// silently.
func (a *API) CreateTag(c *gin.Context) {
	if _, err := a.tags.GetOrCreate(c.PostForm("name")); err != nil {
		if errors.Is(err, service.ErrTagInvalid) {
			a.renderAdminTags(c, http.StatusBadRequest, err.Error())
			return
		}
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to save tag")
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/tags")
}

// DeleteTag removes a tag.
func (a *API) DeleteTag(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err == nil {
		a.tags.Delete(id)
	}
	c.Redirect(http.StatusSeeOther, "/admin/tags")
}

func (a *API) renderAdminTags(c *gin.Context, status int, errMessage string) {
	tags, err := a.tags.ListUsage()
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load tags")
		return
	}
	data := gin.H{
		"title": "Tags",
		"tags":  tags,
	}
	if errMessage != "" {
		data["error"] = errMessage
	}
	a.renderHTML(c, status, "admin_tags.html", data)
}
