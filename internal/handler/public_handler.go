package handler

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/folio/internal/db"
	"github.com/folio/internal/service"
	"github.com/gin-gonic/gin"
)

func (a *API) resumePDFPath() string {
	root := a.webRoot
	if root == "" {
		root = "web"
	}
	return filepath.Join(root, "static", "resume.pdf")
}

// sectionView is one rendered section handed to templates.
type sectionView struct {
	ID      uint
	Key     string
	Title   string
	Content string
	HTML    template.HTML
	Visible bool
}

// postView decorates a post with its render-time read estimate.
type postView struct {
	db.Post
	ReadTime int
}

// resumeBlockView carries one resume block. Structured block types
// (header, experience, education) decode their JSON content into Data;
// everything else renders as markdown into HTML.
type resumeBlockView struct {
	ID          uint
	SectionType string
	Title       string
	Content     string
	HTML        template.HTML
	Data        map[string]interface{}
}

func postViews(posts []db.Post) []postView {
	views := make([]postView, 0, len(posts))
	for _, post := range posts {
		views = append(views, postView{Post: post, ReadTime: service.EstimateReadTime(post.Content)})
	}
	return views
}

func resumeBlockViews(blocks []db.ResumeSection) []resumeBlockView {
	views := make([]resumeBlockView, 0, len(blocks))
	for _, block := range blocks {
		view := resumeBlockView{
			ID:          block.ID,
			SectionType: block.SectionType,
			Title:       block.Title,
			Content:     block.Content,
		}

		switch block.SectionType {
		case "header", "experience", "education":
			var data map[string]interface{}
			if err := json.Unmarshal([]byte(block.Content), &data); err == nil {
				view.Data = data
				views = append(views, view)
				continue
			}
		}

		if html, err := service.RenderMarkdown(block.Content); err == nil {
			view.HTML = html
		}
		views = append(views, view)
	}
	return views
}

// pageSections loads a page's sections, seeding catalog defaults when
// needed, and renders each one for the template.
func (a *API) pageSections(page string) (map[string]sectionView, []sectionView, error) {
	sections, err := a.sections.GetSectionsForPage(page)
	if err != nil {
		return nil, nil, err
	}

	byKey := make(map[string]sectionView, len(sections))
	ordered := make([]sectionView, 0, len(sections))
	for i := range sections {
		view := sectionView{
			ID:      sections[i].ID,
			Key:     sections[i].SectionKey,
			Title:   sections[i].Title,
			Content: sections[i].Content,
			HTML:    a.sections.RenderSection(&sections[i]),
			Visible: sections[i].Visible,
		}
		byKey[view.Key] = view
		ordered = append(ordered, view)
	}
	return byKey, ordered, nil
}

func (a *API) renderErrorPage(c *gin.Context, status int, message string) {
	a.renderHTML(c, status, "error.html", gin.H{
		"title":   "Something went wrong",
		"status":  status,
		"message": message,
	})
}

// ShowHome renders the landing page: hero sections, latest posts and
// featured projects.
func (a *API) ShowHome(c *gin.Context) {
	sections, _, err := a.pageSections("home")
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load page content")
		return
	}

	posts, err := a.posts.ListPublished(service.PostFilter{Limit: 3})
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load posts")
		return
	}

	projects, err := a.projects.ListFeatured(2)
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load projects")
		return
	}

	a.renderHTML(c, http.StatusOK, "home.html", gin.H{
		"title":       "Home",
		"sections":    sections,
		"recentPosts": postViews(posts),
		"projects":    projects,
	})
}

// ShowAbout renders the about page.
func (a *API) ShowAbout(c *gin.Context) {
	a.showSectionPage(c, "about", "about.html")
}

// ShowNow renders the now page.
func (a *API) ShowNow(c *gin.Context) {
	a.showSectionPage(c, "now", "now.html")
}

// showSectionPage renders a page record overlaid with its editable
// sections.
func (a *API) showSectionPage(c *gin.Context, slug, tmpl string) {
	sections, ordered, err := a.pageSections(slug)
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load page content")
		return
	}

	data := gin.H{
		"sections":        sections,
		"orderedSections": ordered,
	}

	page, err := a.pages.GetPage(slug)
	if err != nil && !errors.Is(err, service.ErrPageNotFound) {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load page content")
		return
	}
	if page != nil {
		pageHTML, renderErr := service.RenderMarkdown(page.Content)
		if renderErr != nil {
			a.renderErrorPage(c, http.StatusInternalServerError, "failed to render page content")
			return
		}
		data["title"] = page.Title
		data["page"] = page
		data["pageHTML"] = pageHTML
		data["metaDescription"] = page.MetaDescription
	}

	a.renderHTML(c, http.StatusOK, tmpl, data)
}

// ShowResume renders the resume from its stored blocks.
func (a *API) ShowResume(c *gin.Context) {
	blocks, err := a.resume.GetResumeSections()
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load resume")
		return
	}

	a.renderHTML(c, http.StatusOK, "resume.html", gin.H{
		"title":  "Resume",
		"blocks": resumeBlockViews(blocks),
	})
}

// DownloadResume serves the uploaded resume PDF when present.
func (a *API) DownloadResume(c *gin.Context) {
	path := a.resumePDFPath()
	if _, err := os.Stat(path); err != nil {
		a.renderErrorPage(c, http.StatusNotFound, "Resume PDF not found")
		return
	}
	c.FileAttachment(path, "resume.pdf")
}

// ShowBlog lists all published posts with the sidebar taxonomy.
func (a *API) ShowBlog(c *gin.Context) {
	posts, err := a.posts.ListPublished(service.PostFilter{})
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load posts")
		return
	}

	tags, err := a.tags.PublishedUsage()
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load tags")
		return
	}

	categories, err := a.categories.PublishedUsage()
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load categories")
		return
	}

	a.renderBlogList(c, posts, gin.H{
		"allTags":       tags,
		"allCategories": categories,
	})
}

// ShowBlogArchiveYear lists published posts from one year.
func (a *API) ShowBlogArchiveYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.Redirect(http.StatusFound, "/blog")
		return
	}

	posts, err := a.posts.ListPublished(service.PostFilter{Year: year})
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load posts")
		return
	}

	a.renderBlogList(c, posts, gin.H{"archiveYear": year})
}

// ShowBlogArchiveMonth lists published posts from one month.
func (a *API) ShowBlogArchiveMonth(c *gin.Context) {
	year, yearErr := strconv.Atoi(c.Param("year"))
	month, monthErr := strconv.Atoi(c.Param("month"))
	if yearErr != nil || monthErr != nil || month < 1 || month > 12 {
		c.Redirect(http.StatusFound, "/blog")
		return
	}

	posts, err := a.posts.ListPublished(service.PostFilter{Year: year, Month: month})
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load posts")
		return
	}

	a.renderBlogList(c, posts, gin.H{
		"archiveYear":  year,
		"archiveMonth": month,
	})
}

// ShowBlogCategory lists published posts filed under a category.
func (a *API) ShowBlogCategory(c *gin.Context) {
	category, err := a.categories.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			c.Redirect(http.StatusFound, "/blog")
			return
		}
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load category")
		return
	}

	posts, err := a.posts.ListPublished(service.PostFilter{CategorySlug: category.Slug})
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load posts")
		return
	}

	a.renderBlogList(c, posts, gin.H{"category": category})
}

// ShowBlogTag lists published posts carrying a tag.
func (a *API) ShowBlogTag(c *gin.Context) {
	tag, err := a.tags.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrTagNotFound) {
			c.Redirect(http.StatusFound, "/blog")
			return
		}
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load tag")
		return
	}

	posts, err := a.posts.ListPublished(service.PostFilter{TagSlug: tag.Slug})
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load posts")
		return
	}

	a.renderBlogList(c, posts, gin.H{"tag": tag})
}

func (a *API) renderBlogList(c *gin.Context, posts []db.Post, data gin.H) {
	archives, err := a.posts.ListArchive()
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load archives")
		return
	}

	payload := gin.H{
		"title":    "Blog",
		"posts":    postViews(posts),
		"archives": archives,
	}
	for key, value := range data {
		payload[key] = value
	}
	a.renderHTML(c, http.StatusOK, "blog_list.html", payload)
}

// ShowBlogPost renders a single published post with approved comments.
func (a *API) ShowBlogPost(c *gin.Context) {
	post, err := a.posts.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.Redirect(http.StatusFound, "/blog")
			return
		}
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load post")
		return
	}

	content, err := service.RenderMarkdown(post.Content)
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to render post")
		return
	}

	comments, err := a.comments.ListApproved(post.ID)
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load comments")
		return
	}

	a.renderHTML(c, http.StatusOK, "blog_post.html", gin.H{
		"title":           post.Title,
		"post":            post,
		"content":         content,
		"readTime":        service.EstimateReadTime(post.Content),
		"comments":        comments,
		"metaDescription": post.Excerpt,
	})
}

// AddComment stores a pending comment and bounces back to the post.
func (a *API) AddComment(c *gin.Context) {
	slug := c.Param("slug")
	_, err := a.comments.Create(service.CommentInput{
		PostID:      a.lookupPostID(slug),
		AuthorName:  c.PostForm("author_name"),
		AuthorEmail: c.PostForm("author_email"),
		Content:     c.PostForm("content"),
	})
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.Redirect(http.StatusSeeOther, "/blog")
			return
		}
		// Validation failures land back on the form.
		c.Redirect(http.StatusSeeOther, "/blog/"+slug+"#comment-form")
		return
	}

	c.Redirect(http.StatusSeeOther, "/blog/"+slug+"#comments")
}

func (a *API) lookupPostID(slug string) uint {
	post, err := a.posts.GetBySlug(slug)
	if err != nil {
		return 0
	}
	return post.ID
}

// ShowProjects lists every project.
func (a *API) ShowProjects(c *gin.Context) {
	projects, err := a.projects.List()
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load projects")
		return
	}

	a.renderHTML(c, http.StatusOK, "projects.html", gin.H{
		"title":    "Projects",
		"projects": projects,
	})
}

// ShowProjectDetail renders one project with its markdown description.
func (a *API) ShowProjectDetail(c *gin.Context) {
	project, err := a.projects.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			c.Redirect(http.StatusFound, "/projects")
			return
		}
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load project")
		return
	}

	content, err := service.RenderMarkdown(project.Description)
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to render project")
		return
	}

	a.renderHTML(c, http.StatusOK, "project_detail.html", gin.H{
		"title":           project.Title,
		"project":         project,
		"content":         content,
		"metaDescription": project.ShortDescription,
	})
}

// ShowContact renders the contact form with a fresh captcha.
func (a *API) ShowContact(c *gin.Context) {
	a.renderContact(c, "", "")
}

// SubmitContact verifies the captcha, stores the message and notifies by
// mail. Mail failures are logged by the mailer and never fail the request.
func (a *API) SubmitContact(c *gin.Context) {
	token := c.PostForm("captcha_token")
	answer := c.PostForm("captcha_answer")
	if !a.captcha.Verify(token, answer) {
		a.renderContact(c, "CAPTCHA verification failed. Please try again.", "error")
		return
	}

	name := c.PostForm("name")
	email := c.PostForm("email")
	body := c.PostForm("message")
	if _, err := a.messages.Create(service.MessageInput{
		Name:    name,
		Email:   email,
		Message: body,
	}); err != nil {
		if errors.Is(err, service.ErrMessageInvalid) {
			a.renderContact(c, "Please fill in your name, a valid email and a message.", "error")
			return
		}
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to store message")
		return
	}

	owner, err := a.settings.Get(db.SettingKeySiteEmail)
	if err == nil && owner != "" {
		a.mailer.SendContactNotification(owner, name, email, body)
	}
	a.mailer.SendContactConfirmation(email, name)

	a.renderContact(c, "Thanks for your message! I'll get back to you soon.", "success")
}

func (a *API) renderContact(c *gin.Context, flash, flashType string) {
	sections, _, err := a.pageSections("contact")
	if err != nil {
		a.renderErrorPage(c, http.StatusInternalServerError, "failed to load page content")
		return
	}

	a.renderHTML(c, http.StatusOK, "contact.html", gin.H{
		"title":     "Contact",
		"sections":  sections,
		"captcha":   a.captcha.New(),
		"flash":     flash,
		"flashType": flashType,
	})
}

// GetCaptcha hands out a fresh challenge for the contact form.
func (a *API) GetCaptcha(c *gin.Context) {
	c.JSON(http.StatusOK, a.captcha.New())
}
