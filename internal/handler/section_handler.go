package handler

import (
	"errors"
	"net/http"

	"github.com/folio/internal/db"
	"github.com/folio/internal/service"
	"github.com/gin-gonic/gin"
)

// sectionPayload is the JSON shape the inline editor works with.
type sectionPayload struct {
	ID         uint   `json:"id"`
	Page       string `json:"page"`
	SectionKey string `json:"section_key"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Visible    bool   `json:"visible"`
	Order      int    `json:"order"`
}

func sectionToPayload(section *db.Section) sectionPayload {
	return sectionPayload{
		ID:         section.ID,
		Page:       section.Page,
		SectionKey: section.SectionKey,
		Title:      section.Title,
		Content:    section.Content,
		Visible:    section.Visible,
		Order:      section.SortOrder,
	}
}

// GetSection returns one editable section, creating it from the defaults
// catalog when it does not exist yet.
func (a *API) GetSection(c *gin.Context) {
	section, err := a.sections.GetOrCreateSection(c.Param("page"), c.Param("key"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load section")
		return
	}
	c.JSON(http.StatusOK, sectionToPayload(section))
}

// UpdateSection saves inline edits and returns the rendered HTML so the
// editor can swap it in without a reload.
func (a *API) UpdateSection(c *gin.Context) {
	var req struct {
		Content string  `json:"content"`
		Title   *string `json:"title"`
	}
	if !bindJSON(c, &req, "invalid request body") {
		return
	}

	page, key := c.Param("page"), c.Param("key")
	section, err := a.sections.UpdateSection(page, key, req.Content, req.Title)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to update section")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"html":        a.sections.RenderSection(section),
		"section_key": key,
	})
}

// CreateSection adds a custom section to a page.
func (a *API) CreateSection(c *gin.Context) {
	var req struct {
		Page       string `json:"page"`
		SectionKey string `json:"section_key"`
		Title      string `json:"title"`
		Content    string `json:"content"`
		Order      *int   `json:"order"`
	}
	if !bindJSON(c, &req, "invalid request body") {
		return
	}

	order := 99
	if req.Order != nil {
		order = *req.Order
	}

	section, err := a.sections.CreateSection(service.SectionInput{
		Page:       req.Page,
		SectionKey: req.SectionKey,
		Title:      req.Title,
		Content:    req.Content,
		SortOrder:  order,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSectionInvalid):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrSectionExists):
			respondError(c, http.StatusBadRequest, "Section already exists")
		default:
			respondError(c, http.StatusInternalServerError, "failed to create section")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"section": gin.H{
			"id":          section.ID,
			"page":        section.Page,
			"section_key": section.SectionKey,
			"title":       section.Title,
			"html":        a.sections.RenderSection(section),
		},
	})
}

// DeleteSection removes a section by id.
func (a *API) DeleteSection(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	deleted, err := a.sections.DeleteSection(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete section")
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "Section not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListSections returns the stored sections of a page for the editor's
// section picker. It never seeds defaults.
func (a *API) ListSections(c *gin.Context) {
	sections, err := a.sections.GetPageSections(c.Param("page"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list sections")
		return
	}

	items := make([]gin.H, 0, len(sections))
	for _, section := range sections {
		items = append(items, gin.H{
			"id":          section.ID,
			"section_key": section.SectionKey,
			"title":       section.Title,
			"order":       section.SortOrder,
			"visible":     section.Visible,
		})
	}
	c.JSON(http.StatusOK, gin.H{"sections": items})
}

// PreviewMarkdown renders markdown for the editor's live preview pane.
func (a *API) PreviewMarkdown(c *gin.Context) {
	var req struct {
		Content string `json:"content"`
	}
	if !bindJSON(c, &req, "invalid request body") {
		return
	}

	html, err := service.RenderMarkdown(req.Content)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to render markdown")
		return
	}
	c.JSON(http.StatusOK, gin.H{"html": html})
}
