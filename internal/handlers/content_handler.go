package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/amp-job-portal/internal/dtos"
	apperrors "github.com/justsurfingit/amp-job-portal/internal/errors"
	"github.com/justsurfingit/amp-job-portal/internal/models"
	"github.com/justsurfingit/amp-job-portal/internal/services"
	"github.com/justsurfingit/amp-job-portal/internal/store"
)

// ContentHandler serves events, blogs and the admin content pages.
type ContentHandler struct {
	Store          *store.Store
	ContentService *services.ContentService
	EmailService   *services.EmailService
	guard          *StoreGuard
	now            func() time.Time
}

func NewContentHandler(st *store.Store, content *services.ContentService, email *services.EmailService, guard *StoreGuard) *ContentHandler {
	return &ContentHandler{
		Store:          st,
		ContentService: content,
		EmailService:   email,
		guard:          guard,
		now:            time.Now,
	}
}

func (h *ContentHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/events", h.ListEvents)
	rg.POST("/events", h.CreateEvent)

	rg.GET("/blogs", h.ListBlogs)
	rg.POST("/blogs", h.PublishBlog)

	rg.GET("/templates", h.ListTemplates)
	rg.POST("/templates", h.CreateTemplate)
	rg.DELETE("/templates/:id", h.DeleteTemplate)

	rg.GET("/stories", h.ListStories)
	rg.POST("/stories", h.CreateStory)
	rg.PUT("/stories/:id", h.UpdateStory)
	rg.DELETE("/stories/:id", h.DeleteStory)

	rg.GET("/gallery", h.ListGallery)
	rg.POST("/gallery", h.CreateGalleryItem)
	rg.DELETE("/gallery/:id", h.DeleteGalleryItem)

	rg.GET("/banners", h.ListBanners)
	rg.PUT("/banners/:id", h.UpdateBanner)
}

// ListEvents is GET /events?when=UPCOMING|PAST|ALL, upcoming by default.
func (h *ContentHandler) ListEvents(c *gin.Context) {
	events, err := h.ContentService.EventsFor(services.EventWindow(c.Query("when")), h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *ContentHandler) CreateEvent(c *gin.Context) {
	var req dtos.EventRequest
	if !bindJSON(c, &req) {
		return
	}
	ev, err := h.ContentService.AddEvent(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ev)
}

func (h *ContentHandler) ListBlogs(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Blogs())
}

func (h *ContentHandler) PublishBlog(c *gin.Context) {
	var req dtos.BlogRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.ContentService.PublishBlog(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *ContentHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.EmailTemplates())
}

func (h *ContentHandler) CreateTemplate(c *gin.Context) {
	var req dtos.EmailTemplateRequest
	if !bindJSON(c, &req) {
		return
	}
	out, tpl, err := h.ContentService.AddTemplate(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	if out.Kind != services.OutcomeDone {
		respondOutcome(c, http.StatusCreated, out, nil)
		return
	}
	respondOutcome(c, http.StatusCreated, out, tpl)
}

// DeleteTemplate is DELETE /templates/:id?confirm=true. Without confirm it
// only asks for confirmation.
func (h *ContentHandler) DeleteTemplate(c *gin.Context) {
	out, err := h.ContentService.DeleteTemplate(c.Param("id"), confirmed(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOutcome(c, http.StatusOK, out, nil)
}

// SendTemplate is POST /templates/:id/send. The template is read under the
// store guard; the Gmail call runs after it is released.
func (h *ContentHandler) SendTemplate(c *gin.Context) {
	var req dtos.SendTemplateRequest
	if !bindJSON(c, &req) {
		return
	}

	var (
		tpl models.EmailTemplate
		ok  bool
	)
	h.guard.Do(func() {
		tpl, ok = h.Store.EmailTemplate(c.Param("id"))
	})
	if !ok {
		respondError(c, apperrors.NotFound("email template "+c.Param("id"), nil))
		return
	}

	subject, body := services.RenderTemplate(tpl, req.Values)
	id, err := h.EmailService.SendToHR(c.Request.Context(), req.To, subject, body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message_id": id, "subject": subject})
}

func (h *ContentHandler) ListStories(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.SuccessStories())
}

func (h *ContentHandler) CreateStory(c *gin.Context) {
	var req dtos.SuccessStoryRequest
	if !bindJSON(c, &req) {
		return
	}
	st, err := h.ContentService.AddStory(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

func (h *ContentHandler) UpdateStory(c *gin.Context) {
	var req dtos.SuccessStoryRequest
	if !bindJSON(c, &req) {
		return
	}
	st, err := h.ContentService.UpdateStory(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *ContentHandler) DeleteStory(c *gin.Context) {
	out, err := h.ContentService.DeleteStory(c.Param("id"), confirmed(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOutcome(c, http.StatusOK, out, nil)
}

func (h *ContentHandler) ListGallery(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Gallery())
}

func (h *ContentHandler) CreateGalleryItem(c *gin.Context) {
	var req dtos.GalleryItemRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.ContentService.AddGalleryItem(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ContentHandler) DeleteGalleryItem(c *gin.Context) {
	out, err := h.ContentService.DeleteGalleryItem(c.Param("id"), confirmed(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOutcome(c, http.StatusOK, out, nil)
}

func (h *ContentHandler) ListBanners(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Banners())
}

// UpdateBanner is PUT /banners/:id. Unknown banners are left alone.
func (h *ContentHandler) UpdateBanner(c *gin.Context) {
	var req dtos.BannerRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.ContentService.UpdateBanner(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
