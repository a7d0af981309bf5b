package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/amp-job-portal/internal/dtos"
	"github.com/justsurfingit/amp-job-portal/internal/services"
)

// AIHandler fronts the text generation gateway. Generation never fails at
// this level: the service answers with a fallback message instead.
type AIHandler struct {
	LLMService *services.LLMService
}

func NewAIHandler(llm *services.LLMService) *AIHandler {
	return &AIHandler{LLMService: llm}
}

func (h *AIHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/resume", h.Resume)
	rg.POST("/interview-tips", h.InterviewTips)
	rg.POST("/blog-draft", h.BlogDraft)
	rg.POST("/email", h.EmailDraft)
}

func (h *AIHandler) Resume(c *gin.Context) {
	var req dtos.ResumeRequest
	if !bindJSON(c, &req) {
		return
	}
	h.respondText(c, h.LLMService.GenerateResumeContent(c.Request.Context(), req.ToProfile()))
}

func (h *AIHandler) InterviewTips(c *gin.Context) {
	var req dtos.InterviewTipsRequest
	if !bindJSON(c, &req) {
		return
	}
	h.respondText(c, h.LLMService.GenerateInterviewTips(c.Request.Context(), req.Role))
}

func (h *AIHandler) BlogDraft(c *gin.Context) {
	var req dtos.BlogDraftRequest
	if !bindJSON(c, &req) {
		return
	}
	h.respondText(c, h.LLMService.DraftBlogPost(c.Request.Context(), req.Topic))
}

func (h *AIHandler) EmailDraft(c *gin.Context) {
	var req dtos.EmailDraftRequest
	if !bindJSON(c, &req) {
		return
	}
	h.respondText(c, h.LLMService.GenerateEmailTemplate(c.Request.Context(), req.JobTitle, req.CandidateName))
}

func (h *AIHandler) respondText(c *gin.Context, text string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"mock":    h.LLMService.MockMode(),
		"text":    text,
	})
}
