package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/amp-job-portal/internal/services"
)

type HealthHandler struct {
	LLMService   *services.LLMService
	EmailService *services.EmailService
}

func NewHealthHandler(llm *services.LLMService, email *services.EmailService) *HealthHandler {
	return &HealthHandler{LLMService: llm, EmailService: email}
}

// HealthCheck is GET /health. It also reports which integrations are live.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	textGen := "gemini"
	if h.LLMService.MockMode() {
		textGen = "mock"
	}
	email := "disabled"
	if h.EmailService.Enabled() {
		email = "gmail"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"text_generation": textGen,
		"email":           email,
	})
}
