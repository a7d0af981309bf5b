package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/amp-job-portal/internal/dtos"
	apperrors "github.com/justsurfingit/amp-job-portal/internal/errors"
	"github.com/justsurfingit/amp-job-portal/internal/models"
	"github.com/justsurfingit/amp-job-portal/internal/store"
)

// SessionHandler exposes the mock login. No credentials are checked.
type SessionHandler struct {
	Store *store.Store
}

func NewSessionHandler(st *store.Store) *SessionHandler {
	return &SessionHandler{Store: st}
}

func (h *SessionHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/session", h.Login)
	rg.GET("/session", h.Current)
	rg.DELETE("/session", h.Logout)
}

func (h *SessionHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	c.JSON(http.StatusCreated, h.Store.Login(models.ParseRole(req.Role)))
}

func (h *SessionHandler) Current(c *gin.Context) {
	sess, ok := h.Store.CurrentSession()
	if !ok {
		respondError(c, apperrors.NotFound("no active session", nil))
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (h *SessionHandler) Logout(c *gin.Context) {
	h.Store.Logout()
	c.Status(http.StatusNoContent)
}
