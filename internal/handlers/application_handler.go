package handlers

import (
	"net/http"

	"github.com/codecraftpakistan/codecraft-site/internal/models"
	"github.com/codecraftpakistan/codecraft-site/internal/services"
	"github.com/gin-gonic/gin"
)

// ApplicationHandler serves the careers workflow as a JSON API
type ApplicationHandler struct {
	service services.ApplicationServiceInterface
	siteKey string
}

func NewApplicationHandler(service services.ApplicationServiceInterface, recaptchaSiteKey string) *ApplicationHandler {
	return &ApplicationHandler{service: service, siteKey: recaptchaSiteKey}
}

// GetForm returns the form's options together with a fresh form token
func (h *ApplicationHandler) GetForm(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.FormSchema(h.siteKey))
}

func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	form := models.NewApplicationForm()
	if err := c.ShouldBindJSON(form); err != nil {
		details := ParseValidationErrors(err)
		if len(details) == 0 {
			respondError(c, http.StatusBadRequest, "Invalid request", err)
			return
		}
		respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed", details, err)
		return
	}

	resp, err := h.service.SubmitApplication(c.Request.Context(), form)
	if err != nil {
		respondError(c, statusForError(err), messageForError(err), err)
		return
	}

	if !resp.Success {
		c.JSON(http.StatusBadGateway, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
