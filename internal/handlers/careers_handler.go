package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/codecraftpakistan/codecraft-site/internal/models"
	"github.com/codecraftpakistan/codecraft-site/internal/services"
	"github.com/codecraftpakistan/codecraft-site/internal/web"
	"github.com/codecraftpakistan/codecraft-site/pkg/metrics"
	"github.com/gin-gonic/gin"
)

const careersTitle = "Careers"

// CareersHandler renders the careers page and accepts its form posts
type CareersHandler struct {
	service services.ApplicationServiceInterface
	site    web.Site
	siteKey string
}

func NewCareersHandler(service services.ApplicationServiceInterface, site web.Site, recaptchaSiteKey string) *CareersHandler {
	return &CareersHandler{service: service, site: site, siteKey: recaptchaSiteKey}
}

func (h *CareersHandler) Show(c *gin.Context) {
	metrics.PageViews.WithLabelValues("careers").Inc()
	h.render(c, http.StatusOK, models.NewApplicationForm(), h.service.NewFormToken(), nil, nil)
}

// Submit handles the multipart form post. Only the resume's file name is
// read; its contents are never forwarded anywhere.
func (h *CareersHandler) Submit(c *gin.Context) {
	recordResumeFileName(c)

	form := models.NewApplicationForm()
	if err := c.ShouldBind(form); err != nil {
		attachError(c, err)
		errs := ParseValidationErrors(err)
		if len(errs) == 0 {
			h.render(c, http.StatusBadRequest, form, form.FormToken, nil,
				&web.Toast{Kind: web.ToastError, Text: "Invalid request"})
			return
		}
		h.render(c, http.StatusBadRequest, form, form.FormToken, fieldErrors(errs), nil)
		return
	}

	token := form.FormToken
	resp, err := h.service.SubmitApplication(c.Request.Context(), form)
	if err != nil {
		attachError(c, err)
		h.render(c, statusForError(err), form, token, nil,
			&web.Toast{Kind: web.ToastError, Text: services.FailurePrefix + messageForError(err)})
		return
	}

	if !resp.Success {
		h.render(c, http.StatusBadGateway, form, token, nil,
			&web.Toast{Kind: web.ToastError, Text: resp.Error})
		return
	}

	// The form has been reset; a new instance gets a new token
	h.render(c, http.StatusOK, form, h.service.NewFormToken(), nil,
		&web.Toast{Kind: web.ToastSuccess, Text: resp.Message})
}

func (h *CareersHandler) render(c *gin.Context, status int, form *models.ApplicationForm, token string, errs map[string]string, toast *web.Toast) {
	view := web.NewCareersView(form, token, h.siteKey)
	if errs != nil {
		view.Errors = errs
	}

	data := web.NewPageData(h.site, careersTitle, "/careers", view)
	data.Toast = toast
	c.HTML(status, web.PageCareers, data)
}

// recordResumeFileName replaces the remembered file name with the one just
// chosen, if any. Without a new file the hidden field keeps the previous name.
func recordResumeFileName(c *gin.Context) {
	header, err := c.FormFile("resume")
	if err != nil || header.Filename == "" || c.Request.MultipartForm == nil {
		return
	}
	c.Request.MultipartForm.Value["resumeFileName"] = []string{filepath.Base(header.Filename)}
}
