package web

import (
	"strings"

	"github.com/codecraftpakistan/codecraft-site/internal/models"
)

// Toast kinds
const (
	ToastSuccess = "success"
	ToastError   = "error"
)

// Toast is a one-shot banner shown above the page content
type Toast struct {
	Kind string
	Text string
}

// Site is the content every page's shell shares
type Site struct {
	Company string
	Header  []models.Link
	Footer  models.Footer
}

// NewSite builds the shared shell content
func NewSite(company, inbox string) Site {
	return Site{
		Company: company,
		Header:  models.HeaderLinks,
		Footer:  models.NewFooter(company, inbox),
	}
}

// PageData is what the layout executes against
type PageData struct {
	Title string
	Path  string
	Year  int
	Site  Site
	Toast *Toast
	Body  any
}

// NewPageData builds the layout data for the page at path
func NewPageData(site Site, title, path string, body any) *PageData {
	return &PageData{
		Title: title,
		Path:  path,
		Year:  models.CurrentYear(),
		Site:  site,
		Body:  body,
	}
}

// WithToast attaches a banner
func (p *PageData) WithToast(kind, text string) *PageData {
	p.Toast = &Toast{Kind: kind, Text: text}
	return p
}

// HomeView is the body of the home page
type HomeView struct {
	Location string
}

// InfoView is the body of a static informational page
type InfoView struct {
	Intro       string
	LastUpdated string
}

// CareersView is the body of the careers page
type CareersView struct {
	Form             *models.ApplicationForm
	Roles            []string
	CountryCodes     []models.CountryCode
	Accept           string
	FormToken        string
	RecaptchaSiteKey string
	// Errors maps form field names to a message
	Errors map[string]string
}

// NewCareersView builds the careers page body for form
func NewCareersView(form *models.ApplicationForm, formToken, siteKey string) *CareersView {
	return &CareersView{
		Form:             form,
		Roles:            models.JobRoles,
		CountryCodes:     models.CountryCodes,
		Accept:           strings.Join(models.ResumeExtensions, ","),
		FormToken:        formToken,
		RecaptchaSiteKey: siteKey,
		Errors:           map[string]string{},
	}
}
