package web

import (
	"net/http/httptest"
	"testing"

	"github.com/codecraftpakistan/codecraft-site/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderPage(t *testing.T, r *Renderer, name string, data *PageData) string {
	t.Helper()
	w := httptest.NewRecorder()
	require.NoError(t, r.Instance(name, data).Render(w))
	return w.Body.String()
}

func testSite() Site {
	return NewSite("Code Craft Pakistan", "codecraftpakistan@gmail.com")
}

func TestRenderer_InfoPageShell(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	data := NewPageData(testSite(), "Privacy Policy", "/privacy-policy", &InfoView{
		Intro:       "Your privacy is important to us.",
		LastUpdated: "January 2025",
	})
	html := renderPage(t, r, PageInfo, data)

	assert.Contains(t, html, "<title>Privacy Policy | Code Craft Pakistan</title>")
	assert.Contains(t, html, "Your privacy is important to us.")
	assert.Contains(t, html, "Last Updated: January 2025")
	assert.Contains(t, html, "Transforming ideas into powerful digital solutions.")
	assert.Contains(t, html, `href="/#about"`)
	assert.Contains(t, html, `href="/terms-of-service"`)
	assert.Contains(t, html, `href="mailto:codecraftpakistan@gmail.com"`)
	assert.Contains(t, html, "All rights reserved.")
}

func TestRenderer_InfoPageWithoutDate(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	data := NewPageData(testSite(), "Cookie Policy", "/cookie-policy", &InfoView{Intro: "We use cookies."})
	html := renderPage(t, r, PageInfo, data)

	assert.NotContains(t, html, "Last Updated")
}

func TestRenderer_HomeKeepsAnchorsLocal(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	html := renderPage(t, r, PageHome, NewPageData(testSite(), "Home", "/", &HomeView{Location: "Peshawar"}))

	assert.Contains(t, html, `href="#about"`)
	assert.Contains(t, html, `id="services"`)
}

func TestRenderer_CareersEchoesForm(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	form := &models.ApplicationForm{
		Name:           "Ayesha Khan",
		ContactNumber:  "3001234567",
		CountryCode:    "+44",
		Email:          "ayesha@example.com",
		Role:           "Backend Engineer",
		ResumeFileName: "resume.pdf",
	}
	view := NewCareersView(form, "token-123", "")
	view.Errors["Email"] = "Invalid email format"
	data := NewPageData(testSite(), "Careers", "/careers", view).WithToast(ToastError, "Failed to submit application: template not found")

	html := renderPage(t, r, PageCareers, data)

	assert.Contains(t, html, `value="Ayesha Khan"`)
	assert.Contains(t, html, `<option value="&#43;44" selected>`)
	assert.Contains(t, html, `<option value="Backend Engineer" selected>`)
	assert.Contains(t, html, `name="resumeFileName" value="resume.pdf"`)
	assert.Contains(t, html, `name="formToken" value="token-123"`)
	assert.Contains(t, html, `accept=".pdf,.doc,.docx"`)
	assert.Contains(t, html, "Invalid email format")
	assert.Contains(t, html, "Failed to submit application: template not found")
	assert.Contains(t, html, `class="toast toast-error"`)
	assert.NotContains(t, html, "g-recaptcha")
}

func TestRenderer_CareersFreshForm(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	view := NewCareersView(models.NewApplicationForm(), "token-123", "site-key")
	html := renderPage(t, r, PageCareers, NewPageData(testSite(), "Careers", "/careers", view))

	assert.Contains(t, html, `<option value="&#43;92" selected>`)
	assert.Contains(t, html, "No file chosen")
	assert.Contains(t, html, `data-sitekey="site-key"`)
	assert.NotContains(t, html, "toast")
}

func TestRenderer_UnknownPageFallsBack(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	html := renderPage(t, r, "missing", NewPageData(testSite(), "Not Found", "/missing", nil))

	assert.Contains(t, html, "Page not found")
}
