package handlers

import (
	"net/http"
	"strings"

	"github.com/codecraftpakistan/codecraft-site/internal/models"
	"github.com/codecraftpakistan/codecraft-site/internal/web"
	"github.com/codecraftpakistan/codecraft-site/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// PagesHandler renders the static pages of the site
type PagesHandler struct {
	site        web.Site
	location    string
	lastUpdated string
}

func NewPagesHandler(site web.Site, location, legalLastUpdated string) *PagesHandler {
	return &PagesHandler{site: site, location: location, lastUpdated: legalLastUpdated}
}

func (h *PagesHandler) Home(c *gin.Context) {
	metrics.PageViews.WithLabelValues("home").Inc()
	c.HTML(http.StatusOK, web.PageHome, web.NewPageData(h.site, "Home", "/", &web.HomeView{Location: h.location}))
}

// Info returns the handler for one static informational page
func (h *PagesHandler) Info(page models.InfoPage) gin.HandlerFunc {
	view := &web.InfoView{Intro: page.Intro}
	if page.ShowLastUpdated {
		view.LastUpdated = h.lastUpdated
	}
	label := strings.TrimPrefix(page.Path, "/")

	return func(c *gin.Context) {
		metrics.PageViews.WithLabelValues(label).Inc()
		c.HTML(http.StatusOK, web.PageInfo, web.NewPageData(h.site, page.Title, page.Path, view))
	}
}

// NotFound answers API paths with JSON and everything else with the site's 404 page
func (h *PagesHandler) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.HTML(http.StatusNotFound, web.PageNotFound, web.NewPageData(h.site, "Page not found", c.Request.URL.Path, nil))
}
