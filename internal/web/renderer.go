// Package web holds the site's embedded templates and static assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/codecraftpakistan/codecraft-site/internal/models"
	"github.com/gin-gonic/gin/render"
)

//go:embed templates static
var assets embed.FS

// Page names accepted by the renderer
const (
	PageHome     = "home"
	PageCareers  = "careers"
	PageInfo     = "info"
	PageNotFound = "notfound"
)

var pageNames = []string{PageHome, PageCareers, PageInfo, PageNotFound}

var funcs = template.FuncMap{
	"resolve": func(l models.Link, currentPath string) string {
		return l.Resolve(currentPath)
	},
}

// Renderer is a gin HTMLRender with one template set per page. Every set
// shares the layout and partials and executes "layout".
type Renderer struct {
	pages map[string]*template.Template
}

var _ render.HTMLRender = (*Renderer)(nil)

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	base, err := template.New("base").Funcs(funcs).ParseFS(assets, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		set, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone layout for %s: %w", name, err)
		}
		if _, err := set.ParseFS(assets, "templates/pages/"+name+".html"); err != nil {
			return nil, fmt.Errorf("failed to parse page %s: %w", name, err)
		}
		pages[name] = set
	}

	return &Renderer{pages: pages}, nil
}

// Instance implements render.HTMLRender. Unknown names render the not-found page.
func (r *Renderer) Instance(name string, data any) render.Render {
	set, ok := r.pages[name]
	if !ok {
		set = r.pages[PageNotFound]
	}
	return render.HTML{
		Template: set,
		Name:     "layout",
		Data:     data,
	}
}

// StaticFS serves the embedded stylesheet and scripts
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
