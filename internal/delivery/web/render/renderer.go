// Package render turns page data into HTML with the embedded templates.
package render

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"whisper/internal/domain/entity"
	"whisper/internal/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names.
const (
	PageHome     = "home.html"
	PageLogin    = "login.html"
	PageRegister = "register.html"
	PageSecrets  = "secrets.html"
	PageSubmit   = "submit.html"
	PageError    = "error.html"
)

var pages = []string{PageHome, PageLogin, PageRegister, PageSecrets, PageSubmit, PageError}

// Page is the data every template receives. Fields a page does not use stay zero.
type Page struct {
	User     *entity.User
	Flashes  []string
	Error    string
	Username string
	Users    []*entity.User
	Status   int
	Message  string
}

// Renderer implements echo.Renderer.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the layout once and clones it per page so that each page's
// "content" block stays separate.
func New() (*Renderer, error) {
	layout, err := template.New("layout.html").ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse layout")
	}

	parsed := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := layout.Clone()
		if err != nil {
			return nil, errors.Wrapf(err, "clone layout for %s", page)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+page); err != nil {
			return nil, errors.Wrapf(err, "parse %s", page)
		}
		parsed[page] = t
	}

	return &Renderer{pages: parsed}, nil
}

// Render executes the named page inside the layout.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return errors.Errorf("template %s not found", name)
	}

	return errors.WithStack(t.ExecuteTemplate(w, "layout", data))
}
