package handler

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path"

	"github.com/labstack/echo/v4"

	"github.com/workbridge/client/internal/api/middleware"
	"github.com/workbridge/client/internal/core/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutTemplate = "templates/layout.html"

// Renderer renders pages; each page is parsed together with the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every embedded page. It panics on malformed templates,
// which can only happen at build time.
func NewRenderer() *Renderer {
	names, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		panic(err)
	}
	r := &Renderer{pages: make(map[string]*template.Template, len(names))}
	for _, name := range names {
		if name == layoutTemplate {
			continue
		}
		t := template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, layoutTemplate, name))
		r.pages[path.Base(name)] = t
	}
	return r
}

// Render satisfies echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

var funcs = template.FuncMap{
	"avatar": func(username string) string {
		return "https://ui-avatars.com/api/?name=" + template.URLQueryEscaper(username) + "&background=5f98e2&color=fff"
	},
	"orNotSet": func(s string) string {
		if s == "" {
			return "Not set - Click Edit to add"
		}
		return s
	},
}

// page is the data every template receives. Data holds the page-specific part.
type page struct {
	Title  string
	User   *domain.Account
	Notice string
	Error  string
	Data   any
}

func newPage(c echo.Context, title string, data any) page {
	return page{
		Title:  title,
		User:   middleware.AccountFrom(c),
		Notice: notices[c.QueryParam("notice")],
		Data:   data,
	}
}

// notices are the one-shot messages shown after a redirect.
var notices = map[string]string{
	"account-created": "Account created successfully! Now let's set up your profile...",
	"logged-in":       "Login successful!",
	"logged-out":      "You have been logged out.",
	"profile-updated": "Profile updated successfully!",
	"applied":         "Application submitted successfully!",
}

// RenderError renders the error page with msg as its heading.
func RenderError(c echo.Context, code int, msg string) error {
	return c.Render(code, "error.html", newPage(c, http.StatusText(code), msg))
}
