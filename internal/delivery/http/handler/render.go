package handler

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{
	"doctors.html",
	"appointment.html",
	"bookings.html",
	"profile.html",
	"profile_edit.html",
	"login.html",
}

// PageData is the envelope every template receives.
type PageData struct {
	Title    string
	LoggedIn bool
	Flash    *Flash
	Data     any
}

// Renderer executes the embedded page templates. Each page is parsed
// together with the shared layout into its own template set.
type Renderer struct {
	pages map[string]*template.Template
	log   *logrus.Logger
}

func NewRenderer(log *logrus.Logger) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages, log: log}, nil
}

func (r *Renderer) Render(w http.ResponseWriter, page string, data *PageData) {
	t, ok := r.pages[page]
	if !ok {
		r.log.Errorf("Unknown template %q", page)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		r.log.Errorf("Render %s failed: %v", page, err)
	}
}
