package httpapi

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"fyyur/internal/forms"
	"fyyur/internal/models"
	"fyyur/internal/schedule"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var embeddedStatic embed.FS

var staticFS = mustSub(embeddedStatic, "static")

var pageNames = []string{
	"home", "error", "search",
	"venues", "venue", "venue_form",
	"artists", "artist", "artist_form",
	"shows", "show_form",
}

var templateFuncs = template.FuncMap{
	"allGenres": func() []models.Genre { return models.AllGenres },
	"usStates":  func() []string { return forms.USStates },
	"startTime": func(t time.Time) string { return schedule.FormatStart(t) },
	"join": func(genres []models.Genre) string {
		return strings.Join(models.GenreStrings(genres), ", ")
	},
}

var pages = parsePages()

func parsePages() map[string]*template.Template {
	parsed := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		parsed[name] = template.Must(template.New(name).Funcs(templateFuncs).ParseFS(
			templateFS, "templates/layout.html", "templates/"+name+".html",
		))
	}
	return parsed
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// view is what every page template receives.
type view struct {
	Flashes []string
	Page    any
}

type homePage struct {
	Venues  []models.Venue
	Artists []models.Artist
}

type errorPage struct {
	Status  int
	Message string
}

type searchPage struct {
	Kind   string // "venues" or "artists"
	Term   string
	Result schedule.SearchResult
}

// render executes page into a buffer first so a template failure never
// leaves a half-written response. Pending flashes are consumed; extra
// messages are shown alongside them.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page string, data any, extra ...string) {
	tmpl, ok := pages[page]
	if !ok {
		s.logError(r, fmt.Errorf("unknown page %q", page), "render page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	flashes := append(s.flashes.pop(w, r), extra...)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", view{Flashes: flashes, Page: data}); err != nil {
		s.logError(r, err, "render page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
