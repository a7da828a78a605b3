package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fyyur/internal/app/artists"
	"fyyur/internal/app/shows"
	"fyyur/internal/app/venues"
	"fyyur/internal/logging"
	"fyyur/internal/models"
	"fyyur/internal/schedule"
)

// recentLimit is how many new venues and artists the home page shows.
const recentLimit = 10

// VenueService describes the venue workflows behind the pages.
type VenueService interface {
	Directory(ctx context.Context) ([]schedule.Area, error)
	Recent(ctx context.Context, limit int) ([]models.Venue, error)
	Search(ctx context.Context, term string) (schedule.SearchResult, error)
	Get(ctx context.Context, id int64) (models.Venue, error)
	Detail(ctx context.Context, id int64) (venues.Detail, error)
	Create(ctx context.Context, venue models.Venue) (models.Venue, error)
	Update(ctx context.Context, id int64, venue models.Venue) (models.Venue, error)
	Delete(ctx context.Context, id int64) error
}

// ArtistService describes the artist workflows behind the pages.
type ArtistService interface {
	List(ctx context.Context) ([]models.Artist, error)
	Recent(ctx context.Context, limit int) ([]models.Artist, error)
	Search(ctx context.Context, term string) (schedule.SearchResult, error)
	Get(ctx context.Context, id int64) (models.Artist, error)
	Detail(ctx context.Context, id int64) (artists.Detail, error)
	Create(ctx context.Context, artist models.Artist) (models.Artist, error)
	Update(ctx context.Context, id int64, artist models.Artist) (models.Artist, error)
}

// ShowService describes show listing and booking.
type ShowService interface {
	List(ctx context.Context) ([]models.ShowDetail, error)
	Options(ctx context.Context) (shows.Options, error)
	Create(ctx context.Context, show models.Show) (models.Show, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	venues  VenueService
	artists ArtistService
	shows   ShowService
	flashes flasher
}

// New configures a Server. secret signs the flash cookie.
func New(venues VenueService, artists ArtistService, shows ShowService, secret []byte) *Server {
	return &Server{
		venues:  venues,
		artists: artists,
		shows:   shows,
		flashes: flasher{key: secret},
	}
}

// Routes exposes the page handlers.
func (s *Server) Routes() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	router.HandleFunc("/", s.handleHome).Methods(http.MethodGet)

	router.HandleFunc("/venues", s.handleListVenues).Methods(http.MethodGet)
	router.HandleFunc("/venues/search", s.handleSearchVenues).Methods(http.MethodPost)
	router.HandleFunc("/venues/create", s.handleNewVenue).Methods(http.MethodGet)
	router.HandleFunc("/venues/create", s.handleCreateVenue).Methods(http.MethodPost)
	router.HandleFunc("/venues/{id:[0-9]+}", s.handleShowVenue).Methods(http.MethodGet)
	router.HandleFunc("/venues/{id:[0-9]+}", s.handleDeleteVenue).Methods(http.MethodDelete)
	router.HandleFunc("/venues/{id:[0-9]+}/edit", s.handleEditVenue).Methods(http.MethodGet)
	router.HandleFunc("/venues/{id:[0-9]+}/edit", s.handleUpdateVenue).Methods(http.MethodPost)

	router.HandleFunc("/artists", s.handleListArtists).Methods(http.MethodGet)
	router.HandleFunc("/artists/search", s.handleSearchArtists).Methods(http.MethodPost)
	router.HandleFunc("/artists/create", s.handleNewArtist).Methods(http.MethodGet)
	router.HandleFunc("/artists/create", s.handleCreateArtist).Methods(http.MethodPost)
	router.HandleFunc("/artists/{id:[0-9]+}", s.handleShowArtist).Methods(http.MethodGet)
	router.HandleFunc("/artists/{id:[0-9]+}/edit", s.handleEditArtist).Methods(http.MethodGet)
	router.HandleFunc("/artists/{id:[0-9]+}/edit", s.handleUpdateArtist).Methods(http.MethodPost)

	router.HandleFunc("/shows", s.handleListShows).Methods(http.MethodGet)
	router.HandleFunc("/shows/create", s.handleNewShow).Methods(http.MethodGet)
	router.HandleFunc("/shows/create", s.handleCreateShow).Methods(http.MethodPost)

	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	router.NotFoundHandler = http.HandlerFunc(s.handleNotFound)

	return router
}

// ServerError renders the 500 page. It is the fallback for panic recovery.
func (s *Server) ServerError() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.render(w, r, http.StatusInternalServerError, "error", errorPage{
			Status:  http.StatusInternalServerError,
			Message: "Something went wrong on our end.",
		})
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, "error", errorPage{
		Status:  http.StatusNotFound,
		Message: "The page you were looking for does not exist.",
	})
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	recentVenues, err := s.venues.Recent(r.Context(), recentLimit)
	if err != nil {
		s.serverError(w, r, err, "load recent venues")
		return
	}
	recentArtists, err := s.artists.Recent(r.Context(), recentLimit)
	if err != nil {
		s.serverError(w, r, err, "load recent artists")
		return
	}

	s.render(w, r, http.StatusOK, "home", homePage{
		Venues:  recentVenues,
		Artists: recentArtists,
	})
}

// redirect flashes message and sends the browser to location.
func (s *Server) redirect(w http.ResponseWriter, r *http.Request, location, message string) {
	if message != "" {
		s.flashes.set(w, message)
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// serverError logs the cause and renders the 500 page.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	s.logError(r, err, msg)
	s.ServerError().ServeHTTP(w, r)
}

func (s *Server) logError(r *http.Request, err error, msg string) {
	logging.WithContext(r.Context()).Error().Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg(msg)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
