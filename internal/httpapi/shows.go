package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"fyyur/internal/app/shows"
	"fyyur/internal/forms"
	"fyyur/internal/models"
	"fyyur/internal/store"
)

type showsPage struct {
	Shows []models.ShowDetail
}

type showFormPage struct {
	Options shows.Options
	Form    forms.ShowForm
	Errors  forms.FieldErrors
}

func (s *Server) handleListShows(w http.ResponseWriter, r *http.Request) {
	list, err := s.shows.List(r.Context())
	if err != nil {
		s.serverError(w, r, err, "list shows")
		return
	}

	s.render(w, r, http.StatusOK, "shows", showsPage{Shows: list})
}

func (s *Server) handleNewShow(w http.ResponseWriter, r *http.Request) {
	opts, err := s.shows.Options(r.Context())
	if err != nil {
		s.serverError(w, r, err, "load show options")
		return
	}

	s.render(w, r, http.StatusOK, "show_form", showFormPage{Options: opts})
}

func (s *Server) handleCreateShow(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.redirect(w, r, "/shows/create", "Could not read the show form.")
		return
	}

	form, errs := forms.BindShow(r.PostForm)
	if len(errs) > 0 {
		s.renderShowForm(w, r, http.StatusBadRequest, form, errs, errs.Message())
		return
	}

	show := form.Show()
	_, err := s.shows.Create(r.Context(), show)
	switch {
	case err == nil:
		s.redirect(w, r, "/", "Show was successfully listed!")
	case errors.Is(err, store.ErrArtistNotFound):
		s.renderShowForm(w, r, http.StatusBadRequest, form, nil, fmt.Sprintf("Artist %d was not found", show.ArtistID))
	case errors.Is(err, store.ErrVenueNotFound):
		s.renderShowForm(w, r, http.StatusBadRequest, form, nil, fmt.Sprintf("Venue %d was not found", show.VenueID))
	default:
		s.logError(r, err, "create show")
		s.redirect(w, r, "/", "An error occurred. Show could not be listed.")
	}
}

func (s *Server) renderShowForm(w http.ResponseWriter, r *http.Request, status int, form forms.ShowForm, errs forms.FieldErrors, message string) {
	opts, err := s.shows.Options(r.Context())
	if err != nil {
		s.serverError(w, r, err, "load show options")
		return
	}

	s.render(w, r, status, "show_form", showFormPage{Options: opts, Form: form, Errors: errs}, message)
}
