package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"fyyur/internal/app/artists"
	"fyyur/internal/forms"
	"fyyur/internal/models"
	"fyyur/internal/store"
)

type artistsPage struct {
	Artists []models.Artist
}

type artistPage struct {
	artists.Detail
}

type artistFormPage struct {
	Title  string
	Action string
	Form   forms.ArtistForm
	Errors forms.FieldErrors
}

func (s *Server) handleListArtists(w http.ResponseWriter, r *http.Request) {
	list, err := s.artists.List(r.Context())
	if err != nil {
		s.serverError(w, r, err, "list artists")
		return
	}

	s.render(w, r, http.StatusOK, "artists", artistsPage{Artists: list})
}

func (s *Server) handleSearchArtists(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.redirect(w, r, "/artists", "Could not read the search form.")
		return
	}

	term := r.PostForm.Get("search_term")
	result, err := s.artists.Search(r.Context(), term)
	if err != nil {
		s.serverError(w, r, err, "search artists")
		return
	}

	s.render(w, r, http.StatusOK, "search", searchPage{Kind: "artists", Term: term, Result: result})
}

func (s *Server) handleShowArtist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.handleNotFound(w, r)
		return
	}

	detail, err := s.artists.Detail(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrArtistNotFound) {
			s.redirect(w, r, "/", fmt.Sprintf("Artist %d was not found", id))
			return
		}
		s.serverError(w, r, err, "load artist")
		return
	}

	s.render(w, r, http.StatusOK, "artist", artistPage{Detail: detail})
}

func (s *Server) handleNewArtist(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "artist_form", artistFormPage{
		Title:  "List a new artist",
		Action: "/artists/create",
	})
}

func (s *Server) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.redirect(w, r, "/artists/create", "Could not read the artist form.")
		return
	}

	page := artistFormPage{Title: "List a new artist", Action: "/artists/create"}
	form, errs := forms.BindArtist(r.PostForm)
	page.Form = form
	if len(errs) > 0 {
		page.Errors = errs
		s.render(w, r, http.StatusBadRequest, "artist_form", page, errs.Message())
		return
	}

	created, err := s.artists.Create(r.Context(), form.Artist())
	switch {
	case err == nil:
		s.redirect(w, r, "/", fmt.Sprintf("Artist %s was successfully listed!", created.Name))
	case errors.Is(err, store.ErrArtistExists):
		s.render(w, r, http.StatusConflict, "artist_form", page, fmt.Sprintf("Artist %s already exists", form.Name))
	default:
		s.logError(r, err, "create artist")
		s.redirect(w, r, "/", fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
	}
}

func (s *Server) handleEditArtist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.handleNotFound(w, r)
		return
	}

	artist, err := s.artists.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrArtistNotFound) {
			s.redirect(w, r, "/", fmt.Sprintf("Artist %d was not found", id))
			return
		}
		s.serverError(w, r, err, "load artist for edit")
		return
	}

	s.render(w, r, http.StatusOK, "artist_form", artistFormPage{
		Title:  "Edit artist " + artist.Name,
		Action: fmt.Sprintf("/artists/%d/edit", id),
		Form:   forms.ArtistFormFrom(artist),
	})
}

func (s *Server) handleUpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.handleNotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.redirect(w, r, fmt.Sprintf("/artists/%d/edit", id), "Could not read the artist form.")
		return
	}

	form, errs := forms.BindArtist(r.PostForm)
	page := artistFormPage{
		Title:  "Edit artist " + form.Name,
		Action: fmt.Sprintf("/artists/%d/edit", id),
		Form:   form,
	}
	if len(errs) > 0 {
		page.Errors = errs
		s.render(w, r, http.StatusBadRequest, "artist_form", page, errs.Message())
		return
	}

	updated, err := s.artists.Update(r.Context(), id, form.Artist())
	switch {
	case err == nil:
		s.redirect(w, r, fmt.Sprintf("/artists/%d", id), fmt.Sprintf("Artist %s was successfully updated!", updated.Name))
	case errors.Is(err, store.ErrArtistNotFound):
		s.redirect(w, r, "/", fmt.Sprintf("Artist %d was not found", id))
	case errors.Is(err, store.ErrArtistExists):
		s.render(w, r, http.StatusConflict, "artist_form", page, fmt.Sprintf("Artist %s already exists", form.Name))
	default:
		s.logError(r, err, "update artist")
		s.redirect(w, r, fmt.Sprintf("/artists/%d", id), fmt.Sprintf("An error occurred. Artist %s could not be updated.", form.Name))
	}
}
