package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"fyyur/internal/app/venues"
	"fyyur/internal/forms"
	"fyyur/internal/schedule"
	"fyyur/internal/store"
)

type venuesPage struct {
	Areas []schedule.Area
}

type venuePage struct {
	venues.Detail
}

type venueFormPage struct {
	Title  string
	Action string
	Form   forms.VenueForm
	Errors forms.FieldErrors
}

type deleteResponse struct {
	Success bool `json:"success"`
}

func (s *Server) handleListVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := s.venues.Directory(r.Context())
	if err != nil {
		s.serverError(w, r, err, "list venues")
		return
	}

	s.render(w, r, http.StatusOK, "venues", venuesPage{Areas: areas})
}

func (s *Server) handleSearchVenues(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.redirect(w, r, "/venues", "Could not read the search form.")
		return
	}

	term := r.PostForm.Get("search_term")
	result, err := s.venues.Search(r.Context(), term)
	if err != nil {
		s.serverError(w, r, err, "search venues")
		return
	}

	s.render(w, r, http.StatusOK, "search", searchPage{Kind: "venues", Term: term, Result: result})
}

func (s *Server) handleShowVenue(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.handleNotFound(w, r)
		return
	}

	detail, err := s.venues.Detail(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrVenueNotFound) {
			s.redirect(w, r, "/", fmt.Sprintf("Venue %d was not found", id))
			return
		}
		s.serverError(w, r, err, "load venue")
		return
	}

	s.render(w, r, http.StatusOK, "venue", venuePage{Detail: detail})
}

func (s *Server) handleNewVenue(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "venue_form", venueFormPage{
		Title:  "List a new venue",
		Action: "/venues/create",
	})
}

func (s *Server) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.redirect(w, r, "/venues/create", "Could not read the venue form.")
		return
	}

	page := venueFormPage{Title: "List a new venue", Action: "/venues/create"}
	form, errs := forms.BindVenue(r.PostForm)
	page.Form = form
	if len(errs) > 0 {
		page.Errors = errs
		s.render(w, r, http.StatusBadRequest, "venue_form", page, errs.Message())
		return
	}

	created, err := s.venues.Create(r.Context(), form.Venue())
	switch {
	case err == nil:
		s.redirect(w, r, "/", fmt.Sprintf("Venue %s was successfully listed!", created.Name))
	case errors.Is(err, store.ErrVenueExists):
		s.render(w, r, http.StatusConflict, "venue_form", page, fmt.Sprintf("Venue %s already exists", form.Name))
	default:
		s.logError(r, err, "create venue")
		s.redirect(w, r, "/", fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
	}
}

func (s *Server) handleEditVenue(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.handleNotFound(w, r)
		return
	}

	venue, err := s.venues.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrVenueNotFound) {
			s.redirect(w, r, "/", fmt.Sprintf("Venue %d was not found", id))
			return
		}
		s.serverError(w, r, err, "load venue for edit")
		return
	}

	s.render(w, r, http.StatusOK, "venue_form", venueFormPage{
		Title:  "Edit venue " + venue.Name,
		Action: fmt.Sprintf("/venues/%d/edit", id),
		Form:   forms.VenueFormFrom(venue),
	})
}

func (s *Server) handleUpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.handleNotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.redirect(w, r, fmt.Sprintf("/venues/%d/edit", id), "Could not read the venue form.")
		return
	}

	form, errs := forms.BindVenue(r.PostForm)
	page := venueFormPage{
		Title:  "Edit venue " + form.Name,
		Action: fmt.Sprintf("/venues/%d/edit", id),
		Form:   form,
	}
	if len(errs) > 0 {
		page.Errors = errs
		s.render(w, r, http.StatusBadRequest, "venue_form", page, errs.Message())
		return
	}

	updated, err := s.venues.Update(r.Context(), id, form.Venue())
	switch {
	case err == nil:
		s.redirect(w, r, fmt.Sprintf("/venues/%d", id), fmt.Sprintf("Venue %s was successfully updated!", updated.Name))
	case errors.Is(err, store.ErrVenueNotFound):
		s.redirect(w, r, "/", fmt.Sprintf("Venue %d was not found", id))
	case errors.Is(err, store.ErrVenueExists):
		s.render(w, r, http.StatusConflict, "venue_form", page, fmt.Sprintf("Venue %s already exists", form.Name))
	default:
		s.logError(r, err, "update venue")
		s.redirect(w, r, fmt.Sprintf("/venues/%d", id), fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name))
	}
}

// handleDeleteVenue answers the page's fetch call with {"success": bool}.
func (s *Server) handleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, deleteResponse{Success: false})
		return
	}

	err = s.venues.Delete(r.Context(), id)
	switch {
	case err == nil:
		s.flashes.set(w, fmt.Sprintf("Venue %d was successfully deleted!", id))
		writeJSON(w, http.StatusOK, deleteResponse{Success: true})
	case errors.Is(err, store.ErrVenueNotFound):
		s.flashes.set(w, fmt.Sprintf("Venue %d was not found", id))
		writeJSON(w, http.StatusNotFound, deleteResponse{Success: false})
	case errors.Is(err, store.ErrVenueHasShows):
		s.flashes.set(w, fmt.Sprintf("Venue %d has shows booked and could not be deleted.", id))
		writeJSON(w, http.StatusConflict, deleteResponse{Success: false})
	default:
		s.logError(r, err, "delete venue")
		s.flashes.set(w, fmt.Sprintf("An error occurred. Venue %d could not be deleted.", id))
		writeJSON(w, http.StatusInternalServerError, deleteResponse{Success: false})
	}
}
