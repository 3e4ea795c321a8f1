package rest

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"activityboard/internal/domain"
	"activityboard/internal/domain/entities"
	"activityboard/internal/ports/input"
	"activityboard/pkg/activityapi"
)

// Handler serves the activities API.
type Handler struct {
	activities input.ActivityUseCase
	signups    input.SignupUseCase
}

func NewHandler(activities input.ActivityUseCase, signups input.SignupUseCase) *Handler {
	return &Handler{activities: activities, signups: signups}
}

// ListActivities returns every activity as a name → detail object, in the
// order the activities were created.
func (h *Handler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activities.ListActivities(r.Context())
	if err != nil {
		log.Printf("❌ Failed to list activities: %v", err)
		respondDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondJSON(w, http.StatusOK, toWire(activities))
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	email := r.URL.Query().Get("email")
	locale := r.Header.Get("Accept-Language")

	msg, err := h.signups.Signup(r.Context(), locale, name, email)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: msg})
}

func (h *Handler) Unregister(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	email := r.URL.Query().Get("email")
	locale := r.Header.Get("Accept-Language")

	msg, err := h.signups.Unregister(r.Context(), locale, name, email)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: msg})
}

// respondError maps domain errors to HTTP statuses; the error text is the
// detail message. Anything unrecognized is an internal error and only its
// generic form reaches the client.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		respondDetail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAlreadySignedUp),
		errors.Is(err, domain.ErrNotRegistered),
		errors.Is(err, domain.ErrActivityFull),
		errors.Is(err, domain.ErrEmailRequired):
		respondDetail(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("❌ Signup operation failed: %v", err)
		respondDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toWire(activities []entities.Activity) activityapi.Collection {
	out := make(activityapi.Collection, 0, len(activities))
	for _, a := range activities {
		wire := activityapi.Activity{
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    make([]activityapi.Participant, 0, len(a.Participants)),
		}
		for _, p := range a.Participants {
			wire.Participants = append(wire.Participants, activityapi.Participant{
				Email: p.Email,
				Name:  p.Name,
			})
		}
		out = append(out, activityapi.Entry{Name: a.Name, Activity: wire})
	}
	return out
}
