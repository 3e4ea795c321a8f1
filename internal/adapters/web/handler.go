package web

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"activityboard/internal/ports/output"
	"activityboard/pkg/activityapi"
)

const (
	// signupHideDelay is how long signup outcome messages stay visible.
	signupHideDelay = 5 * time.Second
	// removalHideDelay is how long a successful removal message stays
	// visible. Removal failures stay until the next action.
	removalHideDelay = 3 * time.Second
)

// Handler renders the signup page and proxies its two mutating actions to
// the activities API. Every render works from an immutable snapshot fetched
// for that request; nothing is cached between renders.
type Handler struct {
	client     *activityapi.Client
	status     *StatusBoard
	translator output.T
	locale     string

	signupHideDelay  time.Duration
	removalHideDelay time.Duration
}

func NewHandler(client *activityapi.Client, status *StatusBoard, translator output.T, locale string) *Handler {
	return &Handler{
		client:           client,
		status:           status,
		translator:       translator,
		locale:           locale,
		signupHideDelay:  signupHideDelay,
		removalHideDelay: removalHideDelay,
	}
}

// Router builds the frontend routes.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", h.ShowActivities).Methods("GET")
	r.HandleFunc("/signup", h.Signup).Methods("POST")
	r.HandleFunc("/unregister", h.Unregister).Methods("POST")
	return r
}

// ShowActivities fetches the collection and renders the page.
func (h *Handler) ShowActivities(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, formState{})
}

// Signup handles the signup form. Success redirects so the form resets to
// its defaults; failure re-renders with the submitted values intact.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	activity := r.FormValue("activity")

	msg, err := h.client.Signup(r.Context(), activity, email)
	if err != nil {
		h.status.Set(StatusError, h.errorText(err, "web.signup_failed"), h.signupHideDelay)
		h.renderPage(w, r, formState{Email: email, Selected: activity})
		return
	}
	h.status.Set(StatusSuccess, msg, h.signupHideDelay)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Unregister handles a roster row's removal form. Success redirects to
// trigger one full fetch-and-render cycle; failure renders in place without
// one, and its message stays visible until the next action.
func (h *Handler) Unregister(w http.ResponseWriter, r *http.Request) {
	activity := r.FormValue("activity")
	email := r.FormValue("email")

	if err := h.client.Unregister(r.Context(), activity, email); err != nil {
		h.status.Set(StatusError, h.errorText(err, "web.unregister_failed"), 0)
		h.renderError(w)
		return
	}
	h.status.Set(StatusSuccess, h.translator.T(h.locale, "web.removed", nil), h.removalHideDelay)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, form formState) {
	kind, text := h.status.Current()
	data := pageData{
		Title:  h.translator.T(h.locale, "web.title", nil),
		Form:   form,
		Status: statusViewFrom(kind, text),
	}

	collection, err := h.client.List(r.Context())
	if err != nil {
		log.Printf("❌ Failed to load activities: %v", err)
		data.LoadFailed = true
		data.LoadError = h.translator.T(h.locale, "web.load_failed", nil)
	} else {
		data.Activities = toCards(collection)
		data.Form.Options = collection.Names()
	}

	h.execute(w, data)
}

// renderError renders the page shell with only the status message; no
// activity fetch is issued on this path.
func (h *Handler) renderError(w http.ResponseWriter) {
	kind, text := h.status.Current()
	h.execute(w, pageData{
		Title:      h.translator.T(h.locale, "web.title", nil),
		LoadFailed: true,
		LoadError:  h.translator.T(h.locale, "web.load_failed", nil),
		Status:     statusViewFrom(kind, text),
	})
}

func (h *Handler) execute(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Printf("❌ Failed to render page: %v", err)
	}
}

// errorText surfaces the backend's detail text verbatim when present, else a
// generic fallback.
func (h *Handler) errorText(err error, fallbackKey string) string {
	var apiErr *activityapi.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return h.translator.T(h.locale, fallbackKey, nil)
}

func toCards(collection activityapi.Collection) []activityCard {
	cards := make([]activityCard, 0, len(collection))
	for _, entry := range collection {
		card := activityCard{
			Name:        entry.Name,
			Description: entry.Activity.Description,
			Schedule:    entry.Activity.Schedule,
			SpotsLeft:   entry.Activity.SpotsLeft(),
		}
		for _, p := range entry.Activity.Participants {
			card.Participants = append(card.Participants, participantRow{
				Display:  p.Display(),
				Email:    p.Email,
				Activity: entry.Name,
			})
		}
		cards = append(cards, card)
	}
	return cards
}
