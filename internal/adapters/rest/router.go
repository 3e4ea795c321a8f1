package rest

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter builds the activities API router.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods("GET")
	r.HandleFunc("/activities", h.ListActivities).Methods("GET")
	r.HandleFunc("/activities/{name}/signup", h.Signup).Methods("POST")
	r.HandleFunc("/activities/{name}/unregister", h.Unregister).Methods("DELETE")
	return r
}
