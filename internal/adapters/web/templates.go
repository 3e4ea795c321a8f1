// File templates.go embeds the page template and defines its view data.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// pageData is the root view model for the signup page. It is rebuilt from a
// fresh backend snapshot on every render.
type pageData struct {
	// Title is the page heading.
	Title string
	// LoadFailed is true when the activity fetch failed; Activities is
	// empty and LoadError holds the message shown in the list region.
	LoadFailed bool
	LoadError  string
	// Activities are the cards, in the order the backend sent them.
	Activities []activityCard
	// Form is the signup form state.
	Form formState
	// Status is the message region state.
	Status statusView
}

// activityCard holds one activity's display data.
type activityCard struct {
	Name        string
	Description string
	Schedule    string
	// SpotsLeft is max participants minus roster size, computed at render
	// time from the fetched snapshot.
	SpotsLeft int
	// Participants is the roster; empty renders the placeholder row.
	Participants []participantRow
}

// participantRow holds one roster row and the fields its removal form posts.
type participantRow struct {
	Display  string
	Email    string
	Activity string
}

// formState carries submitted values back into the form after a failure.
type formState struct {
	Email    string
	Selected string
	Options  []string
}

// statusView is the rendered state of the message region.
type statusView struct {
	Visible bool
	Class   string
	Text    string
}

func statusViewFrom(kind StatusKind, text string) statusView {
	switch kind {
	case StatusSuccess:
		return statusView{Visible: true, Class: "success", Text: text}
	case StatusError:
		return statusView{Visible: true, Class: "error", Text: text}
	default:
		return statusView{}
	}
}
