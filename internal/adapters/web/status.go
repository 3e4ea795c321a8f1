package web

import (
	"sync"
	"time"
)

// StatusKind is the visibility state of the page's status message.
type StatusKind int

const (
	StatusHidden StatusKind = iota
	StatusSuccess
	StatusError
)

// StatusBoard owns the page's single status message and its hide timer.
// Setting a new message cancels any pending hide, so a stale timer from an
// earlier message can never hide a newer one.
type StatusBoard struct {
	mu    sync.Mutex
	kind  StatusKind
	text  string
	timer *time.Timer
	gen   uint64
}

func NewStatusBoard() *StatusBoard {
	return &StatusBoard{}
}

// Set replaces the current message. A positive hideAfter schedules an
// automatic transition back to hidden; zero keeps the message visible until
// the next Set.
func (b *StatusBoard) Set(kind StatusKind, text string, hideAfter time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.gen++
	b.kind = kind
	b.text = text
	if hideAfter > 0 {
		gen := b.gen
		b.timer = time.AfterFunc(hideAfter, func() {
			b.hide(gen)
		})
	}
}

// Current returns the visible message, or StatusHidden and empty text.
func (b *StatusBoard) Current() (StatusKind, string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.kind, b.text
}

// hide clears the message unless a newer Set superseded the timer while it
// was firing.
func (b *StatusBoard) hide(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.gen {
		return
	}
	b.kind = StatusHidden
	b.text = ""
	b.timer = nil
}
