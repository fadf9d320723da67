package view

import (
	"context"
	"io"
	"sync"

	domainerrors "engineershub/internal/domain/errors"
	"engineershub/internal/errors"
)

// Screen renders one view.
type Screen func(ctx context.Context, w io.Writer) error

// Table maps every view to its screen.
type Table map[View]Screen

// Session tells the router whether to show the auth screen.
type Session interface {
	Authenticated() bool
	Loading() bool
}

// Router dispatches rendering to the current view.
type Router struct {
	mu      sync.Mutex
	table   Table
	auth    Screen
	session Session
	current View
}

// NewRouter refuses a table that leaves any view without a screen.
func NewRouter(table Table, auth Screen, session Session) (*Router, error) {
	for _, v := range Views {
		if table[v] == nil {
			return nil, errors.Errorf("no screen for view %s", v)
		}
	}
	if auth == nil {
		return nil, errors.New("no auth screen")
	}

	return &Router{table: table, auth: auth, session: session, current: Dashboard}, nil
}

// Navigate switches the current view.
func (r *Router) Navigate(v View) error {
	if !v.Valid() {
		return domainerrors.ErrUnknownView
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = v

	return nil
}

func (r *Router) Current() View {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.current
}

// Render draws the current view, or the auth screen when signed out.
func (r *Router) Render(ctx context.Context, w io.Writer) error {
	if r.session.Loading() {
		return Loading(w)
	}
	if !r.session.Authenticated() {
		return r.auth(ctx, w)
	}

	return r.table[r.Current()](ctx, w)
}
