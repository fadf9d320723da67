// Package view holds the screen enum, the dispatch router and the text renderers of the terminal client.
package view

import (
	"strings"

	domainerrors "engineershub/internal/domain/errors"
)

// View names a top-level screen.
type View int

const (
	Dashboard View = iota
	Projects
	Preparation
	Interviews
	Companies
	Profile
)

// Views lists every screen in navigation order.
var Views = []View{Dashboard, Projects, Preparation, Interviews, Companies, Profile}

var viewNames = map[View]string{
	Dashboard:   "dashboard",
	Projects:    "projects",
	Preparation: "preparation",
	Interviews:  "interviews",
	Companies:   "companies",
	Profile:     "profile",
}

func (v View) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}

	return "unknown"
}

// Valid reports whether v is one of Views.
func (v View) Valid() bool {
	_, ok := viewNames[v]

	return ok
}

// Parse resolves a screen by name, case-insensitively.
func Parse(name string) (View, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for v, n := range viewNames {
		if n == name {
			return v, nil
		}
	}

	return 0, domainerrors.ErrUnknownView.WithDetails(name)
}
