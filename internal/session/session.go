// Package session wraps the signed cookie session with typed accessors.
package session

import (
	"encoding/gob"

	"store-app/internal/auth"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const roleKey = "role"

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Category string
	Message  string
}

func init() {
	gob.Register(Flash{})
}

// State is the typed view of a request's session.
type State struct {
	Role auth.Role // empty when not logged in
}

// Load reads the session state for the current request.
func Load(c *gin.Context) State {
	s := sessions.Default(c)
	role, _ := s.Get(roleKey).(string)
	if r := auth.Role(role); r.Valid() {
		return State{Role: r}
	}
	return State{}
}

// HasRole reports whether the session carries exactly role.
func HasRole(c *gin.Context, role auth.Role) bool {
	return Load(c).Role == role
}

// SetRole stores role and persists the session.
func SetRole(c *gin.Context, role auth.Role) error {
	s := sessions.Default(c)
	s.Set(roleKey, string(role))
	return s.Save()
}

// Clear drops every key in the session.
func Clear(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	return s.Save()
}

// AddFlash queues a notice for the next page render.
func AddFlash(c *gin.Context, category, message string) error {
	s := sessions.Default(c)
	s.AddFlash(Flash{Category: category, Message: message})
	return s.Save()
}

// Flashes pops all queued notices.
func Flashes(c *gin.Context) ([]Flash, error) {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]Flash, 0, len(raw))
	for _, f := range raw {
		if flash, ok := f.(Flash); ok {
			out = append(out, flash)
		}
	}
	return out, s.Save()
}
