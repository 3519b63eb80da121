// Command sample demonstrates the respond package with a small user API.
//
// Run:
//
//	go run ./cmd/sample
//
// Then explore:
//
//	GET    http://localhost:8080/health          — plain string response
//	GET    http://localhost:8080/users           — JSON list
//	POST   http://localhost:8080/users           — create (201 + Location)
//	GET    http://localhost:8080/users/{id}      — JSON or 404
//	DELETE http://localhost:8080/users/{id}      — bare status code
//	GET    http://localhost:8080/users.yaml      — YAML list
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/bjaus/respond"
	"github.com/bjaus/respond/header"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})))

	mux := http.NewServeMux()

	mux.Handle("GET /health", respond.Wrap(handleHealth))
	mux.Handle("GET /users", respond.Wrap(handleListUsers))
	mux.Handle("POST /users", respond.Wrap(handleCreateUser))
	mux.Handle("GET /users/{id}", respond.Wrap(handleGetUser))
	mux.Handle("DELETE /users/{id}", respond.Wrap(handleDeleteUser))
	mux.Handle("GET /users.yaml", respond.Wrap(handleListUsersYAML))

	h := respond.Chain(mux,
		respond.Recovery(),
		respond.RequestID(),
		respond.Logger(slog.Default()),
		respond.RateLimit(respond.RateLimitConfig{Rate: 50, Burst: 100}),
	)

	slog.Info("starting server", "addr", ":8080")
	if err := http.ListenAndServe(":8080", h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "err", err)
	}
}

// In-memory store
// ---------------------------------------------------------------------------

var store = &userStore{
	users: map[string]*User{
		"1": {ID: "1", Name: "Alice", Email: "alice@example.com", CreatedAt: time.Now()},
		"2": {ID: "2", Name: "Bob", Email: "bob@example.com", CreatedAt: time.Now()},
	},
	nextID: 3,
}

type userStore struct {
	mu     sync.RWMutex
	users  map[string]*User
	nextID int
}

func (s *userStore) list() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out
}

func (s *userStore) get(id string) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	cp := *u
	return &cp, true
}

func (s *userStore) create(name, email string) *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &User{
		ID:        strconv.Itoa(s.nextID),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
	}
	s.nextID++
	s.users[u.ID] = u
	cp := *u
	return &cp
}

func (s *userStore) delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return false
	}
	delete(s.users, id)
	return true
}

// User is the core domain entity.
type User struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Email     string    `json:"email" yaml:"email"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Handlers
// ---------------------------------------------------------------------------

func handleHealth(_ *http.Request) (any, error) {
	return "ok", nil
}

func handleListUsers(_ *http.Request) (any, error) {
	return respond.JSON(store.list()), nil
}

func handleListUsersYAML(_ *http.Request) (any, error) {
	return respond.YAML(store.list()), nil
}

func handleCreateUser(r *http.Request) (any, error) {
	var body struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, respond.Errorf(http.StatusBadRequest, "invalid body: %v", err)
	}
	if body.Name == "" || body.Email == "" {
		return nil, respond.Error(http.StatusBadRequest, "name and email are required")
	}

	u := store.create(body.Name, body.Email)
	return respond.Status(http.StatusCreated).
		Header(header.Location("/users/" + u.ID)).
		JSON(u)
}

func handleGetUser(r *http.Request) (any, error) {
	u, ok := store.get(r.PathValue("id"))
	if !ok {
		return nil, respond.Errorf(http.StatusNotFound, "user %s not found", r.PathValue("id"))
	}
	return respond.Ok().
		Header(header.CacheControl{Private: true, MaxAge: time.Minute}).
		JSON(u)
}

func handleDeleteUser(r *http.Request) (any, error) {
	if !store.delete(r.PathValue("id")) {
		return nil, fmt.Errorf("user %s not found: %w", r.PathValue("id"), respond.Error(http.StatusNotFound, "not found"))
	}
	return http.StatusNoContent, nil
}
