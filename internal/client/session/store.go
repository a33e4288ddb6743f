// Package session holds the single source of truth for "who is logged in":
// the current identity and its token pair, persisted to the local database
// and published to observers.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/madil51/chunk-client/internal/client/models"
	repo "github.com/madil51/chunk-client/internal/client/repositories/session"
	"github.com/madil51/chunk-client/internal/dbx"
	"github.com/madil51/chunk-client/internal/logging"
)

// Store owns the authenticated session. All mutations are serialized, and
// Current always agrees with the latest value delivered to observers.
type Store struct {
	db  *sql.DB
	log logging.Logger

	mu           sync.Mutex
	user         *models.User
	accessToken  string
	refreshToken string
	nextID       int
	observers    map[int]*observer
}

// NewStore builds a Store over the local database. Call Initialize before
// first use to restore any persisted session.
func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{
		db:        db,
		log:       log,
		observers: make(map[int]*observer),
	}
}

func (s *Store) repo() repo.Repository {
	return repo.NewSQLiteRepository(s.db)
}

// Initialize restores the persisted session, if any. It makes no network
// call and does not validate token freshness: a persisted token is treated
// as a live session until a backend call says otherwise.
func (s *Store) Initialize(ctx context.Context) error {
	r := s.repo()

	token, okToken, err := r.Get(ctx, repo.KeyToken)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	userJSON, okUser, err := r.Get(ctx, repo.KeyUser)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	refresh, _, err := r.Get(ctx, repo.KeyRefreshToken)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	if !okToken || !okUser {
		return nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		// A corrupt record is unusable; start unauthenticated.
		s.log.Warn(ctx, "discarding unreadable persisted session", "err", err)
		return s.ClearSession(ctx)
	}

	s.mu.Lock()
	s.user = &user
	s.accessToken = token
	s.refreshToken = refresh
	s.publishLocked(&user)
	s.mu.Unlock()
	return nil
}

// SetSession persists identity and tokens in one transaction, replaces the
// in-memory session, and publishes the new identity to all observers.
func (s *Store) SetSession(ctx context.Context, user models.User, accessToken, refreshToken string) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := repo.NewSQLiteRepository(tx)
		if err := r.Set(ctx, repo.KeyToken, accessToken); err != nil {
			return err
		}
		if err := r.Set(ctx, repo.KeyRefreshToken, refreshToken); err != nil {
			return err
		}
		return r.Set(ctx, repo.KeyUser, string(userJSON))
	})
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	u := user
	s.user = &u
	s.accessToken = accessToken
	s.refreshToken = refreshToken
	s.publishLocked(&u)
	s.mu.Unlock()
	return nil
}

// ClearSession removes the persisted session and publishes nil. It is
// idempotent: clearing an already-empty session does not emit again.
func (s *Store) ClearSession(ctx context.Context) error {
	if err := s.repo().Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.mu.Lock()
	wasSet := s.user != nil
	s.user = nil
	s.accessToken = ""
	s.refreshToken = ""
	if wasSet {
		s.publishLocked(nil)
	}
	s.mu.Unlock()
	return nil
}

// Current returns the last-published identity, or nil when logged out.
func (s *Store) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Token returns the current access token, empty when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken
}

// RefreshToken returns the current refresh token, empty when logged out.
func (s *Store) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshToken
}

// Authenticated reports whether an access token is present. Presence, not
// validity: a stale token counts until the backend rejects it.
func (s *Store) Authenticated() bool {
	return s.Token() != ""
}

// Observe returns a subscription that first replays the current identity
// and then delivers every change, in order, until cancelled.
func (s *Store) Observe() *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	o := newObserver()
	o.push(s.user)
	s.observers[id] = o

	return &Subscription{
		C: o.ch,
		cancel: func() {
			s.mu.Lock()
			delete(s.observers, id)
			s.mu.Unlock()
			o.stop()
		},
	}
}

func (s *Store) publishLocked(u *models.User) {
	for _, o := range s.observers {
		o.push(u)
	}
}
