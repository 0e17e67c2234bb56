// Package state holds the shared client caches: the session token, the
// doctor directory, and the authenticated user's profile. Views read through
// accessors and mutate only through the refresh/set operations here; nothing
// else writes these fields.
package state

import (
	"context"
	"sync"

	"prescripto-patient-client/internal/domain/entity"
	"prescripto-patient-client/internal/domain/gateway"

	"github.com/sirupsen/logrus"
)

// Store is the single source of truth for session and cached backend data.
//
// Refreshes are single-attempt with no retry. Overlapping refreshes of the
// same cache are resolved with a generation counter: whichever call started
// last wins, and responses from superseded calls are discarded instead of
// overwriting newer data.
type Store struct {
	backend gateway.Backend
	tokens  gateway.TokenStorage
	log     *logrus.Logger

	mu         sync.Mutex
	token      string
	doctors    []entity.Doctor
	profile    *entity.UserProfile
	doctorGen  uint64
	profileGen uint64
}

func NewStore(backend gateway.Backend, tokens gateway.TokenStorage, log *logrus.Logger) *Store {
	return &Store{
		backend: backend,
		tokens:  tokens,
		log:     log,
	}
}

// Token returns the current session token, or "" when browsing anonymously.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Doctors returns the cached doctor directory.
func (s *Store) Doctors() []entity.Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doctors
}

// Doctor looks up one cached doctor by ID.
func (s *Store) Doctor(id string) (*entity.Doctor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doctors {
		if s.doctors[i].ID == id {
			doc := s.doctors[i]
			return &doc, true
		}
	}
	return nil, false
}

// Profile returns the cached user profile, nil until the first successful
// authenticated refresh.
func (s *Store) Profile() *entity.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Clone()
}

// RefreshDoctors replaces the cached directory with a fresh fetch. On any
// failure the previous cache is left untouched and the error is returned for
// the caller to surface.
func (s *Store) RefreshDoctors(ctx context.Context) error {
	s.mu.Lock()
	s.doctorGen++
	gen := s.doctorGen
	s.mu.Unlock()

	doctors, err := s.backend.ListDoctors(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.doctorGen {
		s.log.Debug("Discarding superseded doctor refresh")
		return nil
	}
	if err != nil {
		s.log.Warnf("Doctor refresh failed, keeping cached directory: %v", err)
		return err
	}
	s.doctors = doctors
	s.log.Infof("Doctor directory refreshed, %d doctors", len(doctors))
	return nil
}

// RefreshProfile replaces the cached profile with a fresh authenticated
// fetch. Without a token it clears the cache and makes no network call. On
// failure the cache is cleared rather than left stale, and the error is
// returned for the caller to surface.
func (s *Store) RefreshProfile(ctx context.Context) error {
	s.mu.Lock()
	s.profileGen++
	gen := s.profileGen
	token := s.token
	if token == "" {
		s.profile = nil
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	profile, err := s.backend.GetProfile(ctx, token)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.profileGen {
		s.log.Debug("Discarding superseded profile refresh")
		return nil
	}
	if err != nil {
		s.profile = nil
		s.log.Warnf("Profile refresh failed, clearing cached profile: %v", err)
		return err
	}
	s.profile = profile
	return nil
}

// SetToken is the only path that changes the session token. A non-empty
// token is persisted and fires an asynchronous profile refresh; readers may
// observe a nil profile until that refresh resolves. An empty token removes
// the persisted value and clears the cached profile.
func (s *Store) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if token == "" {
		if err := s.tokens.Clear(ctx); err != nil {
			return err
		}
		s.mu.Lock()
		s.profile = nil
		s.profileGen++
		s.mu.Unlock()
		return nil
	}

	if err := s.tokens.Save(ctx, token); err != nil {
		return err
	}

	go func() {
		// Detached from the caller's request lifetime on purpose; the
		// refresh outcome lands in the cache, not in this response.
		if err := s.RefreshProfile(context.Background()); err != nil {
			s.log.Warnf("Profile refresh after login failed: %v", err)
		}
	}()
	return nil
}

// RestoreToken seeds the in-memory token from persistent storage without
// re-persisting it, used once at startup. It does not trigger a refresh;
// bootstrap decides when the initial fetches fire.
func (s *Store) RestoreToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}
