package state

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"prescripto-patient-client/internal/domain/entity"
	"prescripto-patient-client/internal/domain/gateway"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	mu            sync.Mutex
	listCalls     int
	profileCalls  int
	listDoctorsFn func(ctx context.Context) ([]entity.Doctor, error)
	getProfileFn  func(ctx context.Context, token string) (*entity.UserProfile, error)
}

func (f *fakeBackend) ListDoctors(ctx context.Context) ([]entity.Doctor, error) {
	f.mu.Lock()
	f.listCalls++
	fn := f.listDoctorsFn
	f.mu.Unlock()
	if fn == nil {
		return nil, nil
	}
	return fn(ctx)
}

func (f *fakeBackend) GetProfile(ctx context.Context, token string) (*entity.UserProfile, error) {
	f.mu.Lock()
	f.profileCalls++
	fn := f.getProfileFn
	f.mu.Unlock()
	if fn == nil {
		return nil, errors.New("no profile configured")
	}
	return fn(ctx, token)
}

func (f *fakeBackend) UpdateProfile(ctx context.Context, token string, req *gateway.UpdateProfileRequest) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeBackend) BookAppointment(ctx context.Context, token string, req *gateway.BookAppointmentRequest) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeBackend) counts() (list, profile int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls, f.profileCalls
}

type memTokenStorage struct {
	mu    sync.Mutex
	token string
	saves int
}

func (m *memTokenStorage) Load(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" {
		return "", gateway.ErrNoToken
	}
	return m.token, nil
}

func (m *memTokenStorage) Save(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.saves++
	return nil
}

func (m *memTokenStorage) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

func (m *memTokenStorage) current() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestStore_RefreshDoctors_ReplacesCache(t *testing.T) {
	backend := &fakeBackend{
		listDoctorsFn: func(context.Context) ([]entity.Doctor, error) {
			return []entity.Doctor{{ID: "doc1"}, {ID: "doc2"}}, nil
		},
	}
	store := NewStore(backend, &memTokenStorage{}, quietLogger())

	require.NoError(t, store.RefreshDoctors(context.Background()))
	assert.Len(t, store.Doctors(), 2)

	doc, ok := store.Doctor("doc2")
	require.True(t, ok)
	assert.Equal(t, "doc2", doc.ID)

	_, ok = store.Doctor("missing")
	assert.False(t, ok)
}

func TestStore_RefreshDoctors_FailureKeepsCache(t *testing.T) {
	backend := &fakeBackend{
		listDoctorsFn: func(context.Context) ([]entity.Doctor, error) {
			return []entity.Doctor{{ID: "doc1"}}, nil
		},
	}
	store := NewStore(backend, &memTokenStorage{}, quietLogger())
	require.NoError(t, store.RefreshDoctors(context.Background()))

	backend.mu.Lock()
	backend.listDoctorsFn = func(context.Context) ([]entity.Doctor, error) {
		return nil, errors.New("network down")
	}
	backend.mu.Unlock()

	err := store.RefreshDoctors(context.Background())
	require.Error(t, err)
	assert.Len(t, store.Doctors(), 1, "previous cache must survive a failed refresh")
}

func TestStore_RefreshProfile_NoTokenClearsWithoutNetwork(t *testing.T) {
	backend := &fakeBackend{}
	store := NewStore(backend, &memTokenStorage{}, quietLogger())

	require.NoError(t, store.RefreshProfile(context.Background()))
	assert.Nil(t, store.Profile())

	_, profileCalls := backend.counts()
	assert.Zero(t, profileCalls)
}

func TestStore_RefreshProfile_FailureClearsCache(t *testing.T) {
	backend := &fakeBackend{
		getProfileFn: func(context.Context, string) (*entity.UserProfile, error) {
			return &entity.UserProfile{ID: "u1", Name: "Ada"}, nil
		},
	}
	store := NewStore(backend, &memTokenStorage{}, quietLogger())
	store.RestoreToken("tok")

	require.NoError(t, store.RefreshProfile(context.Background()))
	require.NotNil(t, store.Profile())

	backend.mu.Lock()
	backend.getProfileFn = func(context.Context, string) (*entity.UserProfile, error) {
		return nil, &gateway.APIError{Message: "session invalid"}
	}
	backend.mu.Unlock()

	err := store.RefreshProfile(context.Background())
	require.Error(t, err)
	assert.Nil(t, store.Profile(), "a failed refresh must not leave a stale profile")
}

func TestStore_SetToken_PersistsAndRefreshesOnce(t *testing.T) {
	backend := &fakeBackend{
		getProfileFn: func(_ context.Context, token string) (*entity.UserProfile, error) {
			if token != "tok-abc" {
				return nil, errors.New("unexpected token " + token)
			}
			return &entity.UserProfile{ID: "u1", Name: "Ada"}, nil
		},
	}
	tokens := &memTokenStorage{}
	store := NewStore(backend, tokens, quietLogger())

	require.NoError(t, store.SetToken(context.Background(), "tok-abc"))
	assert.Equal(t, "tok-abc", tokens.current())
	assert.Equal(t, "tok-abc", store.Token())

	require.Eventually(t, func() bool {
		return store.Profile() != nil
	}, time.Second, 5*time.Millisecond)

	_, profileCalls := backend.counts()
	assert.Equal(t, 1, profileCalls, "a token set triggers exactly one profile refresh")
}

func TestStore_SetToken_EmptyClearsStorageAndProfile(t *testing.T) {
	backend := &fakeBackend{
		getProfileFn: func(context.Context, string) (*entity.UserProfile, error) {
			return &entity.UserProfile{ID: "u1"}, nil
		},
	}
	tokens := &memTokenStorage{}
	store := NewStore(backend, tokens, quietLogger())

	require.NoError(t, store.SetToken(context.Background(), "tok-abc"))
	require.Eventually(t, func() bool { return store.Profile() != nil }, time.Second, 5*time.Millisecond)

	require.NoError(t, store.SetToken(context.Background(), ""))
	assert.Empty(t, tokens.current())
	assert.Empty(t, store.Token())
	assert.Nil(t, store.Profile())
}

func TestStore_RefreshProfile_SupersededResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	calls := make(chan struct{}, 2)
	var callNo int
	var mu sync.Mutex

	backend := &fakeBackend{}
	backend.getProfileFn = func(context.Context, string) (*entity.UserProfile, error) {
		mu.Lock()
		callNo++
		n := callNo
		mu.Unlock()
		calls <- struct{}{}
		if n == 1 {
			// first refresh resolves last
			<-release
			return &entity.UserProfile{ID: "stale"}, nil
		}
		return &entity.UserProfile{ID: "fresh"}, nil
	}

	store := NewStore(backend, &memTokenStorage{}, quietLogger())
	store.RestoreToken("tok")

	first := make(chan error, 1)
	go func() { first <- store.RefreshProfile(context.Background()) }()
	<-calls

	require.NoError(t, store.RefreshProfile(context.Background()))
	<-calls
	require.Equal(t, "fresh", store.Profile().ID)

	close(release)
	require.NoError(t, <-first)
	assert.Equal(t, "fresh", store.Profile().ID, "a superseded refresh must not overwrite newer data")
}

func TestStore_ProfileReturnsCopy(t *testing.T) {
	backend := &fakeBackend{
		getProfileFn: func(context.Context, string) (*entity.UserProfile, error) {
			return &entity.UserProfile{ID: "u1", Name: "Ada"}, nil
		},
	}
	store := NewStore(backend, &memTokenStorage{}, quietLogger())
	store.RestoreToken("tok")
	require.NoError(t, store.RefreshProfile(context.Background()))

	p := store.Profile()
	p.Name = "changed"
	assert.Equal(t, "Ada", store.Profile().Name)
}
