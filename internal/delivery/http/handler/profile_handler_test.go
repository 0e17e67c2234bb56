package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"prescripto-patient-client/internal/domain/entity"
	"prescripto-patient-client/internal/domain/gateway"
	"prescripto-patient-client/internal/state"
	"prescripto-patient-client/internal/usecase"
	"prescripto-patient-client/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileHandler(t *testing.T, backend *fakeBackend, loggedIn bool) *ProfileHandler {
	t.Helper()
	store := state.NewStore(backend, &memTokens{}, quietLogger())
	if loggedIn {
		store.RestoreToken("tok")
		require.NoError(t, store.RefreshProfile(context.Background()))
	}

	renderer, err := NewRenderer(quietLogger())
	require.NoError(t, err)

	uc := usecase.NewProfileUsecase(backend, store, quietLogger())
	return NewProfileHandler(store, uc, validator.NewValidator(), renderer, quietLogger())
}

func saveRequest(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/my-profile", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestProfileSave_Success(t *testing.T) {
	backend := &fakeBackend{
		profile:       &entity.UserProfile{ID: "u1", Name: "Ada", Email: "ada@example.com"},
		updateMessage: "Profile Updated",
	}
	h := newProfileHandler(t, backend, true)

	rec := httptest.NewRecorder()
	h.Save(rec, saveRequest(url.Values{"name": {"Ada Lovelace"}}))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/my-profile", rec.Header().Get("Location"))
}

func TestProfileSave_BackendFailureShowsMessageInEditMode(t *testing.T) {
	backend := &fakeBackend{
		profile:   &entity.UserProfile{ID: "u1", Name: "Ada", Email: "ada@example.com"},
		updateErr: &gateway.APIError{Message: "phone number invalid"},
	}
	h := newProfileHandler(t, backend, true)

	rec := httptest.NewRecorder()
	h.Save(rec, saveRequest(url.Values{
		"name":  {"Ada Lovelace"},
		"phone": {"12345"},
	}))

	// still in edit mode, submitted values intact
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `value="Ada Lovelace"`)
	assert.Contains(t, body, `value="12345"`)

	// the backend's message is part of this response, not a deferred cookie
	assert.Contains(t, body, "phone number invalid")
	for _, c := range rec.Result().Cookies() {
		assert.NotEqual(t, "flash", c.Name)
	}
}

func TestProfileSave_ValidationErrorRendersInline(t *testing.T) {
	backend := &fakeBackend{profile: &entity.UserProfile{ID: "u1", Name: "Ada"}}
	h := newProfileHandler(t, backend, true)

	rec := httptest.NewRecorder()
	h.Save(rec, saveRequest(url.Values{
		"name": {"Ada"},
		"dob":  {"not-a-date"},
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "DOB must be a date in YYYY-MM-DD format")
}

func TestProfileSave_NoTokenRedirectsToLogin(t *testing.T) {
	backend := &fakeBackend{}
	h := newProfileHandler(t, backend, false)

	rec := httptest.NewRecorder()
	h.Save(rec, saveRequest(url.Values{"name": {"Ada"}}))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}
