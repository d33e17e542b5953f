package http

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/MKhiriev/series-catalog/internal/service"
	"github.com/MKhiriev/series-catalog/internal/validators"
	"github.com/MKhiriev/series-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

// ─────────────────────────────────────────────
// POST /users
// ─────────────────────────────────────────────

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *testMocks)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created user is returned without hash",
			body: `{"email":"alice@example.com","password":"secret"}`,
			setup: func(m *testMocks) {
				m.auth.EXPECT().
					RegisterUser(gomock.Any(), models.Credentials{Email: "alice@example.com", Password: "secret"}).
					Return(testUser, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":1,"email":"alice@example.com"}`,
		},
		{
			name: "email taken",
			body: `{"email":"alice@example.com","password":"secret"}`,
			setup: func(m *testMocks) {
				m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrEmailAlreadyRegistered)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"detail":"Email already registered"}`,
		},
		{
			name: "invalid email",
			body: `{"email":"nope","password":"secret"}`,
			setup: func(m *testMocks) {
				m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
					Return(models.User{}, errors.Join(service.ErrInvalidDataProvided, validators.ErrInvalidEmail))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed JSON",
			body:       `{"email":`,
			setup:      func(m *testMocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "storage failure is hidden",
			body: `{"email":"alice@example.com","password":"secret"}`,
			setup: func(m *testMocks) {
				m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, errors.New("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			tt.setup(m)

			rec := serve(h, http.MethodPost, "/users/", tt.body, jsonHeaders)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			assert.NotContains(t, rec.Body.String(), "hash")
		})
	}
}

// ─────────────────────────────────────────────
// POST /token
// ─────────────────────────────────────────────

func TestToken_Form(t *testing.T) {
	h, m := newTestHandler(t)
	credentials := models.Credentials{Email: "alice@example.com", Password: "secret"}

	gomock.InOrder(
		m.auth.EXPECT().Login(gomock.Any(), credentials).Return(testUser, nil),
		m.auth.EXPECT().CreateToken(gomock.Any(), testUser).Return(models.Token{SignedString: "signed"}, nil),
	)

	form := url.Values{"username": {"alice@example.com"}, "password": {"secret"}}
	rec := serve(h, http.MethodPost, "/token", form.Encode(),
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"access_token":"signed","token_type":"bearer"}`, rec.Body.String())
}

func TestToken_JSON(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"email field", `{"email":"alice@example.com","password":"secret"}`},
		{"username field", `{"username":"alice@example.com","password":"secret"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.auth.EXPECT().Login(gomock.Any(), models.Credentials{Email: "alice@example.com", Password: "secret"}).Return(testUser, nil)
			m.auth.EXPECT().CreateToken(gomock.Any(), testUser).Return(models.Token{SignedString: "signed"}, nil)

			rec := serve(h, http.MethodPost, "/token", tt.body, jsonHeaders)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"access_token":"signed","token_type":"bearer"}`, rec.Body.String())
		})
	}
}

func TestToken_WrongCredentials(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrInvalidCredentials)

	form := url.Values{"username": {"alice@example.com"}, "password": {"wrong"}}
	rec := serve(h, http.MethodPost, "/token", form.Encode(),
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	assert.JSONEq(t, `{"detail":"Incorrect email or password"}`, rec.Body.String())
}

func TestToken_CreationFails(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(testUser, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)

	rec := serve(h, http.MethodPost, "/token", `{"email":"alice@example.com","password":"secret"}`, jsonHeaders)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// GET /users/me
// ─────────────────────────────────────────────

func TestMe(t *testing.T) {
	h, m := newTestHandler(t)
	m.authorized()

	rec := serve(h, http.MethodGet, "/users/me", "", bearer())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"email":"alice@example.com"}`, rec.Body.String())
}

func TestMe_WrongScheme(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/users/me", "", map[string]string{"Authorization": "Basic abc"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail":"Could not validate credentials"}`, rec.Body.String())
}
