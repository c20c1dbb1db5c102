package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/boutique-dz/storefront-backend/internal/models"
)

func TestSession(t *testing.T) {
	var gotToken string
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = SessionTokenFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	sessionHandler := Session(testHandler)

	t.Run("missing session token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		w := httptest.NewRecorder()

		sessionHandler.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", w.Code)
		}
	})

	t.Run("token reaches the handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		req.Header.Set(HeaderSessionToken, "session-abc")
		w := httptest.NewRecorder()

		sessionHandler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", w.Code)
		}
		if gotToken != "session-abc" {
			t.Errorf("expected token session-abc, got %s", gotToken)
		}
	})
}

func TestAuthSnapshot(t *testing.T) {
	var got models.AuthSnapshot
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = AuthSnapshotFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	snapshotHandler := AuthSnapshot(testHandler)

	tests := []struct {
		name        string
		headers     map[string]string
		wantAuth    bool
		wantProfile *models.Profile
	}{
		{
			name:     "no headers means unauthenticated",
			headers:  nil,
			wantAuth: false,
		},
		{
			name: "subject with both flags",
			headers: map[string]string{
				HeaderAuthSubject:  "user-1",
				HeaderCCPValidated: "true",
				HeaderIndependent:  "false",
			},
			wantAuth:    true,
			wantProfile: &models.Profile{CCPValidated: true, IsIndependent: false},
		},
		{
			name: "subject without flags leaves profile nil",
			headers: map[string]string{
				HeaderAuthSubject: "user-1",
			},
			wantAuth: true,
		},
		{
			name: "malformed flags leave profile nil",
			headers: map[string]string{
				HeaderAuthSubject:  "user-1",
				HeaderCCPValidated: "yes please",
				HeaderIndependent:  "false",
			},
			wantAuth: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()

			snapshotHandler.ServeHTTP(w, req)

			if got.IsAuthenticated != tt.wantAuth {
				t.Errorf("IsAuthenticated = %v, want %v", got.IsAuthenticated, tt.wantAuth)
			}

			if tt.wantProfile == nil {
				if got.Profile != nil {
					t.Errorf("expected nil profile, got %+v", got.Profile)
				}
				return
			}

			if got.Profile == nil {
				t.Fatal("expected a profile, got nil")
			}
			if *got.Profile != *tt.wantProfile {
				t.Errorf("profile = %+v, want %+v", got.Profile, tt.wantProfile)
			}
		})
	}
}
