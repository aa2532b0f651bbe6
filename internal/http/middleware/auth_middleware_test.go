package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/you/otpauthsvc/domain"
	"github.com/you/otpauthsvc/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func runProtected(t *testing.T, tokenSvc domain.TokenService, sessionRepo domain.SessionRepository, authHeader string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()

	var captured *gin.Context
	router := gin.New()
	router.GET("/protected", AuthMiddleware(tokenSvc, sessionRepo), func(c *gin.Context) {
		captured = c
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w, captured
}

func TestAuthMiddleware(t *testing.T) {
	validClaims := &domain.TokenClaims{IdentityID: 7, SessionID: "sess-1"}
	validSession := &domain.Session{ID: "sess-1", IdentityID: 7, ExpiresAt: time.Now().Add(time.Hour)}

	tests := []struct {
		name           string
		authHeader     string
		setupToken     func(*mocks.MockTokenService)
		setupSession   func(*mocks.MockSessionRepository)
		expectedStatus int
	}{
		{
			name:           "missing header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed header",
			authHeader:     "Basic abc123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad-token",
			setupToken: func(m *mocks.MockTokenService) {
				m.ValidateAccessTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return nil, domain.ErrTokenInvalid
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "session gone",
			authHeader: "Bearer good-token",
			setupToken: func(m *mocks.MockTokenService) {
				m.ValidateAccessTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return validClaims, nil
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "session identity mismatch",
			authHeader: "Bearer good-token",
			setupToken: func(m *mocks.MockTokenService) {
				m.ValidateAccessTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return validClaims, nil
				}
			},
			setupSession: func(m *mocks.MockSessionRepository) {
				m.FindByIDFunc = func(_ context.Context, sessionID string) (*domain.Session, error) {
					return &domain.Session{ID: sessionID, IdentityID: 99, ExpiresAt: time.Now().Add(time.Hour)}, nil
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token and session",
			authHeader: "Bearer good-token",
			setupToken: func(m *mocks.MockTokenService) {
				m.ValidateAccessTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return validClaims, nil
				}
			},
			setupSession: func(m *mocks.MockSessionRepository) {
				m.FindByIDFunc = func(_ context.Context, sessionID string) (*domain.Session, error) {
					return validSession, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mocks.NewMockTokenService()
			if tt.setupToken != nil {
				tt.setupToken(tokenSvc)
			}
			sessionRepo := mocks.NewMockSessionRepository()
			if tt.setupSession != nil {
				tt.setupSession(sessionRepo)
			}

			w, captured := runProtected(t, tokenSvc, sessionRepo, tt.authHeader)
			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				identityID, _ := captured.Get("identity_id")
				assert.Equal(t, uint(7), identityID)
				sessionID, _ := captured.Get("session_id")
				assert.Equal(t, "sess-1", sessionID)
			}
		})
	}
}
