package handlers

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/config"
	internaldb "github.com/ZenKhalil/ExamProject-Barbershop-app/internal/db"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/middleware"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/models"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "auth.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, internaldb.Migrate(db))

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Admin{
		Username:     "admin",
		PasswordHash: string(hash),
	}).Error)

	cfg := &config.Config{JWTSecret: "test-secret"}

	r := gin.New()
	r.POST("/api/admin/login", NewAuthHandler(db, cfg).Login)

	secured := r.Group("/api", middleware.AuthMiddleware(cfg))
	secured.GET("/bookings", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"adminID": c.GetUint(middleware.ContextAdminID)})
	})
	return r
}

func TestAdminLoginAndAccess(t *testing.T) {
	r := newAuthRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/login", map[string]any{
		"username": "Admin",
		"password": "hunter2",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminLoginWrongPassword(t *testing.T) {
	r := newAuthRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/login", map[string]any{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Same error body shape as every other endpoint.
	body := decode(t, w)
	assert.Equal(t, "invalid_credentials", body["error_code"])
	assert.NotEmpty(t, body["message"])
}

func TestSecuredRouteRejectsBadTokens(t *testing.T) {
	r := newAuthRouter(t)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
