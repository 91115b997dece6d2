package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/zidaf/inayaspace/internal/config"
	"github.com/zidaf/inayaspace/internal/entity"
	"github.com/zidaf/inayaspace/internal/testutil/testdb"
)

const testPassword = "famille2026!"

func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.Open(t)
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	for _, u := range []entity.User{
		{Email: "papa@example.com", PasswordHash: string(hash), Role: entity.RolePapa},
		{Email: "maman@example.com", PasswordHash: string(hash), Role: entity.RoleMaman},
		{Email: "admin@example.com", PasswordHash: string(hash), Role: entity.RoleAdmin},
	} {
		u := u
		require.NoError(t, db.Create(&u).Error)
	}

	srv := New(Options{
		Config: &config.Config{
			AllowedOrigins: "http://localhost:3000",
			SessionTTL:     time.Hour,
		},
		DB: db,
	})
	return srv, db
}

func doJSON(t *testing.T, srv *Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, srv *Server, email string) string {
	t.Helper()

	rec := doJSON(t, srv, http.MethodPost, "/api/auth", "", gin.H{
		"action":   "login",
		"email":    email,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Len(t, resp.Token, 64)
	return resp.Token
}

func TestLoginVerifyLogout(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/auth", "", gin.H{
		"action":   "login",
		"email":    "papa@example.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	token := login(t, srv, "papa@example.com")

	rec = doJSON(t, srv, http.MethodPost, "/api/auth", token, gin.H{"action": "verify"})
	require.Equal(t, http.StatusOK, rec.Code)
	var verify struct {
		User struct {
			Type string `json:"type"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verify))
	require.Equal(t, entity.RolePapa, verify.User.Type)

	rec = doJSON(t, srv, http.MethodPost, "/api/auth", token, gin.H{"action": "logout"})
	require.Equal(t, http.StatusOK, rec.Code)

	// The destroyed token no longer opens anything.
	rec = doJSON(t, srv, http.MethodGet, "/api/journal", token, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/api/journal", "/api/videos", "/api/events", "/api/comments"} {
		rec := doJSON(t, srv, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	rec := doJSON(t, srv, http.MethodGet, "/api/journal", "made-up-token", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJournalOwnershipAcrossRoles(t *testing.T) {
	srv, _ := newTestServer(t)

	papaToken := login(t, srv, "papa@example.com")
	mamanToken := login(t, srv, "maman@example.com")
	adminToken := login(t, srv, "admin@example.com")

	// Papa writes an entry.
	rec := doJSON(t, srv, http.MethodPost, "/api/journal", papaToken, gin.H{
		"title":   "Première dent",
		"content": "Inaya a sa première dent !",
		"mood":    "joie",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var created struct {
		Entry struct {
			ID string `json:"id"`
		} `json:"entry"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.Entry.ID)

	// The admin account cannot write to the journal.
	rec = doJSON(t, srv, http.MethodPost, "/api/journal", adminToken, gin.H{
		"title":   "x",
		"content": "x",
	})
	require.Equal(t, http.StatusForbidden, rec.Code)

	// Maman cannot delete papa's entry.
	deletePath := fmt.Sprintf("/api/journal?id=%s", created.Entry.ID)
	rec = doJSON(t, srv, http.MethodDelete, deletePath, mamanToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	// The admin can.
	rec = doJSON(t, srv, http.MethodDelete, deletePath, adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, srv, http.MethodGet, "/api/journal", mamanToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var remaining []entity.JournalEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &remaining))
	require.Empty(t, remaining)
}

func TestCommentsAndLikesFlow(t *testing.T) {
	srv, db := newTestServer(t)

	papaToken := login(t, srv, "papa@example.com")
	mamanToken := login(t, srv, "maman@example.com")

	// One photo to hang comments and likes on.
	photo := &entity.Photo{Title: "plage", URL: "https://x/p.webp", TakenAt: "2026-08-15", Author: entity.RolePapa}
	require.NoError(t, db.Create(photo).Error)

	rec := doJSON(t, srv, http.MethodPost, "/api/comments", mamanToken, gin.H{
		"content_type": "photos",
		"content_id":   photo.ID.String(),
		"comment_text": "Magnifique !",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, srv, http.MethodPost, "/api/likes", papaToken, gin.H{
		"content_type": "photos",
		"content_id":   photo.ID.String(),
		"emoji_id":     1,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	listPath := fmt.Sprintf("/api/likes?content_type=photos&content_id=%s", photo.ID.String())
	rec = doJSON(t, srv, http.MethodGet, listPath, papaToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var likes struct {
		Counts       map[string]int64 `json:"emoji_counts"`
		UserHasLiked bool             `json:"user_has_liked"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &likes))
	require.True(t, likes.UserHasLiked)
	require.EqualValues(t, 1, likes.Counts["❤️"])

	commentsPath := fmt.Sprintf("/api/comments?content_type=photos&content_id=%s", photo.ID.String())
	rec = doJSON(t, srv, http.MethodGet, commentsPath, papaToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var comments struct {
		Comments []struct {
			Text     string `json:"comment_text"`
			UserType string `json:"user_type"`
		} `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comments))
	require.Len(t, comments.Comments, 1)
	require.Equal(t, "Magnifique !", comments.Comments[0].Text)
	require.Equal(t, entity.RoleMaman, comments.Comments[0].UserType)
}

func TestAdminEndpointsRequireAdminRole(t *testing.T) {
	srv, _ := newTestServer(t)

	papaToken := login(t, srv, "papa@example.com")
	adminToken := login(t, srv, "admin@example.com")

	rec := doJSON(t, srv, http.MethodGet, "/api/admin?action=stats", papaToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/admin?action=stats", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var stats struct {
		Stats struct {
			FamilyMembers int64 `json:"family_members"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	require.EqualValues(t, 2, stats.Stats.FamilyMembers)

	rec = doJSON(t, srv, http.MethodPost, "/api/admin", adminToken, gin.H{
		"action": "update_config",
		"key":    "theme",
		"value":  "rose",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, srv, http.MethodGet, "/api/admin?action=config", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var config struct {
		Config []struct {
			Key   string `json:"key"`
			Value string `json:"value"`
		} `json:"config"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &config))
	require.Len(t, config.Config, 1)
	require.Equal(t, "rose", config.Config[0].Value)
}

func TestChangePasswordFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	token := login(t, srv, "maman@example.com")
	otherDevice := login(t, srv, "maman@example.com")

	rec := doJSON(t, srv, http.MethodPost, "/api/change-password", token, gin.H{
		"current_password": testPassword,
		"new_password":     "short",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/api/change-password", token, gin.H{
		"current_password": testPassword,
		"new_password":     "nouvelle2026$",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// The session that changed the password is kept, any other is
	// revoked.
	rec = doJSON(t, srv, http.MethodPost, "/api/auth", token, gin.H{"action": "verify"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, srv, http.MethodPost, "/api/auth", otherDevice, gin.H{"action": "verify"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// The new password works for a fresh login.
	rec = doJSON(t, srv, http.MethodPost, "/api/auth", "", gin.H{
		"action":   "login",
		"email":    "maman@example.com",
		"password": "nouvelle2026$",
	})
	require.Equal(t, http.StatusOK, rec.Code)
}
