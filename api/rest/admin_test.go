package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/minerco/server/api/rest"
	"github.com/minerco/server/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func nopLogger() *zap.Logger { l, _ := zap.NewDevelopment(); return l }

func adminPost(r *gin.Engine, path, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set("X-Admin-Key", key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminUnlock_CorrectKey(t *testing.T) {
	env := newGameEnv(t)
	token, accID := env.login(t, "wannabe")

	w := postJSON(env.r, "/api/admin/unlock", map[string]string{"key": testAdminKey}, "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)

	p := env.player(t, accID)
	assert.True(t, p.IsAdmin)
}

func TestAdminUnlock_WrongKey(t *testing.T) {
	env := newGameEnv(t)
	token, accID := env.login(t, "intruder")

	w := postJSON(env.r, "/api/admin/unlock", map[string]string{"key": "guess"}, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	p := env.player(t, accID)
	assert.False(t, p.IsAdmin)
}

func TestAdminGrants_RequireElevation(t *testing.T) {
	env := newGameEnv(t)
	token, accID := env.login(t, "plainuser")

	w := postJSON(env.r, "/api/admin/silver", nil, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w2 := postJSON(env.r, "/api/admin/powerups", nil, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w2.Code)

	p := env.player(t, accID)
	assert.Equal(t, int64(0), p.Silver)
	assert.Empty(t, p.Powerups)
}

func TestAdminGrants_AfterUnlock(t *testing.T) {
	env := newGameEnv(t)
	token, accID := env.login(t, "operator")

	w := postJSON(env.r, "/api/admin/unlock", map[string]string{"key": testAdminKey}, "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)

	w2 := postJSON(env.r, "/api/admin/silver", nil, "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusOK, w2.Code)
	var res map[string]interface{}
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &res))
	assert.Equal(t, float64(999999), res["silver"])

	w3 := postJSON(env.r, "/api/admin/powerups", nil, "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusOK, w3.Code)

	p := env.player(t, accID)
	assert.Equal(t, int64(999999), p.Silver)
	assert.NotEmpty(t, p.Powerups)
}

func TestAdminAuth_MissingKeyDisabled(t *testing.T) {
	r := gin.New()
	r.Use(rest.AdminAuth(""))
	r.POST("/api/ops/ping", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	w := adminPost(r, "/api/ops/ping", "any-key", "{}")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAdminAuth_WrongKey(t *testing.T) {
	r := gin.New()
	r.Use(rest.AdminAuth("secret"))
	r.POST("/api/ops/ping", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	assert.Equal(t, http.StatusUnauthorized, adminPost(r, "/api/ops/ping", "wrong", "{}").Code)
	assert.Equal(t, http.StatusUnauthorized, adminPost(r, "/api/ops/ping", "", "{}").Code)
	assert.Equal(t, http.StatusOK, adminPost(r, "/api/ops/ping", "secret", "{}").Code)
}

func TestBanAccount(t *testing.T) {
	env := newGameEnv(t)
	_, accID := env.login(t, "tobebanned")

	opsR := gin.New()
	opsR.Use(rest.AdminAuth(testAdminKey))
	// Reuse the env's admin handler wiring through a fresh router bound
	// to the same DB.
	adminH := rest.NewAdminHandler(env.db, nil, nil, testAdminKey, nopLogger())
	opsR.POST("/api/ops/accounts/:id/ban", adminH.BanAccount)

	w := adminPost(opsR, "/api/ops/accounts/"+strconv.FormatInt(accID, 10)+"/ban", testAdminKey, `{"ban":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	var acc model.Account
	require.NoError(t, env.db.First(&acc, accID).Error)
	assert.Equal(t, 0, acc.Status)

	// Unban restores status.
	w2 := adminPost(opsR, "/api/ops/accounts/"+strconv.FormatInt(accID, 10)+"/ban", testAdminKey, `{"ban":false}`)
	require.Equal(t, http.StatusOK, w2.Code)
	require.NoError(t, env.db.First(&acc, accID).Error)
	assert.Equal(t, 1, acc.Status)

	// Unknown account is a 404.
	w3 := adminPost(opsR, "/api/ops/accounts/99999/ban", testAdminKey, `{"ban":true}`)
	assert.Equal(t, http.StatusNotFound, w3.Code)
}
