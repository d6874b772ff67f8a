package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	apirest "github.com/minerco/server/api/rest"
	"github.com/minerco/server/audit"
	"github.com/minerco/server/cache"
	"github.com/minerco/server/config"
	"github.com/minerco/server/game/catalog"
	"github.com/minerco/server/game/economy"
	mw "github.com/minerco/server/middleware"
	"github.com/minerco/server/scheduler"
	"github.com/minerco/server/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// AdminKey is the shared operator secret used by the test server.
const AdminKey = "integration-admin-key"

// TestServer wraps a real HTTP server with all subsystems wired together.
type TestServer struct {
	DB      *gorm.DB
	Cache   cache.Cache
	Engine  *economy.Engine
	Server  *httptest.Server
	URL     string // http://127.0.0.1:<port>
	Sec     config.SecurityConfig
	ranking *apirest.RankingHandler
}

// NewTestServer creates a fully wired server for integration testing.
// It mirrors the dependency wiring in main.go.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// ---- Infrastructure ----
	db := testutil.SetupTestDB(t)
	c := testutil.SetupTestCache(t)
	logger := zap.NewNop()

	sec := config.SecurityConfig{
		JWTSecret:      "integration-test-secret",
		JWTTTLH:        72 * time.Hour,
		RateLimitRPS:   1000,
		RateLimitBurst: 2000,
		AdminKey:       AdminKey,
	}

	auditSvc := audit.New(db, logger)
	t.Cleanup(func() { auditSvc.Stop(nil) })

	engine := economy.New(catalog.Default())
	sched := scheduler.New(logger)
	t.Cleanup(sched.Stop)

	// ---- Handlers ----
	authH := apirest.NewAuthHandler(db, c, sec)
	gameH := apirest.NewGameHandler(db, engine, auditSvc, logger)
	rankH := apirest.NewRankingHandler(db, c, logger, 100)
	adminH := apirest.NewAdminHandler(db, gameH, sched, sec.AdminKey, logger)

	r := gin.New()
	r.Use(mw.TraceID(), mw.Recovery(logger))
	r.Use(mw.RateLimit(rate.Limit(sec.RateLimitRPS), sec.RateLimitBurst))

	api := r.Group("/api")
	{
		api.POST("/auth/login", authH.Login)
		api.POST("/auth/logout", mw.Auth(sec, c), authH.Logout)
		api.POST("/auth/refresh", mw.Auth(sec, c), authH.Refresh)

		g := api.Group("", mw.Auth(sec, c))
		g.GET("/player", gameH.GetPlayer)
		g.POST("/mine", gameH.Mine)
		g.POST("/sell", gameH.SellAll)
		g.POST("/shop/pickaxe", gameH.BuyPickaxe)
		g.POST("/shop/sword", gameH.BuySword)
		g.POST("/shop/powerup", gameH.BuyPowerup)
		g.POST("/pets/spin", gameH.SpinPet)
		g.POST("/codes/redeem", gameH.RedeemCode)
		g.POST("/daily/claim", gameH.ClaimDaily)
		g.POST("/admin/unlock", adminH.Unlock)
		g.POST("/admin/silver", adminH.GrantSilver)
		g.POST("/admin/powerups", adminH.GrantPowerups)
		g.GET("/ranking/silver", rankH.TopSilver)

		ops := api.Group("/ops", apirest.AdminAuth(sec.AdminKey))
		ops.POST("/accounts/:id/ban", adminH.BanAccount)
		ops.POST("/ranking/refresh", rankH.RefreshRanking)
	}

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &TestServer{
		DB:      db,
		Cache:   c,
		Engine:  engine,
		Server:  srv,
		URL:     srv.URL,
		Sec:     sec,
		ranking: rankH,
	}
}

// PostJSON sends a POST with optional bearer token and returns the response.
func (ts *TestServer) PostJSON(t *testing.T, path string, body interface{}, token string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(http.MethodPost, ts.URL+path, rd)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	return resp
}

// Get sends a GET with optional bearer token.
func (ts *TestServer) Get(t *testing.T, path string, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	return resp
}

// ReadJSON decodes a response body into target and closes it.
func ReadJSON(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, target), "body: %s", string(b))
}

// Login authenticates (auto-registering on first use) and returns the token.
func (ts *TestServer) Login(t *testing.T, username, password string) (token string, accountID int64) {
	t.Helper()
	resp := ts.PostJSON(t, "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	ReadJSON(t, resp, &body)
	return body["token"].(string), int64(body["account_id"].(float64))
}

var uniqueCounter int64

// UniqueID returns a process-unique name with the given prefix.
func UniqueID(prefix string) string {
	n := atomic.AddInt64(&uniqueCounter, 1)
	return fmt.Sprintf("%s_%d_%d", prefix, time.Now().UnixNano()%1_000_000, n)
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }

func jsonBody(s string) io.Reader { return strings.NewReader(s) }
