package session_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nigel2421/wemisireact/models"
	"github.com/nigel2421/wemisireact/session"
	"github.com/nigel2421/wemisireact/store"
)

type sessionTestEnv struct {
	db     *gorm.DB
	mgr    *session.Manager
	server *httptest.Server
	client *http.Client
}

func newSessionEnv(t *testing.T) *sessionTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))

	mgr := session.NewManager(db, "test-secret", false)

	r := gin.New()
	r.Use(mgr.Middleware())
	r.GET("/whoami", func(c *gin.Context) {
		sess := session.Current(c)
		c.JSON(http.StatusOK, gin.H{"id": sess.ID, "isAdmin": sess.IsAdmin})
	})
	r.POST("/touch", func(c *gin.Context) {
		sess := session.Current(c)
		sess.Username = "touched"
		require.NoError(t, mgr.Save(c, sess))
		c.JSON(http.StatusOK, gin.H{"id": sess.ID})
	})
	r.POST("/promote", func(c *gin.Context) {
		fresh, err := mgr.Regenerate(c, session.Current(c))
		require.NoError(t, err)
		fresh.IsAdmin = true
		require.NoError(t, mgr.Save(c, fresh))
		c.JSON(http.StatusOK, gin.H{"id": fresh.ID})
	})
	r.POST("/destroy", func(c *gin.Context) {
		require.NoError(t, mgr.Destroy(c))
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &sessionTestEnv{db: db, mgr: mgr, server: server, client: &http.Client{Jar: jar}}
}

func (e *sessionTestEnv) call(t *testing.T, method, path string) map[string]interface{} {
	t.Helper()
	req, err := http.NewRequest(method, e.server.URL+path, nil)
	require.NoError(t, err)
	resp, err := e.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestTransientSessionsGetNoCookie(t *testing.T) {
	env := newSessionEnv(t)

	first := env.call(t, http.MethodGet, "/whoami")
	second := env.call(t, http.MethodGet, "/whoami")

	// Nothing was saved, so no cookie was issued and ids differ per request.
	assert.NotEqual(t, first["id"], second["id"])

	var count int64
	require.NoError(t, env.db.Model(&models.Session{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSavePersistsAcrossRequests(t *testing.T) {
	env := newSessionEnv(t)

	saved := env.call(t, http.MethodPost, "/touch")
	seen := env.call(t, http.MethodGet, "/whoami")
	assert.Equal(t, saved["id"], seen["id"])
}

func TestSessionCookieAttributes(t *testing.T) {
	env := newSessionEnv(t)

	req, err := http.NewRequest(http.MethodPost, env.server.URL+"/touch", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, session.DefaultCookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.False(t, cookie.Secure)
	assert.InDelta(t, int(session.DefaultTTL.Seconds()), cookie.MaxAge, 1)
}

func TestRegenerateIssuesNewID(t *testing.T) {
	env := newSessionEnv(t)

	before := env.call(t, http.MethodPost, "/touch")
	after := env.call(t, http.MethodPost, "/promote")
	assert.NotEqual(t, before["id"], after["id"])

	// The old record is gone; the new one carries the admin flag.
	var count int64
	require.NoError(t, env.db.Model(&models.Session{}).Where("id = ?", before["id"]).Count(&count).Error)
	assert.Zero(t, count)

	whoami := env.call(t, http.MethodGet, "/whoami")
	assert.Equal(t, after["id"], whoami["id"])
	assert.Equal(t, true, whoami["isAdmin"])
}

func TestDestroyIsIdempotent(t *testing.T) {
	env := newSessionEnv(t)

	saved := env.call(t, http.MethodPost, "/touch")
	env.call(t, http.MethodPost, "/destroy")
	env.call(t, http.MethodPost, "/destroy")

	whoami := env.call(t, http.MethodGet, "/whoami")
	assert.NotEqual(t, saved["id"], whoami["id"])
}

func TestTamperedCookieYieldsFreshSession(t *testing.T) {
	env := newSessionEnv(t)

	saved := env.call(t, http.MethodPost, "/touch")

	req, err := http.NewRequest(http.MethodGet, env.server.URL+"/whoami", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{
		Name:  session.DefaultCookieName,
		Value: fmt.Sprintf("%v.forged-signature", saved["id"]),
	})
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEqual(t, saved["id"], out["id"])
}

func TestExpiredSessionIsIgnored(t *testing.T) {
	env := newSessionEnv(t)

	saved := env.call(t, http.MethodPost, "/touch")
	require.NoError(t, env.db.Model(&models.Session{}).
		Where("id = ?", saved["id"]).
		Update("expires_at", time.Now().Add(-time.Hour)).Error)

	whoami := env.call(t, http.MethodGet, "/whoami")
	assert.NotEqual(t, saved["id"], whoami["id"])
}
