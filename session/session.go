// Package session implements the server-side session layer: records live in
// the same database as the catalog, addressed by an HMAC-signed cookie. The
// cookie carries only the session id; all state (admin flag, cart, wishlist)
// stays server-side.
package session

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nigel2421/wemisireact/models"
)

const (
	// DefaultCookieName is the session cookie name.
	DefaultCookieName = "wemisi_session"
	// DefaultTTL matches the original's ~30-day session expiry.
	DefaultTTL = 30 * 24 * time.Hour

	contextKey = "wemisi/session"
)

type Manager struct {
	db         *gorm.DB
	secret     []byte
	cookieName string
	ttl        time.Duration
	secure     bool
}

// NewManager builds a session manager on top of db. secure controls the
// cookie's Secure flag and should be true behind HTTPS.
func NewManager(db *gorm.DB, secret string, secure bool) *Manager {
	return &Manager{
		db:         db,
		secret:     []byte(secret),
		cookieName: DefaultCookieName,
		ttl:        DefaultTTL,
		secure:     secure,
	}
}

// Middleware resolves the request's session. A valid, unexpired cookie loads
// the stored record; anything else (no cookie, bad signature, expired or
// deleted row) yields a fresh transient session. Transient sessions are not
// persisted and get no cookie until the first Save, so anonymous read-only
// traffic never writes a row.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(m.cookieName); err == nil {
			if id, ok := m.verify(cookie); ok {
				var sess models.Session
				err := m.db.First(&sess, "id = ? AND expires_at > ?", id, time.Now()).Error
				if err == nil {
					c.Set(contextKey, &sess)
					c.Next()
					return
				}
			}
		}
		c.Set(contextKey, &models.Session{ID: newSessionID()})
		c.Next()
	}
}

// Current returns the session resolved for this request, or nil when the
// middleware did not run.
func Current(c *gin.Context) *models.Session {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*models.Session)
	return sess
}

// Save persists the session, extends its expiry, and (re)issues the cookie.
func (m *Manager) Save(c *gin.Context, sess *models.Session) error {
	sess.ExpiresAt = time.Now().Add(m.ttl)
	if err := m.db.Save(sess).Error; err != nil {
		return err
	}
	m.setCookie(c, sess.ID, int(m.ttl.Seconds()))
	return nil
}

// Regenerate issues a new session identifier, discarding the old record.
// Called at login to defeat session fixation: state set afterwards lands on
// the fresh id only.
func (m *Manager) Regenerate(c *gin.Context, sess *models.Session) (*models.Session, error) {
	if sess != nil {
		if err := m.db.Delete(&models.Session{}, "id = ?", sess.ID).Error; err != nil {
			return nil, err
		}
	}
	fresh := &models.Session{
		ID:        newSessionID(),
		Cart:      models.CartList{},
		Wishlist:  models.StringList{},
		ExpiresAt: time.Now().Add(m.ttl),
	}
	if err := m.db.Create(fresh).Error; err != nil {
		return nil, err
	}
	c.Set(contextKey, fresh)
	m.setCookie(c, fresh.ID, int(m.ttl.Seconds()))
	return fresh, nil
}

// Destroy deletes the session record and clears the cookie. Idempotent:
// destroying an already-destroyed session is not an error.
func (m *Manager) Destroy(c *gin.Context) error {
	if sess := Current(c); sess != nil {
		if err := m.db.Delete(&models.Session{}, "id = ?", sess.ID).Error; err != nil {
			return err
		}
	}
	c.Set(contextKey, &models.Session{ID: newSessionID()})
	m.clearCookie(c)
	return nil
}

// CleanupExpired deletes expired session rows every interval. Run it as a
// goroutine from main.
func (m *Manager) CleanupExpired(interval time.Duration) {
	for {
		time.Sleep(interval)
		result := m.db.Delete(&models.Session{}, "expires_at <= ?", time.Now())
		if result.Error != nil {
			log.Printf("❌ Session cleanup failed: %v", result.Error)
			continue
		}
		if result.RowsAffected > 0 {
			log.Printf("🗑️ Removed %d expired sessions", result.RowsAffected)
		}
	}
}

func (m *Manager) setCookie(c *gin.Context, id string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, m.sign(id), maxAge, "/", "", m.secure, true)
}

func (m *Manager) clearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
}

// sign produces "id.signature"; verify checks the signature in constant time.
func (m *Manager) sign(id string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(id))
	return id + "." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func (m *Manager) verify(cookie string) (string, bool) {
	dot := strings.IndexByte(cookie, '.')
	if dot <= 0 {
		return "", false
	}
	id := cookie[:dot]
	if hmac.Equal([]byte(m.sign(id)), []byte(cookie)) {
		return id, true
	}
	return "", false
}

func newSessionID() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}
