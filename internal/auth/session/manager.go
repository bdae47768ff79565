package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/polenmarket/polen/internal/config"
)

const (
	cookieName = "_sid"
	cookiePath = "/"
)

// Manager reads and writes the opaque admin session cookie. The cookie is
// always HttpOnly and SameSite=Lax; Secure comes from config so plain-HTTP
// development setups keep working.
type Manager struct {
	secure bool
}

func NewManager(cfg config.Config) *Manager {
	return &Manager{secure: cfg.AuthCookieSecure}
}

func (m *Manager) ReadToken(c *gin.Context) (string, bool) {
	raw, err := c.Cookie(cookieName)
	if err != nil {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}

func (m *Manager) Set(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	m.write(c, token, maxAge)
}

func (m *Manager) Clear(c *gin.Context) {
	m.write(c, "", -1)
}

func (m *Manager) write(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, value, maxAge, cookiePath, "", m.secure, true)
}
