// Package cookie manages the HttpOnly token cookies the auth endpoints set.
package cookie

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pourup/internal/pkg/config"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"
)

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessTTL, refreshTTL time.Duration) {
	c.SetSameSite(parseSameSite(cfg.SameSite))
	setCookie(c, cfg, AccessTokenCookieName, accessToken, int(accessTTL.Seconds()))
	setCookie(c, cfg, RefreshTokenCookieName, refreshToken, int(refreshTTL.Seconds()))
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(parseSameSite(cfg.SameSite))
	setCookie(c, cfg, AccessTokenCookieName, "", -1)
	setCookie(c, cfg, RefreshTokenCookieName, "", -1)
}

// setCookie always sets HttpOnly on the root path; the token cookies are
// never meant to be script-readable.
func setCookie(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int) {
	c.SetCookie(name, value, maxAge, "/", cfg.Domain, cfg.Secure, true)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func parseSameSite(s string) http.SameSite {
	switch s {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
