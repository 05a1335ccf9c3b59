package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// SessionCookie carries the signed session token after sign-in.
	SessionCookie = "session"

	protectedPrefix = "/dashboard"
	loginPath       = "/login"
)

// Decision is the gate's verdict for one request.
type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectDashboard
)

// Decide is the gate itself: a pure function of session presence and path.
// Unauthenticated requests may not enter the dashboard; authenticated
// requests outside it are sent to the dashboard's default page.
func Decide(loggedIn bool, path string) Decision {
	onDashboard := path == protectedPrefix || strings.HasPrefix(path, protectedPrefix+"/")
	switch {
	case onDashboard && loggedIn:
		return Allow
	case onDashboard:
		return RedirectLogin
	case loggedIn:
		return RedirectDashboard
	default:
		return Allow
	}
}

// AuthGate applies Decide to every page request. System routes under /api
// sit outside the gated page tree.
func AuthGate(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") {
			c.Next()
			return
		}

		switch Decide(IsLoggedIn(c, secret), path) {
		case RedirectLogin:
			c.Redirect(http.StatusSeeOther, loginPath)
			c.Abort()
		case RedirectDashboard:
			c.Redirect(http.StatusSeeOther, protectedPrefix)
			c.Abort()
		default:
			c.Next()
		}
	}
}

// IsLoggedIn reports whether the request carries a valid session token.
func IsLoggedIn(c *gin.Context, secret []byte) bool {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil || cookie == "" {
		return false
	}

	token, err := jwt.Parse(cookie, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	return err == nil && token.Valid
}
