package handlers

import (
	"net/http"
	"time"

	"dashboard/internal/domain"
	"dashboard/internal/http/middleware"
	"dashboard/internal/repositories"
	"dashboard/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const sessionTTL = 24 * time.Hour

type AuthHandler struct {
	Users  repositories.UserRepository
	Secret []byte
}

// POST /login
//
// Categorized sign-in failures map to the two user-facing strings; anything
// else (DB outage, signing failure) stays on the generic error path so it is
// never presented as a login problem.
func (h AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	svc := services.AuthService{Users: h.Users, RequestID: middleware.GetRequestID(c)}
	user, err := svc.SignIn(email, password)
	if err != nil {
		if domain.IsAuth(err) {
			msg := "Something went wrong."
			if domain.AuthKind(err) == domain.AuthKindCredentialsSignin {
				msg = "Invalid credentials."
			}
			c.JSON(http.StatusUnauthorized, gin.H{"message": msg})
			return
		}
		RespondError(c, http.StatusInternalServerError, "failed to sign in", err)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(sessionTTL).Unix(),
	})
	signed, err := token.SignedString(h.Secret)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create session", err)
		return
	}

	c.SetCookie(middleware.SessionCookie, signed, int(sessionTTL/time.Second), "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// POST /dashboard/logout
func (h AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/login")
}
