package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"dashboard/internal/domain"
	"dashboard/internal/domain/models"
	"dashboard/internal/repositories"
	"dashboard/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService checks submitted credentials against the users table.
// Credential problems come back as categorized domain.AuthError values;
// infrastructure failures keep their original type so the caller does not
// mistake an outage for a bad password.
type AuthService struct {
	Users     repositories.UserRepository
	RequestID string
}

func (s AuthService) SignIn(email, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || len(password) < 6 {
		return models.User{}, domain.AuthError{Kind: domain.AuthKindCredentialsSignin}
	}

	user, hash, err := s.Users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.AuthError{Kind: domain.AuthKindCredentialsSignin, Err: err}
		}
		return models.User{}, fmt.Errorf("query user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return models.User{}, domain.AuthError{Kind: domain.AuthKindCredentialsSignin, Err: err}
	}

	// correct credentials, but the account itself may not sign in
	if user.Status != models.UserStatusActive {
		return models.User{}, domain.AuthError{Kind: domain.AuthKindAccessDenied}
	}

	utils.LogAction(s.RequestID, "sign_in", "user_id="+user.ID)
	return user, nil
}
