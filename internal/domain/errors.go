package domain

import (
	"errors"
	"fmt"
)

// DomainError keeps backward compatibility for generic codes.
type DomainError struct {
	Code string
	Err  error
}

func (e DomainError) Error() string {
	if e.Err == nil {
		return e.Code
	}
	if e.Code == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e DomainError) Unwrap() error {
	return e.Err
}

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

// AuthErrorKind categorizes sign-in failures so callers can map them to
// user-facing strings without string-matching error text.
type AuthErrorKind string

const (
	// AuthKindCredentialsSignin covers everything the user can fix by
	// retyping: unknown email, wrong password, malformed credentials.
	AuthKindCredentialsSignin AuthErrorKind = "CredentialsSignin"
	// AuthKindAccessDenied covers correct credentials on an account that
	// may not sign in (status other than active).
	AuthKindAccessDenied AuthErrorKind = "AccessDenied"
)

// AuthError is a categorized authentication failure. Infrastructure errors
// (DB down, query failures) are never wrapped in AuthError so they keep
// propagating as what they are.
type AuthError struct {
	Kind AuthErrorKind
	Err  error
}

func (e AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth error (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("auth error (%s)", e.Kind)
}

func (e AuthError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

func IsAuth(err error) bool {
	var target AuthError
	return errors.As(err, &target)
}

// AuthKind extracts the category of an AuthError, or "" for non-auth errors.
func AuthKind(err error) AuthErrorKind {
	var target AuthError
	if errors.As(err, &target) {
		return target.Kind
	}
	return ""
}
