package state

import (
	"context"
	"errors"
	"time"

	"vandar/client/internal/credentials"
	"vandar/client/internal/models"
)

var ErrSessionExpired = errors.New("session expired")

// SessionState tracks the authenticated identity. IsAuthenticated implies
// User is set; the token is mirrored here from the durable store so
// synchronous checks need no disk read.
type SessionState struct {
	User            *models.User
	Token           string
	IsLoading       bool
	IsAuthenticated bool
	Error           string
}

func (s *Store) Login(ctx context.Context, email, password string) error {
	s.beginAuth()

	resp, err := s.auth.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		s.failAuth(err)
		return err
	}

	if err := s.creds.Save(resp.Token); err != nil {
		s.log.Warn().Err(err).Msg("persist token failed")
	}

	user := resp.User
	s.update(func() {
		s.session.User = &user
		s.session.Token = resp.Token
		s.session.IsAuthenticated = true
		s.session.IsLoading = false
		s.pushNotification(SeveritySuccess, "Logged in successfully")
	})
	return nil
}

// Signup never authenticates; on success the caller routes the user to the
// email verification step.
func (s *Store) Signup(ctx context.Context, name, email, password string) (string, error) {
	s.beginAuth()

	resp, err := s.auth.Signup(ctx, models.SignupRequest{Name: name, Email: email, Password: password})
	if err != nil {
		s.failAuth(err)
		return "", err
	}

	s.update(func() {
		s.session.IsLoading = false
		s.pushNotification(SeveritySuccess, "Registration successful! Please verify your email.")
	})
	return resp.Message, nil
}

// RestoreSession rebuilds the session from the durable credential. Any
// failure clears the credential and forces the session unauthenticated.
func (s *Store) RestoreSession(ctx context.Context) error {
	s.beginAuth()

	token, err := s.creds.Load()
	if err != nil {
		s.failRestore("No token found")
		return err
	}

	if credentials.Expired(token, time.Now()) {
		if err := s.creds.Clear(); err != nil {
			s.log.Warn().Err(err).Msg("clear credential failed")
		}
		s.failRestore("Session expired")
		return ErrSessionExpired
	}

	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		if err := s.creds.Clear(); err != nil {
			s.log.Warn().Err(err).Msg("clear credential failed")
		}
		s.failRestore(err.Error())
		return err
	}

	s.update(func() {
		s.session.User = &user
		s.session.Token = token
		s.session.IsAuthenticated = true
		s.session.IsLoading = false
	})
	return nil
}

// Logout clears the session and the durable credential regardless of prior
// state. The server call is best effort and runs first, while the bearer
// token is still attached.
func (s *Store) Logout(ctx context.Context) {
	if err := s.auth.Logout(ctx); err != nil {
		s.log.Warn().Err(err).Msg("server logout failed")
	}
	if err := s.creds.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("clear credential failed")
	}

	s.update(func() {
		s.session.User = nil
		s.session.Token = ""
		s.session.IsAuthenticated = false
		s.pushNotification(SeveritySuccess, "Logged out successfully")
	})
}

func (s *Store) VerifyEmail(ctx context.Context, token string) (string, error) {
	s.beginAuth()

	resp, err := s.auth.VerifyEmail(ctx, token)
	if err != nil {
		s.failAuth(err)
		return "", err
	}

	s.update(func() { s.session.IsLoading = false })
	return resp.Message, nil
}

// ForgotPassword only toggles loading and error; it never touches the
// authenticated state.
func (s *Store) ForgotPassword(ctx context.Context, email string) (string, error) {
	s.beginAuth()

	resp, err := s.auth.ForgotPassword(ctx, email)
	if err != nil {
		s.failAuth(err)
		return "", err
	}

	s.update(func() { s.session.IsLoading = false })
	return resp.Message, nil
}

func (s *Store) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	s.beginAuth()

	resp, err := s.auth.ResetPassword(ctx, token, newPassword)
	if err != nil {
		s.failAuth(err)
		return "", err
	}

	s.update(func() { s.session.IsLoading = false })
	return resp.Message, nil
}

func (s *Store) ClearError() {
	s.update(func() { s.session.Error = "" })
}

func (s *Store) beginAuth() {
	s.update(func() {
		s.session.IsLoading = true
		s.session.Error = ""
	})
}

func (s *Store) failAuth(err error) {
	s.update(func() {
		s.session.IsLoading = false
		s.session.Error = err.Error()
		s.pushNotification(SeverityError, err.Error())
	})
}

func (s *Store) failRestore(msg string) {
	s.update(func() {
		s.session.IsLoading = false
		s.session.IsAuthenticated = false
		s.session.User = nil
		s.session.Token = ""
		s.session.Error = msg
	})
}
