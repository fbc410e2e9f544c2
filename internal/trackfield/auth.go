package trackfield

import (
	"context"
	"fmt"
	"net/http"

	"github.com/athletiq/athletiq/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

type SignUpParams struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Club      string `json:"club,omitempty"`
	Birthdate string `json:"birthdate,omitempty"`
}

type authResponse struct {
	Token string `json:"token"`
}

// SignUp registers a new athlete account. The backend sends the
// confirmation mail; nothing else to do on this side.
func (c *Client) SignUp(ctx context.Context, params SignUpParams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trackfield.signUp")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/signup", params)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("sign up: %w", err)
	}

	log.Debugf("signed up new account for %s", params.Email)
	return nil
}

// Login exchanges credentials for a bearer token; the token is kept on the
// client and attached to every subsequent request.
func (c *Client) Login(ctx context.Context, email, password string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trackfield.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}

	var resp authResponse
	if err := c.do(req, &resp); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" {
		return fmt.Errorf("login: empty token in response")
	}

	c.setToken(resp.Token)
	log.Debugf("logged in as %s", email)
	return nil
}

func (c *Client) Logout(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trackfield.logout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/logout", nil)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	c.setToken("")
	return nil
}

// RequestPasswordReset triggers the reset mail for the given address. The
// backend deliberately responds the same whether the account exists or not.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trackfield.requestPasswordReset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/password-reset", map[string]string{
		"email": email,
	})
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("request password reset: %w", err)
	}
	return nil
}

func (c *Client) ConfirmPasswordReset(ctx context.Context, resetToken, newPassword string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trackfield.confirmPasswordReset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/password-reset/confirm", map[string]string{
		"token":    resetToken,
		"password": newPassword,
	})
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("confirm password reset: %w", err)
	}
	return nil
}
