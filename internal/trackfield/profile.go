package trackfield

import (
	"context"
	"fmt"
	"net/http"

	"github.com/athletiq/athletiq/internal/telemetry/tracing"
)

type UpdateProfileParams struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Club        string `json:"club,omitempty"`
	Discipline  string `json:"discipline,omitempty"`
	Birthdate   string `json:"birthdate,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	Description string `json:"description,omitempty"`
}

func (c *Client) GetProfile(ctx context.Context) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trackfield.getProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	req, err := c.newRequest(ctx, http.MethodGet, "/profile", nil)
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := c.do(req, &profile); err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

func (c *Client) UpdateProfile(ctx context.Context, params UpdateProfileParams) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trackfield.updateProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	req, err := c.newRequest(ctx, http.MethodPut, "/profile", params)
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := c.do(req, &profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &profile, nil
}
