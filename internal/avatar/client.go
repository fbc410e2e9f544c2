package avatar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/athletiq/athletiq/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Client talks to the third-party avatar generation service the app embeds.
// The service renders a deterministic avatar image for a style and seed;
// the app only needs the bytes to upload them to the profile.

var ErrNotFound = errors.New("avatar style not found")

type Avatar struct {
	Data        []byte
	ContentType string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Render fetches the avatar image for the given style and seed.
func (c *Client) Render(ctx context.Context, style, seed string) (_ *Avatar, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "avatar.render")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("avatar.style", style))

	avatarURL := fmt.Sprintf("%s/%s/png?seed=%s", c.baseURL, url.PathEscape(style), url.QueryEscape(seed))
	log.Debugf("rendering avatar: %s", avatarURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, avatarURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read avatar bytes: %w", err)
	}

	return &Avatar{
		Data:        data,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
