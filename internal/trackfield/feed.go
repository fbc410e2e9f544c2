package trackfield

import (
	"context"
	"fmt"
	"net/http"

	"github.com/athletiq/athletiq/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// GetFeed returns one page of the news feed.
func (c *Client) GetFeed(ctx context.Context, page, pageSize int) (_ *FeedPage, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trackfield.getFeed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("feed.page", page))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	path := fmt.Sprintf("/feed?page=%d&size=%d", page, pageSize)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var feedPage FeedPage
	if err := c.do(req, &feedPage); err != nil {
		return nil, fmt.Errorf("get feed: %w", err)
	}
	return &feedPage, nil
}

// LikePost toggles a like on a feed post.
func (c *Client) LikePost(ctx context.Context, postID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trackfield.likePost")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	req, err := c.newRequest(ctx, http.MethodPost, "/feed/"+postID+"/like", nil)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("like post: %w", err)
	}
	return nil
}
