package trackfield

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/athletiq/athletiq/internal/telemetry/tracing"
)

type CreateTrainingSessionParams struct {
	GroupID     string    `json:"groupId,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	StartsAt    time.Time `json:"startsAt"`
	DurationMin int       `json:"durationMin"`
}

func (c *Client) ListTrainingSessions(ctx context.Context) (_ []TrainingSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trackfield.listTrainingSessions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	req, err := c.newRequest(ctx, http.MethodGet, "/training/sessions", nil)
	if err != nil {
		return nil, err
	}

	var sessions []TrainingSession
	if err := c.do(req, &sessions); err != nil {
		return nil, fmt.Errorf("list training sessions: %w", err)
	}
	return sessions, nil
}

func (c *Client) CreateTrainingSession(
	ctx context.Context,
	params CreateTrainingSessionParams,
) (_ *TrainingSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trackfield.createTrainingSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	req, err := c.newRequest(ctx, http.MethodPost, "/training/sessions", params)
	if err != nil {
		return nil, err
	}

	var session TrainingSession
	if err := c.do(req, &session); err != nil {
		return nil, fmt.Errorf("create training session: %w", err)
	}
	return &session, nil
}

func (c *Client) ListTrainingGroups(ctx context.Context) (_ []TrainingGroup, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trackfield.listTrainingGroups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	req, err := c.newRequest(ctx, http.MethodGet, "/training/groups", nil)
	if err != nil {
		return nil, err
	}

	var groups []TrainingGroup
	if err := c.do(req, &groups); err != nil {
		return nil, fmt.Errorf("list training groups: %w", err)
	}
	return groups, nil
}

func (c *Client) JoinTrainingGroup(ctx context.Context, groupID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trackfield.joinTrainingGroup")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	req, err := c.newRequest(ctx, http.MethodPost, "/training/groups/"+groupID+"/join", nil)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("join training group: %w", err)
	}
	return nil
}

func (c *Client) LeaveTrainingGroup(ctx context.Context, groupID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trackfield.leaveTrainingGroup")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	req, err := c.newRequest(ctx, http.MethodPost, "/training/groups/"+groupID+"/leave", nil)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("leave training group: %w", err)
	}
	return nil
}
