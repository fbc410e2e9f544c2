package trackfield

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/athletiq/athletiq/internal/telemetry/tracing"
	"github.com/athletiq/athletiq/pkg/perf"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	oneHour                 = 60 * 60
	performancesCacheExpire = oneHour * 1 // seconds
)

// GetPerformances fetches the raw performance payload for an athlete, as
// merged by the backend from the external results-aggregation source. The
// shape is deliberately left as decoded JSON (list or discipline-keyed map);
// perf.Normalize knows how to deal with it.
func (c *Client) GetPerformances(ctx context.Context, athleteID string) (_ any, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trackfield.getPerformances")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	cacheKey := fmt.Sprintf("performances::%s", athleteID)
	if cached, err := c.cache.Get([]byte(cacheKey)); err == nil {
		log.Tracef("found performances for %s in cache", athleteID)
		var payload any
		if unmarshalErr := json.Unmarshal(cached, &payload); unmarshalErr == nil {
			return payload, nil
		} else {
			log.Errorf("failed to unmarshal cached performances for %s: %s", athleteID, unmarshalErr)
		}
	} else {
		log.Debugf("performances for %s not cached: %s; calling the backend", athleteID, err)
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/athletes/"+athleteID+"/performances", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusNotFound:
		return nil, ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read performances response: %w", err)
	}

	var payload any
	if err := json.Unmarshal(respBytes, &payload); err != nil {
		return nil, fmt.Errorf("unmarshal performances response: %w", err)
	}

	if err := c.cache.Set([]byte(cacheKey), respBytes, performancesCacheExpire); err != nil {
		log.Errorf("failed to cache performances for %s: %s", athleteID, err)
	} else {
		log.Debugf("performances cache set for athlete %s", athleteID)
	}

	return payload, nil
}

// GetTimeline fetches and normalizes the performance history of an athlete.
func (c *Client) GetTimeline(ctx context.Context, athleteID string) ([]perf.Point, error) {
	payload, err := c.GetPerformances(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	return perf.Normalize(payload), nil
}
