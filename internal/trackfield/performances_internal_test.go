package trackfield

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPerformances_CorruptCacheEntryFallsBackToBackend(t *testing.T) {
	backendCalls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendCalls++
		_, _ = w.Write([]byte(`[{"date": "2023-06-10", "value": 10.94}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", server.Client())
	require.NoError(t, client.cache.Set([]byte("performances::a1"), []byte("{corrupt"), 60))

	payload, err := client.GetPerformances(context.Background(), "a1")
	require.NoError(t, err)
	require.NotNil(t, payload)
	assert.Equal(t, 1, backendCalls)

	// the fresh response replaced the corrupt entry
	_, err = client.GetPerformances(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, 1, backendCalls)
}
