package avatar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/athletiq/athletiq/internal/avatar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRender(t *testing.T) {
	fakePNG := []byte{0x89, 'P', 'N', 'G'}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pixel-art/png" {
			http.Error(w, "unknown style", http.StatusNotFound)
			return
		}
		assert.Equal(t, "nadia", r.URL.Query().Get("seed"))
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(fakePNG)
	}))
	defer server.Close()

	client := avatar.NewClient(server.URL, server.Client())

	rendered, err := client.Render(context.Background(), "pixel-art", "nadia")
	require.NoError(t, err)
	assert.Equal(t, fakePNG, rendered.Data)
	assert.Equal(t, "image/png", rendered.ContentType)

	_, err = client.Render(context.Background(), "no-such-style", "nadia")
	assert.ErrorIs(t, err, avatar.ErrNotFound)
}
