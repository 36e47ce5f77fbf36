package chats

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminaai/lumina/configuration"
	"github.com/luminaai/lumina/internal/api"
	"github.com/luminaai/lumina/internal/session"
)

func TestListRequiresLogin(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	config := &configuration.Config{CacheDirectory: t.TempDir(), RequestTimeoutSeconds: 5}
	client := api.NewClient(server.URL, "", time.Second)

	// Logged out: guidance is printed and the backend is never contacted.
	cmd := NewCmd(config, client, &session.Credentials{})
	cmd.SetArgs([]string{"list"})
	require.NoError(t, cmd.Execute())
	assert.Zero(t, requests)

	// Logged in: the listing proceeds.
	cmd = NewCmd(config, client, &session.Credentials{AccessToken: "token"})
	cmd.SetArgs([]string{"list"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, 1, requests)
}

func TestRenameRequiresLogin(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	config := &configuration.Config{CacheDirectory: t.TempDir(), RequestTimeoutSeconds: 5}
	client := api.NewClient(server.URL, "", time.Second)

	cmd := NewCmd(config, client, &session.Credentials{})
	cmd.SetArgs([]string{"rename", "1", "new title"})
	require.NoError(t, cmd.Execute())
	assert.Zero(t, requests)
}
