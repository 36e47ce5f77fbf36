package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/luminaai/lumina/configuration"
	"github.com/luminaai/lumina/internal/api"
	"github.com/luminaai/lumina/internal/session"
)

func TestChatRequiresLogin(t *testing.T) {
	config := &configuration.Config{
		CacheDirectory:        t.TempDir(),
		DefaultModel:          api.ModelGemini,
		RequestTimeoutSeconds: 5,
	}
	client := api.NewClient("http://127.0.0.1:0", "", time.Second)

	// Logged out: the command prints guidance and returns without opening
	// the interface.
	cmd := NewCmd(config, client, &session.Credentials{})
	require.NoError(t, cmd.Execute())
}
