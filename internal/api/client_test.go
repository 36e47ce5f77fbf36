package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "test-token", 5*time.Second)
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuthorization string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]*Chat{})
	})

	_, err := client.ListChats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuthorization)
}

func TestClientSetTokenReplacesCredential(t *testing.T) {
	var gotAuthorization string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]*Chat{})
	})

	client.SetToken("fresh-token")
	_, err := client.ListChats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer fresh-token", gotAuthorization)
}

func TestClientExtractsErrorDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"detail": "Insufficient credits"}`))
	})

	_, err := client.ListChats(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Insufficient credits", err.Error())

	transportError, ok := AsTransportError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, transportError.StatusCode)
}

func TestClientStatusWithoutDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("gateway exploded"))
	})

	_, err := client.ListChats(context.Background())
	require.Error(t, err)
	assert.Equal(t, "backend returned status 502", err.Error())
}

func TestClientConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	client := NewClient(server.URL, "", time.Second)

	_, err := client.ListChats(context.Background())
	require.Error(t, err)
	transportError, ok := AsTransportError(err)
	require.True(t, ok)
	assert.Zero(t, transportError.StatusCode)
	assert.Error(t, transportError.Err)
}

func TestSendMessageRoundTrip(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chats/7/messages", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		request := &SendMessageRequest{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(request))
		assert.Equal(t, "hello", request.Content)
		assert.Equal(t, ModelGemini, request.ModelType)
		assert.True(t, request.ThinkingMode)

		w.Write([]byte(`{
			"user_message": {"role": "user", "content": "hello", "created_at": "2026-03-01T12:00:00.000000"},
			"assistant_message": {"role": "assistant", "content": "hi!", "thinking": "a greeting", "created_at": "2026-03-01T12:00:01.000000"},
			"remaining_credits": 9
		}`))
	})

	response, err := client.SendMessage(context.Background(), 7, &SendMessageRequest{
		Content:      "hello",
		ModelType:    ModelGemini,
		ThinkingMode: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), response.RemainingCredits)
	assert.Equal(t, "hi!", response.AssistantMessage.Content)
	assert.Equal(t, "a greeting", response.AssistantMessage.Thinking)
}

func TestLoginReturnsToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.Write([]byte(`{"access_token": "abc123", "token_type": "bearer"}`))
	})

	token, err := client.Login(context.Background(), "user@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
}

func TestTimeUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{
			name: "rfc3339",
			in:   `"2026-03-01T12:00:00Z"`,
			want: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name: "naive backend timestamp",
			in:   `"2026-03-01T12:00:00.123456"`,
			want: time.Date(2026, 3, 1, 12, 0, 0, 123456000, time.UTC),
		},
		{
			name: "null",
			in:   `null`,
			want: time.Time{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Time
			require.NoError(t, got.UnmarshalJSON([]byte(tt.in)))
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got.Time, tt.want)
		})
	}

	var invalid Time
	assert.Error(t, invalid.UnmarshalJSON([]byte(`"yesterday"`)))
}
