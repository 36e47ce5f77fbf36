package api

import (
	"context"
	"fmt"
	"net/http"
)

// ListMessages fetches the ordered message history of a conversation.
func (c *Client) ListMessages(ctx context.Context, chatID int64) ([]*Message, error) {
	var messages []*Message
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/chats/%d/messages", chatID), nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// SendMessage submits a user message and returns the assistant's reply.
func (c *Client) SendMessage(ctx context.Context, chatID int64, request *SendMessageRequest) (*SendMessageResponse, error) {
	response := &SendMessageResponse{}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/chats/%d/messages", chatID), request, response); err != nil {
		return nil, err
	}
	return response, nil
}
