package api

import (
	"context"
	"fmt"
	"net/http"
)

// ListChats fetches all conversations belonging to the authenticated user.
func (c *Client) ListChats(ctx context.Context) ([]*Chat, error) {
	var chats []*Chat
	if err := c.do(ctx, http.MethodGet, "/chats", nil, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

// CreateChat creates a conversation with the given title.
func (c *Client) CreateChat(ctx context.Context, title string) (*Chat, error) {
	request := struct {
		Title string `json:"title"`
	}{Title: title}
	chat := &Chat{}
	if err := c.do(ctx, http.MethodPost, "/chats", request, chat); err != nil {
		return nil, err
	}
	return chat, nil
}

// RenameChat updates a conversation's title.
func (c *Client) RenameChat(ctx context.Context, id int64, title string) (*Chat, error) {
	request := struct {
		Title string `json:"title"`
	}{Title: title}
	chat := &Chat{}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/chats/%d", id), request, chat); err != nil {
		return nil, err
	}
	return chat, nil
}

// DeleteChat deletes a conversation and its messages.
func (c *Client) DeleteChat(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/chats/%d", id), nil, nil)
}
