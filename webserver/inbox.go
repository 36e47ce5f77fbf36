package webserver

import (
	"net/http"
	"sort"
)

func (s *Server) handleInbox(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	chats, err := s.client.ListChats(r.Context())
	if err != nil {
		http.Error(w, "Failed to list chats", http.StatusInternalServerError)
		return
	}
	sort.SliceStable(chats, func(i, j int) bool {
		return chats[i].CreatedAt.After(chats[j].CreatedAt.Time)
	})
	if len(chats) > s.pageSize {
		chats = chats[:s.pageSize]
	}

	chatViews := make([]ChatViewModel, 0, len(chats))
	for _, chat := range chats {
		chatViews = append(chatViews, ChatViewModel{
			ID:            chat.ID,
			Title:         chat.Title,
			FormattedTime: chat.CreatedAt.Format("Jan 2, 2006 3:04 PM"),
		})
	}

	data := &PageData{
		Title: "Inbox",
		Chats: chatViews,
	}

	if err := s.tmpl.ExecuteTemplate(w, "base", data); err != nil {
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
	}
}
