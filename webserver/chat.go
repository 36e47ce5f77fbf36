package webserver

import (
	"net/http"
)

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request, chatID int64) {
	chats, err := s.client.ListChats(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	var viewModel *ChatViewModel
	for _, chat := range chats {
		if chat.ID == chatID {
			viewModel = &ChatViewModel{
				ID:            chat.ID,
				Title:         chat.Title,
				FormattedTime: chat.CreatedAt.Format("Jan 2, 2006 3:04 PM"),
			}
			break
		}
	}
	if viewModel == nil {
		http.NotFound(w, r)
		return
	}

	messages, err := s.client.ListMessages(r.Context(), chatID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	messageViews := make([]MessageViewModel, 0, len(messages))
	for _, message := range messages {
		messageViews = append(messageViews, MessageViewModel{
			Role:          message.Role,
			Content:       message.Content,
			Thinking:      message.Thinking,
			FormattedTime: message.CreatedAt.Format("Jan 2, 2006 3:04 PM"),
		})
	}

	chatTitle := viewModel.Title
	if chatTitle == "" {
		chatTitle = "Unnamed chat"
	}

	data := PageData{
		Title:    chatTitle,
		Chat:     viewModel,
		Messages: messageViews,
	}

	if err := s.tmpl.ExecuteTemplate(w, "base", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleDeleteChat(w http.ResponseWriter, r *http.Request, chatID int64) {
	if err := s.client.DeleteChat(r.Context(), chatID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.Header.Get("X-Requested-With") == "XMLHttpRequest" {
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
