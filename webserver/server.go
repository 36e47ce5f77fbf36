// Package webserver serves a read-only web view over the chat backend.
package webserver

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/Masterminds/sprig/v3"
	"github.com/spf13/cobra"

	"github.com/luminaai/lumina/internal/api"
)

//go:embed templates
var templatesFS embed.FS

type PageData struct {
	Title    string
	Chat     *ChatViewModel
	Chats    []ChatViewModel
	Messages []MessageViewModel
}

type ChatViewModel struct {
	ID            int64
	Title         string
	FormattedTime string
}

type MessageViewModel struct {
	Role          string
	Content       string
	Thinking      string
	FormattedTime string
}

// NewServeCmd instantiates and returns the serve command.
func NewServeCmd(client *api.Client) *cobra.Command {
	var opts struct {
		Port     int
		PageSize int
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a web interface for viewing chats",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := &Server{
				client:   client,
				pageSize: opts.PageSize,
			}
			return server.Start(opts.Port)
		},
	}

	cmd.Flags().IntVarP(&opts.Port, "port", "p", 3030, "Port to serve on")
	cmd.Flags().IntVar(&opts.PageSize, "page-size", 50, "Number of chats to display")
	return cmd
}

type Server struct {
	client   *api.Client
	pageSize int
	tmpl     *template.Template
}

func (s *Server) Start(port int) error {
	funcMap := sprig.HtmlFuncMap()
	funcMap["formatMessage"] = formatMessage

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}
	s.tmpl = tmpl

	http.HandleFunc("/", s.handleInbox)
	http.HandleFunc("/chat/", s.handleChatRoutes)

	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Server starting on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, nil)
}

func (s *Server) handleChatRoutes(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(r.URL.Path, "/")
	if len(parts) != 3 {
		http.NotFound(w, r)
		return
	}

	chatID, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.handleChat(w, r, chatID)
	case http.MethodDelete:
		s.handleDeleteChat(w, r, chatID)
	default:
		http.NotFound(w, r)
	}
}
