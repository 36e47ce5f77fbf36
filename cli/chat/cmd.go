// Package chat implements the full-screen chat command.
package chat

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/luminaai/lumina/cli"
	"github.com/luminaai/lumina/cli/chat/session"
	"github.com/luminaai/lumina/cli/chat/types"
	"github.com/luminaai/lumina/configuration"
	"github.com/luminaai/lumina/internal/api"
	"github.com/luminaai/lumina/internal/cache"
	"github.com/luminaai/lumina/internal/controller"
	"github.com/luminaai/lumina/internal/debug"
	sessionstore "github.com/luminaai/lumina/internal/session"
)

var log = debug.GetLogger()

// NewCmd instantiates and returns the chat command.
func NewCmd(config *configuration.Config, client *api.Client, credentials *sessionstore.Credentials) *cobra.Command {
	var opts struct {
		Model        string
		ThinkingMode bool
	}
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Open the chat interface",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !credentials.Present() {
				cli.Error("you are not logged in. Run `lumina auth login` first")
				return nil
			}

			if opts.Model == "" {
				opts.Model = config.DefaultModel
			}
			opts.Model = strings.ToLower(opts.Model)
			if opts.Model != api.ModelGemini && opts.Model != api.ModelOpenAI {
				return fmt.Errorf("unknown model %s (supported: %s)", opts.Model, strings.Join(api.Models(), ", "))
			}

			controllerOptions := []controller.Option{}
			snapshots, err := cache.Open(config.CacheDirectory)
			if err != nil {
				// The cache is an optimization; run without it.
				log.Warn("opening snapshot cache", "error", err)
			} else {
				defer snapshots.Close()
				controllerOptions = append(controllerOptions, controller.WithCache(snapshots))
			}
			chatController := controller.New(client, controllerOptions...)

			chatOpts := types.ChatOptions{
				Model:        opts.Model,
				ThinkingMode: opts.ThinkingMode,
			}
			m, err := session.New(ctx, config, chatController, chatOpts)
			if err != nil {
				return err
			}

			p := tea.NewProgram(
				m,
				tea.WithAltScreen(),
				tea.WithContext(ctx),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running chat: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Model, "model", "m", "", "Model to chat with (gemini or openai)")
	cmd.Flags().BoolVarP(&opts.ThinkingMode, "thinking", "t", false, "Ask the assistant to show its thought process")
	return cmd
}
