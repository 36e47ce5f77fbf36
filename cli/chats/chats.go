// Package chats implements plain CLI conversation management commands.
package chats

import (
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/luminaai/lumina/cli"
	"github.com/luminaai/lumina/configuration"
	"github.com/luminaai/lumina/internal/api"
	"github.com/luminaai/lumina/internal/cache"
	"github.com/luminaai/lumina/internal/controller"
	"github.com/luminaai/lumina/internal/session"
)

// NewCmd instantiates and returns the chats command.
func NewCmd(config *configuration.Config, client *api.Client, credentials *session.Credentials) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chats",
		Short: "Manage conversations",
	}
	cmd.AddCommand(newListCmd(config, client, credentials))
	cmd.AddCommand(newRenameCmd(config, client, credentials))
	cmd.AddCommand(newDeleteCmd(config, client, credentials))
	return cmd
}

// requireLogin reports whether a credential is available, printing guidance
// when it is not.
func requireLogin(credentials *session.Credentials) bool {
	if credentials.Present() {
		return true
	}
	cli.Error("you are not logged in. Run `lumina auth login` first")
	return false
}

func newController(config *configuration.Config, client *api.Client) *controller.Controller {
	options := []controller.Option{}
	if snapshots, err := cache.Open(config.CacheDirectory); err == nil {
		options = append(options, controller.WithCache(snapshots))
	}
	return controller.New(client, options...)
}

func newListCmd(config *configuration.Config, client *api.Client, credentials *session.Credentials) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List conversations, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !requireLogin(credentials) {
				return nil
			}
			chatController := newController(config, client)
			if err := chatController.Refresh(cmd.Context()); err != nil {
				return errors.Wrap(err, "refreshing conversations")
			}
			cli.Title("conversations")
			for _, chat := range chatController.Chats() {
				cli.Row(strconv.FormatInt(chat.ID, 10), chat.Title+"  ("+chat.CreatedAt.Format("Jan 2, 2006 3:04 PM")+")")
			}
			cli.Separator()
			return nil
		},
	}
}

func newRenameCmd(config *configuration.Config, client *api.Client, credentials *session.Credentials) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <title>",
		Short: "Rename a conversation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !requireLogin(credentials) {
				return nil
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.Wrap(err, "parsing conversation id")
			}
			chatController := newController(config, client)
			if err := chatController.Rename(cmd.Context(), id, args[1]); err != nil {
				return errors.Wrap(err, "renaming conversation")
			}
			cli.Title("renamed conversation %d", id)
			return nil
		},
	}
}

func newDeleteCmd(config *configuration.Config, client *api.Client, credentials *session.Credentials) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !requireLogin(credentials) {
				return nil
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.Wrap(err, "parsing conversation id")
			}

			// Deletion is destructive; ask first.
			confirmed := false
			prompt := &survey.Confirm{Message: "Delete this conversation?"}
			if err := survey.AskOne(prompt, &confirmed); err != nil {
				return errors.Wrap(err, "prompting for confirmation")
			}
			if !confirmed {
				return nil
			}

			chatController := newController(config, client)
			if err := chatController.Remove(cmd.Context(), id); err != nil {
				return errors.Wrap(err, "deleting conversation")
			}
			cli.Title("deleted conversation %d", id)
			return nil
		},
	}
}
