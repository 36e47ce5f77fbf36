package main

import (
	"github.com/spf13/cobra"

	"github.com/luminaai/lumina/cli/auth"
	"github.com/luminaai/lumina/cli/chat"
	"github.com/luminaai/lumina/cli/chats"
	"github.com/luminaai/lumina/configuration"
	"github.com/luminaai/lumina/internal/api"
	"github.com/luminaai/lumina/internal/session"
	"github.com/luminaai/lumina/webserver"
)

const configFilepath = "~/.config/lumina/config.json"

var rootCmd = &cobra.Command{
	Use:   "lumina",
	Short: "A terminal client for the Lumina AI chat service",
}

func main() {
	config, err := configuration.Parse(configFilepath)
	if err != nil {
		panic(err)
	}

	// Load credentials if present. Commands that need them check for absence.
	credentials, err := session.Load(config.CredentialsPath)
	if err != nil {
		panic(err)
	}

	// Instantiate the API client.
	client := api.NewClient(config.APIHost, credentials.Token(), config.RequestTimeout())

	rootCmd.AddCommand(auth.NewCmd(config, client, credentials))
	rootCmd.AddCommand(chat.NewCmd(config, client, credentials))
	rootCmd.AddCommand(chats.NewCmd(config, client, credentials))
	rootCmd.AddCommand(webserver.NewServeCmd(client))
	rootCmd.Execute()
}
