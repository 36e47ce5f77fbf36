// Package auth implements the login, signup and logout commands. Tokens are
// issued by the backend; this package only stores and clears them.
package auth

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/luminaai/lumina/cli"
	"github.com/luminaai/lumina/configuration"
	"github.com/luminaai/lumina/internal/api"
	"github.com/luminaai/lumina/internal/session"
)

// NewCmd instantiates and returns the auth command.
func NewCmd(config *configuration.Config, client *api.Client, credentials *session.Credentials) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage Lumina credentials",
	}
	cmd.AddCommand(newLoginCmd(client, credentials))
	cmd.AddCommand(newSignupCmd(client, credentials))
	cmd.AddCommand(newLogoutCmd(credentials))
	return cmd
}

func newLoginCmd(client *api.Client, credentials *session.Credentials) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in and store a bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, password, err := promptCredentials()
			if err != nil {
				return err
			}
			token, err := client.Login(cmd.Context(), email, password)
			if err != nil {
				return errors.Wrap(err, "logging in")
			}
			if err := credentials.Save(token, email); err != nil {
				return errors.Wrap(err, "saving credentials")
			}
			client.SetToken(token)
			cli.Title("logged in as %s", email)
			return nil
		},
	}
}

func newSignupCmd(client *api.Client, credentials *session.Credentials) *cobra.Command {
	return &cobra.Command{
		Use:   "signup",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, password, err := promptCredentials()
			if err != nil {
				return err
			}
			if err := client.Signup(cmd.Context(), email, password); err != nil {
				return errors.Wrap(err, "signing up")
			}
			token, err := client.Login(cmd.Context(), email, password)
			if err != nil {
				return errors.Wrap(err, "logging in")
			}
			if err := credentials.Save(token, email); err != nil {
				return errors.Wrap(err, "saving credentials")
			}
			client.SetToken(token)
			cli.Title("account created for %s", email)
			return nil
		},
	}
}

func newLogoutCmd(credentials *session.Credentials) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := credentials.Clear(); err != nil {
				return errors.Wrap(err, "clearing credentials")
			}
			cli.Title("logged out")
			return nil
		},
	}
}

func promptCredentials() (email, password string, err error) {
	if err = survey.AskOne(&survey.Input{Message: "Email:"}, &email, survey.WithValidator(survey.Required)); err != nil {
		return "", "", errors.Wrap(err, "prompting for email")
	}
	if err = survey.AskOne(&survey.Password{Message: "Password:"}, &password, survey.WithValidator(survey.Required)); err != nil {
		return "", "", errors.Wrap(err, "prompting for password")
	}
	return email, password, nil
}
