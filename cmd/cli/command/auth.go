package command

import (
	"errors"
	"fmt"
	"time"

	"litreview/cmd/cli/authentication"
	"litreview/cmd/cli/command/client"
	"litreview/internal/microservices/http-api/dto"

	"github.com/spf13/cobra"
)

// authCmd groups the account subcommands
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Sign up, log in and log out of a LitReview server.`,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a LitReview account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req dto.RegisterRequest
		req.Username, _ = cmd.Flags().GetString("username")
		req.Password, _ = cmd.Flags().GetString("password")

		resp, err := client.NewHTTPClient(apiURL).Register(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		fmt.Fprintln(out(cmd), "✓ Registration successful! Please login to continue.")
		fmt.Fprintf(out(cmd), "UserID: %s\n", resp.UserID)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to your LitReview account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req dto.LoginRequest
		req.Username, _ = cmd.Flags().GetString("username")
		req.Password, _ = cmd.Flags().GetString("password")

		resp, err := client.NewHTTPClient(apiURL).Login(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		err = tokenStore.store(&authentication.StoredCredentials{
			AccessToken:  resp.AccessToken,
			RefreshToken: resp.RefreshToken,
			Username:     resp.Username,
			ExpiresAt:    time.Now().Unix() + resp.ExpiresIn,
		})
		if err != nil {
			return fmt.Errorf("could not save session: %w", err)
		}

		fmt.Fprintf(out(cmd), "✓ Logged in as %s\n", resp.Username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		creds, err := tokenStore.get()
		if errors.Is(err, authentication.ErrNoSession) {
			fmt.Fprintln(out(cmd), "Not logged in.")
			return nil
		}
		if err != nil {
			return err
		}

		// the local session is dropped even if the server is unreachable
		if err := client.NewHTTPClient(apiURL).Logout(cmd.Context(), creds.RefreshToken); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: server logout failed: %v\n", err)
		}
		if err := tokenStore.delete(); err != nil {
			return err
		}

		fmt.Fprintln(out(cmd), "✓ Successfully logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		creds, err := tokenStore.get()
		if err != nil {
			return err
		}
		fmt.Fprintln(out(cmd), creds.Username)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(registerCmd, loginCmd, logoutCmd, whoamiCmd)

	for _, c := range []*cobra.Command{registerCmd, loginCmd} {
		c.Flags().StringP("username", "u", "", "Username of the account")
		c.Flags().StringP("password", "p", "", "Password of the account")
		_ = c.MarkFlagRequired("username")
		_ = c.MarkFlagRequired("password")
	}
}
