package command

// root.go defines the root command of the litreview CLI and the helpers
// shared by its subcommands.

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"litreview/cmd/cli/authentication"
	"litreview/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var apiURL string // global flag for API server URL

var rootCmd = &cobra.Command{
	Use:   "litreview",
	Short: "litreview - command line client for the LitReview API",
	Long: `litreview lets you use a LitReview server from the terminal:
- ask for reviews by posting tickets
- review tickets, yours or the ones of people you follow
- follow and block other readers
- read your feed

Use "litreview [command] --help" to see the options of a command.`,
	SilenceUsage: true,
}

// Execute runs the root command. Called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultAPI := os.Getenv("LITREVIEW_API")
	if defaultAPI == "" {
		defaultAPI = "http://localhost:8080"
	}
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultAPI, "API server URL (env LITREVIEW_API)")
}

// tokenStore is swapped in tests
var tokenStore = struct {
	get    func() (*authentication.StoredCredentials, error)
	store  func(*authentication.StoredCredentials) error
	delete func() error
}{
	get:    authentication.GetTokens,
	store:  authentication.StoreTokens,
	delete: authentication.DeleteTokens,
}

// authedClient returns a client carrying the stored access token,
// refreshing it first when it has expired.
func authedClient(ctx context.Context) (*client.HTTPClient, error) {
	creds, err := tokenStore.get()
	if err != nil {
		return nil, err
	}

	c := client.NewHTTPClient(apiURL)
	if creds.Expired(time.Now()) && creds.RefreshToken != "" {
		resp, err := c.RefreshToken(ctx, creds.RefreshToken)
		if err != nil {
			return nil, fmt.Errorf("session expired, log in again: %w", err)
		}
		creds.AccessToken = resp.AccessToken
		creds.RefreshToken = resp.RefreshToken
		creds.ExpiresAt = time.Now().Unix() + resp.ExpiresIn
		if err := tokenStore.store(creds); err != nil {
			return nil, err
		}
	}
	c.SetToken(creds.AccessToken)
	return c, nil
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
