package command

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"litreview/cmd/cli/command/client"
	"litreview/internal/microservices/http-api/dto"

	"github.com/spf13/cobra"
)

type feedFetcher func(c *client.HTTPClient, ctx context.Context, page, pageSize int) (*dto.PaginatedFeedResponse, error)

func feedCommand(use, short string, fetch feedFetcher) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, _ := cmd.Flags().GetInt("page")
			pageSize, _ := cmd.Flags().GetInt("page-size")

			c, err := authedClient(cmd.Context())
			if err != nil {
				return err
			}
			feed, err := fetch(c, cmd.Context(), page, pageSize)
			if err != nil {
				return err
			}
			printFeed(cmd, feed)
			return nil
		},
	}
	cmd.Flags().Int("page", 0, "Page number, starting at 1")
	cmd.Flags().Int("page-size", 0, "Items per page (server default when 0)")
	return cmd
}

func stars(rating int) string {
	rating = max(0, min(rating, 5))
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func printFeed(cmd *cobra.Command, feed *dto.PaginatedFeedResponse) {
	w := tabwriter.NewWriter(out(cmd), 0, 0, 2, ' ', 0)
	for _, item := range feed.Data {
		when := item.TimeCreated.Local().Format("2006-01-02 15:04")
		switch {
		case item.Ticket != nil:
			fmt.Fprintf(w, "%s\tticket #%d\t%s\t%s\n", when, item.ID, item.Ticket.Username, item.Ticket.Title)
		case item.Review != nil:
			fmt.Fprintf(w, "%s\treview #%d\t%s\t%s %s\n", when, item.ID, item.Review.Username, stars(item.Review.Rating), item.Review.Headline)
		}
	}
	w.Flush()
	fmt.Fprintf(out(cmd), "page %d/%d (%d items)\n", feed.Page, feed.TotalPages, feed.Total)
}

func init() {
	rootCmd.AddCommand(
		feedCommand("feed", "Your feed: your posts and those of the people you follow", (*client.HTTPClient).Feed),
		feedCommand("posts", "Only your own tickets and reviews", (*client.HTTPClient).Posts),
	)
}
