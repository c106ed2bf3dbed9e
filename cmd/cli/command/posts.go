package command

import (
	"fmt"
	"strconv"

	"litreview/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var ticketCmd = &cobra.Command{
	Use:   "ticket",
	Short: "Ask for reviews of a work",
}

func ticketFromFlags(cmd *cobra.Command) client.TicketRequest {
	var req client.TicketRequest
	req.Title, _ = cmd.Flags().GetString("title")
	req.Description, _ = cmd.Flags().GetString("description")
	if image, _ := cmd.Flags().GetString("image"); image != "" {
		req.Image = &image
	}
	return req
}

func reviewFromFlags(cmd *cobra.Command) client.ReviewRequest {
	var req client.ReviewRequest
	req.Rating, _ = cmd.Flags().GetInt("rating")
	req.Headline, _ = cmd.Flags().GetString("headline")
	req.Body, _ = cmd.Flags().GetString("body")
	return req
}

func idArg(args []string) (int64, error) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

var ticketCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Post a ticket",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := authedClient(cmd.Context())
		if err != nil {
			return err
		}
		ticket, err := c.CreateTicket(cmd.Context(), ticketFromFlags(cmd))
		if err != nil {
			return err
		}
		fmt.Fprintf(out(cmd), "✓ Ticket #%d created: %s\n", ticket.ID, ticket.Title)
		return nil
	},
}

var ticketShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a ticket and its reviews",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args)
		if err != nil {
			return err
		}
		c, err := authedClient(cmd.Context())
		if err != nil {
			return err
		}
		ticket, err := c.GetTicket(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Fprintf(out(cmd), "#%d %s (by %s)\n", ticket.ID, ticket.Title, ticket.Username)
		if ticket.Description != "" {
			fmt.Fprintln(out(cmd), ticket.Description)
		}
		for _, r := range ticket.Reviews {
			fmt.Fprintf(out(cmd), "  %s %s by %s\n", stars(r.Rating), r.Headline, r.Username)
		}
		return nil
	},
}

var ticketDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one of your tickets and its reviews",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args)
		if err != nil {
			return err
		}
		c, err := authedClient(cmd.Context())
		if err != nil {
			return err
		}
		if err := c.DeleteTicket(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(out(cmd), "✓ Ticket #%d deleted\n", id)
		return nil
	},
}

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review tickets",
}

var reviewCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Review an existing ticket, or a new one when --ticket is omitted",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := authedClient(cmd.Context())
		if err != nil {
			return err
		}

		review := reviewFromFlags(cmd)
		review.TicketID, _ = cmd.Flags().GetInt64("ticket")
		if review.TicketID != 0 {
			created, err := c.CreateReview(cmd.Context(), review)
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "✓ Review #%d posted on ticket #%d\n", created.ID, created.TicketID)
			return nil
		}

		ticket := ticketFromFlags(cmd)
		if ticket.Title == "" {
			return fmt.Errorf("either --ticket or --title is required")
		}
		created, err := c.CreateTicketWithReview(cmd.Context(), ticket, review)
		if err != nil {
			return err
		}
		fmt.Fprintf(out(cmd), "✓ Ticket #%d and review #%d created\n", created.Ticket.ID, created.Review.ID)
		return nil
	},
}

var reviewDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one of your reviews",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args)
		if err != nil {
			return err
		}
		c, err := authedClient(cmd.Context())
		if err != nil {
			return err
		}
		if err := c.DeleteReview(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(out(cmd), "✓ Review #%d deleted\n", id)
		return nil
	},
}

func addTicketFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("title", "t", "", "Title of the work")
	cmd.Flags().StringP("description", "d", "", "What you want to know")
	cmd.Flags().String("image", "", "Image reference")
}

func init() {
	rootCmd.AddCommand(ticketCmd, reviewCmd)
	ticketCmd.AddCommand(ticketCreateCmd, ticketShowCmd, ticketDeleteCmd)
	reviewCmd.AddCommand(reviewCreateCmd, reviewDeleteCmd)

	addTicketFlags(ticketCreateCmd)
	_ = ticketCreateCmd.MarkFlagRequired("title")

	addTicketFlags(reviewCreateCmd)
	reviewCreateCmd.Flags().Int64("ticket", 0, "ID of the ticket to review")
	reviewCreateCmd.Flags().IntP("rating", "r", 0, "Rating from 0 to 5")
	reviewCreateCmd.Flags().String("headline", "", "Headline of the review")
	reviewCreateCmd.Flags().StringP("body", "b", "", "Body of the review")
	_ = reviewCreateCmd.MarkFlagRequired("rating")
	_ = reviewCreateCmd.MarkFlagRequired("headline")
}
