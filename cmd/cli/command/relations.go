package command

import (
	"fmt"

	"litreview/internal/microservices/http-api/dto"

	"github.com/spf13/cobra"
)

var followCmd = &cobra.Command{
	Use:   "follow <username>",
	Short: "Follow a user, or list follows without arguments",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := authedClient(cmd.Context())
		if err != nil {
			return err
		}

		if len(args) == 0 {
			page, err := c.ListFollows(cmd.Context())
			if err != nil {
				return err
			}
			printFollows(cmd, page)
			return nil
		}

		page, created, err := c.Follow(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(out(cmd), "✓ %s\n", page.Message)
		} else {
			fmt.Fprintf(out(cmd), "! %s\n", page.Message)
		}
		return nil
	},
}

var unfollowCmd = &cobra.Command{
	Use:   "unfollow <follow-id>",
	Short: "Remove a follow, by the id shown in `litreview follow`",
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
		if err := c.Unfollow(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintln(out(cmd), "✓ Unfollowed")
		return nil
	},
}

var blockCmd = &cobra.Command{
	Use:   "block <user-id>",
	Short: "Hide a user's tickets and reviews from your feed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := authedClient(cmd.Context())
		if err != nil {
			return err
		}
		if err := c.Block(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(out(cmd), "✓ Blocked %s\n", args[0])
		return nil
	},
}

var unblockCmd = &cobra.Command{
	Use:   "unblock <user-id>",
	Short: "Show a blocked user's content again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := authedClient(cmd.Context())
		if err != nil {
			return err
		}
		if err := c.Unblock(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(out(cmd), "✓ Unblocked %s\n", args[0])
		return nil
	},
}

func printFollows(cmd *cobra.Command, page *dto.FollowPageResponse) {
	fmt.Fprintln(out(cmd), "Following:")
	for _, e := range page.Following {
		fmt.Fprintf(out(cmd), "  [%d] %s (%s)\n", e.ID, e.Username, e.UserID)
	}
	fmt.Fprintln(out(cmd), "Followers:")
	for _, e := range page.FollowedBy {
		fmt.Fprintf(out(cmd), "  %s (%s)\n", e.Username, e.UserID)
	}
}

func init() {
	rootCmd.AddCommand(followCmd, unfollowCmd, blockCmd, unblockCmd)
}
