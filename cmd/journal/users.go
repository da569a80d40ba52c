package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Look up other accounts",
}

var usersSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find users by name or email, for task assignment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, st, err := setup()
		if err != nil {
			return err
		}
		c, _, err := authedClient(cfg, st)
		if err != nil {
			return err
		}
		users, err := c.SearchUsers(cmd.Context(), args[0])
		if err != nil {
			return friendlyErr(err)
		}
		if len(users) == 0 {
			fmt.Println("No matching users.")
			return nil
		}
		for _, u := range users {
			fmt.Printf("%s <%s>\n  id: %s\n", u.Name, u.Email, u.ID)
		}
		return nil
	},
}

func initUsersCmd() {
	usersCmd.AddCommand(usersSearchCmd)
}
