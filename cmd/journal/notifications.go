package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var unreadOnlyFlag bool

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"inbox"},
	Short:   "Task activity notifications",
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, st, err := setup()
		if err != nil {
			return err
		}
		c, _, err := authedClient(cfg, st)
		if err != nil {
			return err
		}
		notes, err := c.ListNotifications(cmd.Context())
		if err != nil {
			return friendlyErr(err)
		}
		if len(notes) == 0 {
			fmt.Println("No notifications.")
			return nil
		}
		for _, n := range notes {
			if unreadOnlyFlag && n.Read {
				continue
			}
			marker := "•"
			if n.Read {
				marker = " "
			}
			fmt.Printf("%s %s — %s (%s)\n  id: %s\n", marker, n.Title, n.Message, n.CreatedAt.Format(time.RFC822), n.ID)
		}
		return nil
	},
}

var notificationsReadCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Mark a notification as read",
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
		if _, err := c.MarkNotificationRead(cmd.Context(), args[0]); err != nil {
			return friendlyErr(err)
		}
		fmt.Println("Marked as read.")
		return nil
	},
}

func initNotificationsCmd() {
	notificationsListCmd.Flags().BoolVar(&unreadOnlyFlag, "unread", false, "Only unread notifications")
	notificationsCmd.AddCommand(notificationsListCmd, notificationsReadCmd)
}
