package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Fulozz/daily-journal/client"
)

var (
	newNameFlag   string
	newEmailFlag  string
	avatarFlag    string
	currentPwFlag string
	newPwFlag     string
	confirmPwFlag string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show and update the account profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the logged-in user and verify the credential",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, err := setup()
		if err != nil {
			return err
		}
		c, sess, err := authedClient(cfg, store)
		if err != nil {
			return err
		}
		status := "valid"
		if err := c.ValidateToken(cmd.Context()); err != nil {
			if client.IsUnauthorized(err) {
				status = "expired"
			} else {
				status = "unverified: " + err.Error()
			}
		}
		fmt.Printf("Name:   %s\nEmail:  %s\nToken:  %s\n", sess.User.Name, sess.User.Email, status)
		return nil
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Change profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, err := setup()
		if err != nil {
			return err
		}
		c, sess, err := authedClient(cfg, store)
		if err != nil {
			return err
		}
		if newNameFlag == "" && newEmailFlag == "" && avatarFlag == "" {
			return fmt.Errorf("nothing to update: pass --name, --email or --avatar")
		}
		user, err := c.UpdateUser(cmd.Context(), client.UpdateUserRequest{
			Name:   newNameFlag,
			Email:  newEmailFlag,
			Avatar: avatarFlag,
		})
		if err != nil {
			return friendlyErr(err)
		}
		// Keep the persisted session in step with the server.
		if err := store.SetSession(sess.Token, *user); err != nil {
			return err
		}
		fmt.Printf("Profile updated: %s <%s>\n", user.Name, user.Email)
		return nil
	},
}

var profilePasswordCmd = &cobra.Command{
	Use:   "password",
	Short: "Change the account password",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, err := setup()
		if err != nil {
			return err
		}
		c, _, err := authedClient(cfg, store)
		if err != nil {
			return err
		}
		current, next, confirm := currentPwFlag, newPwFlag, confirmPwFlag
		if current == "" {
			current = prompt("Current password: ")
		}
		if next == "" {
			next = prompt("New password: ")
		}
		if confirm == "" {
			confirm = prompt("Confirm new password: ")
		}
		err = c.UpdatePassword(cmd.Context(), client.UpdatePasswordRequest{
			CurrentPassword: current,
			NewPassword:     next,
			ConfirmPassword: confirm,
		})
		if err != nil {
			return friendlyErr(err)
		}
		fmt.Println("Password changed.")
		return nil
	},
}

func initProfileCmd() {
	profileUpdateCmd.Flags().StringVar(&newNameFlag, "name", "", "New display name")
	profileUpdateCmd.Flags().StringVar(&newEmailFlag, "email", "", "New email")
	profileUpdateCmd.Flags().StringVar(&avatarFlag, "avatar", "", "New avatar URL")
	profilePasswordCmd.Flags().StringVar(&currentPwFlag, "current", "", "Current password")
	profilePasswordCmd.Flags().StringVar(&newPwFlag, "new", "", "New password")
	profilePasswordCmd.Flags().StringVar(&confirmPwFlag, "confirm", "", "New password again")
	profileCmd.AddCommand(profileShowCmd, profileUpdateCmd, profilePasswordCmd)
}
