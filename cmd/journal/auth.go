package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Fulozz/daily-journal/client"
)

var (
	emailFlag    string
	passwordFlag string
	nameFlag     string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and persist the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, err := setup()
		if err != nil {
			return err
		}
		email, password := emailFlag, passwordFlag
		if email == "" {
			email = prompt("Email: ")
		}
		if password == "" {
			password = prompt("Password: ")
		}

		c := anonClient(cfg)
		res, err := c.Login(cmd.Context(), client.LoginRequest{Email: email, Password: password})
		if err != nil {
			return friendlyErr(err)
		}
		if err := store.SetSession(res.Token, res.User); err != nil {
			return err
		}
		fmt.Printf("Logged in as %s <%s>\n", res.User.Name, res.User.Email)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup()
		if err != nil {
			return err
		}
		name, email, password := nameFlag, emailFlag, passwordFlag
		if name == "" {
			name = prompt("Name: ")
		}
		if email == "" {
			email = prompt("Email: ")
		}
		if password == "" {
			password = prompt("Password: ")
		}

		c := anonClient(cfg)
		user, err := c.Register(cmd.Context(), client.RegisterRequest{Name: name, Email: email, Password: password})
		if err != nil {
			return friendlyErr(err)
		}
		fmt.Printf("Account created for %s. Run 'journal login' to sign in.\n", user.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := setup()
		if err != nil {
			return err
		}
		if err := store.ClearSession(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

func initAuthCmds() {
	loginCmd.Flags().StringVar(&emailFlag, "email", "", "Account email")
	loginCmd.Flags().StringVar(&passwordFlag, "password", "", "Account password (prompted when omitted)")
	registerCmd.Flags().StringVar(&nameFlag, "name", "", "Display name")
	registerCmd.Flags().StringVar(&emailFlag, "email", "", "Account email")
	registerCmd.Flags().StringVar(&passwordFlag, "password", "", "Account password (prompted when omitted)")
}

func prompt(label string) string {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
