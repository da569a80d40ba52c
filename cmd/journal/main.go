// Command journal is the terminal client for the Daily Journal backend:
// authenticated journal entries and tasks with optimistic local updates.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Fulozz/daily-journal/tui"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "journal",
	Short:   "A daily journal and task list with optimistic sync",
	Version: fmt.Sprintf("v%s", version),
	RunE: func(cmd *cobra.Command, args []string) error {
		// No subcommand: open the interactive UI.
		cfg, store, err := setup()
		if err != nil {
			return err
		}
		c, sess, err := authedClient(cfg, store)
		if err != nil {
			return err
		}
		app := tui.NewApp(c, sess.User, cfg)
		defer app.Close()
		return tui.Show(app)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of journal",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func initCmd() {
	initAuthCmds()
	initProfileCmd()
	initEntriesCmd()
	initTasksCmd()
	initUsersCmd()
	initNotificationsCmd()
	rootCmd.AddCommand(versionCmd, loginCmd, registerCmd, logoutCmd,
		profileCmd, entriesCmd, tasksCmd, usersCmd, notificationsCmd)
}

func main() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if os.Getenv("JOURNAL_DEBUG") == "true" || os.Getenv("DEBUG") == "true" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	initCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
