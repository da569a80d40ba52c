package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Fulozz/daily-journal/client"
	"github.com/Fulozz/daily-journal/store"
)

var (
	entryTitleFlag   string
	entryContentFlag string
	entrySearchFlag  string
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "Manage journal entries",
}

var entriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, st, err := setup()
		if err != nil {
			return err
		}
		c, _, err := authedClient(cfg, st)
		if err != nil {
			return err
		}
		entries, err := c.ListEntries(cmd.Context())
		if client.IsEndpointMissing(err) {
			fmt.Println("(server entries unavailable — showing sample data)")
			entries = client.PlaceholderEntries()
		} else if err != nil {
			return friendlyErr(err)
		}
		entries = store.Filter(entries, entrySearchFlag)
		if len(entries) == 0 {
			fmt.Println("No entries.")
			return nil
		}
		for _, e := range entries {
			printEntry(e)
		}
		return nil
	},
}

var entriesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Write a new entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, st, err := setup()
		if err != nil {
			return err
		}
		c, _, err := authedClient(cfg, st)
		if err != nil {
			return err
		}
		entry, err := c.CreateEntry(cmd.Context(), client.CreateEntryRequest{
			Title:   entryTitleFlag,
			Content: entryContentFlag,
		})
		if err != nil {
			return friendlyErr(err)
		}
		if entry.Local {
			fmt.Println("(server entries unavailable — saved locally for this session only)")
		}
		printEntry(*entry)
		return nil
	},
}

var entriesEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Replace the title and content of an entry",
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
		entry, err := c.UpdateEntry(cmd.Context(), args[0], client.UpdateEntryRequest{
			Title:   entryTitleFlag,
			Content: entryContentFlag,
		})
		if err != nil {
			return friendlyErr(err)
		}
		printEntry(*entry)
		return nil
	},
}

var entriesRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an entry",
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
		if err := c.DeleteEntry(cmd.Context(), args[0]); err != nil {
			return friendlyErr(err)
		}
		fmt.Println("Deleted.")
		return nil
	},
}

func initEntriesCmd() {
	entriesListCmd.Flags().StringVar(&entrySearchFlag, "search", "", "Filter by case-insensitive substring of title or content")
	entriesAddCmd.Flags().StringVar(&entryTitleFlag, "title", "", "Entry title")
	entriesAddCmd.Flags().StringVar(&entryContentFlag, "content", "", "Entry body")
	_ = entriesAddCmd.MarkFlagRequired("title")
	entriesEditCmd.Flags().StringVar(&entryTitleFlag, "title", "", "Replacement title")
	entriesEditCmd.Flags().StringVar(&entryContentFlag, "content", "", "Replacement body")
	_ = entriesEditCmd.MarkFlagRequired("title")
	entriesCmd.AddCommand(entriesListCmd, entriesAddCmd, entriesEditCmd, entriesRmCmd)
}
