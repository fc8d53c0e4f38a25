// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/helpsplit/internal/index"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded extraction runs",
	Long: `History lists runs recorded with extract --index-db, newest first.
Use the show subcommand to print one run's sections.`,
	RunE: runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show RUN_ID",
	Short: "Print the sections recorded for one run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.PersistentFlags().String("db", "", "SQLite history database path")
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")
	historyCmd.Flags().Bool("json", false, "output runs as JSON")

	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func historyStore(cmd *cobra.Command) (*index.Store, error) {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = viper.GetString("index.db_path")
	}
	if dbPath == "" {
		return nil, fmt.Errorf("history database required: pass --db or set index.db_path in config")
	}
	return index.Open(dbPath)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := historyStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.ListRuns(context.Background(), limit)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-20s  %6s  %5s  %7s  %5s\n",
		"ID", "Created", "Lines", "Main", "Actions", "Files")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%-36s  %-20s  %6d  %5d  %7d  %5d\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.TotalLines, r.MainCount, r.ActionCount, r.FilesWritten)
	}
	fmt.Fprintf(os.Stdout, "\n%d run(s)\n", len(runs))
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := historyStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	sections, err := store.RunSections(context.Background(), args[0])
	if err != nil {
		return err
	}

	for _, rec := range sections {
		name := rec.Name
		if rec.Label != "" {
			name = rec.Label
		}
		fmt.Fprintf(os.Stdout, "%-6s  lines %4d-%-4d  %s\n", rec.Kind, rec.StartLine, rec.EndLine, name)
	}
	return nil
}
