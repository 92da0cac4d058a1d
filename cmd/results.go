package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/tourclimb/internal/store"
	"github.com/cwbudde/tourclimb/internal/tour"
)

var resultsDataDir string

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Inspect stored solve results",
	Long:  `Lists, shows and deletes results saved with "solve --save-dir".`,
}

var listResultsCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored results",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, err := store.NewFSStore(resultsDataDir)
		if err != nil {
			return fmt.Errorf("failed to open result store: %w", err)
		}
		infos, err := fs.ListResults()
		if err != nil {
			return fmt.Errorf("failed to list results: %w", err)
		}
		return printResultTable(cmd.OutOrStdout(), infos)
	},
}

var showResultCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one stored result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, err := store.NewFSStore(resultsDataDir)
		if err != nil {
			return fmt.Errorf("failed to open result store: %w", err)
		}
		result, err := fs.LoadResult(args[0])
		if err != nil {
			return err
		}
		printResult(cmd.OutOrStdout(), result)
		return nil
	},
}

var deleteResultCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored result and its trace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, err := store.NewFSStore(resultsDataDir)
		if err != nil {
			return fmt.Errorf("failed to open result store: %w", err)
		}
		if err := fs.DeleteResult(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resultsCmd)
	resultsCmd.AddCommand(listResultsCmd, showResultCmd, deleteResultCmd)
	resultsCmd.PersistentFlags().StringVar(&resultsDataDir, "data-dir", "./data", "Directory results are stored in")
}

func printResultTable(out io.Writer, infos []store.ResultInfo) error {
	if len(infos) == 0 {
		fmt.Fprintln(out, "No results found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIMESTAMP\tCITIES\tRESTARTS\tSTRATEGY\tDISTANCE")
	fmt.Fprintln(w, "--\t---------\t------\t--------\t--------\t--------")
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%.6f\n",
			shortID(info.ID),
			info.Timestamp.Format("2006-01-02 15:04:05"),
			info.CityCount,
			info.Restarts,
			info.Strategy,
			info.Distance,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nTotal results: %d\n", len(infos))
	return nil
}

func printResult(out io.Writer, r *store.Result) {
	fmt.Fprintf(out, "Result: %s\n", r.ID)
	fmt.Fprintf(out, "  City file: %s (%d cities)\n", r.Config.CityFile, r.Config.CityCount)
	fmt.Fprintf(out, "  Strategy: %s, seed %d\n", r.Config.Strategy, r.Config.Seed)
	fmt.Fprintf(out, "  Restarts: %d of %d\n", r.Restarts, r.Config.Restarts)
	fmt.Fprintf(out, "  Elapsed: %s\n", r.Elapsed)
	fmt.Fprintf(out, "total distance = %f\n", r.Distance)
	fmt.Fprintln(out, tour.VisitOrder(r.Route))
}

// shortID truncates long IDs for table display
func shortID(id string) string {
	if len(id) > 12 {
		return id[:12] + "..."
	}
	return id
}
