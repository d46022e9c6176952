package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nocookie2/gnsscope/pkg/storage"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Prints statistics about the cached weekly listings.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("dbpath")
		path, err := storage.DefaultPath(dbPath)
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("listing cache not found: %s", path)
			}
			return err
		}

		db, err := storage.Open(path)
		if err != nil {
			return err
		}
		defer db.Close()

		stats, err := db.Stats(context.Background())
		if err != nil {
			return err
		}

		if len(stats) == 0 {
			fmt.Println("No cached weeks. Run 'gnsscope fetch' first.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "WEEK\tLINES\tFETCHED AT\t")

		var totalLines int
		for _, s := range stats {
			fmt.Fprintf(w, "%d\t%d\t%s\t\n", s.Week, s.LineCount, s.FetchedAt.Format("2006-01-02 15:04:05"))
			totalLines += s.LineCount
		}

		fmt.Fprintln(w, " \t \t \t")
		fmt.Fprintf(w, "TOTAL\t%d\t \t\n", totalLines)

		w.Flush()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().String("dbpath", "", "Listing cache path (default: ~/.config/gnsscope/gnsscope.sqlite)")
}
