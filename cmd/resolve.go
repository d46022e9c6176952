package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nocookie2/gnsscope/internal/utils"
	"github.com/nocookie2/gnsscope/pkg/products"
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "List the product combinations that fully cover a time window",
	Long: `Builds a product catalog for the requested window (from the archive,
the local cache, or a replay file) and prints every (analysis center,
project type, solution type) combination with complete, gap-free coverage
of the window for the required file categories.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		startStr, _ := cmd.Flags().GetString("start")
		endStr, _ := cmd.Flags().GetString("end")
		window, err := parseWindow(startStr, endStr)
		if err != nil {
			return err
		}

		targets, _ := cmd.Flags().GetStringSlice("targets")
		if len(targets) == 0 {
			targets = viper.GetStringSlice("resolve.targets")
		}

		lines, err := gatherLines(cmd, window)
		if err != nil {
			return err
		}

		catalog := products.BuildCatalog(lines)
		utils.Log.Debugf("catalog built: %d records, %d rejected lines", catalog.Len(), catalog.Rejected())

		coverage, err := products.Resolve(catalog, window, targets)
		if errors.Is(err, products.ErrNoCoverage) {
			return fmt.Errorf("%w - try widening the window or reducing --targets (currently %s)",
				err, strings.Join(targets, ","))
		}
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "CENTER\tPROJECT\tSOLUTION\t")
		for _, center := range coverage.Centers() {
			for _, combo := range coverage[center] {
				fmt.Fprintf(w, "%s\t%s\t%s\t\n", center, combo.ProjectType, combo.SolutionType)
			}
		}
		w.Flush()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().String("start", "", "Window start, YYYY-MM-DD_HH:MM:SS (required)")
	resolveCmd.Flags().String("end", "", "Window end, YYYY-MM-DD_HH:MM:SS (required)")
	resolveCmd.Flags().StringSlice("targets", nil, "Required file categories (default from config: CLK,BIA,SP3)")
	resolveCmd.Flags().String("file", "", "Resolve from a flat listing file instead of the archive")
	resolveCmd.Flags().String("dbpath", "", "Listing cache path (default: ~/.config/gnsscope/gnsscope.sqlite)")
	resolveCmd.Flags().Bool("no-cache", false, "Bypass the listing cache and always fetch")
	resolveCmd.MarkFlagRequired("start")
	resolveCmd.MarkFlagRequired("end")
}
