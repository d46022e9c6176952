package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nocookie2/gnsscope/pkg/products"
)

// optimalCmd represents the optimal command
var optimalCmd = &cobra.Command{
	Use:   "optimal <analysis-center>",
	Short: "Pick the preferred (project, solution) pair for one analysis center",
	Long: `Resolves coverage for the window like 'resolve' does, then applies the
project and solution priority lists to the named analysis center. Having no
preferred combination among the valid ones is a normal outcome, reported as
such rather than as an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		center := args[0]

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

		priorityJSON, _ := cmd.Flags().GetString("priority-json")
		table, err := loadPriorities(priorityJSON)
		if err != nil {
			return err
		}

		lines, err := gatherLines(cmd, window)
		if err != nil {
			return err
		}

		coverage, err := products.Resolve(products.BuildCatalog(lines), window, targets)
		if errors.Is(err, products.ErrNoCoverage) {
			return fmt.Errorf("%w - try widening the window", err)
		}
		if err != nil {
			return err
		}

		combo, ok := products.SelectOptimal(coverage, center, table)
		if !ok {
			fmt.Printf("no preferred combination for %s; valid combinations:\n", center)
			for _, c := range coverage[center] {
				fmt.Printf("  %s %s\n", c.ProjectType, c.SolutionType)
			}
			return nil
		}

		fmt.Printf("%s %s %s\n", center, combo.ProjectType, combo.SolutionType)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(optimalCmd)

	optimalCmd.Flags().String("start", "", "Window start, YYYY-MM-DD_HH:MM:SS (required)")
	optimalCmd.Flags().String("end", "", "Window end, YYYY-MM-DD_HH:MM:SS (required)")
	optimalCmd.Flags().StringSlice("targets", nil, "Required file categories (default from config: CLK,BIA,SP3)")
	optimalCmd.Flags().String("priority-json", "", `Priority override, e.g. '{"projects":["MGX"],"solutions":["FIN","RAP","ULT"]}'`)
	optimalCmd.Flags().String("file", "", "Resolve from a flat listing file instead of the archive")
	optimalCmd.Flags().String("dbpath", "", "Listing cache path (default: ~/.config/gnsscope/gnsscope.sqlite)")
	optimalCmd.Flags().Bool("no-cache", false, "Bypass the listing cache and always fetch")
	optimalCmd.MarkFlagRequired("start")
	optimalCmd.MarkFlagRequired("end")
}
