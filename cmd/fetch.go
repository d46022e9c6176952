package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nocookie2/gnsscope/internal/utils"
	"github.com/nocookie2/gnsscope/pkg/cddis"
	"github.com/nocookie2/gnsscope/pkg/gpsweek"
	"github.com/nocookie2/gnsscope/pkg/storage"
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch weekly archive listings into the local cache",
	Long: `Fetches the product listing for every GPS week in the given range and
stores it in the local cache. With --out, additionally writes the combined
batch to a flat replay file ('resolve --file' consumes it later).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		weeks, err := weeksFromFlags(cmd)
		if err != nil {
			return err
		}

		proxy, _ := rootCmd.PersistentFlags().GetString("proxy")
		client := cddis.NewClient(viper.GetString("cddis.baseurl"), proxy)
		concurrency, _ := cmd.Flags().GetInt("concurrency")

		ctx := context.Background()
		batches, err := client.FetchWeekBatches(ctx, weeks, concurrency)
		if err != nil {
			return err
		}
		var lines []string
		for _, batch := range batches {
			lines = append(lines, batch...)
		}
		utils.Log.Infof("fetched %d listing lines across %d weeks", len(lines), len(weeks))

		dbPath, _ := cmd.Flags().GetString("dbpath")
		path, err := storage.DefaultPath(dbPath)
		if err != nil {
			return err
		}
		lock := utils.NewCacheLock(path)
		if err := lock.Lock(); err != nil {
			return err
		}
		defer lock.Unlock()

		db, err := storage.Open(path)
		if err != nil {
			return err
		}
		defer db.Close()

		for i, week := range weeks {
			if err := db.PutWeek(ctx, week, batches[i]); err != nil {
				return err
			}
		}

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			if err := cddis.WriteListFile(out, lines); err != nil {
				return err
			}
			fmt.Printf("wrote replay file %s\n", out)
		}
		return nil
	},
}

// weeksFromFlags turns either --weeks or a --start/--end window into a
// GPS week list.
func weeksFromFlags(cmd *cobra.Command) ([]int, error) {
	weeks, _ := cmd.Flags().GetIntSlice("weeks")
	if len(weeks) > 0 {
		return weeks, nil
	}

	startStr, _ := cmd.Flags().GetString("start")
	endStr, _ := cmd.Flags().GetString("end")
	if startStr == "" || endStr == "" {
		return nil, fmt.Errorf("either --weeks or both --start and --end are required")
	}
	window, err := parseWindow(startStr, endStr)
	if err != nil {
		return nil, err
	}
	return gpsweek.Range(window.Start, window.End), nil
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().IntSlice("weeks", nil, "GPS weeks to fetch (e.g. 2360,2361)")
	fetchCmd.Flags().String("start", "", "Window start, YYYY-MM-DD_HH:MM:SS")
	fetchCmd.Flags().String("end", "", "Window end, YYYY-MM-DD_HH:MM:SS")
	fetchCmd.Flags().Int("concurrency", cddis.DefaultConcurrency, "Parallel week fetches")
	fetchCmd.Flags().String("dbpath", "", "Listing cache path (default: ~/.config/gnsscope/gnsscope.sqlite)")
	fetchCmd.Flags().String("out", "", "Also write the combined batch to a flat replay file")
}
