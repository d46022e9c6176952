package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tidwall/gjson"

	"github.com/nocookie2/gnsscope/internal/utils"
	"github.com/nocookie2/gnsscope/pkg/cddis"
	"github.com/nocookie2/gnsscope/pkg/gpsweek"
	"github.com/nocookie2/gnsscope/pkg/products"
	"github.com/nocookie2/gnsscope/pkg/storage"
)

// windowLayout is the boundary format commands accept, e.g.
// 2025-05-01_00:00:00.
const windowLayout = "2006-01-02_15:04:05"

func parseWindow(startStr, endStr string) (products.TimeWindow, error) {
	start, err := time.ParseInLocation(windowLayout, startStr, time.UTC)
	if err != nil {
		return products.TimeWindow{}, fmt.Errorf("invalid window start %q: use YYYY-MM-DD_HH:MM:SS (e.g. 2025-05-01_00:00:00)", startStr)
	}
	end, err := time.ParseInLocation(windowLayout, endStr, time.UTC)
	if err != nil {
		return products.TimeWindow{}, fmt.Errorf("invalid window end %q: use YYYY-MM-DD_HH:MM:SS (e.g. 2025-05-01_23:59:30)", endStr)
	}
	window := products.TimeWindow{Start: start, End: end}
	if err := window.Validate(); err != nil {
		return products.TimeWindow{}, err
	}
	return window, nil
}

// gatherLines assembles the raw listing batch for a window: a replay file
// when --file is set, otherwise the archive listings for every GPS week
// the window touches, going through the local cache unless --no-cache.
func gatherLines(cmd *cobra.Command, window products.TimeWindow) ([]string, error) {
	listFile, _ := cmd.Flags().GetString("file")
	if listFile != "" {
		return cddis.ReadListFile(listFile)
	}

	proxy, _ := rootCmd.PersistentFlags().GetString("proxy")
	client := cddis.NewClient(viper.GetString("cddis.baseurl"), proxy)
	weeks := gpsweek.Range(window.Start, window.End)

	noCache, _ := cmd.Flags().GetBool("no-cache")
	if noCache {
		return client.FetchWeeks(context.Background(), weeks, cddis.DefaultConcurrency)
	}

	dbPath, _ := cmd.Flags().GetString("dbpath")
	path, err := storage.DefaultPath(dbPath)
	if err != nil {
		return nil, err
	}
	lock := utils.NewCacheLock(path)
	if err := lock.Lock(); err != nil {
		return nil, err
	}
	defer lock.Unlock()

	db, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	ctx := context.Background()
	var lines []string
	for _, week := range weeks {
		cached, ok, err := db.GetWeek(ctx, week)
		if err != nil {
			return nil, err
		}
		if ok {
			utils.Log.Debugf("GPS week %d: %d cached lines", week, len(cached))
			lines = append(lines, cached...)
			continue
		}
		fetched, err := client.FetchWeek(ctx, week)
		if err != nil {
			return nil, err
		}
		utils.Log.Debugf("GPS week %d: fetched %d lines", week, len(fetched))
		if err := db.PutWeek(ctx, week, fetched); err != nil {
			return nil, err
		}
		lines = append(lines, fetched...)
	}
	return lines, nil
}

// loadPriorities builds the priority table from config, optionally
// overridden by --priority-json, e.g.
// '{"projects":["MGX","OPS"],"solutions":["FIN","RAP","ULT"]}'.
func loadPriorities(priorityJSON string) (products.PriorityTable, error) {
	table := products.PriorityTable{
		Projects:  viper.GetStringSlice("priority.projects"),
		Solutions: viper.GetStringSlice("priority.solutions"),
	}
	if priorityJSON == "" {
		return table, nil
	}
	if !gjson.Valid(priorityJSON) {
		return products.PriorityTable{}, fmt.Errorf("invalid priority JSON: %s", priorityJSON)
	}
	if projects := gjson.Get(priorityJSON, "projects"); projects.Exists() {
		table.Projects = nil
		for _, p := range projects.Array() {
			table.Projects = append(table.Projects, p.String())
		}
	}
	if solutions := gjson.Get(priorityJSON, "solutions"); solutions.Exists() {
		table.Solutions = nil
		for _, s := range solutions.Array() {
			table.Solutions = append(table.Solutions, s.String())
		}
	}
	return table, nil
}
