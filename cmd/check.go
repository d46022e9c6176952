package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nocookie2/gnsscope/pkg/cddis"
	"github.com/nocookie2/gnsscope/pkg/whttp"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify Earthdata credentials and archive reachability",
	Long: `Checks that a netrc file with complete Earthdata credentials exists,
then (unless --offline) sends a request to the archive to confirm it is
reachable from this machine.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		machine := viper.GetString("cddis.machine")
		if err := cddis.ValidateNetrc(machine); err != nil {
			fmt.Println("Earthdata registration: https://urs.earthdata.nasa.gov/users/new")
			fmt.Println("netrc setup instructions: https://cddis.nasa.gov/Data_and_Derived_Products/CreateNetrcFile.html")
			return err
		}
		fmt.Printf("credentials for %s: OK\n", machine)

		offline, _ := cmd.Flags().GetBool("offline")
		if offline {
			return nil
		}

		proxy, _ := rootCmd.PersistentFlags().GetString("proxy")
		baseURL := viper.GetString("cddis.baseurl")
		res, err := whttp.Send(context.Background(), &whttp.Request{URL: baseURL}, whttp.NewClient(proxy))
		if err != nil {
			return fmt.Errorf("archive unreachable: %w", err)
		}
		if res.HTMLTitle != "" {
			fmt.Printf("archive %s: HTTP %d (%s)\n", baseURL, res.StatusCode, res.HTMLTitle)
		} else {
			fmt.Printf("archive %s: HTTP %d\n", baseURL, res.StatusCode)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Bool("offline", false, "Skip the archive connectivity test")
}
