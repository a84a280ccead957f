package main

import (
	"context"
	"fmt"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/siteconfig"
	"github.com/spf13/cobra"
)

func init() {
	siteConfigCmd.AddCommand(siteConfigGetCmd, siteConfigSetCmd)
	rootCmd.AddCommand(siteConfigCmd)
}

var siteConfigCmd = &cobra.Command{
	Use:   "site-config",
	Short: "Read or write site settings (e.g. AUTOMATION_EMAIL_TRIGGER_ID)",
}

var siteConfigGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print a site setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		service := siteconfig.NewSiteConfigService(db.DB, siteconfig.NewSiteConfigRepository())
		value, err := service.GetValue(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var siteConfigSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Store a site setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		service := siteconfig.NewSiteConfigService(db.DB, siteconfig.NewSiteConfigRepository())
		return service.SetValue(context.Background(), args[0], args[1])
	},
}
