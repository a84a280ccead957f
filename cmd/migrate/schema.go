package main

import (
	"fmt"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/database"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

// schemaCmd creates missing tables and columns without dropping data
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create or update the directory tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.AutoMigrate(db.DB); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
		return nil
	},
}
