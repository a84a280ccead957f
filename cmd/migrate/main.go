package main

import (
	"fmt"
	"os"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/logger"
	"github.com/spf13/cobra"
)

var env string

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Member directory data migration tool",
	Long:  `Feeds pages of raw member records from the association's member API through the member data pipeline and manages the directory schema and site settings.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Setup(env)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "local", "Environment (local|dev|prod)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
