package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/moviemood/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize moviemood configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that asks for the review server URL, speech settings and page size, and writes a .moviemood.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
