package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/moviemood/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme [toggle]",
	Short: "Show or toggle the light/dark theme",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, prefs, err := openPrefs(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		ctx := context.Background()
		c := theme.NewController(prefs)
		view := c.Load(ctx)
		if len(args) == 1 {
			if args[0] != "toggle" {
				return fmt.Errorf("unknown argument %q (expected toggle)", args[0])
			}
			if view, err = c.Toggle(ctx); err != nil {
				return err
			}
		}
		fmt.Printf("Theme: %s (%s)\n", c.Mode(), view.ClassName())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
