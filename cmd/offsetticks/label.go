package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raaperrotta/offsetticks/internal/cli"
)

// labelCmd represents the label command
var labelCmd = &cobra.Command{
	Use:   "label",
	Short: "Compute offset labels for a set of tick positions",
	Long: `Computes offset tick labels once and prints them, one per line.

Tick positions come from --ticks (comma-separated) or from an axes YAML
file passed with --config.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		rawTicks, _ := cmd.Flags().GetString("ticks")

		if configPath != "" {
			if rawTicks != "" {
				fmt.Println("Error: --ticks and --config cannot be used together.")
				os.Exit(1)
			}
			if err := cli.RunFromConfig(os.Stdout, configPath); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			return
		}

		ticks, err := cli.ParseTicks(rawTicks)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		format, _ := cmd.Flags().GetString("format")
		trim, _ := cmd.Flags().GetBool("trim")
		commas, _ := cmd.Flags().GetBool("commas")
		debug, _ := cmd.Flags().GetBool("debug")

		opts := cli.LabelOptions{
			Ticks:  ticks,
			Format: format,
			Trim:   trim,
			Commas: commas,
			Debug:  debug,
		}
		if err := cli.RunLabel(os.Stdout, opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(labelCmd)

	labelCmd.Flags().String("ticks", "", "Comma-separated tick positions, e.g. 1000123,1000125")
	labelCmd.Flags().String("format", "", "printf-style numeric format, e.g. \"%.3f V\" (default: plain conversion)")
	labelCmd.Flags().Bool("trim", true, "Strip redundant trailing zeros from decimal fractions")
	labelCmd.Flags().Bool("commas", false, "Group digits with thousands separators")
	labelCmd.Flags().String("config", "", "Axes YAML file to label instead of --ticks")
	labelCmd.Flags().Bool("debug", false, "Enable debug logging")
}
