package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "offsetticks",
	Short: "offsetticks labels axis ticks as offsets from the first tick",
	Long:  `offsetticks computes axis tick labels where the first tick shows its absolute value and every later tick shows its signed distance from the first, keeping small variations in large-magnitude data legible.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
