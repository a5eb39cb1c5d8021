package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raaperrotta/offsetticks/internal/cli"
)

// guideCmd represents the guide command
var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the offset labeling guide",
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.RunGuide(os.Stdout); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
