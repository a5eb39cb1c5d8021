package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raaperrotta/offsetticks"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of offsetticks",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("offsetticks version %s\n", strings.TrimSpace(offsetticks.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
