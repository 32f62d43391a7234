package main

import (
	"fmt"
	"strings"

	"github.com/mm-notes/mm"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mm",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mm version %s\n", strings.TrimSpace(mm.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
