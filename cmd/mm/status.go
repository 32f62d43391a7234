package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show notes staged for the next snapshot",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		r := openRepository(cmd)

		staged, err := r.Staged()
		if err != nil {
			fatal("Failed to read status", err)
		}

		if len(staged) == 0 {
			fmt.Println("Nothing staged.")
			return
		}
		for _, p := range staged {
			fmt.Println(p)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
