package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var folderCmd = &cobra.Command{
	Use:   "folder [name]",
	Short: "Create a folder for notes",
	Long:  `Create a single-level folder in the repository. Git does not track empty folders, so nothing is staged.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		r := openRepository(cmd)

		if err := withLock(r, func() error { return r.AddFolder(args[0]) }); err != nil {
			fatal("Failed to add folder", err)
		}

		fmt.Printf("Folder created: %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(folderCmd)
}
