package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mm-notes/mm/internal/platform"
	"github.com/mm-notes/mm/pkg/repo"
)

var editFolder string

var editCmd = &cobra.Command{
	Use:   "edit [note]",
	Short: "Open an existing note in the editor",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		r := openRepository(cmd)

		var opts []repo.NoteOption
		if cmd.Flags().Changed("folder") {
			opts = append(opts, repo.InFolder(editFolder))
		}

		notePath, err := r.NotePath(args[0], opts...)
		if err != nil {
			fatal("Failed to find note", err)
		}

		ed := platform.Editor(cfg, platform.WithLogger(slog.Default()))
		if err := ed.Run(context.Background(), notePath); err != nil {
			fatal("Failed to edit note", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editFolder, "folder", "f", "", "Folder containing the note")
}
