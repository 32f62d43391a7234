package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mm-notes/mm/internal/platform"
	"github.com/mm-notes/mm/pkg/repo"
)

var (
	addFolder string
	addEdit   bool
)

var addCmd = &cobra.Command{
	Use:   "add [note]",
	Short: "Create a new note and stage it",
	Long: `Create an empty note, optionally inside a folder, and stage it in Git.
An existing note is never overwritten. Notes matching .gitignore are created but not staged.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		r := openRepository(cmd)

		var opts []repo.NoteOption
		if cmd.Flags().Changed("folder") {
			opts = append(opts, repo.InFolder(addFolder))
		}

		var notePath string
		err := withLock(r, func() error {
			var err error
			notePath, err = r.AddNote(args[0], opts...)
			return err
		})
		if err != nil {
			fatal("Failed to add note", err)
		}

		fmt.Println(notePath)

		if addEdit {
			ed := platform.Editor(cfg, platform.WithLogger(slog.Default()))
			if err := ed.Run(context.Background(), notePath); err != nil {
				fatal("Failed to edit note", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addFolder, "folder", "f", "", "Folder to create the note in")
	addCmd.Flags().BoolVarP(&addEdit, "edit", "e", false, "Open the note in the editor")
}
