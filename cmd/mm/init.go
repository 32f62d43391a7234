package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the repository (git init) and a default config",
	Long: `Initialize the selected repository under <data-dir>/repos.
Running it again on an existing repository is harmless.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		r := openRepository(cmd)

		if cfg.File != "" {
			if _, err := os.Stat(cfg.File); os.IsNotExist(err) {
				if err := cfg.Save(); err != nil {
					fatal("Failed to write config", err)
				}
				fmt.Println("Wrote default config to", cfg.File)
			}
		}

		wd, err := r.WorkDir()
		if err != nil {
			fatal("Failed to get working directory", err)
		}
		fmt.Printf("Repository %s ready in %s\n", r.Name(), wd)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
