package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ms1963/SudokuSolverAndGenerator/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored puzzles",
	RunE: func(cmd *cobra.Command, args []string) error {
		metas, err := storage.NewFS(cfg.DataDir).List(cmd.Context())
		if err != nil {
			return err
		}
		if len(metas) == 0 {
			fmt.Println("no stored puzzles")
			return nil
		}
		for _, m := range metas {
			name := m.Name
			if name == "" {
				name = "-"
			}
			fmt.Printf("%s  dim=%d  occupancy=%-3d  %s  %s\n",
				m.ID, m.Dim, m.Occupancy, m.CreatedAt.Format("2006-01-02 15:04"), name)
		}
		return nil
	},
}
