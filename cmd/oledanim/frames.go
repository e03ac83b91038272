package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/CDXX710/GameDAC-Animation/internal/cliconfig"
	"github.com/CDXX710/GameDAC-Animation/internal/domain"
)

func newFramesCmd(cfg *cliconfig.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "frames",
		Short: "Print the configured animation frames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			animation, err := domain.NewAnimation(cfg.Frames)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, f := range animation.Frames() {
				fmt.Fprintf(out, "%3d |%s| %d\n", i, f, utf8.RuneCountInString(f))
			}
			return nil
		},
	}
}
