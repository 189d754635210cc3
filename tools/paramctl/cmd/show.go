package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show query...",
	Short: "Merge query strings and show the resulting parameters",
	Args:  cobra.MinimumNArgs(1),
	RunE:  RunShow,
}

func RunShow(cmd *cobra.Command, args []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}

	ps, err := mergeQueries(c, args)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), render(ps))
	return err
}
