package cmd

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff query query",
	Short: "Shows how the parameters of two query strings differ",
	Args:  cobra.ExactArgs(2),
	RunE:  RunDiff,
}

func RunDiff(cmd *cobra.Command, args []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}

	a, err := mergeQueries(c, args[:1])
	if err != nil {
		return err
	}

	b, err := mergeQueries(c, args[1:])
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), diffText(render(a), render(b)))
	return err
}

// diffText returns a line-oriented diff of a and b with "-" and "+" markers.
func diffText(a, b string) string {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	buf := &strings.Builder{}
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			_, _ = fmt.Fprintf(buf, "%s%s\n", prefix, line)
		}
	}
	return buf.String()
}
