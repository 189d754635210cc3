package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-params/tools/paramctl/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
