package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/Weinkeller/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Weinkeller"), kong.Description("Weinkeller is a wine collection and cellar inventory manager."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
