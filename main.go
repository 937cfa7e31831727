package main

import (
	"github.com/alecthomas/kong"

	"github.com/rzauls/exif-tools/cmd"
	"github.com/rzauls/exif-tools/types"
)

var Version = "dev"

// CLI defines the top-level command structure.
type CLI struct {
	Dedup    cmd.DedupCmd    `cmd:"" help:"Remove video clips that duplicate a still image with the same base name"`
	Organize cmd.OrganizeCmd `cmd:"" help:"Rename media files by capture date and move them into a subdirectory"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("exif-tools"),
		kong.Description("Utilities for tidying personal media collections."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&types.AppContext{Version: Version})
	ctx.FatalIfErrorf(err)
}
