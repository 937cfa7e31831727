package cmd

import (
	"fmt"

	"github.com/schollz/progressbar/v3"

	"github.com/rzauls/exif-tools/media"
	"github.com/rzauls/exif-tools/types"
	"github.com/rzauls/exif-tools/ui"
)

// OrganizeCmd renames media files after their capture date and gathers them
// into a destination subdirectory. Files without a determinable capture date
// are left where they are.
type OrganizeCmd struct {
	Source string `arg:"" name:"source" help:"Directory containing media files to organize" type:"existingdir"`
	Dest   string `arg:"" name:"dest" optional:"" default:"dated_media" help:"Destination subdirectory name"`
}

// Run executes the organize pipeline and prints the three-line summary.
func (cmd *OrganizeCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}
	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("exif-tools %s", version)))
	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("Organizing %s into %s/:", cmd.Source, cmd.Dest)))

	bar := progressbar.Default(-1, "scanning")
	result, err := media.Organize(cmd.Source, cmd.Dest, func(event media.Event) {
		_ = bar.Add(1)
		switch event.Outcome {
		case media.OutcomeMoved:
			fmt.Printf("\r%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ %s → %s", event.Name, event.NewName)))
		case media.OutcomeNoDate:
			fmt.Printf("\r⚠️  No capture date for %s, leaving in place\n", event.Name)
		}
	})
	_ = bar.Finish()
	if err != nil {
		return fmt.Errorf("failed to organize %s: %w", cmd.Source, err)
	}

	fmt.Printf("\n%s\n", ui.InfoStyle.Render("Summary:"))
	fmt.Printf("  Files processed: %d\n", result.Processed)
	fmt.Printf("  Files moved and renamed: %d\n", result.Moved)
	fmt.Printf("  Files without date metadata: %d\n", result.WithoutDate)
	return nil
}
