package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rzauls/exif-tools/media"
	"github.com/rzauls/exif-tools/types"
	"github.com/rzauls/exif-tools/ui"
)

// DedupCmd removes video clips that duplicate a still image with the same
// base name, e.g. the .MOV half of a phone's live photo.
type DedupCmd struct {
	Directory string `arg:"" name:"directory" help:"Directory to scan for redundant video clips" type:"existingdir"`
	Yes       bool   `help:"Delete without asking for confirmation"`
	DryRun    bool   `help:"List redundant clips without deleting anything"`
}

// Run scans the directory, asks the operator to confirm, then deletes every
// clip whose base name matches a still image.
func (cmd *DedupCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}
	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("exif-tools %s", version)))
	fmt.Printf("Scanning %s for redundant video clips...\n", cmd.Directory)

	scan, err := media.FindLivePhotoVideos(cmd.Directory)
	if err != nil {
		return fmt.Errorf("failed to scan directory: %w", err)
	}

	for _, name := range scan.Kept {
		fmt.Printf("⚠️  Keeping %s (no matching image found)\n", name)
	}

	if len(scan.Redundant) == 0 {
		fmt.Printf("%s\n", ui.SuccessStyle.Render("✅ No redundant video clips found"))
		return nil
	}

	if cmd.DryRun {
		fmt.Printf("\n%s\n", ui.InfoStyle.Render(fmt.Sprintf("Would remove %d clip(s):", len(scan.Redundant))))
		for _, name := range scan.Redundant {
			fmt.Printf("  - %s\n", name)
		}
		return nil
	}

	if !cmd.Yes {
		final, err := tea.NewProgram(ui.NewConfirmModel(scan.Redundant)).Run()
		if err != nil {
			return fmt.Errorf("confirmation prompt failed: %w", err)
		}
		if confirm, ok := final.(ui.ConfirmModel); !ok || !confirm.Confirmed() {
			fmt.Println("Operation cancelled.")
			return nil
		}
	}

	// Fresh scan inside the removal, so a clip deleted by someone else in
	// the meantime is not double-counted.
	removed, skipped, err := media.RemoveLivePhotoVideos(cmd.Directory)
	if err != nil {
		return fmt.Errorf("failed to remove redundant clips: %w", err)
	}

	fmt.Printf("\n%s\n", ui.InfoStyle.Render(fmt.Sprintf("✅ Removed: %d, ⚠️ Kept: %d", removed, skipped)))
	return nil
}
