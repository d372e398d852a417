// Open command hands selected boreholes to the stratigraphy viewer.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/geoforge/drillbridge/internal/connect"
	"github.com/geoforge/drillbridge/internal/selection"
)

var openCmd = &cobra.Command{
	Use:   "open <selection.json>",
	Short: "Open selected boreholes in the stratigraphy viewer",
	Long: `Open loads a selection file exported from the GIS layer, extracts the
borehole location IDs, and asks the subsurface-investigation CLI to open
them in the stratigraphy viewer.

Example:
  drillbridge open selection.json`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func runOpen(cmd *cobra.Command, args []string) error {
	if err := requireCLIConfigured(); err != nil {
		return err
	}

	sel, err := selection.Load(args[0])
	if err != nil {
		return fmt.Errorf("load selection: %w", err)
	}

	locationIDs, _, err := sel.BoreholeRefs()
	if err != nil {
		return fmt.Errorf("extract borehole refs: %w", err)
	}

	started := time.Now()
	err = connect.NewClient(settings).OpenInViewer(locationIDs, connect.ViewerAppStratig, connect.ViewerModeOpen)

	message := ""
	if err != nil {
		message = err.Error()
	}
	recordInvocation("open", strings.Join(locationIDs, ","), err == nil, message, started)

	if err != nil {
		return err
	}

	fmt.Printf("Opened %d borehole(s) in the stratigraphy viewer.\n", len(locationIDs))
	return nil
}
