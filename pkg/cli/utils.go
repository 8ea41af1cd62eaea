package cli

import (
	"sync"

	"github.com/entraops/dlman/pkg/usecase"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

// progressBar renders a terminal progress bar fed by completion-order
// callbacks. The bar is created on first report since the total may not
// be known until a workflow finishes its discovery phase.
func progressBar(title string) (usecase.ProgressFunc, func()) {
	var mu sync.Mutex
	var bar *pterm.ProgressbarPrinter

	report := func(done, total int, label string) {
		mu.Lock()
		defer mu.Unlock()
		if bar == nil {
			bar, _ = pterm.DefaultProgressbar.
				WithTotal(total).
				WithTitle(title).
				Start()
		}
		bar.UpdateTitle(label)
		bar.Increment()
	}
	stop := func() {
		mu.Lock()
		defer mu.Unlock()
		if bar != nil {
			_, _ = bar.Stop()
		}
	}
	return report, stop
}
