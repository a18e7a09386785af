package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// ProgressBar wraps the progressbar library for per-file analysis progress
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a progress bar for a named phase over total items.
// It writes to stderr so document paths printed to stdout stay clean.
func NewProgressBar(phase string, total int) *ProgressBar {
	return NewProgressBarWithOutput(phase, total, os.Stderr)
}

// NewProgressBarWithOutput creates a progress bar with a custom writer
func NewProgressBarWithOutput(phase string, total int, output io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(output),
		progressbar.OptionSetDescription(fmt.Sprintf("[%s]", phase)),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
	)
	return &ProgressBar{bar: bar}
}

// Increment advances the bar by one item
func (p *ProgressBar) Increment() {
	_ = p.bar.Add(1)
}

// Finish completes and clears the bar
func (p *ProgressBar) Finish() {
	_ = p.bar.Finish()
}
