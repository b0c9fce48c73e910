package interfaces

import (
	"context"
)

// Prompter collects the interactive answers needed by the chart pipelines
type Prompter interface {
	// AskYesNo repeats the question until the user answers y or n
	AskYesNo(ctx context.Context, question string) (bool, error)
	// AskFilename reads the output image path
	AskFilename(ctx context.Context) (string, error)
	// AskDPI reads a positive integer resolution, re-prompting on invalid input
	AskDPI(ctx context.Context) (int, error)
	// Notify shows a status line alongside the prompts
	Notify(ctx context.Context, message string)
}
