// Package shell is the interactive terminal front end: the chart menu and the
// prompts for file name, resolution and annotations.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/interfaces"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/types"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/usecase"
	"github.com/charmbracelet/lipgloss"
	"github.com/m-mizutani/goerr/v2"
)

// Prompts and messages
const (
	MenuHeader     = "Select the chart you want to generate:"
	MenuFooter     = "Enter the number corresponding to your choice, or 'exit' to quit:"
	InvalidChoice  = "Invalid input. Please try again."
	FilenamePrompt = "What should the file name be?\nFile name: "
	DPIPrompt      = "What should the dpi be? (Resolution is dpi*15 x dpi*10)\ndpi: "
	InvalidDPI     = "This is not a valid number. Must be an integer."
	YesNoRetry     = "Please enter either 'y' or 'n': "

	exitCommand = "exit"
)

// MenuChoices are the charts in menu order; option n selects MenuChoices[n-1]
var MenuChoices = []types.ChartKind{
	types.ChartTeamSize,
	types.ChartTenure,
	types.ChartTimeline,
	types.ChartTenureDistribution,
}

// Shell reads answers line by line from in and writes prompts to out
type Shell struct {
	in     *bufio.Reader
	out    io.Writer
	header lipgloss.Style
	notice lipgloss.Style
}

var _ interfaces.Prompter = (*Shell)(nil)

// New creates a new Shell
func New(in io.Reader, out io.Writer) *Shell {
	r := lipgloss.NewRenderer(out)
	return &Shell{
		in:     bufio.NewReader(in),
		out:    out,
		header: r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "33"}),
		notice: r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "238", Dark: "250"}),
	}
}

// Run shows the menu and generates the selected chart. It returns nil when the
// user exits or input ends.
func (s *Shell) Run(ctx context.Context, uc usecase.ChartUseCase) error {
	kind, ok, err := s.Select(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return s.RunChart(ctx, uc, kind)
}

// RunChart generates one chart without the menu
func (s *Shell) RunChart(ctx context.Context, uc usecase.ChartUseCase, kind types.ChartKind) error {
	result, err := uc.Run(ctx, kind)
	if err != nil {
		return err
	}
	s.printf("%s\n", s.notice.Render(fmt.Sprintf("%s saved to '%s'", kind.Title(), result.Path)))
	if result.WorkbookPath != "" {
		s.printf("%s\n", s.notice.Render(fmt.Sprintf("Chart data saved to '%s'", result.WorkbookPath)))
	}
	if result.SlackFileID != "" {
		s.printf("%s\n", s.notice.Render("Chart shared to Slack"))
	}
	return nil
}

// Select prints the menu until a valid choice is entered. ok is false when the
// user typed exit or input ended.
func (s *Shell) Select(ctx context.Context) (types.ChartKind, bool, error) {
	for {
		s.printMenu()

		line, err := s.readLine(ctx)
		if err == io.EOF {
			return "", false, nil
		}
		if err != nil {
			return "", false, err
		}

		choice := strings.ToLower(strings.TrimSpace(line))
		if choice == exitCommand {
			return "", false, nil
		}
		if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(MenuChoices) {
			return MenuChoices[n-1], true, nil
		}
		s.printf("%s\n", InvalidChoice)
	}
}

// AskYesNo implements interfaces.Prompter
func (s *Shell) AskYesNo(ctx context.Context, question string) (bool, error) {
	prompt := question
	for {
		s.printf("%s", prompt)
		line, err := s.readLine(ctx)
		if err != nil {
			return false, goerr.Wrap(err, "no answer", goerr.V("question", question))
		}
		switch strings.TrimSpace(line) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		prompt = YesNoRetry
	}
}

// AskFilename implements interfaces.Prompter
func (s *Shell) AskFilename(ctx context.Context) (string, error) {
	s.printf("%s", FilenamePrompt)
	line, err := s.readLine(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "no file name given")
	}
	return strings.TrimSpace(line), nil
}

// AskDPI implements interfaces.Prompter
func (s *Shell) AskDPI(ctx context.Context) (int, error) {
	for {
		s.printf("%s", DPIPrompt)
		line, err := s.readLine(ctx)
		if err != nil {
			return 0, goerr.Wrap(err, "no dpi given")
		}
		if dpi, err := strconv.Atoi(strings.TrimSpace(line)); err == nil && dpi > 0 {
			return dpi, nil
		}
		s.printf("%s\n", InvalidDPI)
	}
}

// Notify implements interfaces.Prompter
func (s *Shell) Notify(ctx context.Context, message string) {
	s.printf("%s\n", s.notice.Render(message))
}

func (s *Shell) printMenu() {
	s.printf("%s\n", s.header.Render(MenuHeader))
	for i, kind := range MenuChoices {
		s.printf("%d. %s\n", i+1, kind.Title())
	}
	s.printf("%s\n", MenuFooter)
}

// readLine returns io.EOF only when nothing was read before the end of input
func (s *Shell) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := s.in.ReadString('\n')
	if err == io.EOF && line != "" {
		return strings.TrimRight(line, "\r\n"), nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
