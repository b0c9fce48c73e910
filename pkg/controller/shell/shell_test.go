package shell_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/controller/shell"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/types"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/repository"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/usecase"
	"github.com/m-mizutani/gt"
)

type mockChartUseCase struct {
	kinds  []types.ChartKind
	result *usecase.ChartResult
	err    error
}

func (m *mockChartUseCase) Run(ctx context.Context, kind types.ChartKind) (*usecase.ChartResult, error) {
	m.kinds = append(m.kinds, kind)
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func newShell(input string) (*shell.Shell, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return shell.New(strings.NewReader(input), out), out
}

func TestSelect(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		input    string
		expected types.ChartKind
		ok       bool
		invalid  int
	}{
		{"Team size", "1\n", types.ChartTeamSize, true, 0},
		{"Tenure", "2\n", types.ChartTenure, true, 0},
		{"Timeline", " 3 \n", types.ChartTimeline, true, 0},
		{"Tenure distribution", "4\n", types.ChartTenureDistribution, true, 0},
		{"Exit", "exit\n", "", false, 0},
		{"Exit upper case", "EXIT\n", "", false, 0},
		{"End of input", "", "", false, 0},
		{"Invalid then valid", "7\nabc\n\n2\n", types.ChartTenure, true, 3},
		{"Invalid then end of input", "0\n", "", false, 1},
		{"No trailing newline", "1", types.ChartTeamSize, true, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, out := newShell(tc.input)
			kind, ok, err := s.Select(ctx)
			gt.NoError(t, err)
			gt.Equal(t, kind, tc.expected)
			gt.Equal(t, ok, tc.ok)
			gt.Equal(t, strings.Count(out.String(), shell.InvalidChoice), tc.invalid)
			gt.S(t, out.String()).Contains(shell.MenuHeader)
			gt.S(t, out.String()).Contains("1. Team Size Over Time by Role")
			gt.S(t, out.String()).Contains("3. Staff Timeline")
		})
	}
}

func TestSelectCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, _ := newShell("1\n")
	_, _, err := s.Select(ctx)
	gt.Error(t, err)
}

func TestAskDPI(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid on first try", func(t *testing.T) {
		s, out := newShell("300\n")
		dpi, err := s.AskDPI(ctx)
		gt.NoError(t, err)
		gt.Equal(t, dpi, 300)
		gt.Equal(t, strings.Count(out.String(), shell.DPIPrompt), 1)
		gt.Equal(t, strings.Count(out.String(), shell.InvalidDPI), 0)
	})

	t.Run("Non-numeric answer re-prompts exactly once", func(t *testing.T) {
		s, out := newShell("abc\n300\n")
		dpi, err := s.AskDPI(ctx)
		gt.NoError(t, err)
		gt.Equal(t, dpi, 300)
		gt.Equal(t, strings.Count(out.String(), shell.DPIPrompt), 2)
		gt.Equal(t, strings.Count(out.String(), shell.InvalidDPI), 1)
	})

	t.Run("Zero, negative and fractional answers are rejected", func(t *testing.T) {
		s, out := newShell("0\n-5\n1.5\n72\n")
		dpi, err := s.AskDPI(ctx)
		gt.NoError(t, err)
		gt.Equal(t, dpi, 72)
		gt.Equal(t, strings.Count(out.String(), shell.InvalidDPI), 3)
	})

	t.Run("End of input", func(t *testing.T) {
		s, _ := newShell("abc\n")
		_, err := s.AskDPI(ctx)
		gt.Error(t, err)
	})
}

func TestAskFilename(t *testing.T) {
	s, out := newShell("  staff timeline.png  \r\n")
	name, err := s.AskFilename(context.Background())
	gt.NoError(t, err)
	gt.Equal(t, name, "staff timeline.png")
	gt.S(t, out.String()).Contains("File name: ")

	s, _ = newShell("")
	_, err = s.AskFilename(context.Background())
	gt.Error(t, err)
}

func TestNotify(t *testing.T) {
	s, out := newShell("")
	s.Notify(context.Background(), "Download complete.")
	gt.Equal(t, out.String(), "Download complete.\n")
}

func TestAskYesNo(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		input    string
		expected bool
		retries  int
	}{
		{"Yes", "y\n", true, 0},
		{"No", "n\n", false, 0},
		{"Retries until valid", "yes\nY\n\nn\n", false, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, out := newShell(tc.input)
			answer, err := s.AskYesNo(ctx, usecase.DurationsQuestion)
			gt.NoError(t, err)
			gt.Equal(t, answer, tc.expected)
			gt.Equal(t, strings.Count(out.String(), usecase.DurationsQuestion), 1)
			gt.Equal(t, strings.Count(out.String(), shell.YesNoRetry), tc.retries)
		})
	}

	t.Run("End of input", func(t *testing.T) {
		s, _ := newShell("maybe\n")
		_, err := s.AskYesNo(ctx, usecase.DurationsQuestion)
		gt.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("Dispatches the selected chart", func(t *testing.T) {
		uc := &mockChartUseCase{result: &usecase.ChartResult{Path: "out.png"}}
		s, out := newShell("x\n3\n")
		gt.NoError(t, s.Run(ctx, uc))
		gt.Equal(t, uc.kinds, []types.ChartKind{types.ChartTimeline})
		gt.S(t, out.String()).Contains("Staff Timeline saved to 'out.png'")
		gt.Equal(t, strings.Count(out.String(), shell.InvalidChoice), 1)
	})

	t.Run("Exit runs nothing", func(t *testing.T) {
		uc := &mockChartUseCase{}
		s, _ := newShell("exit\n")
		gt.NoError(t, s.Run(ctx, uc))
		gt.A(t, uc.kinds).Length(0)
	})

	t.Run("Pipeline error is returned", func(t *testing.T) {
		uc := &mockChartUseCase{err: errors.New("the request timed out")}
		s, _ := newShell("1\n")
		gt.Error(t, s.Run(ctx, uc))
	})
}

func TestRunEndToEnd(t *testing.T) {
	body := "Date,alice,bob\n2021-01-01,Admin,\n2021-02-01,Admin,Helper\n2021-03-01,Moderator,Helper\n"
	path := filepath.Join(t.TempDir(), "timeline")
	input := "3\n" + "maybe\ny\n" + path + "\n" + "abc\n5\n"

	s, out := newShell(input)
	uc := usecase.NewChart(repository.NewMemory([]byte(body)), s,
		usecase.WithClock(func() time.Time { return time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC) }))

	gt.NoError(t, s.Run(context.Background(), uc))
	gt.S(t, out.String()).Contains(usecase.DurationsQuestion)
	gt.Equal(t, strings.Count(out.String(), shell.YesNoRetry), 1)
	gt.Equal(t, strings.Count(out.String(), shell.InvalidDPI), 1)
	gt.S(t, out.String()).Contains("Downloading data from memory...")
	gt.S(t, out.String()).Contains(usecase.ProcessedNotice)
	gt.S(t, out.String()).Contains("saved to '" + path + ".png'")
}
