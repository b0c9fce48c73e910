package workbook_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/model"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/types"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/service/aggregate"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/service/workbook"
	"github.com/m-mizutani/gt"
	"github.com/xuri/excelize/v2"
)

func roster(t *testing.T) *model.Roster {
	t.Helper()
	d0 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	r, err := model.NewRoster(
		[]types.MemberName{"alice", "bob"},
		[]time.Time{d0, d0.AddDate(0, 0, 1), d0.AddDate(0, 0, 2)},
		[][]types.Role{
			{types.RoleAdmin, types.RoleNone},
			{types.RoleAdmin, types.RoleHelper},
			{types.RoleAdmin, types.RoleHelper},
		},
	)
	gt.NoError(t, err).Required()
	return r
}

func open(t *testing.T, path string) *excelize.File {
	t.Helper()
	f, err := excelize.OpenFile(path)
	gt.NoError(t, err).Required()
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestExportRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")
	gt.NoError(t, workbook.Export(path, roster(t), workbook.ChartData{})).Required()

	f := open(t, path)
	gt.Equal(t, f.GetSheetList(), []string{workbook.SheetRoster})

	rows, err := f.GetRows(workbook.SheetRoster)
	gt.NoError(t, err).Required()
	gt.A(t, rows).Length(4)
	gt.Equal(t, rows[0], []string{"Date", "alice", "bob"})
	gt.Equal(t, rows[1], []string{"2020-01-01", "Admin"})
	gt.Equal(t, rows[3], []string{"2020-01-03", "Admin", "Helper"})
}

func TestExportTeamSize(t *testing.T) {
	r := roster(t)
	path := filepath.Join(t.TempDir(), "team.xlsx")
	gt.NoError(t, workbook.Export(path, r, workbook.ChartData{
		TeamSize: aggregate.TeamSize(r, model.MatchExact),
	})).Required()

	f := open(t, path)
	rows, err := f.GetRows(workbook.SheetTeamSize)
	gt.NoError(t, err).Required()
	gt.A(t, rows).Length(4)
	gt.Equal(t, rows[0], []string{"Date", "Admin", "Moderator", "Curator", "Helper", "Total"})
	gt.Equal(t, rows[1], []string{"2020-01-01", "1", "0", "0", "0", "1"})
	gt.Equal(t, rows[2], []string{"2020-01-02", "1", "0", "0", "1", "2"})
}

func TestExportTenure(t *testing.T) {
	r := roster(t)
	tn := aggregate.Tenure(r)
	path := filepath.Join(t.TempDir(), "tenure.xlsx")
	gt.NoError(t, workbook.Export(path, r, workbook.ChartData{
		Tenure:       tn,
		Distribution: aggregate.TenureDistribution(tn),
	})).Required()

	f := open(t, path)
	rows, err := f.GetRows(workbook.SheetTenure)
	gt.NoError(t, err).Required()
	gt.A(t, rows).Length(3)
	gt.Equal(t, rows[1][0], "alice")
	gt.Equal(t, rows[1][len(rows[1])-1], "3")
	gt.Equal(t, rows[2][0], "bob")
	gt.Equal(t, rows[2][len(rows[2])-1], "2")

	dist, err := f.GetRows(workbook.SheetDistribution)
	gt.NoError(t, err).Required()
	gt.Equal(t, dist[0], []string{"Admin", "Moderator", "Curator", "Helper"})
	gt.Equal(t, dist[1], []string{"3", "", "", "2"})
}

func TestExportTimeline(t *testing.T) {
	r := roster(t)
	path := filepath.Join(t.TempDir(), "timeline.xlsx")
	gt.NoError(t, workbook.Export(path, r, workbook.ChartData{
		Timeline: aggregate.Timeline(r, model.DefaultChartSettings()),
	})).Required()

	f := open(t, path)
	rows, err := f.GetRows(workbook.SheetTimeline)
	gt.NoError(t, err).Required()
	gt.A(t, rows).Length(3)
	gt.Equal(t, rows[0], []string{"Member", "Role", "Start", "End", "Days", "New Member"})
	gt.Equal(t, rows[1][:5], []string{"alice", "Admin", "2020-01-01", "2020-01-03", "2"})
	gt.Equal(t, rows[2][:5], []string{"bob", "Helper", "2020-01-02", "2020-01-03", "1"})
}

func TestExportInvalidPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "data.xlsx")
	gt.Error(t, workbook.Export(path, roster(t), workbook.ChartData{}))
}
