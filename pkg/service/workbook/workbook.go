// Package workbook exports the roster and the aggregated chart data to an
// xlsx file next to the rendered image.
package workbook

import (
	"time"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/xuri/excelize/v2"
)

// Sheet names
const (
	SheetRoster       = "Roster"
	SheetTeamSize     = "TeamSize"
	SheetTenure       = "Tenure"
	SheetDistribution = "TenureDistribution"
	SheetTimeline     = "Timeline"
)

const dateLayout = time.DateOnly

type Workbook struct {
	f *excelize.File
}

// New creates a workbook whose first sheet is the roster
func New(r *model.Roster) (*Workbook, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetRoster); err != nil {
		_ = f.Close()
		return nil, goerr.Wrap(err, "failed to rename sheet")
	}
	wb := &Workbook{f: f}

	header := []any{"Date"}
	for _, m := range r.Members() {
		header = append(header, m.String())
	}
	rows := [][]any{header}
	for i := 0; i < r.Len(); i++ {
		row := []any{r.Date(i).Format(dateLayout)}
		for _, cell := range r.Row(i) {
			row = append(row, cell.String())
		}
		rows = append(rows, row)
	}
	if err := wb.write(SheetRoster, rows); err != nil {
		_ = f.Close()
		return nil, err
	}
	return wb, nil
}

// AddTeamSize writes one row per date with a column per role and the total
func (wb *Workbook) AddTeamSize(ts *model.TeamSize) error {
	header := []any{"Date"}
	for _, role := range ts.Roles {
		header = append(header, role.String())
	}
	header = append(header, "Total")

	rows := [][]any{header}
	for i, d := range ts.Dates {
		row := []any{d.Format(dateLayout)}
		for _, role := range ts.Roles {
			row = append(row, ts.Series(role)[i])
		}
		row = append(row, ts.Total[i])
		rows = append(rows, row)
	}
	return wb.addSheet(SheetTeamSize, rows)
}

// AddTenure writes the ranked per-member row counts
func (wb *Workbook) AddTenure(tn *model.Tenure) error {
	header := []any{"Member"}
	for _, role := range tn.Roles {
		header = append(header, role.String())
	}
	header = append(header, "Total")

	rows := [][]any{header}
	for _, r := range tn.Rows {
		row := []any{r.Member.String()}
		for _, role := range tn.Roles {
			row = append(row, r.Count(role))
		}
		row = append(row, r.Total)
		rows = append(rows, row)
	}
	return wb.addSheet(SheetTenure, rows)
}

// AddTenureDistribution writes one column per role with the member counts
func (wb *Workbook) AddTenureDistribution(dist *model.TenureDistribution) error {
	header := make([]any, len(dist.Roles))
	longest := 0
	for i, role := range dist.Roles {
		header[i] = role.String()
		longest = max(longest, len(dist.Values[role]))
	}

	rows := [][]any{header}
	for i := 0; i < longest; i++ {
		row := make([]any, len(dist.Roles))
		for j, role := range dist.Roles {
			if values := dist.Values[role]; i < len(values) {
				row[j] = values[i]
			}
		}
		rows = append(rows, row)
	}
	return wb.addSheet(SheetDistribution, rows)
}

// AddTimeline writes every visible interval
func (wb *Workbook) AddTimeline(tl *model.Timeline) error {
	rows := [][]any{{"Member", "Role", "Start", "End", "Days", "New Member"}}
	for _, iv := range tl.Intervals {
		rows = append(rows, []any{
			iv.Member.String(),
			iv.Role.String(),
			iv.Start.Format(dateLayout),
			iv.End.Format(dateLayout),
			iv.Days(),
			iv.NewMember,
		})
	}
	return wb.addSheet(SheetTimeline, rows)
}

// SaveAs writes the workbook to path
func (wb *Workbook) SaveAs(path string) error {
	if err := wb.f.SaveAs(path); err != nil {
		return goerr.Wrap(err, "failed to save workbook", goerr.V("path", path))
	}
	return nil
}

func (wb *Workbook) Close() error {
	if err := wb.f.Close(); err != nil {
		return goerr.Wrap(err, "failed to close workbook")
	}
	return nil
}

func (wb *Workbook) addSheet(name string, rows [][]any) error {
	if _, err := wb.f.NewSheet(name); err != nil {
		return goerr.Wrap(err, "failed to add sheet", goerr.V("sheet", name))
	}
	return wb.write(name, rows)
}

func (wb *Workbook) write(sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return goerr.Wrap(err, "invalid cell", goerr.V("row", i+1))
		}
		if err := wb.f.SetSheetRow(sheet, cell, &row); err != nil {
			return goerr.Wrap(err, "failed to write row", goerr.V("sheet", sheet), goerr.V("row", i+1))
		}
	}
	return nil
}

// ChartData selects the aggregate to export alongside the roster
type ChartData struct {
	TeamSize     *model.TeamSize
	Tenure       *model.Tenure
	Distribution *model.TenureDistribution
	Timeline     *model.Timeline
}

// Export writes the roster and whichever aggregates are set in data to path
func Export(path string, r *model.Roster, data ChartData) error {
	wb, err := New(r)
	if err != nil {
		return err
	}
	defer func() { _ = wb.Close() }()

	if data.TeamSize != nil {
		if err := wb.AddTeamSize(data.TeamSize); err != nil {
			return err
		}
	}
	if data.Tenure != nil {
		if err := wb.AddTenure(data.Tenure); err != nil {
			return err
		}
	}
	if data.Distribution != nil {
		if err := wb.AddTenureDistribution(data.Distribution); err != nil {
			return err
		}
	}
	if data.Timeline != nil {
		if err := wb.AddTimeline(data.Timeline); err != nil {
			return err
		}
	}
	return wb.SaveAs(path)
}
