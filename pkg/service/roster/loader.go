package roster

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/model"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// dateLayouts are tried in order for the index column
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateTime,
	"2006/01/02",
	"1/2/2006",
	"1/2/2006 15:04:05",
	"2 January 2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ParseDate converts an index cell to a UTC date
func ParseDate(raw string) (time.Time, error) {
	v := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, goerr.New("unparseable date",
		goerr.V("value", raw),
		goerr.T(model.ErrTagParse))
}

// Parse reads roster CSV: first column is the date index, the header row names
// the members and cells hold role labels. Blank lines are skipped, missing and
// blank cells are empty roles, and an unparseable date fails the whole load.
func Parse(r io.Reader) (*model.Roster, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, goerr.Wrap(model.ErrNoMembers, "empty roster CSV", goerr.T(model.ErrTagParse))
		}
		return nil, goerr.Wrap(err, "failed to read CSV header", goerr.T(model.ErrTagParse))
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var (
		dates []time.Time
		cells [][]types.Role
	)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read CSV record",
				goerr.V("line", line),
				goerr.T(model.ErrTagParse))
		}
		if isBlank(record) {
			continue
		}

		date, err := ParseDate(record[0])
		if err != nil {
			return nil, goerr.Wrap(err, "invalid roster row", goerr.V("line", line))
		}

		width := len(header) - 1
		if width < 0 {
			width = 0
		}
		roles := make([]types.Role, width)
		for i := 1; i < len(record) && i <= width; i++ {
			roles[i-1] = types.ParseRole(record[i])
		}
		dates = append(dates, date)
		cells = append(cells, roles)
	}

	members, keep := memberColumns(header, cells)
	if len(members) == 0 {
		return nil, goerr.Wrap(model.ErrNoMembers, "no member columns in CSV header", goerr.T(model.ErrTagParse))
	}
	for i, row := range cells {
		kept := make([]types.Role, 0, len(keep))
		for _, col := range keep {
			kept = append(kept, row[col])
		}
		cells[i] = kept
	}

	roster, err := model.NewRoster(members, dates, cells)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build roster", goerr.T(model.ErrTagParse))
	}
	return roster, nil
}

// ParseBytes is Parse over an in-memory body
func ParseBytes(body []byte) (*model.Roster, error) {
	return Parse(bytes.NewReader(body))
}

// memberColumns names the member columns. Blank headers become "Unnamed: N"
// unless the whole column is empty, in which case it is dropped; duplicate names
// get a ".N" suffix.
func memberColumns(header []string, cells [][]types.Role) ([]types.MemberName, []int) {
	var (
		members []types.MemberName
		keep    []int
		seen    = make(map[types.MemberName]int)
	)
	for col := 0; col+1 < len(header); col++ {
		name := strings.TrimSpace(header[col+1])
		if name == "" {
			if columnEmpty(cells, col) {
				continue
			}
			name = fmt.Sprintf("Unnamed: %d", col+1)
		}

		member := types.MemberName(name)
		if n, dup := seen[member]; dup {
			seen[member] = n + 1
			member = types.MemberName(fmt.Sprintf("%s.%d", name, n+1))
		}
		seen[member] = 0

		members = append(members, member)
		keep = append(keep, col)
	}
	return members, keep
}

func columnEmpty(cells [][]types.Role, col int) bool {
	for _, row := range cells {
		if !row[col].IsEmpty() {
			return false
		}
	}
	return true
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
