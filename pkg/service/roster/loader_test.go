package roster_test

import (
	"strings"
	"testing"
	"time"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/model"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/types"
	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/service/roster"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse(t *testing.T) {
	t.Run("basic roster", func(t *testing.T) {
		csv := "Date,alice,bob\n" +
			"2020-01-02,Helper,Admin\n" +
			"2020-01-01,Helper,\n" +
			"2020-01-03,,Retired/Removed\n"
		r, err := roster.Parse(strings.NewReader(csv))
		gt.NoError(t, err).Required()

		gt.Equal(t, r.Members(), []types.MemberName{"alice", "bob"})
		gt.Equal(t, r.Dates(), []time.Time{day(2020, 1, 1), day(2020, 1, 2), day(2020, 1, 3)})
		gt.Equal(t, r.Column(0), []types.Role{types.RoleHelper, types.RoleHelper, types.RoleNone})
		gt.Equal(t, r.Column(1), []types.Role{types.RoleNone, types.RoleAdmin, types.RoleRetired})
	})

	t.Run("short rows, blank lines and BOM", func(t *testing.T) {
		csv := "\ufeffDate,alice,bob,carol\n" +
			"2020-01-01,Helper\n" +
			"\n" +
			",,,\n" +
			"2020-01-02,Helper,Curator,Moderator,extra\n"
		r, err := roster.Parse(strings.NewReader(csv))
		gt.NoError(t, err).Required()
		gt.Equal(t, r.Len(), 2)
		gt.Equal(t, r.Column(2), []types.Role{types.RoleNone, types.RoleModerator})
	})

	t.Run("blank and duplicate headers", func(t *testing.T) {
		csv := "Date,alice,,alice,\n" +
			"2020-01-01,Helper,Admin,Curator,\n"
		r, err := roster.Parse(strings.NewReader(csv))
		gt.NoError(t, err).Required()
		gt.Equal(t, r.Members(), []types.MemberName{"alice", "Unnamed: 2", "alice.1"})
		gt.Equal(t, r.Row(0), []types.Role{types.RoleHelper, types.RoleAdmin, types.RoleCurator})
	})

	t.Run("alternative date formats", func(t *testing.T) {
		csv := "Date,alice\n" +
			"1/5/2020,Helper\n" +
			"2020/01/06,Helper\n" +
			"2020-01-07T00:00:00Z,Helper\n"
		r, err := roster.Parse(strings.NewReader(csv))
		gt.NoError(t, err).Required()
		gt.Equal(t, r.Dates(), []time.Time{day(2020, 1, 5), day(2020, 1, 6), day(2020, 1, 7)})
	})

	t.Run("unparseable date is fatal", func(t *testing.T) {
		csv := "Date,alice\n2020-01-01,Helper\nyesterday,Helper\n"
		_, err := roster.Parse(strings.NewReader(csv))
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagParse)).True()
		gt.S(t, err.Error()).Contains("invalid roster row")
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := roster.Parse(strings.NewReader(""))
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagParse)).True()
	})

	t.Run("header without members", func(t *testing.T) {
		_, err := roster.ParseBytes([]byte("Date\n2020-01-01\n"))
		gt.Error(t, err)
	})

	t.Run("header only", func(t *testing.T) {
		r, err := roster.ParseBytes([]byte("Date,alice\n"))
		gt.NoError(t, err).Required()
		gt.True(t, r.IsEmpty())
	})
}

func TestParseDate(t *testing.T) {
	d, err := roster.ParseDate(" 2019-08-25 ")
	gt.NoError(t, err)
	gt.Equal(t, d, day(2019, 8, 25))

	_, err = roster.ParseDate("")
	gt.Error(t, err)
}
