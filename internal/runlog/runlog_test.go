package runlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/statements/internal/model"
)

var testTime = time.Date(2025, 2, 3, 9, 15, 0, 0, time.UTC)

func testEntry() Entry {
	return Entry{
		RunID:     uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad2"),
		Timestamp: testTime,
		Command:   "cashflow",
		From:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:        time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		Operating: decimal.RequireFromString("500"),
		Financing: decimal.RequireFromString("900"),
		Investing: decimal.RequireFromString("-400"),
		NetCash:   decimal.RequireFromString("1000"),
	}
}

func assertEntryEqual(t *testing.T, want, got Entry) {
	t.Helper()
	assert.Equal(t, want.RunID, got.RunID)
	assert.True(t, want.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, want.Command, got.Command)
	assert.True(t, want.From.Equal(got.From))
	assert.True(t, want.To.Equal(got.To))
	assert.True(t, want.Operating.Equal(got.Operating))
	assert.True(t, want.Financing.Equal(got.Financing))
	assert.True(t, want.Investing.Equal(got.Investing))
	assert.True(t, want.NetCash.Equal(got.NetCash))
}

func TestAppend_NewFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assertEntryEqual(t, testEntry(), entries[0])
}

func TestAppend_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	e2 := testEntry()
	e2.RunID = uuid.New()
	e2.Command = "digest"
	require.NoError(t, Append(dir, []Entry{e2}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "cashflow", entries[0].Command)
	assert.Equal(t, "digest", entries[1].Command)

	data, err := os.ReadFile(filepath.Join(dir, "logs", "statement-log.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header), "header written once")
}

func TestRead_NotFound(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestRead_HeaderOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "logs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logs", "statement-log.csv"), []byte(Header+"\n"), 0o644))

	entries, err := Read(dir)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestMarshalEntry(t *testing.T) {
	row := MarshalEntry(testEntry())
	require.Len(t, row, 9)
	assert.Equal(t, "2025-02-03T09:15:00Z", row[colTimestamp])
	assert.Equal(t, "2025-01-01", row[colFrom])
	assert.Equal(t, "-400.00", row[colInvesting])
	assert.Equal(t, "1000.00", row[colNetCash])
}

func TestUnmarshalEntry_Errors(t *testing.T) {
	_, err := UnmarshalEntry([]string{"one", "two"})
	assert.ErrorContains(t, err, "expected 9 fields")

	row := MarshalEntry(testEntry())
	row[colRunID] = "not-a-uuid"
	_, err = UnmarshalEntry(row)
	assert.ErrorContains(t, err, "run_id")

	row = MarshalEntry(testEntry())
	row[colNetCash] = "lots"
	_, err = UnmarshalEntry(row)
	assert.ErrorContains(t, err, "net_cash")
}

func TestNewEntry(t *testing.T) {
	stmt := model.NewCashFlowStatement(
		model.Section{model.GroupNetIncome: {Balance: decimal.RequireFromString("75")}},
		model.Section{model.GroupFinDividends: {Balance: decimal.RequireFromString("-25")}},
		model.Section{},
	)
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	e := NewEntry("cashflow", from, to, stmt)
	assert.NotEqual(t, uuid.Nil, e.RunID)
	assert.Equal(t, "cashflow", e.Command)
	assert.True(t, e.Operating.Equal(decimal.RequireFromString("75")))
	assert.True(t, e.Financing.Equal(decimal.RequireFromString("-25")))
	assert.True(t, e.Investing.IsZero())
	assert.True(t, e.NetCash.Equal(decimal.RequireFromString("50")))
	assert.NotEqual(t, e.RunID, NewEntry("cashflow", from, to, stmt).RunID)
}
