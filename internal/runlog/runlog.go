// Package runlog records statement derivation runs in logs/statement-log.csv.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/statements/internal/model"
)

// Entry is one row in the statement log.
type Entry struct {
	RunID     uuid.UUID
	Timestamp time.Time
	Command   string
	From      time.Time
	To        time.Time
	Operating decimal.Decimal
	Financing decimal.Decimal
	Investing decimal.Decimal
	NetCash   decimal.Decimal
}

// Header is the CSV header for statement-log.csv.
const Header = "run_id,timestamp,command,from,to,operating,financing,investing,net_cash"

// File is the log's path relative to the repository root.
const File = "logs/statement-log.csv"

const (
	numFields    = 9
	logDir       = "logs"
	dateFormat   = "2006-01-02"
	colRunID     = 0
	colTimestamp = 1
	colCommand   = 2
	colFrom      = 3
	colTo        = 4
	colOperating = 5
	colFinancing = 6
	colInvesting = 7
	colNetCash   = 8
)

// NewEntry starts an entry for a run over [from, to] with a fresh run id.
func NewEntry(command string, from, to time.Time, stmt *model.CashFlowStatement) Entry {
	return Entry{
		RunID:     uuid.New(),
		Timestamp: time.Now().UTC(),
		Command:   command,
		From:      from,
		To:        to,
		Operating: stmt.NetCashByActivity[model.CategoryOperating],
		Financing: stmt.NetCashByActivity[model.CategoryFinancing],
		Investing: stmt.NetCashByActivity[model.CategoryInvesting],
		NetCash:   stmt.NetCash,
	}
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colRunID] = e.RunID.String()
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colCommand] = e.Command
	row[colFrom] = e.From.Format(dateFormat)
	row[colTo] = e.To.Format(dateFormat)
	row[colOperating] = e.Operating.StringFixed(2)
	row[colFinancing] = e.Financing.StringFixed(2)
	row[colInvesting] = e.Investing.StringFixed(2)
	row[colNetCash] = e.NetCash.StringFixed(2)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	id, err := uuid.Parse(record[colRunID])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing run_id %q: %w", record[colRunID], err)
	}
	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}
	from, err := time.Parse(dateFormat, record[colFrom])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing from %q: %w", record[colFrom], err)
	}
	to, err := time.Parse(dateFormat, record[colTo])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing to %q: %w", record[colTo], err)
	}

	e := Entry{RunID: id, Timestamp: ts, Command: record[colCommand], From: from, To: to}
	amounts := []struct {
		col  int
		name string
		dst  *decimal.Decimal
	}{
		{colOperating, "operating", &e.Operating},
		{colFinancing, "financing", &e.Financing},
		{colInvesting, "investing", &e.Investing},
		{colNetCash, "net_cash", &e.NetCash},
	}
	for _, a := range amounts {
		v, err := decimal.NewFromString(record[a.col])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing %s %q: %w", a.name, record[a.col], err)
		}
		*a.dst = v
	}
	return e, nil
}

// Append writes entries to <repoRoot>/logs/statement-log.csv, creating the
// file and header if needed.
func Append(repoRoot string, entries []Entry) error {
	dir := filepath.Join(repoRoot, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(repoRoot, File)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening statement log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read returns all entries from <repoRoot>/logs/statement-log.csv.
// Returns nil if the file does not exist.
func Read(repoRoot string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(repoRoot, File))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening statement log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement log CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
