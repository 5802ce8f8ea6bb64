package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cleared-dev/statements/internal/model"
)

// Service reads journal legs from a repository.
type Service struct {
	repoRoot string
	accounts AccountLookup
}

// NewService creates a journal Service.
func NewService(repoRoot string, accounts AccountLookup) *Service {
	return &Service{repoRoot: repoRoot, accounts: accounts}
}

// ReadMonth reads and validates all legs for a given year/month. A month
// with no journal file has no legs.
func (s *Service) ReadMonth(year, month int) ([]model.Leg, error) {
	path := s.monthPath(year, month)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	defer f.Close()

	legs, err := ReadLegs(f)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}

	if verrs := ValidateLegs(legs, s.accounts, year, month); len(verrs) > 0 {
		errs := make([]error, len(verrs))
		for i, ve := range verrs {
			errs[i] = ve
		}
		return nil, fmt.Errorf("validating journal %04d-%02d: %w", year, month, errors.Join(errs...))
	}
	return legs, nil
}

// ReadRange returns the legs dated between from and to, inclusive, across
// every month the range touches.
func (s *Service) ReadRange(from, to time.Time) ([]model.Leg, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("range end %s before start %s", to.Format(dateFormat), from.Format(dateFormat))
	}

	first := startOfDay(from)
	last := startOfDay(to)

	var out []model.Leg
	cur := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cur.After(last) {
		legs, err := s.ReadMonth(cur.Year(), int(cur.Month()))
		if err != nil {
			return nil, err
		}
		for _, leg := range legs {
			d := startOfDay(leg.Date)
			if d.Before(first) || d.After(last) {
				continue
			}
			out = append(out, leg)
		}
		cur = cur.AddDate(0, 1, 0)
	}
	return out, nil
}

// WriteMonth replaces the journal file for a month. It exists for fixtures
// and imports; the statement commands never write journals.
func (s *Service) WriteMonth(year, month int, legs []model.Leg) error {
	path := s.monthPath(year, month)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating journal dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating journal: %w", err)
	}
	defer f.Close()

	if err := WriteLegs(f, legs); err != nil {
		return fmt.Errorf("writing journal %s: %w", path, err)
	}
	return nil
}

func (s *Service) monthPath(year, month int) string {
	return filepath.Join(s.repoRoot, "journal", fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month), "journal.csv")
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
