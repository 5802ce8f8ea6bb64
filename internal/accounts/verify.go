package accounts

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cleared-dev/statements/internal/model"
)

// CodeCounts returns how many times each account code appears in chart.
// A well-formed chart maps every code to 1.
func CodeCounts(chart []model.Account) map[string]int {
	counts := make(map[string]int, len(chart))
	for _, a := range chart {
		counts[a.Code]++
	}
	return counts
}

// DuplicateCodes returns the codes that appear more than once, sorted.
func DuplicateCodes(chart []model.Account) []string {
	var dups []string
	for code, n := range CodeCounts(chart) {
		if n > 1 {
			dups = append(dups, code)
		}
	}
	sort.Strings(dups)
	return dups
}

// VerifyUniqueCodes returns an error naming every duplicated account code.
func VerifyUniqueCodes(chart []model.Account) error {
	dups := DuplicateCodes(chart)
	if len(dups) == 0 {
		return nil
	}
	return fmt.Errorf("duplicate account codes: %s", strings.Join(dups, ", "))
}

// OrphanedParents returns the codes of accounts whose parent code is not in
// chart, sorted.
func OrphanedParents(chart []model.Account) []string {
	counts := CodeCounts(chart)
	var orphans []string
	for _, a := range chart {
		if a.ParentCode != "" && counts[a.ParentCode] == 0 {
			orphans = append(orphans, a.Code)
		}
	}
	sort.Strings(orphans)
	return orphans
}

// Verify checks chart for duplicate codes and dangling parent codes.
func Verify(chart []model.Account) error {
	var errs []error
	if err := VerifyUniqueCodes(chart); err != nil {
		errs = append(errs, err)
	}
	if orphans := OrphanedParents(chart); len(orphans) > 0 {
		errs = append(errs, fmt.Errorf("accounts with unknown parent: %s", strings.Join(orphans, ", ")))
	}
	return errors.Join(errs...)
}
