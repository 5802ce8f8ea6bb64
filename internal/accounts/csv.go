package accounts

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/cleared-dev/statements/internal/model"
)

const (
	numFields  = 5
	colCode    = 0
	colName    = 1
	colRole    = 2
	colBalance = 3
	colParent  = 4
)

// ReadAccounts reads chart-of-accounts.csv.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes chart-of-accounts.csv.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"account_code", "account_name", "role", "balance_type", "parent_code"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colCode] = acct.Code
	row[colName] = acct.Name
	row[colRole] = string(acct.Role)
	row[colBalance] = string(acct.Balance)
	row[colParent] = acct.ParentCode
	return row
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	if record[colCode] == "" {
		return model.Account{}, errors.New("missing account_code")
	}

	role, err := model.ParseRole(record[colRole])
	if err != nil {
		return model.Account{}, fmt.Errorf("account %s: %w", record[colCode], err)
	}

	balance := model.BalanceType(record[colBalance])
	if balance == "" {
		balance = role.NormalBalance()
	}
	if !balance.Valid() {
		return model.Account{}, fmt.Errorf("account %s: unknown balance_type %q", record[colCode], record[colBalance])
	}

	return model.Account{
		Code:       record[colCode],
		Name:       record[colName],
		Role:       role,
		Balance:    balance,
		ParentCode: record[colParent],
	}, nil
}
