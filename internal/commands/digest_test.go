package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/statements/internal/cashflow"
	"github.com/cleared-dev/statements/internal/model"
)

const digestJSON = `{
  "accounts": [
    {"code": "1010", "role": "asset_ca_cash", "balance": "150", "activity": "fin_equity"},
    {"code": "1010", "role": "asset_ca_cash", "balance": "-50", "activity": "fin_dividends"},
    {"code": "1010", "role": "asset_ca_cash", "balance": "-20", "activity": "inv_ppe"},
    {"code": "4010", "role": "in_operational", "balance": "1000", "activity": ""}
  ],
  "group_balances": {
    "GROUP_CFS_NET_INCOME": "1000",
    "GROUP_CFS_OP_DEPRECIATION_AMORTIZATION": "-10",
    "GROUP_CFS_OP_INVESTMENT_GAINS": "0",
    "GROUP_CFS_OP_ACCOUNTS_RECEIVABLE": "40",
    "GROUP_CFS_OP_INVENTORY": "0",
    "GROUP_CFS_OP_ACCOUNTS_PAYABLE": "30",
    "GROUP_CFS_OP_OTHER_CURRENT_ASSETS_ADJUSTMENT": "0",
    "GROUP_CFS_OP_OTHER_CURRENT_LIABILITIES_ADJUSTMENT": "0"
  }
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDigest_JSON(t *testing.T) {
	path := writeTemp(t, "digest.json", digestJSON)

	out, err := run(t, "digest", path)
	require.NoError(t, err)

	d := decodeDigest(t, out)
	stmt := d.CashFlowStatement
	assertDec(t, "1000", stmt.NetCashByActivity[model.CategoryOperating])
	assertDec(t, "100", stmt.NetCashByActivity[model.CategoryFinancing])
	assertDec(t, "-20", stmt.NetCashByActivity[model.CategoryInvesting])
	assertDec(t, "1080", stmt.NetCash)
	assert.Len(t, d.Accounts, 4)
}

func TestDigest_YAMLInput(t *testing.T) {
	src, err := readDigest(writeTemp(t, "digest.json", digestJSON))
	require.NoError(t, err)
	data, err := yaml.Marshal(src)
	require.NoError(t, err)

	out, err := run(t, "digest", writeTemp(t, "digest.yaml", string(data)))
	require.NoError(t, err)

	var d model.Digest
	require.NoError(t, yaml.Unmarshal([]byte(out), &d))
	require.NotNil(t, d.CashFlowStatement)
	assertDec(t, "1080", d.CashFlowStatement.NetCash)
}

func TestDigest_OutputOverride(t *testing.T) {
	out, err := run(t, "digest", writeTemp(t, "digest.json", digestJSON), "--output", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "net_cash:")
}

func TestDigest_MissingGrouping(t *testing.T) {
	path := writeTemp(t, "digest.json", `{"accounts": []}`)

	_, err := run(t, "digest", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, cashflow.MissingGroupingError{})
}

func TestDigest_UnknownExtension(t *testing.T) {
	_, err := run(t, "digest", writeTemp(t, "digest.txt", digestJSON))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".json")
}
