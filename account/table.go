package account

import "github.com/finvolt/txreplay/types"

// Table maps client ids to their accounts.
//
// Accounts are created lazily with zero state the first time a client id is
// referenced by any transaction and are never deleted. A Table is exclusively
// owned by one worker for the duration of a run and is not safe for
// concurrent use.
type Table struct {
	accounts map[types.ClientID]*Account
}

// NewTable returns an empty account table.
func NewTable() *Table {
	return &Table{accounts: make(map[types.ClientID]*Account)}
}

// Apply routes the transaction to its owning account, creating the account
// on first reference.
//
// Parameters:
//   - tx: Transaction to apply
//
// Returns:
//   - *types.Diagnostic: Diagnostic from the account transition, nil when silent
func (t *Table) Apply(tx types.Transaction) *types.Diagnostic {
	acct, ok := t.accounts[tx.Client]
	if !ok {
		acct = New()
		t.accounts[tx.Client] = acct
	}

	return acct.Apply(tx)
}

// Len returns the number of accounts in the table.
func (t *Table) Len() int {
	return len(t.accounts)
}

// Account returns the account for a client, or nil if the client has never
// been referenced.
func (t *Table) Account(client types.ClientID) *Account {
	return t.accounts[client]
}

// Outputs projects every account into its terminal summary.
//
// The order of the returned slice is unspecified; callers that need a stable
// order must sort by client id themselves.
//
// Returns:
//   - []types.Output: One projection per account
func (t *Table) Outputs() []types.Output {
	outputs := make([]types.Output, 0, len(t.accounts))
	for client, acct := range t.accounts {
		outputs = append(outputs, acct.Output(client))
	}

	return outputs
}
