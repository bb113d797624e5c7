package account

import "github.com/finvolt/txreplay/types"

// depositStatus tracks where a deposit sits in the dispute workflow.
type depositStatus uint8

const (
	statusNormal depositStatus = iota
	statusDisputed
	statusChargedBack
)

// depositRecord aggregates the information of a single deposit.
//
// Only deposits create records; withdrawals are never recorded and therefore
// can never be disputed.
type depositRecord struct {
	amount float64
	status depositStatus
}

// Account is the mutable state of a single client.
//
// The zero value is not usable; create accounts with New. The invariant
// total = available + held is derivable at all times and never stored.
// Neither available nor held is forced to stay non-negative: disputing a
// deposit whose funds were already withdrawn legitimately drives available
// below zero.
type Account struct {
	deposits  map[types.TransactionID]*depositRecord
	available float64
	held      float64
	locked    bool
}

// New returns an empty, unlocked account with zero balances.
func New() *Account {
	return &Account{deposits: make(map[types.TransactionID]*depositRecord)}
}

// Apply transitions the account by one transaction.
//
// If the account is locked the call is a complete no-op, including for
// deposits, and emits no diagnostic. Otherwise the transition rules are:
//
//   - Deposit: insert or overwrite the deposit record and credit available.
//     Always succeeds.
//   - Withdrawal: reject with DiagInsufficientFunds when the amount exceeds
//     the available balance, otherwise debit available.
//   - Dispute: requires a deposit record in the normal state; moves the
//     deposited amount from available to held. No floor check is applied.
//   - Resolve: requires a disputed deposit; moves the amount back from held
//     to available.
//   - Chargeback: requires a disputed deposit; removes the amount from held,
//     marks the deposit charged back and locks the account, reporting
//     DiagAccountLocked.
//
// Parameters:
//   - tx: Transaction to apply
//
// Returns:
//   - *types.Diagnostic: Advisory event describing a rejection or the
//     account lock, nil when the transaction applied silently
func (a *Account) Apply(tx types.Transaction) *types.Diagnostic {
	if a.locked {
		return nil
	}

	switch tx.Kind {
	case types.KindDeposit:
		a.deposits[tx.Tx] = &depositRecord{amount: tx.Amount}
		a.available += tx.Amount

		return nil

	case types.KindWithdrawal:
		if a.available-tx.Amount < 0 {
			return &types.Diagnostic{
				Code:      types.DiagInsufficientFunds,
				Client:    tx.Client,
				Tx:        tx.Tx,
				Amount:    tx.Amount,
				Available: a.available,
			}
		}
		a.available -= tx.Amount

		return nil

	case types.KindDispute:
		dep, ok := a.deposits[tx.Tx]
		if !ok {
			return &types.Diagnostic{Code: types.DiagNoSuchDeposit, Client: tx.Client, Tx: tx.Tx}
		}
		if dep.status != statusNormal {
			return &types.Diagnostic{Code: types.DiagAlreadyDisputed, Client: tx.Client, Tx: tx.Tx}
		}
		dep.status = statusDisputed
		a.available -= dep.amount
		a.held += dep.amount

		return nil

	case types.KindResolve:
		dep, ok := a.deposits[tx.Tx]
		if !ok {
			return &types.Diagnostic{Code: types.DiagNoSuchDeposit, Client: tx.Client, Tx: tx.Tx}
		}
		if dep.status != statusDisputed {
			return &types.Diagnostic{Code: types.DiagNotDisputed, Client: tx.Client, Tx: tx.Tx}
		}
		dep.status = statusNormal
		a.available += dep.amount
		a.held -= dep.amount

		return nil

	case types.KindChargeback:
		dep, ok := a.deposits[tx.Tx]
		if !ok {
			return &types.Diagnostic{Code: types.DiagNoSuchDeposit, Client: tx.Client, Tx: tx.Tx}
		}
		if dep.status != statusDisputed {
			return &types.Diagnostic{Code: types.DiagNotDisputed, Client: tx.Client, Tx: tx.Tx}
		}
		dep.status = statusChargedBack
		a.held -= dep.amount
		a.locked = true

		return &types.Diagnostic{Code: types.DiagAccountLocked, Client: tx.Client, Tx: tx.Tx}
	}

	// Unknown kinds are dropped silently; the parser only produces the five
	// variants above.
	return nil
}

// Available returns the withdrawable balance.
func (a *Account) Available() float64 { return a.available }

// Held returns the balance frozen by active disputes.
func (a *Account) Held() float64 { return a.held }

// Locked reports whether a chargeback has frozen the account.
func (a *Account) Locked() bool { return a.locked }

// Output projects the account into its terminal read-only summary.
//
// Parameters:
//   - client: Client id to stamp on the projection
//
// Returns:
//   - types.Output: Balance summary with Total computed as Available+Held
func (a *Account) Output(client types.ClientID) types.Output {
	return types.Output{
		Client:    client,
		Available: a.available,
		Held:      a.held,
		Total:     a.available + a.held,
		Locked:    a.locked,
	}
}
