package account

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finvolt/txreplay/types"
)

// requireBalances asserts the externally observable account state and the
// total = available + held invariant.
func requireBalances(t *testing.T, a *Account, available, held float64, locked bool) {
	t.Helper()

	require.Equal(t, available, a.Available(), "available balance mismatch")
	require.Equal(t, held, a.Held(), "held balance mismatch")
	require.Equal(t, locked, a.Locked(), "lock flag mismatch")

	out := a.Output(1)
	require.Equal(t, out.Available+out.Held, out.Total, "total must equal available+held")
}

func TestAccount_Deposit(t *testing.T) {
	a := New()

	d := a.Apply(types.Deposit(1, 1, 3))
	require.Nil(t, d, "deposit must always succeed")
	requireBalances(t, a, 3, 0, false)

	d = a.Apply(types.Deposit(1, 2, 5))
	require.Nil(t, d)
	requireBalances(t, a, 8, 0, false)
}

func TestAccount_Deposit_DuplicateTxOverwrites(t *testing.T) {
	a := New()

	require.Nil(t, a.Apply(types.Deposit(1, 1, 3)))
	require.Nil(t, a.Apply(types.Deposit(1, 1, 5)))
	requireBalances(t, a, 8, 0, false)

	// The record now holds the second amount: disputing tx 1 holds 5, not 3.
	require.Nil(t, a.Apply(types.Dispute(1, 1)))
	requireBalances(t, a, 3, 5, false)
}

func TestAccount_Withdrawal(t *testing.T) {
	a := New()

	// Withdrawing from an empty account is rejected with no state change.
	d := a.Apply(types.Withdrawal(1, 1, 2))
	require.NotNil(t, d)
	require.Equal(t, types.DiagInsufficientFunds, d.Code)
	require.Equal(t, types.ClientID(1), d.Client)
	require.Equal(t, 2.0, d.Amount)
	require.Equal(t, 0.0, d.Available)
	requireBalances(t, a, 0, 0, false)

	// Successful withdrawal.
	require.Nil(t, a.Apply(types.Deposit(1, 2, 3)))
	require.Nil(t, a.Apply(types.Withdrawal(1, 3, 2)))
	requireBalances(t, a, 1, 0, false)

	// Too little funds.
	d = a.Apply(types.Withdrawal(1, 4, 2))
	require.NotNil(t, d)
	require.Equal(t, types.DiagInsufficientFunds, d.Code)
	requireBalances(t, a, 1, 0, false)
}

func TestAccount_Withdrawal_FullBalanceAllowed(t *testing.T) {
	a := New()

	require.Nil(t, a.Apply(types.Deposit(1, 1, 3)))
	require.Nil(t, a.Apply(types.Withdrawal(1, 2, 3)), "withdrawing exactly the available balance must succeed")
	requireBalances(t, a, 0, 0, false)
}

func TestAccount_Dispute(t *testing.T) {
	a := New()

	// Dispute on an empty account.
	d := a.Apply(types.Dispute(1, 1))
	require.NotNil(t, d)
	require.Equal(t, types.DiagNoSuchDeposit, d.Code)
	requireBalances(t, a, 0, 0, false)

	// Dispute a deposit.
	require.Nil(t, a.Apply(types.Deposit(1, 1, 3)))
	require.Nil(t, a.Apply(types.Dispute(1, 1)))
	requireBalances(t, a, 0, 3, false)

	// Dispute an already disputed deposit.
	d = a.Apply(types.Dispute(1, 1))
	require.NotNil(t, d)
	require.Equal(t, types.DiagAlreadyDisputed, d.Code)
	requireBalances(t, a, 0, 3, false)
}

func TestAccount_Dispute_AfterWithdrawalGoesNegative(t *testing.T) {
	a := New()

	require.Nil(t, a.Apply(types.Deposit(1, 2, 5)))
	require.Nil(t, a.Apply(types.Withdrawal(1, 3, 5)))
	require.Nil(t, a.Apply(types.Dispute(1, 2)))

	// The deposited funds were already withdrawn; available legitimately
	// goes negative. This is replay semantics, not an error.
	requireBalances(t, a, -5, 5, false)
}

func TestAccount_Dispute_WithdrawalNotDisputable(t *testing.T) {
	a := New()

	require.Nil(t, a.Apply(types.Deposit(1, 5, 5)))
	require.Nil(t, a.Apply(types.Withdrawal(1, 6, 5)))

	d := a.Apply(types.Dispute(1, 6))
	require.NotNil(t, d, "withdrawals never create deposit records")
	require.Equal(t, types.DiagNoSuchDeposit, d.Code)
	requireBalances(t, a, 0, 0, false)
}

func TestAccount_Resolve(t *testing.T) {
	a := New()

	// Resolve on an empty account.
	d := a.Apply(types.Resolve(1, 1))
	require.NotNil(t, d)
	require.Equal(t, types.DiagNoSuchDeposit, d.Code)

	// Resolve an undisputed deposit.
	require.Nil(t, a.Apply(types.Deposit(1, 1, 3)))
	d = a.Apply(types.Resolve(1, 1))
	require.NotNil(t, d)
	require.Equal(t, types.DiagNotDisputed, d.Code)
	requireBalances(t, a, 3, 0, false)

	// Resolve a dispute: hold released, back to normal.
	require.Nil(t, a.Apply(types.Dispute(1, 1)))
	require.Nil(t, a.Apply(types.Resolve(1, 1)))
	requireBalances(t, a, 3, 0, false)

	// The resolved deposit can be disputed again.
	require.Nil(t, a.Apply(types.Dispute(1, 1)))
	requireBalances(t, a, 0, 3, false)
}

func TestAccount_Chargeback(t *testing.T) {
	a := New()

	// Chargeback on an empty account.
	d := a.Apply(types.Chargeback(1, 1))
	require.NotNil(t, d)
	require.Equal(t, types.DiagNoSuchDeposit, d.Code)

	// Chargeback an undisputed deposit.
	require.Nil(t, a.Apply(types.Deposit(1, 1, 3)))
	d = a.Apply(types.Chargeback(1, 1))
	require.NotNil(t, d)
	require.Equal(t, types.DiagNotDisputed, d.Code)
	requireBalances(t, a, 3, 0, false)

	// Chargeback a disputed deposit: funds reversed, account locked.
	require.Nil(t, a.Apply(types.Dispute(1, 1)))
	d = a.Apply(types.Chargeback(1, 1))
	require.NotNil(t, d)
	require.Equal(t, types.DiagAccountLocked, d.Code)
	requireBalances(t, a, 0, 0, true)
}

func TestAccount_Locked_IsFixedPoint(t *testing.T) {
	a := New()

	require.Nil(t, a.Apply(types.Deposit(1, 1, 3)))
	require.Nil(t, a.Apply(types.Dispute(1, 1)))
	d := a.Apply(types.Chargeback(1, 1))
	require.NotNil(t, d)
	require.Equal(t, types.DiagAccountLocked, d.Code)

	// Every transaction variant is a silent no-op on a locked account,
	// including fresh deposits.
	for _, tx := range []types.Transaction{
		types.Deposit(1, 4, 8),
		types.Withdrawal(1, 5, 8),
		types.Dispute(1, 1),
		types.Resolve(1, 1),
		types.Chargeback(1, 1),
	} {
		require.Nil(t, a.Apply(tx), "locked account must ignore %s", tx.Kind)
		requireBalances(t, a, 0, 0, true)
	}
}

func TestAccount_Chargeback_AfterWithdrawalGoesNegative(t *testing.T) {
	a := New()

	require.Nil(t, a.Apply(types.Deposit(1, 1, 3)))
	require.Nil(t, a.Apply(types.Withdrawal(1, 2, 2)))
	require.Nil(t, a.Apply(types.Dispute(1, 1)))
	d := a.Apply(types.Chargeback(1, 1))
	require.NotNil(t, d)
	require.Equal(t, types.DiagAccountLocked, d.Code)

	requireBalances(t, a, -2, 0, true)
}

func TestAccount_Resolve_ChargedBackDepositRejected(t *testing.T) {
	a := New()

	require.Nil(t, a.Apply(types.Deposit(1, 1, 3)))
	require.Nil(t, a.Apply(types.Dispute(1, 1)))
	require.NotNil(t, a.Apply(types.Chargeback(1, 1)))

	// The lock guard swallows the resolve silently; the charged-back deposit
	// stays terminal either way.
	require.Nil(t, a.Apply(types.Resolve(1, 1)))
	requireBalances(t, a, 0, 0, true)
}

func TestAccount_NegativeAmountsNotValidated(t *testing.T) {
	a := New()

	// No amount validation is performed; a negative deposit debits
	// the account. Guarding against this would change documented outcomes.
	require.Nil(t, a.Apply(types.Deposit(1, 1, -4)))
	requireBalances(t, a, -4, 0, false)
}
