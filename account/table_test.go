package account

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finvolt/txreplay/types"
)

func TestTable_LazyAccountCreation(t *testing.T) {
	tbl := NewTable()
	require.Equal(t, 0, tbl.Len())
	require.Nil(t, tbl.Account(1))

	// Any transaction kind creates the account, even one that is rejected.
	d := tbl.Apply(types.Dispute(1, 9))
	require.NotNil(t, d)
	require.Equal(t, types.DiagNoSuchDeposit, d.Code)
	require.Equal(t, 1, tbl.Len())
	require.NotNil(t, tbl.Account(1))
}

func TestTable_RoutesByClient(t *testing.T) {
	tbl := NewTable()

	require.Nil(t, tbl.Apply(types.Deposit(1, 1, 3)))
	require.Nil(t, tbl.Apply(types.Deposit(2, 2, 7)))
	require.Nil(t, tbl.Apply(types.Withdrawal(2, 3, 5)))

	require.Equal(t, 2, tbl.Len())
	require.Equal(t, 3.0, tbl.Account(1).Available())
	require.Equal(t, 2.0, tbl.Account(2).Available())
}

func TestTable_Outputs(t *testing.T) {
	tbl := NewTable()

	require.Nil(t, tbl.Apply(types.Deposit(1, 1, 3)))
	require.Nil(t, tbl.Apply(types.Deposit(2, 2, 4)))
	require.Nil(t, tbl.Apply(types.Dispute(2, 2)))

	outputs := tbl.Outputs()
	require.Len(t, outputs, 2)

	byClient := make(map[types.ClientID]types.Output, len(outputs))
	for _, out := range outputs {
		byClient[out.Client] = out
	}

	require.Equal(t, types.Output{Client: 1, Available: 3, Held: 0, Total: 3}, byClient[1])
	require.Equal(t, types.Output{Client: 2, Available: 0, Held: 4, Total: 4}, byClient[2])
}
