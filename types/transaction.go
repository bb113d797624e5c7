package types

import (
	"encoding/json"
	"fmt"
)

// ClientID uniquely identifies a client account.
//
// It is an opaque equality/hash key; no validation is performed beyond
// representability in 16 bits.
type ClientID uint16

// TransactionID uniquely identifies a deposit or withdrawal transaction
// within an input stream.
//
// Uniqueness is not enforced by the engine: a duplicate deposit id refers to
// the same deposit record and overwrites it.
type TransactionID uint32

// Kind enumerates the transaction variants.
type Kind uint8

const (
	// KindDeposit credits funds to a client's available balance.
	KindDeposit Kind = iota

	// KindWithdrawal debits funds from a client's available balance.
	KindWithdrawal

	// KindDispute places a hold on a previously deposited amount.
	KindDispute

	// KindResolve releases the hold placed by a dispute.
	KindResolve

	// KindChargeback permanently reverses a disputed deposit and locks the account.
	KindChargeback
)

// String returns the lowercase wire name of the kind as used by the CSV format.
//
// Returns:
//   - string: "deposit", "withdrawal", "dispute", "resolve" or "chargeback"
//     ("unknown" for out-of-range values)
func (k Kind) String() string {
	switch k {
	case KindDeposit:
		return "deposit"
	case KindWithdrawal:
		return "withdrawal"
	case KindDispute:
		return "dispute"
	case KindResolve:
		return "resolve"
	case KindChargeback:
		return "chargeback"
	default:
		return "unknown"
	}
}

// ParseKind parses a wire name into a Kind.
//
// Parameters:
//   - s: Lowercase wire name ("deposit", "withdrawal", "dispute", "resolve", "chargeback")
//
// Returns:
//   - Kind: Parsed kind (zero value when ok is false)
//   - bool: true when s names a known kind
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "deposit":
		return KindDeposit, true
	case "withdrawal":
		return KindWithdrawal, true
	case "dispute":
		return KindDispute, true
	case "resolve":
		return KindResolve, true
	case "chargeback":
		return KindChargeback, true
	default:
		return 0, false
	}
}

// MarshalJSON encodes the kind as its wire name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a wire name into the kind.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, ok := ParseKind(s)
	if !ok {
		return fmt.Errorf("unknown transaction kind %q", s)
	}
	*k = parsed

	return nil
}

// Transaction is a single record of the input stream.
//
// Deposit and withdrawal transactions carry an amount; dispute, resolve and
// chargeback reference a prior deposit by its transaction id and leave Amount
// zero. Amount is a signed floating-point quantity: the engine does not
// reject negative or non-finite amounts, it replays whatever the stream
// says.
type Transaction struct {
	// Kind is the transaction variant.
	Kind Kind `json:"type"`

	// Client identifies the account the transaction applies to.
	Client ClientID `json:"client"`

	// Tx identifies the transaction (for dispute/resolve/chargeback, the
	// referenced deposit).
	Tx TransactionID `json:"tx"`

	// Amount is the deposited or withdrawn quantity. Unused by dispute,
	// resolve and chargeback.
	Amount float64 `json:"amount,omitempty"`
}

// Deposit returns a deposit transaction.
func Deposit(client ClientID, tx TransactionID, amount float64) Transaction {
	return Transaction{Kind: KindDeposit, Client: client, Tx: tx, Amount: amount}
}

// Withdrawal returns a withdrawal transaction.
func Withdrawal(client ClientID, tx TransactionID, amount float64) Transaction {
	return Transaction{Kind: KindWithdrawal, Client: client, Tx: tx, Amount: amount}
}

// Dispute returns a dispute transaction referencing deposit tx.
func Dispute(client ClientID, tx TransactionID) Transaction {
	return Transaction{Kind: KindDispute, Client: client, Tx: tx}
}

// Resolve returns a resolve transaction referencing deposit tx.
func Resolve(client ClientID, tx TransactionID) Transaction {
	return Transaction{Kind: KindResolve, Client: client, Tx: tx}
}

// Chargeback returns a chargeback transaction referencing deposit tx.
func Chargeback(client ClientID, tx TransactionID) Transaction {
	return Transaction{Kind: KindChargeback, Client: client, Tx: tx}
}
