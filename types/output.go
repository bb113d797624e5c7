package types

// Output is the terminal, read-only projection of an account, produced once
// per client after the input stream is exhausted.
//
// Total is always Available+Held; it is computed at projection time and never
// stored redundantly on the account itself.
type Output struct {
	// Client identifies the account.
	Client ClientID `json:"client"`

	// Available is the balance the client can withdraw.
	Available float64 `json:"available"`

	// Held is the balance frozen by active disputes.
	Held float64 `json:"held"`

	// Total is Available + Held.
	Total float64 `json:"total"`

	// Locked reports whether a chargeback has frozen the account.
	Locked bool `json:"locked"`
}
