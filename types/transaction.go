package types

// TransactionResult is the handle returned for a submitted transaction. It is
// a submission acknowledgment only; no confirmation polling is performed by
// this library.
type TransactionResult struct {
	// Hash is the transaction hash, hex encoded.
	Hash string `json:"hash"`

	// RawTransaction is the underlying chain transaction. Callers should cast
	// it to the appropriate type (*types.Transaction for EVM chains).
	RawTransaction any `json:"tx"`
}
