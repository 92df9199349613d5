package models

import "github.com/shopspring/decimal"

// TransferStatus is the outcome of an outgoing on-chain transfer.
type TransferStatus string

const (
	TransferStatusSuccess   TransferStatus = "success"
	TransferStatusFailed    TransferStatus = "failed"
	TransferStatusAmbiguous TransferStatus = "ambiguous" // issued, outcome unknown
)

// TransferRequest asks the adapter to move Amount of Currency to Destination.
// IdempotencyKey identifies the transfer across retries and reconciliation lookups.
type TransferRequest struct {
	Destination    string
	Amount         decimal.Decimal
	Currency       Currency
	IdempotencyKey string
}

// TransferResult is the adapter's report for a transfer or a lookup.
type TransferResult struct {
	Status          TransferStatus
	TransactionHash string
	Error           string
}
