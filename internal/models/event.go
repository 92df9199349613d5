package models

// Event is the ledger event published to the stream after every committed entry.
type Event struct {
	TransactionID string            `json:"transaction_id"`
	Timestamp     int64             `json:"timestamp"`
	UserID        string            `json:"user_id"`
	Operation     TransactionType   `json:"operation"`
	Status        TransactionStatus `json:"status"`
	Amount        string            `json:"amount"`
	Currency      Currency          `json:"currency"`
}
