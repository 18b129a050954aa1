package domain

import "time"

// Receipt is a payment record owned by exactly one zone. ZoneID is set from
// the authenticated zone at creation and never changes.
type Receipt struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Amount      float64   `json:"amount"`
	Payment     string    `json:"payment"`
	PaymentType string    `json:"paymenttype"`
	ZoneID      string    `json:"zonehead"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReceiptDetail is a receipt with its owning zone joined in.
type ReceiptDetail struct {
	Receipt
	Zone *ZoneSummary `json:"zone,omitempty"`
}
