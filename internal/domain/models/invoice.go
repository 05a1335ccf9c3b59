package models

// Invoice statuses. The form only ever submits one of these two.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// Invoice mirrors the invoices table. Amount is stored in cents; Date is a
// plain YYYY-MM-DD string set once at creation and never updated.
type Invoice struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
	Date       string `json:"date"`
}
