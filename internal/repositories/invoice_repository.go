package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "dashboard/internal/config"
	"dashboard/internal/domain"
	"dashboard/internal/domain/models"
)

// ListPageSize matches the dashboard table page length.
const ListPageSize = 6

type InvoiceRepository struct {
	DB *sql.DB
}

func (r InvoiceRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Create inserts a new invoice row. The caller supplies the generated id,
// cents amount and date; every value goes through placeholder binding.
func (r InvoiceRepository) Create(inv models.Invoice) error {
	_, err := r.db().Exec(`
        INSERT INTO invoices (id, customer_id, amount, status, date)
        VALUES (?, ?, ?, ?, ?)
    `, inv.ID, inv.CustomerID, inv.Amount, inv.Status, inv.Date)
	return err
}

// Update rewrites customer_id, amount and status by id. The id and date
// columns are deliberately absent from the SET list.
func (r InvoiceRepository) Update(id, customerID string, amount int64, status string) error {
	res, err := r.db().Exec(`
        UPDATE invoices
        SET customer_id = ?, amount = ?, status = ?
        WHERE id = ?
    `, customerID, amount, status, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFoundError{Resource: "invoice"}
	}
	return nil
}

// Delete removes the row by id. A missing id is reported as NotFoundError,
// never as a driver error.
func (r InvoiceRepository) Delete(id string) error {
	res, err := r.db().Exec(`DELETE FROM invoices WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFoundError{Resource: "invoice"}
	}
	return nil
}

// GetByID fetches a single invoice.
func (r InvoiceRepository) GetByID(id string) (models.Invoice, error) {
	var inv models.Invoice
	err := r.db().QueryRow(`
        SELECT id, customer_id, amount, status, date
        FROM invoices
        WHERE id = ? LIMIT 1
    `, id).Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Invoice{}, domain.NotFoundError{Resource: "invoice", Err: err}
		}
		return models.Invoice{}, err
	}
	return inv, nil
}

// List returns one page of invoices filtered by the search term. The term
// matches customer_id or status with a LIKE, the way the dashboard search
// box filters the table.
func (r InvoiceRepository) List(query string, page int) ([]models.Invoice, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * ListPageSize

	like := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	rows, err := r.db().Query(`
        SELECT id, customer_id, amount, status, date
        FROM invoices
        WHERE LOWER(customer_id) LIKE ? OR LOWER(status) LIKE ?
        ORDER BY date DESC, id
        LIMIT ? OFFSET ?
    `, like, like, ListPageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Invoice{}
	for rows.Next() {
		var inv models.Invoice
		if err := rows.Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.Date); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// Count returns the total number of invoices for the dashboard overview.
func (r InvoiceRepository) Count() (int64, error) {
	var n int64
	err := r.db().QueryRow(`SELECT COUNT(*) FROM invoices`).Scan(&n)
	return n, err
}
