package services

import (
	"net/url"
	"time"

	"dashboard/internal/cache"
	"dashboard/internal/domain"
	"dashboard/internal/domain/models"
	"dashboard/internal/repositories"
	"dashboard/internal/utils"
	"dashboard/internal/validation"

	"github.com/google/uuid"
)

// InvoicesRoute is the cached list view every mutation must mark stale
// before the response navigates anywhere.
const InvoicesRoute = "/dashboard/invoices"

// InvoiceService runs the mutation flow: parse the form, convert the amount
// to cents, issue one SQL statement, then invalidate the cached list view.
type InvoiceService struct {
	Repo         repositories.InvoiceRepository
	Cache        cache.Invalidator
	CreateSchema validation.InvoiceSchema
	UpdateSchema validation.InvoiceSchema
	Now          func() time.Time
	RequestID    string
}

func (s InvoiceService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

func (s InvoiceService) invalidate() {
	if s.Cache != nil {
		s.Cache.Invalidate(InvoicesRoute)
	}
}

// Create validates the raw form, generates id and date, and inserts the row.
// Validation failures surface before any DB work; DB failures come back as
// a user-facing InternalError instead of propagating as a fault.
func (s InvoiceService) Create(form url.Values) (models.Invoice, error) {
	in, err := s.CreateSchema.Parse(form)
	if err != nil {
		return models.Invoice{}, err
	}

	inv := models.Invoice{
		ID:         uuid.NewString(),
		CustomerID: in.CustomerID,
		Amount:     utils.ToCents(in.Amount),
		Status:     in.Status,
		Date:       utils.FormatDate(s.now()),
	}

	if err := s.Repo.Create(inv); err != nil {
		return models.Invoice{}, domain.InternalError{Msg: "Database Error: Failed to Create Invoice.", Err: err}
	}

	utils.LogAction(s.RequestID, "invoice_create", "id="+inv.ID)
	s.invalidate()
	return inv, nil
}

// Update applies the same validation and cents conversion as Create, then
// rewrites customer, amount and status by id. Id and date never change.
func (s InvoiceService) Update(id string, form url.Values) error {
	in, err := s.UpdateSchema.Parse(form)
	if err != nil {
		return err
	}

	if err := s.Repo.Update(id, in.CustomerID, utils.ToCents(in.Amount), in.Status); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return domain.InternalError{Msg: "Database Error: Failed to Update Invoice.", Err: err}
	}

	utils.LogAction(s.RequestID, "invoice_update", "id="+id)
	s.invalidate()
	return nil
}

// Delete removes the row by id. Any failure after the statement runs, a
// missing row included, comes back through the same error path the caller
// already handles.
func (s InvoiceService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return domain.InternalError{Msg: "Database Error: Failed to Delete Invoice.", Err: err}
	}

	utils.LogAction(s.RequestID, "invoice_delete", "id="+id)
	s.invalidate()
	return nil
}
