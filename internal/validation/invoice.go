package validation

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"dashboard/internal/domain"

	"github.com/go-playground/validator/v10"
)

// MaxInvoiceAmount caps the amount field so the cents conversion stays well
// inside int64 range.
const MaxInvoiceAmount = 999999999.99

// InvoiceInput is the typed result of a parsed invoice form.
type InvoiceInput struct {
	CustomerID string  `validate:"required"`
	Amount     float64 `validate:"gte=0,lte=999999999.99"`
	Status     string  `validate:"required,oneof=pending paid"`
}

// InvoiceSchema validates raw invoice form fields. Instances are immutable;
// construct one per use site and pass it down explicitly instead of sharing
// module state.
type InvoiceSchema struct {
	validate *validator.Validate
}

// NewCreateInvoiceSchema builds the schema used by the create flow. The
// caller never supplies id or date, so the schema only covers the three
// form fields.
func NewCreateInvoiceSchema() InvoiceSchema {
	return newInvoiceSchema()
}

// NewUpdateInvoiceSchema builds the schema used by the update flow. It is
// the same field shape as create; id stays a route parameter and date is
// immutable.
func NewUpdateInvoiceSchema() InvoiceSchema {
	return newInvoiceSchema()
}

func newInvoiceSchema() InvoiceSchema {
	return InvoiceSchema{validate: validator.New()}
}

// Parse coerces and validates raw form values. A non-numeric amount fails
// here rather than silently becoming zero, and every failure is a
// domain.ValidationError so callers can tell it apart from DB errors.
func (s InvoiceSchema) Parse(form url.Values) (InvoiceInput, error) {
	customerID := strings.TrimSpace(form.Get("customerId"))
	rawAmount := strings.TrimSpace(form.Get("amount"))
	status := strings.TrimSpace(form.Get("status"))

	if rawAmount == "" {
		return InvoiceInput{}, domain.ValidationError{Field: "amount", Msg: "is required"}
	}
	amount, err := strconv.ParseFloat(rawAmount, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return InvoiceInput{}, domain.ValidationError{Field: "amount", Msg: "must be a number", Err: err}
	}

	in := InvoiceInput{
		CustomerID: customerID,
		Amount:     amount,
		Status:     status,
	}

	v := s.validate
	if v == nil {
		v = validator.New()
	}
	if err := v.Struct(in); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return InvoiceInput{}, domain.ValidationError{
				Field: formField(fe.Field()),
				Msg:   validationMessage(fe),
				Err:   err,
			}
		}
		return InvoiceInput{}, domain.ValidationError{Msg: "invalid invoice input", Err: err}
	}

	return in, nil
}

func formField(structField string) string {
	switch structField {
	case "CustomerID":
		return "customerId"
	case "Amount":
		return "amount"
	case "Status":
		return "status"
	}
	return structField
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must not be negative"
	case "lte":
		return "is too large"
	case "oneof":
		return "must be one of: pending, paid"
	}
	return "is invalid"
}
