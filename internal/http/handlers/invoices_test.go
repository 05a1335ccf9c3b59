package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dashboard/internal/cache"
	"dashboard/internal/repositories"
	"dashboard/internal/validation"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func newInvoiceRouter(db *sql.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := InvoiceHandler{
		Repo:         repositories.InvoiceRepository{DB: db},
		Cache:        cache.NewRouteCache(),
		CreateSchema: validation.NewCreateInvoiceSchema(),
		UpdateSchema: validation.NewUpdateInvoiceSchema(),
	}
	r := gin.New()
	r.GET("/dashboard/invoices", handler.List)
	r.POST("/dashboard/invoices", handler.Create)
	r.PUT("/dashboard/invoices/:id", handler.Update)
	r.DELETE("/dashboard/invoices/:id", handler.Delete)
	r.GET("/dashboard/search", SearchInvoices)
	return r
}

func formRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestCreateInvoiceRedirectsToListView(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	r := newInvoiceRouter(db)

	mock.ExpectExec("INSERT INTO invoices").
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest(http.MethodPost, "/dashboard/invoices", "customerId=cust-1&amount=12.34&status=pending"))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if loc := w.Header().Get("Location"); loc != "/dashboard/invoices" {
		t.Fatalf("Location = %q", loc)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateInvoiceValidationKeepsSubmittedFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	r := newInvoiceRouter(db)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest(http.MethodPost, "/dashboard/invoices", "customerId=cust-1&amount=oops&status=pending"))

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}

	var resp struct {
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Missing Fields. Failed to Create Invoice." {
		t.Fatalf("message = %q", resp.Message)
	}
	if resp.Fields["customerId"] != "cust-1" || resp.Fields["amount"] != "oops" {
		t.Fatalf("submitted fields were discarded: %v", resp.Fields)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("database was touched: %v", err)
	}
}

func TestDeleteInvoiceStaysOnCurrentView(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	r := newInvoiceRouter(db)

	mock.ExpectExec("DELETE FROM invoices").
		WithArgs("inv-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/dashboard/invoices/inv-1", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Deleted Invoice." {
		t.Fatalf("message = %q", resp.Message)
	}
}

func TestListCacheInvalidatedByMutation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	r := newInvoiceRouter(db)

	listRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "customer_id", "amount", "status", "date"}).
			AddRow("inv-1", "cust-1", int64(1234), "pending", "2026-02-10")
	}

	// first render hits the DB, second is served from cache
	mock.ExpectQuery("SELECT id, customer_id, amount, status, date").
		WillReturnRows(listRows())

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("list #%d status = %d", i+1, w.Code)
		}
	}

	// a mutation marks the route stale before redirecting
	mock.ExpectExec("INSERT INTO invoices").
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest(http.MethodPost, "/dashboard/invoices", "customerId=cust-2&amount=5&status=paid"))
	if w.Code != http.StatusSeeOther {
		t.Fatalf("create status = %d", w.Code)
	}

	// so the next render recomputes from the DB
	mock.ExpectQuery("SELECT id, customer_id, amount, status, date").
		WillReturnRows(listRows())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("list after create status = %d", w.Code)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSearchRedirectRewritesQueryString(t *testing.T) {
	r := newInvoiceRouter(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/search?page=3&query=old&term=lee", nil))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/dashboard/invoices?page=1&query=lee" {
		t.Fatalf("Location = %q", loc)
	}
}

func TestSearchRedirectEmptyTermDropsQuery(t *testing.T) {
	r := newInvoiceRouter(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/search?page=3&query=lee&term=", nil))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/dashboard/invoices?page=1" {
		t.Fatalf("Location = %q", loc)
	}
}
