package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"dashboard/internal/cache"
	"dashboard/internal/domain"
	"dashboard/internal/http/middleware"
	"dashboard/internal/repositories"
	"dashboard/internal/services"
	"dashboard/internal/utils"
	"dashboard/internal/validation"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler owns the invoice mutation and listing endpoints. The
// schemas and cache arrive from the router so nothing here is shared
// module state.
type InvoiceHandler struct {
	Repo         repositories.InvoiceRepository
	Cache        *cache.RouteCache
	CreateSchema validation.InvoiceSchema
	UpdateSchema validation.InvoiceSchema
}

func (h InvoiceHandler) service(c *gin.Context) services.InvoiceService {
	return services.InvoiceService{
		Repo:         h.Repo,
		Cache:        h.Cache,
		CreateSchema: h.CreateSchema,
		UpdateSchema: h.UpdateSchema,
		RequestID:    middleware.GetRequestID(c),
	}
}

// POST /dashboard/invoices
func (h InvoiceHandler) Create(c *gin.Context) {
	form := postForm(c)
	if _, err := h.service(c).Create(form); err != nil {
		respondMutationError(c, "Create", form, err)
		return
	}
	c.Redirect(http.StatusSeeOther, services.InvoicesRoute)
}

// PUT /dashboard/invoices/:id
func (h InvoiceHandler) Update(c *gin.Context) {
	form := postForm(c)
	if err := h.service(c).Update(c.Param("id"), form); err != nil {
		respondMutationError(c, "Update", form, err)
		return
	}
	c.Redirect(http.StatusSeeOther, services.InvoicesRoute)
}

// DELETE /dashboard/invoices/:id
func (h InvoiceHandler) Delete(c *gin.Context) {
	if err := h.service(c).Delete(c.Param("id")); err != nil {
		respondMutationError(c, "Delete", nil, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted Invoice."})
}

// GET /dashboard/invoices
func (h InvoiceHandler) List(c *gin.Context) {
	uri := c.Request.URL.RequestURI()
	if h.Cache != nil {
		if body, ok := h.Cache.Get(services.InvoicesRoute, uri); ok {
			utils.LogAction(middleware.GetRequestID(c), "cache_hit", "uri="+uri)
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			return
		}
		utils.LogAction(middleware.GetRequestID(c), "cache_miss", "uri="+uri)
	}

	query := c.Query("query")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	invoices, err := h.Repo.List(query, page)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load invoices", err)
		return
	}

	body, err := json.Marshal(gin.H{
		"invoices": invoices,
		"query":    query,
		"page":     page,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to render invoices", err)
		return
	}

	if h.Cache != nil {
		h.Cache.Put(services.InvoicesRoute, uri, body)
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// GET /dashboard
func (h InvoiceHandler) Overview(c *gin.Context) {
	n, err := h.Repo.Count()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load overview", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": "dashboard", "invoices": n})
}

// GET /dashboard/invoices/:id/pdf
func (h InvoiceHandler) PDF(c *gin.Context) {
	svc := services.DocsService{Repo: h.Repo, RequestID: middleware.GetRequestID(c)}
	body, filename, err := svc.GenerateInvoicePDF(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", body)
}

func postForm(c *gin.Context) url.Values {
	_ = c.Request.ParseForm()
	return c.Request.PostForm
}

// respondMutationError turns service failures into the structured message
// the form renders inline. Submitted fields are echoed back so the user's
// input is not discarded.
func respondMutationError(c *gin.Context, op string, form url.Values, err error) {
	payload := gin.H{
		"request_id": middleware.GetRequestID(c),
	}
	if form != nil {
		payload["fields"] = gin.H{
			"customerId": form.Get("customerId"),
			"amount":     form.Get("amount"),
			"status":     form.Get("status"),
		}
	}

	switch {
	case domain.IsValidation(err):
		payload["message"] = fmt.Sprintf("Missing Fields. Failed to %s Invoice.", op)
		payload["error"] = err.Error()
		c.JSON(http.StatusUnprocessableEntity, payload)
	case domain.IsNotFound(err):
		payload["message"] = err.Error()
		c.JSON(http.StatusNotFound, payload)
	default:
		payload["message"] = err.Error()
		c.JSON(http.StatusInternalServerError, payload)
	}
}
