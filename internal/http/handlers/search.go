package handlers

import (
	"net/http"

	"dashboard/internal/search"
	"dashboard/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /dashboard/search?term=...
//
// Rebuilds the invoice list URL for the new term (page forced to 1, query
// set or dropped) and hands navigation back to the router with a redirect.
// No table filtering happens here; the list endpoint re-reads the query
// string on the follow-up request.
func SearchInvoices(c *gin.Context) {
	term := c.Query("term")

	params := c.Request.URL.Query()
	params.Del("term")

	next := search.Rebuild(params, term)

	target := services.InvoicesRoute
	if enc := next.Encode(); enc != "" {
		target += "?" + enc
	}
	c.Redirect(http.StatusSeeOther, target)
}
