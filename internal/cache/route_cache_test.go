package cache

import "testing"

func TestRouteCachePutGet(t *testing.T) {
	c := NewRouteCache()

	if _, ok := c.Get("/dashboard/invoices", "/dashboard/invoices?page=1"); ok {
		t.Fatal("empty cache should miss")
	}

	c.Put("/dashboard/invoices", "/dashboard/invoices?page=1", []byte("page1"))
	c.Put("/dashboard/invoices", "/dashboard/invoices?page=2", []byte("page2"))

	body, ok := c.Get("/dashboard/invoices", "/dashboard/invoices?page=2")
	if !ok || string(body) != "page2" {
		t.Fatalf("expected page2 hit, got %q ok=%v", body, ok)
	}
}

func TestRouteCacheInvalidateDropsWholeRoute(t *testing.T) {
	c := NewRouteCache()
	c.Put("/dashboard/invoices", "/dashboard/invoices?page=1", []byte("page1"))
	c.Put("/dashboard/invoices", "/dashboard/invoices?page=2&query=lee", []byte("page2"))
	c.Put("/dashboard", "/dashboard", []byte("home"))

	c.Invalidate("/dashboard/invoices")

	if _, ok := c.Get("/dashboard/invoices", "/dashboard/invoices?page=1"); ok {
		t.Fatal("page=1 should be stale after invalidation")
	}
	if _, ok := c.Get("/dashboard/invoices", "/dashboard/invoices?page=2&query=lee"); ok {
		t.Fatal("page=2 should be stale after invalidation")
	}
	if _, ok := c.Get("/dashboard", "/dashboard"); !ok {
		t.Fatal("other routes must survive invalidation")
	}
}
