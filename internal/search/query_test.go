package search

import (
	"net/url"
	"testing"
)

func TestRebuild_EmptyTermDropsQueryAndResetsPage(t *testing.T) {
	params, _ := url.ParseQuery("page=3&query=lee")

	out := Rebuild(params, "")

	if out.Has("query") {
		t.Fatalf("query should be removed, got %q", out.Encode())
	}
	if got := out.Get("page"); got != "1" {
		t.Fatalf("page should reset to 1, got %q", got)
	}
}

func TestRebuild_NewTermOnEmptyParams(t *testing.T) {
	out := Rebuild(url.Values{}, "lee")

	if len(out) != 2 {
		t.Fatalf("expected exactly query and page keys, got %q", out.Encode())
	}
	if got := out.Get("query"); got != "lee" {
		t.Fatalf("query = %q, want lee", got)
	}
	if got := out.Get("page"); got != "1" {
		t.Fatalf("page = %q, want 1", got)
	}
}

func TestRebuild_PreservesUnrelatedParams(t *testing.T) {
	params, _ := url.ParseQuery("page=5&query=old&sort=date")

	out := Rebuild(params, "acme")

	if got := out.Get("sort"); got != "date" {
		t.Fatalf("sort should pass through, got %q", got)
	}
	if got := out.Get("query"); got != "acme" {
		t.Fatalf("query = %q, want acme", got)
	}
	if got := out.Get("page"); got != "1" {
		t.Fatalf("page = %q, want 1", got)
	}
}

func TestRebuild_DoesNotMutateInput(t *testing.T) {
	params, _ := url.ParseQuery("page=3&query=lee")

	_ = Rebuild(params, "")

	if params.Get("page") != "3" || params.Get("query") != "lee" {
		t.Fatalf("input params mutated: %q", params.Encode())
	}
}
