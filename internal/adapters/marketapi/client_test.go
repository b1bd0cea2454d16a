package marketapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"domain-market-web/internal/core/domain"
)

func strPtr(v string) *string { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestFetchListings(t *testing.T) {
	t.Run("decodes and normalizes mixed-spelling records", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/domains" {
				t.Fatalf("\nwanted:\n/api/domains\ngot:\n%q", r.URL.Path)
			}
			if got := r.URL.Query().Get("isSold"); got != "false" {
				t.Fatalf("\nwanted:\nisSold=false\ngot:\n%q", got)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[
				{"id": 1, "domain_name": "a.com", "price_usd": 100},
				{"id": 2, "domainName": "b.com", "domain_name": "ignored.com", "priceUsd": 200, "isFeatured": true}
			]`))
		}))
		defer srv.Close()

		isSold := false
		client := NewClient(srv.URL)
		listings, err := client.FetchListings(context.Background(), domain.ListingQuery{IsSold: &isSold})
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if len(listings) != 2 {
			t.Fatalf("\nwanted:\n2 listings\ngot:\n%d", len(listings))
		}
		if listings[0].DomainName != "a.com" || listings[0].Slug != "a.com" {
			t.Fatalf("\nwanted:\nnormalized snake_case record\ngot:\n%+v", listings[0])
		}
		if listings[1].DomainName != "b.com" || !listings[1].IsFeatured {
			t.Fatalf("\nwanted:\ncamelCase precedence\ngot:\n%+v", listings[1])
		}
	})

	t.Run("non-2xx surfaces a RequestFailedError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := NewClient(srv.URL)
		_, err := client.FetchListings(context.Background(), domain.ListingQuery{})
		reqErr, ok := domain.AsRequestFailed(err)
		if !ok {
			t.Fatalf("\nwanted:\n*domain.RequestFailedError\ngot:\n%v", err)
		}
		if reqErr.StatusCode != http.StatusBadGateway {
			t.Fatalf("\nwanted:\n502\ngot:\n%d", reqErr.StatusCode)
		}
	})
}

func TestFetchListingBySlug(t *testing.T) {
	t.Run("maps 404 onto ErrNotFound", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := NewClient(srv.URL)
		_, err := client.FetchListingBySlug(context.Background(), "missing.com")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("\nwanted:\nErrNotFound\ngot:\n%v", err)
		}
	})

	t.Run("returns the normalized record", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/domain/a.com" {
				t.Fatalf("\nwanted:\n/api/domain/a.com\ngot:\n%q", r.URL.Path)
			}
			w.Write([]byte(`{"id": 9, "domain_name": "a.com", "active": false}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL)
		listing, err := client.FetchListingBySlug(context.Background(), "a.com")
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if listing.ID != 9 || listing.Active {
			t.Fatalf("\nwanted:\nid 9, inactive\ngot:\n%+v", listing)
		}
	})
}

func TestAdminMutations(t *testing.T) {
	t.Run("create attaches the bearer token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer secret-token" {
				t.Fatalf("\nwanted:\nBearer secret-token\ngot:\n%q", got)
			}
			if r.Method != http.MethodPost || r.URL.Path != "/api/admin/domain" {
				t.Fatalf("\nwanted:\nPOST /api/admin/domain\ngot:\n%s %s", r.Method, r.URL.Path)
			}
			w.Write([]byte(`{"id": 42, "domain_name": "novo.com"}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL)
		created, err := client.CreateListing(context.Background(), "secret-token", domain.ListingFields{DomainName: strPtr("novo.com")})
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if created.ID != 42 {
			t.Fatalf("\nwanted:\nid 42\ngot:\n%d", created.ID)
		}
	})

	t.Run("backend error message passes through verbatim", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": "Domain already exists"}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL)
		_, err := client.CreateListing(context.Background(), "t", domain.ListingFields{DomainName: strPtr("dup.com")})
		reqErr, ok := domain.AsRequestFailed(err)
		if !ok {
			t.Fatalf("\nwanted:\n*domain.RequestFailedError\ngot:\n%v", err)
		}
		if reqErr.Message != "Domain already exists" {
			t.Fatalf("\nwanted:\nDomain already exists\ngot:\n%q", reqErr.Message)
		}
	})

	t.Run("unparseable error body falls back to a generic message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`<html>boom</html>`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL)
		err := client.DeleteListing(context.Background(), "t", 1)
		reqErr, ok := domain.AsRequestFailed(err)
		if !ok {
			t.Fatalf("\nwanted:\n*domain.RequestFailedError\ngot:\n%v", err)
		}
		if reqErr.Message != "failed to delete domain" {
			t.Fatalf("\nwanted:\nfallback message\ngot:\n%q", reqErr.Message)
		}
	})

	t.Run("update forwards only the fields the caller set", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPut || r.URL.Path != "/api/admin/domain/3" {
				t.Fatalf("\nwanted:\nPUT /api/admin/domain/3\ngot:\n%s %s", r.Method, r.URL.Path)
			}
			var body map[string]interface{}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decoding request body: %v", err)
			}
			// A partial update must not zero or blank untouched fields.
			if len(body) != 1 {
				t.Fatalf("\nwanted:\nonly price_brl on the wire\ngot:\n%v", body)
			}
			if got := body["price_brl"]; got != 5200.0 {
				t.Fatalf("\nwanted:\nprice_brl 5200\ngot:\n%v", got)
			}
			w.Write([]byte(`{"id": 3, "domain_name": "a.com", "price_brl": 5200}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL)
		updated, err := client.UpdateListing(context.Background(), "t", 3,
			domain.ListingFields{PriceBRL: floatPtr(5200)})
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if updated.PriceBRL != 5200 {
			t.Fatalf("\nwanted:\n5200\ngot:\n%v", updated.PriceBRL)
		}
	})

	t.Run("recalculation reports the updated count", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/api/admin/recalculate-brl" {
				t.Fatalf("\nwanted:\nPOST /api/admin/recalculate-brl\ngot:\n%s %s", r.Method, r.URL.Path)
			}
			w.Write([]byte(`{"updated": 17}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL)
		result, err := client.RecalculateBRL(context.Background(), "t")
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if result.Updated != 17 {
			t.Fatalf("\nwanted:\n17\ngot:\n%d", result.Updated)
		}
	})
}
