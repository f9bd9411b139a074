package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestReverseGeocode(t *testing.T) {
	ctx := context.Background()

	t.Run("FormatsCityStateCountry", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/reverse" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if r.URL.Query().Get("zoom") != "10" || r.URL.Query().Get("addressdetails") != "1" {
				t.Errorf("unexpected query %s", r.URL.RawQuery)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"address":{"city":"Kyoto","state":"Kyoto Prefecture","country":"Japan"}}`))
		}))
		defer server.Close()

		svc := NewGeocodingService(server.URL, "", time.Hour)
		result := svc.ReverseGeocode(ctx, 35.0116, 135.7681)
		if result == nil {
			t.Fatal("lookup returned nil")
		}
		if result.Formatted != "Kyoto, Kyoto Prefecture, Japan" {
			t.Errorf("formatted = %q", result.Formatted)
		}
	})

	t.Run("TownFallsBackForCity", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"address":{"town":"Obidos","region":"Oeste","country":"Portugal"}}`))
		}))
		defer server.Close()

		svc := NewGeocodingService(server.URL, "", time.Hour)
		result := svc.ReverseGeocode(ctx, 39.3606, -9.1575)
		if result == nil {
			t.Fatal("lookup returned nil")
		}
		if result.City != "Obidos" || result.State != "Oeste" {
			t.Errorf("fallbacks not applied: %+v", result)
		}
	})

	t.Run("NoMatchYieldsEmptyFormatted", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"address":{}}`))
		}))
		defer server.Close()

		svc := NewGeocodingService(server.URL, "", time.Hour)
		result := svc.ReverseGeocode(ctx, 0, 0)
		if result == nil {
			t.Fatal("lookup returned nil")
		}
		if result.Formatted != "" {
			t.Errorf("formatted = %q, want empty", result.Formatted)
		}
	})

	t.Run("ServiceErrorReturnsNil", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		svc := NewGeocodingService(server.URL, "", time.Hour)
		if result := svc.ReverseGeocode(ctx, 1, 1); result != nil {
			t.Errorf("result = %+v, want nil on service failure", result)
		}
	})

	t.Run("UnreachableServiceReturnsNil", func(t *testing.T) {
		svc := NewGeocodingService("http://127.0.0.1:1", "", time.Hour)
		svc.HTTPClient.Timeout = time.Second
		if result := svc.ReverseGeocode(ctx, 1, 1); result != nil {
			t.Errorf("result = %+v, want nil when unreachable", result)
		}
	})
}
