package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"journeymap/middleware"
)

// GeocodeResult is the best-effort place description for a coordinate pair.
// Only the formatted string is ever persisted (as a name suggestion typed by
// the user); the structured fields exist to build it.
type GeocodeResult struct {
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Country   string `json:"country,omitempty"`
	Formatted string `json:"formatted"`
}

type nominatimResponse struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		Hamlet  string `json:"hamlet"`
		State   string `json:"state"`
		Region  string `json:"region"`
		County  string `json:"county"`
		Country string `json:"country"`
	} `json:"address"`
}

// GeocodingService resolves coordinates to city/state/country through
// Nominatim, with an optional Redis cache in front of the lookup.
type GeocodingService struct {
	BaseURL    string
	HTTPClient *http.Client

	cache    *redis.Client
	cacheTTL time.Duration
}

// NewGeocodingService builds the service. redisURL may be empty; an
// unreachable Redis degrades to uncached lookups rather than failing.
func NewGeocodingService(baseURL, redisURL string, cacheTTL time.Duration) *GeocodingService {
	svc := &GeocodingService{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		cacheTTL:   cacheTTL,
	}

	if redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Printf("Invalid Redis URL, geocode cache disabled: %v", err)
			return svc
		}
		client := redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("Redis unreachable, geocode cache disabled: %v", err)
			return svc
		}
		svc.cache = client
	}

	return svc
}

// ReverseGeocode returns the best-effort place for (lat, lng), or nil when
// the service is unavailable or has no match. Callers treat nil as "leave
// the name field for the user".
func (svc *GeocodingService) ReverseGeocode(ctx context.Context, lat, lng float64) *GeocodeResult {
	key := fmt.Sprintf("geocode:%.4f,%.4f", lat, lng)

	if cached := svc.fromCache(ctx, key); cached != nil {
		middleware.GeocodeLookupsTotal.WithLabelValues("hit").Inc()
		return cached
	}

	result, err := svc.lookup(ctx, lat, lng)
	if err != nil {
		log.Printf("Reverse geocode failed for (%f, %f): %v", lat, lng, err)
		middleware.GeocodeLookupsTotal.WithLabelValues("error").Inc()
		return nil
	}
	middleware.GeocodeLookupsTotal.WithLabelValues("miss").Inc()

	svc.toCache(ctx, key, result)
	return result
}

func (svc *GeocodingService) lookup(ctx context.Context, lat, lng float64) (*GeocodeResult, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lon", fmt.Sprintf("%f", lng))
	params.Set("zoom", "10")
	params.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		svc.BaseURL+"/reverse?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "JourneyMap/1.0")

	resp, err := svc.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding service returned %d", resp.StatusCode)
	}

	var data nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	addr := data.Address
	city := firstNonEmpty(addr.City, addr.Town, addr.Village, addr.Hamlet)
	state := firstNonEmpty(addr.State, addr.Region, addr.County)
	country := addr.Country

	var parts []string
	for _, p := range []string{city, state, country} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	return &GeocodeResult{
		City:      city,
		State:     state,
		Country:   country,
		Formatted: strings.Join(parts, ", "),
	}, nil
}

func (svc *GeocodingService) fromCache(ctx context.Context, key string) *GeocodeResult {
	if svc.cache == nil {
		return nil
	}
	raw, err := svc.cache.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Geocode cache read failed: %v", err)
		}
		return nil
	}
	var result GeocodeResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		log.Printf("Geocode cache entry malformed: %v", err)
		return nil
	}
	return &result
}

func (svc *GeocodingService) toCache(ctx context.Context, key string, result *GeocodeResult) {
	if svc.cache == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := svc.cache.Set(ctx, key, raw, svc.cacheTTL).Err(); err != nil {
		log.Printf("Geocode cache write failed: %v", err)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
