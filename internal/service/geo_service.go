//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"yatra/backend/internal/network"
	"yatra/backend/pkg/logger"
	"yatra/backend/pkg/ttlcache"
)

const (
	geocodeURL = "https://api.geoapify.com/v1/geocode/search"
	placesURL  = "https://api.geoapify.com/v2/places"

	geoBucketGeocode = "geocode"
	geoBucketPlaces  = "places"
	geoLimit         = 30
	geoWindow        = time.Minute

	geoCacheTTL = time.Hour
	geoTimeout  = 8 * time.Second

	defaultPlacesLimit = 20
	maxPlacesLimit     = 50
	defaultRadius      = 5000
	maxRadius          = 50000
	maxQueryLength     = 200
)

// GeocodeResult is the proxy's own response shape for a geocode lookup.
type GeocodeResult struct {
	Lat       float64
	Lon       float64
	Formatted string
}

// Place is one point of interest near a trip destination.
type Place struct {
	Name       string
	Lat        float64
	Lon        float64
	Formatted  string
	Categories []string
}

// PlacesRequest asks for points of interest around a center point,
// filtered by the site's interest-tag vocabulary.
type PlacesRequest struct {
	Lat          float64
	Lon          float64
	RadiusMeters int
	Limit        int
	InterestTags []string
}

// GeoService proxies Geoapify lookups so the API key never reaches the
// browser. Results are cached per process for an hour; the cache is a cost
// optimization only.
type GeoService interface {
	Geocode(ctx context.Context, text, clientIP string) (*GeocodeResult, error)
	Places(ctx context.Context, req PlacesRequest, clientIP string) ([]Place, error)
}

type geoService struct {
	apiKey        string
	limiter       RateLimiter
	geocodeCache  *ttlcache.Cache[GeocodeResult]
	placesCache   *ttlcache.Cache[[]Place]
	clientFactory *network.ClientFactory
	flight        singleflight.Group
	outbound      *rate.Limiter
}

// NewGeoService creates a geo proxy. Both caches are constructed by the
// caller and live for the process.
func NewGeoService(apiKey string, limiter RateLimiter, geocodeCache *ttlcache.Cache[GeocodeResult], placesCache *ttlcache.Cache[[]Place], clientFactory *network.ClientFactory) GeoService {
	return &geoService{
		apiKey:        strings.TrimSpace(apiKey),
		limiter:       limiter,
		geocodeCache:  geocodeCache,
		placesCache:   placesCache,
		clientFactory: clientFactory,
		// Politeness cap toward the paid API, independent of per-client
		// limits.
		outbound: rate.NewLimiter(rate.Limit(8), 8),
	}
}

func (s *geoService) Geocode(ctx context.Context, text, clientIP string) (*GeocodeResult, error) {
	text = strings.TrimSpace(text)
	if text == "" || len(text) > maxQueryLength {
		return nil, ErrInvalid
	}

	key := "geocode:" + strings.ToLower(text)
	if cached, ok := s.geocodeCache.Get(key); ok {
		return &cached, nil
	}

	if s.apiKey == "" {
		logger.Error("geoapify key missing", "module", "service", "resource", "geo")
		return nil, fmt.Errorf("%w: geocoding", ErrNotConfigured)
	}

	if err := s.limiter.Check(ctx, geoBucketGeocode, clientIP, geoLimit, geoWindow); err != nil {
		return nil, err
	}

	result, err, _ := s.flight.Do(key, func() (interface{}, error) {
		fetched, fetchErr := s.fetchGeocode(ctx, text)
		if fetchErr != nil {
			return nil, fetchErr
		}
		s.geocodeCache.Set(key, *fetched, geoCacheTTL)
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*GeocodeResult), nil
}

func (s *geoService) Places(ctx context.Context, req PlacesRequest, clientIP string) ([]Place, error) {
	if req.Lat < -90 || req.Lat > 90 || req.Lon < -180 || req.Lon > 180 {
		return nil, ErrInvalid
	}
	if req.RadiusMeters <= 0 {
		req.RadiusMeters = defaultRadius
	}
	if req.RadiusMeters > maxRadius {
		req.RadiusMeters = maxRadius
	}
	if req.Limit <= 0 {
		req.Limit = defaultPlacesLimit
	}
	if req.Limit > maxPlacesLimit {
		req.Limit = maxPlacesLimit
	}
	categories := categoriesForTags(req.InterestTags)

	key := fmt.Sprintf("places:%.4f:%.4f:%d:%d:%s", req.Lat, req.Lon, req.RadiusMeters, req.Limit, categories)
	if cached, ok := s.placesCache.Get(key); ok {
		return cached, nil
	}

	if s.apiKey == "" {
		logger.Error("geoapify key missing", "module", "service", "resource", "geo")
		return nil, fmt.Errorf("%w: places lookup", ErrNotConfigured)
	}

	if err := s.limiter.Check(ctx, geoBucketPlaces, clientIP, geoLimit, geoWindow); err != nil {
		return nil, err
	}

	result, err, _ := s.flight.Do(key, func() (interface{}, error) {
		fetched, fetchErr := s.fetchPlaces(ctx, req, categories)
		if fetchErr != nil {
			return nil, fetchErr
		}
		s.placesCache.Set(key, fetched, geoCacheTTL)
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]Place), nil
}

func (s *geoService) fetchGeocode(ctx context.Context, text string) (*GeocodeResult, error) {
	params := url.Values{}
	params.Set("text", text)
	params.Set("limit", "1")
	params.Set("format", "json")
	params.Set("apiKey", s.apiKey)

	var payload struct {
		Results []struct {
			Lat       float64 `json:"lat"`
			Lon       float64 `json:"lon"`
			Formatted string  `json:"formatted"`
		} `json:"results"`
	}
	if err := s.getJSON(ctx, geocodeURL+"?"+params.Encode(), &payload); err != nil {
		return nil, err
	}
	if len(payload.Results) == 0 {
		return nil, ErrNotFound
	}

	top := payload.Results[0]
	return &GeocodeResult{Lat: top.Lat, Lon: top.Lon, Formatted: top.Formatted}, nil
}

func (s *geoService) fetchPlaces(ctx context.Context, req PlacesRequest, categories string) ([]Place, error) {
	params := url.Values{}
	params.Set("categories", categories)
	params.Set("filter", fmt.Sprintf("circle:%s,%s,%d",
		strconv.FormatFloat(req.Lon, 'f', -1, 64),
		strconv.FormatFloat(req.Lat, 'f', -1, 64),
		req.RadiusMeters))
	params.Set("limit", strconv.Itoa(req.Limit))
	params.Set("apiKey", s.apiKey)

	var payload struct {
		Features []struct {
			Properties struct {
				Name       string   `json:"name"`
				Lat        float64  `json:"lat"`
				Lon        float64  `json:"lon"`
				Formatted  string   `json:"formatted"`
				Categories []string `json:"categories"`
			} `json:"properties"`
		} `json:"features"`
	}
	if err := s.getJSON(ctx, placesURL+"?"+params.Encode(), &payload); err != nil {
		return nil, err
	}

	places := make([]Place, 0, len(payload.Features))
	for _, feature := range payload.Features {
		props := feature.Properties
		name := props.Name
		if name == "" {
			name = props.Formatted
		}
		places = append(places, Place{
			Name:       name,
			Lat:        props.Lat,
			Lon:        props.Lon,
			Formatted:  props.Formatted,
			Categories: props.Categories,
		})
	}
	return places, nil
}

// getJSON fetches rawURL with one retry on timeout-class or 5xx failures.
// Error text is scrubbed of the API key before it can reach logs or
// responses.
func (s *geoService) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", ErrUpstream, ctx.Err())
			case <-time.After(retryBackoff):
			}
		}

		status, err := s.doGetJSON(ctx, rawURL, out)
		if err != nil {
			lastErr = s.redacted(err)
			if !isTimeoutErr(err) {
				break
			}
			continue
		}
		switch {
		case status == http.StatusOK:
			return nil
		case status == http.StatusUnauthorized || status == http.StatusForbidden:
			logger.Error("geoapify rejected credentials", "module", "service", "resource", "geo", "status_code", status)
			return fmt.Errorf("%w: upstream credentials rejected", ErrNotConfigured)
		case status >= 500:
			lastErr = fmt.Errorf("upstream status %d", status)
			continue
		default:
			return fmt.Errorf("%w: upstream status %d", ErrUpstream, status)
		}
	}

	logger.Warn("geoapify fetch failed", "module", "service", "resource", "geo", "error", lastErr)
	return fmt.Errorf("%w: %v", ErrUpstream, lastErr)
}

func (s *geoService) doGetJSON(ctx context.Context, rawURL string, out interface{}) (int, error) {
	if err := s.outbound.Wait(ctx); err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, err
	}

	client := s.clientFactory.NewHTTPClient(geoTimeout)
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return resp.StatusCode, nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, 4<<20)).Decode(out); err != nil {
		return 0, err
	}
	return resp.StatusCode, nil
}

// redacted strips the API key out of error text. Transport errors embed the
// full request URL, key included.
func (s *geoService) redacted(err error) error {
	if s.apiKey == "" {
		return err
	}
	return fmt.Errorf("%s", strings.ReplaceAll(err.Error(), s.apiKey, "[redacted]"))
}

// baselineCategories apply to every places lookup; interest tags add to
// them. Unknown tags are ignored so a stale frontend vocabulary can never
// break the endpoint.
var baselineCategories = []string{"tourism.sights", "tourism.attraction"}

var interestCategories = map[string][]string{
	"mountain":    {"natural.mountain"},
	"monasteries": {"religion.place_of_worship.buddhism"},
	"lakes":       {"natural.water"},
	"heritage":    {"heritage"},
	"wildlife":    {"national_park"},
	"food":        {"catering.restaurant", "catering.cafe"},
	"markets":     {"commercial.marketplace"},
	"camping":     {"camping.camp_site"},
}

func categoriesForTags(tags []string) string {
	seen := make(map[string]struct{}, len(baselineCategories))
	categories := make([]string, 0, len(baselineCategories)+len(tags))
	for _, category := range baselineCategories {
		seen[category] = struct{}{}
		categories = append(categories, category)
	}

	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		if trimmed := strings.ToLower(strings.TrimSpace(tag)); trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}
	sort.Strings(normalized)

	for _, tag := range normalized {
		for _, category := range interestCategories[tag] {
			if _, ok := seen[category]; ok {
				continue
			}
			seen[category] = struct{}{}
			categories = append(categories, category)
		}
	}
	return strings.Join(categories, ",")
}
