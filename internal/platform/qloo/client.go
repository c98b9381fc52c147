// Package qloo is a thin client for the Qloo taste API. The API is not
// schema-stable across endpoints: the same entity list can arrive nested
// under results.entities, under a flat entities key, or as a bare array,
// and search results use yet another envelope. Responses are therefore
// decoded through an ordered list of shape matchers, and every transport
// or decode failure is absorbed into "no result" at this boundary (the
// error is logged, never returned to callers).
package qloo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// EntityType is a Qloo content domain.
type EntityType string

const (
	TypeBook   EntityType = "book"
	TypeMovie  EntityType = "movie"
	TypeTVShow EntityType = "tv_show"
	TypePlace  EntityType = "place"
)

// URN renders the type the way Qloo filter/search params expect it.
func (t EntityType) URN() string {
	return "urn:entity:" + string(t)
}

func ParseEntityType(s string) (EntityType, bool) {
	switch EntityType(s) {
	case TypeBook, TypeMovie, TypeTVShow, TypePlace:
		return EntityType(s), true
	default:
		return "", false
	}
}

// RawEntity is one provider record as received. Field names and nesting
// vary between endpoints, so it stays an untyped map until normalization.
type RawEntity map[string]any

const (
	maxResults           = "10"
	popularBooksMinScore = "0.95"
)

type Config struct {
	BaseURL string
	APIKey  string
	// RPS caps outgoing request rate; zero means no client-side limit.
	RPS int
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

func NewClient(cfg Config) *Client {
	var limiter *rate.Limiter
	if cfg.RPS > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Second/time.Duration(cfg.RPS)), 1)
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		limiter: limiter,
	}
}

// envelope attempts to extract an entity list from a response body,
// reporting whether the body matched its shape. Matchers are tried in
// order; the first match wins.
type envelope func(body []byte) ([]RawEntity, bool)

// insightsEnvelopes covers the three shapes /v2/insights has been seen
// to return: {results:{entities:[...]}}, {entities:[...]}, bare array.
var insightsEnvelopes = []envelope{
	func(body []byte) ([]RawEntity, bool) {
		var data struct {
			Results struct {
				Entities []RawEntity `json:"entities"`
			} `json:"results"`
		}
		if err := json.Unmarshal(body, &data); err != nil || data.Results.Entities == nil {
			return nil, false
		}
		return data.Results.Entities, true
	},
	func(body []byte) ([]RawEntity, bool) {
		var data struct {
			Entities []RawEntity `json:"entities"`
		}
		if err := json.Unmarshal(body, &data); err != nil || data.Entities == nil {
			return nil, false
		}
		return data.Entities, true
	},
	func(body []byte) ([]RawEntity, bool) {
		var data []RawEntity
		if err := json.Unmarshal(body, &data); err != nil {
			return nil, false
		}
		return data, true
	},
}

// searchEnvelopes covers /search: {results:[...]} or a bare array.
var searchEnvelopes = []envelope{
	func(body []byte) ([]RawEntity, bool) {
		var data struct {
			Results []RawEntity `json:"results"`
		}
		if err := json.Unmarshal(body, &data); err != nil || data.Results == nil {
			return nil, false
		}
		return data.Results, true
	},
	func(body []byte) ([]RawEntity, bool) {
		var data []RawEntity
		if err := json.Unmarshal(body, &data); err != nil {
			return nil, false
		}
		return data, true
	},
}

func matchEnvelope(body []byte, matchers []envelope) ([]RawEntity, error) {
	for _, match := range matchers {
		if entities, ok := match(body); ok {
			return entities, nil
		}
	}
	return nil, fmt.Errorf("unrecognized response shape: %s", truncate(body, 120))
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

// SearchEntityID resolves a free-text name to a Qloo entity id. The
// second return is false when nothing resolved, for any reason.
func (c *Client) SearchEntityID(ctx context.Context, name string, entityType EntityType) (string, bool) {
	results, err := c.searchEntities(ctx, name, entityType)
	if err != nil {
		log.Printf("qloo: search %q (%s) absorbed: %v", name, entityType, err)
		return "", false
	}
	if len(results) == 0 {
		return "", false
	}
	id, _ := results[0]["entity_id"].(string)
	return id, id != ""
}

// SearchEntities returns the raw search result records for a query.
// Failures collapse to an empty list.
func (c *Client) SearchEntities(ctx context.Context, name string, entityType EntityType) []RawEntity {
	results, err := c.searchEntities(ctx, name, entityType)
	if err != nil {
		log.Printf("qloo: search %q (%s) absorbed: %v", name, entityType, err)
		return nil
	}
	return results
}

func (c *Client) searchEntities(ctx context.Context, name string, entityType EntityType) ([]RawEntity, error) {
	body, err := c.get(ctx, "/search", url.Values{
		"query": {name},
		"types": {entityType.URN()},
	})
	if err != nil {
		return nil, err
	}
	return matchEnvelope(body, searchEnvelopes)
}

// FetchInsights queries ranked entities for one domain, biased by the
// given interest entity ids and demographics. Failures collapse to an
// empty list.
func (c *Client) FetchInsights(ctx context.Context, entityIDs []string, age, gender string, domain EntityType) []RawEntity {
	entities, err := c.fetchInsights(ctx, entityIDs, age, gender, domain)
	if err != nil {
		log.Printf("qloo: insights for %s absorbed: %v", domain, err)
		return nil
	}
	return entities
}

func (c *Client) fetchInsights(ctx context.Context, entityIDs []string, age, gender string, domain EntityType) ([]RawEntity, error) {
	body, err := c.get(ctx, "/v2/insights", url.Values{
		"filter.type":                {domain.URN()},
		"signal.interests.entities":  {strings.Join(entityIDs, ",")},
		"signal.demographics.age":    {age},
		"signal.demographics.gender": {gender},
		"feature.explainability":     {"true"},
		"take":                       {maxResults},
	})
	if err != nil {
		return nil, err
	}
	return matchEnvelope(body, insightsEnvelopes)
}

// FetchPopularBooks queries globally popular books, deliberately without
// any identity signal: this list represents popularity, not taste.
func (c *Client) FetchPopularBooks(ctx context.Context) []RawEntity {
	entities, err := c.fetchPopularBooks(ctx)
	if err != nil {
		log.Printf("qloo: popular books absorbed: %v", err)
		return nil
	}
	return entities
}

func (c *Client) fetchPopularBooks(ctx context.Context) ([]RawEntity, error) {
	body, err := c.get(ctx, "/v2/insights", url.Values{
		"filter.type":            {TypeBook.URN()},
		"filter.popularity.min":  {popularBooksMinScore},
		"feature.explainability": {"true"},
		"take":                   {maxResults},
	})
	if err != nil {
		return nil, err
	}
	return matchEnvelope(body, insightsEnvelopes)
}

// FetchEntityDetails loads the full insights record for one known entity
// id. Used to enrich search results with fields /search does not return.
func (c *Client) FetchEntityDetails(ctx context.Context, entityID string, entityType EntityType) (RawEntity, bool) {
	body, err := c.get(ctx, "/v2/insights", url.Values{
		"filter.type":            {entityType.URN()},
		"filter.entity_id":       {entityID},
		"feature.explainability": {"true"},
		"take":                   {"1"},
	})
	if err != nil {
		log.Printf("qloo: details for %s absorbed: %v", entityID, err)
		return nil, false
	}
	entities, err := matchEnvelope(body, insightsEnvelopes)
	if err != nil || len(entities) == 0 {
		return nil, false
	}
	return entities[0], true
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
