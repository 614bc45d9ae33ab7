package valorant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/valtips-cli/valtips/key"
	"github.com/valtips-cli/valtips/log"
	"github.com/valtips-cli/valtips/network"
	"github.com/valtips-cli/valtips/util"
	"github.com/valtips-cli/valtips/where"
)

// ErrNotFound is returned when an agent or map cannot be resolved.
var ErrNotFound = errors.New("not found")

// StatusError is returned for non-2xx catalog responses.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("catalog returned status %d", e.Code)
	}
	return fmt.Sprintf("catalog returned status %d: %s", e.Code, e.Message)
}

type envelope[T any] struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
	Data   T      `json:"data"`
}

// Client reads agents and maps. A nil cache disables caching.
type Client struct {
	BaseURL string
	HTTP    *http.Client

	cache *catalogCache
}

// NewClient builds a client from configuration with the on-disk cache enabled
// unless catalog.cache_hours is 0.
func NewClient() *Client {
	c := &Client{
		BaseURL: viper.GetString(key.CatalogBaseURL),
		HTTP:    network.Client,
	}

	if hours := viper.GetInt(key.CatalogCacheHours); hours > 0 {
		c.cache = newCatalogCache(where.Catalog(), time.Duration(hours)*time.Hour)
	}
	return c
}

// WithCache enables caching under dir.
func (c *Client) WithCache(dir string, lifetime time.Duration) *Client {
	c.cache = newCatalogCache(dir, lifetime)
	return c
}

// Agents lists playable agents.
func (c *Client) Agents(ctx context.Context) ([]*Agent, error) {
	if c.cache != nil {
		if agents, ok := c.cache.agents.Get("playable").Get(); ok {
			return agents, nil
		}
	}

	agents, err := get[[]*Agent](ctx, c, "/agents", url.Values{"isPlayableCharacter": {"true"}})
	if err != nil {
		return nil, err
	}
	agents = lo.Filter(agents, func(a *Agent, _ int) bool { return a != nil && a.UUID != "" })
	log.Infof("catalog: got %d agents", len(agents))

	if c.cache != nil {
		_ = c.cache.agents.Set("playable", agents)
		for _, a := range agents {
			_ = c.cache.agent.Set(strings.ToLower(a.UUID), a)
		}
	}
	return agents, nil
}

// Agent fetches a single agent by uuid.
func (c *Client) Agent(ctx context.Context, uuid string) (*Agent, error) {
	id := strings.ToLower(strings.TrimSpace(uuid))
	if id == "" {
		return nil, fmt.Errorf("agent: %w", ErrNotFound)
	}

	if c.cache != nil {
		if agent, ok := c.cache.agent.Get(id).Get(); ok {
			return agent, nil
		}
	}

	agent, err := get[*Agent](ctx, c, "/agents/"+url.PathEscape(id), nil)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			return nil, fmt.Errorf("agent %s: %w", uuid, ErrNotFound)
		}
		return nil, err
	}
	if agent == nil {
		return nil, fmt.Errorf("agent %s: %w", uuid, ErrNotFound)
	}

	if c.cache != nil {
		_ = c.cache.agent.Set(id, agent)
	}
	return agent, nil
}

// Maps lists every map.
func (c *Client) Maps(ctx context.Context) ([]*Map, error) {
	if c.cache != nil {
		if maps, ok := c.cache.maps.Get("all").Get(); ok {
			return maps, nil
		}
	}

	maps, err := get[[]*Map](ctx, c, "/maps", nil)
	if err != nil {
		return nil, err
	}
	maps = lo.Filter(maps, func(m *Map, _ int) bool { return m != nil && m.UUID != "" })
	log.Infof("catalog: got %d maps", len(maps))

	if c.cache != nil {
		_ = c.cache.maps.Set("all", maps)
	}
	return maps, nil
}

func get[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	var zero T

	u := strings.TrimSuffix(c.BaseURL, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	log.Debugf("catalog: GET %s", u)
	resp, err := network.Get(ctx, c.HTTP, u)
	if err != nil {
		log.Error(err)
		return zero, fmt.Errorf("catalog %s: %w", path, err)
	}
	defer util.Ignore(resp.Body.Close)

	var body envelope[T]
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, &StatusError{Code: resp.StatusCode, Message: body.Error}
	}
	if decodeErr != nil {
		return zero, fmt.Errorf("catalog %s: decode: %w", path, decodeErr)
	}

	return body.Data, nil
}
