// Package network provides the HTTP client shared by the catalog and video search clients.
package network

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/viper"
	"github.com/valtips-cli/valtips/constant"
	"github.com/valtips-cli/valtips/key"
)

// Client is shared across the application so connections are pooled.
var Client = &http.Client{
	Timeout:   30 * time.Second,
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 20
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 20 * time.Second
	return t
}

// Setup applies network.timeout_seconds to Client.
func Setup() {
	if seconds := viper.GetInt(key.NetworkTimeoutSeconds); seconds > 0 {
		Client.Timeout = time.Duration(seconds) * time.Second
	}
}

// Get issues a JSON GET request with the application User-Agent.
func Get(ctx context.Context, client *http.Client, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "application/json")

	if client == nil {
		client = Client
	}
	return client.Do(req)
}
