// Package auth stores the video search API key in the system keyring.
package auth

import (
	"errors"

	"github.com/spf13/viper"
	"github.com/valtips-cli/valtips/constant"
	"github.com/valtips-cli/valtips/key"
	"github.com/zalando/go-keyring"
)

const user = "youtube-api-key"

var service = constant.App

// SetAPIKey persists the API key to the keyring.
func SetAPIKey(apiKey string) error {
	if apiKey == "" {
		return errors.New("api key is empty")
	}
	return keyring.Set(service, user, apiKey)
}

// DeleteAPIKey removes the API key from the keyring. Deleting a missing key is not an error.
func DeleteAPIKey() error {
	err := keyring.Delete(service, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

// Source describes where the active API key came from.
type Source string

const (
	SourceNone    Source = "none"
	SourceConfig  Source = "config"
	SourceKeyring Source = "keyring"
)

// APIKey resolves the key from config (file or VALTIPS_YOUTUBE_API_KEY), then the keyring.
// An empty result is not an error: searches fail closed without a key.
func APIKey() (string, Source) {
	if k := viper.GetString(key.YouTubeAPIKey); k != "" {
		return k, SourceConfig
	}

	if k, err := keyring.Get(service, user); err == nil && k != "" {
		return k, SourceKeyring
	}

	return "", SourceNone
}
