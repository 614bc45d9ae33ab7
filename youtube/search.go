package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/valtips-cli/valtips/auth"
	"github.com/valtips-cli/valtips/key"
	"github.com/valtips-cli/valtips/log"
	"github.com/valtips-cli/valtips/network"
	"github.com/valtips-cli/valtips/util"
)

const maxPageSize = 50

// Client calls the search endpoint. The zero value is not usable; see NewClient.
type Client struct {
	BaseURL     string
	APIKey      string
	PageSize    int
	TopicSuffix string
	HTTP        *http.Client
}

// NewClient builds a client from configuration and the keyring.
func NewClient() *Client {
	apiKey, _ := auth.APIKey()
	return &Client{
		BaseURL:     viper.GetString(key.YouTubeBaseURL),
		APIKey:      apiKey,
		PageSize:    viper.GetInt(key.YouTubePageSize),
		TopicSuffix: viper.GetString(key.YouTubeTopicSuffix),
		HTTP:        network.Client,
	}
}

type searchResponse struct {
	Items         *[]searchItem `json:"items"`
	NextPageToken string        `json:"nextPageToken"`
}

type searchItem struct {
	ID struct {
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet struct {
		Title      string `json:"title"`
		Thumbnails struct {
			Medium struct {
				URL string `json:"url"`
			} `json:"medium"`
		} `json:"thumbnails"`
	} `json:"snippet"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// URL builds the request URL for q.
func (c *Client) URL(q Query) (string, error) {
	u, err := url.Parse(strings.TrimSuffix(c.BaseURL, "/") + "/search")
	if err != nil {
		return "", err
	}

	values := url.Values{}
	values.Set("part", "snippet")
	values.Set("q", q.Phrase(c.TopicSuffix))
	values.Set("type", "video")
	values.Set("maxResults", strconv.Itoa(c.pageSize()))
	values.Set("key", c.APIKey)
	if token, ok := q.PageToken.Get(); ok {
		values.Set("pageToken", token)
	}
	u.RawQuery = values.Encode()

	return u.String(), nil
}

func (c *Client) pageSize() int {
	return lo.Clamp(c.PageSize, 1, maxPageSize)
}

// Search fetches one page and reports every failure as an error.
// Items missing an id, title or medium thumbnail are skipped.
func (c *Client) Search(ctx context.Context, q Query) (*Page, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if c.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	rawURL, err := c.URL(q)
	if err != nil {
		return nil, err
	}

	log.Infof("youtube: searching %q (page token: %s)", q.Phrase(c.TopicSuffix), q.PageToken.OrElse("none"))
	resp, err := network.Get(ctx, c.HTTP, rawURL)
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return nil, &StatusError{Code: resp.StatusCode, Message: body.Error.Message}
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if body.Items == nil {
		return nil, fmt.Errorf("%w: no items field", ErrMalformedResponse)
	}

	page := &Page{
		Videos:        mapItems(*body.Items),
		NextPageToken: mo.EmptyableToOption(body.NextPageToken),
	}
	log.Infof("youtube: got %d of %d items, more: %t", len(page.Videos), len(*body.Items), page.HasMore())
	return page, nil
}

func mapItems(items []searchItem) []Video {
	return lo.FilterMap(items, func(item searchItem, i int) (Video, bool) {
		video := Video{
			ID:        item.ID.VideoID,
			Title:     item.Snippet.Title,
			Thumbnail: item.Snippet.Thumbnails.Medium.URL,
		}
		if video.ID == "" || video.Title == "" || video.Thumbnail == "" {
			log.Debugf("youtube: skipping malformed item %d", i)
			return Video{}, false
		}
		return video, true
	})
}

// SearchVideos fetches one page for an agent/map pair.
// Every failure yields an empty page without a cursor; use Search to tell failures apart.
func (c *Client) SearchVideos(ctx context.Context, entityName, contextName string, pageToken mo.Option[string]) *Page {
	page, err := c.Search(ctx, Query{Entity: entityName, Context: contextName, PageToken: pageToken})
	if err != nil {
		log.Errorf("youtube: %v", err)
		return emptyPage()
	}
	return page
}
