// Package youtube searches the YouTube Data API for short agent/map tip videos.
package youtube

import (
	"fmt"
	"strings"

	"github.com/samber/mo"
)

// Video is a normalized search result.
type Video struct {
	// ID is the YouTube video id.
	ID string `json:"id" jsonschema:"description=YouTube video id."`
	// Title is the video title as returned by the API.
	Title string `json:"title" jsonschema:"description=Video title."`
	// Thumbnail is the URL of the medium-resolution thumbnail.
	Thumbnail string `json:"thumbnail" jsonschema:"description=URL of the medium resolution thumbnail."`
}

// URL returns the shorts player link for the video.
func (v Video) URL() string {
	return "https://www.youtube.com/shorts/" + v.ID
}

func (v Video) String() string {
	return v.Title
}

// Page is one page of search results.
// An absent NextPageToken means this is the last page for the query.
type Page struct {
	Videos        []Video           `json:"videos"`
	NextPageToken mo.Option[string] `json:"nextPageToken" jsonschema:"type=string,description=Opaque cursor for the next page. Absent on the last page."`
}

// HasMore reports whether another page can be requested.
func (p *Page) HasMore() bool {
	return p != nil && p.NextPageToken.IsPresent()
}

func emptyPage() *Page {
	return &Page{Videos: []Video{}, NextPageToken: mo.None[string]()}
}

// Query identifies one page of a search: the agent, the map and an optional cursor.
type Query struct {
	Entity    string
	Context   string
	PageToken mo.Option[string]
}

// Validate rejects blank agent or map names.
func (q Query) Validate() error {
	if strings.TrimSpace(q.Entity) == "" {
		return fmt.Errorf("%w: agent name is empty", ErrInvalidQuery)
	}
	if strings.TrimSpace(q.Context) == "" {
		return fmt.Errorf("%w: map name is empty", ErrInvalidQuery)
	}
	return nil
}

// Phrase joins the agent, the map and the topic suffix into the free-text search phrase.
func (q Query) Phrase(suffix string) string {
	parts := []string{q.Entity, q.Context}
	if suffix = strings.TrimSpace(suffix); suffix != "" {
		parts = append(parts, suffix)
	}
	return strings.Join(parts, " ")
}
