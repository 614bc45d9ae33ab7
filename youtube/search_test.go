package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

const twoItems = `{
  "nextPageToken": "CAEQAA",
  "items": [
    {"id": {"videoId": "abc"}, "snippet": {"title": "Jett Ascent Lineup", "thumbnails": {"medium": {"url": "https://i.ytimg.com/vi/abc/mqdefault.jpg"}}}},
    {"id": {"videoId": "xyz"}, "snippet": {"title": "Jett tips", "thumbnails": {"medium": {"url": "https://i.ytimg.com/vi/xyz/mqdefault.jpg"}}}}
  ]
}`

type recorder struct {
	mu      sync.Mutex
	queries []url.Values
	status  int
	body    string
}

func (r *recorder) server() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r.mu.Lock()
		defer r.mu.Unlock()

		r.queries = append(r.queries, req.URL.Query())
		if req.URL.Path != "/search" {
			http.NotFound(w, req)
			return
		}
		w.WriteHeader(r.status)
		_, _ = fmt.Fprint(w, r.body)
	}))
}

func (r *recorder) respond(status int, body string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.status, r.body = status, body
}

func (r *recorder) sent() []url.Values {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.queries
}

func testClient(baseURL string) *Client {
	return &Client{
		BaseURL:     baseURL,
		APIKey:      "test-key",
		PageSize:    30,
		TopicSuffix: "valorant tips shorts",
		HTTP:        http.DefaultClient,
	}
}

func TestSearch(t *testing.T) {
	Convey("Given a search endpoint", t, func() {
		rec := &recorder{status: http.StatusOK, body: twoItems}
		server := rec.server()
		defer server.Close()
		client := testClient(server.URL)
		ctx := context.Background()

		Convey("The request carries the documented parameters", func() {
			_, err := client.Search(ctx, Query{Entity: "Jett", Context: "Ascent"})
			So(err, ShouldBeNil)
			So(rec.sent(), ShouldHaveLength, 1)

			q := rec.sent()[0]
			So(q.Get("q"), ShouldEqual, "Jett Ascent valorant tips shorts")
			So(q.Get("part"), ShouldEqual, "snippet")
			So(q.Get("type"), ShouldEqual, "video")
			So(q.Get("maxResults"), ShouldEqual, "30")
			So(q.Get("key"), ShouldEqual, "test-key")
			So(q.Has("pageToken"), ShouldBeFalse)
		})

		Convey("The cursor is passed through unmodified", func() {
			_, err := client.Search(ctx, Query{Entity: "Jett", Context: "Ascent", PageToken: mo.Some("CAEQAA+/=")})
			So(err, ShouldBeNil)
			So(rec.sent()[0].Get("pageToken"), ShouldEqual, "CAEQAA+/=")
		})

		Convey("Items are mapped in order and the cursor is exposed", func() {
			page := client.SearchVideos(ctx, "Jett", "Ascent", mo.None[string]())
			So(page.Videos, ShouldResemble, []Video{
				{ID: "abc", Title: "Jett Ascent Lineup", Thumbnail: "https://i.ytimg.com/vi/abc/mqdefault.jpg"},
				{ID: "xyz", Title: "Jett tips", Thumbnail: "https://i.ytimg.com/vi/xyz/mqdefault.jpg"},
			})
			So(page.NextPageToken, ShouldResemble, mo.Some("CAEQAA"))
			So(page.HasMore(), ShouldBeTrue)
		})

		Convey("Items missing a required field are skipped", func() {
			rec.respond(http.StatusOK, `{"items": [
				{"id": {"videoId": "one"}, "snippet": {"title": "First", "thumbnails": {"medium": {"url": "u1"}}}},
				{"id": {"kind": "youtube#channel"}, "snippet": {"title": "Channel", "thumbnails": {"medium": {"url": "u2"}}}},
				{"id": {"videoId": "three"}, "snippet": {"title": "Third", "thumbnails": {"medium": {"url": "u3"}}}},
				{"id": {"videoId": "four"}, "snippet": {"title": "No thumb", "thumbnails": {}}}
			]}`)
			page := client.SearchVideos(ctx, "Jett", "Ascent", mo.None[string]())
			So(page.Videos, ShouldHaveLength, 2)
			So(page.Videos[0].ID, ShouldEqual, "one")
			So(page.Videos[1].ID, ShouldEqual, "three")
			So(page.HasMore(), ShouldBeFalse)
		})

		Convey("A non-success status is a StatusError and an empty page", func() {
			rec.respond(http.StatusForbidden, `{"error": {"code": 403, "message": "quotaExceeded"}}`)

			_, err := client.Search(ctx, Query{Entity: "Jett", Context: "Ascent"})
			var statusErr *StatusError
			So(errors.As(err, &statusErr), ShouldBeTrue)
			So(statusErr.Code, ShouldEqual, http.StatusForbidden)
			So(statusErr.Message, ShouldEqual, "quotaExceeded")

			page := client.SearchVideos(ctx, "Jett", "Ascent", mo.None[string]())
			So(page.Videos, ShouldBeEmpty)
			So(page.Videos, ShouldNotBeNil)
			So(page.NextPageToken.IsAbsent(), ShouldBeTrue)
		})

		Convey("A body that is not JSON is malformed", func() {
			rec.respond(http.StatusOK, `<html>`)
			_, err := client.Search(ctx, Query{Entity: "Jett", Context: "Ascent"})
			So(errors.Is(err, ErrMalformedResponse), ShouldBeTrue)
		})

		Convey("A body without items is malformed", func() {
			rec.respond(http.StatusOK, `{"kind": "youtube#searchListResponse"}`)
			_, err := client.Search(ctx, Query{Entity: "Jett", Context: "Ascent"})
			So(errors.Is(err, ErrMalformedResponse), ShouldBeTrue)
			So(client.SearchVideos(ctx, "Jett", "Ascent", mo.None[string]()).Videos, ShouldBeEmpty)
		})

		Convey("Without an API key nothing is sent", func() {
			client.APIKey = ""
			_, err := client.Search(ctx, Query{Entity: "Jett", Context: "Ascent"})
			So(err, ShouldEqual, ErrMissingAPIKey)
			So(rec.sent(), ShouldBeEmpty)
			So(client.SearchVideos(ctx, "Jett", "Ascent", mo.None[string]()).Videos, ShouldBeEmpty)
		})

		Convey("Blank names are rejected", func() {
			_, err := client.Search(ctx, Query{Entity: " ", Context: "Ascent"})
			So(errors.Is(err, ErrInvalidQuery), ShouldBeTrue)
			_, err = client.Search(ctx, Query{Entity: "Jett"})
			So(errors.Is(err, ErrInvalidQuery), ShouldBeTrue)
			So(rec.sent(), ShouldBeEmpty)
		})

		Convey("The page size is clamped to the API maximum", func() {
			client.PageSize = 500
			_, _ = client.Search(ctx, Query{Entity: "Jett", Context: "Ascent"})
			So(rec.sent()[0].Get("maxResults"), ShouldEqual, "50")
		})
	})

	Convey("Given an unreachable endpoint", t, func() {
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()
		client := testClient(server.URL)

		Convey("SearchVideos returns an empty page", func() {
			page := client.SearchVideos(context.Background(), "Jett", "Ascent", mo.None[string]())
			So(page.Videos, ShouldBeEmpty)
			So(page.HasMore(), ShouldBeFalse)
		})
	})
}

func TestVideo(t *testing.T) {
	Convey("Video helpers", t, func() {
		v := Video{ID: "abc", Title: "Jett tips"}
		So(v.URL(), ShouldEqual, "https://www.youtube.com/shorts/abc")
		So(v.String(), ShouldEqual, "Jett tips")
		So(Query{Entity: "Jett", Context: "Ascent"}.Phrase(""), ShouldEqual, "Jett Ascent")
	})
}
