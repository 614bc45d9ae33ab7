package valorant

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/valtips-cli/valtips/filesystem"
)

const agentsBody = `{"status": 200, "data": [
  {"uuid": "add6443a-41bd-e414-f6ad-e58d267f4e95", "displayName": "Jett", "isPlayableCharacter": true,
   "role": {"uuid": "dbe8757e-9e92-4ed4-b39f-9dfc589691d4", "displayName": "Duelist"}},
  {"uuid": "", "displayName": "Broken"},
  {"uuid": "569fdd95-4d10-43ab-ca70-79becc718b46", "displayName": "Sage", "isPlayableCharacter": true}
]}`

const mapsBody = `{"status": 200, "data": [
  {"uuid": "7eaecc1b-4337-bbf6-6ab9-04b8f06b3319", "displayName": "Ascent", "splash": "https://media.example/ascent.png"},
  {"uuid": "2c9d57ec-4431-9c5e-2939-8f9ef6dd5cba", "displayName": "Bind"}
]}`

const jettBody = `{"status": 200, "data":
  {"uuid": "add6443a-41bd-e414-f6ad-e58d267f4e95", "displayName": "Jett", "description": "Representing her home country of South Korea."}}`

type catalogServer struct {
	hits     atomic.Int32
	playable atomic.Value
}

func (s *catalogServer) start() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)

		switch r.URL.Path {
		case "/agents":
			s.playable.Store(r.URL.Query().Get("isPlayableCharacter"))
			_, _ = fmt.Fprint(w, agentsBody)
		case "/agents/" + jettID:
			_, _ = fmt.Fprint(w, jettBody)
		case "/maps":
			_, _ = fmt.Fprint(w, mapsBody)
		case "/broken":
			_, _ = fmt.Fprint(w, "<html>")
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = fmt.Fprint(w, `{"status": 404, "error": "the requested uuid was not found"}`)
		}
	}))
}

func TestClient(t *testing.T) {
	Convey("Given a catalog server", t, func() {
		srv := &catalogServer{}
		server := srv.start()
		defer server.Close()

		client := &Client{BaseURL: server.URL + "/", HTTP: http.DefaultClient}
		ctx := context.Background()

		Convey("Agents asks for playable characters and drops entries without uuid", func() {
			agents, err := client.Agents(ctx)
			So(err, ShouldBeNil)
			So(srv.playable.Load(), ShouldEqual, "true")
			So(names(agents), ShouldResemble, []string{"Jett", "Sage"})
			So(agents[0].RoleName(), ShouldEqual, "Duelist")
			So(agents[1].RoleName(), ShouldEqual, "")
		})

		Convey("Agent fetches one agent by uuid", func() {
			agent, err := client.Agent(ctx, jettID)
			So(err, ShouldBeNil)
			So(agent.Description, ShouldContainSubstring, "South Korea")
		})

		Convey("An unknown agent is ErrNotFound", func() {
			_, err := client.Agent(ctx, sageID)
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})

		Convey("Maps keeps catalog order", func() {
			maps, err := client.Maps(ctx)
			So(err, ShouldBeNil)
			So(len(maps), ShouldEqual, 2)
			So(maps[0].DisplayName, ShouldEqual, "Ascent")
			So(maps[0].Splash, ShouldEqual, "https://media.example/ascent.png")
		})

		Convey("Non-2xx statuses become a StatusError", func() {
			_, err := get[[]*Map](ctx, client, "/missing", nil)
			var statusErr *StatusError
			So(errors.As(err, &statusErr), ShouldBeTrue)
			So(statusErr.Code, ShouldEqual, http.StatusNotFound)
			So(statusErr.Error(), ShouldContainSubstring, "was not found")
		})

		Convey("A body that is not JSON is an error", func() {
			_, err := get[[]*Map](ctx, client, "/broken", nil)
			So(err, ShouldNotBeNil)
		})

		Convey("With a cache, repeated reads stay local", func() {
			filesystem.SetMemMapFs()
			client.WithCache("/cache/catalog", time.Hour)

			_, err := client.Agents(ctx)
			So(err, ShouldBeNil)
			_, err = client.Maps(ctx)
			So(err, ShouldBeNil)
			So(srv.hits.Load(), ShouldEqual, 2)

			agents, err := client.Agents(ctx)
			So(err, ShouldBeNil)
			So(names(agents), ShouldResemble, []string{"Jett", "Sage"})

			_, err = client.Maps(ctx)
			So(err, ShouldBeNil)

			Convey("Listing agents also fills the single agent cache", func() {
				agent, err := client.Agent(ctx, sageID)
				So(err, ShouldBeNil)
				So(agent.DisplayName, ShouldEqual, "Sage")
				So(srv.hits.Load(), ShouldEqual, 2)
			})

			So(srv.hits.Load(), ShouldEqual, 2)
		})
	})

	Convey("An unreachable catalog is an error", t, func() {
		client := &Client{BaseURL: "http://127.0.0.1:1", HTTP: http.DefaultClient}
		_, err := client.Maps(context.Background())
		So(err, ShouldNotBeNil)
	})
}
