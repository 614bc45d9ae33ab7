package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/valtips-cli/valtips/favorites"
	"github.com/valtips-cli/valtips/key"
	"github.com/valtips-cli/valtips/valorant"
	"github.com/valtips-cli/valtips/youtube"
)

type fakeCatalog struct {
	err error
}

func (f *fakeCatalog) Agents(context.Context) ([]*valorant.Agent, error) {
	if f.err != nil {
		return nil, f.err
	}
	duelist := &valorant.Role{UUID: "duelist", DisplayName: "Duelist"}
	return []*valorant.Agent{
		{UUID: "jett", DisplayName: "Jett", Role: duelist},
		{UUID: "sage", DisplayName: "Sage", Role: &valorant.Role{UUID: "sentinel", DisplayName: "Sentinel"}},
		{UUID: "reyna", DisplayName: "Reyna", Role: duelist},
	}, nil
}

func (f *fakeCatalog) Maps(context.Context) ([]*valorant.Map, error) {
	return []*valorant.Map{{UUID: "ascent", DisplayName: "Ascent"}, {UUID: "bind", DisplayName: "Bind"}}, nil
}

type fakeSearcher struct {
	queries []youtube.Query
	err     error
}

func (f *fakeSearcher) Search(_ context.Context, q youtube.Query) (*youtube.Page, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	if q.PageToken.IsAbsent() {
		return &youtube.Page{
			Videos:        []youtube.Video{{ID: "abc", Title: "one"}, {ID: "def", Title: "two"}},
			NextPageToken: mo.Some("p2"),
		}, nil
	}
	return &youtube.Page{Videos: []youtube.Video{{ID: "xyz", Title: "three"}}}, nil
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func agentNames(b *statefulBubble) []string {
	var names []string
	for _, item := range b.agentsC.Items() {
		names = append(names, item.(*listItem).internal.(*valorant.Agent).DisplayName)
	}
	return names
}

func TestBubble(t *testing.T) {
	viper.Set(key.IconsVariant, "plain")

	Convey("Given a loaded bubble", t, func() {
		store := favorites.New(favorites.NewMemoryStorage())
		searcher := &fakeSearcher{}
		b := newBubble(&Options{Catalog: &fakeCatalog{}, Favorites: store, Searcher: searcher})
		defer b.close()
		b.resize(100, 40)

		// initial favorites snapshot
		b.Update(b.waitForFavorites()())
		b.setState(loadingState)
		b.Update(b.loadCatalog()())

		So(b.state, ShouldEqual, agentsState)
		So(agentNames(b), ShouldResemble, []string{"Jett", "Sage", "Reyna"})

		Convey("f toggles the favorite and the list is re-marked", func() {
			b.Update(keyMsg("f"))
			So(store.IsFavorite("jett"), ShouldBeTrue)

			b.Update(b.waitForFavorites()())
			So(b.agentsC.Items()[0].(*listItem).favorite, ShouldBeTrue)
			So(b.agentsC.Items()[0].(*listItem).Title(), ShouldEqual, "* Jett")

			Convey("F keeps only favorites", func() {
				b.Update(keyMsg("F"))
				So(agentNames(b), ShouldResemble, []string{"Jett"})

				b.Update(keyMsg("F"))
				So(len(agentNames(b)), ShouldEqual, 3)
			})
		})

		Convey("tab cycles through roles", func() {
			b.Update(keyMsg("tab"))
			So(agentNames(b), ShouldResemble, []string{"Jett", "Reyna"})
			b.Update(keyMsg("tab"))
			So(agentNames(b), ShouldResemble, []string{"Sage"})
			b.Update(keyMsg("tab"))
			So(len(agentNames(b)), ShouldEqual, 3)
		})

		Convey("Selecting an agent shows maps with the first one selected", func() {
			b.Update(keyMsg("enter"))
			So(b.state, ShouldEqual, mapsState)
			So(b.selectedAgent.DisplayName, ShouldEqual, "Jett")
			So(b.selectedMap.DisplayName, ShouldEqual, "Ascent")

			Convey("Selecting a map searches videos", func() {
				b.Update(keyMsg("enter"))
				So(b.state, ShouldEqual, videosState)
				So(b.busy, ShouldBeTrue)

				b.Update(b.fetchVideos(false)())
				So(b.busy, ShouldBeFalse)
				So(len(b.videosC.Items()), ShouldEqual, 2)
				So(searcher.queries[0].Entity, ShouldEqual, "Jett")
				So(searcher.queries[0].Context, ShouldEqual, "Ascent")

				Convey("Reaching the end loads the next page once", func() {
					b.videosC.Select(1)
					So(b.maybeLoadMore(), ShouldNotBeNil)
					So(b.maybeLoadMore(), ShouldBeNil)

					b.Update(b.fetchVideos(true)())
					So(len(b.videosC.Items()), ShouldEqual, 3)
					So(b.videosC.Items()[2].(*listItem).internal.(youtube.Video).ID, ShouldEqual, "xyz")
					So(b.pager.HasMore(), ShouldBeFalse)
				})

				Convey("esc goes back to maps", func() {
					b.Update(keyMsg("esc"))
					So(b.state, ShouldEqual, mapsState)
				})
			})

			Convey("A failed search can be retried", func() {
				searcher.err = errors.New("quota exceeded")
				b.Update(keyMsg("enter"))
				b.Update(b.fetchVideos(false)())
				So(b.state, ShouldEqual, errorState)
				So(b.lastError.Error(), ShouldContainSubstring, "quota")

				searcher.err = nil
				_, cmd := b.Update(keyMsg("r"))
				So(cmd, ShouldNotBeNil)
				So(b.state, ShouldEqual, videosState)

				b.Update(b.fetchVideos(false)())
				So(len(b.videosC.Items()), ShouldEqual, 2)
			})
		})
	})

	Convey("A failing catalog shows the error state", t, func() {
		catalog := &fakeCatalog{err: errors.New("offline")}
		b := newBubble(&Options{Catalog: catalog, Searcher: &fakeSearcher{}})
		b.setState(loadingState)

		b.Update(b.loadCatalog()())
		So(b.state, ShouldEqual, errorState)
		So(b.View(), ShouldContainSubstring, "offline")

		Convey("and retries into loading", func() {
			catalog.err = nil
			b.Update(keyMsg("r"))
			So(b.state, ShouldEqual, loadingState)

			b.Update(b.loadCatalog()())
			So(b.state, ShouldEqual, agentsState)
		})
	})
}
