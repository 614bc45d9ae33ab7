package valorant

import (
	"errors"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func names(agents []*Agent) []string {
	return lo.Map(agents, func(a *Agent, _ int) string { return a.DisplayName })
}

func TestFilter(t *testing.T) {
	Convey("Given three agents", t, func() {
		agents := testAgents()
		favorite := func(id string) bool { return id == phoenixID || id == sageID }

		Convey("Zero options keep everything in order", func() {
			So(names(Filter(agents, FilterOptions{})), ShouldResemble, []string{"Jett", "Sage", "Phoenix"})
		})

		Convey("Role narrows by role uuid", func() {
			So(names(Filter(agents, FilterOptions{RoleID: duelistID})), ShouldResemble, []string{"Jett", "Phoenix"})
		})

		Convey("Name is a case-insensitive substring", func() {
			So(names(Filter(agents, FilterOptions{Name: "  PHO "})), ShouldResemble, []string{"Phoenix"})
			So(names(Filter(agents, FilterOptions{Name: "e"})), ShouldResemble, []string{"Jett", "Sage", "Phoenix"})
		})

		Convey("Favorites only composes with the other filters", func() {
			opts := FilterOptions{FavoritesOnly: true, IsFavorite: favorite, RoleID: duelistID}
			So(names(Filter(agents, opts)), ShouldResemble, []string{"Phoenix"})
			So(names(FavoriteAgents(agents, favorite)), ShouldResemble, []string{"Sage", "Phoenix"})
		})

		Convey("Favorites only without a predicate matches nothing", func() {
			So(Filter(agents, FilterOptions{FavoritesOnly: true}), ShouldBeEmpty)
		})

		Convey("An agent without a role never matches a role filter", func() {
			agents = append(agents, &Agent{UUID: "x", DisplayName: "Unknown"})
			So(names(Filter(agents, FilterOptions{RoleID: duelistID})), ShouldResemble, []string{"Jett", "Phoenix"})
		})
	})
}

func TestRoles(t *testing.T) {
	Convey("Roles are distinct in order of first appearance", t, func() {
		agents := append(testAgents(), &Agent{UUID: "x", DisplayName: "Unknown"})
		roles := Roles(agents)
		So(len(roles), ShouldEqual, 2)
		So(roles[0].DisplayName, ShouldEqual, "Duelist")
		So(roles[1].DisplayName, ShouldEqual, "Sentinel")

		Convey("FindRole matches by name or uuid", func() {
			role, err := FindRole(agents, "sentinel")
			So(err, ShouldBeNil)
			So(role.UUID, ShouldEqual, sentinelID)

			role, err = FindRole(agents, duelistID)
			So(err, ShouldBeNil)
			So(role.DisplayName, ShouldEqual, "Duelist")

			_, err = FindRole(agents, "healer")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestFind(t *testing.T) {
	Convey("Given agents and maps", t, func() {
		agents, maps := testAgents(), testMaps()

		Convey("A uuid resolves exactly", func() {
			agent, err := FindAgent(agents, sageID)
			So(err, ShouldBeNil)
			So(agent.DisplayName, ShouldEqual, "Sage")
		})

		Convey("An unknown uuid is not guessed", func() {
			_, err := FindAgent(agents, "00000000-0000-0000-0000-000000000000")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})

		Convey("Names match case-insensitively", func() {
			m, err := FindMap(maps, "ASCENT")
			So(err, ShouldBeNil)
			So(m.UUID, ShouldEqual, ascentID)
		})

		Convey("A small typo finds the closest name", func() {
			agent, err := FindAgent(agents, "pheonix")
			So(err, ShouldBeNil)
			So(agent.UUID, ShouldEqual, phoenixID)
		})

		Convey("A distant name is not found", func() {
			_, err := FindAgent(agents, "brimstone")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})

		Convey("Empty input and empty lists are not found", func() {
			_, err := FindAgent(agents, "  ")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)

			_, err = FindMap(nil, "bind")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})

		Convey("DefaultMap is the first map", func() {
			m, ok := DefaultMap(maps)
			So(ok, ShouldBeTrue)
			So(m.DisplayName, ShouldEqual, "Ascent")

			_, ok = DefaultMap(nil)
			So(ok, ShouldBeFalse)
		})
	})
}
