package ui

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given an empty notifier", t, func() {
		var m Model

		Convey("The view is unchanged", func() {
			So(m.View("body"), ShouldEqual, "body")
		})

		Convey("A notification is shown and cleared by its own timer", func() {
			cmd := m.Update(Notification{Text: "relay changed", Level: Success})
			So(cmd, ShouldNotBeNil)
			So(m.Text(), ShouldEqual, "relay changed")
			So(m.View("a\nb"), ShouldContainSubstring, "relay changed")
			So(m.View("a\nb"), ShouldStartWith, "a\nb  ")

			m.Update(clearMsg{id: m.id})
			So(m.Text(), ShouldBeEmpty)
		})

		Convey("A stale timer does not clear a newer notification", func() {
			m.Update(Notification{Text: "first"})
			stale := m.id
			m.Update(Notification{Text: "second", Level: Error})

			m.Update(clearMsg{id: stale})
			So(m.Text(), ShouldEqual, "second")
		})

		Convey("Notify wraps the message in a command", func() {
			msg := Notify("hi", Warning)()
			So(msg, ShouldResemble, Notification{Text: "hi", Level: Warning})
		})
	})
}
