package events

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// NoticeKind discriminates engine output notices.
type NoticeKind int

const (
	NoticeScore NoticeKind = iota
	NoticeLives
	NoticeStreak
	NoticeFeedback
	NoticeEnded
)

// Notice is a single engine output event. All notices share one event type
// so the queue drains in exactly the order transitions emitted them ("life
// lost" is always observed before "session ended" within a tick).
type Notice struct {
	Kind       NoticeKind
	Score      int
	Lives      int
	Streak     int
	Multiplier int
	X, Y       float64
	Text       string
}

var Notices = events.NewEventType[Notice]()

// Publish queues a notice on the world. Drained by the engine at the end of
// the tick via ProcessAll.
func Publish(w donburi.World, n Notice) {
	Notices.Publish(w, n)
}

// ProcessAll drains every queued notice into its subscribers, in order.
func ProcessAll(w donburi.World) {
	events.ProcessAllEvents(w)
}
