package entity

// TextDirection selects the layout direction for rendered notification text.
type TextDirection int

const (
	// DirectionLeftToRight lays text out left to right.
	DirectionLeftToRight TextDirection = iota
	// DirectionRightToLeft lays text out right to left.
	DirectionRightToLeft
)

// SessionHandle is an opaque correlation token identifying the page or worker
// session a request originated from. It is supplied by the caller; this
// package never inspects it.
type SessionHandle string

// NotificationRef is the identity tying a shown notification back to its
// originating IPC session. Slot distinguishes multiple display surfaces
// within one session; NotificationID is the renderer-assigned id.
type NotificationRef struct {
	Session        SessionHandle
	Slot           int
	NotificationID int
	Worker         bool
}

// Notification is a displayable notification addressed to the presentation
// collaborator. ContentURL carries either a page-supplied URL or a rendered
// data: URL; ReplaceID collapses successive notifications with the same tag.
type Notification struct {
	Origin      Origin
	ContentURL  string
	DisplayName string
	ReplaceID   string
	Ref         NotificationRef
}
