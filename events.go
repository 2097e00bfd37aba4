package sketch

import "image"

// NotificationKind identifies a canvas notification.
type NotificationKind int

const (
	// NotifyBegin is sent when a stroke or a layer drag starts.
	NotifyBegin NotificationKind = iota

	// NotifyProgress is sent after every repaint during a stroke or drag.
	// Dirty holds the repainted canvas region.
	NotifyProgress

	// NotifyFinish is sent when a stroke or drag is committed.
	NotifyFinish

	// NotifyCancel is sent when a stroke or drag is abandoned.
	NotifyCancel

	// NotifyToast carries a user-facing message in Message.
	NotifyToast

	// NotifyHistory is sent whenever undo or redo availability may have
	// changed.
	NotifyHistory
)

// String returns the notification kind name.
func (k NotificationKind) String() string {
	switch k {
	case NotifyBegin:
		return "Begin"
	case NotifyProgress:
		return "Progress"
	case NotifyFinish:
		return "Finish"
	case NotifyCancel:
		return "Cancel"
	case NotifyToast:
		return "Toast"
	case NotifyHistory:
		return "History"
	default:
		return "Unknown"
	}
}

// Notification is a typed event sent from the canvas to the host.
type Notification struct {
	Kind    NotificationKind
	Layer   LayerID         // layer the event concerns, if any
	Dirty   image.Rectangle // canvas region to redraw, for NotifyProgress and NotifyFinish
	Message string          // for NotifyToast
}

// Listener receives canvas notifications. Notify is called synchronously
// from the canvas method that caused the event and must not call back into
// the canvas.
type Listener interface {
	Notify(n Notification)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(n Notification)

// Notify calls f(n).
func (f ListenerFunc) Notify(n Notification) {
	f(n)
}

// ChanListener forwards notifications to a channel. Notifications are
// dropped when the channel is full, so a slow consumer never blocks input
// handling.
type ChanListener chan Notification

// Notify sends n without blocking.
func (ch ChanListener) Notify(n Notification) {
	select {
	case ch <- n:
	default:
	}
}

// Toast messages.
const (
	msgLastLayer   = "Cannot delete the last layer"
	msgLayerHidden = "Current layer is hidden"
)
