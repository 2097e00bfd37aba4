package sketch

import "testing"

func TestChanListener_DropsWhenFull(t *testing.T) {
	ch := make(chan Notification, 1)
	l := ChanListener(ch)

	l.Notify(Notification{Kind: NotifyBegin, Layer: "a"})
	l.Notify(Notification{Kind: NotifyFinish, Layer: "b"})

	if len(ch) != 1 {
		t.Fatalf("len(ch) = %d, want 1", len(ch))
	}
	if n := <-ch; n.Kind != NotifyBegin || n.Layer != "a" {
		t.Errorf("received %+v, want the first notification", n)
	}
}

func TestChanListener_Unbuffered(t *testing.T) {
	ch := make(chan Notification)
	// No receiver is waiting, so every send is dropped.
	ChanListener(ch).Notify(Notification{Kind: NotifyToast})
	select {
	case n := <-ch:
		t.Errorf("unexpected notification %+v", n)
	default:
	}
}

func TestChanListener_CanvasStrokeDoesNotBlock(t *testing.T) {
	ch := make(chan Notification, 1)
	c := NewCanvas(20, 20, WithListener(ChanListener(ch)))

	// A stroke posts begin, several progress and a finish notification.
	stroke(t, c, Pt(2, 2), Pt(8, 8), Pt(15, 3))

	if len(ch) != 1 {
		t.Fatalf("len(ch) = %d, want 1", len(ch))
	}
	if n := <-ch; n.Kind != NotifyBegin {
		t.Errorf("first notification kind = %v, want NotifyBegin", n.Kind)
	}
	if c.UndoName() != "Stroke" {
		t.Errorf("UndoName = %q, want Stroke", c.UndoName())
	}
}

func TestListenerFunc(t *testing.T) {
	var got []NotificationKind
	f := ListenerFunc(func(n Notification) { got = append(got, n.Kind) })
	f.Notify(Notification{Kind: NotifyCancel})
	if len(got) != 1 || got[0] != NotifyCancel {
		t.Errorf("got %v, want [NotifyCancel]", got)
	}
}
