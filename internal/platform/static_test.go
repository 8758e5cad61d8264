package platform

import (
	"testing"

	"github.com/1broseidon/dragzone/internal/geom"
)

func TestStaticBackend_RecordsAppliedZones(t *testing.T) {
	b := NewStaticBackend(640, 0)
	if scale, _ := b.ScaleFactor(StaticWindow); scale != 1 {
		t.Fatalf("expected default scale 1, got %v", scale)
	}
	zones := []geom.Rect{{X: 0, Y: 0, Width: 640, Height: 32}}
	if err := b.ApplyDragZones(StaticWindow, zones); err != nil {
		t.Fatalf("apply: %v", err)
	}
	zones[0].Width = 1
	applied := b.Applied()
	if len(applied) != 1 || applied[0][0].Width != 640 {
		t.Fatalf("applied zones must be copied, got %v", applied)
	}
}

func TestStaticBackend_UnknownWindow(t *testing.T) {
	b := NewStaticBackend(640, 1)
	if _, err := b.ContentWidth(42); err == nil {
		t.Fatalf("expected error for unknown window")
	}
	if err := b.ApplyDragZones(42, nil); err == nil {
		t.Fatalf("expected error for unknown window")
	}
}

func TestStaticBackend_ResizeFiresCallback(t *testing.T) {
	b := NewStaticBackend(640, 1)
	var got int
	if err := b.WatchResize(StaticWindow, func(w int) { got = w }, nil); err != nil {
		t.Fatalf("watch: %v", err)
	}
	b.Resize(800)
	if got != 800 {
		t.Fatalf("expected callback with 800, got %d", got)
	}
	if w, _ := b.ContentWidth(StaticWindow); w != 800 {
		t.Fatalf("expected width 800, got %d", w)
	}
	b.CloseWindow() // nil onClosed must not panic
}

func TestStaticBackend_QuitUnblocksEventLoop(t *testing.T) {
	b := NewStaticBackend(640, 1)
	done := make(chan struct{})
	go func() {
		b.EventLoop()
		close(done)
	}()
	b.Quit()
	b.Quit()
	<-done
}
