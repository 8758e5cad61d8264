package platform

import (
	"fmt"
	"sync"

	"github.com/1broseidon/dragzone/internal/geom"
)

// StaticBackend is a Backend with a single fixed window. It stands in for a
// window system when the width is given on the command line, and records
// what was applied so callers can inspect it.
type StaticBackend struct {
	mu       sync.Mutex
	width    int
	scale    float64
	applied  [][]geom.Rect
	onResize func(int)
	onClosed func()
	quit     chan struct{}
	quitOnce sync.Once
}

var _ Backend = (*StaticBackend)(nil)

// StaticWindow is the only window a StaticBackend knows.
const StaticWindow WindowID = 1

func NewStaticBackend(width int, scale float64) *StaticBackend {
	if scale <= 0 {
		scale = 1
	}
	return &StaticBackend{
		width: width,
		scale: scale,
		quit:  make(chan struct{}),
	}
}

func (b *StaticBackend) ActiveWindow() (WindowID, error) {
	return StaticWindow, nil
}

func (b *StaticBackend) FindWindow(title string) (WindowID, error) {
	return StaticWindow, nil
}

func (b *StaticBackend) check(windowID WindowID) error {
	if windowID != StaticWindow {
		return fmt.Errorf("unknown window 0x%x", uint32(windowID))
	}
	return nil
}

func (b *StaticBackend) ContentWidth(windowID WindowID) (int, error) {
	if err := b.check(windowID); err != nil {
		return 0, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, nil
}

func (b *StaticBackend) ScaleFactor(windowID WindowID) (float64, error) {
	if err := b.check(windowID); err != nil {
		return 1, err
	}
	return b.scale, nil
}

func (b *StaticBackend) ApplyDragZones(windowID WindowID, zones []geom.Rect) error {
	if err := b.check(windowID); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.applied = append(b.applied, append([]geom.Rect(nil), zones...))
	return nil
}

// Applied returns every zone set passed to ApplyDragZones, oldest first.
func (b *StaticBackend) Applied() [][]geom.Rect {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([][]geom.Rect(nil), b.applied...)
}

func (b *StaticBackend) WatchResize(windowID WindowID, onResize func(width int), onClosed func()) error {
	if err := b.check(windowID); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onResize = onResize
	b.onClosed = onClosed
	return nil
}

// Watching reports whether a resize callback is registered.
func (b *StaticBackend) Watching() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.onResize != nil
}

// Resize changes the window width and fires the resize callback.
func (b *StaticBackend) Resize(width int) {
	b.mu.Lock()
	b.width = width
	fn := b.onResize
	b.mu.Unlock()
	if fn != nil {
		fn(width)
	}
}

// CloseWindow fires the closed callback.
func (b *StaticBackend) CloseWindow() {
	b.mu.Lock()
	fn := b.onClosed
	b.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (b *StaticBackend) EventLoop() {
	<-b.quit
}

func (b *StaticBackend) Quit() {
	b.quitOnce.Do(func() { close(b.quit) })
}

func (b *StaticBackend) Close() {
	b.Quit()
}
