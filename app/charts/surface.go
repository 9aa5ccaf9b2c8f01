// Package charts renders the dashboard's chart surfaces as PNG images and
// owns their replace lifecycle: a surface holds at most one live handle, and
// installing a new chart always disposes the previous one first.
package charts

// Handle is one rendered chart. The bytes are immutable; once the handle is
// disposed they are gone for good and a fresh render must produce a new one.
type Handle struct {
	png      []byte
	disposed bool
}

func newHandle(png []byte) *Handle {
	return &Handle{png: png}
}

// PNG returns the rendered image, or nil once the handle has been disposed.
func (h *Handle) PNG() []byte {
	if h == nil || h.disposed {
		return nil
	}
	return h.png
}

func (h *Handle) Disposed() bool {
	return h == nil || h.disposed
}

// Dispose releases the handle. Safe to call more than once.
func (h *Handle) Dispose() {
	if h == nil {
		return
	}
	h.disposed = true
	h.png = nil
}

// Surface is one slot a chart can live in. Surfaces are owned by the
// dashboard state container, which serializes all access; they do no
// locking of their own.
type Surface struct {
	mounted    bool
	handle     *Handle
	generation uint64
}

func NewSurface() *Surface {
	return &Surface{mounted: true}
}

func (s *Surface) Mounted() bool {
	return s.mounted
}

// Handle returns the live handle, or nil when the surface is empty or
// unmounted.
func (s *Surface) Handle() *Handle {
	if !s.mounted {
		return nil
	}
	return s.handle
}

// Generation counts successful renders. Lets callers observe that a
// re-render swapped the handle even when the image happens to look alike.
func (s *Surface) Generation() uint64 {
	return s.generation
}

func (s *Surface) Mount() {
	s.mounted = true
}

// Unmount hides the surface and releases whatever it held. Handles never
// outlive their surface.
func (s *Surface) Unmount() {
	s.mounted = false
	s.clear()
}

// Render replaces the surface's chart with a freshly built one. The old
// handle is disposed before build runs, so neither success nor failure can
// leave two live handles or a stale one. Rendering an unmounted surface is
// a no-op. On build failure the surface stays empty and the error is
// returned for the caller to log.
func (s *Surface) Render(build func() ([]byte, error)) error {
	if !s.mounted {
		return nil
	}

	s.clear()

	png, err := build()
	if err != nil {
		return err
	}

	s.handle = newHandle(png)
	s.generation++
	return nil
}

func (s *Surface) clear() {
	if s.handle != nil {
		s.handle.Dispose()
		s.handle = nil
	}
}
