package soft

import (
	"log/slog"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gogpu/gputypes"
	"github.com/vkngwrapper/pacer/gpu"
)

// PresentCall records the arguments of one Surface.Present call
type PresentCall struct {
	SyncInterval int
	Flags        gpu.PresentFlags
	BackBuffer   int
}

// Surface is a headless gpu.Surface that rotates through its back buffers on every present
type Surface struct {
	device *Device
	format gputypes.TextureFormat

	mutex       sync.Mutex
	width       int
	height      int
	backBuffers []gpu.Handle
	current     int
	presents    []PresentCall
}

var _ gpu.Surface = &Surface{}

// NewSurface creates a surface with bufferCount back buffers of the given size
func (d *Device) NewSurface(bufferCount, width, height int, format gputypes.TextureFormat) (*Surface, error) {
	surface := &Surface{device: d, format: format}

	err := surface.Resize(bufferCount, width, height)
	if err != nil {
		return nil, err
	}

	return surface, nil
}

func (s *Surface) Present(syncInterval int, flags gpu.PresentFlags) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if syncInterval < 0 || syncInterval > 4 {
		return errors.Newf("sync interval %d is out of range", syncInterval)
	}
	if syncInterval > 0 && flags&gpu.PresentAllowTearing != 0 {
		return errors.New("tearing may only be allowed for immediate presents")
	}

	s.presents = append(s.presents, PresentCall{SyncInterval: syncInterval, Flags: flags, BackBuffer: s.current})
	s.current = (s.current + 1) % len(s.backBuffers)
	return nil
}

// Presents returns every present call made so far
func (s *Surface) Presents() []PresentCall {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return append([]PresentCall(nil), s.presents...)
}

func (s *Surface) Resize(bufferCount, width, height int) error {
	if bufferCount < 1 {
		return errors.Newf("buffer count must be at least 1, but was %d", bufferCount)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.device.logger.Debug("Surface::Resize", slog.Int("Width", width), slog.Int("Height", height))

	var releaseErr error
	for _, backBuffer := range s.backBuffers {
		releaseErr = errors.CombineErrors(releaseErr, s.device.Release(backBuffer))
	}
	s.backBuffers = nil
	if releaseErr != nil {
		return releaseErr
	}

	for i := 0; i < bufferCount; i++ {
		backBuffer, err := s.device.CreateTexture(gpu.TextureDescriptor{
			Width:     width,
			Height:    height,
			MipLevels: 1,
			Format:    s.format,
			Usage:     gpu.TextureUsageRenderTarget,
		}, gpu.ResourceStatePresent)
		if err != nil {
			return errors.Wrapf(err, "back buffer %d", i)
		}
		s.backBuffers = append(s.backBuffers, backBuffer)
	}

	s.width = width
	s.height = height
	s.current = 0
	return nil
}

func (s *Surface) Width() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.width
}

func (s *Surface) Height() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.height
}

func (s *Surface) Format() gputypes.TextureFormat {
	return s.format
}

func (s *Surface) CurrentBackBufferIndex() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.current
}

func (s *Surface) BackBuffer(index int) gpu.Handle {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.backBuffers[index]
}

func (s *Surface) Destroy() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, backBuffer := range s.backBuffers {
		_ = s.device.Release(backBuffer)
	}
	s.backBuffers = nil
}
