package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/pacer/frame"
)

func TestParseEmptyUsesDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, 64*1024*1024, cfg.Options.UploadBufferSize)
	require.Equal(t, 3, cfg.Options.BufferCount)
	require.Equal(t, 65536, cfg.Options.DescriptorHeapCapacity)
}

func TestParseEveryKey(t *testing.T) {
	cfg, err := Parse([]byte(`
upload_buffer_size = 1048576
buffer_count = 2
descriptor_heap_capacity = 1024
render_target_heap_capacity = 16
depth_stencil_heap_capacity = 8
externally_synchronized = true
log_level = "debug"
`))
	require.NoError(t, err)
	require.Equal(t, frame.CreateOptions{
		Flags:                    frame.CreateExternallySynchronized,
		BufferCount:              2,
		UploadBufferSize:         1048576,
		DescriptorHeapCapacity:   1024,
		RenderTargetHeapCapacity: 16,
		DepthStencilHeapCapacity: 8,
	}, cfg.Options)
	require.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("buffer_count = 2\nframes_in_flight = 3\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "frames_in_flight")
}

func TestParseRejectsInvalidValues(t *testing.T) {
	for _, doc := range []string{
		"buffer_count = -1",
		"upload_buffer_size = 1000",
		"upload_buffer_size = -256",
		"render_target_heap_capacity = -1",
		`log_level = "loud"`,
		"buffer_count = \"three\"",
	} {
		_, err := Parse([]byte(doc))
		require.Error(t, err, doc)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pacer.toml")
	require.NoError(t, os.WriteFile(path, []byte("buffer_count = 4\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Options.BufferCount)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
