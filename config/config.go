// Package config loads graphics context settings from TOML
package config

import (
	"bytes"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/vkngwrapper/pacer/frame"
)

// File is the layout of a configuration file. Every key is optional.
type File struct {
	UploadBufferSize         int    `toml:"upload_buffer_size"`
	BufferCount              int    `toml:"buffer_count"`
	DescriptorHeapCapacity   int    `toml:"descriptor_heap_capacity"`
	RenderTargetHeapCapacity int    `toml:"render_target_heap_capacity"`
	DepthStencilHeapCapacity int    `toml:"depth_stencil_heap_capacity"`
	ExternallySynchronized   bool   `toml:"externally_synchronized"`
	LogLevel                 string `toml:"log_level"`
}

// Config is a validated configuration with defaults applied
type Config struct {
	Options  frame.CreateOptions
	LogLevel slog.Level
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Options:  frame.CreateOptions{}.WithDefaults(),
		LogLevel: slog.LevelInfo,
	}
}

// Load reads and parses the configuration file at path
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config %s", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes a TOML document. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	var file File
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	err := decoder.Decode(&file)
	if err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return Config{}, errors.Newf("unknown configuration keys:\n%s", strictErr.String())
		}
		return Config{}, errors.Wrap(err, "failed to decode config")
	}

	return file.Config()
}

// Config validates the file and converts it to a Config
func (f File) Config() (Config, error) {
	if f.BufferCount < 0 {
		return Config{}, errors.Newf("buffer_count must be at least 1, but was %d", f.BufferCount)
	}
	for name, value := range map[string]int{
		"upload_buffer_size":          f.UploadBufferSize,
		"descriptor_heap_capacity":    f.DescriptorHeapCapacity,
		"render_target_heap_capacity": f.RenderTargetHeapCapacity,
		"depth_stencil_heap_capacity": f.DepthStencilHeapCapacity,
	} {
		if value < 0 {
			return Config{}, errors.Newf("%s must be positive, but was %d", name, value)
		}
	}

	options := frame.CreateOptions{
		BufferCount:              f.BufferCount,
		UploadBufferSize:         f.UploadBufferSize,
		DescriptorHeapCapacity:   f.DescriptorHeapCapacity,
		RenderTargetHeapCapacity: f.RenderTargetHeapCapacity,
		DepthStencilHeapCapacity: f.DepthStencilHeapCapacity,
	}
	if f.ExternallySynchronized {
		options.Flags |= frame.CreateExternallySynchronized
	}

	err := options.Validate()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Options: options.WithDefaults(), LogLevel: slog.LevelInfo}
	if f.LogLevel != "" {
		err = cfg.LogLevel.UnmarshalText([]byte(f.LogLevel))
		if err != nil {
			return Config{}, errors.Wrapf(err, "log_level %q", f.LogLevel)
		}
	}
	return cfg, nil
}
