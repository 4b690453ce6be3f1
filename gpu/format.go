package gpu

import (
	"github.com/gogpu/gputypes"
)

// BitsPerPixel returns the storage size of one texel of format, or 0 for formats that cannot
// be uploaded row by row
func BitsPerPixel(format gputypes.TextureFormat) int {
	switch format {
	case gputypes.TextureFormatRGBA32Float:
		return 128
	case gputypes.TextureFormatRG32Float, gputypes.TextureFormatRGBA16Float:
		return 64
	case gputypes.TextureFormatRGBA8Unorm,
		gputypes.TextureFormatRGBA8UnormSrgb,
		gputypes.TextureFormatBGRA8Unorm,
		gputypes.TextureFormatBGRA8UnormSrgb,
		gputypes.TextureFormatR32Float,
		gputypes.TextureFormatDepth32Float,
		gputypes.TextureFormatDepth24PlusStencil8:
		return 32
	case gputypes.TextureFormatRG8Unorm, gputypes.TextureFormatR16Float:
		return 16
	case gputypes.TextureFormatR8Unorm:
		return 8
	default:
		return 0
	}
}

// RowPitch returns the number of bytes in one tightly packed row of width texels
func RowPitch(format gputypes.TextureFormat, width int) int {
	return width * BitsPerPixel(format) / 8
}

// VertexFormatSize returns the size in bytes of one vertex attribute of format
func VertexFormatSize(format gputypes.VertexFormat) int {
	switch format {
	case gputypes.VertexFormatFloat32, gputypes.VertexFormatUint32, gputypes.VertexFormatUnorm8x4:
		return 4
	case gputypes.VertexFormatFloat32x2:
		return 8
	case gputypes.VertexFormatFloat32x3:
		return 12
	case gputypes.VertexFormatFloat32x4:
		return 16
	default:
		return 0
	}
}

// IndexFormatSize returns the size in bytes of one index of format
func IndexFormatSize(format gputypes.IndexFormat) int {
	if format == gputypes.IndexFormatUint32 {
		return 4
	}
	return 2
}

// IsDepthFormat reports whether format can back a depth stencil view
func IsDepthFormat(format gputypes.TextureFormat) bool {
	return format == gputypes.TextureFormatDepth32Float || format == gputypes.TextureFormatDepth24PlusStencil8
}
