package pso

import (
	"github.com/gogpu/gputypes"
)

// BlendMode selects one of the fixed blend configurations a pipeline can be built with
type BlendMode int

const (
	// BlendOpaque writes source color unchanged
	BlendOpaque BlendMode = iota
	// BlendAdditive adds source color scaled by source alpha onto the target
	BlendAdditive
	// BlendAlpha composites straight-alpha source color over the target
	BlendAlpha
)

// ParseBlendMode maps the names used in material descriptions onto a blend mode. "Alpha" and
// "Add" select alpha and additive blending; anything else is opaque.
func ParseBlendMode(name string) BlendMode {
	switch name {
	case "Alpha":
		return BlendAlpha
	case "Add":
		return BlendAdditive
	default:
		return BlendOpaque
	}
}

func (m BlendMode) String() string {
	switch m {
	case BlendAlpha:
		return "Alpha"
	case BlendAdditive:
		return "Add"
	default:
		return "Opaque"
	}
}

// BlendState returns the blend configuration for the mode, or nil for opaque output
func (m BlendMode) BlendState() *gputypes.BlendState {
	switch m {
	case BlendAlpha:
		return &gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorSrcAlpha,
				DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
				Operation: gputypes.BlendOperationAdd,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
				Operation: gputypes.BlendOperationAdd,
			},
		}
	case BlendAdditive:
		return &gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorSrcAlpha,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationAdd,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorSrcAlpha,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationAdd,
			},
		}
	default:
		return nil
	}
}
