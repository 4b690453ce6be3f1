package gpu

// ResourceState is the usage a resource is currently transitioned to
type ResourceState uint32

const (
	ResourceStateCommon ResourceState = iota
	ResourceStateGenericRead
	ResourceStateCopyDest
	ResourceStateCopySource
	ResourceStateRenderTarget
	ResourceStateDepthWrite
	ResourceStateUnorderedAccess
	ResourceStatePresent
)

var resourceStateNames = map[ResourceState]string{
	ResourceStateCommon:          "Common",
	ResourceStateGenericRead:     "GenericRead",
	ResourceStateCopyDest:        "CopyDest",
	ResourceStateCopySource:      "CopySource",
	ResourceStateRenderTarget:    "RenderTarget",
	ResourceStateDepthWrite:      "DepthWrite",
	ResourceStateUnorderedAccess: "UnorderedAccess",
	ResourceStatePresent:         "Present",
}

func (s ResourceState) String() string {
	name, ok := resourceStateNames[s]
	if !ok {
		return "Unknown"
	}
	return name
}

// PresentFlags modify how a surface presents its current back buffer
type PresentFlags uint32

const (
	// PresentAllowTearing permits an immediate present to tear when the display supports it
	PresentAllowTearing PresentFlags = 1 << iota
)

// ClearFlags select the planes cleared by ClearDepthStencilView
type ClearFlags uint32

const (
	ClearDepth ClearFlags = 1 << iota
	ClearStencil
)
