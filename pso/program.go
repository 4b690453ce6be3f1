package pso

import (
	"hash/fnv"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/vkngwrapper/pacer/gpu"
)

var (
	nextProgramID uint64
)

// Program is a set of compiled shaders that pipelines are built from. Bytecode is opaque to
// this package. Each Program has its own identity: two programs built from the same bytecode
// still produce separate pipelines.
type Program struct {
	id             uint64
	name           string
	codeHash       uint64
	vertexShader   []byte
	pixelShader    []byte
	geometryShader []byte
}

// NewProgram wraps shader bytecode. geometryShader may be nil.
func NewProgram(name string, vertexShader, pixelShader, geometryShader []byte) *Program {
	hash := fnv.New64a()
	_, _ = hash.Write(vertexShader)
	_, _ = hash.Write(pixelShader)
	_, _ = hash.Write(geometryShader)

	return &Program{
		id:             atomic.AddUint64(&nextProgramID, 1),
		name:           name,
		codeHash:       hash.Sum64(),
		vertexShader:   vertexShader,
		pixelShader:    pixelShader,
		geometryShader: geometryShader,
	}
}

func (p *Program) ID() uint64 {
	return p.id
}

func (p *Program) Name() string {
	return p.name
}

// CodeHash is an FNV-1a hash over every shader stage's bytecode
func (p *Program) CodeHash() uint64 {
	return p.codeHash
}

// VertexLayout is the vertex input description of a mesh. Layouts compare by content: two
// layouts with the same elements in the same order select the same pipelines.
type VertexLayout struct {
	elements []gpu.InputElement
	key      string
}

func NewVertexLayout(elements ...gpu.InputElement) *VertexLayout {
	var builder strings.Builder
	for _, element := range elements {
		// Names are length-prefixed so no name can spell out a separator
		builder.WriteString(strconv.Itoa(len(element.SemanticName)))
		builder.WriteByte(':')
		builder.WriteString(element.SemanticName)
		builder.WriteByte('/')
		builder.WriteString(strconv.Itoa(element.SemanticIndex))
		builder.WriteByte('/')
		builder.WriteString(strconv.FormatUint(uint64(element.Format), 10))
		builder.WriteByte('/')
		builder.WriteString(strconv.Itoa(element.Slot))
		builder.WriteByte('/')
		builder.WriteString(strconv.Itoa(element.Offset))
		builder.WriteByte(';')
	}

	return &VertexLayout{
		elements: append([]gpu.InputElement(nil), elements...),
		key:      builder.String(),
	}
}

func (l *VertexLayout) Elements() []gpu.InputElement {
	if l == nil {
		return nil
	}
	return l.elements
}

// Equal reports whether both layouts describe the same elements
func (l *VertexLayout) Equal(other *VertexLayout) bool {
	return l.Key() == other.Key()
}

// Key is the canonical encoding the pipeline cache compares layouts by. A nil layout has an
// empty key.
func (l *VertexLayout) Key() string {
	if l == nil {
		return ""
	}
	return l.key
}
