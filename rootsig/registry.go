// Package rootsig builds root signatures from short layout codes and caches them by code
package rootsig

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/pacer/gpu"
	"github.com/vkngwrapper/pacer/internal/utils"
)

// RootSignature is a compiled root signature along with the parameter index bound to each
// shader register
type RootSignature struct {
	code       string
	handle     gpu.Handle
	parameters []gpu.RootParameter

	constantBuffers []int
	shaderResources []int
	unorderedAccess []int
}

func newRootSignature(code string, handle gpu.Handle, parameters []gpu.RootParameter) *RootSignature {
	signature := &RootSignature{
		code:       code,
		handle:     handle,
		parameters: parameters,
	}

	for index, parameter := range parameters {
		switch parameter.Kind {
		case gpu.RootParameterCBV, gpu.RootParameterCBVTable:
			signature.constantBuffers = append(signature.constantBuffers, index)
		case gpu.RootParameterSRV, gpu.RootParameterSRVTable:
			signature.shaderResources = append(signature.shaderResources, index)
		case gpu.RootParameterUAV, gpu.RootParameterUAVTable:
			signature.unorderedAccess = append(signature.unorderedAccess, index)
		}
	}

	return signature
}

func (s *RootSignature) Code() string {
	return s.code
}

func (s *RootSignature) Handle() gpu.Handle {
	return s.handle
}

func (s *RootSignature) Parameters() []gpu.RootParameter {
	return s.parameters
}

func lookupRegister(table []int, register int, kind string) (int, error) {
	if register < 0 || register >= len(table) {
		return 0, errors.Newf("root signature has no %s bound at register %d", kind, register)
	}
	return table[register], nil
}

// ConstantBufferParameter returns the root parameter index bound to constant buffer register b<register>
func (s *RootSignature) ConstantBufferParameter(register int) (int, error) {
	return lookupRegister(s.constantBuffers, register, "constant buffer")
}

// ShaderResourceParameter returns the root parameter index bound to shader resource register t<register>
func (s *RootSignature) ShaderResourceParameter(register int) (int, error) {
	return lookupRegister(s.shaderResources, register, "shader resource")
}

// UnorderedAccessParameter returns the root parameter index bound to unordered access register u<register>
func (s *RootSignature) UnorderedAccessParameter(register int) (int, error) {
	return lookupRegister(s.unorderedAccess, register, "unordered access view")
}

// Registry creates each distinct root signature once and returns the cached one for every
// later request with the same layout code
type Registry struct {
	logger *slog.Logger
	device gpu.Device

	mutex      utils.OptionalRWMutex
	signatures *swiss.Map[string, *RootSignature]
}

// NewRegistry creates an empty registry. When useMutex is false the caller must serialize
// every call.
func NewRegistry(logger *slog.Logger, device gpu.Device, useMutex bool) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Registry{
		logger:     logger,
		device:     device,
		mutex:      utils.OptionalRWMutex{UseMutex: useMutex},
		signatures: swiss.NewMap[string, *RootSignature](42),
	}
}

// GetOrCreate returns the root signature for code, creating it on first use. An invalid code
// creates nothing and caches nothing.
func (r *Registry) GetOrCreate(code string) (*RootSignature, error) {
	r.mutex.RLock()
	signature, ok := r.signatures.Get(code)
	r.mutex.RUnlock()
	if ok {
		return signature, nil
	}

	parameters, err := ParseLayoutCode(code)
	if err != nil {
		return nil, err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	signature, ok = r.signatures.Get(code)
	if ok {
		return signature, nil
	}

	handle, err := r.device.CreateRootSignature(&gpu.RootSignatureDescriptor{
		Parameters:       parameters,
		StaticSamplers:   StaticSamplers(),
		AllowInputLayout: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create root signature %q", code)
	}

	signature = newRootSignature(code, handle, parameters)
	r.signatures.Put(code, signature)

	r.logger.Debug("RootSignatureRegistry::GetOrCreate", slog.String("Code", code), slog.String("Handle", handle.String()))
	return signature, nil
}

func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.signatures.Count()
}

// Destroy releases every cached root signature immediately. No pipeline or command list that
// uses them may still be executing.
func (r *Registry) Destroy() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var err error
	r.signatures.Iter(func(code string, signature *RootSignature) bool {
		err = errors.CombineErrors(err, r.device.Release(signature.handle))
		return false
	})
	r.signatures.Clear()

	return err
}
