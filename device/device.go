// Package device reports the compute backend available to model building and optimization
package device

import "runtime"
import "sync"

import "github.com/klauspost/cpuid/v2"

// Backend names a compute backend.
type Backend string

const (
	Generic Backend = "generic"
	AVX512  Backend = "avx512"
	CUDA    Backend = "cuda"
)

// Info describes the machine a network is built for.
type Info struct {
	Backend     Backend
	Lanes       int // vector lanes used per hashing step
	Threads     int // threads for parallel work
	Brand       string
	CudaDevices int
}

// Detect probes the CPU, and the GPU when built with the cuda tag.
func Detect() Info {
	var info = Info{
		Backend: Generic,
		Lanes:   1,
		Threads: cpuid.CPU.LogicalCores,
		Brand:   cpuid.CPU.BrandName,
	}
	if info.Threads <= 0 {
		info.Threads = runtime.NumCPU()
	}
	if cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512DQ) {
		info.Backend = AVX512
		info.Lanes = 16
	}
	if n := cudaDevices(); n > 0 {
		info.Backend = CUDA
		info.CudaDevices = n
	}
	return info
}

var (
	current     Info
	currentOnce sync.Once
)

// Current returns the result of Detect, probing only once.
func Current() Info {
	currentOnce.Do(func() {
		current = Detect()
	})
	return current
}
