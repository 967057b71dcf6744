// Package device holds the accelerator-resident variant of the CULgebra
// matrix. A device.Matrix shares the host matrix's shape and row-major
// indexing contract but its buffer belongs to a Device allocator with a
// fixed memory budget, and it never participates implicitly in host
// arithmetic: data crosses the boundary only through explicit Upload and
// Download transfers.
//
// The matrix-product kernel is selected at build time, mirroring the rest of
// the library's compute backends: a pure-Go kernel by default, BLAS under
// the gonum tag, and a graph-evaluated kernel under the gorgonia tag (the
// CUDA-capable path).
package device

import (
	"fmt"
	"sync"

	"github.com/artie-nazarov/CULgebra/config"
	"github.com/artie-nazarov/CULgebra/logger"
)

// Device is a logical accelerator with a byte-budgeted allocator. All
// allocator state is guarded by a mutex; matrices created on the same Device
// may be combined by the device arithmetic functions.
type Device struct {
	name     string
	capacity int64

	lock sync.Mutex
	used int64
}

// Open initializes a logical device from configuration.
func Open(cfg config.Device) *Device {
	d := &Device{
		name:     cfg.DeviceName(),
		capacity: cfg.CapacityBytes(),
	}
	logger.Sugar().Debugf("device %s opened with capacity %d bytes", d.name, d.capacity)
	return d
}

// Name returns the device label.
func (d *Device) Name() string { return d.name }

// Capacity returns the memory budget in bytes.
func (d *Device) Capacity() int64 { return d.capacity }

// Used returns the bytes currently allocated.
func (d *Device) Used() int64 {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.used
}

// reserve claims bytes from the budget, failing with ErrDeviceAllocation
// when the budget would be exceeded.
func (d *Device) reserve(bytes int64) error {
	d.lock.Lock()
	defer d.lock.Unlock()
	if d.used+bytes > d.capacity {
		return fmt.Errorf("%w: %d bytes requested, %d of %d in use on %s",
			ErrDeviceAllocation, bytes, d.used, d.capacity, d.name)
	}
	d.used += bytes
	return nil
}

// release returns bytes to the budget.
func (d *Device) release(bytes int64) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.used -= bytes
	if d.used < 0 {
		d.used = 0
	}
}
