package device

import "errors"

var (
	// ErrDeviceAllocation is returned when the device memory budget is
	// exhausted or the device is unavailable.
	ErrDeviceAllocation = errors.New("device: allocation failed")

	// ErrResidencyMismatch is returned when an operation combines matrices
	// that are not resident on the same live device. Crossing the host/device
	// boundary always requires an explicit Upload or Download first.
	ErrResidencyMismatch = errors.New("device: residency mismatch")
)
