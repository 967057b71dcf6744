package config

// Device configures the accelerator allocator.
type Device struct {
	// Capacity is the device memory budget in bytes. Zero selects
	// DEVICE_CAPACITY_DEFAULT.
	Capacity int64 `json:"capacity"`
	// Name labels the logical device in logs and errors.
	Name string `json:"name"`
}

// CapacityBytes returns the configured capacity, falling back to the
// default budget when unset.
func (d Device) CapacityBytes() int64 {
	if d.Capacity <= 0 {
		return DEVICE_CAPACITY_DEFAULT
	}
	return d.Capacity
}

// DeviceName returns the configured device label, or "device0" when unset.
func (d Device) DeviceName() string {
	if d.Name == "" {
		return "device0"
	}
	return d.Name
}
