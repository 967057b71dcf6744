package config

const (
	BATCH_SIZE_DATABASE = 1_000

	// DEVICE_CAPACITY_DEFAULT is the fallback device memory budget (256 MiB).
	DEVICE_CAPACITY_DEFAULT int64 = 256 << 20
)
