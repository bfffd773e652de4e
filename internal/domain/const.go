package domain

const (
	// Sui constants
	SUI_ZERO_ADDRESS    = "0x0000000000000000000000000000000000000000000000000000000000000000"
	SUI_CLOCK_OBJECT_ID = "0x0000000000000000000000000000000000000000000000000000000000000006"

	// MIST_PER_SUI is the number of smallest currency units per display unit
	MIST_PER_SUI = int64(1_000_000_000)

	// Display fallbacks for assets with no usable metadata
	DEFAULT_ASSET_NAME        = "Unnamed Asset"
	DEFAULT_ASSET_DESCRIPTION = "No description."

	// ASSET_CHILD_KEY is the well-known dynamic-field key under which a
	// listing stores its wrapped asset in the named-key scheme
	ASSET_CHILD_KEY = "asset"
)
