// ABOUTME: Version constants for the teddy tool
// ABOUTME: Single place for release and product identification strings

package version

const (
	// Version is the release version of the tool.
	Version = "0.1.0"

	// Product is the human-readable product name.
	Product = "Teddy"

	// Manufacturer identifies the project.
	Manufacturer = "teddy-sub000"
)
