package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyM    = 77  // M key (ASCII)
	KeyEsc  = 256 // Escape key (GLFW)
	KeyUp   = 265 // Up arrow (GLFW)
	KeyDown = 264 // Down arrow (GLFW)
)
