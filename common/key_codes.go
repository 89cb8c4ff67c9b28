package common

// Virtual key codes used by the scroll camera controls.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyE     = 69  // E key (ASCII), enter explore mode
	KeyM     = 77  // M key (ASCII), toggle music
	KeyQ     = 81  // Q key (ASCII), quit
	KeySpace = 32  // Spacebar (ASCII), scroll one section down
	KeyEsc   = 256 // Escape key (GLFW), leave explore mode

	Key1 = 49 // 1 key (ASCII), jump to the first section
	Key9 = 57 // 9 key (ASCII), jump to the ninth section

	KeyPageUp   = 266 // Page Up (GLFW)
	KeyPageDown = 267 // Page Down (GLFW)
	KeyHome     = 268 // Home (GLFW)
	KeyEnd      = 269 // End (GLFW)
)

