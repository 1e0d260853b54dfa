// pkg/platform/utils.go
package platform

import (
	"os/exec"
	"runtime"
)

// CommandExists checks if a command is available in PATH
func CommandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Shell returns the shell executable and argument flag used to run a
// composed command string on this operating system.
func Shell() (string, string) {
	if runtime.GOOS == "windows" {
		return "cmd", "/C"
	}
	return "sh", "-c"
}
