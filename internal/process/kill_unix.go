//go:build !windows

package process

import "syscall"

// KillProcessGroup sends SIGKILL to the process group led by pid, taking
// Chrome's renderer and GPU children down with the browser.
func KillProcessGroup(pid int) {
	// Best-effort; the launcher's own Kill runs afterwards as a fallback.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
