package desktop

import "runtime"

// runOnLockedThread runs fn with the calling goroutine wired to its OS
// thread, for code that owns a thread-bound Win32 message queue.
func runOnLockedThread(fn func()) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	fn()
}
