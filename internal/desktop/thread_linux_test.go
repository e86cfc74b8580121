package desktop

import (
	"runtime"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunOnLockedThread_StaysOnOneThread(t *testing.T) {
	// keep the scheduler busy so an unlocked goroutine would migrate
	stop := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < runtime.GOMAXPROCS(0)*2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					runtime.Gosched()
				}
			}
		}()
	}
	defer func() {
		close(stop)
		wg.Wait()
	}()

	done := make(chan struct{})
	go runOnLockedThread(func() {
		defer close(done)
		tid := syscall.Gettid()
		for i := 0; i < 200; i++ {
			runtime.Gosched()
			time.Sleep(50 * time.Microsecond)
			assert.Equal(t, tid, syscall.Gettid(), "moved to another thread after %d yields", i)
		}
	})
	<-done
}
