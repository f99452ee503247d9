package session

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Live-session bookkeeping for the process-exit flush. Sessions register on
// Configure and deregister on Shutdown.
var (
	liveMu sync.Mutex
	live   = map[*Session]struct{}{}

	exitHookOnce sync.Once
)

func rememberLive(s *Session) {
	liveMu.Lock()
	defer liveMu.Unlock()
	live[s] = struct{}{}
}

func forgetLive(s *Session) {
	liveMu.Lock()
	defer liveMu.Unlock()
	delete(live, s)
}

func liveSessions() []*Session {
	liveMu.Lock()
	defer liveMu.Unlock()
	out := make([]*Session, 0, len(live))
	for s := range live {
		out = append(out, s)
	}
	return out
}

// flushLiveSessions force-flushes every live session within
// ExitFlushTimeout. Failures are ignored; this runs while the process is
// dying.
func flushLiveSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), ExitFlushTimeout)
	defer cancel()
	for _, s := range liveSessions() {
		_ = s.Flush(ctx)
	}
}

// registerExitHook installs a SIGINT/SIGTERM watcher, once per process, that
// flushes live sessions and then re-raises the signal with default handling
// so the process still terminates with the conventional exit status.
//
// Best effort only: SIGKILL, panics and os.Exit bypass it, and the flush is
// bounded by ExitFlushTimeout.
func registerExitHook() {
	exitHookOnce.Do(func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
		go func() {
			sig := <-ch
			flushLiveSessions()
			signal.Stop(ch)
			if p, err := os.FindProcess(os.Getpid()); err == nil {
				_ = p.Signal(sig)
			}
		}()
	})
}
