package popup

import (
	"fmt"
	"os/exec"
	"runtime"
	"sync"
)

// Window is a handle to an opened authorization window. The host
// environment offers no push notification for its lifecycle, so the
// controller polls Closed.
type Window interface {
	// Closed reports whether the window has gone away. A window whose
	// lifecycle cannot be observed reports false; ending such an
	// attempt falls to the caller's context deadline.
	Closed() bool

	// Close tears the window down. Closing an already-closed window is
	// a no-op.
	Close() error
}

// WindowOpener opens a detached window at a URL. An Open error means
// the window never existed (for example the platform refused to spawn
// a browser), which the controller reports as ErrPopupBlocked.
type WindowOpener interface {
	Open(url string) (Window, error)
}

// BrowserOpener opens URLs with the platform's default browser
// launcher. Only `open -W` on darwin keeps running for the lifetime of
// the opened window; xdg-open and rundll32 hand the URL to an
// already-running browser and exit 0 immediately, so on those
// platforms a clean launcher exit says nothing about the window.
type BrowserOpener struct{}

var _ WindowOpener = BrowserOpener{}

// launchCommand builds the platform launcher. tracks reports whether
// the process lifetime follows the window lifetime.
func launchCommand(url string) (cmd *exec.Cmd, tracks bool) {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", "-W", url), true
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url), false
	default:
		return exec.Command("xdg-open", url), false
	}
}

func (BrowserOpener) Open(url string) (Window, error) {
	cmd, tracks := launchCommand(url)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("[BrowserOpener.Open] launch browser: %w", err)
	}

	w := &browserWindow{cmd: cmd, tracks: tracks}
	go w.wait()
	return w, nil
}

type browserWindow struct {
	cmd    *exec.Cmd
	tracks bool

	mu     sync.Mutex
	exited bool
	gone   bool
}

func (w *browserWindow) wait() {
	err := w.cmd.Wait()
	w.mu.Lock()
	w.exited = true
	// A clean exit from a detached launcher leaves the window
	// lifecycle unknown; only a tracking launcher, a failed launcher
	// or a kill means the window is gone.
	if err != nil || w.tracks {
		w.gone = true
	}
	w.mu.Unlock()
}

func (w *browserWindow) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.gone
}

func (w *browserWindow) Close() error {
	w.mu.Lock()
	exited := w.exited
	w.gone = true
	w.mu.Unlock()
	if exited {
		return nil
	}
	return w.cmd.Process.Kill()
}
