package browser

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/fredcamaral/revealdeck/internal/domain/ports"
)

// Opener is a command able to open a URL
type Opener struct {
	Name    string
	Command string
	Args    []string
}

func (o Opener) argv(url string) []string {
	return append(append([]string{}, o.Args...), url)
}

// Launcher opens the preview in the first available opener
type Launcher struct {
	openers  []Opener
	lookPath func(string) (string, error)
	start    func(name string, args ...string) error
}

// NewLauncher creates a launcher with the openers of the current platform
func NewLauncher() *Launcher {
	return &Launcher{
		openers:  platformOpeners(runtime.GOOS),
		lookPath: exec.LookPath,
		start:    startDetached,
	}
}

// Launch opens url without waiting for the browser to exit
func (l *Launcher) Launch(url string) error {
	opener, err := l.selectOpener()
	if err != nil {
		return fmt.Errorf("browser selection: %w", err)
	}

	if err := l.start(opener.Command, opener.argv(url)...); err != nil {
		return fmt.Errorf("launching %s: %w", opener.Name, err)
	}
	return nil
}

// Detect returns the name of the opener Launch would use
func (l *Launcher) Detect() (string, error) {
	opener, err := l.selectOpener()
	if err != nil {
		return "", err
	}
	return opener.Name, nil
}

func (l *Launcher) selectOpener() (Opener, error) {
	if len(l.openers) == 0 {
		return Opener{}, errors.New("no browsers available")
	}

	for _, candidate := range l.openers {
		if _, err := l.lookPath(candidate.Command); err == nil {
			return candidate, nil
		}
	}

	return Opener{}, errors.New("no supported browsers found on this system")
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...) // #nosec G204 - command comes from the fixed opener list
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

// platformOpeners lists openers in order of preference for goos
func platformOpeners(goos string) []Opener {
	switch goos {
	case "darwin":
		return []Opener{
			{Name: "Default", Command: "open"},
		}
	case "windows":
		return []Opener{
			{Name: "Default", Command: "rundll32", Args: []string{"url.dll,FileProtocolHandler"}},
			{Name: "Shell", Command: "cmd", Args: []string{"/c", "start", ""}},
		}
	default:
		return []Opener{
			{Name: "xdg-open", Command: "xdg-open"},
			{Name: "Chrome", Command: "google-chrome"},
			{Name: "Chromium", Command: "chromium"},
			{Name: "Firefox", Command: "firefox"},
		}
	}
}

// Ensure Launcher implements ports.BrowserLauncher
var _ ports.BrowserLauncher = (*Launcher)(nil)
