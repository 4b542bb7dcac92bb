package cmd

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/xolan/actionlog/internal/service"
	"github.com/xolan/actionlog/internal/tui"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout        io.Writer
	Stderr        io.Writer
	Stdin         io.Reader
	Exit          func(code int)
	Now           func() time.Time
	IsInteractive func() bool
	Services      func() (*service.Services, error)
	RunForm       func(form *huh.Form) error
	RunTUI        func(services *service.Services) error
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
		Stdin:         os.Stdin,
		Exit:          os.Exit,
		Now:           time.Now,
		IsInteractive: stdinIsTerminal,
		Services:      defaultServices,
		RunForm:       func(form *huh.Form) error { return form.Run() },
		RunTUI:        tui.Run,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}

func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func defaultServices() (*service.Services, error) {
	return service.NewServices(service.Options{
		ConfigPath: configPathFlag,
		Ephemeral:  ephemeralFlag,
	})
}
