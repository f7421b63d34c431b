package telemetry

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/turbo/internal/core/ports"
	"go.trai.ch/turbo/internal/tui"
	"go.trai.ch/zerr"
)

var _ ports.Telemetry = (*TUI)(nil)

// TUI is a ports.Telemetry driving an interactive terminal view of the build.
type TUI struct {
	program *tea.Program
	nextID  atomic.Int64
	done    chan struct{}
	err     error
}

// NewTUI starts the terminal program. It runs until Close is called or the user quits.
func NewTUI(opts ...tea.ProgramOption) *TUI {
	t := &TUI{
		program: tea.NewProgram(tui.NewModel(), opts...),
		done:    make(chan struct{}),
	}
	go func() {
		defer close(t.done)
		_, t.err = t.program.Run()
	}()
	return t
}

// Record adds a unit to the view.
func (t *TUI) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	id := strconv.FormatInt(t.nextID.Add(1), 10)
	t.program.Send(tui.MsgUnitStarted{ID: id, Name: name})

	v := &TUIVertex{id: id, program: t.program}
	return ports.ContextWithVertex(ctx, v), v
}

// Close ends the program and waits for its final render.
func (t *TUI) Close() error {
	t.program.Send(tui.MsgBuildEnded{})
	<-t.done
	if t.err != nil {
		return zerr.Wrap(t.err, "terminal view failed")
	}
	return nil
}

var _ ports.Vertex = (*TUIVertex)(nil)

// TUIVertex forwards the output of one unit to the view.
type TUIVertex struct {
	id       string
	program  *tea.Program
	complete sync.Once
}

// Stdout returns a writer feeding the unit's log pane.
func (v *TUIVertex) Stdout() io.Writer { return outputWriter(v.send) }

// Stderr returns a writer feeding the unit's log pane.
func (v *TUIVertex) Stderr() io.Writer { return outputWriter(v.send) }

// Log appends msg to the unit's log pane, skipping debug messages.
func (v *TUIVertex) Log(level domain.LogLevel, msg string) {
	if level < domain.LogLevelInfo {
		return
	}
	v.send([]byte(fmt.Sprintf("%s: %s\n", level, msg)))
}

// Complete marks the unit as done, or failed when err is not nil.
func (v *TUIVertex) Complete(err error) {
	v.complete.Do(func() {
		v.program.Send(tui.MsgUnitCompleted{ID: v.id, Err: err})
	})
}

func (v *TUIVertex) send(p []byte) {
	v.program.Send(tui.MsgUnitOutput{ID: v.id, Data: p})
}

type outputWriter func(p []byte)

func (w outputWriter) Write(p []byte) (int, error) {
	// The program keeps the bytes after Write returns.
	w(slices.Clone(p))
	return len(p), nil
}
