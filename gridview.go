// Package gridview is a virtualized text/grid viewport engine: it lays out
// an editable multi-line buffer with soft wrapping, compresses terminal cell
// grids into styled paint runs, and maps screen coordinates back to logical
// text positions. It owns no rendering backend; hosts feed it measured
// metrics and input events and paint the geometry it returns.
package gridview

import (
	"fmt"
	"runtime/debug"

	"github.com/hnimtadd/gridview/logger"
	"github.com/hnimtadd/gridview/view/composite"
	"github.com/hnimtadd/gridview/view/editor"
	"github.com/hnimtadd/gridview/view/grid"
	"github.com/hnimtadd/gridview/view/termview"
)

type EditorOptions struct {
	Text   string
	Logger logger.Logger
}

// EditorView wraps an editor session with the crash guard hosts expect on
// their render thread: a panic during a layout pass is logged and yields an
// empty frame instead of taking the host down.
type EditorView struct {
	session *editor.Session
	logger  logger.Logger
}

func NewEditorView(opts EditorOptions) *EditorView {
	log := opts.Logger
	if log == nil {
		log = logger.DefaultLogger
	}
	return &EditorView{
		session: editor.NewSession(editor.Options{Text: opts.Text, Logger: log}),
		logger:  log,
	}
}

// Session exposes the underlying session for input event dispatch.
func (v *EditorView) Session() *editor.Session { return v.session }

// Layout runs one layout pass for the measured content area.
func (v *EditorView) Layout(m editor.Metrics) (frame editor.Frame) {
	defer func() {
		if r := recover(); r != nil {
			v.logger.Error("panic in editor layout pass", "panic", fmt.Sprint(r))
			fmt.Println(string(debug.Stack()))
			frame = editor.Frame{}
		}
	}()
	return v.session.Layout(m)
}

type TerminalOptions struct {
	Defaults composite.Defaults
	Logger   logger.Logger
}

// TerminalView wraps a terminal view with the same crash guard.
type TerminalView struct {
	view   *termview.View
	logger logger.Logger
}

func NewTerminalView(opts TerminalOptions) *TerminalView {
	log := opts.Logger
	if log == nil {
		log = logger.DefaultLogger
	}
	return &TerminalView{
		view:   termview.New(termview.Options{Defaults: opts.Defaults, Logger: log}),
		logger: log,
	}
}

// View exposes the underlying terminal view for focus and mouse dispatch.
func (v *TerminalView) View() *termview.View { return v.view }

// Frame composes one grid snapshot into paint geometry.
func (v *TerminalView) Frame(snap grid.Snapshot) (frame termview.Frame) {
	defer func() {
		if r := recover(); r != nil {
			v.logger.Error("panic in terminal frame pass", "panic", fmt.Sprint(r))
			fmt.Println(string(debug.Stack()))
			frame = termview.Frame{}
		}
	}()
	return v.view.Frame(snap)
}
