// Package tui provides retained-mode windows and widgets for the terminal package.
//
// A Window owns its widgets (button, label, textbox). The Renderer draws them
// through a Canvas with clipping to window width and canvas bounds; the
// focus methods on Window walk focusable widgets in list order.
//
// Design principles:
//   - Retained mode: widgets keep their own text, visibility and focus state
//   - Single-threaded: callers serialize access to a window
//   - No frame buffer: each draw call reaches the canvas immediately
//
// Usage pattern:
//
//	sess := terminal.NewSession()
//	if err := sess.Acquire(); err != nil { ... }
//	defer sess.Release()
//
//	win, _ := tui.NewWindow(5, 3, 60, 15, "Demo")
//	win.Show()
//	win.NewButton(10, 7, 15, 3, "Click Me", onClick, nil)
//
//	r := tui.NewRenderer(sess)
//	r.Refresh(win, nil)
//	for {
//	    ev, err := sess.WaitEvent(100 * time.Millisecond)
//	    if err != nil { continue }
//	    if tui.Dispatch(win, ev) { r.RenderAll(win) }
//	}
package tui
