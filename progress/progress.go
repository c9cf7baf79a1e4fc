// Package progress renders an ordered list of steps, such as "Resolve ShareX
// path" followed by "Start region capture", with a status icon per step.
// On a terminal the list is redrawn in place as steps change; otherwise the
// final state is printed once by Finish.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/jongio/sharex-core/cliout"
)

// TaskStatus represents the status of a single step.
type TaskStatus string

const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusRunning TaskStatus = "running"
	TaskStatusSuccess TaskStatus = "success"
	TaskStatusFailed  TaskStatus = "failed"
	TaskStatusSkipped TaskStatus = "skipped"
)

const (
	defaultTermWidth = 80
	// Room for the icon, spacing and the elapsed time suffix.
	lineOverhead = 12
)

type step struct {
	description string
	status      TaskStatus
	errorMsg    string
	startTime   time.Time
	endTime     time.Time
}

// Steps tracks an ordered set of steps. It is safe for concurrent use.
type Steps struct {
	mu            sync.Mutex
	steps         []*step
	w             io.Writer
	interactive   bool
	lastLineCount int
	termWidth     int
	now           func() time.Time
}

// NewSteps creates a tracker writing to w with one pending step per
// description. Redrawing is enabled only when w is a terminal.
func NewSteps(w io.Writer, descriptions ...string) *Steps {
	s := &Steps{
		w:         w,
		termWidth: defaultTermWidth,
		now:       time.Now,
	}
	for _, d := range descriptions {
		s.steps = append(s.steps, &step{description: d, status: TaskStatusPending})
	}

	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) { // #nosec G115 -- file descriptors fit in int
		s.interactive = true
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 { // #nosec G115
			s.termWidth = width
		}
	}
	return s
}

// Start marks step i as running.
func (s *Steps) Start(i int) {
	s.update(i, func(st *step) {
		st.status = TaskStatusRunning
		st.startTime = s.now()
	})
}

// Complete marks step i as successful.
func (s *Steps) Complete(i int) {
	s.update(i, func(st *step) {
		st.status = TaskStatusSuccess
		st.endTime = s.now()
	})
}

// Fail marks step i as failed with an optional error message.
func (s *Steps) Fail(i int, errMsg string) {
	s.update(i, func(st *step) {
		st.status = TaskStatusFailed
		st.errorMsg = errMsg
		st.endTime = s.now()
	})
}

// Skip marks step i as skipped.
func (s *Steps) Skip(i int) {
	s.update(i, func(st *step) {
		st.status = TaskStatusSkipped
		st.endTime = s.now()
	})
}

// Status returns the status of step i, or "" when i is out of range.
func (s *Steps) Status(i int) TaskStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.steps) {
		return ""
	}
	return s.steps[i].status
}

// Finish marks steps that never started as skipped and renders the final
// state.
func (s *Steps) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.steps {
		if st.status == TaskStatusPending {
			st.status = TaskStatusSkipped
		}
	}
	s.render(true)
}

// update applies fn to step i and redraws. Out-of-range indexes are ignored.
func (s *Steps) update(i int, fn func(*step)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.steps) {
		return
	}
	fn(s.steps[i])
	if s.interactive {
		s.render(false)
	}
}

// render writes the step lines. Caller must hold s.mu.
func (s *Steps) render(final bool) {
	if !s.interactive && !final {
		return
	}

	if s.interactive && s.lastLineCount > 0 {
		fmt.Fprintf(s.w, "\033[%dA", s.lastLineCount)
	}

	lines := s.lines(s.now())
	for _, line := range lines {
		if s.interactive {
			fmt.Fprint(s.w, "\r\033[2K")
		}
		fmt.Fprintln(s.w, line)
	}
	s.lastLineCount = len(lines)
}

// lines formats every step, followed by an indented error line for failures.
func (s *Steps) lines(now time.Time) []string {
	maxDesc := s.termWidth - lineOverhead
	if maxDesc < 10 {
		maxDesc = 10
	}

	var lines []string
	for _, st := range s.steps {
		icon, color := statusIconAndColor(st.status, now)
		if !s.interactive {
			color = ""
		}
		line := fmt.Sprintf("%s%s%s %s", color, icon, reset(color), truncateString(st.description, maxDesc))
		if !st.endTime.IsZero() && !st.startTime.IsZero() {
			line += fmt.Sprintf(" (%.1fs)", st.endTime.Sub(st.startTime).Seconds())
		}
		lines = append(lines, line)

		if st.status == TaskStatusFailed && st.errorMsg != "" {
			lines = append(lines, "    "+truncateString(firstLine(st.errorMsg), maxDesc))
		}
	}
	return lines
}

func reset(color string) string {
	if color == "" {
		return ""
	}
	return cliout.Reset
}

// statusIconAndColor returns the icon and color for a step status.
func statusIconAndColor(status TaskStatus, t time.Time) (string, string) {
	switch status {
	case TaskStatusRunning:
		return getSpinnerFrame(t), cliout.Cyan
	case TaskStatusSuccess:
		return cliout.SymbolCheck, cliout.Green
	case TaskStatusFailed:
		return cliout.SymbolCross, cliout.Red
	case TaskStatusSkipped:
		return "-", cliout.Dim
	default:
		return "○", cliout.Dim
	}
}

// getSpinnerFrame returns the current spinner character based on time.
func getSpinnerFrame(t time.Time) string {
	spinnerChars := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	index := (t.UnixNano() / 80_000_000) % int64(len(spinnerChars))
	return spinnerChars[index]
}

// truncateString truncates a string to maxLen runes.
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return strings.TrimSpace(s)
}
