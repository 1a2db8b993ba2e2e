package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/svgrn/pkg/svgrn"
)

// Progress is the live view of a running batch. Finished documents are
// printed above the spinner line as they complete.
type Progress struct {
	spinner   spinner.Model
	keys      KeyMap
	cancel    context.CancelFunc
	total     int
	done      int
	failed    int
	cancelled bool
	report    *svgrn.BatchReport
}

// DocumentDoneMsg reports one finished document.
type DocumentDoneMsg struct {
	Result svgrn.DocumentResult
}

// BatchDoneMsg ends the view.
type BatchDoneMsg struct {
	Report *svgrn.BatchReport
}

// NewProgress creates the view for a batch of total documents. cancel is
// invoked once when the user presses a cancel key.
func NewProgress(total int, cancel context.CancelFunc) Progress {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return Progress{
		spinner: s,
		keys:    DefaultKeyMap(),
		cancel:  cancel,
		total:   total,
	}
}

// Init implements tea.Model.
func (p Progress) Init() tea.Cmd {
	return p.spinner.Tick
}

// Update implements tea.Model.
func (p Progress) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DocumentDoneMsg:
		p.done++
		if msg.Result.Status == svgrn.StatusFailed {
			p.failed++
		}
		return p, tea.Println(ResultLine(msg.Result))

	case BatchDoneMsg:
		p.report = msg.Report
		return p, tea.Quit

	case tea.KeyMsg:
		if key.Matches(msg, p.keys.Cancel) && !p.cancelled {
			p.cancelled = true
			if p.cancel != nil {
				p.cancel()
			}
		}
		return p, nil

	case spinner.TickMsg:
		if p.report != nil {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd
	}
	return p, nil
}

// View implements tea.Model.
func (p Progress) View() string {
	if p.report != nil {
		return Summary(p.report) + "\n"
	}

	line := fmt.Sprintf("%s Converting %d/%d", p.spinner.View(), p.done, p.total)
	if p.failed > 0 {
		line += ErrorStyle.Render(fmt.Sprintf(" (%d failed)", p.failed))
	}
	if p.cancelled {
		return line + MutedStyle.Render(" cancelling...") + "\n"
	}
	return line + MutedStyle.Render("  "+p.keys.HelpText()) + "\n"
}

// Done returns the number of finished documents.
func (p Progress) Done() int {
	return p.done
}

// Cancelled reports whether the user asked to stop the batch.
func (p Progress) Cancelled() bool {
	return p.cancelled
}

// Report returns the final report, or nil while the batch is running.
func (p Progress) Report() *svgrn.BatchReport {
	return p.report
}
