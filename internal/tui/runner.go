package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/svgrn/pkg/svgrn"
)

// BatchFunc runs a batch, calling observe once for every finished document.
type BatchFunc func(ctx context.Context, observe func(svgrn.DocumentResult)) *svgrn.BatchReport

// RunWithProgress runs batch behind a live Progress view rendered to out.
// Pressing a cancel key cancels the context handed to batch; the view stays
// up until batch returns.
func RunWithProgress(ctx context.Context, out io.Writer, total int, batch BatchFunc) (*svgrn.BatchReport, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(NewProgress(total, cancel), tea.WithOutput(out))

	done := make(chan *svgrn.BatchReport, 1)
	go func() {
		report := batch(ctx, func(res svgrn.DocumentResult) {
			program.Send(DocumentDoneMsg{Result: res})
		})
		program.Send(BatchDoneMsg{Report: report})
		done <- report
	}()

	if _, err := program.Run(); err != nil {
		cancel()
		<-done
		return nil, err
	}
	return <-done, nil
}
