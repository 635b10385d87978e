package main

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/fencework/engarde/internal/statistics"
)

// progressUI renders the repeat run: a progress bar over matches plus the
// running win tally.
type progressUI struct {
	program *tea.Program
	wg      sync.WaitGroup
	once    sync.Once
}

type statsMsg statistics.RunStats

type quitMsg struct{}

func newProgressUI(total int, botA, botB string) *progressUI {
	accent := "63"
	if !termenv.HasDarkBackground() {
		accent = "57"
	}
	model := progressModel{
		total: total,
		botA:  botA,
		botB:  botB,
		bar:   progress.New(progress.WithDefaultGradient()),
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)),
		faint: lipgloss.NewStyle().Faint(true),
	}
	return &progressUI{
		program: tea.NewProgram(model),
	}
}

// Start runs the UI in the background.
func (ui *progressUI) Start() {
	ui.wg.Add(1)
	go func() {
		defer ui.wg.Done()
		_, _ = ui.program.Run()
	}()
}

// Report updates the display with the latest stats.
func (ui *progressUI) Report(stats statistics.RunStats) {
	ui.program.Send(statsMsg(stats))
}

// Stop shuts the UI down and waits for the terminal to be restored.
func (ui *progressUI) Stop() {
	ui.once.Do(func() {
		ui.program.Send(quitMsg{})
		ui.wg.Wait()
	})
}

type progressModel struct {
	total int
	botA  string
	botB  string
	stats statistics.RunStats

	bar   progress.Model
	title lipgloss.Style
	faint lipgloss.Style
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsMsg:
		m.stats = statistics.RunStats(msg)
		return m, nil
	case quitMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 4
		return m, nil
	}
	return m, nil
}

func (m progressModel) View() string {
	ratio := 0.0
	if m.total > 0 {
		ratio = float64(m.stats.Matches) / float64(m.total)
	}
	header := m.title.Render(fmt.Sprintf("engarde repeat: %s vs %s", m.botA, m.botB))
	tally := fmt.Sprintf("%d/%d matches  A:%d  B:%d  failed:%d",
		m.stats.Matches, m.total, m.stats.AWins, m.stats.BWins, m.stats.Failed)
	hint := m.faint.Render("ctrl+c to abort")
	return fmt.Sprintf("%s\n%s\n%s\n%s\n", header, m.bar.ViewAs(ratio), tally, hint)
}
