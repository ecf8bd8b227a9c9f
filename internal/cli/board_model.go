// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ik5/audmix/mixer"
)

const (
	refreshInterval = 100 * time.Millisecond
	volumeStep      = 0.1
	barWidth        = 10
)

// boardEngine is the part of the engine the soundboard drives.
type boardEngine interface {
	State() mixer.StreamState
	Start() error
	Pause() error
	PlayerInfo(id string) (mixer.PlayerInfo, bool)
	SetPlaying(updates ...mixer.Update[bool])
	SetLooping(updates ...mixer.Update[bool])
	SetVolume(updates ...mixer.Update[float64]) error
	SeekTo(updates ...mixer.Update[float64])
}

// pad is one loaded clip on the board.
type pad struct {
	id   string
	name string
}

type tickMsg time.Time

// boardModel is the bubbletea model for the soundboard.
type boardModel struct {
	eng      boardEngine
	pads     []pad
	selected int
	status   string
	quitting bool
}

func newBoardModel(eng boardEngine, pads []pad) boardModel {
	return boardModel{eng: eng, pads: pads}
}

func tickEvery() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m boardModel) Init() tea.Cmd {
	return tickEvery()
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		return m, tickEvery()
	}

	return m, nil
}

func (m boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < len(m.pads)-1 {
			m.selected++
		}
		return m, nil
	case "p":
		m.toggleStream()
		return m, nil
	case "s":
		updates := make([]mixer.Update[bool], len(m.pads))
		for i, p := range m.pads {
			updates[i] = mixer.Update[bool]{ID: p.id}
		}
		m.eng.SetPlaying(updates...)
		m.status = "stopped all"
		return m, nil
	}

	if len(m.pads) == 0 {
		return m, nil
	}

	p := m.pads[m.selected]
	info, ok := m.eng.PlayerInfo(p.id)
	if !ok {
		return m, nil
	}

	switch msg.String() {
	case " ":
		m.eng.SetPlaying(mixer.Update[bool]{ID: p.id, Value: !info.Playing})
	case "enter":
		m.eng.SeekTo(mixer.Update[float64]{ID: p.id, Value: 0})
		m.eng.SetPlaying(mixer.Update[bool]{ID: p.id, Value: true})
	case "l":
		m.eng.SetLooping(mixer.Update[bool]{ID: p.id, Value: !info.Looping})
	case "0", "home":
		m.eng.SeekTo(mixer.Update[float64]{ID: p.id, Value: 0})
	case "+", "=", "right":
		m.setVolume(p, float64(info.Volume)+volumeStep)
	case "-", "left":
		m.setVolume(p, float64(info.Volume)-volumeStep)
	}

	return m, nil
}

func (m *boardModel) toggleStream() {
	var err error
	switch m.eng.State() {
	case mixer.StateOpen:
		err = m.eng.Pause()
		m.status = "stream paused"
	default:
		err = m.eng.Start()
		m.status = "stream running"
	}

	if err != nil {
		m.status = err.Error()
	}
}

func (m *boardModel) setVolume(p pad, v float64) {
	v = math.Round(min(max(v, 0), 1)*10) / 10
	if err := m.eng.SetVolume(mixer.Update[float64]{ID: p.id, Value: v}); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("%s volume %.0f%%", p.name, v*100)
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

func (m boardModel) View() string {
	if m.quitting {
		return "Closing stream...\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("audmix soundboard"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Stream: %s\n\n", m.eng.State())

	for i, p := range m.pads {
		info, ok := m.eng.PlayerInfo(p.id)
		if !ok {
			continue
		}

		line := renderPad(p, info)
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓:Select  space:Play/Stop  enter:Restart  l:Loop  +/-:Volume  0:Rewind  s:Stop all  p:Pause stream  q:Quit"))
	b.WriteString("\n")

	return b.String()
}

func renderPad(p pad, info mixer.PlayerInfo) string {
	state := "■"
	if info.Playing {
		state = "▶"
	}

	loop := " "
	if info.Looping {
		loop = "↻"
	}

	return fmt.Sprintf("%s %s %-24s [%s] %3.0f%%  %s / %s",
		state, loop, truncate(p.name, 24),
		renderBar(float64(info.Volume), barWidth), float64(info.Volume)*100,
		info.Position.Truncate(10*time.Millisecond), info.Duration.Truncate(10*time.Millisecond))
}

// renderBar draws a fill bar of width cells for v in [0, 1].
func renderBar(v float64, width int) string {
	filled := int(math.Round(v * float64(width)))
	filled = min(max(filled, 0), width)

	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
