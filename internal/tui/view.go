package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/uvcast/internal/constants"
	"github.com/julianstephens/uvcast/internal/render"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.viewHeader()}
	sections = append(sections, docStyle.Render(m.input.View()))

	if result := m.viewResult(); result != "" {
		sections = append(sections, docStyle.Render(result))
	}

	sections = append(sections, m.viewLinks())
	if m.notice != "" {
		sections = append(sections, warningStyle.Render(m.notice))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewHeader() string {
	title := titleStyle.Render(constants.AppName)
	if !m.forecast.Routed {
		return title
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, addressStyle.Render(m.Location().String()))
}

func (m Model) viewResult() string {
	width := 0
	if m.width > 0 {
		h, _ := docStyle.GetFrameSize()
		width = min(m.width-h, 48)
	}
	return render.Styled(render.Render(m.forecast.State), width)
}

func (m Model) viewLinks() string {
	links := []string{}
	if m.forecast.Routed {
		links = append(links, linkStyle.Render("Home"), mutedStyle.Render(" · "))
	}
	links = append(links, linkStyle.Render("About the UV index"), mutedStyle.Render(" ↗"))
	return lipgloss.NewStyle().Padding(0, 2).Render(lipgloss.JoinHorizontal(lipgloss.Top, links...))
}
