// Package tui drives the lab from a terminal. It mounts the same views as
// the web host, with an in-memory fragment source standing in for the
// address bar.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vango-dev/rerender/pkg/app"
	"github.com/vango-dev/rerender/pkg/router"
	"github.com/vango-dev/rerender/pkg/vdom"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	headingStyle = lipgloss.NewStyle().Bold(true)
	statusStyle  = lipgloss.NewStyle().Faint(true)
	focusStyle   = lipgloss.NewStyle().Reverse(true)
	preStyle     = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("6"))

	boxStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	focusedBoxStyle = boxStyle.BorderForeground(lipgloss.Color("12"))
)

// Model is the bubbletea model of the terminal host.
type Model struct {
	app *app.App
	src *router.MemorySource

	tree     *vdom.VNode
	hids     *vdom.HIDGenerator
	handlers map[string]vdom.Handler
	targets  int
	focus    int
	status   string
}

// New creates a model showing location.
func New(location string, opts ...app.Option) *Model {
	src := router.NewMemorySource(location)
	m := &Model{
		app:  app.New(src, opts...),
		src:  src,
		hids: vdom.NewHIDGenerator(),
	}
	m.refresh()
	return m
}

// App returns the model's app.
func (m *Model) App() *app.App {
	return m.app
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	prev := m.app.Location()
	switch key.String() {
	case "q", "ctrl+c":
		m.app.Close()
		return m, tea.Quit
	case "tab", "down", "j":
		m.move(1)
	case "shift+tab", "up", "k":
		m.move(-1)
	case "enter", " ":
		m.click()
	case "b", "left":
		if !m.src.Back() {
			m.status = "no earlier location"
		}
	case "f", "right":
		if !m.src.Forward() {
			m.status = "no later location"
		}
	case "1", "2", "3", "4", "5", "6", "7":
		locs := router.Locations()
		i := int(key.String()[0] - '1')
		if i < len(locs) {
			m.app.Navigate(string(locs[i]))
		}
	}

	if m.app.Location() != prev {
		m.focus = 0
		m.status = "→ " + string(m.app.Location())
	}
	m.refresh()
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Re-render Lab"))
	b.WriteString("  ")
	b.WriteString(statusStyle.Render("#" + string(m.app.Location())))
	b.WriteString("\n\n")
	b.WriteString(m.block(m.tree))
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render(m.stats()))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(statusStyle.Render("tab/shift+tab focus • enter click • b/f back/forward • 1-7 jump • q quit"))
	return b.String()
}

// refresh re-reads the tree and numbers its interactive elements. Focus
// index i is the element with HID "h<i+1>".
func (m *Model) refresh() {
	m.tree = m.app.Render()
	m.hids.Reset()
	vdom.AssignHIDs(m.tree, m.hids)
	m.handlers = vdom.CollectHandlers(m.tree)
	m.targets = vdom.CountInteractive(m.tree)
	if m.focus >= m.targets {
		m.focus = m.targets - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
}

func (m *Model) move(delta int) {
	if m.targets == 0 {
		return
	}
	m.focus = (m.focus + delta + m.targets) % m.targets
	m.status = ""
}

// focusedHID returns the HID of the focused element, or "".
func (m *Model) focusedHID() string {
	if m.focus >= m.targets {
		return ""
	}
	return fmt.Sprintf("h%d", m.focus+1)
}

func (m *Model) click() {
	hid := m.focusedHID()
	h, ok := m.handlers[hid+"_onclick"]
	if !ok {
		return
	}
	m.status = "clicked " + describe(vdom.FindByHID(m.tree, hid))
	m.app.Dispatch(h.Call)
}

func (m *Model) focused(n *vdom.VNode) bool {
	return n.HID != "" && n.HID == m.focusedHID()
}

// describe names an element for the status line.
func describe(n *vdom.VNode) string {
	if n == nil {
		return "?"
	}
	if n.Tag == "button" {
		return "[" + strings.TrimSpace(vdom.TextContent(n)) + "]"
	}
	if class, _ := n.Props["class"].(string); class != "" {
		return strings.Fields(class)[0]
	}
	return n.Tag
}

func (m *Model) stats() string {
	stats := m.app.Stats()
	parts := make([]string, 0, len(stats))
	for _, s := range stats {
		parts = append(parts, fmt.Sprintf("%s=%d", s.Path, s.Renders))
	}
	return "renders: " + strings.Join(parts, " ")
}

// block renders n as a block of lines.
func (m *Model) block(n *vdom.VNode) string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case vdom.KindText, vdom.KindRaw:
		return collapse(n.Text)
	case vdom.KindComponent:
		if n.Comp == nil {
			return ""
		}
		return m.block(n.Comp.Render())
	}

	switch n.Tag {
	case "h1", "h2", "h3", "h4":
		return headingStyle.Render(strings.TrimSpace(vdom.TextContent(n)))
	case "button":
		return m.button(n)
	case "p", "li", "td", "th", "span", "small", "strong", "em", "a", "code":
		line := m.inline(n)
		if n.Tag == "li" {
			line = "• " + line
		}
		if n.IsInteractive() && m.focused(n) {
			line = focusStyle.Render(line)
		}
		return line
	case "pre":
		return preStyle.Render(strings.TrimRight(vdom.TextContent(n), "\n"))
	case "tr":
		cells := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			if s := m.inline(c); s != "" {
				cells = append(cells, s)
			}
		}
		return strings.Join(cells, " │ ")
	}

	body := m.blocks(n.Children)
	if n.HasClass("box") || n.HasClass("box-main") {
		style := boxStyle
		if m.focused(n) {
			style = focusedBoxStyle
			body = focusStyle.Render("▶") + " " + body
		}
		return style.Render(body)
	}
	return body
}

func (m *Model) blocks(children []*vdom.VNode) string {
	var lines []string
	var row []string
	flush := func() {
		if len(row) > 0 {
			lines = append(lines, strings.Join(row, " "))
			row = nil
		}
	}
	for _, c := range children {
		// Adjacent buttons share a row.
		if c != nil && c.Kind == vdom.KindElement && c.Tag == "button" {
			row = append(row, m.button(c))
			continue
		}
		flush()
		if s := m.block(c); s != "" {
			lines = append(lines, s)
		}
	}
	flush()
	return strings.Join(lines, "\n")
}

// inline renders n as a single line.
func (m *Model) inline(n *vdom.VNode) string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case vdom.KindText, vdom.KindRaw:
		return collapse(n.Text)
	case vdom.KindComponent:
		if n.Comp == nil {
			return ""
		}
		return m.inline(n.Comp.Render())
	}
	if n.Kind == vdom.KindElement && n.Tag == "button" {
		return m.button(n)
	}
	var parts []string
	for _, c := range n.Children {
		if s := m.inline(c); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) button(n *vdom.VNode) string {
	label := "[" + strings.TrimSpace(vdom.TextContent(n)) + "]"
	if m.focused(n) {
		return focusStyle.Render(label)
	}
	return label
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Run runs the terminal host until the user quits or ctx is done.
func Run(ctx context.Context, location string, opts ...app.Option) error {
	m := New(location, opts...)
	defer m.app.Close()

	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
