package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fxui/popper/pkg/dom"
	"github.com/fxui/popper/pkg/popper"
)

// playgroundCommand creates the playground command: an interactive
// terminal canvas where a real popper.Controller positions a popper box
// against a movable reference box over the in-memory host. One terminal
// cell is one pixel.
func (c *CLI) playgroundCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "playground",
		Short: "Interactive placement playground in the terminal",
		Long: `Playground renders a reference box and its positioned popper inside the
terminal viewport, driving the full engine (measure, resolve, clip) over
the in-memory host. Arrow keys move the reference, tab cycles through the
twelve placements, and +/- adjusts the offset.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := newPlaygroundModel()
			if err != nil {
				return err
			}
			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}

// statusBarHeight is the number of terminal rows reserved below the canvas.
const statusBarHeight = 2

// playgroundModel is the bubbletea model for the playground.
type playgroundModel struct {
	win  *dom.MemoryWindow
	ref  *dom.MemoryElement
	pop  *dom.MemoryElement
	ctrl *popper.Controller

	// last holds the most recent position update, written by the
	// controller's OnUpdate callback.
	last *popper.Update

	placementIdx int
	offset       float64

	width  int
	height int
	err    error
}

func newPlaygroundModel() (*playgroundModel, error) {
	win := dom.NewMemoryWindow(80, 24)
	ref := dom.NewMemoryElement("reference", dom.Rect{Left: 35, Top: 10, Width: 10, Height: 3})
	pop := dom.NewMemoryElement("popper", dom.Rect{Width: 16, Height: 4})

	last := &popper.Update{}
	ctrl, err := popper.New(win, ref, pop, &popper.Options{
		Placement: popper.Placements[0],
		OnUpdate:  func(u popper.Update) { *last = u },
	})
	if err != nil {
		return nil, err
	}

	return &playgroundModel{
		win:  win,
		ref:  ref,
		pop:  pop,
		ctrl: ctrl,
		last: last,
	}, nil
}

func (m *playgroundModel) Init() tea.Cmd {
	return nil
}

func (m *playgroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		canvasHeight := max(msg.Height-statusBarHeight, 1)
		// Resizing the memory window dispatches a resize event, which
		// repositions through the controller's own window listener once
		// the first UpdatePosition has attached it.
		m.win.Resize(float64(msg.Width), float64(canvasHeight))
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.ctrl.CleanupEvents()
			return m, tea.Quit
		case "tab", "n":
			m.placementIdx = (m.placementIdx + 1) % len(popper.Placements)
			m.refresh()
		case "shift+tab", "p":
			m.placementIdx = (m.placementIdx + len(popper.Placements) - 1) % len(popper.Placements)
			m.refresh()
		case "+", "=":
			m.offset++
			m.refresh()
		case "-":
			if m.offset > 0 {
				m.offset--
			}
			m.refresh()
		case "up", "k":
			m.moveReference(0, -1)
		case "down", "j":
			m.moveReference(0, 1)
		case "left", "h":
			m.moveReference(-1, 0)
		case "right", "l":
			m.moveReference(1, 0)
		}
	}
	return m, nil
}

func (m *playgroundModel) moveReference(dx, dy float64) {
	rect := m.ref.BoundingRect()
	rect.Left += dx
	rect.Top += dy
	m.ref.SetRect(rect)
	m.refresh()
}

func (m *playgroundModel) refresh() {
	offset := m.offset
	m.err = m.ctrl.SetOptions(popper.Reconfigure{
		Placement: popper.Placements[m.placementIdx],
		Offset:    &offset,
	})
}

func (m *playgroundModel) View() string {
	if m.width == 0 {
		return "measuring terminal..."
	}

	canvasWidth := m.width
	canvasHeight := max(m.height-statusBarHeight, 1)

	canvas := make([][]rune, canvasHeight)
	for y := range canvas {
		canvas[y] = make([]rune, canvasWidth)
		for x := range canvas[y] {
			canvas[y][x] = ' '
		}
	}

	refRect := m.ref.BoundingRect()
	drawBox(canvas, refRect.Left, refRect.Top, refRect.Width, refRect.Height, '░')

	popRect := m.pop.BoundingRect()
	drawBox(canvas, m.last.X, m.last.Y, popRect.Width, popRect.Height, '█')

	var b strings.Builder
	for _, row := range canvas {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}

	status := fmt.Sprintf("%s  %s  %s",
		StyleTitle.Render(string(popper.Placements[m.placementIdx])),
		StyleNumber.Render(fmt.Sprintf("offset=%g", m.offset)),
		StyleValue.Render(fmt.Sprintf("x=%g y=%g", m.last.X, m.last.Y)),
	)
	if m.err != nil {
		status = StyleWarning.Render(m.err.Error())
	}
	b.WriteString(status)
	b.WriteByte('\n')
	b.WriteString(StyleDim.Render("arrows move · tab cycles placement · +/- offset · q quits"))

	return b.String()
}

// drawBox fills a rectangle on the canvas, clipping at the edges.
func drawBox(canvas [][]rune, left, top, width, height float64, fill rune) {
	x0, y0 := int(left), int(top)
	for y := y0; y < y0+int(height); y++ {
		if y < 0 || y >= len(canvas) {
			continue
		}
		for x := x0; x < x0+int(width); x++ {
			if x < 0 || x >= len(canvas[y]) {
				continue
			}
			canvas[y][x] = fill
		}
	}
}
