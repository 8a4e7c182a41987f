package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/permlens/permlens/pkg/graph"
	"github.com/permlens/permlens/pkg/layout"
	"github.com/permlens/permlens/pkg/render"
	"github.com/permlens/permlens/pkg/scene"
)

// Interaction step sizes, in screen pixels per keypress.
const (
	panStep    = 40.0
	dragStep   = 20.0
	zoomFactor = 1.2
	frameTick  = 16 * time.Millisecond
)

// newViewCmd creates the view command: an interactive session that keeps
// an SVG preview file up to date while the graph is panned, zoomed,
// rearranged, and explored from the terminal.
func newViewCmd(configPath *string) *cobra.Command {
	var (
		flags  diagramFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "view [graph.json]",
		Short: "Explore a permission graph interactively",
		Long: `View starts an interactive session for a permission graph. The diagram
is continuously written to the preview file (open it in a browser and
reload, or use a file-watching viewer); the terminal shows state and
accepts navigation keys.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, vp, _, err := resolveOptions(*configPath, &flags)
			if err != nil {
				return err
			}

			g, err := graph.ReadFile(args[0])
			if err != nil {
				return err
			}
			m := graph.NewModel(graph.Normalize(g))

			model := newViewModel(m, opts, vp, output)
			p := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return err
			}
			if vm, ok := final.(viewModel); ok && vm.err != nil {
				return vm.err
			}
			printSuccess("Preview left at")
			printFile(output)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "preview.svg", "preview SVG file")
	return cmd
}

// =============================================================================
// Messages
// =============================================================================

// layoutMsg carries a finished layout pass back into the update loop.
type layoutMsg struct {
	res      *layout.Result
	preserve bool
	err      error
}

// animTickMsg drives the fit-reset animation.
type animTickMsg time.Time

// =============================================================================
// Model
// =============================================================================

// viewModel is the bubbletea model for the interactive session. All scene
// mutation happens in Update, keeping the single-writer contract.
type viewModel struct {
	sc     *scene.Scene
	opts   layout.Options
	vp     layout.Viewport
	output string

	status  string
	err     error
	loading bool

	// Fit-reset animation state.
	animating bool
	animStart time.Time
	animFrom  layout.Transform
}

func newViewModel(m *graph.Model, opts layout.Options, vp layout.Viewport, output string) viewModel {
	return viewModel{
		sc:      scene.New(m, opts, vp),
		opts:    opts,
		vp:      vp,
		output:  output,
		status:  "computing layout…",
		loading: true,
	}
}

func (m viewModel) Init() tea.Cmd {
	return m.computeLayout(false)
}

// computeLayout runs a layout pass off the update loop.
func (m viewModel) computeLayout(preserve bool) tea.Cmd {
	sc, opts, vp := m.sc, m.opts, m.vp
	return func() tea.Msg {
		res, err := layout.Compute(context.Background(), sc.Model(), opts, vp)
		return layoutMsg{res: res, preserve: preserve, err: err}
	}
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case layoutMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.sc.Apply(msg.res, msg.preserve)
		m.animating = false
		m.status = fmt.Sprintf("layout: %s / %s", m.opts.Strategy, m.opts.Direction)
		return m, m.writePreview()

	case animTickMsg:
		if !m.animating {
			return m, nil
		}
		t := float64(time.Since(m.animStart)) / float64(scene.ResetDuration)
		if t >= 1 {
			m.sc.SetTransform(m.sc.FitTarget())
			m.animating = false
			m.status = "view reset"
			return m, m.writePreview()
		}
		m.sc.SetTransform(m.animFrom.Lerp(m.sc.FitTarget(), t))
		return m, tea.Batch(m.writePreview(), m.animTick())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m viewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		if s := msg.String(); s == "q" || s == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		m.sc.Pan(0, panStep)
	case "down", "j":
		m.sc.Pan(0, -panStep)
	case "left", "h":
		m.sc.Pan(panStep, 0)
	case "right", "l":
		m.sc.Pan(-panStep, 0)

	case "+", "=":
		m.sc.ZoomAt(zoomFactor, m.vp.Width/2, m.vp.Height/2)
		m.status = fmt.Sprintf("zoom %.0f%%", m.sc.Transform().Scale*100)
	case "-", "_":
		m.sc.ZoomAt(1/zoomFactor, m.vp.Width/2, m.vp.Height/2)
		m.status = fmt.Sprintf("zoom %.0f%%", m.sc.Transform().Scale*100)

	case "f":
		m.animating = true
		m.animStart = time.Now()
		m.animFrom = m.sc.Transform()
		m.status = "resetting view"
		return m, m.animTick()

	case "tab":
		m.selectNext()
	case "esc":
		m.sc.ClearSelection()
		m.status = "selection cleared"

	case "K", "J", "H", "L":
		return m.dragSelected(msg.String())

	case "d":
		m.opts.Direction = nextDirection(m.opts.Direction)
		m.loading = true
		m.status = fmt.Sprintf("direction %s…", m.opts.Direction)
		return m, m.computeLayout(false)
	case "g":
		if m.opts.Strategy == layout.StrategyHierarchical {
			m.opts.Strategy = layout.StrategyGrid
		} else {
			m.opts.Strategy = layout.StrategyHierarchical
		}
		m.loading = true
		m.status = fmt.Sprintf("strategy %s…", m.opts.Strategy)
		return m, m.computeLayout(false)
	case "r":
		m.loading = true
		m.status = "re-laying out…"
		return m, m.computeLayout(true)

	default:
		return m, nil
	}
	return m, m.writePreview()
}

// selectNext cycles the selection through the nodes in draw order.
func (m *viewModel) selectNext() {
	nodes := m.sc.Model().Nodes()
	if len(nodes) == 0 {
		return
	}
	current := m.sc.Selected()
	next := 0
	for i, n := range nodes {
		if n.ID == current {
			next = (i + 1) % len(nodes)
			break
		}
	}
	m.sc.Select(nodes[next].ID)
	// Select toggles; reselecting the sole node would clear it.
	if m.sc.Selected() == "" && nodes[next].ID == current {
		m.sc.Select(nodes[(next+1)%len(nodes)].ID)
	}
	if id := m.sc.Selected(); id != "" {
		m.status = fmt.Sprintf("selected %s", id)
	}
}

// dragSelected moves the selected node one step in diagram space. Each
// keypress is a complete grab-move-release cycle.
func (m viewModel) dragSelected(key string) (tea.Model, tea.Cmd) {
	id := m.sc.Selected()
	if id == "" {
		m.status = "select a node first (tab)"
		return m, nil
	}

	var dx, dy float64
	switch key {
	case "K":
		dy = -dragStep
	case "J":
		dy = dragStep
	case "H":
		dx = -dragStep
	case "L":
		dx = dragStep
	}

	scale := m.sc.Transform().Scale
	if m.sc.StartDrag(id) {
		m.sc.DragBy(dx/scale, dy/scale)
		m.sc.EndDrag()
		m.status = fmt.Sprintf("moved %s", id)
	}
	return m, m.writePreview()
}

func (m viewModel) animTick() tea.Cmd {
	return tea.Tick(frameTick, func(t time.Time) tea.Msg { return animTickMsg(t) })
}

// writePreview renders the current frame to the preview file.
func (m viewModel) writePreview() tea.Cmd {
	svg := render.SVG(m.sc.Frame(), render.WithHover())
	output := m.output
	return func() tea.Msg {
		_ = os.WriteFile(output, svg, 0644)
		return nil
	}
}

func nextDirection(d layout.Direction) layout.Direction {
	switch d {
	case layout.DirectionTB:
		return layout.DirectionLR
	case layout.DirectionLR:
		return layout.DirectionBT
	case layout.DirectionBT:
		return layout.DirectionRL
	default:
		return layout.DirectionTB
	}
}

func (m viewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Permlens"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleDim.Render("layout failed: " + m.err.Error()))
		return b.String()
	}

	model := m.sc.Model()
	b.WriteString(fmt.Sprintf("  %s %s\n", StyleDim.Render("graph"),
		StyleValue.Render(fmt.Sprintf("%d nodes, %d edges", model.NodeCount(), model.EdgeCount()))))
	b.WriteString(fmt.Sprintf("  %s %s\n", StyleDim.Render("layout"),
		StyleValue.Render(fmt.Sprintf("%s / %s", m.opts.Strategy, m.opts.Direction))))
	b.WriteString(fmt.Sprintf("  %s %s\n", StyleDim.Render("zoom"),
		StyleValue.Render(fmt.Sprintf("%.0f%%", m.sc.Transform().Scale*100))))

	selected := m.sc.Selected()
	if selected == "" {
		selected = "—"
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", StyleDim.Render("select"), StyleHighlight.Render(selected)))
	b.WriteString(fmt.Sprintf("  %s %s\n\n", StyleDim.Render("preview"), StyleValue.Render(m.output)))

	if m.status != "" {
		b.WriteString("  " + StyleDim.Render(m.status) + "\n\n")
	}

	b.WriteString(StyleDim.Render("  ↑↓←→/hjkl pan  +/- zoom  f fit  tab select  HJKL move node"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  d direction  g strategy  r re-layout  esc clear  q quit"))
	return b.String()
}
