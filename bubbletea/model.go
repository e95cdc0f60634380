package bubbletea

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/scribe"
	"github.com/mattn/go-runewidth"
)

var _ tea.Model = Model{}

// Field identifies a focusable form element.
type Field int

// Form fields in focus order.
const (
	FieldTitle Field = iota
	FieldKeywords
	FieldWords
	FieldImages
	FieldModel
	FieldSubmit
	fieldCount
)

const (
	sidebarWidth  = 34
	minPaneWidth  = 20
	titleLimit    = 200
	keywordsLimit = 500

	helpText       = "tab/↑↓ move • ←/→ adjust • ctrl+s generate • ctrl+d download • ctrl+c quit"
	emptyTitleText = "Enter a blog title first"
	placeholder    = "Fill in the form and press ctrl+s to generate a post."
)

type noticeLevel int

const (
	noticeInfo noticeLevel = iota
	noticeWarning
	noticeError
	noticeSuccess
)

// Model is the Bubble Tea model for the blog writer form.
type Model struct {
	// Title and Keywords are the text inputs. Exported for test access.
	Title    textinput.Model
	Keywords textinput.Model
	// Viewport is the scrollable result pane. Exported for test access.
	Viewport viewport.Model
	Spinner  spinner.Model

	generate GenerateFunc
	export   ExportFunc
	theme    scribe.Theme
	styles   Styles
	cfg      Config

	models     []string
	modelIdx   int
	wordCount  int
	imageCount int
	focus      Field

	running bool
	cancel  context.CancelFunc

	request *scribe.BlogRequest // request that produced result
	result  *scribe.Result
	block   ResultBlock

	notice      string
	noticeLevel noticeLevel

	width  int
	height int
	ready  bool
}

// New creates a form Model. generate runs submitted requests, export saves
// successful posts.
func New(generate GenerateFunc, export ExportFunc, theme scribe.Theme, cfg Config) Model {
	title := textinput.New()
	title.Placeholder = "e.g. Getting started with local LLMs"
	title.Prompt = ""
	title.CharLimit = titleLimit
	title.Focus()

	keywords := textinput.New()
	keywords.Placeholder = "comma separated, optional"
	keywords.Prompt = ""
	keywords.CharLimit = keywordsLimit

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	styles := NewStyles(theme)
	sp.Style = styles.Accent

	models := scribe.ModelOptions(cfg.Probe)
	idx := slices.Index(models, scribe.BaseModelName(cfg.Model))
	if idx < 0 {
		idx = 0
	}

	return Model{
		Title:      title,
		Keywords:   keywords,
		Spinner:    sp,
		generate:   generate,
		export:     export,
		theme:      theme,
		styles:     styles,
		cfg:        cfg,
		models:     models,
		modelIdx:   idx,
		wordCount:  scribe.DefaultWordCount,
		imageCount: scribe.DefaultImageCount,
		focus:      FieldTitle,
	}
}

// Running returns whether a generation is in flight.
func (m Model) Running() bool { return m.running }

// Focus returns the focused form field.
func (m Model) Focus() Field { return m.focus }

// Request returns the request the form would submit now.
func (m Model) Request() scribe.BlogRequest {
	return scribe.BlogRequest{
		Title:      strings.TrimSpace(m.Title.Value()),
		Keywords:   strings.TrimSpace(m.Keywords.Value()),
		WordCount:  m.wordCount,
		ImageCount: m.imageCount,
		Model:      m.models[m.modelIdx],
	}
}

// Result returns the last generation result, if any.
func (m Model) Result() (scribe.Result, bool) {
	if m.result == nil {
		return scribe.Result{}, false
	}
	return *m.result, true
}

// Notice returns the transient message shown above the help line.
func (m Model) Notice() string { return m.notice }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case GenerationDoneMsg:
		return m.handleGenerationDone(msg), nil

	case ExportDoneMsg:
		if msg.Err != nil {
			m = m.setNotice(noticeError, fmt.Sprintf("Download failed: %v", msg.Err))
		} else {
			m = m.setNotice(noticeSuccess, "Saved to "+msg.Path)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Sidebar.Width(sidebarWidth).Height(m.bodyHeight()).Render(m.sidebarView()),
		" ",
		m.paneView(),
	)
	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.noticeView())
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(runewidth.Truncate(helpText, m.width, "…")))
	return b.String()
}

func (m Model) bodyHeight() int {
	return max(m.height-2, 1)
}

func (m Model) paneWidth() int {
	return max(m.width-sidebarWidth-2, minPaneWidth)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	if !m.ready {
		m.Viewport = viewport.New(m.paneWidth(), m.bodyHeight())
		m.ready = true
	} else {
		m.Viewport.Width = m.paneWidth()
		m.Viewport.Height = m.bodyHeight()
	}
	inputWidth := sidebarWidth - 4
	m.Title.Width = inputWidth
	m.Keywords.Width = inputWidth
	m.refreshViewport()
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		if m.running {
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		}
		return m, tea.Quit
	}
	if m.running {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyCtrlS:
		return m.submit()
	case tea.KeyCtrlD:
		return m.download()
	case tea.KeyTab, tea.KeyDown:
		return m.moveFocus(1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m.moveFocus(-1)
	case tea.KeyEnter:
		if m.focus == FieldSubmit {
			return m.submit()
		}
		return m.moveFocus(1)
	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.Viewport, cmd = m.Viewport.Update(msg)
		return m, cmd
	case tea.KeyLeft, tea.KeyRight:
		delta := 1
		if msg.Type == tea.KeyLeft {
			delta = -1
		}
		if m.adjust(delta) {
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case FieldTitle:
		m.Title, cmd = m.Title.Update(msg)
		if m.notice == emptyTitleText && strings.TrimSpace(m.Title.Value()) != "" {
			m.notice = ""
		}
	case FieldKeywords:
		m.Keywords, cmd = m.Keywords.Update(msg)
	}
	return m, cmd
}

// adjust changes the value of a stepped field and reports whether the
// focused field is one.
func (m *Model) adjust(delta int) bool {
	switch m.focus {
	case FieldWords:
		m.wordCount = scribe.ClampWordCount(m.wordCount + delta*scribe.WordCountStep)
	case FieldImages:
		m.imageCount = scribe.ClampImageCount(m.imageCount + delta)
	case FieldModel:
		n := len(m.models)
		m.modelIdx = (m.modelIdx + delta + n) % n
	default:
		return false
	}
	return true
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	m.focus = Field((int(m.focus) + delta + int(fieldCount)) % int(fieldCount))
	m.Title.Blur()
	m.Keywords.Blur()
	switch m.focus {
	case FieldTitle:
		return m, m.Title.Focus()
	case FieldKeywords:
		return m, m.Keywords.Focus()
	}
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	req := m.Request()
	if req.Title == "" {
		m = m.setNotice(noticeWarning, emptyTitleText)
		m.focus = FieldTitle
		m.Keywords.Blur()
		return m, m.Title.Focus()
	}

	parent := m.cfg.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	m.cancel = cancel
	m.running = true
	m.notice = ""
	m.Title.Blur()
	m.Keywords.Blur()

	return m, tea.Batch(m.Spinner.Tick, startGeneration(m.generate, ctx, req))
}

func (m Model) handleGenerationDone(msg GenerationDoneMsg) Model {
	if m.cancel != nil {
		m.cancel()
	}
	m.cancel = nil
	m.running = false

	req, res := msg.Request, msg.Result
	m.request = &req
	m.result = &res
	m.block = NewResultBlock(res, req.WordCount, m.theme, m.styles)
	m.refreshViewport()
	m.Viewport.GotoTop()

	if m.focus == FieldTitle {
		m.Title.Focus()
	} else if m.focus == FieldKeywords {
		m.Keywords.Focus()
	}
	return m
}

func (m Model) download() (tea.Model, tea.Cmd) {
	if m.result == nil || !m.result.OK() || m.export == nil {
		return m, nil
	}
	return m, startExport(m.export, m.request.Title, m.result.Text)
}

func (m Model) setNotice(level noticeLevel, text string) Model {
	m.notice = text
	m.noticeLevel = level
	return m
}

func (m *Model) refreshViewport() {
	if !m.ready || m.block == nil {
		return
	}
	m.Viewport.SetContent(m.block.View(m.Viewport.Width))
}

func (m Model) sidebarView() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Blog Writer"))
	b.WriteString("\n")
	b.WriteString(m.serviceStatus())
	b.WriteString("\n\n")

	b.WriteString(m.label(FieldTitle, "Title"))
	b.WriteString("\n  ")
	b.WriteString(m.Title.View())
	b.WriteString("\n\n")

	b.WriteString(m.label(FieldKeywords, "Keywords"))
	b.WriteString("\n  ")
	b.WriteString(m.Keywords.View())
	b.WriteString("\n\n")

	b.WriteString(m.label(FieldWords, "Words"))
	b.WriteString("\n  ")
	b.WriteString(m.stepper(FieldWords, fmt.Sprint(m.wordCount)))
	b.WriteString(" ")
	b.WriteString(m.gauge(m.wordCount-scribe.MinWordCount, scribe.MaxWordCount-scribe.MinWordCount))
	b.WriteString("\n\n")

	b.WriteString(m.label(FieldImages, "Images"))
	b.WriteString("\n  ")
	b.WriteString(m.stepper(FieldImages, fmt.Sprint(m.imageCount)))
	b.WriteString("\n\n")

	b.WriteString(m.label(FieldModel, "Model"))
	b.WriteString("\n  ")
	name := runewidth.Truncate(m.models[m.modelIdx], sidebarWidth-8, "…")
	b.WriteString(m.stepper(FieldModel, name))
	b.WriteString("\n\n")

	button := "Generate"
	if m.focus == FieldSubmit {
		b.WriteString("  " + m.styles.Button.Render(button))
	} else {
		b.WriteString("  " + m.styles.Muted.Render("[ "+button+" ]"))
	}
	return b.String()
}

func (m Model) serviceStatus() string {
	service := m.cfg.Service
	if service == "" {
		service = "service"
	}
	if !m.cfg.Probe.Available {
		return m.styles.Warning.Render(runewidth.Truncate(scribe.MarkerWarning+service+" not reachable", sidebarWidth, "…"))
	}
	status := fmt.Sprintf("● %s connected (%d models)", service, len(m.cfg.Probe.Models))
	return m.styles.Success.Render(runewidth.Truncate(status, sidebarWidth, "…"))
}

func (m Model) label(f Field, text string) string {
	if m.focus == f {
		return m.styles.Focused.Render("› " + text)
	}
	return m.styles.Label.Render("  " + text)
}

func (m Model) stepper(f Field, value string) string {
	if m.focus == f {
		return m.styles.Accent.Render("◀ " + value + " ▶")
	}
	return "  " + value + "  "
}

// gauge draws a fixed-width bar with pos/span filled.
func (m Model) gauge(pos, span int) string {
	const cells = 12
	filled := 0
	if span > 0 {
		filled = pos * cells / span
	}
	return m.styles.Accent.Render(strings.Repeat("━", filled)) +
		m.styles.Muted.Render(strings.Repeat("─", cells-filled))
}

func (m Model) paneView() string {
	switch {
	case m.running:
		return m.Spinner.View() + " " + m.styles.Muted.Render("Generating your blog post... (ctrl+c to cancel)")
	case m.block == nil:
		return m.styles.Muted.Render(placeholder)
	default:
		return m.Viewport.View()
	}
}

func (m Model) noticeView() string {
	if m.notice == "" {
		return ""
	}
	var style lipgloss.Style
	switch m.noticeLevel {
	case noticeWarning:
		style = m.styles.Warning
	case noticeError:
		style = m.styles.Error
	case noticeSuccess:
		style = m.styles.Success
	default:
		style = m.styles.Muted
	}
	return style.Render(runewidth.Truncate(m.notice, max(m.width, 1), "…"))
}

// startGeneration runs generate in a goroutine and delivers its result.
func startGeneration(generate GenerateFunc, ctx context.Context, req scribe.BlogRequest) tea.Cmd {
	return func() tea.Msg {
		return GenerationDoneMsg{Request: req, Result: generate(ctx, req)}
	}
}

func startExport(export ExportFunc, title, text string) tea.Cmd {
	return func() tea.Msg {
		path, err := export(title, text)
		return ExportDoneMsg{Path: path, Err: err}
	}
}
