package tui

import (
	"context"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/pocket/internal/calendar"
	"github.com/dbmrq/pocket/internal/carousel"
	"github.com/dbmrq/pocket/internal/clipboard"
	"github.com/dbmrq/pocket/internal/config"
	"github.com/dbmrq/pocket/internal/gesture"
	"github.com/dbmrq/pocket/internal/logging"
	"github.com/dbmrq/pocket/internal/tui/components"
	"github.com/dbmrq/pocket/internal/tui/styles"
)

// Mode selects which widgets the program shows.
type Mode int

const (
	// ModeBoth shows the card carousel and the calendar side by side.
	ModeBoth Mode = iota
	// ModeCard shows the card carousel only.
	ModeCard
	// ModeCalendar shows the calendar only.
	ModeCalendar
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeCard:
		return "card"
	case ModeCalendar:
		return "calendar"
	default:
		return "both"
	}
}

type widget int

const (
	widgetNone widget = iota
	widgetCard
	widgetCalendar
)

// Box geometry: border plus horizontal padding on each side.
const (
	boxGap    = 2
	boxInsetX = 2
	boxInsetY = 1
)

// region is the screen rectangle of a widget box.
type region struct {
	widget     widget
	x, y, w, h int
}

func (r region) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// Options configures a Model.
type Options struct {
	Mode   Mode
	Config *config.Config
	// Clipboard receives the card number; nil uses the system clipboard.
	Clipboard clipboard.Writer
	SessionID string
	// Logger defaults to the global logger.
	Logger *logging.Logger
}

// Model is the Bubble Tea model for the pocket TUI.
type Model struct {
	// Components
	header       *components.Header
	cardView     *components.CardView
	calendarView *components.CalendarView
	footer       *components.Footer
	helpOverlay  *components.HelpOverlay

	keys      KeyMap
	mode      Mode
	cfg       *config.Config
	clip      clipboard.Writer
	sessionID string

	// Gestures
	horizontal *gesture.Tracker
	vertical   *gesture.Tracker
	dragging   widget
	focus      widget

	log         *logging.Logger
	cardLog     *logging.Logger
	calendarLog *logging.Logger

	// Window dimensions
	width  int
	height int

	quitting bool
}

// New creates a new TUI model.
func New(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.System()
	}
	base := opts.Logger
	if base == nil {
		base = logging.Global()
	}

	cardView, err := components.NewCardView(newCarousel(cfg), cardData(cfg))
	if err != nil {
		return nil, err
	}
	cardView.Indicator().SetDelay(cfg.Clipboard.Indicator)

	cal := calendar.New(cfg.Calendar.Month, cfg.Gesture.CalendarThreshold)

	keys := DefaultKeyMap(opts.Mode)
	ctx := logging.WithSessionID(context.Background(), opts.SessionID)
	log := base.WithContext(ctx)

	m := &Model{
		header:       components.NewHeader(),
		cardView:     cardView,
		calendarView: components.NewCalendarView(cal, calendarData(cfg)),
		footer:       components.NewFooter(keys),
		helpOverlay:  components.NewHelpOverlay(),
		keys:         keys,
		mode:         opts.Mode,
		cfg:          cfg,
		clip:         clip,
		sessionID:    opts.SessionID,
		log:          log,
		cardLog:      base.WithContext(logging.WithWidget(ctx, "card")),
		calendarLog:  base.WithContext(logging.WithWidget(ctx, "calendar")),
	}
	m.resetTrackers()
	m.helpOverlay.SetGroups(m.helpGroups())
	m.focus = m.widgets()[0]
	m.updateHeader()
	return m, nil
}

func newCarousel(cfg *config.Config) *carousel.Carousel {
	cards := make([]carousel.Card, len(cfg.Card.Cards))
	for i, e := range cfg.Card.Cards {
		cards[i] = carousel.Card{ColorTag: e.Color}
	}
	return carousel.New(cards, cfg.Gesture.CarouselThreshold)
}

func cardData(cfg *config.Config) components.CardData {
	return components.CardData{
		DisplayName:      cfg.Card.DisplayName,
		Balance:          cfg.Card.Balance,
		AvailableBalance: cfg.Card.AvailableBalance,
		CardNumber:       cfg.Card.CardNumber,
	}
}

func calendarData(cfg *config.Config) components.CalendarData {
	return components.CalendarData{
		Markers:      cfg.Calendar.MarkerTable(),
		HighlightDay: cfg.Calendar.HighlightDay,
		Summary:      cfg.Calendar.Summary,
	}
}

func (m *Model) resetTrackers() {
	m.horizontal = gesture.NewTracker(gesture.Horizontal, m.cfg.Gesture.CellWidth)
	m.vertical = gesture.NewTracker(gesture.Vertical, m.cfg.Gesture.CellHeight)
	m.dragging = widgetNone
}

func (m *Model) helpGroups() []components.ShortcutGroup {
	groups := []components.ShortcutGroup{
		components.GroupFromBindings("Cards", m.keys.PrevCard, m.keys.NextCard, m.keys.SelectCard, m.keys.Copy),
		components.GroupFromBindings("Calendar", m.keys.PrevMonth, m.keys.NextMonth, m.keys.ResetMonth),
		components.GroupFromBindings("General", m.keys.Help, m.keys.Quit),
	}

	mouse := components.ShortcutGroup{Title: "Mouse"}
	if m.showsCard() {
		mouse.Shortcuts = append(mouse.Shortcuts,
			components.Shortcut{Key: "drag ←→", Desc: "Swipe cards"},
			components.Shortcut{Key: "click dot", Desc: "Jump to card"},
			components.Shortcut{Key: "click ⧉", Desc: "Copy card number"},
		)
	}
	if m.showsCalendar() {
		mouse.Shortcuts = append(mouse.Shortcuts,
			components.Shortcut{Key: "drag ↑↓", Desc: "Change month"},
			components.Shortcut{Key: "wheel", Desc: "Scroll months"},
		)
	}
	groups = append(groups, mouse)

	out := groups[:0]
	for _, g := range groups {
		if len(g.Shortcuts) > 0 {
			out = append(out, g)
		}
	}
	return out
}

// Init is the Bubble Tea initialization function.
func (m *Model) Init() tea.Cmd {
	m.log.Info("pocket started",
		"mode", m.mode.String(),
		"cards", m.cardView.Carousel().Len(),
		"month", m.calendarView.Calendar().Month().String())
	return tea.SetWindowTitle("pocket")
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The help overlay captures input while visible.
	if m.helpOverlay.IsVisible() {
		switch msg.(type) {
		case tea.KeyMsg:
			return m, m.helpOverlay.Update(msg)
		case tea.MouseMsg:
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case clipboard.CopiedMsg:
		return m, m.cardView.Indicator().Show()

	case clipboard.CopyFailedMsg:
		// Already logged; the indicator stays hidden.
		return m, nil

	case components.CopyExpiredMsg:
		m.cardView.Indicator().Update(msg)
		return m, nil

	case components.HelpClosedMsg:
		return m, nil

	case ConfigReloadedMsg:
		if msg.Err != nil {
			m.log.Warn("config reload rejected", "error", msg.Err)
			m.footer.SetMessage("Config reload failed, keeping current settings", true)
			return m, nil
		}
		if err := m.applyConfig(msg.Config); err != nil {
			m.log.Warn("config reload rejected", "error", err)
			m.footer.SetMessage("Config reload failed, keeping current settings", true)
			return m, nil
		}
		m.log.Info("config reloaded")
		m.footer.SetMessage("Config reloaded", false)
		return m, nil

	case QuitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.cardView.Carousel()
	cal := m.calendarView.Calendar()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.helpOverlay.Toggle()

	case key.Matches(msg, m.keys.PrevCard):
		m.cardChanged(c.Prev(), "key")

	case key.Matches(msg, m.keys.NextCard):
		m.cardChanged(c.Next(), "key")

	case key.Matches(msg, m.keys.SelectCard):
		m.cardChanged(c.SetActiveIndex(int(msg.String()[0]-'1')), "key")

	case key.Matches(msg, m.keys.Copy):
		m.focus = widgetCard
		return m, clipboard.Copy(m.clip, m.cardView.CardNumber())

	case key.Matches(msg, m.keys.PrevMonth):
		cal.Prev()
		m.monthChanged("key")

	case key.Matches(msg, m.keys.NextMonth):
		cal.Next()
		m.monthChanged("key")

	case key.Matches(msg, m.keys.ResetMonth):
		if cal.Month() != m.cfg.Calendar.Month {
			cal.SetMonth(m.cfg.Calendar.Month)
			m.monthChanged("key")
		}
	}

	return m, nil
}

// handleMouse turns presses, motion and releases into drags and clicks.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown,
			tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
			m.handleWheel(msg)
			return nil
		case tea.MouseButtonLeft:
			r, ok := m.regionAt(msg.X, msg.Y)
			if !ok {
				return nil
			}
			m.dragging = r.widget
			m.focus = r.widget
			m.trackerFor(r.widget).Press(msg.X, msg.Y)
			return nil
		}
	}

	if m.dragging == widgetNone {
		return nil
	}
	drag, done := m.trackerFor(m.dragging).Update(msg)
	if !done {
		return nil
	}
	w := m.dragging
	m.dragging = widgetNone
	return m.finishDrag(w, drag)
}

func (m *Model) handleWheel(msg tea.MouseMsg) {
	r, ok := m.regionAt(msg.X, msg.Y)
	if !ok {
		return
	}
	switch {
	case r.widget == widgetCalendar && msg.Button == tea.MouseButtonWheelUp:
		m.calendarView.Calendar().Prev()
		m.monthChanged("wheel")
	case r.widget == widgetCalendar && msg.Button == tea.MouseButtonWheelDown:
		m.calendarView.Calendar().Next()
		m.monthChanged("wheel")
	case r.widget == widgetCard && msg.Button == tea.MouseButtonWheelLeft:
		m.cardChanged(m.cardView.Carousel().Prev(), "wheel")
	case r.widget == widgetCard && msg.Button == tea.MouseButtonWheelRight:
		m.cardChanged(m.cardView.Carousel().Next(), "wheel")
	}
}

func (m *Model) finishDrag(w widget, drag gesture.Drag) tea.Cmd {
	switch w {
	case widgetCard:
		if drag.Click() {
			return m.clickCard(drag.EndX, drag.EndY)
		}
		tr, changed := m.cardView.Carousel().HandleDrag(drag.Offset)
		m.cardLog.Debug("drag released", "offset", drag.Offset, "transition", tr.String())
		m.cardChanged(changed, "drag")

	case widgetCalendar:
		tr := m.calendarView.Calendar().HandleDrag(drag.Offset)
		m.calendarLog.Debug("drag released", "offset", drag.Offset, "transition", tr.String())
		if tr != gesture.None {
			m.monthChanged("drag")
		}
	}
	return nil
}

// clickCard handles a click at the absolute cell (x, y) inside the card box.
func (m *Model) clickCard(x, y int) tea.Cmd {
	r, ok := m.region(widgetCard)
	if !ok {
		return nil
	}
	x, y = x-r.x-boxInsetX, y-r.y-boxInsetY

	if i, ok := m.cardView.DotAt(x, y); ok {
		m.cardChanged(m.cardView.Carousel().SetActiveIndex(i), "dot")
		return nil
	}
	if m.cardView.CopyAt(x, y) {
		return clipboard.Copy(m.clip, m.cardView.CardNumber())
	}
	return nil
}

func (m *Model) trackerFor(w widget) *gesture.Tracker {
	if w == widgetCalendar {
		return m.vertical
	}
	return m.horizontal
}

func (m *Model) cardChanged(changed bool, source string) {
	m.focus = widgetCard
	if !changed {
		return
	}
	c := m.cardView.Carousel()
	m.cardLog.Info("card changed",
		"index", c.ActiveIndex(),
		"color", c.Active().ColorTag,
		"source", source)
	m.updateHeader()
}

func (m *Model) monthChanged(source string) {
	m.focus = widgetCalendar
	m.calendarLog.Info("month changed",
		"month", m.calendarView.Calendar().Month().String(),
		"source", source)
	m.updateHeader()
}

// applyConfig swaps in a reloaded configuration. The month on screen is kept.
func (m *Model) applyConfig(cfg *config.Config) error {
	if err := m.cardView.SetData(cardData(cfg)); err != nil {
		return err
	}

	if !slices.Equal(m.cfg.Card.Cards, cfg.Card.Cards) {
		active := m.cardView.Carousel().ActiveIndex()
		c := newCarousel(cfg)
		c.SetActiveIndex(active)
		m.cardView.SetCarousel(c)
	} else {
		m.cardView.Carousel().SetThreshold(cfg.Gesture.CarouselThreshold)
	}
	m.cardView.Indicator().SetDelay(cfg.Clipboard.Indicator)

	m.calendarView.SetData(calendarData(cfg))
	m.calendarView.Calendar().SetThreshold(cfg.Gesture.CalendarThreshold)

	m.cfg = cfg
	m.resetTrackers()
	m.updateHeader()
	return nil
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	m.header.SetWidth(width)
	m.footer.SetWidth(width)
	m.helpOverlay.SetSize(min(60, width), height)

	avail := width - 2*boxInsetX
	if m.showsCalendar() {
		avail -= m.calendarView.Width() + 2*boxInsetX + boxGap
	}
	m.cardView.SetWidth(min(components.DefaultCardWidth, avail))
}

// updateHeader updates the header component with current state.
func (m *Model) updateHeader() {
	data := components.HeaderData{
		DisplayName: m.cfg.Card.DisplayName,
		Month:       m.calendarView.Calendar().Month().Title(),
		SessionID:   m.sessionID,
	}
	if m.showsCard() {
		data.Accent = m.cardView.Carousel().Accent()
	}
	m.header.SetData(data)
}

func (m *Model) showsCard() bool {
	return m.mode != ModeCalendar
}

func (m *Model) showsCalendar() bool {
	return m.mode != ModeCard
}

func (m *Model) widgets() []widget {
	switch m.mode {
	case ModeCard:
		return []widget{widgetCard}
	case ModeCalendar:
		return []widget{widgetCalendar}
	default:
		return []widget{widgetCard, widgetCalendar}
	}
}

// layout returns the screen regions of the widget boxes in the order they
// are drawn.
func (m *Model) layout() []region {
	top := lipgloss.Height(m.header.View()) + 1
	x := 0
	regions := make([]region, 0, 2)
	for _, w := range m.widgets() {
		box := m.renderBox(w, m.focus)
		r := region{widget: w, x: x, y: top, w: lipgloss.Width(box), h: lipgloss.Height(box)}
		regions = append(regions, r)
		x += r.w + boxGap
	}
	return regions
}

func (m *Model) regionAt(x, y int) (region, bool) {
	for _, r := range m.layout() {
		if r.contains(x, y) {
			return r, true
		}
	}
	return region{}, false
}

func (m *Model) region(w widget) (region, bool) {
	for _, r := range m.layout() {
		if r.widget == w {
			return r, true
		}
	}
	return region{}, false
}

func (m *Model) renderBox(w widget, focus widget) string {
	style := styles.BoxStyle
	if w == focus {
		style = styles.FocusedBoxStyle
	}
	if w == widgetCalendar {
		return style.Render(m.calendarView.View())
	}
	return style.Render(m.cardView.View())
}

func (m *Model) renderBody(focus widget) string {
	var boxes []string
	for i, w := range m.widgets() {
		if i > 0 {
			boxes = append(boxes, strings.Repeat(" ", boxGap))
		}
		boxes = append(boxes, m.renderBox(w, focus))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// Frame renders the widgets once without chrome or focus, for printing.
func (m *Model) Frame() string {
	return m.renderBody(widgetNone)
}

// View renders the TUI.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.header.View())
	b.WriteString("\n\n")

	if m.helpOverlay.IsVisible() {
		b.WriteString(m.helpOverlay.View())
	} else {
		b.WriteString(m.renderBody(m.focus))
	}

	b.WriteString("\n\n")
	b.WriteString(m.footer.View())
	return b.String()
}
