package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/dbmrq/pocket/internal/carousel"
	"github.com/dbmrq/pocket/internal/format"
	"github.com/dbmrq/pocket/internal/gesture"
	"github.com/dbmrq/pocket/internal/palette"
	"github.com/dbmrq/pocket/internal/tui/styles"
)

// DefaultCardWidth is the outer width of the card face in cells.
const DefaultCardWidth = 40

const minCardWidth = 28

// Rows of the card view, counted from its first line.
const (
	cardRowGreeting = 0
	cardRowName     = 1
	cardRowFace     = 3
	cardFaceHeight  = 7
	cardRowNumber   = cardRowFace + 5
	cardRowDots     = cardRowFace + cardFaceHeight + 1
	cardRowActions  = cardRowDots + 2
	cardHeight      = cardRowActions + 1
)

// CardData is the text shown on every card. Strings are displayed as written
// apart from the masked card number and the balance cents.
type CardData struct {
	DisplayName      string
	Balance          string
	AvailableBalance string
	CardNumber       string
}

// CardView renders the card carousel: greeting, the active card face,
// pagination dots and the action row.
type CardView struct {
	carousel *carousel.Carousel
	data     CardData

	masked string
	whole  string
	cents  string

	dots      paginator.Model
	indicator *CopyIndicator
	width     int
}

// NewCardView creates a view over c. It fails when the card number or the
// balance cannot be formatted.
func NewCardView(c *carousel.Carousel, data CardData) (*CardView, error) {
	dots := paginator.New()
	dots.Type = paginator.Dots
	dots.ActiveDot = lipgloss.NewStyle().Foreground(styles.ActiveDot).Render("●") + " "
	dots.InactiveDot = lipgloss.NewStyle().Foreground(styles.InactiveDot).Render("•") + " "

	v := &CardView{
		carousel:  c,
		dots:      dots,
		indicator: NewCopyIndicator(DefaultCopyIndicatorDelay),
		width:     DefaultCardWidth,
	}
	if err := v.SetData(data); err != nil {
		return nil, err
	}
	return v, nil
}

// SetData replaces the displayed text.
func (v *CardView) SetData(data CardData) error {
	masked, err := format.FormatCardNumber(data.CardNumber)
	if err != nil {
		return err
	}
	whole, cents, err := format.FormatBalance(data.Balance)
	if err != nil {
		return err
	}
	v.data = data
	v.masked, v.whole, v.cents = masked, whole, cents
	return nil
}

// SetCarousel replaces the carousel the view renders.
func (v *CardView) SetCarousel(c *carousel.Carousel) {
	v.carousel = c
}

// Carousel returns the carousel the view renders.
func (v *CardView) Carousel() *carousel.Carousel {
	return v.carousel
}

// Indicator returns the "Copied!" indicator of the card number.
func (v *CardView) Indicator() *CopyIndicator {
	return v.indicator
}

// CardNumber returns the unmasked card number, as copied to the clipboard.
func (v *CardView) CardNumber() string {
	return v.data.CardNumber
}

// SetWidth sets the outer width of the card face.
func (v *CardView) SetWidth(width int) {
	v.width = max(width, minCardWidth)
}

// Width returns the outer width of the card face.
func (v *CardView) Width() int {
	return v.width
}

// Height returns the number of lines View renders.
func (v *CardView) Height() int {
	return cardHeight
}

// DotAt returns the index of the pagination dot under the view-relative
// cell (x, y).
func (v *CardView) DotAt(x, y int) (int, bool) {
	if y != cardRowDots {
		return 0, false
	}
	n := v.carousel.Len()
	dotWidth := ansi.StringWidth(v.dots.InactiveDot)
	if n == 0 || dotWidth == 0 {
		return 0, false
	}
	rel := x - v.dotsOffset(n*dotWidth)
	if rel < 0 || rel >= n*dotWidth {
		return 0, false
	}
	return rel / dotWidth, true
}

// CopyAt reports whether the view-relative cell (x, y) is on the card
// number line of the face.
func (v *CardView) CopyAt(x, y int) bool {
	return y == cardRowNumber && x >= 1 && x < v.width-1
}

func (v *CardView) dotsOffset(dotsWidth int) int {
	return max((v.width-dotsWidth)/2, 0)
}

// View renders the card widget.
func (v *CardView) View() string {
	lines := make([]string, 0, cardHeight)

	lines = append(lines, styles.GreetingStyle.Render("Welcome"))
	lines = append(lines, styles.NameStyle.Render(v.data.DisplayName+","))
	lines = append(lines, "")
	lines = append(lines, strings.Split(v.renderFace(), "\n")...)
	lines = append(lines, "")
	lines = append(lines, v.renderDots())
	lines = append(lines, "")
	lines = append(lines, styles.ActionStyle.Render(v.renderActions()))

	return strings.Join(lines, "\n")
}

func (v *CardView) renderFace() string {
	bg := palette.Color(v.carousel.Accent())
	inner := v.width - 4

	text := lipgloss.NewStyle().Background(bg).Foreground(styles.CardForeground)
	faint := text.Faint(true)
	bold := text.Bold(true)

	hint := slideHint(v.carousel.Direction(), "‹", "›")
	title := v.faceLine(text, faint.Render("Personal Card"), text.Render(hint+" ⋮"), inner)
	balance := v.faceLine(text, bold.Render(v.whole)+text.Render(" ")+faint.Render(v.cents), "", inner)
	available := v.faceLine(text, text.Render("Available Balance: "+v.data.AvailableBalance), "", inner)
	blank := v.faceLine(text, "", "", inner)

	copyLabel := "⧉"
	if v.indicator.IsVisible() {
		copyLabel = v.indicator.View()
	}
	number := v.faceLine(text, text.Render(v.masked+"  ")+bold.Render(copyLabel), "", inner)

	face := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(bg).
		Background(bg).
		Padding(0, 1)

	return face.Render(strings.Join([]string{title, balance, available, blank, number}, "\n"))
}

// faceLine lays out left and right on a line of exactly width cells filled
// with the card color.
func (v *CardView) faceLine(fill lipgloss.Style, left, right string, width int) string {
	right = ansi.Truncate(right, width, "")
	left = ansi.Truncate(left, width-ansi.StringWidth(right), "…")
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 0 {
		gap = 0
	}
	return left + fill.Render(strings.Repeat(" ", gap)) + right
}

func (v *CardView) renderDots() string {
	v.dots.SetTotalPages(v.carousel.Len())
	v.dots.Page = v.carousel.ActiveIndex()
	view := v.dots.View()
	return strings.Repeat(" ", v.dotsOffset(ansi.StringWidth(view))) + view
}

func (v *CardView) renderActions() string {
	return "  + Add    ↗ Send    ↓ Request    ⇔"
}

// slideHint picks the glyph for the direction of the last change.
func slideHint(d gesture.Direction, backward, forward string) string {
	switch d {
	case gesture.Forward:
		return forward
	case gesture.Backward:
		return backward
	default:
		return " "
	}
}
