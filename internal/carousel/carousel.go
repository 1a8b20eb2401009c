// Package carousel holds the state of the swipeable card widget.
package carousel

import (
	"github.com/dbmrq/pocket/internal/format"
	"github.com/dbmrq/pocket/internal/gesture"
)

// Card is one entry of the carousel.
type Card struct {
	// ColorTag is a Tailwind-style color tag such as "bg-blue-500".
	ColorTag string
}

// Family returns the color family of the card ("blue" for "bg-blue-500").
func (c Card) Family() string {
	return format.ColorFamily(c.ColorTag)
}

// Carousel tracks the active card of a fixed, non-empty card list.
type Carousel struct {
	cards     []Card
	active    int
	direction gesture.Direction
	mapper    gesture.Mapper
}

// New creates a Carousel over cards, starting at the first card.
// Horizontal drags beyond threshold units change the card.
func New(cards []Card, threshold float64) *Carousel {
	owned := make([]Card, len(cards))
	copy(owned, cards)
	return &Carousel{
		cards:  owned,
		mapper: gesture.NewMapper(threshold),
	}
}

// Len returns the number of cards.
func (c *Carousel) Len() int {
	return len(c.cards)
}

// ActiveIndex returns the position of the displayed card.
func (c *Carousel) ActiveIndex() int {
	return c.active
}

// Active returns the displayed card. It returns the zero Card for an empty list.
func (c *Carousel) Active() Card {
	if len(c.cards) == 0 {
		return Card{}
	}
	return c.cards[c.active]
}

// Cards returns a copy of the card list.
func (c *Carousel) Cards() []Card {
	out := make([]Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// Direction returns the direction of the last index change.
func (c *Carousel) Direction() gesture.Direction {
	return c.direction
}

// Accent returns the color family of the active card.
func (c *Carousel) Accent() string {
	return c.Active().Family()
}

// SetActiveIndex shows the card at requested. Out-of-range requests are
// ignored and report false.
func (c *Carousel) SetActiveIndex(requested int) bool {
	if requested < 0 || requested >= len(c.cards) {
		return false
	}
	c.direction = gesture.Sign(requested - c.active)
	c.active = requested
	return true
}

// Next shows the following card, if any.
func (c *Carousel) Next() bool {
	return c.SetActiveIndex(c.active + 1)
}

// Prev shows the preceding card, if any.
func (c *Carousel) Prev() bool {
	return c.SetActiveIndex(c.active - 1)
}

// HandleDrag applies a horizontal drag release of offset units. Dragging
// left shows the next card. It returns the transition the gesture asked for
// and whether the index actually changed.
func (c *Carousel) HandleDrag(offset float64) (gesture.Transition, bool) {
	tr := c.mapper.Resolve(offset)
	switch tr {
	case gesture.Next:
		return tr, c.Next()
	case gesture.Previous:
		return tr, c.Prev()
	}
	return tr, false
}

// SetThreshold replaces the drag dead zone.
func (c *Carousel) SetThreshold(threshold float64) {
	c.mapper = gesture.NewMapper(threshold)
}
