// Package card holds the state of the poem card: the poem on display, the
// selected style and whether a regeneration is in flight.
package card

import (
	"context"
	"errors"
	"sync"

	"github.com/Conceptual-Machines/starter-poem-api/internal/poem"
)

const (
	Title       = "Punchcut Starter App"
	Description = "Batteries included foundation to vibecode on"

	DefaultPoem = "A blank canvas waits for you,\n" +
		"with tools and blocks to build upon.\n" +
		"AI whispers hints anew—\n" +
		"start small, dream big, create, have fun!"

	DefaultGlitterBalance = 42

	fallbackErrorMessage = "Something went wrong"
)

var (
	// ErrBusy is returned while a regeneration is in flight
	ErrBusy = errors.New("poem generation already in progress")
	// ErrUnknownStyle is returned by Select for ids outside the catalog
	ErrUnknownStyle = errors.New("unknown poem style")
	// ErrNoRequester is returned by Regenerate on a view-only card
	ErrNoRequester = errors.New("card has no poem requester")
)

// Status is the observable state of the card
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Requester fetches a poem; *poemclient.Client satisfies it
type Requester interface {
	RequestPoem(ctx context.Context, style *poem.PoemStyle) (string, error)
}

// Burst describes one decorative completion effect
type Burst struct {
	ID      int
	Balance int
}

// View is a snapshot of the card for rendering
type View struct {
	Status        Status
	Title         string
	Description   string
	Poem          string
	Error         string
	SelectedStyle poem.PoemStyle
	Styles        []poem.PoemStyle
	// Disabled is true while loading; selector and button ignore input
	Disabled       bool
	ButtonLabel    string
	GlitterBalance int
}

// Card is safe for concurrent use
type Card struct {
	mu        sync.Mutex
	requester Requester
	onBurst   func(Burst)

	status         Status
	poem           string
	errMessage     string
	selected       poem.PoemStyle
	glitterBalance int
	burstID        int
}

// Option configures a Card
type Option func(*Card)

// WithCompletionHook registers a callback fired after each successful
// regeneration. It runs outside the card lock.
func WithCompletionHook(fn func(Burst)) Option {
	return func(c *Card) {
		c.onBurst = fn
	}
}

// New creates a card showing the default poem with the default style selected.
// A nil requester gives a view-only card: Select and View work, Regenerate
// returns ErrNoRequester.
func New(requester Requester, opts ...Option) *Card {
	c := &Card{
		requester:      requester,
		status:         StatusIdle,
		poem:           DefaultPoem,
		selected:       poem.DefaultStyle(),
		glitterBalance: DefaultGlitterBalance,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Select changes the style used by the next regeneration. The displayed poem
// is unchanged.
func (c *Card) Select(styleID string) error {
	style, ok := poem.LookupStyle(styleID)
	if !ok {
		return ErrUnknownStyle
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status == StatusLoading {
		return ErrBusy
	}
	c.selected = style
	return nil
}

// SetGlitterBalance tunes the completion effect, clamped to 0..100
func (c *Card) SetGlitterBalance(balance int) {
	balance = max(0, min(100, balance))

	c.mu.Lock()
	c.glitterBalance = balance
	c.mu.Unlock()
}

// Regenerate requests a poem in the selected style and blocks until the card
// is Idle again or in Error. It returns ErrBusy when already loading;
// the request's own failure is reflected in the card, not returned.
func (c *Card) Regenerate(ctx context.Context) error {
	if c.requester == nil {
		return ErrNoRequester
	}

	c.mu.Lock()
	if c.status == StatusLoading {
		c.mu.Unlock()
		return ErrBusy
	}
	c.status = StatusLoading
	c.errMessage = ""
	style := c.selected
	c.mu.Unlock()

	text, err := c.requester.RequestPoem(ctx, &style)

	c.mu.Lock()
	if err != nil {
		c.status = StatusError
		c.errMessage = err.Error()
		if c.errMessage == "" {
			c.errMessage = fallbackErrorMessage
		}
		c.mu.Unlock()
		return nil
	}

	c.status = StatusIdle
	c.poem = text
	c.burstID++
	burst := Burst{ID: c.burstID, Balance: c.glitterBalance}
	hook := c.onBurst
	c.mu.Unlock()

	if hook != nil {
		hook(burst)
	}
	return nil
}

// View returns the current state. The poem is hidden while an error is shown.
func (c *Card) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{
		Status:         c.status,
		Title:          Title,
		Description:    Description,
		SelectedStyle:  c.selected,
		Styles:         poem.Styles(),
		Disabled:       c.status == StatusLoading,
		ButtonLabel:    "Generate poem",
		GlitterBalance: c.glitterBalance,
	}

	switch c.status {
	case StatusError:
		v.Error = c.errMessage
	case StatusLoading:
		v.Poem = c.poem
		v.ButtonLabel = "Generating..."
	default:
		v.Poem = c.poem
	}
	return v
}
