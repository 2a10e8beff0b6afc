// Package dnd tracks an entry being dragged between day cells and commits the
// drop as a move or, when enabled, a copy.
package dnd

import (
	"context"
	"errors"
	"time"

	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

type State int

const (
	StateIdle State = iota
	StateDragging
	StateConfirming
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateConfirming:
		return "confirming"
	}

	return "unknown"
}

type Action int

const (
	ActionMove Action = iota
	ActionCopy
	ActionCancel
)

// Outcome says what a drop did.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeMoved
	OutcomeCopied
	OutcomeConfirm
)

type Result struct {
	Outcome Outcome
	Tx      *transaction.Transaction
}

// Committer applies a drop. *transaction.Service satisfies it.
//
//go:generate mockgen -source=dnd.go -destination=committer_mock.go -package=dnd
type Committer interface {
	Move(ctx context.Context, id string, date time.Time) (*transaction.Transaction, error)
	Copy(ctx context.Context, id string, date time.Time) (*transaction.Transaction, error)
}

type Options struct {
	// AllowCopy asks whether to move or copy before committing a drop.
	AllowCopy bool
	// OnStart runs synchronously when a drag begins, before any other state changes.
	OnStart func(id string)
}

type Controller struct {
	committer Committer
	opts      Options

	state  State
	active string
	origin time.Time
	target time.Time
}

func New(committer Committer, opts Options) *Controller {
	return &Controller{committer: committer, opts: opts}
}

func (c *Controller) State() State      { return c.state }
func (c *Controller) Active() string    { return c.active }
func (c *Controller) Origin() time.Time { return c.origin }

// Target is the cell awaiting a move/copy answer.
func (c *Controller) Target() time.Time { return c.target }

func (c *Controller) Dragging() bool {
	return c.state == StateDragging
}

// Start lifts the entry id out of its origin cell. A drag already in progress
// is abandoned.
func (c *Controller) Start(id string, origin time.Time) {
	if c.opts.OnStart != nil {
		c.opts.OnStart(id)
	}

	c.state = StateDragging
	c.active = id
	c.origin = transaction.Day(origin)
	c.target = time.Time{}
}

// Drop releases the entry over target. A nil target or the origin cell ends
// the drag without changes.
func (c *Controller) Drop(ctx context.Context, target *time.Time) (Result, error) {
	if c.state != StateDragging {
		return Result{}, nil
	}

	if target == nil || transaction.Day(*target).Equal(c.origin) {
		c.reset()
		return Result{}, nil
	}

	c.target = transaction.Day(*target)

	if c.opts.AllowCopy {
		c.state = StateConfirming
		return Result{Outcome: OutcomeConfirm}, nil
	}

	return c.commit(ctx, ActionMove)
}

// Resolve answers the move/copy question raised by Drop.
func (c *Controller) Resolve(ctx context.Context, action Action) (Result, error) {
	if c.state != StateConfirming {
		return Result{}, nil
	}

	if action == ActionCancel {
		c.reset()
		return Result{}, nil
	}

	return c.commit(ctx, action)
}

func (c *Controller) Cancel() {
	c.reset()
}

func (c *Controller) commit(ctx context.Context, action Action) (Result, error) {
	id, target := c.active, c.target
	c.reset()

	var (
		tx      *transaction.Transaction
		err     error
		outcome Outcome
	)

	switch action {
	case ActionCopy:
		tx, err = c.committer.Copy(ctx, id, target)
		outcome = OutcomeCopied
	default:
		tx, err = c.committer.Move(ctx, id, target)
		outcome = OutcomeMoved
	}

	if errors.Is(err, transaction.ErrNotFound) {
		return Result{}, nil
	}

	if err != nil {
		return Result{}, err
	}

	return Result{Outcome: outcome, Tx: tx}, nil
}

func (c *Controller) reset() {
	c.state = StateIdle
	c.active = ""
	c.origin = time.Time{}
	c.target = time.Time{}
}
