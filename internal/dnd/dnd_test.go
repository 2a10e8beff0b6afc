package dnd_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/molog/internal/dnd"
	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

func day(d int) time.Time {
	return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestController_StartRunsHookFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var c *dnd.Controller

	var stateAtHook dnd.State

	hooked := ""
	c = dnd.New(dnd.NewMockCommitter(ctrl), dnd.Options{OnStart: func(id string) {
		hooked = id
		stateAtHook = c.State()
	}})

	c.Start("5", day(15))

	assert.Equal(t, "5", hooked)
	assert.Equal(t, dnd.StateIdle, stateAtHook)
	assert.Equal(t, dnd.StateDragging, c.State())
	assert.Equal(t, "5", c.Active())
	assert.Equal(t, day(15), c.Origin())
}

func TestController_Drop(t *testing.T) {
	type testCase struct {
		name        string
		target      *time.Time
		setupMock   func(m *dnd.MockCommitter)
		wantOutcome dnd.Outcome
		wantErr     bool
	}

	tests := []testCase{
		{
			name:        "NoTarget",
			target:      nil,
			wantOutcome: dnd.OutcomeNone,
		},
		{
			name:        "SameCell",
			target:      new(day(15)),
			wantOutcome: dnd.OutcomeNone,
		},
		{
			name:   "Moves",
			target: new(day(25)),
			setupMock: func(m *dnd.MockCommitter) {
				m.EXPECT().Move(gomock.Any(), "5", day(25)).
					Return(&transaction.Transaction{ID: "5", Date: day(25)}, nil)
			},
			wantOutcome: dnd.OutcomeMoved,
		},
		{
			name:   "VanishedEntryIsNoop",
			target: new(day(25)),
			setupMock: func(m *dnd.MockCommitter) {
				m.EXPECT().Move(gomock.Any(), "5", day(25)).Return(nil, transaction.ErrNotFound)
			},
			wantOutcome: dnd.OutcomeNone,
		},
		{
			name:   "CommitError",
			target: new(day(25)),
			setupMock: func(m *dnd.MockCommitter) {
				m.EXPECT().Move(gomock.Any(), "5", day(25)).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := dnd.NewMockCommitter(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(m)
			}

			c := dnd.New(m, dnd.Options{})
			c.Start("5", day(15))

			res, err := c.Drop(context.Background(), tt.target)
			assert.Equal(t, dnd.StateIdle, c.State())
			assert.Empty(t, c.Active())

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOutcome, res.Outcome)
		})
	}
}

func TestController_DropWithoutDragIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := dnd.New(dnd.NewMockCommitter(ctrl), dnd.Options{})

	res, err := c.Drop(context.Background(), new(day(3)))
	require.NoError(t, err)
	assert.Equal(t, dnd.OutcomeNone, res.Outcome)
}

func TestController_ConfirmCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := dnd.NewMockCommitter(ctrl)
	m.EXPECT().Copy(gomock.Any(), "7", day(28)).
		Return(&transaction.Transaction{ID: "new", Date: day(28)}, nil)

	c := dnd.New(m, dnd.Options{AllowCopy: true})
	c.Start("7", day(5))

	res, err := c.Drop(context.Background(), new(day(28)))
	require.NoError(t, err)
	assert.Equal(t, dnd.OutcomeConfirm, res.Outcome)
	assert.Equal(t, dnd.StateConfirming, c.State())
	assert.Equal(t, day(28), c.Target())

	res, err = c.Resolve(context.Background(), dnd.ActionCopy)
	require.NoError(t, err)
	assert.Equal(t, dnd.OutcomeCopied, res.Outcome)
	assert.Equal(t, "new", res.Tx.ID)
	assert.Equal(t, dnd.StateIdle, c.State())
}

func TestController_ConfirmCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := dnd.New(dnd.NewMockCommitter(ctrl), dnd.Options{AllowCopy: true})
	c.Start("7", day(5))

	_, err := c.Drop(context.Background(), new(day(28)))
	require.NoError(t, err)

	res, err := c.Resolve(context.Background(), dnd.ActionCancel)
	require.NoError(t, err)
	assert.Equal(t, dnd.OutcomeNone, res.Outcome)
	assert.Equal(t, dnd.StateIdle, c.State())
}

func TestController_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := dnd.New(dnd.NewMockCommitter(ctrl), dnd.Options{})
	c.Start("1", day(1))
	c.Cancel()

	assert.Equal(t, dnd.StateIdle, c.State())
	assert.Equal(t, "idle", c.State().String())
}
