package recorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/money"
)

func TestTrack(t *testing.T) {
	r := testRecorder()
	l := withDinner(t, r)

	tracked := Track(l, plan(t, l))
	require.Len(t, tracked, 2)
	for _, ti := range tracked {
		assert.Equal(t, StatusPending, ti.Status)
		assert.True(t, ti.PaidSoFar.IsZero())
		assert.Zero(t, ti.Reminders)
	}

	// A reminds C, C is now reminded; B stays pending.
	l, rem, err := r.RecordReminder(l, "A", "C")
	require.NoError(t, err)
	tracked = Track(l, plan(t, l))
	require.Len(t, tracked, 2)
	assert.Equal(t, "B", tracked[0].From)
	assert.Equal(t, StatusPending, tracked[0].Status)
	assert.Equal(t, "C", tracked[1].From)
	assert.Equal(t, StatusReminded, tracked[1].Status)
	assert.Equal(t, 1, tracked[1].Reminders)
	assert.Equal(t, rem.Timestamp, tracked[1].LastRemindedAt)

	// A partial payment after the reminder puts C back to pending.
	l, _, err = r.RecordPartialSettlement(l, "C", "A", 3000)
	require.NoError(t, err)
	tracked = Track(l, plan(t, l))
	require.Len(t, tracked, 2)
	assert.Equal(t, "C", tracked[1].From)
	assert.Equal(t, StatusPending, tracked[1].Status)
	assert.Equal(t, money.Money(3000), tracked[1].PaidSoFar)
	assert.Equal(t, money.Money(7000), tracked[1].Amount)

	// Reminding again flips it back.
	l, _, err = r.RecordReminder(l, "A", "C")
	require.NoError(t, err)
	tracked = Track(l, plan(t, l))
	assert.Equal(t, StatusReminded, tracked[1].Status)
	assert.Equal(t, 2, tracked[1].Reminders)
}

func TestTrack_ReminderDirection(t *testing.T) {
	r := testRecorder()
	l := withDinner(t, r)

	// C reminding A is not about C paying A.
	l, _, err := r.RecordReminder(l, "C", "A")
	require.NoError(t, err)
	for _, ti := range Track(l, plan(t, l)) {
		assert.Equal(t, StatusPending, ti.Status, "instruction %s -> %s", ti.From, ti.To)
	}
}

func TestStatusOf(t *testing.T) {
	r := testRecorder()
	l := withDinner(t, r)

	assert.Equal(t, StatusPending, StatusOf(l, "B", "A", 10000))
	assert.Equal(t, StatusSettled, StatusOf(l, "A", "B", 0))

	l, _, err := r.RecordReminder(l, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, StatusReminded, StatusOf(l, "B", "A", 10000))

	l, _, err = r.RecordFullSettlement(l, "B", "A", 10000)
	require.NoError(t, err)
	assert.Equal(t, StatusSettled, StatusOf(l, "B", "A", 0))
	assert.Empty(t, Track(l, nil))
}

func TestTrack_EmptyPlan(t *testing.T) {
	l := newLedger(t)
	assert.Empty(t, Track(l, []calculator.Instruction{}))
}
