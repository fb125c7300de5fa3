package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posilife/posilife/internal/model"
)

type fakeSender struct {
	sent []string
}

func (f *fakeSender) Send(title, message string) error {
	f.sent = append(f.sent, message)
	return nil
}

func TestInstallAndCancelAll(t *testing.T) {
	ctx := context.Background()
	w := NewWorker(&fakeSender{})

	require.NoError(t, w.Install(ctx, model.ScheduledNotification{
		ID: "recurring_quote_0_1", Repeats: true, Weekday: time.Monday, Time: model.TimeOfDay{Hour: 9},
	}))
	require.NoError(t, w.Install(ctx, model.ScheduledNotification{
		ID: "quote_0_0", TriggerAt: time.Now().Add(time.Hour),
	}))
	assert.Equal(t, 2, w.Pending())

	require.NoError(t, w.CancelAll(ctx))
	assert.Equal(t, 0, w.Pending())
}

func TestInstallDropsStaleOneShot(t *testing.T) {
	w := NewWorker(&fakeSender{})
	require.NoError(t, w.Install(context.Background(), model.ScheduledNotification{
		ID: "quote_0_0", TriggerAt: time.Now().Add(-time.Hour),
	}))
	assert.Equal(t, 0, w.Pending())
}

func TestInstallReplacesSlotWithSameID(t *testing.T) {
	ctx := context.Background()
	w := NewWorker(&fakeSender{})

	slot := model.ScheduledNotification{ID: "recurring_quote_0_2", Repeats: true, Weekday: time.Tuesday, Time: model.TimeOfDay{Hour: 9}}
	require.NoError(t, w.Install(ctx, slot))
	slot.Body = "updated"
	require.NoError(t, w.Install(ctx, slot))
	assert.Equal(t, 1, w.Pending())
}

func TestFireDueSendsAndRemovesOneShot(t *testing.T) {
	ctx := context.Background()
	sender := &fakeSender{}
	w := NewWorker(sender)

	now := time.Now()
	require.NoError(t, w.Install(ctx, model.ScheduledNotification{
		ID: "quote_0_0", Body: "due now", TriggerAt: now.Add(time.Second),
	}))
	require.NoError(t, w.Install(ctx, model.ScheduledNotification{
		ID: "quote_1_0", Body: "later", TriggerAt: now.Add(time.Hour),
	}))

	next := w.fireDue(now.Add(2 * time.Second))

	assert.Equal(t, []string{"due now"}, sender.sent)
	assert.Equal(t, 1, w.Pending())
	assert.True(t, next.Equal(now.Add(time.Hour)))
}

func TestFireDueAdvancesRecurringSlot(t *testing.T) {
	ctx := context.Background()
	sender := &fakeSender{}
	w := NewWorker(sender)

	now := time.Now()
	slot := model.ScheduledNotification{
		ID:      "recurring_quote_0_0",
		Body:    "weekly",
		Repeats: true,
		Weekday: now.Weekday(),
		Time:    model.TimeOfDay{Hour: now.Hour(), Minute: now.Minute()},
	}
	require.NoError(t, w.Install(ctx, slot))

	next := w.fireDue(now)

	assert.Equal(t, []string{"weekly"}, sender.sent)
	// Recurring slots stay installed and move to next week's occurrence.
	assert.Equal(t, 1, w.Pending())
	assert.True(t, next.After(now.Add(6*24*time.Hour)), "next run should be about a week out, got %v", next)
}

func TestFireDueIdleWhenEmpty(t *testing.T) {
	w := NewWorker(&fakeSender{})
	assert.True(t, w.fireDue(time.Now()).IsZero())
}
