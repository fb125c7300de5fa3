package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/posilife/posilife/internal/model"
)

type fakeInstaller struct {
	ops        []string
	installErr map[string]error
	cancelErr  error
}

func (f *fakeInstaller) CancelAll(ctx context.Context) error {
	f.ops = append(f.ops, "cancel")
	return f.cancelErr
}

func (f *fakeInstaller) Install(ctx context.Context, n model.ScheduledNotification) error {
	f.ops = append(f.ops, "install:"+n.ID)
	return f.installErr[n.ID]
}

func TestApplyCancelsBeforeInstalling(t *testing.T) {
	inst := &fakeInstaller{}
	d := NewDispatcher(inst)

	plan := []model.ScheduledNotification{{ID: "a"}, {ID: "b"}}
	require.NoError(t, d.Apply(context.Background(), plan))

	assert.Equal(t, []string{"cancel", "install:a", "install:b"}, inst.ops)
}

func TestApplyEmptyPlanStillCancels(t *testing.T) {
	inst := &fakeInstaller{}
	d := NewDispatcher(inst)

	require.NoError(t, d.Apply(context.Background(), nil))
	assert.Equal(t, []string{"cancel"}, inst.ops)
}

func TestApplyContinuesPastInstallFailures(t *testing.T) {
	inst := &fakeInstaller{installErr: map[string]error{"b": errors.New("nope")}}
	d := NewDispatcher(inst)

	plan := []model.ScheduledNotification{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	require.NoError(t, d.Apply(context.Background(), plan))

	// The failing item is logged and skipped, the rest still install.
	assert.Equal(t, []string{"cancel", "install:a", "install:b", "install:c"}, inst.ops)
}

func TestApplyStopsOnCancelFailure(t *testing.T) {
	inst := &fakeInstaller{cancelErr: errors.New("boom")}
	d := NewDispatcher(inst)

	err := d.Apply(context.Background(), []model.ScheduledNotification{{ID: "a"}})
	require.Error(t, err)
	assert.Equal(t, []string{"cancel"}, inst.ops)
}
