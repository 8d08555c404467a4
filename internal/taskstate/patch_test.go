package taskstate

import (
	"errors"
	"testing"

	"github.com/Shahzad-Ali-44/TaskMate/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

func TestApply_Reconciliation(t *testing.T) {
	tests := []struct {
		name    string
		current Status
		patch   Patch
		want    Status
	}{
		{"status completed", StatusPending, Patch{Status: strp("completed")}, StatusCompleted},
		{"status ongoing from completed", StatusCompleted, Patch{Status: strp("ongoing")}, StatusOngoing},
		{"status pending from ongoing", StatusOngoing, Patch{Status: strp("pending")}, StatusPending},
		{"complete from pending", StatusPending, Patch{IsComplete: boolp(true)}, StatusCompleted},
		{"complete from ongoing", StatusOngoing, Patch{IsComplete: boolp(true)}, StatusCompleted},
		{"undo complete lands on pending", StatusCompleted, Patch{IsComplete: boolp(false)}, StatusPending},
		{"incomplete keeps ongoing", StatusOngoing, Patch{IsComplete: boolp(false)}, StatusOngoing},
		{"incomplete keeps pending", StatusPending, Patch{IsComplete: boolp(false)}, StatusPending},
		{"status wins over isComplete true", StatusPending, Patch{Status: strp("ongoing"), IsComplete: boolp(true)}, StatusOngoing},
		{"status wins over isComplete false", StatusPending, Patch{Status: strp("completed"), IsComplete: boolp(false)}, StatusCompleted},
		{"empty patch", StatusOngoing, Patch{}, StatusOngoing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Apply("title", tt.current, tt.patch)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Status)
			assert.Equal(t, res.Status == StatusCompleted, res.Status.IsComplete())
		})
	}
}

func TestApply_AnyStatusReachableFromAny(t *testing.T) {
	for _, from := range Statuses() {
		for _, to := range Statuses() {
			res, err := Apply("t", from, Patch{Status: strp(string(to))})
			require.NoError(t, err)
			assert.Equal(t, to, res.Status, "%s -> %s", from, to)
		}
	}
}

func TestApply_Title(t *testing.T) {
	res, err := Apply("old", StatusPending, Patch{Title: strp("  new  ")})
	require.NoError(t, err)
	assert.Equal(t, "new", res.Title)
	assert.Equal(t, StatusPending, res.Status)

	_, err = Apply("old", StatusPending, Patch{Title: strp("  ")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))
}

func TestApply_InvalidStatus(t *testing.T) {
	_, err := Apply("t", StatusPending, Patch{Status: strp("archived"), IsComplete: boolp(true)})
	require.Error(t, err)
	assert.Equal(t, MsgInvalidStatus, err.Error())
}

func TestPatch_Empty(t *testing.T) {
	assert.True(t, Patch{}.Empty())
	assert.False(t, Patch{IsComplete: boolp(false)}.Empty())
}
