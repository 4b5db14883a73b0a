package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func acceptAll(goal []byte, _ any) bool { return true }

func oneShotSucceed(goal []byte, _ any) ([]byte, ActionState) {
	return goal, Succeeded
}

func TestRegistry_CreateAction_DuplicateFails(t *testing.T) {
	r := New()
	assert.True(t, r.CreateAction("/act/one", acceptAll, oneShotSucceed, nil, nil))
	assert.False(t, r.CreateAction("/act/one", acceptAll, oneShotSucceed, nil, nil))
}

func TestRegistry_CreateAction_NilHandlersFail(t *testing.T) {
	r := New()
	assert.False(t, r.CreateAction("/act/nilgoal", nil, oneShotSucceed, nil, nil))
	assert.False(t, r.CreateAction("/act/nilexec", acceptAll, nil, nil, nil))
}

func TestRegistry_SendGoal_HappyPath(t *testing.T) {
	r := New()
	r.CreateAction("/act/count", acceptAll, oneShotSucceed, nil, nil)

	task := r.NewTask()
	var gotResult []byte
	var gotState ActionState
	ok := r.SendGoal(task, "/act/count", []byte("goal"), nil, func(_ string, result []byte, state ActionState, _ any) {
		gotResult = result
		gotState = state
	}, nil, 0)
	assert.True(t, ok)

	r.ProcessActions()
	r.ProcessPending(task, 0)
	assert.Equal(t, "goal", string(gotResult))
	assert.Equal(t, Succeeded, gotState)
}

func TestRegistry_SendGoal_RejectedByPredicate(t *testing.T) {
	r := New()
	r.CreateAction("/act/reject", func([]byte, any) bool { return false }, oneShotSucceed, nil, nil)
	ok := r.SendGoal(r.NewTask(), "/act/reject", []byte("x"), nil, nil, nil, 0)
	assert.False(t, ok)
}

func TestRegistry_SendGoal_AlreadyActiveFails(t *testing.T) {
	r := New()
	r.CreateAction("/act/busy", acceptAll, func(goal []byte, _ any) ([]byte, ActionState) {
		return nil, Executing
	}, nil, nil)

	task := r.NewTask()
	assert.True(t, r.SendGoal(task, "/act/busy", []byte("first"), nil, nil, nil, 0))
	assert.False(t, r.SendGoal(task, "/act/busy", []byte("second"), nil, nil, nil, 0))
}

func TestRegistry_SendGoal_OversizedGoalFails(t *testing.T) {
	r := New()
	r.CreateAction("/act/big", acceptAll, oneShotSucceed, nil, nil)
	ok := r.SendGoal(r.NewTask(), "/act/big", make([]byte, PayloadCapacity+1), nil, nil, nil, 0)
	assert.False(t, ok)
}

func TestRegistry_ProcessActions_MultiStepExecution(t *testing.T) {
	r := New()
	remaining := 3
	r.CreateAction("/act/multi", acceptAll, func(goal []byte, _ any) ([]byte, ActionState) {
		remaining--
		if remaining <= 0 {
			return goal, Succeeded
		}
		return nil, Executing
	}, nil, nil)

	task := r.NewTask()
	var finalState ActionState
	r.SendGoal(task, "/act/multi", []byte("go"), nil, func(_ string, _ []byte, state ActionState, _ any) {
		finalState = state
	}, nil, 0)

	for i := 0; i < 2; i++ {
		r.ProcessActions()
		r.ProcessPending(task, 0)
		assert.Equal(t, ActionState(0), finalState, "must not complete early")
	}
	r.ProcessActions()
	r.ProcessPending(task, 0)
	assert.Equal(t, Succeeded, finalState)
}

func TestRegistry_CancelGoal_SetsFlagAndNotifiesCallback(t *testing.T) {
	r := New()
	var canceled bool
	r.CreateAction("/act/cancelable", acceptAll, func(goal []byte, ctx any) ([]byte, ActionState) {
		if canceled {
			return nil, Canceled
		}
		return nil, Executing
	}, func(_ any) {
		canceled = true
	}, nil)

	r.SendGoal(r.NewTask(), "/act/cancelable", []byte("go"), nil, nil, nil, 0)
	assert.False(t, r.IsGoalCanceled("/act/cancelable"))

	assert.True(t, r.CancelGoal("/act/cancelable", 0))
	assert.True(t, r.IsGoalCanceled("/act/cancelable"))
	assert.True(t, canceled)
}

func TestRegistry_CancelGoal_UnknownOrInactiveFails(t *testing.T) {
	r := New()
	assert.False(t, r.CancelGoal("/act/nope", 0))

	r.CreateAction("/act/idle", acceptAll, oneShotSucceed, nil, nil)
	assert.False(t, r.CancelGoal("/act/idle", 0))
}

func TestRegistry_SendFeedback_RoutesToTrackingPendingRecord(t *testing.T) {
	r := New()
	r.CreateAction("/act/fb", acceptAll, func(goal []byte, _ any) ([]byte, ActionState) {
		return nil, Executing
	}, nil, nil)

	var feedback []string
	r.SendGoal(r.NewTask(), "/act/fb", []byte("go"), func(_ string, payload []byte, _ any) {
		feedback = append(feedback, string(payload))
	}, nil, nil, 0)

	assert.True(t, r.SendFeedback("/act/fb", []byte("25%")))
	assert.True(t, r.SendFeedback("/act/fb", []byte("50%")))
	assert.Equal(t, []string{"25%", "50%"}, feedback)
}

func TestRegistry_SendFeedback_NoTrackerIsSilentDiscard(t *testing.T) {
	r := New()
	r.CreateAction("/act/untracked", acceptAll, oneShotSucceed, nil, nil)
	assert.True(t, r.SendFeedback("/act/untracked", []byte("x")))
}

func TestRegistry_CreateAction_RespectsCapacity(t *testing.T) {
	r := New()
	for i := 0; i < ActionCapacity; i++ {
		assert.True(t, r.CreateAction(actionName(i), acceptAll, oneShotSucceed, nil, nil))
	}
	assert.False(t, r.CreateAction(actionName(ActionCapacity), acceptAll, oneShotSucceed, nil, nil))
}

func actionName(i int) string {
	return "/a/" + string(rune('a'+i%26)) + string(rune('0'+i/26))
}
