package bus

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_StartsEmptyAndRunning(t *testing.T) {
	r := New()
	assert.True(t, r.running)
	assert.Equal(t, 0, r.topics.Len())
	assert.Equal(t, 0, r.services.Len())
	assert.Equal(t, 0, r.actions.Len())
	assert.Equal(t, 0, r.pending.Len())
}

func TestNew_OptionsApply(t *testing.T) {
	r := New(WithLockTimeout(7 * time.Millisecond))
	assert.Equal(t, 7*time.Millisecond, r.lockTimeout)
}

func TestInstance_ReturnsSameRegistryEachCall(t *testing.T) {
	a := Instance()
	b := Instance()
	assert.Same(t, a, b)
}

func TestRegistry_Reset_ClearsEverythingButStaysRunning(t *testing.T) {
	r := New()
	r.Publish("/topic", []byte("x"))
	r.CreateService("/svc", echoHandler, Sync, nil)
	r.CreateAction("/act", acceptAll, oneShotSucceed, nil, nil)
	r.NewTask()

	r.Reset()

	assert.True(t, r.running)
	assert.Equal(t, 0, r.topics.Len())
	assert.Equal(t, 0, r.services.Len())
	assert.Equal(t, 0, r.actions.Len())
	assert.Equal(t, 0, r.pending.Len())
	assert.Equal(t, uint64(0), r.taskSeq)
}

func TestNewTask_ReturnsDistinctIDs(t *testing.T) {
	r := New()
	a := r.NewTask()
	b := r.NewTask()
	assert.NotEqual(t, a, b)
}

func TestWithTask_RoundTripsThroughContext(t *testing.T) {
	r := New()
	task := r.NewTask()
	ctx := WithTask(context.Background(), task)

	got, ok := TaskFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, task, got)
}

func TestTaskFromContext_MissingReturnsFalse(t *testing.T) {
	_, ok := TaskFromContext(context.Background())
	assert.False(t, ok)
}
