package services

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool_RunsAllJobs(t *testing.T) {
	p := NewWorkerPool(4, 16)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	var ran int32
	for i := 0; i < 16; i++ {
		err := p.Submit(func(ctx context.Context) {
			atomic.AddInt32(&ran, 1)
		})
		assert.NoError(t, err)
	}
	p.Close()

	assert.Equal(t, int32(16), atomic.LoadInt32(&ran))
}

func TestWorkerPool_SubmitAfterClose(t *testing.T) {
	p := NewWorkerPool(1, 2)
	p.Start(context.Background())
	p.Close()

	err := p.Submit(func(ctx context.Context) {})

	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestWorkerPool_CloseTwice(t *testing.T) {
	p := NewWorkerPool(0, 0)
	p.Start(context.Background())

	p.Close()
	p.Close()
}
