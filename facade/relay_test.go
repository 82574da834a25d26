package facade

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ExWhyZed9/packages-modules-Bluetooth/coc"
)

func TestRelayDeliversInOrder(t *testing.T) {
	r := NewRelay()
	require.NoError(t, r.Attach())

	for i := byte(0); i < 10; i++ {
		r.Publish(Event{Psm: 0x80, Payload: []byte{i}})
	}

	ctx := context.Background()
	for i := byte(0); i < 10; i++ {
		e, err := r.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, []byte{i}, e.Payload)
	}
}

func TestRelayBlocksUntilPublish(t *testing.T) {
	r := NewRelay()
	require.NoError(t, r.Attach())

	go func() {
		time.Sleep(20 * time.Millisecond)
		r.Publish(Event{Psm: 0x80, Payload: []byte{0x01}})
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	e, err := r.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, coc.Psm(0x80), e.Psm)
}

func TestRelaySecondConsumerRejected(t *testing.T) {
	r := NewRelay()
	require.NoError(t, r.Attach())

	assert.Equal(t, ErrStreamBusy, r.Attach())

	r.Detach()
	assert.NoError(t, r.Attach())
}

func TestRelayDetachDiscardsUndelivered(t *testing.T) {
	r := NewRelay()
	require.NoError(t, r.Attach())
	r.Publish(Event{Psm: 0x80, Payload: []byte{0x01}})
	r.Detach()

	// Events published before detach are never redelivered; events
	// published after reattach are.
	require.NoError(t, r.Attach())
	r.Publish(Event{Psm: 0x80, Payload: []byte{0x02}})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	e, err := r.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02}, e.Payload)

	ctx2, cancel2 := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel2()
	_, err = r.Next(ctx2)
	assert.Error(t, err, "nothing further should be delivered")
}

func TestRelayDropsOldestWhenFull(t *testing.T) {
	r := NewRelay()

	// No consumer attached; overflow the backlog by one.
	for i := 0; i <= relayBacklog; i++ {
		r.Publish(Event{Psm: 0x80, Payload: []byte(fmt.Sprintf("%d", i))})
	}

	require.NoError(t, r.Attach())
	ctx := context.Background()
	e, err := r.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), e.Payload, "oldest event should have been dropped")
}

func TestRelayCloseReleasesConsumer(t *testing.T) {
	r := NewRelay()
	require.NoError(t, r.Attach())

	errc := make(chan error, 1)
	go func() {
		_, err := r.Next(context.Background())
		errc <- err
	}()

	time.Sleep(10 * time.Millisecond)
	r.Close()

	select {
	case err := <-errc:
		assert.Error(t, err)
	case <-time.After(time.Second):
		t.Fatal("Next did not return after Close")
	}

	// Publishing after close is a no-op, not a hang or panic.
	r.Publish(Event{Psm: 0x80})
}

func TestRelayAttachAfterClose(t *testing.T) {
	r := NewRelay()
	r.Close()

	assert.Equal(t, ErrStopped, r.Attach())
}
