package notifier

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// taggedSubscriber has a slice field, so its values cannot be compared with ==.
type taggedSubscriber struct {
	tags []string
	got  *[]string
}

func (s taggedSubscriber) Receive(message string) { *s.got = append(*s.got, message) }

// SubscriberFunc adapts a function to the Subscriber interface.
type SubscriberFunc func(message string)

func (f SubscriberFunc) Receive(message string) { f(message) }

func TestBus_Publish(t *testing.T) {
	t.Run("every subscriber receives every message in order", func(t *testing.T) {
		// Setup
		bus := New()
		subs := []*Mock{NewMock(), NewMock(), NewMock()}
		for _, s := range subs {
			bus.Subscribe(s)
		}

		// Execute
		var want []string
		for i := range 5 {
			msg := fmt.Sprintf("message %d", i)
			want = append(want, msg)
			bus.Publish(msg)
		}

		// Assert
		for _, s := range subs {
			assert.Equal(t, want, s.Received())
		}
	})

	t.Run("unsubscribing mid-sequence stops further delivery only", func(t *testing.T) {
		bus := New()
		stays, leaves := NewMock(), NewMock()
		bus.Subscribe(stays)
		bus.Subscribe(leaves)

		bus.Publish("first")
		bus.Unsubscribe(leaves)
		bus.Publish("second")

		assert.Equal(t, []string{"first", "second"}, stays.Received())
		assert.Equal(t, []string{"first"}, leaves.Received())
	})

	t.Run("duplicate subscribe is a no-op", func(t *testing.T) {
		bus := New()
		s := NewMock()
		bus.Subscribe(s)
		bus.Subscribe(s)

		bus.Publish("once")

		assert.Equal(t, 1, bus.Len())
		assert.Equal(t, []string{"once"}, s.Received())
	})

	t.Run("unsubscribing an absent subscriber is a no-op", func(t *testing.T) {
		bus := New()
		s := NewMock()
		bus.Subscribe(s)

		bus.Unsubscribe(NewMock())
		bus.Unsubscribe(s)
		bus.Unsubscribe(s)

		assert.Zero(t, bus.Len())
	})

	t.Run("subscribers may unsubscribe themselves while receiving", func(t *testing.T) {
		bus := New()
		first, second := NewMock(), NewMock()
		first.ReceiveFunc = func(string) { bus.Unsubscribe(first) }
		bus.Subscribe(first)
		bus.Subscribe(second)

		bus.Publish("a")
		bus.Publish("b")

		assert.Equal(t, []string{"a"}, first.Received())
		assert.Equal(t, []string{"a", "b"}, second.Received())
	})
}

func TestBus_UncomparableSubscribers(t *testing.T) {
	t.Run("struct values with slice fields", func(t *testing.T) {
		// Setup
		bus := New()
		var got []string
		a := taggedSubscriber{tags: []string{"coach"}, got: &got}
		b := taggedSubscriber{tags: []string{"analyst"}, got: &got}

		// Execute
		require.NotPanics(t, func() {
			bus.Subscribe(a)
			bus.Subscribe(b)
			bus.Unsubscribe(a)
		})
		bus.Publish("match recorded")

		// Assert
		assert.Equal(t, 2, bus.Len())
		assert.Equal(t, []string{"match recorded", "match recorded"}, got)
	})

	t.Run("function adapters", func(t *testing.T) {
		bus := New()
		var calls int
		f := SubscriberFunc(func(string) { calls++ })

		require.NotPanics(t, func() {
			bus.Subscribe(f)
			bus.Subscribe(f)
		})
		bus.Subscribe(NewMock())
		bus.Publish("hello")

		assert.Equal(t, 3, bus.Len())
		assert.Equal(t, 2, calls)
	})

	t.Run("pointer identity still deduplicates", func(t *testing.T) {
		bus := New()
		m := NewMock()
		bus.Subscribe(asSubscriber(m))
		bus.Subscribe(m)
		bus.Unsubscribe(m)

		assert.Zero(t, bus.Len())
	})
}

func asSubscriber(m *Mock) Subscriber { return m }

func TestConsole_Receive(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	player := &Console{Role: "Player", Name: "Emma Davis", Detail: "Setter", Out: &buf}
	coach := &Console{Role: "Coach", Name: "John Smith", Out: &buf}

	player.Receive("New team added: Marauders (ID: 1)")
	coach.Receive("New team added: Marauders (ID: 1)")

	assert.Equal(t,
		"Player Emma Davis (Setter) received notification: New team added: Marauders (ID: 1)\n"+
			"Coach John Smith received notification: New team added: Marauders (ID: 1)\n",
		buf.String())
}

func TestNewEvent(t *testing.T) {
	a := NewEvent("hello")
	b := NewEvent("hello")

	require.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "hello", a.Message)
	assert.False(t, a.OccurredAt.IsZero())
}
