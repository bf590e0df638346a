package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pinged struct{ N int }
type ponged struct{}

func TestBusDeliversByType(t *testing.T) {
	bus := NewBus()

	var got []int
	bus.Subscribe(TypeOf(pinged{}), func(e interface{}) {
		got = append(got, e.(pinged).N)
	})
	bus.Subscribe(TypeOf(pinged{}), func(e interface{}) {
		got = append(got, e.(pinged).N*10)
	})

	bus.Publish(pinged{N: 2})
	bus.Publish(ponged{})

	assert.Equal(t, []int{2, 20}, got)
}

func TestBusAllowsPublishFromHandler(t *testing.T) {
	bus := NewBus()

	var ponges int
	bus.Subscribe(TypeOf(ponged{}), func(interface{}) { ponges++ })
	bus.Subscribe(TypeOf(pinged{}), func(interface{}) { bus.Publish(ponged{}) })

	bus.Publish(pinged{})
	assert.Equal(t, 1, ponges)
}

func TestNullBus(t *testing.T) {
	var bus EventBus = &NullBus{}
	assert.NotPanics(t, func() {
		bus.Subscribe("x", func(interface{}) {})
		bus.Publish(pinged{})
	})
}
