package loop

import (
	"reflect"
	"testing"
)

func TestFrameClockRunsInScheduleOrder(t *testing.T) {
	c := NewFrameClock()
	var order []string
	c.Schedule(func(float32) { order = append(order, "gravity") })
	c.Schedule(func(float32) { order = append(order, "strafe") })
	c.Schedule(func(float32) { order = append(order, "jump") })

	c.Advance(1.0 / 60)

	want := []string{"gravity", "strafe", "jump"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	if c.Frame() != 1 {
		t.Fatalf("expected frame 1, got %d", c.Frame())
	}
}

func TestFrameClockCancelInsideFrame(t *testing.T) {
	c := NewFrameClock()
	var ran []int
	var second Handle
	c.Schedule(func(float32) {
		ran = append(ran, 1)
		c.Cancel(second)
	})
	second = c.Schedule(func(float32) { ran = append(ran, 2) })

	c.Advance(0)
	if !reflect.DeepEqual(ran, []int{1}) {
		t.Fatalf("cancelled callback should not run this frame, got %v", ran)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 registration left, got %d", c.Len())
	}
}

func TestFrameClockScheduleInsideFrameDefers(t *testing.T) {
	c := NewFrameClock()
	count := 0
	c.Schedule(func(float32) {
		if c.Frame() == 0 {
			c.Schedule(func(float32) { count++ })
		}
	})

	c.Advance(0)
	if count != 0 {
		t.Fatalf("callback scheduled mid-frame ran in the same frame")
	}
	c.Advance(0)
	if count != 1 {
		t.Fatalf("expected deferred callback to run once, ran %d times", count)
	}
}

func TestFrameClockCancelUnknownHandle(t *testing.T) {
	c := NewFrameClock()
	c.Cancel(42)
	if c.Len() != 0 {
		t.Fatalf("expected empty clock")
	}
}
