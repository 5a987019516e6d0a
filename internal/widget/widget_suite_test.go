package widget_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/springview/internal/anim"
)

func TestWidget(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Widget Suite")
}

// settle runs w's frame chain to completion on clock and returns the number
// of frames ticked.
func settle(w anim.Ticker, f anim.Frame, clock *anim.ManualClock) int {
	for n := 1; n <= 5000; n++ {
		next, ok := w.Tick(f, clock.NowMillis())
		if !ok {
			return n
		}
		clock.Advance(next.Delay.Milliseconds())
		f = next
	}
	Fail("widget never came to rest")
	return 0
}

// step runs at most n frames of w's chain and returns the frame to continue with.
func step(w anim.Ticker, f anim.Frame, clock *anim.ManualClock, n int) anim.Frame {
	for i := 0; i < n; i++ {
		next, ok := w.Tick(f, clock.NowMillis())
		if !ok {
			return f
		}
		clock.Advance(next.Delay.Milliseconds())
		f = next
	}
	return f
}

func channelsNear(tolerance int) func(a, b uint8) bool {
	return func(a, b uint8) bool {
		d := int(a) - int(b)
		return d <= tolerance && -d <= tolerance
	}
}
