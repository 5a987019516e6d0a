package widget_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/springview/internal/anim"
	"github.com/san-kum/springview/internal/widget"
)

var _ = Describe("Chart", func() {
	var (
		chart *widget.Chart
		clock *anim.ManualClock
		frame anim.Frame
	)

	sweeps := func() []float64 {
		var out []float64
		for _, s := range chart.Slices() {
			out = append(out, s.Sweep)
		}
		return out
	}

	BeforeEach(func() {
		chart = widget.NewChart("Projects")
		clock = anim.NewManualClock(1000)

		var err error
		frame, err = chart.SetData([]int{10, 20, 30}, []string{"go", "rust", "zig"}, clock.NowMillis())
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("SetData", func() {
		It("rejects mismatched labels", func() {
			_, err := chart.SetData([]int{1, 2}, []string{"a"}, clock.NowMillis())
			Expect(err).To(MatchError(widget.ErrDataMismatch))
		})

		It("rejects negative values", func() {
			_, err := chart.SetData([]int{1, -2}, []string{"a", "b"}, clock.NowMillis())
			Expect(err).To(MatchError(widget.ErrNegativeValue))
		})

		It("reports the raw total immediately", func() {
			Expect(chart.Total()).To(Equal(60))
			Expect(chart.CenterText()).To(Equal("60 Projects"))
			Expect(chart.Animating()).To(BeTrue())
		})

		It("starts every slice empty", func() {
			Expect(sweeps()).To(Equal([]float64{0, 0, 0}))
		})

		It("keeps slices in flight when the length is unchanged", func() {
			frame = step(chart, frame, clock, 5)
			before := sweeps()
			Expect(before[2]).To(BeNumerically(">", 0))

			_, err := chart.SetData([]int{30, 20, 10}, []string{"go", "rust", "zig"}, clock.NowMillis())
			Expect(err).NotTo(HaveOccurred())
			Expect(sweeps()).To(Equal(before))
		})

		It("restarts from zero when the length changes", func() {
			frame = step(chart, frame, clock, 5)

			_, err := chart.SetData([]int{10, 20, 30, 40}, []string{"a", "b", "c", "d"}, clock.NowMillis())
			Expect(err).NotTo(HaveOccurred())
			Expect(sweeps()).To(Equal([]float64{0, 0, 0, 0}))
		})

		It("supersedes the previous frame chain", func() {
			next, ok := chart.Tick(frame, clock.NowMillis())
			Expect(ok).To(BeTrue())

			_, err := chart.SetData([]int{5, 5, 5}, []string{"a", "b", "c"}, clock.NowMillis())
			Expect(err).NotTo(HaveOccurred())

			_, ok = chart.Tick(next, clock.Advance(20))
			Expect(ok).To(BeFalse())
		})
	})

	Describe("animation", func() {
		It("always fills the full circle once slices have grown", func() {
			frame = step(chart, frame, clock, 3)
			total := 0.0
			for _, s := range sweeps() {
				total += s
			}
			Expect(total).To(BeNumerically("~", 360, 1e-9))
		})

		It("settles on sweeps proportional to the values", func() {
			settle(chart, frame, clock)
			Expect(chart.Animating()).To(BeFalse())

			s := chart.Slices()
			Expect(s[0].Sweep).To(BeNumerically("~", 60, 3))
			Expect(s[1].Sweep).To(BeNumerically("~", 120, 3))
			Expect(s[2].Sweep).To(BeNumerically("~", 180, 3))
			Expect(s[1].Start).To(BeNumerically("~", s[0].Sweep, 1e-9))
			Expect(s[0].Color).To(Equal(widget.PaletteColor(0)))
			Expect(s[2].Label).To(Equal("zig"))
		})
	})

	Describe("selection", func() {
		var picked []int

		BeforeEach(func() {
			picked = nil
			chart.OnSelected(func(i int) { picked = append(picked, i) })
			settle(chart, frame, clock)
		})

		It("selects the slice under an angle", func() {
			Expect(chart.SelectAngle(30)).To(Equal(0))
			Expect(chart.SelectAngle(100)).To(Equal(1))
			Expect(chart.SelectAngle(300)).To(Equal(2))
			Expect(chart.SelectAngle(-30)).To(Equal(2))
			Expect(picked).To(Equal([]int{0, 1, 2, 2}))
		})

		It("selects the slice under a point", func() {
			Expect(chart.SelectPoint(0, 10)).To(Equal(1))
			Expect(chart.Slices()[1].Selected).To(BeTrue())
		})

		It("selects legend columns", func() {
			Expect(chart.SelectLegend(250, 300)).To(Equal(2))
			Expect(chart.SelectLegend(50, 300)).To(Equal(0))
			Expect(chart.SelectLegend(0, 300)).To(Equal(0))
		})

		It("explodes only the selected slice", func() {
			chart.SelectAngle(30)
			dx, dy := chart.ExplodeOffset(0, 10)
			Expect(dx).To(BeNumerically(">", 8))
			Expect(dy).To(BeNumerically(">", 4))

			dx, dy = chart.ExplodeOffset(1, 10)
			Expect(dx).To(BeZero())
			Expect(dy).To(BeZero())
		})

		It("clears the selection on new data", func() {
			chart.SelectAngle(30)
			_, err := chart.SetData([]int{1, 1, 1}, []string{"a", "b", "c"}, clock.NowMillis())
			Expect(err).NotTo(HaveOccurred())
			Expect(chart.Selected()).To(Equal(-1))
		})
	})

	It("leaves the selection alone with no data", func() {
		empty := widget.NewChart("Projects")
		Expect(empty.SelectAngle(45)).To(Equal(-1))
		Expect(empty.SelectLegend(10, 100)).To(Equal(-1))
	})
})
