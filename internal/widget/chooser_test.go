package widget_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/springview/internal/anim"
	"github.com/san-kum/springview/internal/dynamo"
	"github.com/san-kum/springview/internal/widget"
)

var _ = Describe("Chooser", func() {
	var (
		chooser *widget.Chooser
		clock   *anim.ManualClock
		chosen  []int
		near    = channelsNear(4)

		red   = dynamo.ARGB(0xFF, 0xCC, 0x00, 0x00)
		green = dynamo.ARGB(0xFF, 0x66, 0x99, 0x00)
		blue  = dynamo.ARGB(0xFF, 0x00, 0x99, 0xCC)
	)

	BeforeEach(func() {
		chooser = widget.NewChooser()
		clock = anim.NewManualClock(500)
		chosen = nil
		chooser.OnChosen(func(i int) { chosen = append(chosen, i) })

		chooser.Add(widget.Item{Label: "home", Color: red}, clock.NowMillis())
		chooser.Add(widget.Item{Label: "search", Color: green}, clock.NowMillis())
		chooser.Add(widget.Item{Label: "profile", Color: blue}, clock.NowMillis())
		chooser.Resize(301)
	})

	It("takes the first item's color without animating", func() {
		Expect(chooser.Color()).To(Equal(red))
		Expect(chooser.Animating()).To(BeFalse())
	})

	It("splits the width evenly in whole pixels", func() {
		Expect(chooser.ItemWidth()).To(Equal(100.0))
		Expect(chooser.ItemLeft(2)).To(Equal(200.0))
	})

	It("defaults items without a color to white", func() {
		chooser.Add(widget.Item{Label: "more"}, clock.NowMillis())
		Expect(chooser.Items()[3].Color).To(Equal(widget.DefaultItemColor))
	})

	It("rejects indices with no item", func() {
		_, err := chooser.Choose(3, clock.NowMillis())
		Expect(err).To(MatchError(widget.ErrIndexOutOfRange))
		_, err = chooser.SetSelected(-1, clock.NowMillis())
		Expect(err).To(MatchError(widget.ErrIndexOutOfRange))
		Expect(chosen).To(BeEmpty())
	})

	It("slides and recolors the indicator toward the chosen item", func() {
		f, err := chooser.Choose(2, clock.NowMillis())
		Expect(err).NotTo(HaveOccurred())
		Expect(chosen).To(Equal([]int{2}))
		Expect(chooser.Selected()).To(Equal(2))

		f = step(chooser, f, clock, 4)
		Expect(chooser.Offset()).To(And(BeNumerically(">", 0), BeNumerically("<", 200)))
		Expect(chooser.Color()).NotTo(Equal(red))

		settle(chooser, f, clock)
		Expect(chooser.Animating()).To(BeFalse())
		Expect(chooser.Offset()).To(BeNumerically("~", 200, 5))

		c := chooser.Color()
		Expect(near(c.R(), blue.R()) && near(c.G(), blue.G()) && near(c.B(), blue.B())).To(BeTrue(),
			"indicator color %s, want about %s", c.Hex(), blue.Hex())
	})

	It("does not notify on programmatic selection", func() {
		_, err := chooser.SetSelected(1, clock.NowMillis())
		Expect(err).NotTo(HaveOccurred())
		Expect(chosen).To(BeEmpty())
		Expect(chooser.Animating()).To(BeTrue())
	})

	It("redirects mid-flight without restarting the slide", func() {
		f, _ := chooser.Choose(2, clock.NowMillis())
		f = step(chooser, f, clock, 4)
		offset := chooser.Offset()

		g, err := chooser.Choose(1, clock.NowMillis())
		Expect(err).NotTo(HaveOccurred())
		Expect(chooser.Offset()).To(Equal(offset))

		_, ok := chooser.Tick(f, clock.NowMillis())
		Expect(ok).To(BeFalse(), "stale frame chain should be dropped")

		settle(chooser, g, clock)
		Expect(chooser.Offset()).To(BeNumerically("~", 100, 5))
	})
})
