package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/hammer/pkg/animation"
)

// This example steps a driver on a simulated clock and stops it from inside
// the third tick.
func ExampleFrameDriver() {
	driver := animation.NewFrameDriver(20 * time.Millisecond)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	driver.Start(start)

	ticks := 0
	for ms := 0; ms <= 100; ms += 10 {
		now := start.Add(time.Duration(ms) * time.Millisecond)
		driver.RunFrame(now, func() {
			ticks++
			fmt.Printf("tick %d at %dms\n", ticks, ms)
			if ticks == 3 {
				driver.Stop()
			}
		})
	}
	fmt.Println("active:", driver.IsActive())
	// Output:
	// tick 1 at 0ms
	// tick 2 at 20ms
	// tick 3 at 40ms
	// active: false
}
