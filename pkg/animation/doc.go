// Package animation provides frame pacing for hammer views.
//
// # Core Components
//
//   - [FrameDriver]: A start/stop guard the host polls once per frame. It
//     decides whether a tick is due and when the next one will be.
//
//   - [Clock]: The time source hosts read with [Now]. Tests swap it with
//     [SetClock].
//
// # Basic Usage
//
// The driver never spawns goroutines; a host loop polls it:
//
//	driver := animation.NewFrameDriver(animation.DefaultFrameDelay)
//	driver.Start(animation.Now())
//	for driver.IsActive() {
//	    time.Sleep(time.Until(driver.NextFrame()))
//	    driver.RunFrame(animation.Now(), step)
//	}
package animation
