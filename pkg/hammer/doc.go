// Package hammer implements the jumping hammer animation.
//
// A View stacks NodeCount rows. Each row draws Bars hammers (a square head
// on a shaft) that jump in a staggered sine arc as the row's progress sweeps
// from one integer anchor to the next. Tapping starts the active row; when
// its progress crosses the unit threshold the active row moves to the
// neighbouring one, and traversal reverses at the top and bottom rows.
//
// # Frame Loop
//
// The package never starts goroutines or timers. A host polls the view:
//
//	view := hammer.NewView(hammer.DefaultConfig())
//
//	// On pointer down
//	view.HandleTap(animation.Now())
//
//	// Every host frame
//	state := view.Render(canvas, animation.Now())
//	if state.Animating {
//	    // schedule the next frame no sooner than state.NextFrame
//	}
//
// Every threshold crossing stops the frame driver, so each tap animates
// exactly one row.
package hammer
