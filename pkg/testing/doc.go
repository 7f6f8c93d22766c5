// Package testing provides canvas recording and snapshot helpers for
// freecorner tests.
//
// # Recording
//
// Recorder implements graphics.Canvas and keeps every call as a DisplayOp,
// so tests can assert on draw order without rasterizing:
//
//	rec := drifttest.NewRecorder(graphics.Size{Width: 100, Height: 100})
//	corner.Render(rec, path, corner.DefaultStyle(), nil)
//	got := rec.OpNames() // [save clipPath save drawPath restore ...]
//
// # Snapshot Testing
//
// Capture and compare display-list snapshots:
//
//	snap := drifttest.Capture(size, func(c graphics.Canvas) { ... })
//	snap.MatchesFile(t, "testdata/rounded.snapshot.json")
//
// Update snapshots with:
//
//	FREECORNER_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import drifttest "github.com/go-drift/freecorner/pkg/testing"
package testing
