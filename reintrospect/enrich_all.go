package reintrospect

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/syssam/schemasync/datamodel"
)

// Pair is one (previous, next) tree pair for EnrichAll. The next tree is
// mutated; the previous one is read-only.
type Pair struct {
	Prev *datamodel.Datamodel
	Next *datamodel.Datamodel
}

// EnrichAll reconciles independent tree pairs concurrently. Each pair is
// enriched exactly as by Enrich; the returned warning slices are indexed
// like the input. Pairs must not share a next tree.
func EnrichAll(pairs []Pair, ctx *Context) [][]Warning {
	out := make([][]Warning, len(pairs))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			out[i] = Enrich(p.Prev, p.Next, ctx)
			return nil
		})
	}
	// Enrich never fails, so the group carries no error.
	_ = g.Wait()
	return out
}
