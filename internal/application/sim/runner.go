package sim

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/younwookim/neondodge/internal/application/engine"
	"github.com/younwookim/neondodge/internal/application/state"
	"github.com/younwookim/neondodge/internal/domain/entity"
	"github.com/younwookim/neondodge/internal/infrastructure/config"
)

// Result is the outcome of one scripted match
type Result struct {
	MatchID     uuid.UUID
	Seed        int64
	Score       int
	Frames      int // Steps taken until GameOver or the end of the script
	Hits        int
	Orbs        int
	Dashes      int
	Finished    bool // Reached GameOver
	Fingerprint uint64
}

// FramesFor returns how many steps of frameMs cover a full match plus one
// extra step to observe GameOver.
func FramesFor(tuning *config.Tuning, frameMs float64) int {
	return int(math.Ceil(tuning.Match.DurationSec*1000/frameMs)) + 1
}

// Run plays script against a fresh engine seeded with the script seed
func Run(tuning *config.Tuning, script Script) (Result, error) {
	w, h := float64(tuning.Display.ScreenWidth), float64(tuning.Display.ScreenHeight)
	e, err := engine.New(w, h, entity.DefaultSettings(), 0, tuning, rand.New(rand.NewSource(script.Seed)))
	if err != nil {
		return Result{}, fmt.Errorf("failed to run seed %d: %w", script.Seed, err)
	}

	res := Result{MatchID: uuid.New(), Seed: script.Seed}
	cursor := NewCursor(script)
	for e.Phase() != state.PhaseGameOver {
		in, ok := cursor.Next()
		if !ok {
			break
		}
		if in.Dash && e.ActivateDash(in.Move) {
			res.Dashes++
		}
		for _, ev := range e.Update(in.ElapsedMs, in.Move) {
			switch ev.Kind {
			case engine.EventHit:
				res.Hits++
			case engine.EventOrbCollected:
				res.Orbs++
			}
		}
	}

	res.Score = e.Score()
	res.Frames = cursor.CurrentFrame()
	res.Finished = e.Phase() == state.PhaseGameOver
	res.Fingerprint = e.Fingerprint()
	return res, nil
}

// RunAll plays one scripted match per seed concurrently, at most limit at a
// time (no limit when limit <= 0). Results are ordered by seed.
func RunAll(ctx context.Context, tuning *config.Tuning, seeds []int64, frameMs float64, limit int) ([]Result, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	frames := FramesFor(tuning, frameMs)
	results := make([]Result, len(seeds))
	for i, seed := range seeds {
		i, seed := i, seed
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Run(tuning, NewScript(seed, frames, frameMs))
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Seed < results[j].Seed })
	return results, nil
}

// Mismatch is a seed whose two runs disagreed
type Mismatch struct {
	Seed   int64
	First  uint64
	Second uint64
}

// Compare pairs results by seed and reports every fingerprint difference.
// Seeds present in only one list are ignored.
func Compare(first, second []Result) []Mismatch {
	bySeed := make(map[int64]uint64, len(second))
	for _, r := range second {
		bySeed[r.Seed] = r.Fingerprint
	}

	var out []Mismatch
	for _, r := range first {
		fp, ok := bySeed[r.Seed]
		if ok && fp != r.Fingerprint {
			out = append(out, Mismatch{Seed: r.Seed, First: r.Fingerprint, Second: fp})
		}
	}
	return out
}
