// Command example demonstrates the ranked belief algebra with a handful
// of worked scenarios: sequential construction and mapping, conditioning
// via observe, monadic bind with rank addition, the Monty Hall problem,
// and an infinite lazy sequence.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/gitrdm/rankedbelief/pkg/ranking"
)

func main() {
	scenario := flag.String("scenario", "all", "scenario to run: sequential, observe, bind, monty-hall, dice, doubling, all")
	verbose := flag.Bool("v", false, "enable debug-level logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	scenarios := map[string]func(context.Context){
		"sequential": runSequentialMapTake,
		"observe":    runObserve,
		"bind":       runMonadicBind,
		"monty-hall": runMontyHall,
		"dice":       runTwoDice,
		"doubling":   runInfiniteDoubling,
	}

	ctx := context.Background()
	if *scenario == "all" {
		for _, name := range []string{"sequential", "observe", "bind", "monty-hall", "dice", "doubling"} {
			scenarios[name](ctx)
		}
		return
	}

	fn, ok := scenarios[*scenario]
	if !ok {
		logger.Error("unknown scenario", "scenario", *scenario)
		os.Exit(1)
	}
	fn(ctx)
}

func logPairs[T any](logger *slog.Logger, label string, pairs []ranking.Pair[T]) {
	for _, p := range pairs {
		logger.Info(label, "value", p.Value, "rank", p.Rank.String())
	}
}

func runSequentialMapTake(_ context.Context) {
	logger := slog.With("scenario", "sequential")
	r, err := ranking.FromValuesSequential([]int{1, 2, 3}, ranking.Zero(), ranking.Options[int]{})
	if err != nil {
		logger.Error("construct", "err", err)
		return
	}
	doubled := ranking.Map(r, func(v int) (int, error) { return v * 2, nil })
	got, err := ranking.TakeN(doubled, 2)
	if err != nil {
		logger.Error("take", "err", err)
		return
	}
	logPairs(logger, "doubled", got)
}

func runObserve(_ context.Context) {
	logger := slog.With("scenario", "observe")
	r, err := ranking.FromList([]ranking.Pair[int]{
		{Value: 1, Rank: ranking.MustFromValue(2)},
		{Value: 2, Rank: ranking.MustFromValue(5)},
		{Value: 3, Rank: ranking.MustFromValue(9)},
	}, ranking.Options[int]{})
	if err != nil {
		logger.Error("construct", "err", err)
		return
	}
	conditioned := ranking.Observe(r, func(v int) (bool, error) { return v >= 2, nil })
	got, err := ranking.TakeN(conditioned, 10)
	if err != nil {
		logger.Error("take", "err", err)
		return
	}
	logPairs(logger, "conditioned on >= 2", got)
}

func runMonadicBind(_ context.Context) {
	logger := slog.With("scenario", "bind")
	r, err := ranking.FromValuesSequential([]int{1, 2}, ranking.Zero(), ranking.Options[int]{})
	if err != nil {
		logger.Error("construct", "err", err)
		return
	}
	bound := ranking.MergeApply(r, func(n int) (ranking.Ranking[int], error) {
		return ranking.FromList([]ranking.Pair[int]{
			{Value: n, Rank: ranking.Zero()},
			{Value: n + 1, Rank: ranking.MustFromValue(1)},
		}, ranking.Options[int]{})
	})
	got, err := ranking.TakeN(bound, 10)
	if err != nil {
		logger.Error("take", "err", err)
		return
	}
	logPairs(logger, "bound", got)
}

type montyWorld struct{ prize, pick, host int }

func runMontyHall(_ context.Context) {
	logger := slog.With("scenario", "monty-hall")
	doors := []int{0, 1, 2}

	prizes := ranking.FromValuesUniform(doors, ranking.Zero(), ranking.Options[int]{})
	worlds := ranking.MergeApply(prizes, func(prize int) (ranking.Ranking[montyWorld], error) {
		picks := ranking.FromValuesUniform(doors, ranking.Zero(), ranking.Options[int]{})
		return ranking.Map(picks, func(pick int) (montyWorld, error) {
			return montyWorld{prize: prize, pick: pick}, nil
		}), nil
	})

	outcomes := ranking.MergeApply(worlds, func(w montyWorld) (ranking.Ranking[montyWorld], error) {
		var candidates []int
		for _, d := range doors {
			if d != w.prize && d != w.pick {
				candidates = append(candidates, d)
			}
		}
		rank := ranking.Zero()
		if len(candidates) == 2 {
			rank = ranking.MustFromValue(1)
		}
		pairs := make([]ranking.Pair[montyWorld], 0, len(candidates))
		for _, host := range candidates {
			pairs = append(pairs, ranking.Pair[montyWorld]{
				Value: montyWorld{prize: w.prize, pick: w.pick, host: host},
				Rank:  rank,
			})
		}
		return ranking.FromList(pairs, ranking.Options[montyWorld]{})
	})

	hostOpensOne := ranking.Observe(outcomes, func(w montyWorld) (bool, error) { return w.host == 1, nil })
	stayWins := ranking.Filter(hostOpensOne, func(w montyWorld) (bool, error) { return w.pick == w.prize, nil })
	switchWins := ranking.Filter(hostOpensOne, func(w montyWorld) (bool, error) {
		for _, d := range doors {
			if d != w.pick && d != w.host {
				return d == w.prize, nil
			}
		}
		return false, nil
	})

	stay, stayOK, err := ranking.MostNormal(stayWins)
	if err != nil {
		logger.Error("most normal (stay)", "err", err)
		return
	}
	switchTo, switchOK, err := ranking.MostNormal(switchWins)
	if err != nil {
		logger.Error("most normal (switch)", "err", err)
		return
	}
	logger.Info("stay wins most-normal", "ok", stayOK, "rank", stay.Rank.String())
	logger.Info("switch wins most-normal", "ok", switchOK, "rank", switchTo.Rank.String())
}

func runTwoDice(_ context.Context) {
	logger := slog.With("scenario", "dice")
	faces := []int{1, 2, 3, 4, 5, 6}
	die := ranking.FromValuesUniform(faces, ranking.Zero(), ranking.Options[int]{})

	sums := ranking.MergeApply(die, func(a int) (ranking.Ranking[int], error) {
		return ranking.Map(die, func(b int) (int, error) { return a + b, nil }), nil
	})

	got, err := ranking.TakeN(sums, 36)
	if err != nil {
		logger.Error("take", "err", err)
		return
	}
	counts := make(map[int]int)
	for _, p := range got {
		counts[p.Value]++
	}
	for sum := 2; sum <= 12; sum++ {
		logger.Info("sum frequency", "sum", sum, "count", counts[sum])
	}
}

func runInfiniteDoubling(_ context.Context) {
	logger := slog.With("scenario", "doubling")
	r := ranking.FromGenerator(func(idx int) (int, ranking.Rank) {
		v := 1
		for i := 0; i < idx; i++ {
			v *= 2
		}
		return v, ranking.MustFromValue(uint64(idx))
	}, 0, ranking.Options[int]{})

	got, err := ranking.TakeN(r, 10)
	if err != nil {
		logger.Error("take", "err", err)
		return
	}
	logPairs(logger, "doubling", got)
}
