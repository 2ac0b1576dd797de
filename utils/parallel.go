package utils

import (
	"context"
	"runtime"
	"sync"

	"go.viam.com/utils"
)

// ParallelFactor controls the max level of parallelization. This might be useful
// to set in tests where too much parallelism actually slows tests down in
// aggregate.
var ParallelFactor = runtime.GOMAXPROCS(0)

func init() {
	if ParallelFactor <= 0 {
		ParallelFactor = 1
	}
}

// RowWorkFunc does the work for a single row.
type RowWorkFunc func(row int)

// ParallelForEachRow splits [0, height) into contiguous groups of rows and runs work for each row,
// one goroutine per group. It returns once every row is done. Work must only touch state owned by
// its own row.
func ParallelForEachRow(ctx context.Context, height int, work RowWorkFunc) error {
	if height <= 0 {
		return ctx.Err()
	}
	numGroups := ParallelFactor
	if numGroups > height {
		numGroups = height
	}
	groupSize := height / numGroups
	extra := height % numGroups

	var wait sync.WaitGroup
	wait.Add(numGroups)
	for groupNum := 0; groupNum < numGroups; groupNum++ {
		from := groupSize * groupNum
		to := from + groupSize
		if groupNum == numGroups-1 {
			to += extra
		}
		utils.PanicCapturingGo(func() {
			defer wait.Done()
			for row := from; row < to; row++ {
				if ctx.Err() != nil {
					return
				}
				work(row)
			}
		})
	}
	wait.Wait()
	return ctx.Err()
}

// ForEachRow runs work for each row in order on the calling goroutine.
func ForEachRow(ctx context.Context, height int, work RowWorkFunc) error {
	for row := 0; row < height; row++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		work(row)
	}
	return ctx.Err()
}
