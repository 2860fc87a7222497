package stress

import (
	"runtime"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"stripload/model"
)

// Rows of the field are independent, so the build parallelizes over row
// ranges with no locking. Output is identical to BuildField.

type task struct {
	first int
	last  int
}

// BuildFieldConcurrently is BuildField with the rows fanned out to a pool
// of workers. workers <= 0 picks one per CPU.
func BuildFieldConcurrently(load model.LoadParameters, grid model.GridSpec, workers int) *Field {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	start := time.Now()
	f := newField(load, grid)

	tasks := make(chan task, workers*2)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				f.fillRows(t.first, t.last)
			}
		}()
	}

	// Several chunks per worker so a slow range does not straggle the pool.
	chunk := f.Rows / (workers * 4)
	if chunk == 0 {
		chunk = 1
	}
	for first := 0; first < f.Rows; first += chunk {
		last := first + chunk
		if last > f.Rows {
			last = f.Rows
		}
		tasks <- task{first: first, last: last}
	}
	close(tasks)
	wg.Wait()

	log.WithFields(log.Fields{
		"rows":    f.Rows,
		"cols":    f.Cols,
		"workers": workers,
		"took":    time.Since(start),
	}).Info("stress field built concurrently")
	return f
}
