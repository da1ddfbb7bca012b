package translate

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// batchFunc translates one batch of items
type batchFunc func(ctx context.Context, items []Item) ([]Result, error)

// splitBatches cuts items into batches of at most size items
func splitBatches(items []Item, size int) [][]Item {
	var batches [][]Item
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[i:end])
	}
	return batches
}

// runBatches splits items into batches of opts.BatchSize, fans them out to
// at most opts.Concurrency workers, and returns the results sorted by item
// index. The first batch error cancels the remaining work.
func runBatches(ctx context.Context, opts Options, items []Item, translate batchFunc) ([]Result, error) {
	if len(items) == 0 {
		return []Result{}, nil
	}

	batches := splitBatches(items, opts.batchSize())
	if len(batches) == 1 {
		return translate(ctx, batches[0])
	}

	concurrency := opts.concurrency()
	if concurrency > len(batches) {
		concurrency = len(batches)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type batchResult struct {
		index   int
		results []Result
		err     error
	}

	workChan := make(chan int)
	resultChan := make(chan batchResult, len(batches))

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case batchIdx, ok := <-workChan:
					if !ok {
						return
					}
					if ctx.Err() != nil {
						return
					}
					results, err := translate(ctx, batches[batchIdx])
					if err != nil {
						cancel()
					}
					resultChan <- batchResult{
						index:   batchIdx,
						results: results,
						err:     err,
					}
				}
			}
		}()
	}

	go func() {
		defer close(workChan)
		for i := range batches {
			select {
			case <-ctx.Done():
				return
			case workChan <- i:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	collected := make([][]Result, len(batches))
	var firstErr error
	for result := range resultChan {
		if result.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("batch %d failed: %w", result.index, result.err)
			}
			continue
		}
		collected[result.index] = result.results
	}

	if firstErr != nil {
		return nil, firstErr
	}

	all := make([]Result, 0, len(items))
	for _, results := range collected {
		all = append(all, results...)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Index < all[j].Index
	})

	return all, nil
}
