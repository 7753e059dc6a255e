// Package parallel runs loop bodies on a bounded number of goroutines
package parallel

import "sync"

// ForEach executes a for loop with a limited number of concurrent goroutines.
// Each goroutine processes one integer, from 0 to length.
func ForEach(length, limit int, body func(i int)) {
	if limit <= 0 {
		limit = 1
	}
	if length <= 0 {
		return
	}

	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup
	wg.Add(length)

	for i := 0; i < length; i++ {
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			body(i)
		}(i)
	}

	wg.Wait()
}
