// SPDX-License-Identifier: MIT
// Package core_test verifies that concurrent readers of an unmutated Graph do
// not race (run with -race).

package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcurrentReaders(t *testing.T) {
	g := newJavaGraph(t)

	const readers = 32
	var wg sync.WaitGroup
	errs := make(chan error, readers)
	counts := make(chan int, readers)
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			nbs, err := g.Neighbors(Bandung)
			if err != nil {
				errs <- err
				return
			}
			if _, err = g.Weight(Semarang, Yogyakarta); err != nil {
				errs <- err
				return
			}
			_ = g.Clone()
			counts <- len(nbs) + len(g.Edges())
		}()
	}
	wg.Wait()
	close(errs)
	close(counts)

	for err := range errs {
		t.Errorf("reader failed: %v", err)
	}
	for c := range counts {
		assert.Equal(t, 3+12, c)
	}
}
