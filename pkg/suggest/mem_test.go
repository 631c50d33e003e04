//go:build test

package suggest

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/bastiangx/lexserve/pkg/lexicon"
)

var testPrefixes = []string{
	"ל", "לכ", "לכת", "לכתו", "לכתוב",
	"כ", "כת", "כתב", "כתבת", "כתבתי",
	"w", "wr", "wri", "writ", "write",
	"g", "gu", "gua", "guar", "guard",
}

// syntheticEntries builds n entries over a small alphabet so prefixes overlap.
func syntheticEntries(n int) []lexicon.WordEntry {
	letters := []rune("אבגדהוזחטיכלמנסעפצקרשת")
	entries := make([]lexicon.WordEntry, 0, n)
	for i := range n {
		a := letters[i%len(letters)]
		b := letters[(i/len(letters))%len(letters)]
		c := letters[(i/7)%len(letters)]
		word := "ל" + string([]rune{a, b, c})
		entries = append(entries, lexicon.WordEntry{
			ID:             fmt.Sprintf("%d-synthetic", i),
			Word:           word,
			WordNormalized: word,
			Translation:    fmt.Sprintf("to write %d; to guard", i),
			Root:           []string{string(a), string(b), string(c)},
			Forms: []lexicon.InflectedForm{
				{Form: string([]rune{a, b, c}), FormNormalized: string([]rune{a, b, c})},
				{Form: string([]rune{a, b, c}) + "תי", FormNormalized: string([]rune{a, b, c}) + "תי"},
			},
		})
	}
	return append(entries, fixture()...)
}

func TestMemoryLeakBasic(t *testing.T) {
	iterations := []int{100, 500, 1000}

	for _, iterCount := range iterations {
		t.Run(fmt.Sprintf("iterations_%d", iterCount), func(t *testing.T) {
			runBasicMemoryTest(t, iterCount)
		})
	}
}

func TestMemoryLeakConcurrent(t *testing.T) {
	configs := []struct {
		workers             int
		iterationsPerWorker int
	}{
		{workers: 1, iterationsPerWorker: 400},
		{workers: 4, iterationsPerWorker: 100},
		{workers: 8, iterationsPerWorker: 50},
	}

	for _, config := range configs {
		t.Run(fmt.Sprintf("workers_%d_iter_%d", config.workers, config.iterationsPerWorker), func(t *testing.T) {
			runConcurrentMemoryTest(t, config.workers, config.iterationsPerWorker)
		})
	}
}

func runBasicMemoryTest(t *testing.T, iterations int) {
	idx := mustBuild(t, syntheticEntries(5000))

	var baseline runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&baseline)
	baselineGoroutines := runtime.NumGoroutine()

	for i := 0; i < iterations; i++ {
		for _, prefix := range testPrefixes {
			_ = idx.Suggest(prefix, 10)
			_ = idx.Get(prefix)
		}
	}

	var final runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&final)
	finalGoroutines := runtime.NumGoroutine()

	memDelta := int64(final.HeapAlloc) - int64(baseline.HeapAlloc)
	goroutineDelta := finalGoroutines - baselineGoroutines
	totalOps := iterations * len(testPrefixes) * 2

	t.Logf("iterations=%d ops=%d heap_delta=%d bytes goroutine_delta=%d",
		iterations, totalOps, memDelta, goroutineDelta)

	if memDelta > 1<<20 {
		t.Errorf("heap grew by %d bytes over %d read-only lookups", memDelta, totalOps)
	}
	if goroutineDelta > 2 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
	}
}

func runConcurrentMemoryTest(t *testing.T, workers, iterationsPerWorker int) {
	memFile, err := os.Create("concurrent_memory.prof")
	if err != nil {
		t.Fatalf("profile file creation failed: %v", err)
	}
	defer func() {
		memFile.Close()
		os.Remove("concurrent_memory.prof")
	}()

	idx := mustBuild(t, syntheticEntries(5000))

	runtime.GC()
	baselineGoroutines := runtime.NumGoroutine()

	var wg sync.WaitGroup
	var totalOps atomic.Int64

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterationsPerWorker; i++ {
				for _, prefix := range testPrefixes {
					_ = idx.Suggest(prefix, 10)
					totalOps.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	runtime.GC()
	goroutineDelta := runtime.NumGoroutine() - baselineGoroutines

	t.Logf("workers=%d iter_per_worker=%d total_ops=%d goroutine_delta=%d",
		workers, iterationsPerWorker, totalOps.Load(), goroutineDelta)

	if err := pprof.WriteHeapProfile(memFile); err != nil {
		t.Errorf("heap profile write failed: %v", err)
	}
	if goroutineDelta > 3 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
	}
}
