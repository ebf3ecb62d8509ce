// Bench is a benchmarking tool that loads a word list into both dictionary
// engines and compares insert and lookup throughput.
//
// Usage:
//
//	go run ./cmd/bench -words /usr/share/dict/words -maxlen 50 -hash xxh3
//
// Flags:
//
//	-words       Newline-separated word file; when empty, -n random words are generated
//	-n           Number of random words to generate (default: 1,000,000)
//	-maxlen      Length bound of stored values (default: 50)
//	-hash        Primary hash of the double-hash engine: djb2, xxh3, xxhash, murmur3 (default: djb2)
//	-cap         Initial slot count of the double-hash engine (default: 970031)
//	-seed        Seed for the primary hash (default: 5381)
//	-cpuprofile  Write a CPU profile covering the build phase
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	mrand "math/rand/v2"
	"os"
	"runtime/pprof"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tamirms/strset"
	"github.com/tamirms/strset/internal/wordlist"
)

// engineRun holds one engine's dictionary and timings. Each run is owned by
// a single goroutine until the errgroup completes.
type engineRun struct {
	id         strset.EngineID
	dict       strset.Dictionary
	insertTime time.Duration
	lookupTime time.Duration
	hits       int
}

func main() {
	wordsFlag := flag.String("words", "", "newline-separated word file (empty = generate random words)")
	nFlag := flag.Int("n", 1_000_000, "number of random words to generate")
	maxLenFlag := flag.Int("maxlen", 50, "length bound of stored values")
	hashFlag := flag.String("hash", "djb2", "primary hash: djb2, xxh3, xxhash or murmur3")
	capFlag := flag.Int("cap", 970031, "initial slot count of the double-hash engine")
	seedFlag := flag.Uint64("seed", 5381, "seed for the primary hash")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file (build phase only)")
	flag.Parse()

	var hashID strset.HashID
	switch *hashFlag {
	case "djb2":
		hashID = strset.HashDJB2
	case "xxh3":
		hashID = strset.HashXXH3
	case "xxhash":
		hashID = strset.HashXXHash
	case "murmur3":
		hashID = strset.HashMurmur3
	default:
		fmt.Printf("Unknown hash: %s (use djb2, xxh3, xxhash or murmur3)\n", *hashFlag)
		return
	}

	var list *wordlist.List
	if *wordsFlag != "" {
		fmt.Println("Mapping word list...")
		l, err := wordlist.Open(*wordsFlag)
		if err != nil {
			fmt.Printf("Open failed: %v\n", err)
			return
		}
		list = l
	} else {
		fmt.Println("Generating words...")
		list = wordlist.OpenBytes(generateWords(*nFlag))
	}
	defer func() { _ = list.Close() }()

	numWords, err := list.Len()
	if err != nil {
		fmt.Printf("Scan failed: %v\n", err)
		return
	}
	checksum, err := list.Checksum()
	if err != nil {
		fmt.Printf("Checksum failed: %v\n", err)
		return
	}
	// Probes absent from a lowercase word list: the same words upper-cased.
	probes := make([][]byte, 0, numWords)
	_ = list.Each(func(w []byte) error {
		probes = append(probes, bytes.ToUpper(w))
		return nil
	})

	opts := []strset.Option{
		strset.WithHashFunc(hashID),
		strset.WithInitialCapacity(*capFlag),
		strset.WithSeed(*seedFlag),
	}
	runs := make([]*engineRun, 0, 2)
	for _, id := range []strset.EngineID{strset.EngineRedBlack, strset.EngineDoubleHash} {
		d, err := strset.New(id, *maxLenFlag, opts...)
		if err != nil {
			fmt.Printf("New(%s) failed: %v\n", id, err)
			return
		}
		defer func() { _ = d.Close() }()
		runs = append(runs, &engineRun{id: id, dict: d})
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Printf("could not create CPU profile: %v\n", err)
			return
		}
		defer func() { _ = f.Close() }()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("could not start CPU profile: %v\n", err)
			return
		}
	}

	fmt.Println("Building dictionaries...")
	buildStart := time.Now()
	g, ctx := errgroup.WithContext(context.Background())
	for _, r := range runs {
		g.Go(func() error {
			return r.build(ctx, list)
		})
	}
	err = g.Wait()
	buildDuration := time.Since(buildStart)

	if *cpuprofile != "" {
		pprof.StopCPUProfile()
	}
	if err != nil {
		fmt.Printf("Build failed: %v\n", err)
		return
	}

	fmt.Println("Benchmarking lookups...")
	g, ctx = errgroup.WithContext(context.Background())
	for _, r := range runs {
		g.Go(func() error {
			return r.lookup(ctx, list)
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Printf("Lookup failed: %v\n", err)
		return
	}

	fmt.Println("Cross-checking engines...")
	tree, table := runs[0].dict, runs[1].dict
	mismatches := 0
	check := func(w []byte) {
		if tree.ContainsBytes(w) != table.ContainsBytes(w) {
			if mismatches < 10 {
				fmt.Printf("  mismatch on %q\n", w)
			}
			mismatches++
		}
	}
	_ = list.Each(func(w []byte) error {
		check(w)
		return nil
	})
	for _, p := range probes {
		check(p)
	}

	stats := table.Stats()
	treeStats := tree.Stats()

	fmt.Printf("\n")
	fmt.Printf("╔═════════════════════╦════════════════╦════════════════╗\n")
	fmt.Printf("║ Words: %-13d║ Hash: %-9s║ Max len: %-6d║\n", numWords, hashID, *maxLenFlag)
	fmt.Printf("║ Checksum: %016x                                 ║\n", checksum)
	fmt.Printf("╠═════════════════════╬════════════════╬════════════════╣\n")
	fmt.Printf("║ Metric              ║ Red-black      ║ Double hash    ║\n")
	fmt.Printf("╠═════════════════════╬════════════════╬════════════════╣\n")
	fmt.Printf("║ Distinct values     ║ %-14d ║ %-14d ║\n", runs[0].dict.Len(), runs[1].dict.Len())
	fmt.Printf("║ Insert time         ║ %8.3f sec   ║ %8.3f sec   ║\n", runs[0].insertTime.Seconds(), runs[1].insertTime.Seconds())
	fmt.Printf("║ Insert throughput   ║ %8.2f M/sec ║ %8.2f M/sec ║\n", mops(numWords, runs[0].insertTime), mops(numWords, runs[1].insertTime))
	fmt.Printf("║ Lookup latency      ║ %8.1f ns    ║ %8.1f ns    ║\n", nsPer(2*numWords, runs[0].lookupTime), nsPer(2*numWords, runs[1].lookupTime))
	fmt.Printf("║ Hits                ║ %-14d ║ %-14d ║\n", runs[0].hits, runs[1].hits)
	fmt.Printf("║ Height / capacity   ║ %-14d ║ %-14d ║\n", treeStats.Height, stats.Capacity)
	fmt.Printf("║ Black h. / load     ║ %-14d ║ %-14.4f ║\n", treeStats.BlackHeight, stats.LoadFactor)
	fmt.Printf("║ Build wall time     ║ %8.3f sec (both engines in parallel)   ║\n", buildDuration.Seconds())
	fmt.Printf("║ Mismatches          ║ %-14d                                  ║\n", mismatches)
	fmt.Printf("╚═════════════════════╩════════════════╩════════════════╝\n")
}

// build inserts every word into r.dict.
func (r *engineRun) build(ctx context.Context, list *wordlist.List) error {
	start := time.Now()
	i := 0
	err := list.Each(func(w []byte) error {
		i++
		if i%100_000 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		return r.dict.InsertBytes(w)
	})
	r.insertTime = time.Since(start)
	if err != nil {
		return fmt.Errorf("%s: %w", r.id, err)
	}
	return nil
}

// lookup queries every word and its upper-cased variant.
func (r *engineRun) lookup(ctx context.Context, list *wordlist.List) error {
	upper := make([]byte, 0, 64)
	start := time.Now()
	err := list.Each(func(w []byte) error {
		if r.dict.ContainsBytes(w) {
			r.hits++
		}
		upper = append(upper[:0], w...)
		for i, c := range upper {
			if 'a' <= c && c <= 'z' {
				upper[i] = c - 'a' + 'A'
			}
		}
		if r.dict.ContainsBytes(upper) {
			r.hits++
		}
		return ctx.Err()
	})
	r.lookupTime = time.Since(start)
	if err != nil {
		return fmt.Errorf("%s: %w", r.id, err)
	}
	return nil
}

// generateWords returns n newline-terminated random lowercase words.
func generateWords(n int) []byte {
	var buf bytes.Buffer
	buf.Grow(n * 10)
	for range n {
		length := 3 + mrand.IntN(12)
		for range length {
			buf.WriteByte(byte('a' + mrand.IntN(26)))
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func mops(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / d.Seconds() / 1_000_000
}

func nsPer(n int, d time.Duration) float64 {
	if n == 0 {
		return 0
	}
	return float64(d.Nanoseconds()) / float64(n)
}
