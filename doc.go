// Package strset implements a string-set dictionary with two interchangeable
// engines: a red-black tree and a double-hashing table.
//
// Both engines expose the same four operations (create, insert, contains,
// close) with identical semantics, so callers can substitute one for the
// other.
//
// # Basic Usage
//
//	d, err := strset.New(strset.EngineRedBlack, 50)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer d.Close()
//
//	for _, w := range []string{"dog", "cat", "bird"} {
//	    if err := d.Insert(w); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	fmt.Println(d.Contains("cat"), d.Contains("fish")) // true false
//
// The hash engine is configured with functional options:
//
//	d, err := strset.NewHashTable(50,
//	    strset.WithInitialCapacity(1024),
//	    strset.WithHashFunc(strset.HashXXH3))
//
// # Contract
//
//   - Values are compared byte-wise. Values of maxStr bytes or more are
//     truncated to maxStr-1 bytes, on insert and on lookup alike.
//   - Empty and nil values are ignored: Insert stores nothing and returns
//     nil, Contains reports false.
//   - Inserting a value that is already present is a no-op.
//   - Close releases all storage and may be called more than once. Insert
//     after Close returns ErrClosed.
//
// # Package Structure
//
//   - Public API: dict.go (Dictionary, New, NewTree, NewHashTable)
//   - Configuration: options.go (Option, With* functions), hash.go (HashID)
//   - Engine dispatch: engine.go (engine interface, EngineID, newEngine)
//   - Engines: internal/rbtree/ (red-black tree), internal/dhash/ (double hashing)
//   - Sizing: internal/primes/ (primality, next prime)
//   - Word input for cmd/bench: internal/wordlist/ (memory-mapped word files)
package strset
