/*
Package hashkv provides in-memory hash tables built on the two classic
collision-resolution strategies: separate chaining and open addressing.

Both tables grow automatically once the load factor exceeds a configurable
threshold, and both accept one of several interchangeable hash functions.

Basic usage:

	import "github.com/theflywheel/hashkv"

	cfg := hashkv.DefaultConfig()
	cfg.HashFunc = "djb2"
	cfg.Probing = "double"

	t, err := hashkv.NewOpenAddressing[string](cfg)
	if err != nil {
		log.Fatal(err)
	}

	t.Insert("key1", "value1")

	if v, ok := t.Search("key1"); ok {
		fmt.Println("Value:", v)
	}

	t.Delete("key1")

Features:

  - Separate chaining with per-bucket linear scan
  - Open addressing with linear probing or double hashing
  - Tombstone deletion with compaction once tombstones outnumber live entries
  - Automatic doubling when the load factor exceeds the threshold (default 0.7)
  - Hash functions: simple (sum of codes), polynomial, djb2 and xxhash
  - Collision diagnostics for comparing hash functions and strategies

Implementation Details:

The chaining table keeps a slice of buckets, each a slice of key/value pairs.
The open-addressing table keeps a flat slice of slots; each slot is empty,
occupied or a tombstone. Tombstones never stop a probe walk, so deleting one
key does not hide another key further along the same probe sequence.

For double hashing the step is 1 + hash(key, capacity-1), which is never zero.
A table of capacity 1 falls back to a step of 1.

Tables are not safe for concurrent use. Callers that share a table between
goroutines must provide their own locking.
*/
package hashkv
