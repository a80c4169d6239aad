package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/theflywheel/hashkv"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Chaining table with ten buckets
	cfg := hashkv.DefaultConfig()
	cfg.Capacity = 10
	ht, err := hashkv.NewChaining[string](cfg, hashkv.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}

	ht.Insert("key1", "value1")
	ht.Insert("key2", "value2")
	fmt.Println("Inserted 2 key-value pairs")

	for _, key := range []string{"key1", "key3"} {
		if value, found := ht.Search(key); found {
			fmt.Printf("%s => %s\n", key, value)
		} else {
			fmt.Printf("%s not found\n", key)
		}
	}

	fmt.Printf("Deleted key1: %v\n", ht.Delete("key1"))
	if _, found := ht.Search("key1"); !found {
		fmt.Println("key1 is gone")
	}

	// Same data through double hashing with a forced resize
	cfg.Capacity = 3
	cfg.HashFunc = "djb2"
	cfg.Probing = "double"
	oa, err := hashkv.NewOpenAddressing[int](cfg, hashkv.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}
	for i := 0; i < 10; i++ {
		oa.Insert(fmt.Sprintf("key%d", i), i*100)
	}
	oa.Delete("key2")

	stats := oa.CollisionStats()
	fmt.Printf("Open addressing: %d entries, capacity %d, tombstones %d, load factor %.2f\n",
		oa.Len(), oa.Capacity(), oa.Tombstones(), oa.LoadFactor())
	fmt.Printf("Collisions: %d, longest probe: %d\n", stats.Collisions, stats.MaxProbeLength)

	fmt.Println("Example completed successfully")
}
