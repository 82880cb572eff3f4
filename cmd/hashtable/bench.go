package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/nStangl/chained-hashtable/hashtable"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	count int

	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Insert random keys, delete some and report chain lengths",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ht, err := runBench(cfg, count)
			if err != nil {
				return err
			}

			return printChains(os.Stdout, ht)
		},
	}
)

func init() {
	benchCmd.Flags().IntVarP(&count, "count", "n", 10000, "Number of random keys to insert")
}

func runBench(cfg hashtable.Config, n int) (*hashtable.HashTable[string, string], error) {
	if n < 0 {
		return nil, fmt.Errorf("count must not be negative, got %d: %w", n, hashtable.ErrInvalidArgument)
	}

	ht, err := hashtable.NewFromConfig[string](cfg)
	if err != nil {
		return nil, err
	}

	keys := make([]string, n)
	for i := range keys {
		keys[i] = uuid.NewString()
	}

	start := time.Now()

	for i, k := range keys {
		ht.Set(k, fmt.Sprintf("value-%d", i))
	}

	log.Infof("setting %d keys took %s", n, time.Since(start))

	start = time.Now()

	for _, k := range keys {
		if _, err := ht.Get(k); err != nil {
			return nil, err
		}
	}

	log.Infof("getting %d keys took %s", n, time.Since(start))

	var deleted int

	for _, k := range keys {
		if rand.Intn(10) != 1 {
			continue
		}

		if err := ht.Delete(k); err != nil {
			return nil, err
		}

		deleted++
	}

	log.Infof("deleted %d keys", deleted)

	if exact, cached := ht.LengthExact(), ht.LengthCached(); exact != cached || exact != n-deleted {
		return nil, fmt.Errorf("length mismatch: exact %d, cached %d, expected %d", exact, cached, n-deleted)
	}

	return ht, nil
}
