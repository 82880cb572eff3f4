package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nStangl/chained-hashtable/hashtable"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through set, get, contains and delete on a small table",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(os.Stdout, cfg)
	},
}

func runDemo(w io.Writer, cfg hashtable.Config) error {
	ht, err := hashtable.NewFromConfig[int](cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "hash table: %s\n", ht)

	fmt.Fprintln(w, "\nTesting set:")

	for _, kv := range []struct {
		k string
		v int
	}{{"I", 1}, {"V", 5}, {"X", 10}} {
		fmt.Fprintf(w, "set(%q, %d)\n", kv.k, kv.v)
		ht.Set(kv.k, kv.v)
		fmt.Fprintf(w, "hash table: %s\n", ht)
	}

	fmt.Fprintln(w, "\nTesting get:")

	for _, k := range []string{"I", "V", "X"} {
		v, err := ht.Get(k)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "get(%q): %d\n", k, v)
	}

	fmt.Fprintf(w, "contains(%q): %t\n", "X", ht.Contains("X"))
	fmt.Fprintf(w, "length: %d\n", ht.LengthCached())

	fmt.Fprintln(w, "\nTesting delete:")

	for _, k := range []string{"I", "V", "X"} {
		fmt.Fprintf(w, "delete(%q)\n", k)

		if err := ht.Delete(k); err != nil {
			return err
		}

		fmt.Fprintf(w, "hash table: %s\n", ht)
	}

	fmt.Fprintf(w, "contains(%q): %t\n", "X", ht.Contains("X"))
	fmt.Fprintf(w, "length: %d\n", ht.LengthCached())

	// a smaller table forces collisions
	small := cfg
	small.Buckets = 3

	ht, err = hashtable.NewFromConfig[int](small)
	if err != nil {
		return err
	}

	for _, k := range []string{"I", "V", "X", "L", "C", "D", "M"} {
		ht.Set(k, romanValue(k))
	}

	fmt.Fprintf(w, "\nIterating %d buckets:\n", ht.NumBuckets())

	for it := ht.Iterator(); it.Next(); {
		fmt.Fprintf(w, "%#v\n", it.Value())
	}

	return nil
}

func romanValue(k string) int {
	return map[string]int{"I": 1, "V": 5, "X": 10, "L": 50, "C": 100, "D": 500, "M": 1000}[k]
}
