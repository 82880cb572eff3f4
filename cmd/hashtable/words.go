package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/nStangl/chained-hashtable/hashtable"
	"github.com/nStangl/chained-hashtable/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

const (
	histogramBins  = 5
	histogramWidth = 40
)

var (
	top     int
	sampleN int
	csvPath string

	wordsCmd = &cobra.Command{
		Use:   "words <file> [loglevel]",
		Short: "Count word frequencies in a file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if top < 0 {
				return fmt.Errorf("top must not be negative, got %d: %w", top, hashtable.ErrInvalidArgument)
			}

			if sampleN < 0 {
				return fmt.Errorf("sample must not be negative, got %d: %w", sampleN, hashtable.ErrInvalidArgument)
			}

			words, err := util.ReadWords(args[0])
			if err != nil {
				return err
			}

			log.Infof("loaded %d words from %s", len(words), args[0])

			ht, err := countWords(cfg, words)
			if err != nil {
				return err
			}

			printTop(os.Stdout, ht, top)

			if sampleN > 0 {
				fmt.Fprintf(os.Stdout, "\nSampled %d words by frequency\n", sampleN)

				for _, word := range sampleWords(ht, sampleN, rand.New(rand.NewSource(time.Now().UnixNano()))) {
					fmt.Fprintln(os.Stdout, word)
				}
			}

			if err := printChains(os.Stdout, ht); err != nil {
				return err
			}

			if csvPath == "" {
				return nil
			}

			if err := util.WriteCSV(csvPath, frequencyRows(ht)); err != nil {
				return err
			}

			log.Infof("wrote %d frequencies to %s", ht.LengthCached(), csvPath)

			return nil
		},
	}
)

func init() {
	wordsCmd.Flags().IntVarP(&top, "top", "t", 10, "How many of the most frequent words to print")
	wordsCmd.Flags().IntVarP(&sampleN, "sample", "s", 0, "Draw this many words at random, weighted by their frequency")
	wordsCmd.Flags().StringVar(&csvPath, "csv", "", "Optionally write every word and its count to this CSV file")
}

func countWords(cfg hashtable.Config, words []string) (*hashtable.HashTable[string, int], error) {
	ht, err := hashtable.NewFromConfig[int](cfg)
	if err != nil {
		return nil, err
	}

	for _, w := range words {
		// missing words start from the zero value
		n, _ := ht.Get(w)
		ht.Set(w, n+1)
	}

	log.WithFields(log.Fields{
		"distinct":    ht.LengthCached(),
		"load factor": ht.LoadFactor(),
	}).Debug("counted words")

	return ht, nil
}

// mostFrequent returns the distinct words ordered by descending count, ties alphabetically
func mostFrequent(ht *hashtable.HashTable[string, int]) []string {
	words := ht.Keys()
	slices.Sort(words)
	slices.SortStableFunc(words, func(a, b string) bool {
		x, _ := ht.Get(a)
		y, _ := ht.Get(b)
		return x > y
	})

	return words
}

func printTop(w io.Writer, ht *hashtable.HashTable[string, int], n int) {
	words := mostFrequent(ht)
	if n >= 0 && n < len(words) {
		words = words[:n]
	}

	for _, word := range words {
		c, _ := ht.Get(word)
		fmt.Fprintf(w, "%6d %s\n", c, word)
	}
}

// sampleWords draws n words, each with probability count / total
func sampleWords(ht *hashtable.HashTable[string, int], n int, rng *rand.Rand) []string {
	var (
		items = ht.Items()
		total int
	)

	for _, e := range items {
		total += e.Value
	}

	if total <= 0 {
		return nil
	}

	drawn := make([]string, 0, n)

	for i := 0; i < n; i++ {
		r := rng.Intn(total)

		for _, e := range items {
			if r < e.Value {
				drawn = append(drawn, e.Key)
				break
			}

			r -= e.Value
		}
	}

	return drawn
}

func printChains[V any](w io.Writer, ht *hashtable.HashTable[string, V]) error {
	lengths := ht.BucketLengths()

	samples := make([]float64, len(lengths))
	for i, l := range lengths {
		samples[i] = float64(l)
	}

	fmt.Fprintf(w, "\nChain lengths over %d buckets (load factor %.2f)\n", ht.NumBuckets(), ht.LoadFactor())

	return histogram.Fprint(w, histogram.Hist(histogramBins, samples), histogram.Linear(histogramWidth))
}

func frequencyRows(ht *hashtable.HashTable[string, int]) [][]string {
	rows := [][]string{{"word", "count"}}

	for _, word := range mostFrequent(ht) {
		c, _ := ht.Get(word)
		rows = append(rows, []string{word, strconv.Itoa(c)})
	}

	return rows
}
