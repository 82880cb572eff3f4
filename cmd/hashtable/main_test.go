package main

import (
	"bytes"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nStangl/chained-hashtable/hashtable"
	"golang.org/x/exp/slices"
)

// resetCommandState restores the flag bound globals once the test is done,
// flags left out of a later Execute call would otherwise keep their values
func resetCommandState(t *testing.T) {
	t.Helper()

	reset := func() {
		cfg = hashtable.DefaultConfig()
		loglevel = "INFO"
		top = 10
		sampleN = 0
		csvPath = ""
		count = 10000
		rootCmd.SetArgs(nil)
	}

	reset()
	t.Cleanup(reset)
}

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer

	if err := runDemo(&buf, hashtable.DefaultConfig()); err != nil {
		t.Fatalf("runDemo failed: %v", err)
	}

	out := buf.String()

	for _, expected := range []string{
		"hash table: {}",
		`get("X"): 10`,
		`contains("X"): true`,
		`contains("X"): false`,
		"length: 3",
		"length: 0",
		"Iterating 3 buckets:",
		`("M", 1000)`,
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("demo output is missing %q", expected)
		}
	}
}

func TestRunDemoInvalidConfig(t *testing.T) {
	var buf bytes.Buffer

	if err := runDemo(&buf, hashtable.Config{Buckets: 0, Hasher: hashtable.XXHash}); err == nil {
		t.Error("expected runDemo to reject zero buckets")
	}
}

func TestCountWords(t *testing.T) {
	words := []string{"one", "fish", "two", "fish", "red", "fish", "blue", "fish", "two"}

	ht, err := countWords(hashtable.Config{Buckets: 3, Hasher: hashtable.Murmur3}, words)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		word  string
		count int
	}{
		{"fish", 4},
		{"two", 2},
		{"one", 1},
		{"red", 1},
		{"blue", 1},
	}

	for _, test := range tests {
		if c, err := ht.Get(test.word); err != nil || c != test.count {
			t.Errorf("count(%s) = %d, %v but expected %d", test.word, c, err, test.count)
		}
	}

	if n := ht.LengthExact(); n != len(tests) {
		t.Errorf("LengthExact() = %d but expected %d", n, len(tests))
	}

	expected := []string{"fish", "two", "blue", "one", "red"}
	if res := mostFrequent(ht); !slices.Equal(res, expected) {
		t.Errorf("mostFrequent() = %v but expected %v", res, expected)
	}

	rows := frequencyRows(ht)
	if len(rows) != 6 || rows[1][0] != "fish" || rows[1][1] != "4" {
		t.Errorf("frequencyRows() = %v", rows)
	}

	var buf bytes.Buffer
	printTop(&buf, ht, 2)

	if lines := strings.Split(strings.TrimSpace(buf.String()), "\n"); len(lines) != 2 {
		t.Errorf("printTop(2) printed %d lines: %q", len(lines), buf.String())
	}

	buf.Reset()
	if err := printChains(&buf, ht); err != nil {
		t.Errorf("printChains failed: %v", err)
	}
}

func TestWordsCommand(t *testing.T) {
	resetCommandState(t)

	dir := t.TempDir()

	var (
		in  = filepath.Join(dir, "words.txt")
		out = filepath.Join(dir, "counts.csv")
	)

	if err := os.WriteFile(in, []byte("a b a c a b\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetArgs([]string{"words", in, "--csv", out, "--buckets", "2", "--sample", "3", "error"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("words command failed: %v", err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}

	if res := string(b); res != "word,count\na,3\nb,2\nc,1\n" {
		t.Errorf("csv output = %q", res)
	}
}

func TestWordsCommandRejectsNegativeFlags(t *testing.T) {
	in := filepath.Join(t.TempDir(), "words.txt")

	if err := os.WriteFile(in, []byte("a b a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := [][]string{
		{"words", in, "--top=-1"},
		{"words", in, "--sample=-2"},
	}

	for _, args := range tests {
		resetCommandState(t)
		rootCmd.SetArgs(args)

		if err := rootCmd.Execute(); !errors.Is(err, hashtable.ErrInvalidArgument) {
			t.Errorf("Execute(%v) error = %v but expected ErrInvalidArgument", args, err)
		}
	}
}

func TestPrintTopNegative(t *testing.T) {
	ht, err := countWords(hashtable.DefaultConfig(), []string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	printTop(&buf, ht, -1)

	if lines := strings.Split(strings.TrimSpace(buf.String()), "\n"); len(lines) != 2 {
		t.Errorf("printTop(-1) printed %d lines: %q", len(lines), buf.String())
	}
}

func TestSampleWords(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	empty, err := countWords(hashtable.DefaultConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}

	if res := sampleWords(empty, 5, rng); len(res) != 0 {
		t.Errorf("sampleWords on an empty table = %v", res)
	}

	single, err := countWords(hashtable.DefaultConfig(), []string{"fish", "fish"})
	if err != nil {
		t.Fatal(err)
	}

	for _, w := range sampleWords(single, 10, rng) {
		if w != "fish" {
			t.Errorf("sampleWords drew %q from a single word table", w)
		}
	}

	ht, err := countWords(hashtable.Config{Buckets: 2, Hasher: hashtable.MD5}, []string{"a", "a", "a", "b"})
	if err != nil {
		t.Fatal(err)
	}

	const draws = 4000

	drawn := sampleWords(ht, draws, rng)
	if len(drawn) != draws {
		t.Fatalf("sampleWords returned %d words but expected %d", len(drawn), draws)
	}

	var as int
	for _, w := range drawn {
		switch w {
		case "a":
			as++
		case "b":
		default:
			t.Fatalf("sampleWords drew unknown word %q", w)
		}
	}

	// a carries three quarters of the weight
	if as < 2700 || as > 3300 {
		t.Errorf("drew a %d times out of %d but expected about 3000", as, draws)
	}
}

func TestPrintChainsStringValues(t *testing.T) {
	ht, err := hashtable.New[string](4)
	if err != nil {
		t.Fatal(err)
	}

	ht.Set("k", "v")

	var buf bytes.Buffer
	if err := printChains(&buf, ht); err != nil {
		t.Fatalf("printChains failed: %v", err)
	}

	if !strings.Contains(buf.String(), "Chain lengths over 4 buckets") {
		t.Errorf("printChains output = %q", buf.String())
	}
}

func TestBenchCommand(t *testing.T) {
	resetCommandState(t)

	rootCmd.SetArgs([]string{"bench", "-n", "50", "--buckets", "4", "error"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("bench command failed: %v", err)
	}

	if cfg.Buckets != 4 || count != 50 {
		t.Errorf("flags not applied: buckets %d, count %d", cfg.Buckets, count)
	}
}

func TestRunBench(t *testing.T) {
	ht, err := runBench(hashtable.Config{Buckets: 16, Hasher: hashtable.XXH3}, 500)
	if err != nil {
		t.Fatalf("runBench failed: %v", err)
	}

	if ht.LengthExact() > 500 {
		t.Errorf("LengthExact() = %d but at most 500 keys were inserted", ht.LengthExact())
	}

	if _, err := runBench(hashtable.DefaultConfig(), -1); err == nil {
		t.Error("expected runBench to reject a negative count")
	}
}

func TestIsLogLevel(t *testing.T) {
	for _, level := range []string{"ALL", "debug", "Info", "warn", "ERROR"} {
		if !isLogLevel(level) {
			t.Errorf("isLogLevel(%s) = false", level)
		}
	}

	if isLogLevel("words.txt") {
		t.Error("isLogLevel(words.txt) = true")
	}
}
