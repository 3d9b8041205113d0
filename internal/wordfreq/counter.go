package wordfreq

import (
	"sort"
	"strings"

	"txtcli/pkg/contracts/domain"
)

// Punctuation is the set of characters removed before splitting a line
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var stripper = strings.NewReplacer(punctuationPairs()...)

func punctuationPairs() []string {
	pairs := make([]string, 0, 2*len(Punctuation))
	for _, r := range Punctuation {
		pairs = append(pairs, string(r), "")
	}
	return pairs
}

// Tokenize removes punctuation from line, lowercases it and splits it on
// whitespace. Empty tokens are dropped.
func Tokenize(line string) []string {
	return strings.Fields(strings.ToLower(stripper.Replace(line)))
}

// Counter accumulates word frequencies for one file
type Counter struct {
	counts map[string]int
	order  []string
}

// NewCounter creates an empty counter
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add tokenizes line and counts its words
func (c *Counter) Add(line string) {
	for _, word := range Tokenize(line) {
		if _, seen := c.counts[word]; !seen {
			c.order = append(c.order, word)
		}
		c.counts[word]++
	}
}

// AddAll counts the words of every line
func (c *Counter) AddAll(lines []string) {
	for _, line := range lines {
		c.Add(line)
	}
}

// Count returns how often word was seen
func (c *Counter) Count(word string) int {
	return c.counts[word]
}

// Len returns the number of distinct words
func (c *Counter) Len() int {
	return len(c.order)
}

// Entries returns the words by descending count. Words with equal counts
// keep the order in which they were first seen.
func (c *Counter) Entries() []domain.WordCount {
	entries := make([]domain.WordCount, len(c.order))
	for i, word := range c.order {
		entries[i] = domain.WordCount{Word: word, Count: c.counts[word]}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// Count returns the sorted word frequencies of lines
func Count(lines []string) []domain.WordCount {
	c := NewCounter()
	c.AddAll(lines)
	return c.Entries()
}
