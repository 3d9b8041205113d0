package domain

// WordCount is one normalized word and the number of times it occurs.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// WordFrequency is the frequency table of one input file, ordered by
// descending count with ties kept in first-occurrence order.
type WordFrequency struct {
	File    string      `json:"file"`
	Entries []WordCount `json:"entries"`
}
