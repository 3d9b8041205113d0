// Package wordfreq counts word occurrences in text lines. Words are
// lowercased with ASCII punctuation removed; there is no stemming and no
// stop-word list.
package wordfreq
