// Package token splits GEDCOM input into record lines and tokenizes them.
//
// [ReadLines] is the line reader: it yields the trimmed, non-empty lines of
// a source in order.
//
// [Tokenize] splits one line into a [Record]: level, tag or identifier and
// optional data.
package token
