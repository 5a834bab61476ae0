// Package importer bulk loads quotes from a text file into the quotes API.
//
// The file holds entries separated by lines containing only ".":
//
//	Be yourself; everyone else is already taken.
//	-- Oscar Wilde
//	.
//	Simplicity is the ultimate sophistication. -- Leonardo da Vinci
//
// The author follows the last " -- " of an entry and may be omitted.
// Lines inside an entry are joined with single spaces.
package importer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

const (
	separatorLine   = "."
	authorSeparator = " -- "
	maxLineLength   = 1 << 20
)

// Entry is one quote read from a file.
type Entry struct {
	// Line is where the entry starts, counting from 1.
	Line int
	domain.NewQuote
}

// Parse reads every non-blank entry from r.
func Parse(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var (
		entries []Entry
		parts   []string
		start   int
		lineNo  int
	)

	flush := func() {
		if len(parts) > 0 {
			entries = append(entries, newEntry(start, strings.Join(parts, " ")))
		}
		parts = parts[:0]
	}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == separatorLine:
			flush()
		case line == "":
		default:
			if len(parts) == 0 {
				start = lineNo
			}
			parts = append(parts, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading quotes at line %d: %w", lineNo+1, err)
	}

	flush()

	return entries, nil
}

func newEntry(line int, text string) Entry {
	content, author := text, ""
	if i := strings.LastIndex(text, authorSeparator); i >= 0 {
		content = strings.TrimSpace(text[:i])
		author = strings.TrimSpace(text[i+len(authorSeparator):])
	}

	return Entry{
		Line:     line,
		NewQuote: domain.NewQuote{Content: content, Author: author},
	}
}
