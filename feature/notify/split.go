package notify

import (
	"strings"
	"unicode/utf8"
)

// SplitMessage splits text into chunks of at most limit characters, cutting on
// line boundaries. A single line longer than limit is cut hard. limit <= 0
// returns the text unchanged. Empty text yields no chunks.
func SplitMessage(text string, limit int) []string {
	if text == "" {
		return nil
	}
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var (
		chunks []string
		buf    strings.Builder
		size   int
	)
	flush := func() {
		if size > 0 {
			chunks = append(chunks, buf.String())
			buf.Reset()
			size = 0
		}
	}

	for _, line := range strings.Split(text, "\n") {
		n := utf8.RuneCountInString(line)

		if n > limit {
			flush()
			runes := []rune(line)
			for len(runes) > limit {
				chunks = append(chunks, string(runes[:limit]))
				runes = runes[limit:]
			}
			buf.WriteString(string(runes))
			size = len(runes)
			continue
		}

		// +1 for the newline joining this line to the buffer.
		if size > 0 && size+1+n > limit {
			flush()
		}
		if size > 0 {
			buf.WriteByte('\n')
			size++
		}
		buf.WriteString(line)
		size += n
	}
	flush()

	return chunks
}
