package logscan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultKeyword is substituted when the caller supplies no keywords.
	DefaultKeyword = "error"
	// DefaultMaxSamples caps the number of retained findings per scan.
	DefaultMaxSamples = 50
	// DefaultMaxLineLength is the rune count beyond which lines are truncated.
	DefaultMaxLineLength = 5000

	truncationMarker = "...(truncated)"
)

var (
	// ErrNotFound indicates the log path does not exist.
	ErrNotFound = errors.New("log file not found")
	// ErrNotAFile indicates the log path exists but is not a regular file.
	ErrNotAFile = errors.New("path is not a regular file")
)

// Options tune a scan. Zero values select the defaults.
type Options struct {
	CaseSensitive bool
	MaxSamples    int
	MaxLineLength int
}

// Finding records a single matched line. Immutable once produced.
type Finding struct {
	Line    int // 1-based
	Keyword string
	Text    string
}

// Result aggregates one completed scan. Every supplied keyword is present in
// ByKeyword, even with a zero count.
type Result struct {
	File         string
	TotalLines   int
	MatchedLines int
	ByKeyword    map[string]int
	Samples      []Finding
}

// KeywordCount is one row of the per-keyword tally.
type KeywordCount struct {
	Keyword string
	Count   int
}

// TopKeywords returns the tally sorted by descending count, then keyword.
func (r Result) TopKeywords() []KeywordCount {
	rows := make([]KeywordCount, 0, len(r.ByKeyword))
	for kw, count := range r.ByKeyword {
		rows = append(rows, KeywordCount{Keyword: kw, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Keyword < rows[j].Keyword
	})
	return rows
}

// matcher tests one literal keyword against a line. No pattern-language
// semantics: the keyword is always an exact substring.
type matcher struct {
	keyword string // as supplied by the caller
	needle  string // lower-folded when fold is set
	fold    bool
}

func compileMatchers(keywords []string, caseSensitive bool) []matcher {
	if len(keywords) == 0 {
		keywords = []string{DefaultKeyword}
	}
	matchers := make([]matcher, 0, len(keywords))
	for _, kw := range keywords {
		m := matcher{keyword: kw, needle: kw, fold: !caseSensitive}
		if m.fold {
			m.needle = strings.ToLower(kw)
		}
		matchers = append(matchers, m)
	}
	return matchers
}

func (m matcher) matches(line, foldedLine string) bool {
	if m.fold {
		return strings.Contains(foldedLine, m.needle)
	}
	return strings.Contains(line, m.needle)
}

// Scan reads the file at path line by line and tallies keyword matches.
// Keywords must already be trimmed of blanks; an empty list falls back to
// DefaultKeyword. The scan either completes fully or fails: no partial
// Result is ever returned.
func Scan(path string, keywords []string, opts Options) (Result, error) {
	maxSamples := opts.MaxSamples
	if maxSamples <= 0 {
		maxSamples = DefaultMaxSamples
	}
	maxLineLength := opts.MaxLineLength
	if maxLineLength <= 0 {
		maxLineLength = DefaultMaxLineLength
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Result{}, fmt.Errorf("stat log: %w", err)
	}
	if !info.Mode().IsRegular() {
		return Result{}, fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	matchers := compileMatchers(keywords, opts.CaseSensitive)

	result := Result{
		File:      path,
		ByKeyword: make(map[string]int, len(matchers)),
	}
	for _, m := range matchers {
		result.ByKeyword[m.keyword] = 0
	}

	// bufio.Reader instead of bufio.Scanner: a pathological line must be
	// truncated, not abort the scan with a token-too-long error.
	reader := bufio.NewReader(file)
	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return Result{}, fmt.Errorf("read log: %w", readErr)
		}
		if raw == "" && readErr == io.EOF {
			break
		}
		result.TotalLines++

		line := strings.TrimSuffix(raw, "\n")
		line = strings.TrimSuffix(line, "\r")
		// Lossy decode: undecodable bytes become U+FFFD, never an error.
		line = strings.ToValidUTF8(line, "�")
		line = truncateLine(line, maxLineLength)

		folded := line
		if !opts.CaseSensitive {
			folded = strings.ToLower(line)
		}

		hit := false
		for _, m := range matchers {
			if !m.matches(line, folded) {
				continue
			}
			result.ByKeyword[m.keyword]++
			if len(result.Samples) < maxSamples {
				result.Samples = append(result.Samples, Finding{
					Line:    result.TotalLines,
					Keyword: m.keyword,
					Text:    line,
				})
			}
			hit = true
		}
		if hit {
			// A line counts once no matter how many keywords it matched.
			result.MatchedLines++
		}

		if readErr == io.EOF {
			break
		}
	}

	return result, nil
}

func truncateLine(line string, maxRunes int) string {
	if utf8.RuneCountInString(line) <= maxRunes {
		return line
	}
	runes := []rune(line)
	return string(runes[:maxRunes]) + truncationMarker
}
