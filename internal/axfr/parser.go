// Package axfr parses zone transfer transcripts into structured records and
// indexes them for matching against desired state.
package axfr

import (
	"bufio"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/poyrazK/zonesync/internal/core/domain"
)

// Parser turns the raw text transcript of one zone transfer into an ordered
// sequence of live records.
//
// Transcript lines carry five whitespace-separated fields: name, ttl, class,
// type and content, with content taking the token remainder (SOA and TXT
// content embeds whitespace). Comment lines start with ';'.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates and returns a new Parser instance.
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// Result holds the records parsed from one transcript.
type Result struct {
	Records  []domain.Record
	Warnings []domain.ParseWarning // malformed lines dropped
}

// Parse reads a transcript from the provided reader and returns the parsed
// records in transcript order. Multiple A lines under one name merge into a
// single record whose Content holds every value; every other type yields one
// record per line. A malformed line is skipped and counted, never fatal.
func (p *Parser) Parse(r io.Reader) (*Result, error) {
	scanner := bufio.NewScanner(r)
	// TXT payloads can get long; default 64K token limit is not enough.
	buf := make([]byte, 256*1024)
	scanner.Buffer(buf, 256*1024)

	res := &Result{}
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, ";") {
			continue
		}

		// Normalize tabs and drop quoting artifacts from quoted content.
		line = strings.ReplaceAll(line, "\t", " ")
		line = strings.ReplaceAll(line, "\"", "")

		head, content, ok := splitLine(line)
		if !ok {
			p.logger.Warn("skipping malformed transcript line", "line", trimmed)
			res.Warnings = append(res.Warnings, domain.ParseWarning{Line: trimmed, Reason: "expected 5 fields"})
			continue
		}

		ttl, err := strconv.ParseUint(head[1], 10, 32)
		if err != nil {
			p.logger.Warn("skipping transcript line with unparsable ttl", "line", trimmed, "ttl", head[1])
			res.Warnings = append(res.Warnings, domain.ParseWarning{Line: trimmed, Reason: "unparsable ttl"})
			continue
		}

		name := strings.TrimSuffix(head[0], ".")
		content = strings.TrimSuffix(content, ".")
		rtype := domain.RecordType(head[3])

		if rtype == domain.TypeA {
			if prev := lastA(res.Records, name); prev != nil {
				prev.Content = append(prev.Content, content)
				prev.OldContent = append(prev.OldContent, content)
				continue
			}
		}

		res.Records = append(res.Records, domain.Record{
			Name:       name,
			TTL:        uint32(ttl),
			Class:      head[2],
			Type:       rtype,
			Content:    []string{content},
			Ensure:     domain.EnsurePresent,
			OldType:    rtype,
			OldContent: []string{content},
		})
	}

	return res, scanner.Err()
}

// splitLine tokenizes the first four fields positionally and takes the raw
// remainder of the line as content, so whitespace runs inside content (TXT and
// SOA values) survive intact.
func splitLine(line string) ([4]string, string, bool) {
	var head [4]string
	rest := line
	for i := 0; i < 4; i++ {
		rest = strings.TrimLeft(rest, " ")
		sp := strings.IndexByte(rest, ' ')
		if sp <= 0 {
			return head, "", false
		}
		head[i] = rest[:sp]
		rest = rest[sp+1:]
	}
	content := strings.Trim(rest, " ")
	if content == "" {
		return head, "", false
	}
	return head, content, true
}

// lastA finds the A record already parsed under name, if any.
func lastA(records []domain.Record, name string) *domain.Record {
	for i := range records {
		if records[i].Name == name && records[i].Type == domain.TypeA {
			return &records[i]
		}
	}
	return nil
}
