package axfr

import (
	"strings"
	"testing"

	"github.com/poyrazK/zonesync/internal/core/domain"
)

func TestParser_Parse(t *testing.T) {
	transcript := "; <<>> DiG 9.18 <<>> axfr example.com +nostats\n" +
		";; global options: +cmd\n" +
		"example.com.\t300\tIN\tSOA\tns1.example.com. admin.example.com. 2023101001 3600 600 1209600 300\n" +
		"www.example.com.\t300\tIN\tA\t10.0.0.1\n" +
		"www.example.com.\t300\tIN\tA\t10.0.0.2\n" +
		"alias.example.com.\t600\tIN\tCNAME\twww.example.com.\n" +
		"note.example.com.\t300\tIN\tTXT\t\"hello world\"\n"

	parser := NewParser(nil)
	res, err := parser.Parse(strings.NewReader(transcript))
	if err != nil {
		t.Fatalf("Failed to parse transcript: %v", err)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("Expected no skipped lines, got %d", len(res.Warnings))
	}

	expected := []struct {
		name    string
		rtype   domain.RecordType
		content []string
		ttl     uint32
	}{
		{"example.com", domain.TypeSOA, []string{"ns1.example.com. admin.example.com. 2023101001 3600 600 1209600 300"}, 300},
		{"www.example.com", domain.TypeA, []string{"10.0.0.1", "10.0.0.2"}, 300},
		{"alias.example.com", domain.TypeCNAME, []string{"www.example.com"}, 600},
		{"note.example.com", domain.TypeTXT, []string{"hello world"}, 300},
	}

	if len(res.Records) != len(expected) {
		t.Fatalf("Expected %d records, got %d", len(expected), len(res.Records))
	}

	for i, exp := range expected {
		got := res.Records[i]
		if got.Name != exp.name {
			t.Errorf("Record %d: expected name %s, got %s", i, exp.name, got.Name)
		}
		if got.Type != exp.rtype {
			t.Errorf("Record %d: expected type %s, got %s", i, exp.rtype, got.Type)
		}
		if got.TTL != exp.ttl {
			t.Errorf("Record %d: expected TTL %d, got %d", i, exp.ttl, got.TTL)
		}
		if len(got.Content) != len(exp.content) {
			t.Fatalf("Record %d: expected %d content values, got %d", i, len(exp.content), len(got.Content))
		}
		for j, v := range exp.content {
			if got.Content[j] != v {
				t.Errorf("Record %d: expected content[%d] '%s', got '%s'", i, j, v, got.Content[j])
			}
		}
		if got.Ensure != domain.EnsurePresent {
			t.Errorf("Record %d: expected ensure present, got %s", i, got.Ensure)
		}
		if got.OldType != got.Type {
			t.Errorf("Record %d: expected OldType to mirror Type, got %s", i, got.OldType)
		}
		if len(got.OldContent) != len(got.Content) {
			t.Errorf("Record %d: expected OldContent to mirror Content", i)
		}
	}
}

func TestParser_EdgeCases(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       int // record count
		skipped    int
	}{
		{
			name:       "only comments and blanks",
			transcript: "; banner\n\n;; metadata\n   \n",
			want:       0,
		},
		{
			name:       "SOA at start and end like a real axfr",
			transcript: "z. 60 IN SOA a. b. 1 2 3 4 5\nw.z. 60 IN A 1.1.1.1\nz. 60 IN SOA a. b. 1 2 3 4 5\n",
			want:       3,
		},
		{
			name:       "malformed short line skipped",
			transcript: "broken.example.com. 300 IN\nok.example.com. 300 IN A 1.2.3.4\n",
			want:       1,
			skipped:    1,
		},
		{
			name:       "unparsable ttl skipped",
			transcript: "bad.example.com. soon IN A 1.2.3.4\n",
			want:       0,
			skipped:    1,
		},
		{
			name:       "TXT records under one name never merge",
			transcript: "t.z. 60 IN TXT \"v=spf1 -all\"\nt.z. 60 IN TXT \"second\"\n",
			want:       2,
		},
		{
			name:       "A merge only applies within one name",
			transcript: "a.z. 60 IN A 1.1.1.1\nb.z. 60 IN A 2.2.2.2\na.z. 60 IN A 3.3.3.3\n",
			want:       2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewParser(nil)
			res, err := parser.Parse(strings.NewReader(tt.transcript))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(res.Records) != tt.want {
				t.Errorf("Expected %d records, got %d: %+v", tt.want, len(res.Records), res.Records)
			}
			if len(res.Warnings) != tt.skipped {
				t.Errorf("Expected %d skipped lines, got %d", tt.skipped, len(res.Warnings))
			}
		})
	}
}

func TestParser_AMergePreservesOrder(t *testing.T) {
	transcript := "pool.z. 60 IN A 10.0.0.3\npool.z. 60 IN A 10.0.0.1\npool.z. 60 IN A 10.0.0.2\n"
	parser := NewParser(nil)
	res, err := parser.Parse(strings.NewReader(transcript))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(res.Records) != 1 {
		t.Fatalf("Expected 1 merged record, got %d", len(res.Records))
	}
	want := []string{"10.0.0.3", "10.0.0.1", "10.0.0.2"}
	got := res.Records[0].Content
	if len(got) != len(want) {
		t.Fatalf("Expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Value %d: expected %s, got %s (transcript order must be kept)", i, want[i], got[i])
		}
	}
}

func TestParser_ContentKeepsInnerWhitespace(t *testing.T) {
	// Content is the raw remainder of the line, not rejoined tokens: a TXT
	// value with consecutive spaces must round-trip exactly, or the planner
	// would replan it forever and delete rdata that does not exist.
	transcript := "note.example.com.\t300\tIN\tTXT\t\"a  b\"\n" +
		"spaced.example.com. 300 IN TXT \"one   two  three\"\n"

	parser := NewParser(nil)
	res, err := parser.Parse(strings.NewReader(transcript))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(res.Records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(res.Records))
	}
	if got := res.Records[0].Content[0]; got != "a  b" {
		t.Errorf("Content whitespace collapsed: got %q, want %q", got, "a  b")
	}
	if got := res.Records[1].Content[0]; got != "one   two  three" {
		t.Errorf("Content whitespace collapsed: got %q, want %q", got, "one   two  three")
	}
}

func TestParser_WarningCarriesLineAndReason(t *testing.T) {
	parser := NewParser(nil)
	res, err := parser.Parse(strings.NewReader("broken.example.com. 300 IN\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d", len(res.Warnings))
	}
	w := res.Warnings[0]
	if w.Line != "broken.example.com. 300 IN" {
		t.Errorf("Expected the offending line in the warning, got %q", w.Line)
	}
	if w.Reason == "" {
		t.Error("Expected a reason in the warning")
	}
	if w.Error() == "" {
		t.Error("Expected a formatted warning message")
	}
}

func TestParser_TrailingDotStripping(t *testing.T) {
	transcript := "alias.example.com. 600 IN CNAME www.example.com.\n"
	parser := NewParser(nil)
	res, err := parser.Parse(strings.NewReader(transcript))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	rec := res.Records[0]
	if strings.HasSuffix(rec.Name, ".") {
		t.Errorf("Name kept its trailing dot: %s", rec.Name)
	}
	if strings.HasSuffix(rec.Content[0], ".") {
		t.Errorf("Content kept its trailing dot: %s", rec.Content[0])
	}
}
