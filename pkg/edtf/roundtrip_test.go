package edtf

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func testRoundTrip(t *testing.T, input string) {
	t.Helper()
	v, err := Parse(input)
	if err != nil {
		t.Errorf("Parse(%q): %v", input, err)
		return
	}
	if got := v.String(); got != input {
		t.Errorf("Parse(%q).String() = %q", input, got)
	}
}

func TestLosslessRoundTrip(t *testing.T) {
	inputs := []string{
		// dates and certainty
		"2019-08-17",
		"2019-08",
		"2019",
		"2019-08-17?",
		"2019-08?",
		"2019?",
		"2019-08-17~",
		"2019-08%",
		"2019%",
		// low and negative years
		"0043-08",
		"-0043-08",
		"0000",
		// timezones
		"2019-08-17T23:59:30",
		"2019-08-17T23:59:30Z",
		"2019-08-17T01:56:00+04:30",
		"2019-08-17T23:59:30+00",
		"2019-08-17T23:59:30+04",
		"2019-08-17T23:59:30-04",
		"2019-08-17T23:59:30+00:00",
		"2019-08-17T23:59:30+00:05",
		"2019-08-17T23:59:30+23:59",
		"2019-08-17T23:59:30-10:00",
		"2019-08-17T23:59:30-10:19",
		// leap second
		"2019-08-17T23:59:60Z",
		// masks
		"201X",
		"20XX",
		"2019-XX",
		"2019-XX-XX",
		"2019-07-XX",
		"201X?",
		"2019-XX~",
		// seasons
		"2019-21",
		"2019-24%",
		// intervals
		"1964/2008",
		"2004-06/2006-08",
		"2004-02-01/2005-02-08",
		"2004-02-01/2005",
		"2005/2006-02",
		"2019/..",
		"2019/",
		"../2019",
		"/2019",
		"1984~/2004-06",
		"1984/2004-06~",
		"1984?/2004%",
		// scientific years
		"Y170000002",
		"Y-170000002",
		"Y17E7",
		"Y-17E7",
		"Y17E7S3",
		"1950S2",
		"-1950S2",
	}
	for _, input := range inputs {
		testRoundTrip(t, input)
	}
}

// The YAML corpus groups canonical strings by feature; every entry must
// survive a parse/format round trip unchanged.
type roundTripCorpus struct {
	Groups map[string][]string `yaml:",inline"`
}

func TestRoundTripCorpus(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "roundtrip.yaml"))
	if err != nil {
		t.Fatalf("failed to load corpus: %v", err)
	}
	var corpus roundTripCorpus
	if err := yaml.Unmarshal(data, &corpus); err != nil {
		t.Fatalf("failed to parse corpus: %v", err)
	}
	if len(corpus.Groups) == 0 {
		t.Fatal("corpus is empty")
	}
	for group, inputs := range corpus.Groups {
		t.Run(group, func(t *testing.T) {
			if len(inputs) == 0 {
				t.Fatalf("group %s is empty", group)
			}
			for _, input := range inputs {
				testRoundTrip(t, input)
			}
		})
	}
}

// FuzzParse checks that anything that parses formats back to text that
// parses to the same value.
// Run with: go test -fuzz=FuzzParse -fuzztime=30s ./pkg/edtf/...
func FuzzParse(f *testing.F) {
	seeds := []string{
		"2019-08-17",
		"201X",
		"2019-XX-XX",
		"2019-07-09%",
		"-0043-08",
		"2019-08-17T23:59:60Z",
		"2019-08-17T01:56:00+04:30",
		"1964/2008",
		"2019/..",
		"/2019",
		"Y170000002",
		"Y17E7S3",
		"1950S2",
		"2019-21",
		"0000-02-29",
		"-999-07-05",
		"2019-XX-09",
		"Y17E200",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		v, err := Parse(input)
		if err != nil {
			return
		}
		text := v.String()
		again, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q) ok but reparse of %q failed: %v", input, text, err)
		}
		if again != v {
			t.Fatalf("Parse(%q) = %+v, reparse of %q = %+v", input, v, text, again)
		}
		if again.String() != text {
			t.Fatalf("format not stable: %q then %q", text, again.String())
		}
	})
}
