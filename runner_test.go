package hillclimb

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},
		{
			comment: `/*
want=31

Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
*/`,
			want: sample{
				want: "31",
				input: `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`,
			},
		},
		{
			comment: `// want=29`,
			want: sample{
				want: "29",
			},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("parseSample(%q) = %v, want %v", tt.comment, got, tt.want)
		}
	}
}

func TestParseSampleNoWant(t *testing.T) {
	if got, ok := parseSample("// heightmap returns the parsed input."); ok {
		t.Errorf("parseSample = %v, want none", got)
	}
}

const testSource = `package main

/*
want=31

Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
*/
func (s solver) D12p1() any { return nil }

// want=29
func (s solver) D12p2() any { return nil }

// helper has no sample.
func helper() {}
`

func TestExtractSamples(t *testing.T) {
	got := extractSamples([]byte(testSource))
	in := "Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi\n"
	want := map[string]sample{
		"D12p1": {input: in, want: "31"},
		"D12p2": {input: in, want: "29"},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(sample{})); diff != "" {
		t.Errorf("extractSamples mismatch (-want +got):\n%s", diff)
	}
}

type testSolver struct {
	*Puzzle
}

// want=31
func (s testSolver) D12p1() any {
	d, ok, err := ClimbToGoal(s.Lines())
	if err != nil || !ok {
		return err
	}
	return d
}

func (s testSolver) D12p2() any {
	d, _, _ := DescendToLowest(s.Lines())
	return d
}

func (s testSolver) NotAPart() any { return nil }

func TestExtractMethods(t *testing.T) {
	days := extractMethods(&testSolver{})
	if len(days) != 1 {
		t.Fatalf("got %d days, want 1", len(days))
	}
	d := days[12]
	var names []string
	for _, p := range d.parts {
		names = append(names, p.Name)
	}
	if diff := cmp.Diff([]string{"D12p1", "D12p2"}, names); diff != "" {
		t.Errorf("parts mismatch (-want +got):\n%s", diff)
	}
}

func TestRunDaySamples(t *testing.T) {
	in := "Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi\n"
	samples := map[string]sample{
		"D12p1": {input: in, want: "31"},
		"D12p2": {input: in, want: "29"},
	}
	flagOnlySample = true
	defer func() { flagOnlySample = false }()

	slvr := &testSolver{}
	days := extractMethods(slvr)
	var buf bytes.Buffer
	if !runDay(&buf, slvr, 2022, days[12], samples) {
		t.Fatalf("runDay failed:\n%s", buf.String())
	}
	if got := strings.Count(buf.String(), "✅"); got != 2 {
		t.Errorf("got %d passing samples, want 2:\n%s", got, buf.String())
	}

	samples["D12p2"] = sample{input: in, want: "30"}
	buf.Reset()
	if runDay(&buf, slvr, 2022, days[12], samples) {
		t.Errorf("runDay with wrong sample answer passed:\n%s", buf.String())
	}
}

func TestPuzzleLines(t *testing.T) {
	p := &Puzzle{
		SampleMode: true,
		solver:     partSolver{Name: "D1p1"},
		samples: map[string]sample{
			"D1p1": {input: "ab\r\ncd\n"},
		},
	}
	if diff := cmp.Diff([]string{"ab", "cd"}, p.Lines()); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
	g := p.Grid()
	if got, want := g.Size(), (Pt{2, 2}); got != want {
		t.Errorf("Grid().Size() = %v, want %v", got, want)
	}
	if got := g.At(Pt{1, 1}); got != 'd' {
		t.Errorf("Grid().At(1,1) = %q, want 'd'", got)
	}
}

func TestOr(t *testing.T) {
	if got := Or("", "a", "b"); got != "a" {
		t.Errorf("Or = %q, want %q", got, "a")
	}
	if got := Or(0, 0); got != 0 {
		t.Errorf("Or = %d, want 0", got)
	}
}
