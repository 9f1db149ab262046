// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"localign/internal/app"
	"localign/pkg/api"
)

const corpusFASTA = `>none unrelated
NNNNNNNN
>full exact copy, complete genome
TTACGTACGTTT
>half partial
GGACGTGG
>full2 second copy, complete genome
ACGTACGT
`

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestSearch_JSON(t *testing.T) {
	db := write(t, "db.fa", corpusFASTA)
	code, out, stderr := run(t, "search", "--query", "ACGTACGT", "--db", db)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, stderr)
	}
	var hits []api.HitV1
	if err := json.Unmarshal([]byte(out), &hits); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(hits) != 4 {
		t.Fatalf("want 4 hits, got %d", len(hits))
	}
	wantIDs := []string{"full", "full2", "half", "none"}
	for i, id := range wantIDs {
		if hits[i].ID != id || hits[i].Rank != i+1 {
			t.Fatalf("hit %d: want %s, got %+v", i, id, hits[i])
		}
	}
	if hits[0].Score != 8 || hits[0].Alignments[0] != (api.AlignmentV1{"ACGTACGT", "ACGTACGT"}) {
		t.Fatalf("unexpected best hit %+v", hits[0])
	}
	if hits[0].Description != "full exact copy, complete genome" {
		t.Fatalf("description should be the full header, got %q", hits[0].Description)
	}
	if hits[3].Score != 0 || hits[3].Alignments == nil || len(hits[3].Alignments) != 0 {
		t.Fatalf("zero-score hit should carry an empty alignment list: %+v", hits[3])
	}
}

func TestSearch_TopAndText(t *testing.T) {
	db := write(t, "db.fa", corpusFASTA)
	code, out, stderr := run(t, "search", "--query", "ACGTACGT", "--db", db, "-n", "2", "-o", "text")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, stderr)
	}
	want := "rank\tscore\tid\tn_alignments\tdescription\n" +
		"1\t8\tfull\t1\tfull exact copy, complete genome\n" +
		"2\t8\tfull2\t1\tfull2 second copy, complete genome\n"
	if out != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestSearch_PrettyBlocks(t *testing.T) {
	db := write(t, "db.fa", corpusFASTA)
	code, out, _ := run(t, "search", "--query", "ACGTACGT", "--db", db, "-n", "1", "-o", "text", "--pretty", "--no-header")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out, "# Query   1 ACGTACGT 8\n") || !strings.Contains(out, "# Target  3 ACGTACGT 10\n") {
		t.Fatalf("missing pretty block:\n%s", out)
	}
}

func TestSearch_JSONLAndCSVCorpus(t *testing.T) {
	db := write(t, "db.csv", "Description,Sequence\n\"a one, complete genome\",AAAA\nb two,CCCC\n")
	code, out, stderr := run(t, "search", "--query", "AAAA", "--db", db, "-o", "jsonl")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, stderr)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 JSONL lines, got %q", out)
	}
	var h api.HitV1
	if err := json.Unmarshal([]byte(lines[0]), &h); err != nil || h.ID != "a" || h.Score != 4 {
		t.Fatalf("first line: %v %+v", err, h)
	}
}

func TestParallelMatchesEqualSerial(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 40; i++ {
		fmt.Fprintf(&sb, ">r%d\n%s\n", i, strings.Repeat("ACGT", i%7)+strings.Repeat("TTGCA", i%5))
	}
	db := write(t, "par.fa", sb.String())

	runT := func(threads int) string {
		code, out, stderr := run(t, "search", "--query", "ACGTTGCA", "--db", db,
			"--threads", fmt.Sprint(threads), "--top", "0")
		if code != 0 {
			t.Fatalf("exit %d err %s", code, stderr)
		}
		return out
	}
	serial := runT(1)
	parallel := runT(4)
	if serial != parallel {
		t.Fatalf("parallel output differs from serial\nserial: %s\nparallel:%s", serial, parallel)
	}
}

func TestSearch_NoMatchExitCode(t *testing.T) {
	db := write(t, "db.fa", ">x\nCCCC\n")
	if code, _, _ := run(t, "search", "--query", "AAAA", "--db", db); code != 1 {
		t.Fatalf("want exit 1 without a positive hit, got %d", code)
	}
	if code, _, _ := run(t, "search", "--query", "AAAA", "--db", db, "--no-match-exit-code", "0"); code != 0 {
		t.Fatalf("want exit 0 with --no-match-exit-code 0, got %d", code)
	}
}

func TestSearch_UsageAndInputErrors(t *testing.T) {
	db := write(t, "db.fa", corpusFASTA)
	cases := [][]string{
		{"search", "--db", db},                                  // no query
		{"search", "--query", "A", "--db", db, "-o", "xml"},     // bad format
		{"search", "--query", "A", "--db", db, "--bogus"},       // unknown flag
		{"search", "--query", "A", "--db", db + ".missing"},     // unreadable corpus
		{"align", "ONLYONE"},                                    // arg count
		{"nope"},                                                // unknown command
	}
	for _, argv := range cases {
		code, _, stderr := run(t, argv...)
		if code != 2 {
			t.Errorf("%v: want exit 2, got %d (stderr %q)", argv, code, stderr)
		}
		if !strings.Contains(stderr, "error:") {
			t.Errorf("%v: stderr should explain the error, got %q", argv, stderr)
		}
	}
}

func TestSearch_OutFileAndVerbose(t *testing.T) {
	db := write(t, "db.fa", corpusFASTA)
	dst := filepath.Join(t.TempDir(), "hits.json")
	code, out, stderr := run(t, "search", "--query", "ACGTACGT", "--db", db, "--out", dst, "--verbose")
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, stderr)
	}
	if out != "" {
		t.Fatalf("stdout should be empty with --out, got %q", out)
	}
	b, err := os.ReadFile(dst)
	if err != nil || !strings.Contains(string(b), `"score": 8`) {
		t.Fatalf("out file: %v\n%s", err, b)
	}
	if !strings.Contains(stderr, "INFO: loaded 4 records") || !strings.Contains(stderr, "peak heap") {
		t.Fatalf("missing verbose lines:\n%s", stderr)
	}
}

func TestAlign_JSONAndText(t *testing.T) {
	code, out, _ := run(t, "align", "AAAA", "AAAA")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	var p api.PairV1
	if err := json.Unmarshal([]byte(out), &p); err != nil || p.Score != 4 || len(p.Windows) != 1 {
		t.Fatalf("pair: %v %+v", err, p)
	}

	code, out, _ = run(t, "align", "-o", "text", "AAA", "CCC")
	if code != 0 || out != "score\t0\n" {
		t.Fatalf("zero-score pair: exit %d out %q", code, out)
	}
}

func TestConvertAndScrub(t *testing.T) {
	dir := t.TempDir()
	csvIn := filepath.Join(dir, "in.csv")
	data := "Description,Sequence\n" +
		"\"v1 Virus, complete genome\",ACGT\n" +
		"v2 Virus partial,TTTT\n" +
		"v3 Virus complete sequence,ACGT\n" +
		"v4 Virus complete genome,\n"
	if err := os.WriteFile(csvIn, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	fa := filepath.Join(dir, "out.fasta")
	if code, _, stderr := run(t, "convert", "--in", csvIn, "--out", fa); code != 0 {
		t.Fatalf("convert exit %d: %s", code, stderr)
	}
	b, _ := os.ReadFile(fa)
	if !strings.HasPrefix(string(b), ">v1 Virus, complete genome\nACGT\n") {
		t.Fatalf("unexpected FASTA:\n%s", b)
	}

	scrubbed := filepath.Join(dir, "scrubbed.csv")
	code, _, stderr := run(t, "scrub", "--in", csvIn, "--out", scrubbed, "--dedup")
	if code != 0 {
		t.Fatalf("scrub exit %d: %s", code, stderr)
	}
	b, _ = os.ReadFile(scrubbed)
	if got := strings.Count(string(b), "\n"); got != 2 {
		t.Fatalf("want header + 1 record, got:\n%s", b)
	}
	if !strings.Contains(stderr, "kept 1 of 4 records (1 duplicate sequences dropped)") {
		t.Fatalf("unexpected summary %q", stderr)
	}
}

func TestVersion(t *testing.T) {
	code, out, _ := run(t, "version")
	code2, out2, _ := run(t, "--version")
	if code != 0 || code2 != 0 || !strings.HasPrefix(out, "localign version ") || out != out2 {
		t.Fatalf("version outputs differ: %q vs %q", out, out2)
	}
}

func TestHelp(t *testing.T) {
	code, out, _ := run(t, "--help")
	if code != 0 || !strings.Contains(out, "search") || !strings.Contains(out, "linear space") {
		t.Fatalf("help: exit %d\n%s", code, out)
	}
}
