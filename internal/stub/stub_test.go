package stub

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pacer/stubgen/internal/stub/language"
	"github.com/pacer/stubgen/internal/stub/testutil"
)

func TestGenerate_Python(t *testing.T) {
	out, err := Generate([]byte("read n:int\nwrite done\n"), "python")
	testutil.AssertNoError(t, err)

	for _, want := range []string{"n = int(input())", `print("done")`} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in:\n%s", want, out)
		}
	}
}

func TestGenerate_ByAlias(t *testing.T) {
	out, err := Generate([]byte("read n:int\n"), "node")
	testutil.AssertNoError(t, err)

	if !strings.Contains(out, "const n = parseInt(readline());") {
		t.Errorf("Expected javascript output via the node alias, got:\n%s", out)
	}
}

func TestGenerate_UnknownLanguage(t *testing.T) {
	_, err := Generate([]byte("read n:int\n"), "cobol")
	testutil.AssertErrorContains(t, err, "unsupported language")
}

func TestGenerate_ParseErrorPropagates(t *testing.T) {
	_, err := Generate([]byte("read X:weird\n"), "python")
	testutil.AssertErrorContains(t, err, "X:weird")
}

func TestCheck_Valid(t *testing.T) {
	parsed, err := Check([]byte("read n:int\nloop n read x:int\n"))
	testutil.AssertNoError(t, err)

	if len(parsed.Commands) != 2 {
		t.Errorf("Expected 2 commands, got %d", len(parsed.Commands))
	}
}

func TestCheck_Invalid(t *testing.T) {
	parsed, err := Check([]byte("bogus\n"))
	testutil.AssertErrorContains(t, err, "bogus")

	if parsed != nil {
		t.Error("Expected no stub for an invalid definition")
	}
}

func TestGenerateFiles_MatchesSequentialOutput(t *testing.T) {
	sources := make(map[string][]byte)
	for i := 0; i < 25; i++ {
		name := fmt.Sprintf("stub%02d.txt", i)
		sources[name] = fmt.Appendf(nil, "read var%d:int\nloop var%d read x:int\nwrite done %d\n", i, i, i)
	}

	outputs, errs := GenerateFiles(sources, "python")
	if len(errs) != 0 {
		t.Fatalf("Expected no errors, got: %v", errs)
	}

	if len(outputs) != len(sources) {
		t.Fatalf("Expected %d outputs, got %d", len(sources), len(outputs))
	}

	for name, source := range sources {
		want, err := Generate(source, "python")
		testutil.AssertNoError(t, err)

		if outputs[name] != want {
			t.Errorf("Parallel output for %s differs from sequential output", name)
		}
	}
}

func TestGenerateFiles_ReportsPerFileErrors(t *testing.T) {
	sources := map[string][]byte{
		"good.txt": []byte("read n:int\n"),
		"bad.txt":  []byte("read X:weird\n"),
	}

	outputs, errs := GenerateFiles(sources, "python")

	if len(errs) != 1 {
		t.Fatalf("Expected exactly one error, got: %v", errs)
	}
	testutil.AssertErrorContains(t, errs[0], "bad.txt")

	if _, ok := outputs["good.txt"]; !ok {
		t.Error("Expected good.txt to generate despite bad.txt failing")
	}

	if _, ok := outputs["bad.txt"]; ok {
		t.Error("Expected no output for the failed definition")
	}
}

func TestGenerateFiles_UnknownLanguage(t *testing.T) {
	outputs, errs := GenerateFiles(map[string][]byte{"a.txt": []byte("read n:int\n")}, "cobol")

	if outputs == nil {
		t.Fatal("Expected a non-nil map even on failure")
	}

	if len(errs) != 1 {
		t.Fatalf("Expected one error, got: %v", errs)
	}
	testutil.AssertErrorContains(t, errs[0], "unsupported language")
}

func TestGenerateFiles_Empty(t *testing.T) {
	outputs, errs := GenerateFiles(nil, "python")

	if outputs == nil {
		t.Fatal("Expected a non-nil map for empty input")
	}

	if len(outputs) != 0 || len(errs) != 0 {
		t.Errorf("Expected nothing generated, got %d outputs and %d errors", len(outputs), len(errs))
	}
}

func TestOutputFileName(t *testing.T) {
	python, err := language.Find("python")
	testutil.AssertNoError(t, err)

	tests := []struct {
		input string
		want  string
	}{
		{"stub.txt", "stub.py"},
		{"dir/fizzbuzz.stub", "dir/fizzbuzz.py"},
		{"noext", "noext.py"},
	}

	for _, tt := range tests {
		if got := OutputFileName(tt.input, python); got != tt.want {
			t.Errorf("OutputFileName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
