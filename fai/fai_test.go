package fai

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadIndex(t *testing.T) {
	file := filepath.Join(t.TempDir(), "ref.fa.fai")
	text := "1\t249250621\t52\t60\t61\n" +
		"2\t243199373\t253404903\t60\t61\n" +
		"MT\t16569\t3099922541\t70\t71\n"
	if err := os.WriteFile(file, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}

	idx, err := ReadIndex(file)
	if err != nil {
		t.Fatal(err)
	}
	names := idx.Names()
	if len(names) != 3 || names[0] != "1" || names[2] != "MT" {
		t.Error("problem with index names", names)
	}
	if idx.String() != text {
		t.Errorf("problem writing index\n%s", idx.String())
	}
	ci := idx.ChromInfo()
	if len(ci) != 3 || ci[2].Name != "MT" || ci[2].Order != 2 || ci[1].Size != 243199373 {
		t.Error("problem converting to chromInfo", ci)
	}
}

func TestReadMalformedIndex(t *testing.T) {
	file := filepath.Join(t.TempDir(), "ref.fa.fai")
	if err := os.WriteFile(file, []byte("1\t249250621\t52\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadIndex(file); err == nil {
		t.Error("expected error for malformed index")
	}
	if _, err := ReadIndex(file + ".absent"); err == nil {
		t.Error("expected error for missing index")
	}
}
