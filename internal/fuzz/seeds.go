package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxFuzzInput = 64 << 10 // 64 KiB
	maxSeedBytes = 64 << 10 // ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
}

var inlineSeeds = []string{
	"",
	"{ }",
	"{ { let x := 1 } { let x := 2 } }",
	"function f(a) -> r { r := add(a, 1) }",
	"function f(a, b) -> r, s { r, s := g(a) } function g(x) -> p, q { }",
	"for { let i := 0 } lt(i, 3) { i := add(i, 1) } { let i2 := i }",
	"switch x case 0 { } case 1:u8 { pop } default { }",
	"l: =: x jump(l)",
	`let s := "a\"b" let h := 0xff:u256`,
	"/* comment */ { // line\n let a }",
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.asm файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".asm" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		src = src[:maxSeedBytes]
	}
	return append([]byte(nil), src...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
