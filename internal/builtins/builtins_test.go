package builtins

import "testing"

func TestLookupKnownInstructions(t *testing.T) {
	cases := []struct {
		name    string
		args    int
		rets    int
		effects bool
	}{
		{"add", 2, 1, false},
		{"ADD", 2, 1, false},
		{"mstore", 2, 0, true},
		{"addmod", 3, 1, false},
		{"call", 7, 1, true},
		{"log3", 5, 0, true},
		{"dup2", 2, 3, false},
	}
	for _, tc := range cases {
		ins, ok := Lookup(tc.name)
		if !ok {
			t.Errorf("%s: not found", tc.name)
			continue
		}
		if ins.Args != tc.args || ins.Rets != tc.rets || ins.SideEffects != tc.effects {
			t.Errorf("%s: got %+v", tc.name, ins)
		}
	}
	if IsInstruction("f") || IsInstruction("x") {
		t.Errorf("user identifiers must not be instructions")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatalf("empty instruction table")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}
