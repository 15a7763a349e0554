// Package builtins lists the EVM instructions the assembly dialect exposes.
//
// The parser consults this table to tell a built-in instruction ("add",
// "mstore") from a user identifier: `add(1, 2)` becomes a functional
// instruction, a bare `add` an instruction, while `f(1, 2)` is a user
// function call.
package builtins

import (
	"fmt"
	"sort"
	"strings"
)

// Instruction describes one opcode as seen by the optimiser.
type Instruction struct {
	Name string
	Args int // values popped
	Rets int // values pushed
	// SideEffects marks instructions that write state, memory or storage,
	// or alter control flow.
	SideEffects bool
}

var table = map[string]Instruction{}

func def(name string, args, rets int, effects bool) {
	table[name] = Instruction{Name: name, Args: args, Rets: rets, SideEffects: effects}
}

func init() {
	// арифметика и сравнения
	for _, name := range []string{"add", "sub", "mul", "div", "sdiv", "mod", "smod", "exp", "signextend",
		"lt", "gt", "slt", "sgt", "eq", "and", "or", "xor", "byte", "shl", "shr", "sar", "keccak256", "sha3"} {
		def(name, 2, 1, false)
	}
	for _, name := range []string{"iszero", "not", "balance", "calldataload", "extcodesize", "extcodehash",
		"blockhash", "mload", "sload"} {
		def(name, 1, 1, false)
	}
	def("addmod", 3, 1, false)
	def("mulmod", 3, 1, false)

	// окружение
	for _, name := range []string{"address", "origin", "caller", "callvalue", "calldatasize", "codesize",
		"gasprice", "returndatasize", "coinbase", "timestamp", "number", "difficulty", "gaslimit",
		"chainid", "selfbalance", "pc", "msize", "gas"} {
		def(name, 0, 1, false)
	}

	// память, хранилище, управление
	def("pop", 1, 0, false)
	def("mstore", 2, 0, true)
	def("mstore8", 2, 0, true)
	def("sstore", 2, 0, true)
	def("calldatacopy", 3, 0, true)
	def("codecopy", 3, 0, true)
	def("returndatacopy", 3, 0, true)
	def("extcodecopy", 4, 0, true)
	def("jump", 1, 0, true)
	def("jumpi", 2, 0, true)
	def("jumpdest", 0, 0, true)
	def("stop", 0, 0, true)
	def("invalid", 0, 0, true)
	def("return", 2, 0, true)
	def("revert", 2, 0, true)
	def("selfdestruct", 1, 0, true)
	def("create", 3, 1, true)
	def("create2", 4, 1, true)
	def("call", 7, 1, true)
	def("callcode", 7, 1, true)
	def("delegatecall", 6, 1, true)
	def("staticcall", 6, 1, true)
	for i := 0; i <= 4; i++ {
		def(fmt.Sprintf("log%d", i), 2+i, 0, true)
	}
	for i := 1; i <= 16; i++ {
		def(fmt.Sprintf("dup%d", i), i, i+1, false)
		def(fmt.Sprintf("swap%d", i), i+1, i+1, false)
	}
}

// Lookup returns the instruction named name. Names are case-insensitive.
func Lookup(name string) (Instruction, bool) {
	ins, ok := table[strings.ToLower(name)]
	return ins, ok
}

// IsInstruction reports whether name is a built-in instruction.
func IsInstruction(name string) bool {
	_, ok := Lookup(name)
	return ok
}

// Names returns every instruction name in sorted order.
func Names() []string {
	out := make([]string, 0, len(table))
	for name := range table {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
