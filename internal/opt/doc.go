// Package opt holds the optimiser passes over the assembly IR.
//
// Disambiguator gives every declared identifier a name unique in the whole
// tree. InlinableFunctionFilter, run on a disambiguated tree, finds the
// functions whose body is a single pure return expression.
//
// Both passes are single-use values. Internal-consistency violations surface
// as *InternalError; ordinary negative answers are never errors.
package opt
