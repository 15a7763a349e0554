// Package ast defines the closed node set of the assembly IR.
//
// Nodes form a tree: every node is owned by exactly one parent and the tree has
// no sharing. Statement is sealed, so the only way to branch on a node's variant
// is Visit.
package ast
