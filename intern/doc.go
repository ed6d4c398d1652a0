// Package intern provides a driver-owned symbol table that normalizes
// element and predicate names to dense 0..n-1 indices.
//
// This replaces the original source's class-level static symbol tables
// (a defect called out by the specification this module implements):
// a Table is a plain value owned by whichever driver constructs it
// (typically package parse), never a package-level global. The
// embedding core never sees names, only the indices a Table assigns.
package intern
