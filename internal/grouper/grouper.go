// =============================================================================
// Workout Tree Tagger - Group ID Assigner
// =============================================================================
//
// This module assigns a hierarchical group identifier to every directory in
// the input tree. Identifiers encode the directory's position in the tree:
//
//   input root          -> ""       (never appears in output tags)
//   first child         -> "1"
//   second child        -> "2"
//   first child of "1"  -> "1-1"
//   second child of "1" -> "1-2"
//
// Sequence numbers are 1-based and increase in the order directories are
// discovered by the traversal. The assigner requires a strict parent-before-
// child visit order; violating it is a programming error, not a runtime
// condition, and is reported as such.
//
// =============================================================================

package grouper

import (
	"fmt"
	"path/filepath"
	"strconv"
)

// =============================================================================
// ASSIGNER
// =============================================================================

// Assigner maps directory paths to hierarchical group identifiers.
// It is owned by a single traversal driver; there is no internal locking.
type Assigner struct {
	// root is the input root directory. Its identifier is always "".
	root string

	// ids maps an absolute directory path to its assigned identifier.
	// Entries are written once, the first time a directory is visited,
	// and never mutated afterward.
	ids map[string]string

	// nextChild maps a directory path to the sequence number its next
	// direct subdirectory will receive. Initialized to 1 when the
	// directory itself is assigned.
	nextChild map[string]int
}

// New creates an Assigner rooted at the given directory.
// The root is assigned the empty identifier immediately.
func New(root string) *Assigner {
	root = filepath.Clean(root)
	a := &Assigner{
		root:      root,
		ids:       make(map[string]string),
		nextChild: make(map[string]int),
	}
	a.ids[root] = ""
	a.nextChild[root] = 1
	return a
}

// Assign records an identifier for dir and returns it.
//
// PRECONDITION:
//
//	dir's parent must already have been assigned. A top-down traversal
//	(parents before children) guarantees this. Calling Assign out of
//	order returns an error; the walker treats that as fatal.
//
// Assigning the root, or a directory that already has an identifier,
// returns the existing identifier unchanged.
func (a *Assigner) Assign(dir string) (string, error) {
	dir = filepath.Clean(dir)

	if id, ok := a.ids[dir]; ok {
		return id, nil
	}

	parent := filepath.Dir(dir)
	parentID, ok := a.ids[parent]
	if !ok {
		return "", fmt.Errorf("group assignment for %s: parent %s was never visited", dir, parent)
	}

	seq := a.nextChild[parent]
	id := strconv.Itoa(seq)
	if parentID != "" {
		id = parentID + "-" + id
	}

	a.ids[dir] = id
	a.nextChild[parent] = seq + 1
	a.nextChild[dir] = 1

	return id, nil
}

// Lookup returns the identifier previously assigned to dir.
func (a *Assigner) Lookup(dir string) (string, bool) {
	id, ok := a.ids[filepath.Clean(dir)]
	return id, ok
}

// Count returns the number of directories assigned an identifier,
// excluding the root. This is the "groups" figure in the run summary.
func (a *Assigner) Count() int {
	return len(a.ids) - 1
}
