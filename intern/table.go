package intern

// Table assigns dense, first-seen-order indices to element and
// predicate symbol names. The two namespaces are independent: an
// element named "a" and a predicate named "a" receive unrelated
// indices.
//
// A Table is not safe for concurrent use; callers that need concurrent
// interning should guard it externally (the parser in this module is
// single-threaded, so none does).
type Table struct {
	elements    map[string]int
	elementList []string

	predicates    map[string]int
	predicateList []string
}

// New returns an empty Table.
func New() *Table {
	return &Table{
		elements:   make(map[string]int),
		predicates: make(map[string]int),
	}
}

// Element returns the dense index assigned to name, assigning the next
// available index on first sight.
func (t *Table) Element(name string) int {
	if idx, ok := t.elements[name]; ok {
		return idx
	}
	idx := len(t.elementList)
	t.elements[name] = idx
	t.elementList = append(t.elementList, name)

	return idx
}

// Predicate returns the dense index assigned to name, assigning the
// next available index on first sight.
func (t *Table) Predicate(name string) int {
	if idx, ok := t.predicates[name]; ok {
		return idx
	}
	idx := len(t.predicateList)
	t.predicates[name] = idx
	t.predicateList = append(t.predicateList, name)

	return idx
}

// ElementCount reports how many distinct element names have been
// interned so far; this is the universe size once a structure's
// elements are all interned through t.
func (t *Table) ElementCount() int { return len(t.elementList) }

// ElementName returns the name originally assigned to index idx, for
// diagnostics. Panics if idx is out of range.
func (t *Table) ElementName(idx int) string { return t.elementList[idx] }

// PredicateName returns the name originally assigned to index idx, for
// diagnostics. Panics if idx is out of range.
func (t *Table) PredicateName(idx int) string { return t.predicateList[idx] }
