// Package hex implements the Hex board, game state, and the edge-aware
// disjoint-set used to detect a connected path between a color's two
// board edges.
package hex

// DisjointSet is a union-find structure over Cell keys, with union by
// rank and grandparent path compression. A subset of keys can be marked
// "ignored": they still participate in Find/Join (so Connected works on
// them), but they are never recorded as members of a group, since they
// represent virtual anchors rather than real board cells.
type DisjointSet struct {
	parent  map[Cell]Cell
	rank    map[Cell]int
	groups  map[Cell][]Cell
	ignored map[Cell]bool
}

// NewDisjointSet returns an empty disjoint-set.
func NewDisjointSet() *DisjointSet {
	return &DisjointSet{
		parent:  make(map[Cell]Cell),
		rank:    make(map[Cell]int),
		groups:  make(map[Cell][]Cell),
		ignored: make(map[Cell]bool),
	}
}

// SetIgnored marks the given keys as sentinels: Find/Join still work on
// them, but their group's member list never includes them.
func (d *DisjointSet) SetIgnored(keys ...Cell) {
	for _, k := range keys {
		d.ignored[k] = true
	}
}

// Find returns the representative of x's group, lazily inserting x as
// its own singleton group if it hasn't been seen before. Path
// compression jumps each node directly to its grandparent on the way up.
func (d *DisjointSet) Find(x Cell) Cell {
	if _, ok := d.parent[x]; !ok {
		d.parent[x] = x
		d.rank[x] = 0
		if d.ignored[x] {
			d.groups[x] = nil
		} else {
			d.groups[x] = []Cell{x}
		}
	}

	parentX := d.parent[x]
	if x == parentX {
		return x
	}

	grandparentX := d.parent[parentX]
	if grandparentX == parentX {
		return parentX
	}

	d.parent[x] = grandparentX
	return d.Find(grandparentX)
}

// Join unions the groups containing x and y. It returns false if they
// were already in the same group. The smaller-rank root attaches to the
// larger; a tie bumps the surviving root's rank. The absorbed group's
// members are appended to the surviving group and its own entry removed.
func (d *DisjointSet) Join(x, y Cell) bool {
	groupX := d.Find(x)
	groupY := d.Find(y)

	if groupX == groupY {
		return false
	}

	switch {
	case d.rank[groupX] < d.rank[groupY]:
		d.parent[groupX] = groupY
		d.groups[groupY] = append(d.groups[groupY], d.groups[groupX]...)
		delete(d.groups, groupX)
	case d.rank[groupX] > d.rank[groupY]:
		d.parent[groupY] = groupX
		d.groups[groupX] = append(d.groups[groupX], d.groups[groupY]...)
		delete(d.groups, groupY)
	default:
		d.parent[groupX] = groupY
		d.rank[groupY]++
		d.groups[groupY] = append(d.groups[groupY], d.groups[groupX]...)
		delete(d.groups, groupX)
	}

	return true
}

// Connected reports whether x and y belong to the same group.
func (d *DisjointSet) Connected(x, y Cell) bool {
	return d.Find(x) == d.Find(y)
}

// Groups returns the member lists keyed by group representative. Ignored
// keys never appear as members, though they may still be a map key with
// a nil/empty member list if nothing has joined them yet.
func (d *DisjointSet) Groups() map[Cell][]Cell {
	return d.groups
}

// Clone returns a deep copy sharing no state with the receiver, used by
// GameState.Clone so that search-tree selection and rollout can mutate a
// position without aliasing the tree's root state.
func (d *DisjointSet) Clone() *DisjointSet {
	clone := &DisjointSet{
		parent:  make(map[Cell]Cell, len(d.parent)),
		rank:    make(map[Cell]int, len(d.rank)),
		groups:  make(map[Cell][]Cell, len(d.groups)),
		ignored: make(map[Cell]bool, len(d.ignored)),
	}
	for k, v := range d.parent {
		clone.parent[k] = v
	}
	for k, v := range d.rank {
		clone.rank[k] = v
	}
	for k, v := range d.groups {
		members := make([]Cell, len(v))
		copy(members, v)
		clone.groups[k] = members
	}
	for k, v := range d.ignored {
		clone.ignored[k] = v
	}
	return clone
}
