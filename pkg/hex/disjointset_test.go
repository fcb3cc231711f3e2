package hex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisjointSetJoinAndConnected(t *testing.T) {
	d := NewDisjointSet()
	a, b, c := Cell{0, 0}, Cell{0, 1}, Cell{1, 1}

	assert.False(t, d.Connected(a, b))

	assert.True(t, d.Join(a, b))
	assert.True(t, d.Connected(a, b))
	assert.False(t, d.Connected(a, c))

	assert.True(t, d.Join(b, c))
	assert.True(t, d.Connected(a, c))
}

func TestDisjointSetJoinSameGroupReturnsFalse(t *testing.T) {
	d := NewDisjointSet()
	a, b := Cell{0, 0}, Cell{0, 1}
	d.Join(a, b)
	assert.False(t, d.Join(a, b))
}

func TestDisjointSetIgnoredNeverAppearsInGroupMembers(t *testing.T) {
	d := NewDisjointSet()
	sentinel := Cell{Row: -1, Col: -1}
	d.SetIgnored(sentinel)

	real := Cell{0, 0}
	d.Join(sentinel, real)

	root := d.Find(real)
	members := d.Groups()[root]
	assert.Contains(t, members, real)
	assert.NotContains(t, members, sentinel)
}

func TestDisjointSetConnectedThroughSentinel(t *testing.T) {
	d := NewDisjointSet()
	s1, s2 := Cell{Row: -1, Col: -1}, Cell{Row: -2, Col: -2}
	d.SetIgnored(s1, s2)

	a, b := Cell{0, 0}, Cell{1, 0}
	d.Join(s1, a)
	d.Join(a, b)
	d.Join(b, s2)

	assert.True(t, d.Connected(s1, s2))
}

func TestDisjointSetCloneIsIndependent(t *testing.T) {
	d := NewDisjointSet()
	a, b := Cell{0, 0}, Cell{0, 1}
	d.Join(a, b)

	clone := d.Clone()
	c := Cell{1, 1}
	clone.Join(b, c)

	assert.True(t, clone.Connected(a, c))
	assert.False(t, d.Connected(a, c))
}
