package candidates

import (
	"testing"

	"github.com/aayushbajaj/wordle-assist/internal/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallCorpus() *corpus.Corpus {
	return corpus.FromWords([]string{"apple", "ample", "angle", "crane", "trace", "robot"})
}

func TestAllAndEmpty(t *testing.T) {
	c := smallCorpus()

	assert.Equal(t, c.Len(), All(c).Count())
	assert.Equal(t, c.AllWords(), All(c).Words())
	assert.Equal(t, 0, Empty(c).Count())
	assert.True(t, Empty(c).IsEmpty())
}

func TestFromWordsIgnoresUnknown(t *testing.T) {
	c := smallCorpus()
	s := FromWords(c, []string{"robot", "zzzzz", "apple"})

	// corpus order, not argument order
	assert.Equal(t, []string{"apple", "robot"}, s.Words())
}

func TestEnsureThenRemoveLetter(t *testing.T) {
	c := smallCorpus()
	s := FromWords(c, []string{"apple", "ample", "angle"})

	withP := s.EnsureLetter('p')
	assert.Equal(t, []string{"apple", "ample"}, withP.Words())

	withoutM := withP.RemoveLetter('m')
	assert.Equal(t, []string{"apple"}, withoutM.Words())
}

func TestOperationsDoNotMutateReceiver(t *testing.T) {
	c := smallCorpus()
	s := All(c)
	before := s.Words()

	_ = s.EnsureLetter('p')
	_ = s.RemoveLetter('a')
	_ = s.Intersect(FromWords(c, []string{"robot"}))
	_ = s.Subtract(FromWords(c, []string{"robot"}))
	_ = s.Whittle('r')

	assert.Equal(t, before, s.Words())
}

func TestIntersectWithSelfIsIdentity(t *testing.T) {
	c := smallCorpus()
	s := FromWords(c, []string{"apple", "crane", "robot"})

	assert.Equal(t, s.Words(), s.Intersect(s).Words())
}

func TestSubtractEmptyIsIdentity(t *testing.T) {
	c := smallCorpus()
	s := FromWords(c, []string{"apple", "crane", "robot"})

	assert.Equal(t, s.Words(), s.Subtract(Empty(c)).Words())
}

func TestIntersectAndSubtract(t *testing.T) {
	c := smallCorpus()
	s := FromWords(c, []string{"apple", "crane", "robot"})
	other := FromWords(c, []string{"crane", "trace"})

	assert.Equal(t, []string{"crane"}, s.Intersect(other).Words())
	assert.Equal(t, []string{"apple", "robot"}, s.Subtract(other).Words())
}

func TestWhittleMatchesEnsureLetter(t *testing.T) {
	s := All(smallCorpus())

	for _, ch := range []byte("aepqz") {
		assert.Equal(t, s.EnsureLetter(ch).Words(), s.Whittle(ch).Words(), "letter %q", ch)
	}
}

func TestOperationsOnEmptySet(t *testing.T) {
	c := smallCorpus()
	e := Empty(c)

	assert.True(t, e.EnsureLetter('a').IsEmpty())
	assert.True(t, e.RemoveLetter('a').IsEmpty())
	assert.True(t, e.Intersect(All(c)).IsEmpty())
	assert.True(t, e.Subtract(All(c)).IsEmpty())
	assert.Empty(t, e.Words())

	_, ok := e.First()
	assert.False(t, ok)
}

func TestZeroSetIsEmpty(t *testing.T) {
	var s Set
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.Words())
	assert.False(t, s.Contains("apple"))
}

func TestContainsAndFirst(t *testing.T) {
	c := smallCorpus()
	s := FromWords(c, []string{"crane", "robot"})

	assert.True(t, s.Contains("crane"))
	assert.False(t, s.Contains("apple"))
	assert.False(t, s.Contains("zzzzz"))

	first, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, "crane", first)
}

func TestSnapshotsBranchIndependently(t *testing.T) {
	c := smallCorpus()
	root := All(c)

	left := root.EnsureLetter('r')
	right := root.RemoveLetter('r')

	assert.Equal(t, []string{"crane", "trace", "robot"}, left.Words())
	assert.Equal(t, []string{"apple", "ample", "angle"}, right.Words())
	assert.Equal(t, c.Len(), root.Count())
}
