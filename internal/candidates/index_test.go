package candidates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildIndexPositions(t *testing.T) {
	c := smallCorpus()
	idx := BuildIndex(All(c))

	assert.Equal(t, []string{"apple", "ample", "angle"}, idx.At(0, 'a').Words())
	assert.Equal(t, []string{"crane", "trace"}, idx.At(2, 'a').Words())
	assert.Equal(t, []string{"robot"}, idx.At(4, 't').Words())
	assert.Equal(t, 3, idx.Count(0, 'a'))
	assert.Equal(t, 0, idx.Count(0, 'z'))
}

func TestBuildIndexContains(t *testing.T) {
	c := smallCorpus()
	idx := BuildIndex(All(c))

	assert.Equal(t, []string{"apple", "ample"}, idx.Containing('p').Words())
	assert.Equal(t, []string{"crane", "trace", "robot"}, idx.Containing('r').Words())
}

func TestIndexIsTotalOverAlphabet(t *testing.T) {
	c := smallCorpus()
	idx := BuildIndex(FromWords(c, []string{"robot"}))

	for ch := byte('a'); ch <= 'z'; ch++ {
		for p := 0; p < 5; p++ {
			s := idx.At(p, ch)
			assert.NotNil(t, s.Corpus(), "missing entry for %q at %d", ch, p)
		}
		assert.NotNil(t, idx.Containing(ch).Corpus(), "missing contains entry for %q", ch)
	}
	assert.True(t, idx.Containing('z').IsEmpty())
}

func TestIndexOnlyReflectsSource(t *testing.T) {
	c := smallCorpus()
	source := FromWords(c, []string{"crane"})
	idx := BuildIndex(source)

	// trace also has 'a' at position 2 but is not in the source set
	assert.Equal(t, []string{"crane"}, idx.At(2, 'a').Words())
	assert.Equal(t, source.Words(), idx.Source().Words())
}

func TestIndexOutOfRangeLookups(t *testing.T) {
	idx := BuildIndex(All(smallCorpus()))

	assert.True(t, idx.At(-1, 'a').IsEmpty())
	assert.True(t, idx.At(5, 'a').IsEmpty())
	assert.True(t, idx.At(0, 'A').IsEmpty())
	assert.True(t, idx.Containing('!').IsEmpty())
	assert.Equal(t, 0, idx.Count(9, 'a'))
}
