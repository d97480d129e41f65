package solver

import (
	"github.com/aayushbajaj/wordle-assist/internal/candidates"
	"github.com/aayushbajaj/wordle-assist/internal/game"
	"github.com/samber/lo"
)

// Eliminate narrows set using the feedback for one guess. The letter index is
// built from the set as it was before this guess.
//
// A NotFound letter only purges candidates when the same guess did not credit
// that letter elsewhere. Multiplicity is not tracked, so a candidate with an
// extra copy of a credited letter can survive.
func Eliminate(set candidates.Set, letters []game.Verdict) candidates.Set {
	index := candidates.BuildIndex(set)

	found := lo.SliceToMap(lo.Filter(letters, func(v game.Verdict, _ int) bool {
		return v.IsFound()
	}), func(v game.Verdict) (byte, struct{}) {
		return v.Letter, struct{}{}
	})

	return lo.Reduce(letters, func(acc candidates.Set, v game.Verdict, i int) candidates.Set {
		switch v.Kind {
		case game.Exact:
			return acc.Intersect(index.At(i, v.Letter))
		case game.Contains:
			return acc.Subtract(index.At(i, v.Letter)).EnsureLetter(v.Letter)
		default:
			if _, ok := found[v.Letter]; !ok {
				return acc.RemoveLetter(v.Letter)
			}
			return acc
		}
	}, set)
}

// Replay folds Eliminate over a game history, skipping hard-mode rejections.
func Replay(set candidates.Set, history []game.CheckData) candidates.Set {
	for _, data := range history {
		if data.Result == game.Invalid {
			continue
		}
		set = Eliminate(set, data.Letters)
	}
	return set
}

// ContainsAll narrows set to the candidates containing every letter of word by
// whittling over its sorted letters.
func ContainsAll(set candidates.Set, word string) candidates.Set {
	return lo.Reduce([]byte(Pattern(word)), func(acc candidates.Set, c byte, _ int) candidates.Set {
		return acc.Whittle(c)
	}, set)
}
