package stats

import "strconv"

// Summary describes the letters of a set of remaining candidates
type Summary struct {
	Words       int
	Letters     [26]int64
	Positions   [5][26]int64
	PeakLetter  byte
	PeakCount   int64
	AvgDistinct float64
}

// Summarize counts how many words contain each letter and how often each
// letter appears at each position.
func Summarize(words []string) Summary {
	s := Summary{Words: len(words)}

	var distinct int64
	for _, w := range words {
		var seen [26]bool
		for i := 0; i < len(w) && i < 5; i++ {
			c := w[i]
			if c < 'a' || c > 'z' {
				continue
			}
			s.Positions[i][c-'a']++
			if !seen[c-'a'] {
				seen[c-'a'] = true
				s.Letters[c-'a']++
				distinct++
			}
		}
	}

	letter, count := FindPeak(s.Letters[:])
	if count > 0 {
		s.PeakLetter = byte('a' + letter)
		s.PeakCount = count
	}
	if len(words) > 0 {
		s.AvgDistinct = float64(distinct) / float64(len(words))
	}
	return s
}

// FindPeak returns the index and value of the largest count; ties go to the
// lowest index.
func FindPeak(counts []int64) (index int, count int64) {
	for i, c := range counts {
		if c > count {
			index = i
			count = c
		}
	}
	return
}

// FormatCount abbreviates word counts for narrow table cells: 1500 is
// "1.5K", 2000000 is "2M". The fraction is truncated to one digit.
func FormatCount(count int64) string {
	switch {
	case count >= 1_000_000:
		return abbreviate(count, 1_000_000, "M")
	case count >= 1_000:
		return abbreviate(count, 1_000, "K")
	}
	return strconv.FormatInt(count, 10)
}

func abbreviate(count, unit int64, suffix string) string {
	whole := strconv.FormatInt(count/unit, 10)
	tenths := (count % unit) * 10 / unit
	if tenths == 0 {
		return whole + suffix
	}
	return whole + "." + strconv.FormatInt(tenths, 10) + suffix
}
