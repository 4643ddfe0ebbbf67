package rating

// Summary is the derived rating of a business.
type Summary struct {
	Average float64
	Count   int
}

// Aggregate returns the unrounded mean of ratings. No ratings gives 0/0.
func Aggregate(ratings []int) Summary {
	if len(ratings) == 0 {
		return Summary{}
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return Summary{Average: float64(sum) / float64(len(ratings)), Count: len(ratings)}
}
