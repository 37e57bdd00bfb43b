package y2023

// TotalScratchcards counts the cards held once every card's matches have
// won copies of the cards that follow it. Copies never extend past the
// last card.
func TotalScratchcards(cards []Card) int {
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}

	total := 0
	for i, c := range cards {
		m := c.Matches()
		for j := i + 1; j <= i+m && j < len(cards); j++ {
			copies[j] = satAdd(copies[j], copies[i])
		}
		total = satAdd(total, copies[i])
	}
	return total
}
