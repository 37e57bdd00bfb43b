package y2023

import (
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/fyrsmithlabs/aoc/internal/grammar"
)

// Card is one scratchcard: the winning numbers and the numbers held.
type Card struct {
	ID      int
	Winning []int
	Have    []int
}

// Matches counts the held numbers that appear among the winning numbers.
// A held number listed twice counts twice.
func (c Card) Matches() int {
	winning := make(map[int]struct{}, len(c.Winning))
	for _, n := range c.Winning {
		winning[n] = struct{}{}
	}
	matches := 0
	for _, n := range c.Have {
		if _, ok := winning[n]; ok {
			matches++
		}
	}
	return matches
}

// Score is 0 without matches and doubles with every match after the first.
// It stops at math.MaxInt once the doubling no longer fits in an int.
func (c Card) Score() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	if m-1 >= bits.UintSize-1 {
		return math.MaxInt
	}
	return 1 << (m - 1)
}

// String renders the card in its input form.
func (c Card) String() string {
	var b strings.Builder
	b.WriteString("Card ")
	b.WriteString(strconv.Itoa(c.ID))
	b.WriteString(":")
	writeList(&b, c.Winning)
	b.WriteString(" |")
	writeList(&b, c.Have)
	return b.String()
}

func writeList(b *strings.Builder, nums []int) {
	for _, n := range nums {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(n))
	}
}

// ParseCard parses a line of the form
//
//	Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
//
// Either list may be empty.
func ParseCard(line string) (Card, error) {
	s := grammar.NewScanner(line)

	s.SkipSpace()
	if err := s.Literal("Card"); err != nil {
		return Card{}, err
	}
	s.SkipSpace()
	id, err := s.Uint()
	if err != nil {
		return Card{}, err
	}
	s.SkipSpace()
	if err := s.Byte(':'); err != nil {
		return Card{}, err
	}

	winning, err := s.Uints()
	if err != nil {
		return Card{}, err
	}
	if err := s.Byte('|'); err != nil {
		return Card{}, err
	}
	have, err := s.Uints()
	if err != nil {
		return Card{}, err
	}
	if err := s.End(); err != nil {
		return Card{}, err
	}

	return Card{ID: id, Winning: winning, Have: have}, nil
}
