package y2023

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/aoc/internal/grammar"
	"github.com/fyrsmithlabs/aoc/internal/logging"
)

// ScoreGameLine returns the game's id when it is possible under bound and
// 0 otherwise.
func ScoreGameLine(line string, bound Cubes) (int, error) {
	g, err := ParseGame(line)
	if err != nil {
		return 0, err
	}
	if g.Possible(bound) {
		return g.ID, nil
	}
	return 0, nil
}

// ScoreCardLine returns the score of a single scratchcard line.
func ScoreCardLine(line string) (int, error) {
	c, err := ParseCard(line)
	if err != nil {
		return 0, err
	}
	return c.Score(), nil
}

// SumPossible sums the ids of the games possible under bound.
// The first malformed line aborts the sum.
func SumPossible(lines []string, bound Cubes) (int, error) {
	games, err := parseGames(context.Background(), lines)
	if err != nil {
		return 0, err
	}
	return sumPossible(games, bound), nil
}

// SumPower sums the power of every game.
func SumPower(lines []string) (int, error) {
	games, err := parseGames(context.Background(), lines)
	if err != nil {
		return 0, err
	}
	return sumPower(games), nil
}

// SumCardScores sums the score of every scratchcard.
func SumCardScores(lines []string) (int, error) {
	cards, err := parseCards(context.Background(), lines)
	if err != nil {
		return 0, err
	}
	return sumCardScores(cards), nil
}

func sumPossible(games []Game, bound Cubes) int {
	sum := 0
	for _, g := range games {
		if g.Possible(bound) {
			sum = satAdd(sum, g.ID)
		}
	}
	return sum
}

func sumPower(games []Game) int {
	sum := 0
	for _, g := range games {
		sum = satAdd(sum, g.Power())
	}
	return sum
}

func sumCardScores(cards []Card) int {
	sum := 0
	for _, c := range cards {
		sum = satAdd(sum, c.Score())
	}
	return sum
}

// parseGames parses every line, annotating a failure with its 1-based line
// number. Each record is traced to the logger carried by ctx.
func parseGames(ctx context.Context, lines []string) ([]Game, error) {
	logger := logging.FromContext(ctx)
	games := make([]Game, 0, len(lines))
	for i, line := range lines {
		g, err := ParseGame(line)
		if err != nil {
			return nil, fmt.Errorf("parse game: %w", grammar.WithLine(err, i+1))
		}
		logger.Trace(ctx, "parsed game", zap.Int("id", g.ID), zap.Int("groups", len(g.Groups)))
		games = append(games, g)
	}
	return games, nil
}

func parseCards(ctx context.Context, lines []string) ([]Card, error) {
	logger := logging.FromContext(ctx)
	cards := make([]Card, 0, len(lines))
	for i, line := range lines {
		c, err := ParseCard(line)
		if err != nil {
			return nil, fmt.Errorf("parse card: %w", grammar.WithLine(err, i+1))
		}
		logger.Trace(ctx, "parsed card", zap.Int("id", c.ID), zap.Int("matches", c.Matches()))
		cards = append(cards, c)
	}
	return cards, nil
}
