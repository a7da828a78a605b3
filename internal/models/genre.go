package models

import (
	"errors"
	"fmt"
	"strings"
)

// Genre is one of the fixed music genre tags a venue or artist can carry.
type Genre string

const (
	GenreAlternative    Genre = "Alternative"
	GenreBlues          Genre = "Blues"
	GenreClassical      Genre = "Classical"
	GenreCountry        Genre = "Country"
	GenreElectronic     Genre = "Electronic"
	GenreFolk           Genre = "Folk"
	GenreFunk           Genre = "Funk"
	GenreHipHop         Genre = "Hip-Hop"
	GenreHeavyMetal     Genre = "Heavy Metal"
	GenreInstrumental   Genre = "Instrumental"
	GenreJazz           Genre = "Jazz"
	GenreMusicalTheatre Genre = "Musical Theatre"
	GenrePop            Genre = "Pop"
	GenrePunk           Genre = "Punk"
	GenreRB             Genre = "R&B"
	GenreReggae         Genre = "Reggae"
	GenreRockNRoll      Genre = "Rock n Roll"
	GenreSoul           Genre = "Soul"
	GenreOther          Genre = "Other"
)

// ErrUnknownGenre is returned when a tag is not one of AllGenres.
var ErrUnknownGenre = errors.New("unknown genre")

// AllGenres lists every genre in display order.
var AllGenres = []Genre{
	GenreAlternative, GenreBlues, GenreClassical, GenreCountry, GenreElectronic,
	GenreFolk, GenreFunk, GenreHipHop, GenreHeavyMetal, GenreInstrumental,
	GenreJazz, GenreMusicalTheatre, GenrePop, GenrePunk, GenreRB,
	GenreReggae, GenreRockNRoll, GenreSoul, GenreOther,
}

var genreIndex = func() map[string]Genre {
	idx := make(map[string]Genre, len(AllGenres))
	for _, g := range AllGenres {
		idx[strings.ToLower(string(g))] = g
	}
	return idx
}()

// ParseGenre resolves a tag case-insensitively.
func ParseGenre(raw string) (Genre, error) {
	g, ok := genreIndex[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownGenre, raw)
	}
	return g, nil
}

// SplitGenreList tokenizes a genre list in any of the shapes we accept from
// forms and older exports: "", "Jazz", "Jazz, Soul", "{Jazz,Soul}" or
// `{"Rock n Roll",Jazz}`. Empty items are dropped.
func SplitGenreList(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "{")
	trimmed = strings.TrimSuffix(trimmed, "}")

	var tokens []string
	for _, part := range strings.Split(trimmed, ",") {
		part = strings.Trim(strings.TrimSpace(part), `"`)
		part = strings.TrimSpace(part)
		if part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

// ParseGenreList parses every token of raw. Known genres are returned in input
// order without duplicates; if any token is unknown the error lists all of them.
func ParseGenreList(raw string) ([]Genre, error) {
	return ParseGenres(SplitGenreList(raw))
}

// ParseGenres resolves a list of tags, see ParseGenreList.
func ParseGenres(tokens []string) ([]Genre, error) {
	genres := make([]Genre, 0, len(tokens))
	seen := make(map[Genre]bool, len(tokens))
	var unknown []string

	for _, token := range tokens {
		g, err := ParseGenre(token)
		if err != nil {
			unknown = append(unknown, fmt.Sprintf("%q", token))
			continue
		}
		if seen[g] {
			continue
		}
		seen[g] = true
		genres = append(genres, g)
	}

	if len(unknown) > 0 {
		return genres, fmt.Errorf("%w: %s", ErrUnknownGenre, strings.Join(unknown, ", "))
	}
	return genres, nil
}

// GenreStrings converts genres back to their display strings.
func GenreStrings(genres []Genre) []string {
	out := make([]string, len(genres))
	for i, g := range genres {
		out[i] = string(g)
	}
	return out
}
