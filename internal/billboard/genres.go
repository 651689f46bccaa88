// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package billboard

import "github.com/tomtom215/billboard/internal/models"

// GenreProvider supplies the genre sets used for each room category.
type GenreProvider interface {
	BlockbusterGenres() []models.Genre
	NicheGenres() []models.Genre
}

// Drama and ScienceFiction are listed in both sets.
var (
	blockbusterGenres = []models.Genre{
		models.GenreAction,
		models.GenreAdventure,
		models.GenreActionAndAdventure,
		models.GenreComedy,
		models.GenreDrama,
		models.GenreScienceFiction,
		models.GenreSciFiAndFantasy,
		models.GenreThriller,
	}

	nicheGenres = []models.Genre{
		models.GenreAnimation,
		models.GenreCrime,
		models.GenreDrama,
		models.GenreFamily,
		models.GenreFantasy,
		models.GenreHistory,
		models.GenreHorror,
		models.GenreKids,
		models.GenreMusic,
		models.GenreMystery,
		models.GenreNews,
		models.GenreReality,
		models.GenreRomance,
		models.GenreScienceFiction,
		models.GenreSoap,
		models.GenreTalk,
		models.GenreTvMovie,
		models.GenreWar,
		models.GenreWarAndPolitics,
		models.GenreWestern,
	}
)

// StaticGenres is the fixed GenreProvider. Each call returns a fresh copy.
type StaticGenres struct{}

// BlockbusterGenres targets the big rooms.
func (StaticGenres) BlockbusterGenres() []models.Genre {
	return append([]models.Genre(nil), blockbusterGenres...)
}

// NicheGenres targets the small rooms.
func (StaticGenres) NicheGenres() []models.Genre {
	return append([]models.Genre(nil), nicheGenres...)
}
