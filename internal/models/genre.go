// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package models

// Genre is a movie genre. Values are the TMDb genre identifiers so a Genre
// can be sent to the catalog as-is.
type Genre int

const (
	GenreUndefined          Genre = 0
	GenreAction             Genre = 28
	GenreAdventure          Genre = 12
	GenreActionAndAdventure Genre = 10759
	GenreAnimation          Genre = 16
	GenreComedy             Genre = 35
	GenreCrime              Genre = 80
	GenreDrama              Genre = 18
	GenreDocumentary        Genre = 99
	GenreFamily             Genre = 10751
	GenreFantasy            Genre = 14
	GenreHistory            Genre = 36
	GenreHorror             Genre = 27
	GenreKids               Genre = 10762
	GenreMusic              Genre = 10402
	GenreMystery            Genre = 9648
	GenreNews               Genre = 10763
	GenreReality            Genre = 10764
	GenreRomance            Genre = 10749
	GenreScienceFiction     Genre = 878
	GenreSciFiAndFantasy    Genre = 10765
	GenreSoap               Genre = 10766
	GenreTalk               Genre = 10767
	GenreThriller           Genre = 53
	GenreTvMovie            Genre = 10770
	GenreWar                Genre = 10752
	GenreWarAndPolitics     Genre = 10768
	GenreWestern            Genre = 37
)

var genreNames = map[Genre]string{
	GenreAction:             "Action",
	GenreAdventure:          "Adventure",
	GenreActionAndAdventure: "ActionAndAdventure",
	GenreAnimation:          "Animation",
	GenreComedy:             "Comedy",
	GenreCrime:              "Crime",
	GenreDrama:              "Drama",
	GenreDocumentary:        "Documentary",
	GenreFamily:             "Family",
	GenreFantasy:            "Fantasy",
	GenreHistory:            "History",
	GenreHorror:             "Horror",
	GenreKids:               "Kids",
	GenreMusic:              "Music",
	GenreMystery:            "Mystery",
	GenreNews:               "News",
	GenreReality:            "Reality",
	GenreRomance:            "Romance",
	GenreScienceFiction:     "ScienceFiction",
	GenreSciFiAndFantasy:    "SciFiAndFantasy",
	GenreSoap:               "Soap",
	GenreTalk:               "Talk",
	GenreThriller:           "Thriller",
	GenreTvMovie:            "TvMovie",
	GenreWar:                "War",
	GenreWarAndPolitics:     "WarAndPolitics",
	GenreWestern:            "Western",
}

// String returns the genre name used in API responses.
func (g Genre) String() string {
	if name, ok := genreNames[g]; ok {
		return name
	}
	return "Undefined"
}

// GenreFromTMDbID maps a TMDb genre id to a Genre. Unknown ids map to
// GenreUndefined.
func GenreFromTMDbID(id int) Genre {
	g := Genre(id)
	if _, ok := genreNames[g]; ok {
		return g
	}
	return GenreUndefined
}

// TMDbID returns the catalog identifier of the genre.
func (g Genre) TMDbID() int {
	return int(g)
}
