package models

// Upstream genre identifiers. Movie and TV discovery use separate genre
// vocabularies; the TV-only ids start at 10759.
const (
	GenreAction         = 28
	GenreAdventure      = 12
	GenreAnimation      = 16
	GenreComedy         = 35
	GenreCrime          = 80
	GenreDocumentary    = 99
	GenreDrama          = 18
	GenreFamily         = 10751
	GenreFantasy        = 14
	GenreHistory        = 36
	GenreHorror         = 27
	GenreMusic          = 10402
	GenreMystery        = 9648
	GenreRomance        = 10749
	GenreScienceFiction = 878
	GenreThriller       = 53
	GenreWar            = 10752
	GenreWestern        = 37

	GenreActionAdventure = 10759
	GenreKids            = 10762
	GenreNews            = 10763
	GenreReality         = 10764
	GenreSciFiFantasy    = 10765
	GenreSoap            = 10766
	GenreTalk            = 10767
	GenreWarPolitics     = 10768
)
