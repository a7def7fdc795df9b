package handlers

import "streamverse/models"

// Static rail declarations for the four listing pages. Order matters:
// it is the rail order on screen and the hero selector's walk order.

var homeRequests = []models.CategoryRequest{
	{Title: "Blockbuster Hits", Kind: models.RequestPopular, MediaKind: models.MediaTypeMovie, Visible: true},
	{Title: "Trending TV Shows", Kind: models.RequestTrending, MediaKind: models.MediaTypeTV, Visible: true},
	{Title: "Top Rated Movies", Kind: models.RequestTopRated, MediaKind: models.MediaTypeMovie, Visible: true},
	{Title: "Top Rated TV Shows", Kind: models.RequestTopRated, MediaKind: models.MediaTypeTV, Visible: true},
	{Title: "Comedy Movies", Kind: models.RequestGenre, MediaKind: models.MediaTypeMovie, Genre: models.GenreComedy, Visible: true},
	{Title: "Sitcoms & Comedy Shows", Kind: models.RequestGenre, MediaKind: models.MediaTypeTV, Genre: models.GenreComedy, Visible: true},
	{Title: "Action Movies", Kind: models.RequestGenre, MediaKind: models.MediaTypeMovie, Genre: models.GenreAction, Visible: true},
	{Title: "Crime & Thriller Shows", Kind: models.RequestGenre, MediaKind: models.MediaTypeTV, Genre: models.GenreCrime, Visible: true},
	{Title: "Romance Movies", Kind: models.RequestGenre, MediaKind: models.MediaTypeMovie, Genre: models.GenreRomance, Visible: true},
	{Title: "Drama Series", Kind: models.RequestGenre, MediaKind: models.MediaTypeTV, Genre: models.GenreDrama, Visible: true},
	{Title: "Sci-Fi & Fantasy Movies", Kind: models.RequestGenre, MediaKind: models.MediaTypeMovie, Genre: models.GenreScienceFiction, Visible: true},
	{Title: "Anime Series", Kind: models.RequestGenre, MediaKind: models.MediaTypeTV, Genre: models.GenreAnimation, Visible: true},
	{Title: "Korean Movies", Kind: models.RequestKorean, MediaKind: models.MediaTypeMovie, Genre: models.GenreThriller, Visible: true},
	{Title: "Netflix TV Shows", Kind: models.RequestNetwork, MediaKind: models.MediaTypeTV, Visible: true},
	{Title: "Family Movies", Kind: models.RequestGenre, MediaKind: models.MediaTypeMovie, Genre: models.GenreFamily, Visible: true},
	{Title: "Reality Shows", Kind: models.RequestGenre, MediaKind: models.MediaTypeTV, Genre: models.GenreReality, Visible: true},
	{Title: "Documentaries", Kind: models.RequestGenre, MediaKind: models.MediaTypeMovie, Genre: models.GenreDocumentary, Visible: true},
	{Title: "TV Dramas & Mysteries", Kind: models.RequestGenre, MediaKind: models.MediaTypeTV, Genre: models.GenreMystery, Visible: true},
}

var movieRequests = []models.CategoryRequest{
	{Title: "Trending Now", Kind: models.RequestTrending, MediaKind: models.MediaTypeMovie, Visible: true},
	{Title: "Netflix Movies", Kind: models.RequestNetwork, MediaKind: models.MediaTypeMovie, Visible: true},
	{Title: "Popular", Kind: models.RequestPopular, MediaKind: models.MediaTypeMovie, Visible: true},
	{Title: "Top Rated", Kind: models.RequestTopRated, MediaKind: models.MediaTypeMovie, Visible: true},
	{Title: "Most Popular", Kind: models.RequestPopular, MediaKind: models.MediaTypeMovie, Visible: true},
	{Title: "Action", Kind: models.RequestGenre, MediaKind: models.MediaTypeMovie, Genre: models.GenreAction, Visible: true},
	{Title: "Adventure", Kind: models.RequestGenre, MediaKind: models.MediaTypeMovie, Genre: models.GenreAdventure, Visible: true},
	{Title: "Animation", Kind: models.RequestGenre, MediaKind: models.MediaTypeMovie, Genre: models.GenreAnimation, Visible: true},
	{Title: "Comedy", Kind: models.RequestGenre, MediaKind: models.MediaTypeMovie, Genre: models.GenreComedy, Visible: true},
	{Title: "Crime", Kind: models.RequestGenre, MediaKind: models.MediaTypeMovie, Genre: models.GenreCrime, Visible: true},
	{Title: "Documentary", Kind: models.RequestGenre, MediaKind: models.MediaTypeMovie, Genre: models.GenreDocumentary, Visible: true},
	{Title: "Drama", Kind: models.RequestGenre, MediaKind: models.MediaTypeMovie, Genre: models.GenreDrama, Visible: true},
	{Title: "Family", Kind: models.RequestGenre, MediaKind: models.MediaTypeMovie, Genre: models.GenreFamily, Visible: true},
	{Title: "Fantasy", Kind: models.RequestGenre, MediaKind: models.MediaTypeMovie, Genre: models.GenreFantasy, Visible: true},
	{Title: "History", Kind: models.RequestGenre, MediaKind: models.MediaTypeMovie, Genre: models.GenreHistory, Visible: true},
	{Title: "Horror", Kind: models.RequestGenre, MediaKind: models.MediaTypeMovie, Genre: models.GenreHorror, Visible: true},
	{Title: "Music", Kind: models.RequestGenre, MediaKind: models.MediaTypeMovie, Genre: models.GenreMusic, Visible: true},
}

var tvShowRequests = []models.CategoryRequest{
	{Title: "Trending Now", Kind: models.RequestTrending, MediaKind: models.MediaTypeTV, Visible: true},
	{Title: "Netflix TV Shows", Kind: models.RequestNetwork, MediaKind: models.MediaTypeTV, Visible: true},
	{Title: "Top Rated", Kind: models.RequestTopRated, MediaKind: models.MediaTypeTV, Visible: true},
	{Title: "Most Popular", Kind: models.RequestPopular, MediaKind: models.MediaTypeTV, Visible: true},
	{Title: "Action & Adventure", Kind: models.RequestGenre, MediaKind: models.MediaTypeTV, Genre: models.GenreActionAdventure, Visible: true},
	{Title: "Animation", Kind: models.RequestGenre, MediaKind: models.MediaTypeTV, Genre: models.GenreAnimation, Visible: true},
	{Title: "Comedy", Kind: models.RequestGenre, MediaKind: models.MediaTypeTV, Genre: models.GenreComedy, Visible: true},
	{Title: "Crime", Kind: models.RequestGenre, MediaKind: models.MediaTypeTV, Genre: models.GenreCrime, Visible: true},
	{Title: "Documentary", Kind: models.RequestGenre, MediaKind: models.MediaTypeTV, Genre: models.GenreDocumentary, Visible: true},
	{Title: "Drama", Kind: models.RequestGenre, MediaKind: models.MediaTypeTV, Genre: models.GenreDrama, Visible: true},
	{Title: "Family", Kind: models.RequestGenre, MediaKind: models.MediaTypeTV, Genre: models.GenreFamily, Visible: true},
	{Title: "Kids", Kind: models.RequestGenre, MediaKind: models.MediaTypeTV, Genre: models.GenreKids, Visible: true},
	{Title: "Mystery", Kind: models.RequestGenre, MediaKind: models.MediaTypeTV, Genre: models.GenreMystery, Visible: true},
	{Title: "News", Kind: models.RequestGenre, MediaKind: models.MediaTypeTV, Genre: models.GenreNews, Visible: true},
}

var newAndPopularRequests = []models.CategoryRequest{
	{Title: "Netflix", Kind: models.RequestNetwork, MediaKind: models.MediaTypeTV, Visible: true},
	{Title: "Trending TV Shows", Kind: models.RequestTrending, MediaKind: models.MediaTypeTV, Visible: true},
	{Title: "Trending Movies", Kind: models.RequestTrending, MediaKind: models.MediaTypeMovie, Visible: true},
	{Title: "Top Rated TV Shows", Kind: models.RequestTopRated, MediaKind: models.MediaTypeTV, Visible: true},
	{Title: "Top Rated Movies", Kind: models.RequestTopRated, MediaKind: models.MediaTypeMovie, Visible: true},
}

// pageRequests maps the URL page segment to its rail list.
var pageRequests = map[string][]models.CategoryRequest{
	"home":            homeRequests,
	"movies":          movieRequests,
	"tv-shows":        tvShowRequests,
	"new-and-popular": newAndPopularRequests,
}
