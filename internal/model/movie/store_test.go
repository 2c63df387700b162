package movie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/movies-api/internal/model/movie"
)

func sample() []movie.Movie {
	return []movie.Movie{
		{ID: "a", Title: "Alpha", Genre: []string{"Action"}, Year: 2001, Director: "X", Duration: 100, Poster: "https://a.example/p.jpg"},
		{ID: "b", Title: "Beta", Genre: []string{"Drama"}, Year: 2002, Director: "Y", Duration: 110, Poster: "https://b.example/p.jpg"},
		{ID: "c", Title: "Gamma", Genre: []string{"Comedy", "Drama"}, Year: 2003, Director: "Z", Duration: 90, Rate: 7.5, Poster: "https://c.example/p.jpg"},
	}
}

func TestMemoryStoreListPreservesOrder(t *testing.T) {
	store := movie.NewMemoryStore(sample())

	got := store.List()
	require.Len(t, got, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestMemoryStoreListReturnsCopy(t *testing.T) {
	store := movie.NewMemoryStore(sample())

	got := store.List()
	got[0].Title = "changed"
	got[0].Genre[0] = "changed"

	again, ok := store.FindByID("a")
	require.True(t, ok)
	assert.Equal(t, "Alpha", again.Title)
	assert.Equal(t, []string{"Action"}, again.Genre)
}

func TestMemoryStoreFind(t *testing.T) {
	store := movie.NewMemoryStore(sample())

	m, ok := store.FindByID("b")
	require.True(t, ok)
	assert.Equal(t, "Beta", m.Title)

	_, ok = store.FindByID("missing")
	assert.False(t, ok)

	assert.Equal(t, 2, store.FindIndexByID("c"))
	assert.Equal(t, -1, store.FindIndexByID("missing"))
}

func TestMemoryStoreIndexOperations(t *testing.T) {
	store := movie.NewMemoryStore(sample())

	store.Append(movie.Movie{ID: "d", Title: "Delta"})
	assert.Equal(t, 3, store.FindIndexByID("d"))

	store.ReplaceAt(1, movie.Movie{ID: "b", Title: "Beta II"})
	m, _ := store.FindByID("b")
	assert.Equal(t, "Beta II", m.Title)

	store.RemoveAt(0)
	assert.Equal(t, -1, store.FindIndexByID("a"))
	assert.Len(t, store.List(), 3)

	store.RemoveAt(10)
	store.ReplaceAt(-1, movie.Movie{ID: "x"})
	assert.Len(t, store.List(), 3)
}

func TestMemoryStoreRemove(t *testing.T) {
	store := movie.NewMemoryStore(sample())

	assert.True(t, store.Remove("b"))
	assert.False(t, store.Remove("b"))
	assert.Len(t, store.List(), 2)

	_, ok := store.FindByID("b")
	assert.False(t, ok)
}

func TestMemoryStoreUpdateKeepsID(t *testing.T) {
	store := movie.NewMemoryStore(sample())

	updated, ok := store.Update("a", func(m movie.Movie) movie.Movie {
		m.ID = "hijacked"
		m.Year = 2020
		return m
	})
	require.True(t, ok)
	assert.Equal(t, "a", updated.ID)
	assert.Equal(t, 2020, updated.Year)

	_, ok = store.FindByID("hijacked")
	assert.False(t, ok)

	_, ok = store.Update("missing", func(m movie.Movie) movie.Movie { return m })
	assert.False(t, ok)
}

func TestMovieApply(t *testing.T) {
	base := sample()[2]
	year := 2020
	title := "Gamma Returns"

	got := base.Apply(movie.Patch{Year: &year, Title: &title})

	assert.Equal(t, 2020, got.Year)
	assert.Equal(t, "Gamma Returns", got.Title)
	assert.Equal(t, base.ID, got.ID)
	assert.Equal(t, base.Genre, got.Genre)
	assert.Equal(t, base.Rate, got.Rate)
	assert.Equal(t, 2003, base.Year)
}

func TestMovieHasGenre(t *testing.T) {
	m := sample()[2]

	assert.True(t, m.HasGenre("drama"))
	assert.True(t, m.HasGenre("COMEDY"))
	assert.False(t, m.HasGenre("Dram"))
	assert.False(t, m.HasGenre("Horror"))
}
