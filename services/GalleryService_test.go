package services

import (
	"testing"

	"github.com/Aditya231356/Carpenter-Website/models"
	"github.com/Aditya231356/Carpenter-Website/repository"

	"github.com/stretchr/testify/require"
)

func newTestGalleryService(t *testing.T) GalleryService {
	t.Helper()
	store := repository.NewMemoryStore()
	galleryRepo, err := repository.NewGalleryRepository(store)
	require.NoError(t, err)
	return NewGalleryService(galleryRepo)
}

func TestListGallery_All(t *testing.T) {
	gs := newTestGalleryService(t)

	items, err := gs.ListGallery("all")
	require.NoError(t, err)
	require.Len(t, items, 6)

	items, err = gs.ListGallery("")
	require.NoError(t, err)
	require.Len(t, items, 6)
}

func TestListGallery_CategoryFilter(t *testing.T) {
	gs := newTestGalleryService(t)

	items, err := gs.ListGallery("commercial")
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, it := range items {
		require.Equal(t, "commercial", it.Category)
	}
}

func TestNavigate_NextAndPrev(t *testing.T) {
	gs := newTestGalleryService(t)

	// defaults: ids 1..6 in order
	item, err := gs.Navigate(1, 1, "all")
	require.NoError(t, err)
	require.Equal(t, 2, item.Id)

	item, err = gs.Navigate(2, -1, "all")
	require.NoError(t, err)
	require.Equal(t, 1, item.Id)
}

func TestNavigate_WrapsAround(t *testing.T) {
	gs := newTestGalleryService(t)

	item, err := gs.Navigate(6, 1, "all")
	require.NoError(t, err)
	require.Equal(t, 1, item.Id)

	item, err = gs.Navigate(1, -1, "all")
	require.NoError(t, err)
	require.Equal(t, 6, item.Id)
}

func TestNavigate_RespectsCategoryFilter(t *testing.T) {
	gs := newTestGalleryService(t)

	// commercial items are ids 3 and 6; next from 3 skips straight to 6
	item, err := gs.Navigate(3, 1, "commercial")
	require.NoError(t, err)
	require.Equal(t, 6, item.Id)

	item, err = gs.Navigate(6, 1, "commercial")
	require.NoError(t, err)
	require.Equal(t, 3, item.Id)
}

func TestNavigate_UnknownItem(t *testing.T) {
	gs := newTestGalleryService(t)

	_, err := gs.Navigate(42, 1, "all")
	require.ErrorIs(t, err, models.ErrNotFoundError)

	// item exists but is filtered out of the active view
	_, err = gs.Navigate(1, 1, "commercial")
	require.ErrorIs(t, err, models.ErrNotFoundError)
}
