package services

import (
	"github.com/Aditya231356/Carpenter-Website/entities"
	"github.com/Aditya231356/Carpenter-Website/models"
	"github.com/Aditya231356/Carpenter-Website/repository"
)

type GalleryService struct {
	gr repository.GalleryRepository
}

func NewGalleryService(galleryRepo repository.GalleryRepository) GalleryService {
	return GalleryService{
		gr: galleryRepo,
	}
}

func (gs *GalleryService) ListGallery(category string) (items []entities.GalleryItem, err error) {
	all, e := gs.gr.GetGallery()
	if e != nil {
		err = e
		return
	}
	items = filterGallery(all, category)
	return
}

// Navigate steps through the category-filtered gallery from the given item,
// wrapping around at both ends. direction is +1 for next, -1 for previous.
func (gs *GalleryService) Navigate(itemId int, direction int, category string) (item entities.GalleryItem, err error) {
	all, e := gs.gr.GetGallery()
	if e != nil {
		err = e
		return
	}
	filtered := filterGallery(all, category)
	current := -1
	for i, it := range filtered {
		if it.Id == itemId {
			current = i
			break
		}
	}
	if current == -1 {
		err = models.ErrNotFoundError
		return
	}
	next := (current + direction + len(filtered)) % len(filtered)
	item = filtered[next]
	return
}

func (gs *GalleryService) SeedDefaults() (err error) {
	err = gs.gr.SeedDefaults()
	return
}

func filterGallery(all []entities.GalleryItem, category string) (items []entities.GalleryItem) {
	items = []entities.GalleryItem{}
	for _, it := range all {
		if category == "" || category == "all" || it.Category == category {
			items = append(items, it)
		}
	}
	return
}
