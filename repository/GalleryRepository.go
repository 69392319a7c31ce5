package repository

import (
	"errors"
	"log"

	"github.com/Aditya231356/Carpenter-Website/catalog"
	"github.com/Aditya231356/Carpenter-Website/entities"
)

type GalleryRepository interface {
	GetGallery() (items []entities.GalleryItem, err error)
	SeedDefaults() (err error)
}

type GalleryRepo struct {
	store Store
}

func NewGalleryRepository(store Store) (GalleryRepository, error) {
	if store == nil {
		return nil, errors.New("store must be non-nil")
	}
	return &GalleryRepo{
		store: store,
	}, nil
}

func (g *GalleryRepo) GetGallery() (items []entities.GalleryItem, err error) {
	found, e := g.store.Load(GalleryKey, &items)
	if e != nil {
		log.Printf("GetGallery: %v", e)
		items = catalog.DefaultGallery()
		return
	}
	if !found {
		items = catalog.DefaultGallery()
	}
	return
}

func (g *GalleryRepo) SeedDefaults() (err error) {
	var existing []entities.GalleryItem
	found, e := g.store.Load(GalleryKey, &existing)
	if e != nil {
		err = e
		return
	}
	if found {
		return
	}
	err = g.store.Save(GalleryKey, catalog.DefaultGallery())
	return
}
