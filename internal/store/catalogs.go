package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marcus/cn/internal/models"
)

// Catalogs returns the full product-catalog collection
func (s *Store) Catalogs() ([]models.ProductCatalog, error) {
	return loadCollection[models.ProductCatalog](s, KeyCatalogs)
}

// GetCatalog returns the catalog with the given id or name, or an error if absent
func (s *Store) GetCatalog(ref string) (*models.ProductCatalog, error) {
	catalogs, err := s.Catalogs()
	if err != nil {
		return nil, err
	}
	for i := range catalogs {
		if catalogs[i].ID == ref || strings.EqualFold(catalogs[i].Name, ref) {
			return &catalogs[i], nil
		}
	}
	return nil, fmt.Errorf("catalog not found: %s", ref)
}

// AddCatalog creates a product catalog, assigning ids to any products it
// arrives with. New products enter the catalog in stock.
func (s *Store) AddCatalog(name string, products []models.Product) (*models.ProductCatalog, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("catalog name is required")
	}

	catalogs, err := s.Catalogs()
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == "" {
			products[i].ID = uuid.NewString()
		}
		products[i].InStock = true
	}
	if products == nil {
		products = []models.Product{}
	}

	catalog := models.ProductCatalog{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		Products:  products,
		CreatedAt: time.Now(),
	}

	catalogs = append(catalogs, catalog)
	if err := saveCollection(s, KeyCatalogs, catalogs); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// AddProduct appends a product to the matching catalog and refreshes its
// UpdatedAt. New products enter the catalog in stock. A missing catalog id is
// a silent no-op.
func (s *Store) AddProduct(catalogID string, product models.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return fmt.Errorf("product name is required")
	}

	catalogs, err := s.Catalogs()
	if err != nil {
		return err
	}

	updated := make([]models.ProductCatalog, len(catalogs))
	for i, c := range catalogs {
		if c.ID == catalogID {
			if product.ID == "" {
				product.ID = uuid.NewString()
			}
			product.InStock = true
			c.Products = append(c.Products, product)
			c.UpdatedAt = time.Now()
		}
		updated[i] = c
	}

	return saveCollection(s, KeyCatalogs, updated)
}

// DeleteCatalog removes the matching catalog. A missing id is a silent no-op.
func (s *Store) DeleteCatalog(id string) error {
	catalogs, err := s.Catalogs()
	if err != nil {
		return err
	}

	kept := catalogs[:0:0]
	for _, c := range catalogs {
		if c.ID != id {
			kept = append(kept, c)
		}
	}

	return saveCollection(s, KeyCatalogs, kept)
}
