// Package productrepo provides data transfer objects and mapping functions for product persistence.
// This package implements the repository pattern for the product domain aggregate, handling
// the conversion between domain entities and database representations.
package productrepo

import (
	"github.com/google/uuid"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting product aggregates.
// Price is stored in minor currency units.
type ProductDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);not null"`
	Price int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products" instead of "product_dtos".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Price: aggregate.Price(),
	}
}

// toDomain converts a database DTO to a product domain aggregate using RestoreProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Price)
}
