package model

import (
	"github.com/shopspring/decimal"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID        BinaryID        `gorm:"primaryKey"`
	ServiceID BinaryID        `gorm:"not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	UnitCost  decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(18,4);not null"`

	Service *ServiceModel `gorm:"foreignKey:ServiceID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ServiceModel is the GORM-specific struct for the 'services' table.
type ServiceModel struct {
	ID   BinaryID `gorm:"primaryKey"`
	Name string   `gorm:"type:varchar(100);not null"`
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}

// All lists every persistence model in dependency order, for migrations and code generation.
func All() []any {
	return []any{
		&ServiceModel{},
		&ProductModel{},
		&OrderStatusModel{},
		&OrderModel{},
		&OrderItemModel{},
	}
}
