package model

import (
	"time"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type OrderModel struct {
	ID          BinaryID  `gorm:"primaryKey"`
	ResellerID  BinaryID  `gorm:"not null;index"`
	CustomerID  BinaryID  `gorm:"not null;index"`
	StatusID    BinaryID  `gorm:"not null;index"`
	CreatedDate time.Time `gorm:"not null;index"`

	Status *OrderStatusModel `gorm:"foreignKey:StatusID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Items  []OrderItemModel  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
type OrderItemModel struct {
	ID        BinaryID `gorm:"primaryKey"`
	OrderID   BinaryID `gorm:"not null;index"`
	ProductID BinaryID `gorm:"not null;index"`
	ServiceID BinaryID `gorm:"not null;index"`
	Quantity  int      `gorm:"not null;check:chk_order_items_quantity,quantity > 0"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
	Service *ServiceModel `gorm:"foreignKey:ServiceID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// OrderStatusModel is the GORM-specific struct for the 'order_statuses' reference table.
type OrderStatusModel struct {
	ID   BinaryID `gorm:"primaryKey"`
	Name string   `gorm:"type:varchar(20);uniqueIndex;not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderStatusModel) TableName() string {
	return "order_statuses"
}
