package models

import "fmt"

// OrderStatus is the closed set of states an order moves through.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown order status %q", s)
	}
	return status, nil
}

// Order references its foods by id, in order and with repeats, the way they
// were submitted. TotalAmount is fixed when the order is created.
type Order struct {
	Base
	TableID     string      `gorm:"type:varchar(36);not null;index" json:"table_id"`
	Table       *Table      `gorm:"foreignKey:TableID" json:"table,omitempty"`
	FoodIDs     StringList  `gorm:"type:text;not null" json:"food_ids"`
	Foods       []Food      `gorm:"-" json:"foods,omitempty"`
	TotalAmount float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	Status      OrderStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
}
