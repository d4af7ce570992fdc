package domain

import (
	"errors"
	"time"
)

type Customer struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"column:name;not null"`
	Email       string    `json:"email" gorm:"column:email;unique;not null"`
	Status      string    `json:"status" gorm:"column:status;default:active"`
	TotalOrders int       `json:"totalOrders" gorm:"column:total_orders;default:0"`
	TotalSpent  float64   `json:"totalSpent" gorm:"column:total_spent;default:0"`
	JoinDate    time.Time `json:"joinDate" gorm:"column:join_date"`
}

func (Customer) TableName() string {
	return "customers"
}

// CustomerUpdate carries a partial update payload. Nil fields keep their
// stored value.
type CustomerUpdate struct {
	Name        *string
	Email       *string
	Status      *string
	TotalOrders *int
	TotalSpent  *float64
}

type CustomerStats struct {
	TotalCustomers  int64   `json:"totalCustomers"`
	ActiveCustomers int64   `json:"activeCustomers"`
	TotalRevenue    float64 `json:"totalRevenue"`
	AvgOrderValue   float64 `json:"avgOrderValue"`
}

// Sentinel errors; the messages double as response bodies so they are
// written in wire casing.
var (
	ErrValidation       = errors.New("Name and email are required")
	ErrEmailExists      = errors.New("Email already exists")
	ErrCustomerNotFound = errors.New("Customer not found")
)
