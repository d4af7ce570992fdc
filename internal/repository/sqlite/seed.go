package sqlite

import (
	"customerHub/domain"
	"customerHub/pkg/logger"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// SeedCustomers inserts the sample rows on a fresh database. A non-empty
// customers table is left untouched.
func SeedCustomers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Customer{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count customers: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	customers := []domain.Customer{
		{Name: "John Doe", Email: "john@example.com", Status: "active", TotalOrders: 15, TotalSpent: 2850.50, JoinDate: now},
		{Name: "Jane Smith", Email: "jane@example.com", Status: "active", TotalOrders: 8, TotalSpent: 1250.00, JoinDate: now},
		{Name: "Bob Johnson", Email: "bob@example.com", Status: "inactive", TotalOrders: 3, TotalSpent: 450.75, JoinDate: now},
		{Name: "Alice Brown", Email: "alice@example.com", Status: "active", TotalOrders: 22, TotalSpent: 4200.25, JoinDate: now},
		{Name: "Charlie Wilson", Email: "charlie@example.com", Status: "pending", TotalOrders: 0, TotalSpent: 0.00, JoinDate: now},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&customers).Error
	})
	if err != nil {
		return fmt.Errorf("failed to seed customers: %w", err)
	}

	logger.Info("Sample data added to database", "customers", len(customers))

	return nil
}
