package sqlite

import (
	"context"
	"customerHub/domain"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{
		DB: db,
	}
}

// Create persists the customer in its own transaction; a failed insert is
// rolled back before the error is returned.
func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(customer).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uint) (domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return domain.Customer{}, fmt.Errorf("context error: %w", err)
	}

	var customer domain.Customer

	err := r.DB.WithContext(ctx).First(&customer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Customer{}, domain.ErrCustomerNotFound
		}
		return domain.Customer{}, fmt.Errorf("failed to find customer: %w", err)
	}

	return customer, nil
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return domain.Customer{}, fmt.Errorf("context error: %w", err)
	}

	var customer domain.Customer

	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Customer{}, domain.ErrCustomerNotFound
		}
		return domain.Customer{}, fmt.Errorf("failed to find customer: %w", err)
	}

	return customer, nil
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	// Non-nil so an empty table serializes as [] rather than null.
	customers := make([]domain.Customer, 0)

	if err := r.DB.WithContext(ctx).Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to find customers: %w", err)
	}

	return customers, nil
}

// Update writes the mutable columns only; id and join_date are never
// touched. Select forces zero values through, so explicit zeros stick.
func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&domain.Customer{}).
			Where("id = ?", customer.ID).
			Select("name", "email", "status", "total_orders", "total_spent").
			Updates(customer).Error
	})
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id uint) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&domain.Customer{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrCustomerNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	return nil
}

// Stats aggregates over all customers in one pass plus two counts. Sums are
// coalesced to zero for an empty table, and the average guards against a
// zero order count.
func (r *CustomerRepository) Stats(ctx context.Context) (domain.CustomerStats, error) {
	if err := ctx.Err(); err != nil {
		return domain.CustomerStats{}, fmt.Errorf("context error: %w", err)
	}

	var stats domain.CustomerStats

	if err := r.DB.WithContext(ctx).Model(&domain.Customer{}).
		Count(&stats.TotalCustomers).Error; err != nil {
		return domain.CustomerStats{}, fmt.Errorf("failed to count customers: %w", err)
	}

	if err := r.DB.WithContext(ctx).Model(&domain.Customer{}).
		Where("status = ?", "active").
		Count(&stats.ActiveCustomers).Error; err != nil {
		return domain.CustomerStats{}, fmt.Errorf("failed to count active customers: %w", err)
	}

	var totals struct {
		TotalSpent  float64
		TotalOrders int64
	}
	if err := r.DB.WithContext(ctx).Model(&domain.Customer{}).
		Select("COALESCE(SUM(total_spent), 0) AS total_spent, COALESCE(SUM(total_orders), 0) AS total_orders").
		Scan(&totals).Error; err != nil {
		return domain.CustomerStats{}, fmt.Errorf("failed to sum customer totals: %w", err)
	}

	stats.TotalRevenue = totals.TotalSpent
	if totals.TotalOrders > 0 {
		stats.AvgOrderValue = totals.TotalSpent / float64(totals.TotalOrders)
	}

	return stats, nil
}
