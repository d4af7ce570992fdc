package customer

import (
	"context"
	"customerHub/domain"
	"customerHub/pkg/logger"
	"errors"
	"fmt"
	"time"
)

// CustomerRepository contract interface
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	FindByID(ctx context.Context, id uint) (domain.Customer, error)
	FindByEmail(ctx context.Context, email string) (domain.Customer, error)
	FindAll(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (domain.CustomerStats, error)
}

type CustomerService struct {
	customerRepo CustomerRepository
}

func NewCustomerService(customerRepo CustomerRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
	}
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all customers", err)
		return nil, err
	}

	return customers, nil
}

// CreateCustomer validates the payload, rejects duplicate emails and fills
// in the creation defaults before persisting. JoinDate is set here, once.
func (s *CustomerService) CreateCustomer(ctx context.Context, customer *domain.Customer) (domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return domain.Customer{}, fmt.Errorf("context error: %w", err)
	}

	if customer.Name == "" || customer.Email == "" {
		logger.Error("Invalid customer data: name and email are required")
		return domain.Customer{}, domain.ErrValidation
	}

	_, err := s.customerRepo.FindByEmail(ctx, customer.Email)
	if err == nil {
		logger.Error("Duplicate customer email", "email", customer.Email)
		return domain.Customer{}, domain.ErrEmailExists
	}
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		logger.Error("Failed to check customer email", err)
		return domain.Customer{}, err
	}

	if customer.Status == "" {
		customer.Status = "active"
	}
	customer.JoinDate = time.Now().UTC()

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		logger.Error("Failed to create customer", err)
		return domain.Customer{}, err
	}

	logger.Info("customer created successfully", "id", customer.ID)

	return *customer, nil
}

// UpdateCustomer applies only the fields present in the payload. Absent
// fields keep their stored value, and no uniqueness or non-emptiness check
// is re-run on the mutated fields.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uint, update domain.CustomerUpdate) (domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return domain.Customer{}, fmt.Errorf("context error: %w", err)
	}

	existing, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("customer not found", err)
		return domain.Customer{}, err
	}

	if update.Name != nil {
		existing.Name = *update.Name
	}
	if update.Email != nil {
		existing.Email = *update.Email
	}
	if update.Status != nil {
		existing.Status = *update.Status
	}
	if update.TotalOrders != nil {
		existing.TotalOrders = *update.TotalOrders
	}
	if update.TotalSpent != nil {
		existing.TotalSpent = *update.TotalSpent
	}

	if err := s.customerRepo.Update(ctx, &existing); err != nil {
		logger.Error("Failed to update customer", err)
		return domain.Customer{}, err
	}

	logger.Info("customer updated successfully", "id", id)

	return existing, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id uint) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if _, err := s.customerRepo.FindByID(ctx, id); err != nil {
		logger.Error("customer not found", err)
		return err
	}

	if err := s.customerRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete customer", err)
		return err
	}

	logger.Info("customer deleted successfully", "id", id)

	return nil
}

func (s *CustomerService) GetStats(ctx context.Context) (domain.CustomerStats, error) {
	if err := ctx.Err(); err != nil {
		return domain.CustomerStats{}, fmt.Errorf("context error: %w", err)
	}

	stats, err := s.customerRepo.Stats(ctx)
	if err != nil {
		logger.Error("Failed to compute customer stats", err)
		return domain.CustomerStats{}, err
	}

	return stats, nil
}
