package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	cycledomain "github.com/tiffintrack/tiffintrack/internal/billingcycle/domain"
	customerdomain "github.com/tiffintrack/tiffintrack/internal/customer/domain"
	"github.com/tiffintrack/tiffintrack/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	customers repository.Repository[customerdomain.Customer]
}

type ServiceParam struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

func NewService(p ServiceParam) customerdomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("customer.service"),

		customers: repository.ProvideStore[customerdomain.Customer](p.DB),
	}
}

func (s *Service) GetByID(ctx context.Context, id string) (customerdomain.Customer, error) {
	customerID, err := parseID(id)
	if err != nil {
		return customerdomain.Customer{}, customerdomain.ErrInvalidCustomerID
	}

	customer, err := s.customers.FindOne(ctx, "id = ?", customerID)
	if err != nil {
		return customerdomain.Customer{}, err
	}
	if customer == nil {
		return customerdomain.Customer{}, customerdomain.ErrCustomerNotFound
	}
	return *customer, nil
}

func (s *Service) List(ctx context.Context) ([]customerdomain.Customer, error) {
	return s.customers.Find(ctx)
}

func (s *Service) UpdateBillingStartDay(ctx context.Context, id string, day int) (customerdomain.Customer, error) {
	if day < 1 || day > 31 {
		return customerdomain.Customer{}, cycledomain.ErrInvalidBillingStartDay
	}

	customer, err := s.GetByID(ctx, id)
	if err != nil {
		return customerdomain.Customer{}, err
	}

	customer.BillingStartDay = day
	if err := s.customers.Save(ctx, &customer); err != nil {
		return customerdomain.Customer{}, err
	}

	s.log.Info("billing start day updated",
		zap.String("customer_id", customer.ID.String()),
		zap.Int("billing_start_day", day),
	)
	return customer, nil
}

func parseID(value string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(value))
}
