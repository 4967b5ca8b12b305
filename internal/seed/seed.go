package seed

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	customerdomain "github.com/tiffintrack/tiffintrack/internal/customer/domain"
	"gorm.io/gorm"
)

var defaultCustomers = []string{"User 1", "User 2"}

// EnsureDefaultCustomers seeds the two built-in customers on first start.
func EnsureDefaultCustomers(db *gorm.DB, genID *snowflake.Node, billingStartDay int) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&customerdomain.Customer{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for _, name := range defaultCustomers {
			customer := customerdomain.Customer{
				ID:              genID.Generate(),
				Name:            name,
				BillingStartDay: billingStartDay,
			}
			if err := tx.Create(&customer).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
