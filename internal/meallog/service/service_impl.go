package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	mealdomain "github.com/tiffintrack/tiffintrack/internal/meal/domain"
	meallogdomain "github.com/tiffintrack/tiffintrack/internal/meallog/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID *snowflake.Node
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
}

func NewService(p ServiceParam) meallogdomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("meallog.service"),

		genID: p.GenID,
	}
}

func (s *Service) Upsert(ctx context.Context, customerID snowflake.ID, date string, record mealdomain.DayRecord) error {
	if _, err := time.Parse(mealdomain.DateKey, date); err != nil {
		return meallogdomain.ErrInvalidDate
	}
	if err := record.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	return s.db.WithContext(ctx).Exec(
		`INSERT INTO meal_entries (id, customer_id, date, breakfast, lunch, dinner, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (customer_id, date) DO UPDATE SET
			breakfast = excluded.breakfast,
			lunch = excluded.lunch,
			dinner = excluded.dinner,
			updated_at = excluded.updated_at`,
		s.genID.Generate(),
		customerID,
		date,
		record.Breakfast,
		record.Lunch,
		record.Dinner,
		now,
		now,
	).Error
}

func (s *Service) Range(ctx context.Context, customerID snowflake.ID, from, to string) (mealdomain.Log, error) {
	if _, err := time.Parse(mealdomain.DateKey, from); err != nil {
		return nil, meallogdomain.ErrInvalidDate
	}
	if _, err := time.Parse(mealdomain.DateKey, to); err != nil {
		return nil, meallogdomain.ErrInvalidDate
	}

	var entries []meallogdomain.Entry
	err := s.db.WithContext(ctx).Raw(
		`SELECT id, customer_id, date, breakfast, lunch, dinner, created_at, updated_at
		 FROM meal_entries
		 WHERE customer_id = ? AND date >= ? AND date <= ?`,
		customerID,
		from,
		to,
	).Scan(&entries).Error
	if err != nil {
		return nil, err
	}

	log := make(mealdomain.Log, len(entries))
	for _, entry := range entries {
		log[entry.Date] = mealdomain.DayRecord{
			Breakfast: entry.Breakfast,
			Lunch:     entry.Lunch,
			Dinner:    entry.Dinner,
		}
	}
	return log, nil
}
