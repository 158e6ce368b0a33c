package repository

import (
	"context"
	"time"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormTimezoneRepository implements the TimezoneRepository interface
type GormTimezoneRepository struct {
	db *gorm.DB
}

// NewGormTimezoneRepository creates a new GORM timezone repository
func NewGormTimezoneRepository(db *gorm.DB) repository.TimezoneRepository {
	return &GormTimezoneRepository{
		db: db,
	}
}

// Timezonelist GORM model for database mapping
type Timezonelist struct {
	gorm.Model
	ID          uint           `gorm:"primaryKey"`
	AirportCode string         `gorm:"column:airportcode;unique"`
	AirportName string         `gorm:"column:airport_name"`
	CityCode    string         `gorm:"column:citycode"`
	CityName    string         `gorm:"column:cityname"`
	GmtTz       string         `gorm:"column:gmttz"`
	TzName      string         `gorm:"column:tzname"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the default table name
func (Timezonelist) TableName() string {
	return "m_timezone_list"
}

// GetByAirportCode finds a timezone by airport code
func (r *GormTimezoneRepository) GetByAirportCode(ctx context.Context, code string) (*entity.Timezone, error) {
	var timezone Timezonelist
	result := r.db.WithContext(ctx).Unscoped().Where("airportcode = ?", code).First(&timezone)

	if result.Error != nil {
		return nil, result.Error
	}

	return toTimezoneEntity(&timezone), nil
}

// ListAll returns every known airport timezone row, ordered by the
// zone's GMT offset then airport code, for the manual-entry dropdown.
func (r *GormTimezoneRepository) ListAll(ctx context.Context) ([]entity.Timezone, error) {
	var rows []Timezonelist
	result := r.db.WithContext(ctx).Order("gmttz, airportcode").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	timezones := make([]entity.Timezone, 0, len(rows))
	for i := range rows {
		timezones = append(timezones, *toTimezoneEntity(&rows[i]))
	}
	return timezones, nil
}

func toTimezoneEntity(row *Timezonelist) *entity.Timezone {
	return &entity.Timezone{
		ID:          row.ID,
		AirportCode: row.AirportCode,
		AirportName: row.AirportName,
		CityCode:    row.CityCode,
		CityName:    row.CityName,
		GmtTz:       row.GmtTz,
		TzName:      row.TzName,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		DeletedAt:   row.DeletedAt,
	}
}
