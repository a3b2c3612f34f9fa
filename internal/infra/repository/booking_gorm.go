package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/civil"
	domain "github.com/ZenKhalil/ExamProject-Barbershop-app/internal/domain/booking"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/httperr"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *BookingGormRepository) GetBarberByID(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		return nil, err
	}
	return &barber, nil
}

func (r *BookingGormRepository) ListBarbers(
	ctx context.Context,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

// --------------------------------------------------
// Service catalog
// --------------------------------------------------

func (r *BookingGormRepository) GetServicesByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Booking (create / delete)
// --------------------------------------------------

// dateLockKey packs a calendar date into an int4 for the advisory lock
// pair (barber, date).
func dateLockKey(d civil.Date) int32 {
	return int32(d.Year*10000 + d.Month*100 + d.Day)
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
	addOnServiceIDs []uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Serialize concurrent writers on the same (barber, date) so the
		// overlap check below cannot race with another insert. SQLite
		// (tests) already serializes writing transactions.
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec(
				"SELECT pg_advisory_xact_lock(?, ?)",
				int32(b.BarberID),
				dateLockKey(b.BookingDate),
			).Error; err != nil {
				return err
			}
		}

		var unavailable int64
		if err := tx.Model(&models.UnavailableDate{}).
			Where("barber_id = ? AND date = ?", b.BarberID, b.BookingDate).
			Count(&unavailable).Error; err != nil {
			return err
		}
		if unavailable > 0 {
			return httperr.ErrBusiness("barber_unavailable")
		}

		var conflicts []models.Booking
		if err := tx.
			Where(
				"barber_id = ? AND booking_date = ? AND booking_time < ? AND end_time > ?",
				b.BarberID, b.BookingDate, b.EndTime, b.BookingTime,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		if err := tx.Omit(clause.Associations).Create(b).Error; err != nil {
			if httperr.IsUniqueViolation(err) || httperr.IsExclusionConflict(err) {
				return httperr.ErrBusiness("slot_taken")
			}
			return err
		}

		for _, serviceID := range addOnServiceIDs {
			line := models.BookingService{
				BookingID: b.ID,
				ServiceID: serviceID,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
			b.Services = append(b.Services, line)
		}

		return nil
	})
}

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Services").
		First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Order("booking_date ASC, booking_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.
			Where("booking_id = ?", id).
			Delete(&models.BookingService{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Booking{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("booking_not_found")
		}
		return nil
	})
}

// --------------------------------------------------
// Booking (reads)
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	barberID uint,
	start civil.Date,
	end civil.Date,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND booking_date >= ? AND booking_date <= ?",
			barberID, start, end,
		).
		Order("booking_date ASC, booking_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Unavailable dates
// --------------------------------------------------

func (r *BookingGormRepository) InsertUnavailableDates(
	ctx context.Context,
	barberID uint,
	dates []civil.Date,
) (int64, error) {

	return insertUnavailableDates(r.db.WithContext(ctx), barberID, dates)
}

func insertUnavailableDates(
	tx *gorm.DB,
	barberID uint,
	dates []civil.Date,
) (int64, error) {

	if len(dates) == 0 {
		return 0, nil
	}

	rows := make([]models.UnavailableDate, 0, len(dates))
	for _, d := range dates {
		rows = append(rows, models.UnavailableDate{
			BarberID: barberID,
			Date:     d,
		})
	}

	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *BookingGormRepository) DeleteUnavailableRange(
	ctx context.Context,
	barberID uint,
	start civil.Date,
	end civil.Date,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND date >= ? AND date <= ?",
			barberID, start, end,
		).
		Delete(&models.UnavailableDate{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *BookingGormRepository) ReplaceUnavailableRange(
	ctx context.Context,
	barberID uint,
	oldStart civil.Date,
	oldEnd civil.Date,
	newDates []civil.Date,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.
			Where(
				"barber_id = ? AND date >= ? AND date <= ?",
				barberID, oldStart, oldEnd,
			).
			Delete(&models.UnavailableDate{}).Error; err != nil {
			return err
		}

		_, err := insertUnavailableDates(tx, barberID, newDates)
		return err
	})
}

func (r *BookingGormRepository) ListUnavailableDates(
	ctx context.Context,
	barberID uint,
) ([]civil.Date, error) {

	var rows []models.UnavailableDate
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	dates := make([]civil.Date, 0, len(rows))
	for _, row := range rows {
		dates = append(dates, row.Date)
	}
	return dates, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
