package service

import (
	"context"
	"errors"
	"fmt"

	"ehr-vaccine-service/config"
	"ehr-vaccine-service/internal/converter"
	"ehr-vaccine-service/internal/domain/dosing"
	"ehr-vaccine-service/internal/domain/entity"
	"ehr-vaccine-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidReferenceData = errors.New("invalid reference data")

type SeedService interface {
	Seed(ctx context.Context) error
}

type seedService struct {
	db           *gorm.DB
	log          *logrus.Logger
	cfg          config.SeedConfig
	roleRepo     repository.RoleRepository
	userRepo     repository.UserRepository
	scheduleRepo repository.VaccineScheduleRepository
	cvxRepo      repository.CVXCodeRepository
	schedules    []entity.VaccineSchedule
}

func NewSeedService(
	db *gorm.DB,
	log *logrus.Logger,
	cfg config.SeedConfig,
	roleRepo repository.RoleRepository,
	userRepo repository.UserRepository,
	scheduleRepo repository.VaccineScheduleRepository,
	cvxRepo repository.CVXCodeRepository,
) SeedService {
	return &seedService{
		db:           db,
		log:          log,
		cfg:          cfg,
		roleRepo:     roleRepo,
		userRepo:     userRepo,
		scheduleRepo: scheduleRepo,
		cvxRepo:      cvxRepo,
		schedules:    ReferenceSchedules(),
	}
}

// ValidateSchedules rejects a dosing table the resolver could not answer
// from deterministically.
func ValidateSchedules(schedules []entity.VaccineSchedule) error {
	entries, err := converter.SchedulesToEntries(schedules)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidReferenceData, err)
	}
	if err := dosing.ValidateTable(entries); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidReferenceData, err)
	}
	return nil
}

func (s *seedService) Seed(ctx context.Context) error {
	if err := ValidateSchedules(s.schedules); err != nil {
		s.log.Warnf("Failed to validate reference schedules: %+v", err)
		return err
	}

	tx := s.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := s.roleRepo.Upsert(ctx, tx, entity.DefaultRoles); err != nil {
		s.log.Warnf("Failed to seed roles: %+v", err)
		return err
	}

	if err := s.scheduleRepo.CreateBatch(ctx, tx, s.schedules); err != nil {
		s.log.Warnf("Failed to seed vaccine schedules: %+v", err)
		return err
	}

	if err := s.cvxRepo.Upsert(ctx, tx, ReferenceCVXCodes()); err != nil {
		s.log.Warnf("Failed to seed CVX codes: %+v", err)
		return err
	}

	if err := s.seedAdmin(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		s.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	s.log.WithField("schedules", len(s.schedules)).Info("Reference data seeded")
	return nil
}

// seedAdmin creates the admin account once, and only when a password is configured.
func (s *seedService) seedAdmin(ctx context.Context, tx *gorm.DB) error {
	if s.cfg.AdminPassword == "" {
		s.log.Info("SEED_ADMIN_PASSWORD not set, skipping admin user")
		return nil
	}

	existing, err := s.userRepo.FindByUsername(ctx, tx, s.cfg.AdminUsername)
	if err != nil {
		s.log.Warnf("Failed to find admin user: %+v", err)
		return err
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		s.log.Warnf("Failed to hash password: %+v", err)
		return err
	}

	admin := &entity.User{
		RoleID:   entity.RoleIDAdmin,
		Username: s.cfg.AdminUsername,
		Password: string(hashedPassword),
		FullName: "Administrator",
	}
	if err := s.userRepo.Create(ctx, tx, admin); err != nil {
		s.log.Warnf("Failed to create admin user: %+v", err)
		return err
	}
	return nil
}
