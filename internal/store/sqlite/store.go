// Package sqlite stores the profile in a SQLite database laid out like the
// hosted profiles/links schema, using gorm and the pure-Go glebarez driver.
package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/store"
)

const (
	// ProfileID is the primary key of the single stored profile.
	ProfileID = "default"
	// settingShareURL is the settings key of the share URL.
	settingShareURL = "share_url"
)

// Store is the gorm implementation of store.Store.
type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

// Open opens (or creates) the database at path and migrates the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}

	if err := db.AutoMigrate(&ProfileRow{}, &LinkRow{}, &SettingRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate sqlite schema: %w", err)
	}

	return &Store{db: db}, nil
}

// LoadProfile reads the profile row and its links in display order.
func (s *Store) LoadProfile(ctx context.Context) (domain.Profile, error) {
	db := s.db.WithContext(ctx)

	var row ProfileRow
	if err := db.First(&row, "id = ?", ProfileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Profile{}, store.ErrNotFound
		}
		return domain.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	var rows []LinkRow
	err := db.Where("profile_id = ?", ProfileID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Find(&rows).Error
	if err != nil {
		return domain.Profile{}, fmt.Errorf("failed to get links: %w", err)
	}

	p := domain.DefaultProfile()
	p.Name = row.Name
	p.Bio = row.Bio
	if row.Theme != "" {
		p.Theme = domain.Theme(row.Theme)
	}
	if row.AccentColor != "" {
		p.AccentColor = row.AccentColor
	}
	if row.Role != "" {
		p.Role = domain.Role(row.Role)
	}
	p.Links = make([]domain.Link, 0, len(rows))
	for _, r := range rows {
		p.Links = append(p.Links, domain.Link{ID: r.ID, Title: r.Title, URL: r.URL, Icon: r.Icon})
	}
	return p, nil
}

// SaveProfile replaces the profile row and all of its links in one
// transaction.
func (s *Store) SaveProfile(ctx context.Context, p domain.Profile) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := ProfileRow{
			ID:          ProfileID,
			Name:        p.Name,
			Bio:         p.Bio,
			Theme:       string(p.Theme),
			AccentColor: p.AccentColor,
			Role:        string(p.Role),
		}
		// Upsert without touching created_at
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "bio", "theme", "accent_color", "role", "updated_at",
			}),
		}).Create(&row).Error
		if err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		if err := tx.Where("profile_id = ?", ProfileID).Delete(&LinkRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear links: %w", err)
		}
		if len(p.Links) == 0 {
			return nil
		}

		rows := make([]LinkRow, 0, len(p.Links))
		for i, l := range p.Links {
			rows = append(rows, LinkRow{
				ID:        l.ID,
				ProfileID: ProfileID,
				Title:     l.Title,
				URL:       l.URL,
				Icon:      l.Icon,
				Order:     i,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to save links: %w", err)
		}
		return nil
	})
}

// LoadShareURL returns the cached share URL.
func (s *Store) LoadShareURL(ctx context.Context) (string, error) {
	var row SettingRow
	if err := s.db.WithContext(ctx).First(&row, "key = ?", settingShareURL).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", store.ErrNotFound
		}
		return "", fmt.Errorf("failed to get share url: %w", err)
	}
	return row.Value, nil
}

// SaveShareURL stores the share URL unless one is already stored.
func (s *Store) SaveShareURL(ctx context.Context, url string) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&SettingRow{Key: settingShareURL, Value: url}).Error
	if err != nil {
		return fmt.Errorf("failed to save share url: %w", err)
	}
	return nil
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the database.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
