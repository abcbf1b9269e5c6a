package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/0xgaut85/r1x-pay/internal/pkg/database"
	"github.com/0xgaut85/r1x-pay/internal/pkg/logger"
	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
)

const (
	serviceCachePrefix = "service:"
	serviceCacheTTL    = 60 * time.Second
)

// ServiceRepo is the service catalog store. Single-service reads go through a
// short-lived Redis cache because every quote and every verification loads the
// service row; cache failures fall back to Postgres silently.
type ServiceRepo struct {
	cfg    *models.Config
	db     *sqlx.DB
	cache  *database.RedisClient
	logger *logger.ZapLogger
}

// NewServiceRepo creates a new service repository instance
func NewServiceRepo(cfg *models.Config, db *sqlx.DB, cache *database.RedisClient, l *logger.ZapLogger) *ServiceRepo {
	return &ServiceRepo{
		cfg:    cfg,
		db:     db,
		cache:  cache,
		logger: l,
	}
}

// CreateService registers a new priced resource.
func (r *ServiceRepo) CreateService(ctx context.Context, svc *models.Service) error {
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	now := time.Now()
	svc.CreatedAt = now
	svc.UpdatedAt = now

	query := `
		INSERT INTO services (
			id, name, category, merchant_address, network, chain_id,
			token_address, token_symbol, price_minor, price_display, active,
			upstream_url, created_at, updated_at
		) VALUES (:id, :name, :category, :merchant_address, :network, :chain_id,
			:token_address, :token_symbol, :price_minor, :price_display, :active,
			:upstream_url, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, svc); err != nil {
		return fmt.Errorf("failed to insert service: %w", err)
	}
	return nil
}

// GetService returns a service by id, read through the cache.
func (r *ServiceRepo) GetService(ctx context.Context, id string) (*models.Service, error) {
	if svc := r.fromCache(ctx, id); svc != nil {
		return svc, nil
	}

	query := `
		SELECT id, name, category, merchant_address, network, chain_id,
			token_address, token_symbol, price_minor, price_display, active,
			upstream_url, created_at, updated_at
		FROM services
		WHERE id = $1
	`

	var svc models.Service
	if err := r.db.GetContext(ctx, &svc, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("service not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	r.toCache(ctx, &svc)
	return &svc, nil
}

// ListServices returns catalog entries, optionally only active ones.
func (r *ServiceRepo) ListServices(ctx context.Context, activeOnly bool) ([]models.Service, error) {
	query := `
		SELECT id, name, category, merchant_address, network, chain_id,
			token_address, token_symbol, price_minor, price_display, active,
			upstream_url, created_at, updated_at
		FROM services
	`
	if activeOnly {
		query += ` WHERE active = true`
	}
	query += ` ORDER BY created_at DESC`

	services := []models.Service{}
	if err := r.db.SelectContext(ctx, &services, query); err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

// UpdateService applies the mutable fields and invalidates the cache entry.
func (r *ServiceRepo) UpdateService(ctx context.Context, id string, price *int64, priceDisplay *string, active *bool) (*models.Service, error) {
	sets := []string{"updated_at = :updated_at"}
	args := map[string]interface{}{
		"id":         id,
		"updated_at": time.Now(),
	}
	if price != nil && priceDisplay != nil {
		sets = append(sets, "price_minor = :price_minor", "price_display = :price_display")
		args["price_minor"] = *price
		args["price_display"] = *priceDisplay
	}
	if active != nil {
		sets = append(sets, "active = :active")
		args["active"] = *active
	}

	query := `UPDATE services SET ` + strings.Join(sets, ", ") + ` WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return nil, fmt.Errorf("service not found: %s", id)
	}

	if r.cache != nil {
		if err := r.cache.Delete(ctx, serviceCachePrefix+id); err != nil {
			r.logger.Warn("failed to invalidate service cache",
				logger.String("service_id", id),
				logger.Err(err))
		}
	}

	return r.GetService(ctx, id)
}

func (r *ServiceRepo) fromCache(ctx context.Context, id string) *models.Service {
	if r.cache == nil {
		return nil
	}
	raw, err := r.cache.Get(ctx, serviceCachePrefix+id)
	if err != nil {
		return nil
	}
	var svc models.Service
	if err := json.Unmarshal([]byte(raw), &svc); err != nil {
		return nil
	}
	return &svc
}

func (r *ServiceRepo) toCache(ctx context.Context, svc *models.Service) {
	if r.cache == nil {
		return
	}
	raw, err := json.Marshal(svc)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, serviceCachePrefix+svc.ID, string(raw), serviceCacheTTL); err != nil {
		r.logger.Warn("failed to cache service",
			logger.String("service_id", svc.ID),
			logger.Err(err))
	}
}
