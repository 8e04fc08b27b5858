package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"evorgs/src/models"
	"evorgs/src/types"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("service not found")
	ErrServiceUnavailable = errors.New("service is not available for booking")
)

// ServiceDescriptor is the single shape the four catalogs are reconciled
// into. Nothing outside this package inspects catalog-specific fields.
type ServiceDescriptor struct {
	Name        string            `json:"name"`
	BasePrice   float64           `json:"base_price"`
	PricingUnit types.PricingUnit `json:"pricing_unit"`
	VendorID    uint              `json:"vendor_id"`
	IsAvailable bool              `json:"is_available"`
}

type Resolver interface {
	Resolve(ctx context.Context, serviceType types.ServiceType, serviceID uint) (*ServiceDescriptor, error)
}

const cacheTTL = 5 * time.Minute

// GormResolver looks a (type, id) pair up in exactly the catalog the type
// names; it never probes the other three. Descriptors are cached in redis
// with a short TTL; cache failures fall back to the database.
type GormResolver struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewResolver(db *gorm.DB, rdb *redis.Client) *GormResolver {
	return &GormResolver{db: db, rdb: rdb}
}

func (r *GormResolver) Resolve(ctx context.Context, serviceType types.ServiceType, serviceID uint) (*ServiceDescriptor, error) {
	desc, ok := r.fromCache(ctx, serviceType, serviceID)
	if !ok {
		var err error
		desc, err = r.lookup(ctx, serviceType, serviceID)
		if err != nil {
			return nil, err
		}
		r.toCache(ctx, serviceType, serviceID, desc)
	}
	if !desc.IsAvailable {
		return nil, ErrServiceUnavailable
	}
	return desc, nil
}

func (r *GormResolver) lookup(ctx context.Context, serviceType types.ServiceType, serviceID uint) (*ServiceDescriptor, error) {
	tx := r.db.WithContext(ctx)
	switch serviceType {
	case types.SERVICE_VENUE:
		var v models.Venue
		if err := tx.Where(&models.Venue{ID: serviceID}).First(&v).Error; err != nil {
			return nil, notFoundOr(err)
		}
		return &ServiceDescriptor{Name: v.Name, BasePrice: v.PricePerEvent, PricingUnit: types.PRICE_PER_EVENT, VendorID: v.VendorID, IsAvailable: v.IsAvailable}, nil
	case types.SERVICE_FARMHOUSE:
		var f models.FarmHouse
		if err := tx.Where(&models.FarmHouse{ID: serviceID}).First(&f).Error; err != nil {
			return nil, notFoundOr(err)
		}
		return &ServiceDescriptor{Name: f.Name, BasePrice: f.PricePerNight, PricingUnit: types.PRICE_PER_NIGHT, VendorID: f.VendorID, IsAvailable: f.IsAvailable}, nil
	case types.SERVICE_CATERING:
		var c models.CateringPackage
		if err := tx.Where(&models.CateringPackage{ID: serviceID}).First(&c).Error; err != nil {
			return nil, notFoundOr(err)
		}
		return &ServiceDescriptor{Name: c.Name, BasePrice: c.PricePerGuest, PricingUnit: types.PRICE_PER_GUEST, VendorID: c.VendorID, IsAvailable: c.IsAvailable}, nil
	case types.SERVICE_PHOTOGRAPHY:
		var p models.PhotographyPackage
		if err := tx.Where(&models.PhotographyPackage{ID: serviceID}).First(&p).Error; err != nil {
			return nil, notFoundOr(err)
		}
		return &ServiceDescriptor{Name: p.Name, BasePrice: p.PackagePrice, PricingUnit: types.PRICE_PER_PACKAGE, VendorID: p.VendorID, IsAvailable: p.IsAvailable}, nil
	default:
		return nil, ErrNotFound
	}
}

func cacheKey(serviceType types.ServiceType, serviceID uint) string {
	return fmt.Sprintf("catalog:%s:%d", serviceType, serviceID)
}

func (r *GormResolver) fromCache(ctx context.Context, serviceType types.ServiceType, serviceID uint) (*ServiceDescriptor, bool) {
	if r.rdb == nil {
		return nil, false
	}
	raw, err := r.rdb.Get(ctx, cacheKey(serviceType, serviceID)).Result()
	if err == redis.Nil {
		return nil, false
	} else if err != nil {
		log.Printf("[catalog] cache read failed: %s\n", err.Error())
		return nil, false
	}
	var desc ServiceDescriptor
	if err := json.Unmarshal([]byte(raw), &desc); err != nil {
		log.Printf("[catalog] stale cache entry dropped: %s\n", err.Error())
		return nil, false
	}
	return &desc, true
}

func (r *GormResolver) toCache(ctx context.Context, serviceType types.ServiceType, serviceID uint, desc *ServiceDescriptor) {
	if r.rdb == nil {
		return
	}
	raw, err := json.Marshal(desc)
	if err != nil {
		return
	}
	if err := r.rdb.Set(ctx, cacheKey(serviceType, serviceID), raw, cacheTTL).Err(); err != nil {
		log.Printf("[catalog] cache write failed: %s\n", err.Error())
	}
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Static is a map-backed Resolver for tests and seeding.
type Static map[string]*ServiceDescriptor

func (s Static) Resolve(_ context.Context, serviceType types.ServiceType, serviceID uint) (*ServiceDescriptor, error) {
	desc, ok := s[cacheKey(serviceType, serviceID)]
	if !ok {
		return nil, ErrNotFound
	}
	if !desc.IsAvailable {
		return nil, ErrServiceUnavailable
	}
	d := *desc
	return &d, nil
}

func (s Static) Add(serviceType types.ServiceType, serviceID uint, desc *ServiceDescriptor) {
	s[cacheKey(serviceType, serviceID)] = desc
}
