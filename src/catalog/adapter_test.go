package catalog

import (
	"context"
	"evorgs/src/types"
	"log"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockResolver(t *testing.T) (*GormResolver, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		ConnPool:               db,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}
	return NewResolver(gormDB, nil), mock
}

func TestGormResolver(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves a venue", func(t *testing.T) {
		resolver, mock := newMockResolver(t)
		rows := sqlmock.NewRows([]string{"id", "name", "price_per_event", "vendor_id", "is_available"}).
			AddRow(1, "Rosewood Hall", 1500.0, 7, true)
		mock.ExpectQuery(`SELECT (.+) FROM "venues"`).WillReturnRows(rows)

		desc, err := resolver.Resolve(ctx, types.SERVICE_VENUE, 1)
		require.NoError(t, err)
		assert.Equal(t, "Rosewood Hall", desc.Name)
		assert.Equal(t, 1500.0, desc.BasePrice)
		assert.Equal(t, types.PRICE_PER_EVENT, desc.PricingUnit)
		assert.Equal(t, uint(7), desc.VendorID)
	})

	t.Run("resolves a catering package per guest", func(t *testing.T) {
		resolver, mock := newMockResolver(t)
		rows := sqlmock.NewRows([]string{"id", "name", "price_per_guest", "vendor_id", "is_available"}).
			AddRow(3, "Royal Feast", 20.0, 9, true)
		mock.ExpectQuery(`SELECT (.+) FROM "catering_packages"`).WillReturnRows(rows)

		desc, err := resolver.Resolve(ctx, types.SERVICE_CATERING, 3)
		require.NoError(t, err)
		assert.Equal(t, types.PRICE_PER_GUEST, desc.PricingUnit)
		assert.Equal(t, 20.0, desc.BasePrice)
	})

	t.Run("rejects an unavailable service", func(t *testing.T) {
		resolver, mock := newMockResolver(t)
		rows := sqlmock.NewRows([]string{"id", "name", "price_per_night", "vendor_id", "is_available"}).
			AddRow(2, "Old Mill", 650.0, 4, false)
		mock.ExpectQuery(`SELECT (.+) FROM "farm_houses"`).WillReturnRows(rows)

		_, err := resolver.Resolve(ctx, types.SERVICE_FARMHOUSE, 2)
		assert.ErrorIs(t, err, ErrServiceUnavailable)
	})

	t.Run("translates a missing row", func(t *testing.T) {
		resolver, mock := newMockResolver(t)
		mock.ExpectQuery(`SELECT (.+) FROM "photography_packages"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := resolver.Resolve(ctx, types.SERVICE_PHOTOGRAPHY, 42)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects an unknown service type without touching the database", func(t *testing.T) {
		resolver, _ := newMockResolver(t)
		_, err := resolver.Resolve(ctx, types.ServiceType("karaoke"), 1)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStaticResolver(t *testing.T) {
	ctx := context.Background()
	static := Static{}
	static.Add(types.SERVICE_VENUE, 1, &ServiceDescriptor{Name: "Rosewood Hall", BasePrice: 1500, PricingUnit: types.PRICE_PER_EVENT, VendorID: 7, IsAvailable: true})
	static.Add(types.SERVICE_VENUE, 2, &ServiceDescriptor{Name: "Old Mill", BasePrice: 650, PricingUnit: types.PRICE_PER_EVENT, VendorID: 4, IsAvailable: false})

	desc, err := static.Resolve(ctx, types.SERVICE_VENUE, 1)
	require.NoError(t, err)
	assert.Equal(t, "Rosewood Hall", desc.Name)

	_, err = static.Resolve(ctx, types.SERVICE_VENUE, 2)
	assert.ErrorIs(t, err, ErrServiceUnavailable)

	_, err = static.Resolve(ctx, types.SERVICE_VENUE, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}
