package seed

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/zvz23/valuation-app-sub001/internal/store"
	"github.com/zvz23/valuation-app-sub001/internal/utils"
	"github.com/zvz23/valuation-app-sub001/pkg/types"

	"github.com/jackc/pgx/v5/pgxpool"
)

var sampleSuburbs = []string{
	"Parramatta", "Geelong", "Toowong", "Fremantle", "Glenelg",
	"Newstead", "Richmond", "Manly", "Penrith", "Ballarat",
}

var samplePurposes = []string{"mortgage", "sale", "purchase", "taxation"}

// SeedSampleRecords inserts demo valuation records so the form UI has
// data to load against a fresh database.
func SeedSampleRecords(ctx context.Context, pool *pgxpool.Pool, repo *store.RecordRepository, count int, reset bool) error {
	if count <= 0 {
		fmt.Println("Skipping sample records seed because count <= 0")
		return nil
	}

	if reset {
		_, err := pool.Exec(ctx, `DELETE FROM valuation.valuation_records WHERE overview->>'client' = 'Sample Client'`)
		if err != nil {
			return fmt.Errorf("failed to reset seeded records: %w", err)
		}
	}

	for i := 0; i < count; i++ {
		suburb := sampleSuburbs[rand.Intn(len(sampleSuburbs))]
		bedrooms := 2 + rand.Intn(4)
		siteArea := 300.0 + float64(rand.Intn(900))

		sections := map[string]any{
			"overview": types.Overview{
				JobNumber:          fmt.Sprintf("J-%04d", 1000+i),
				Client:             "Sample Client",
				ValuerName:         "A. Valuer",
				PurposeOfValuation: samplePurposes[rand.Intn(len(samplePurposes))],
			},
			"location_details": types.LocationDetails{
				Suburb: suburb,
				State:  "NSW",
			},
			"property_details": types.PropertyDetails{
				PropertyType: "house",
				Bedrooms:     &bedrooms,
			},
			"site_details": types.SiteDetails{
				SiteAreaSqm: &siteArea,
				Services:    []string{"water", "sewer", "electricity"},
			},
		}

		if _, err := repo.UpsertRecord(ctx, utils.NanoID(), sections); err != nil {
			return fmt.Errorf("failed to seed record %d: %w", i, err)
		}
	}

	return nil
}
