package commands

import (
	"github.com/spf13/cobra"

	"gosiwon-finder/dataset"
	"gosiwon-finder/models"
	"gosiwon-finder/services"
)

// queryFlags are the filter and sort flags shared by search and export.
type queryFlags struct {
	term         string
	region       string
	station      string
	university   string
	priceRange   string
	minPrice     int
	maxPrice     int
	promotion    string
	availability string
	sort         string
}

func (f *queryFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.term, "query", "q", "", "Search term matched against name, location and tags")
	fs.StringVar(&f.region, "region", models.All, "District the location must contain")
	fs.StringVar(&f.station, "station", models.All, "Nearest subway station")
	fs.StringVar(&f.university, "university", models.All, "Nearby university")
	fs.StringVar(&f.priceRange, "price-range", models.All, "Price band label, e.g. \"30~40만원\"")
	fs.IntVar(&f.minPrice, "min-price", 0, "Minimum monthly price in won")
	fs.IntVar(&f.maxPrice, "max-price", 0, "Maximum monthly price in won (0 = no limit)")
	fs.StringVar(&f.promotion, "promotion", models.All, "Promotion type (discount, free_deposit, first_month_free, referral_bonus, early_bird)")
	fs.StringVar(&f.availability, "availability", models.All, "Quick filter (many_rooms, few_rooms, scheduled_vacancy, urgent)")
	fs.StringVar(&f.sort, "sort", string(models.SortByRating), "Sort by rating, availability, discount or urgency")
}

func (f *queryFlags) criteria() models.Criteria {
	c := services.DefaultCriteria()
	c.SearchTerm = f.term
	c.Region = f.region
	c.SubwayStation = f.station
	c.University = f.university
	c.PriceRange = dataset.PriceRangeByLabel(f.priceRange)
	if f.minPrice > 0 {
		c.PriceRange.Min = f.minPrice
	}
	if f.maxPrice > 0 {
		c.PriceRange.Max = f.maxPrice
	}
	c.PromotionCategory = services.ParsePromotionType(f.promotion)
	c.AvailabilityCategory = services.ParseAvailabilityCategory(f.availability)
	c.SortStrategy = services.ParseSortStrategy(f.sort)
	return c
}
