package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"gosiwon-finder/dataset"
	"gosiwon-finder/models"
	"gosiwon-finder/services"
	"gosiwon-finder/utils"
)

// PropertyController serves read-only queries over a loaded catalog.
type PropertyController struct {
	catalog *services.Catalog
	logger  *utils.Logger
}

func NewPropertyController(catalog *services.Catalog, logger *utils.Logger) *PropertyController {
	return &PropertyController{catalog: catalog, logger: logger}
}

// propertyDetail is a property with the labels the detail view renders.
type propertyDetail struct {
	*models.PropertyRecord
	Category              models.AvailabilityCategory `json:"availabilityCategory,omitempty"`
	Status                models.Badge                `json:"availabilityStatus"`
	PromotionBadge        *models.Badge               `json:"promotionBadge,omitempty"`
	ScheduledVacancyBadge *models.Badge               `json:"scheduledVacancyBadge,omitempty"`
}

type optionsResponse struct {
	Regions                []string                      `json:"regions"`
	SubwayStations         []string                      `json:"subwayStations"`
	Universities           []string                      `json:"universities"`
	PriceRanges            []models.PriceRange           `json:"priceRanges"`
	PromotionTypes         []models.PromotionType        `json:"promotionTypes"`
	AvailabilityCategories []models.AvailabilityCategory `json:"availabilityCategories"`
	SortStrategies         []models.SortStrategy         `json:"sortStrategies"`
}

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (pc *PropertyController) SearchProperties(c echo.Context) error {
	criteria := criteriaFromQuery(c)
	result := pc.catalog.Search(criteria)
	pc.logger.Debug("[api] search %+v matched %d properties", criteria, result.Count)
	return c.JSON(http.StatusOK, result)
}

func (pc *PropertyController) GetStats(c echo.Context) error {
	result := pc.catalog.Search(criteriaFromQuery(c))
	return c.JSON(http.StatusOK, result.Stats)
}

func (pc *PropertyController) GetProperty(c echo.Context) error {
	id := c.Param("id")
	record, ok := pc.catalog.Get(id)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
	}
	return c.JSON(http.StatusOK, propertyDetail{
		PropertyRecord:        record,
		Category:              services.Classify(record),
		Status:                services.AvailabilityStatus(record),
		PromotionBadge:        services.PromotionBadge(record),
		ScheduledVacancyBadge: services.ScheduledVacancyBadge(record),
	})
}

func (pc *PropertyController) ListAvailableRooms(c echo.Context) error {
	rooms := pc.catalog.AvailableRooms()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"rooms": rooms,
		"count": len(rooms),
	})
}

func GetOptions(c echo.Context) error {
	return c.JSON(http.StatusOK, optionsResponse{
		Regions:        dataset.Regions,
		SubwayStations: dataset.SubwayStations,
		Universities:   dataset.Universities,
		PriceRanges:    dataset.PriceRanges,
		PromotionTypes: []models.PromotionType{
			models.PromotionDiscount, models.PromotionFreeDeposit, models.PromotionFirstMonthFree,
			models.PromotionReferralBonus, models.PromotionEarlyBird,
		},
		AvailabilityCategories: []models.AvailabilityCategory{
			models.AvailabilityManyRooms, models.AvailabilityFewRooms,
			models.AvailabilityScheduledVacancy, models.AvailabilityUrgent,
		},
		SortStrategies: []models.SortStrategy{
			models.SortByRating, models.SortByAvailability, models.SortByDiscount, models.SortByUrgency,
		},
	})
}

// criteriaFromQuery builds criteria from query parameters. Missing, unknown
// or malformed values leave the corresponding filter disabled.
func criteriaFromQuery(c echo.Context) models.Criteria {
	criteria := services.DefaultCriteria()

	criteria.SearchTerm = c.QueryParam("q")
	if region := c.QueryParam("region"); region != "" {
		criteria.Region = region
	}
	if station := c.QueryParam("station"); station != "" {
		criteria.SubwayStation = station
	}
	if university := c.QueryParam("university"); university != "" {
		criteria.University = university
	}
	if label := c.QueryParam("price_range"); label != "" {
		criteria.PriceRange = dataset.PriceRangeByLabel(label)
	}
	if priceMin := c.QueryParam("min_price"); priceMin != "" {
		if min, err := strconv.Atoi(priceMin); err == nil && min > 0 {
			criteria.PriceRange.Min = min
		}
	}
	if priceMax := c.QueryParam("max_price"); priceMax != "" {
		if max, err := strconv.Atoi(priceMax); err == nil && max > 0 {
			criteria.PriceRange.Max = max
		}
	}
	if promotion := c.QueryParam("promotion"); promotion != "" {
		criteria.PromotionCategory = services.ParsePromotionType(promotion)
	}
	if availability := c.QueryParam("availability"); availability != "" {
		criteria.AvailabilityCategory = services.ParseAvailabilityCategory(availability)
	}
	if sort := c.QueryParam("sort"); sort != "" {
		criteria.SortStrategy = services.ParseSortStrategy(sort)
	}
	return criteria
}
