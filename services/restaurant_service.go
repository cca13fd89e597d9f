package services

import (
	"context"
	"encoding/json"
	"math"
	"strings"

	"gorm.io/gorm"

	"github.com/haiki1233/food-delivery-backend/cache"
	"github.com/haiki1233/food-delivery-backend/entity"
	"github.com/haiki1233/food-delivery-backend/pkg/apperr"
	"github.com/haiki1233/food-delivery-backend/pkg/listquery"
	"github.com/haiki1233/food-delivery-backend/repository"
)

// ListingCache is the cache-aside port for the listing read path. Failed
// lookups present as misses; the store remains authoritative.
type ListingCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte)
	InvalidateListings(ctx context.Context)
}

// Provenance tags on listing responses.
const (
	SourceCache = "cache"
	SourceDB    = "db"
)

type RestaurantService struct {
	Repo  *repository.RestaurantRepository
	Cache ListingCache
}

func NewRestaurantService(repo *repository.RestaurantRepository, c ListingCache) *RestaurantService {
	return &RestaurantService{Repo: repo, Cache: c}
}

// List is the cache-aside read path: check the cache under the canonical
// key, fall back to the store on miss, then populate the cache.
func (s *RestaurantService) List(ctx context.Context, q listquery.Query) ([]entity.Restaurant, string, error) {
	key := q.CacheKey(cache.ListingPrefix)

	if s.Cache != nil {
		if b, ok := s.Cache.Get(ctx, key); ok {
			var rests []entity.Restaurant
			if err := json.Unmarshal(b, &rests); err == nil {
				return rests, SourceCache, nil
			}
		}
	}

	rests, err := s.Repo.List(q)
	if err != nil {
		return nil, "", err
	}

	if s.Cache != nil {
		if b, err := json.Marshal(rests); err == nil {
			s.Cache.Set(ctx, key, b)
		}
	}
	return rests, SourceDB, nil
}

// Create validates and persists a restaurant, then sweeps the listing cache.
func (s *RestaurantService) Create(ctx context.Context, rest *entity.Restaurant) error {
	rest.Name = strings.TrimSpace(rest.Name)
	if rest.Name == "" {
		return apperr.Validation("restaurant name is required")
	}
	if !entity.IsValidCuisine(rest.Cuisine) {
		return apperr.Validation("invalid cuisine %q", rest.Cuisine)
	}
	if rest.RatingAverage != 0 && (rest.RatingAverage < 1 || rest.RatingAverage > 5) {
		return apperr.Validation("rating must be between 1 and 5")
	}
	if rest.Location.Type == "" {
		rest.Location.Type = "Point"
	}

	if err := s.Repo.Create(rest); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return apperr.Validation("restaurant name already exists")
		}
		return err
	}

	if s.Cache != nil {
		s.Cache.InvalidateListings(ctx)
	}
	return nil
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("restaurant not found")
		}
		return nil, err
	}
	return rest, nil
}

// Update persists restaurant changes (open/closed toggles, rating updates)
// and invalidates every cached listing.
func (s *RestaurantService) Update(ctx context.Context, rest *entity.Restaurant) error {
	if err := s.Repo.Update(rest); err != nil {
		return err
	}
	if s.Cache != nil {
		s.Cache.InvalidateListings(ctx)
	}
	return nil
}

const (
	earthRadiusKm = 6378.1
	earthRadiusMi = 3963.2
)

// Within returns restaurants inside the given radius of a point.
func (s *RestaurantService) Within(lat, lng, distance float64, unit string) ([]entity.Restaurant, error) {
	radius := earthRadiusKm
	if unit == "mi" {
		radius = earthRadiusMi
	}

	all, err := s.Repo.FindAll()
	if err != nil {
		return nil, err
	}

	out := make([]entity.Restaurant, 0)
	for _, r := range all {
		if haversine(lat, lng, r.Location.Lat, r.Location.Lng, radius) <= distance {
			out = append(out, r)
		}
	}
	return out, nil
}

func haversine(lat1, lng1, lat2, lng2, radius float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return radius * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
