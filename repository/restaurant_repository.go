package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/haiki1233/food-delivery-backend/entity"
	"github.com/haiki1233/food-delivery-backend/pkg/listquery"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// ListFields is the closed set of query keys the listing endpoint accepts,
// mapped onto their columns. Anything else is dropped at parse time.
var ListFields = map[string]bool{
	"name":          true,
	"cuisine":       true,
	"ratingAverage": true,
	"isOpen":        true,
}

var listColumns = map[string]string{
	"name":          "name",
	"cuisine":       "cuisine",
	"ratingAverage": "rating_average",
	"isOpen":        "is_open",
	"createdAt":     "created_at",
}

var sqlOps = map[listquery.Op]string{
	listquery.OpEq:  "=",
	listquery.OpGt:  ">",
	listquery.OpGte: ">=",
	listquery.OpLt:  "<",
	listquery.OpLte: "<=",
}

// List translates the filter AST into store predicates and executes it.
// Default sort is newest-first; pagination skips (page-1)*limit rows.
func (r *RestaurantRepository) List(q listquery.Query) ([]entity.Restaurant, error) {
	db := r.DB.Model(&entity.Restaurant{})

	for _, f := range q.Filters {
		col, ok := listColumns[f.Field]
		if !ok {
			continue
		}
		db = db.Where(col+" "+sqlOps[f.Op]+" ?", f.Value)
	}

	if len(q.Sort) == 0 {
		db = db.Order("created_at DESC")
	} else {
		parts := make([]string, 0, len(q.Sort))
		for _, s := range q.Sort {
			col, ok := listColumns[s.Field]
			if !ok {
				continue
			}
			if s.Desc {
				col += " DESC"
			}
			parts = append(parts, col)
		}
		if len(parts) > 0 {
			db = db.Order(strings.Join(parts, ", "))
		}
	}

	if len(q.Fields) > 0 {
		cols := []string{"id"}
		for _, f := range q.Fields {
			if col, ok := listColumns[f]; ok {
				cols = append(cols, col)
			}
		}
		db = db.Select(cols)
	}

	var rests []entity.Restaurant
	err := db.Offset(q.Offset()).Limit(q.Limit).Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Update(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}

// FindAll feeds the geo search, which filters by distance in the service.
func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Find(&rests).Error
	return rests, err
}
