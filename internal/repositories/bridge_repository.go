package repositories

import (
	"context"
	"strings"

	"bridges/internal/models/db_models"
	"gorm.io/gorm"
)

// BridgeDetailRow is a bridge joined with the names of its ancestors.
type BridgeDetailRow struct {
	ID           uint
	Name         string
	RiverName    *string
	YearBuilt    *int
	BridgeType   *string
	Description  *string
	ImageURL     *string
	DistrictID   uint
	DistrictName string
	StateName    string
	CountryName  string
}

type BridgeRepository interface {
	Create(ctx context.Context, bridge *db_models.Bridge) (uint, error)

	GetDetail(ctx context.Context, id uint) (*BridgeDetailRow, error)
	List(ctx context.Context, limit int) ([]db_models.Bridge, error)
	ListByDistrict(ctx context.Context, districtID uint) ([]db_models.Bridge, error)
	Search(ctx context.Context, keyword string) ([]db_models.Bridge, error)
}

type bridgeRepository struct {
	db *gorm.DB
}

func NewBridgeRepository(db *gorm.DB) BridgeRepository {
	return &bridgeRepository{db: db}
}

func (r *bridgeRepository) Create(ctx context.Context, bridge *db_models.Bridge) (uint, error) {
	if err := r.db.WithContext(ctx).Create(bridge).Error; err != nil {
		return 0, err
	}
	return bridge.ID, nil
}

// GetDetail returns nil, nil when no bridge has the given id.
func (r *bridgeRepository) GetDetail(ctx context.Context, id uint) (*BridgeDetailRow, error) {
	var rows []BridgeDetailRow
	err := r.db.WithContext(ctx).
		Table("bridges AS b").
		Select(`b.id, b.name, b.river_name, b.year_built, b.bridge_type, b.description, b.image_url, b.district_id,
			d.name AS district_name, s.name AS state_name, c.name AS country_name`).
		Joins("JOIN districts AS d ON d.id = b.district_id").
		Joins("JOIN states AS s ON s.id = d.state_id").
		Joins("JOIN countries AS c ON c.id = s.country_id").
		Where("b.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *bridgeRepository) List(ctx context.Context, limit int) ([]db_models.Bridge, error) {
	var bridges []db_models.Bridge
	err := r.db.WithContext(ctx).Order("id").Limit(limit).Find(&bridges).Error
	if err != nil {
		return nil, err
	}
	return bridges, nil
}

func (r *bridgeRepository) ListByDistrict(ctx context.Context, districtID uint) ([]db_models.Bridge, error) {
	var bridges []db_models.Bridge
	err := r.db.WithContext(ctx).
		Where("district_id = ?", districtID).
		Order("id").
		Find(&bridges).Error
	if err != nil {
		return nil, err
	}
	return bridges, nil
}

// Search matches keyword as a case-insensitive substring of the name, river
// name or description. Both sides are folded in Go so non-ASCII letters
// compare the same way on every dialect.
func (r *bridgeRepository) Search(ctx context.Context, keyword string) ([]db_models.Bridge, error) {
	keyword = strings.ReplaceAll(keyword, db_models.SearchFieldSeparator, "")
	if keyword == "" {
		return []db_models.Bridge{}, nil
	}
	pattern := "%" + escapeLike(strings.ToLower(keyword)) + "%"

	var bridges []db_models.Bridge
	err := r.db.WithContext(ctx).
		Where(`search_text LIKE ? ESCAPE '\'`, pattern).
		Order("id").
		Find(&bridges).Error
	if err != nil {
		return nil, err
	}
	return bridges, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
