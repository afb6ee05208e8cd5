package db_models

import (
	"strings"

	"gorm.io/gorm"
)

// SearchFieldSeparator joins the folded fields in SearchText so a pattern
// cannot match across two of them.
const SearchFieldSeparator = "\x1f"

type Bridge struct {
	BaseModel
	Name        string    `gorm:"type:varchar(100);not null"`
	RiverName   *string   `gorm:"type:varchar(100)"`
	YearBuilt   *int
	BridgeType  *string   `gorm:"type:varchar(100)"`
	Description *string   `gorm:"type:text"`
	ImageURL    *string   `gorm:"type:varchar(300)"`
	DistrictID  uint      `gorm:"index;not null"`
	District    *District `gorm:"foreignKey:DistrictID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`

	// SearchText holds name, river name and description lowercased with
	// Unicode rules. Keyword search matches against it instead of SQL LOWER,
	// which folds ASCII only on SQLite.
	SearchText string `gorm:"type:text;not null;default:''"`
}

func (Bridge) TableName() string {
	return "bridges"
}

func (b *Bridge) BeforeSave(tx *gorm.DB) error {
	b.SearchText = FoldedSearchText(b.Name, b.RiverName, b.Description)
	return nil
}

func FoldedSearchText(name string, riverName, description *string) string {
	fields := []string{strings.ToLower(name)}
	for _, f := range []*string{riverName, description} {
		if f != nil {
			fields = append(fields, strings.ToLower(*f))
		}
	}
	return strings.Join(fields, SearchFieldSeparator)
}

// AllModels lists every table in dependency order for migrations.
func AllModels() []interface{} {
	return []interface{}{&Country{}, &State{}, &District{}, &Bridge{}}
}
