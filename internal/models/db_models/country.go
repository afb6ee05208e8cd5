package db_models

type Country struct {
	BaseModel
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

func (Country) TableName() string {
	return "countries"
}
