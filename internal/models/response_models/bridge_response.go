package response_models

type BridgeSummary struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	RiverName   *string `json:"river_name"`
	YearBuilt   *int    `json:"year_built"`
	BridgeType  *string `json:"bridge_type"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

type BridgeDetail struct {
	BridgeSummary
	DistrictID uint   `json:"district_id"`
	District   string `json:"district"`
	State      string `json:"state"`
	Country    string `json:"country"`
}
