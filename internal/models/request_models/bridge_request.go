package request_models

import "mime/multipart"

// CreateBridgeForm is the multipart payload of the add-bridge page. Numeric
// fields stay strings so that bad input can be reported instead of dropped.
type CreateBridgeForm struct {
	Name        string                `form:"name"`
	DistrictID  string                `form:"district_id"`
	RiverName   string                `form:"river_name"`
	YearBuilt   string                `form:"year_built"`
	BridgeType  string                `form:"bridge_type"`
	Description string                `form:"description"`
	ImageURL    string                `form:"image_url"`
	ImageFile   *multipart.FileHeader `form:"-"`
}

type CreateBridgeRequest struct {
	Name        string  `json:"name" binding:"required"`
	DistrictID  uint    `json:"district_id" binding:"required"`
	RiverName   *string `json:"river_name"`
	YearBuilt   *int    `json:"year_built"`
	BridgeType  *string `json:"bridge_type"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}
