package services

import (
	"context"
	"strconv"
	"strings"

	"bridges/internal/infra"
	"bridges/internal/models/db_models"
	"bridges/internal/models/request_models"
	"bridges/internal/models/response_models"
	"bridges/internal/repositories"
	"bridges/pkg/utils"
	"go.uber.org/zap"
)

type BridgeServiceInterface interface {
	GetBridge(ctx context.Context, id uint) (response_models.BridgeDetail, error)
	Search(ctx context.Context, query string) ([]response_models.BridgeSummary, error)
	CreateBridge(ctx context.Context, req request_models.CreateBridgeRequest) (response_models.BridgeDetail, error)
	CreateBridgeFromForm(ctx context.Context, form request_models.CreateBridgeForm) (response_models.BridgeDetail, error)
}

type BridgeService struct {
	bridgeRepo    repositories.BridgeRepository
	districtRepo  repositories.DistrictRepository
	uploadService UploadServiceInterface
	log           *zap.Logger
}

func NewBridgeService(
	bridgeRepo repositories.BridgeRepository,
	districtRepo repositories.DistrictRepository,
	uploadService UploadServiceInterface,
	log *zap.Logger) BridgeServiceInterface {

	return &BridgeService{
		bridgeRepo:    bridgeRepo,
		districtRepo:  districtRepo,
		uploadService: uploadService,
		log:           log,
	}
}

func (s *BridgeService) GetBridge(ctx context.Context, id uint) (response_models.BridgeDetail, error) {
	row, err := s.bridgeRepo.GetDetail(ctx, id)
	if err != nil {
		s.log.Error("get bridge", zap.Uint("bridge_id", id), zap.Error(err))
		return response_models.BridgeDetail{}, utils.ErrDatabaseError
	}

	if row == nil {
		return response_models.BridgeDetail{}, utils.ErrBridgeNotFound
	}

	return response_models.BridgeDetail{
		BridgeSummary: response_models.BridgeSummary{
			ID:          row.ID,
			Name:        row.Name,
			RiverName:   row.RiverName,
			YearBuilt:   row.YearBuilt,
			BridgeType:  row.BridgeType,
			Description: row.Description,
			ImageURL:    row.ImageURL,
		},
		DistrictID: row.DistrictID,
		District:   row.DistrictName,
		State:      row.StateName,
		Country:    row.CountryName,
	}, nil
}

// Search returns an empty result for a blank query without touching the store.
func (s *BridgeService) Search(ctx context.Context, query string) ([]response_models.BridgeSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []response_models.BridgeSummary{}, nil
	}

	bridges, err := s.bridgeRepo.Search(ctx, query)
	if err != nil {
		s.log.Error("search bridges", zap.String("query", query), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return toSummaries(bridges), nil
}

func (s *BridgeService) CreateBridge(ctx context.Context, req request_models.CreateBridgeRequest) (response_models.BridgeDetail, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return response_models.BridgeDetail{}, utils.ErrNameRequired
	}
	if req.DistrictID == 0 {
		return response_models.BridgeDetail{}, utils.ErrInvalidDistrictID
	}

	exists, err := s.districtRepo.Exists(ctx, req.DistrictID)
	if err != nil {
		s.log.Error("check district", zap.Uint("district_id", req.DistrictID), zap.Error(err))
		return response_models.BridgeDetail{}, utils.ErrDatabaseError
	}
	if !exists {
		return response_models.BridgeDetail{}, utils.ErrDistrictNotFound
	}

	bridge := &db_models.Bridge{
		Name:        req.Name,
		DistrictID:  req.DistrictID,
		RiverName:   blankToNil(req.RiverName),
		YearBuilt:   req.YearBuilt,
		BridgeType:  blankToNil(req.BridgeType),
		Description: blankToNil(req.Description),
		ImageURL:    blankToNil(req.ImageURL),
	}

	id, err := s.bridgeRepo.Create(ctx, bridge)
	if err != nil {
		if infra.IsForeignKeyViolation(err) {
			return response_models.BridgeDetail{}, utils.ErrDistrictNotFound
		}
		s.log.Error("create bridge", zap.String("name", req.Name), zap.Error(err))
		return response_models.BridgeDetail{}, utils.ErrDatabaseError
	}

	s.log.Info("bridge created", zap.Uint("bridge_id", id), zap.Uint("district_id", req.DistrictID))

	return s.GetBridge(ctx, id)
}

// CreateBridgeFromForm validates the form before the upload is written so a
// rejected submission leaves neither a row nor a file behind.
func (s *BridgeService) CreateBridgeFromForm(ctx context.Context, form request_models.CreateBridgeForm) (response_models.BridgeDetail, error) {
	req, err := ParseBridgeForm(form)
	if err != nil {
		return response_models.BridgeDetail{}, err
	}

	var uploadedURL string
	if form.ImageFile != nil {
		url, accepted, err := s.uploadService.SaveImage(form.ImageFile)
		if err != nil {
			s.log.Error("save upload", zap.String("filename", form.ImageFile.Filename), zap.Error(err))
			return response_models.BridgeDetail{}, utils.ErrUploadFailed
		}
		if accepted {
			uploadedURL = url
			req.ImageURL = &uploadedURL
		}
	}

	detail, err := s.CreateBridge(ctx, req)
	if err != nil && uploadedURL != "" {
		s.uploadService.Remove(uploadedURL)
	}
	return detail, err
}

// ParseBridgeForm converts raw form values; blank optional fields become nil.
func ParseBridgeForm(form request_models.CreateBridgeForm) (request_models.CreateBridgeRequest, error) {
	req := request_models.CreateBridgeRequest{
		Name:        strings.TrimSpace(form.Name),
		RiverName:   optionalString(form.RiverName),
		BridgeType:  optionalString(form.BridgeType),
		Description: optionalString(form.Description),
		ImageURL:    optionalString(form.ImageURL),
	}
	if req.Name == "" {
		return req, utils.ErrNameRequired
	}

	districtID, err := strconv.ParseUint(strings.TrimSpace(form.DistrictID), 10, 64)
	if err != nil || districtID == 0 {
		return req, utils.ErrInvalidDistrictID
	}
	req.DistrictID = uint(districtID)

	if year := strings.TrimSpace(form.YearBuilt); year != "" {
		y, err := strconv.Atoi(year)
		if err != nil {
			return req, utils.ErrInvalidYearBuilt
		}
		req.YearBuilt = &y
	}

	return req, nil
}

func optionalString(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}

func blankToNil(v *string) *string {
	if v == nil {
		return nil
	}
	return optionalString(*v)
}

func toSummaries(bridges []db_models.Bridge) []response_models.BridgeSummary {
	out := make([]response_models.BridgeSummary, 0, len(bridges))
	for _, b := range bridges {
		out = append(out, response_models.BridgeSummary{
			ID:          b.ID,
			Name:        b.Name,
			RiverName:   b.RiverName,
			YearBuilt:   b.YearBuilt,
			BridgeType:  b.BridgeType,
			Description: b.Description,
			ImageURL:    b.ImageURL,
		})
	}
	return out
}
