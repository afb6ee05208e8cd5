package services

import (
	"context"
	"errors"
	"testing"

	"bridges/internal/models/db_models"
	"bridges/internal/models/request_models"
	"bridges/internal/repositories"
	"bridges/pkg/utils"
	"go.uber.org/zap"
)

// countingBridgeRepo records Search calls and fails everything else.
type countingBridgeRepo struct {
	repositories.BridgeRepository
	searches int
}

func (r *countingBridgeRepo) Search(ctx context.Context, keyword string) ([]db_models.Bridge, error) {
	r.searches++
	return nil, errors.New("store unavailable")
}

func TestSearchBlankQuerySkipsStore(t *testing.T) {
	repo := &countingBridgeRepo{}
	svc := NewBridgeService(repo, nil, nil, zap.NewNop())

	for _, q := range []string{"", " ", "\t\n"} {
		results, err := svc.Search(context.Background(), q)
		if err != nil {
			t.Fatalf("Search(%q) err = %v", q, err)
		}
		if results == nil || len(results) != 0 {
			t.Fatalf("Search(%q) = %v, want empty list", q, results)
		}
	}
	if repo.searches != 0 {
		t.Fatalf("store searched %d times for blank queries", repo.searches)
	}

	if _, err := svc.Search(context.Background(), "river"); !errors.Is(err, utils.ErrDatabaseError) {
		t.Fatalf("Search(river) err = %v, want ErrDatabaseError", err)
	}
	if repo.searches != 1 {
		t.Fatalf("store searched %d times, want 1", repo.searches)
	}
}

func TestParseBridgeForm(t *testing.T) {
	tests := []struct {
		name    string
		form    request_models.CreateBridgeForm
		wantErr error
		check   func(t *testing.T, req request_models.CreateBridgeRequest)
	}{
		{
			name: "minimal",
			form: request_models.CreateBridgeForm{Name: "Bridge", DistrictID: "4"},
			check: func(t *testing.T, req request_models.CreateBridgeRequest) {
				if req.DistrictID != 4 || req.YearBuilt != nil || req.RiverName != nil || req.ImageURL != nil {
					t.Errorf("unexpected request %+v", req)
				}
			},
		},
		{
			name: "all fields",
			form: request_models.CreateBridgeForm{
				Name: "Bridge", DistrictID: " 2 ", YearBuilt: "1957", RiverName: "Krishna River",
				BridgeType: "Arch bridge", Description: "Barrage", ImageURL: "https://example.com/a.png",
			},
			check: func(t *testing.T, req request_models.CreateBridgeRequest) {
				if req.DistrictID != 2 || *req.YearBuilt != 1957 || *req.BridgeType != "Arch bridge" {
					t.Errorf("unexpected request %+v", req)
				}
			},
		},
		{
			name:    "non numeric year",
			form:    request_models.CreateBridgeForm{Name: "Bridge", DistrictID: "1", YearBuilt: "18th century"},
			wantErr: utils.ErrInvalidYearBuilt,
		},
		{
			name:    "missing district",
			form:    request_models.CreateBridgeForm{Name: "Bridge"},
			wantErr: utils.ErrInvalidDistrictID,
		},
		{
			name:    "non numeric district",
			form:    request_models.CreateBridgeForm{Name: "Bridge", DistrictID: "Krishna"},
			wantErr: utils.ErrInvalidDistrictID,
		},
		{
			name:    "negative district",
			form:    request_models.CreateBridgeForm{Name: "Bridge", DistrictID: "-1"},
			wantErr: utils.ErrInvalidDistrictID,
		},
		{
			name:    "blank name",
			form:    request_models.CreateBridgeForm{Name: "   ", DistrictID: "1"},
			wantErr: utils.ErrNameRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ParseBridgeForm(tt.form)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, req)
			}
		})
	}
}

func TestSampleCatalog(t *testing.T) {
	seed := SampleCatalog()
	if seed.Name != "India" || len(seed.States) != 1 {
		t.Fatalf("unexpected seed root %+v", seed)
	}

	var districts, bridges int
	for _, d := range seed.States[0].Districts {
		districts++
		bridges += len(d.Bridges)
	}
	if districts != 13 || bridges != 2 {
		t.Errorf("districts = %d, bridges = %d", districts, bridges)
	}
}
