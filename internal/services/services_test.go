package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"bridges/internal/infra"
	"bridges/internal/models/db_models"
	"bridges/internal/models/request_models"
	"bridges/internal/models/response_models"
	"bridges/internal/repositories"
	"bridges/pkg/session"
	"bridges/pkg/utils"
	"go.uber.org/zap"
	. "gopkg.in/check.v1"
	"gorm.io/gorm"
)

// Hook up gocheck into the "go test" runner.
func Test(t *testing.T) { TestingT(t) }

type CatalogSuite struct {
	db        *gorm.DB
	uploadDir string

	catalog CatalogServiceInterface
	bridges BridgeServiceInterface
	seeder  SeedServiceInterface
}

var _ = Suite(&CatalogSuite{})

func (s *CatalogSuite) SetUpTest(c *C) {
	dir := c.MkDir()
	db, err := infra.OpenDatabase("", filepath.Join(dir, "bridges.db"), zap.NewNop())
	c.Assert(err, IsNil)
	s.db = db

	s.uploadDir = filepath.Join(dir, "uploads")
	uploads, err := NewUploadService(s.uploadDir, "/static/uploads", zap.NewNop())
	c.Assert(err, IsNil)

	countryRepo := repositories.NewCountryRepository(db)
	districtRepo := repositories.NewDistrictRepository(db)
	bridgeRepo := repositories.NewBridgeRepository(db)

	s.catalog = NewCatalogService(countryRepo, repositories.NewStateRepository(db), districtRepo, bridgeRepo, zap.NewNop())
	s.bridges = NewBridgeService(bridgeRepo, districtRepo, uploads, zap.NewNop())
	s.seeder = NewSeedService(countryRepo, repositories.NewSeedRepository(db), zap.NewNop())
}

func (s *CatalogSuite) TearDownTest(c *C) {
	infra.CloseDatabase(s.db, zap.NewNop())
}

func (s *CatalogSuite) count(c *C, model interface{}) int64 {
	var n int64
	c.Assert(s.db.Model(model).Count(&n).Error, IsNil)
	return n
}

func (s *CatalogSuite) bridgeID(c *C, name string) uint {
	var b db_models.Bridge
	c.Assert(s.db.Where("name = ?", name).First(&b).Error, IsNil)
	return b.ID
}

func (s *CatalogSuite) idOf(c *C, items []response_models.NamedItem, name string) uint {
	for _, it := range items {
		if it.Name == name {
			return it.ID
		}
	}
	c.Fatalf("%q not found in %v", name, items)
	return 0
}

func (s *CatalogSuite) TestSeedRunsOnce(c *C) {
	ctx := context.Background()
	c.Assert(s.seeder.EnsureSeeded(ctx), IsNil)
	c.Assert(s.seeder.EnsureSeeded(ctx), IsNil)

	c.Assert(s.count(c, &db_models.Country{}), Equals, int64(1))
	c.Assert(s.count(c, &db_models.State{}), Equals, int64(1))
	c.Assert(s.count(c, &db_models.District{}), Equals, int64(13))
	c.Assert(s.count(c, &db_models.Bridge{}), Equals, int64(2))
}

func (s *CatalogSuite) TestConcurrentSeedingNeverDuplicates(c *C) {
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.seeder.EnsureSeeded(ctx)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		c.Check(err, IsNil)
	}
	c.Assert(s.count(c, &db_models.Country{}), Equals, int64(1))
	c.Assert(s.count(c, &db_models.Bridge{}), Equals, int64(2))
}

func (s *CatalogSuite) TestCascadingLookups(c *C) {
	ctx := context.Background()
	c.Assert(s.seeder.EnsureSeeded(ctx), IsNil)

	countries, err := s.catalog.ListCountries(ctx)
	c.Assert(err, IsNil)
	c.Assert(countries, HasLen, 1)
	c.Assert(countries[0].Name, Equals, "India")

	states, err := s.catalog.ListStates(ctx, countries[0].ID)
	c.Assert(err, IsNil)
	c.Assert(states, HasLen, 1)
	c.Assert(states[0].Name, Equals, "Andhra Pradesh")

	districts, err := s.catalog.ListDistricts(ctx, states[0].ID)
	c.Assert(err, IsNil)
	c.Assert(districts, HasLen, 13)
	c.Assert(districts[0].Name, Equals, "East Godavari")

	krishna := s.idOf(c, districts, "Krishna")
	s.idOf(c, districts, "Guntur")

	bridges, err := s.catalog.ListBridges(ctx, krishna)
	c.Assert(err, IsNil)
	c.Assert(bridges, HasLen, 1)
	c.Assert(bridges[0].Name, Equals, "Prakasam Barrage")

	none, err := s.catalog.ListStates(ctx, 9999)
	c.Assert(err, IsNil)
	c.Assert(none, NotNil)
	c.Assert(none, HasLen, 0)

	none, err = s.catalog.ListBridges(ctx, s.idOf(c, districts, "Guntur"))
	c.Assert(err, IsNil)
	c.Assert(none, HasLen, 0)
}

func (s *CatalogSuite) TestFeaturedBridgesCapped(c *C) {
	ctx := context.Background()
	c.Assert(s.seeder.EnsureSeeded(ctx), IsNil)

	var district db_models.District
	c.Assert(s.db.Where("name = ?", "Guntur").First(&district).Error, IsNil)
	for i := 0; i < 10; i++ {
		c.Assert(s.db.Create(&db_models.Bridge{Name: "Extra", DistrictID: district.ID}).Error, IsNil)
	}

	featured, err := s.catalog.FeaturedBridges(ctx)
	c.Assert(err, IsNil)
	c.Assert(featured, HasLen, HomeBridgeLimit)
	c.Assert(featured[0].Name, Equals, "Godavari Bridge (Havelock Bridge)")
}

func (s *CatalogSuite) TestSearch(c *C) {
	ctx := context.Background()
	c.Assert(s.seeder.EnsureSeeded(ctx), IsNil)

	var krishna db_models.District
	c.Assert(s.db.Where("name = ?", "Krishna").First(&krishna).Error, IsNil)
	river := "ÖRESUND Channel"
	_, err := s.bridges.CreateBridge(ctx, request_models.CreateBridgeRequest{
		Name:       "ÉCLUSE Bridge",
		DistrictID: krishna.ID,
		RiverName:  &river,
	})
	c.Assert(err, IsNil)

	tests := []struct {
		query string
		want  []string
	}{
		{query: "barrage", want: []string{"Prakasam Barrage"}},
		{query: "HAVELOCK", want: []string{"Godavari Bridge (Havelock Bridge)"}},
		{query: "krishna river", want: []string{"Prakasam Barrage"}},
		{query: "Rajahmundry", want: []string{"Godavari Bridge (Havelock Bridge)"}},
		{query: "river", want: []string{"Godavari Bridge (Havelock Bridge)", "Prakasam Barrage"}},
		{query: "golden gate", want: nil},
		{query: "ÉCLUSE", want: []string{"ÉCLUSE Bridge"}},
		{query: "écluse", want: []string{"ÉCLUSE Bridge"}},
		{query: "Écluse Bridge", want: []string{"ÉCLUSE Bridge"}},
		{query: "cluse", want: []string{"ÉCLUSE Bridge"}},
		{query: "öresund", want: []string{"ÉCLUSE Bridge"}},
		{query: "Havelock Bridge) Godavari", want: nil},
		{query: "\x1f", want: nil},
		{query: "%", want: nil},
		{query: "_", want: nil},
		{query: "", want: nil},
		{query: "   ", want: nil},
	}

	for _, tt := range tests {
		results, err := s.bridges.Search(ctx, tt.query)
		c.Assert(err, IsNil, Commentf("query %q", tt.query))
		c.Assert(results, NotNil, Commentf("query %q", tt.query))

		var names []string
		for _, r := range results {
			names = append(names, r.Name)
		}
		c.Check(names, DeepEquals, tt.want, Commentf("query %q", tt.query))
	}
}

func (s *CatalogSuite) TestMigrateBackfillsSearchText(c *C) {
	ctx := context.Background()
	c.Assert(s.seeder.EnsureSeeded(ctx), IsNil)
	c.Assert(s.db.Model(&db_models.Bridge{}).Where("1 = 1").UpdateColumn("search_text", "").Error, IsNil)

	results, err := s.bridges.Search(ctx, "barrage")
	c.Assert(err, IsNil)
	c.Assert(results, HasLen, 0)

	c.Assert(infra.Migrate(s.db), IsNil)

	results, err = s.bridges.Search(ctx, "barrage")
	c.Assert(err, IsNil)
	c.Assert(results, HasLen, 1)
	c.Assert(results[0].Name, Equals, "Prakasam Barrage")
}

func (s *CatalogSuite) TestGetBridge(c *C) {
	ctx := context.Background()
	c.Assert(s.seeder.EnsureSeeded(ctx), IsNil)

	detail, err := s.bridges.GetBridge(ctx, s.bridgeID(c, "Godavari Bridge (Havelock Bridge)"))
	c.Assert(err, IsNil)
	c.Assert(*detail.YearBuilt, Equals, 1900)
	c.Assert(*detail.BridgeType, Equals, "Truss railway bridge")
	c.Assert(*detail.RiverName, Equals, "Godavari River")
	c.Assert(detail.District, Equals, "East Godavari")
	c.Assert(detail.State, Equals, "Andhra Pradesh")
	c.Assert(detail.Country, Equals, "India")

	_, err = s.bridges.GetBridge(ctx, 9999)
	c.Assert(err, Equals, utils.ErrBridgeNotFound)
}

func (s *CatalogSuite) TestCreateBridge(c *C) {
	ctx := context.Background()
	c.Assert(s.seeder.EnsureSeeded(ctx), IsNil)

	var guntur db_models.District
	c.Assert(s.db.Where("name = ?", "Guntur").First(&guntur).Error, IsNil)

	year := 2019
	blank := "  "
	river := "Krishna River"
	detail, err := s.bridges.CreateBridge(ctx, request_models.CreateBridgeRequest{
		Name:        " Amaravati Iconic Bridge ",
		DistrictID:  guntur.ID,
		RiverName:   &river,
		YearBuilt:   &year,
		Description: &blank,
	})
	c.Assert(err, IsNil)
	c.Assert(detail.Name, Equals, "Amaravati Iconic Bridge")
	c.Assert(detail.District, Equals, "Guntur")
	c.Assert(*detail.YearBuilt, Equals, 2019)
	c.Assert(detail.Description, IsNil)
	c.Assert(detail.BridgeType, IsNil)

	_, err = s.bridges.CreateBridge(ctx, request_models.CreateBridgeRequest{Name: "Nowhere", DistrictID: 9999})
	c.Assert(err, Equals, utils.ErrDistrictNotFound)

	_, err = s.bridges.CreateBridge(ctx, request_models.CreateBridgeRequest{Name: "  ", DistrictID: guntur.ID})
	c.Assert(err, Equals, utils.ErrNameRequired)

	c.Assert(s.count(c, &db_models.Bridge{}), Equals, int64(3))
}

func (s *CatalogSuite) TestCreateFromFormRejectsBadYearBeforeInsert(c *C) {
	ctx := context.Background()
	c.Assert(s.seeder.EnsureSeeded(ctx), IsNil)

	form := request_models.CreateBridgeForm{
		Name:       "Old Bridge",
		DistrictID: "1",
		YearBuilt:  "18th century",
		ImageFile:  fileHeader(c, "photo.jpg", []byte("jpeg-bytes")),
	}
	_, err := s.bridges.CreateBridgeFromForm(ctx, form)
	c.Assert(err, Equals, utils.ErrInvalidYearBuilt)

	c.Assert(s.count(c, &db_models.Bridge{}), Equals, int64(2))
	entries, err := os.ReadDir(s.uploadDir)
	c.Assert(err, IsNil)
	c.Assert(entries, HasLen, 0)
}

func (s *CatalogSuite) TestCreateFromFormStoresAllowedUpload(c *C) {
	ctx := context.Background()
	c.Assert(s.seeder.EnsureSeeded(ctx), IsNil)

	detail, err := s.bridges.CreateBridgeFromForm(ctx, request_models.CreateBridgeForm{
		Name:       "Kanaka Durga Flyover",
		DistrictID: "3",
		YearBuilt:  " 2020 ",
		ImageURL:   "https://example.com/ignored.jpg",
		ImageFile:  fileHeader(c, "photo.JPG", []byte("jpeg-bytes")),
	})
	c.Assert(err, IsNil)
	c.Assert(*detail.YearBuilt, Equals, 2020)
	c.Assert(detail.ImageURL, NotNil)
	c.Assert(strings.HasPrefix(*detail.ImageURL, "/static/uploads/"), Equals, true)
	c.Assert(strings.HasSuffix(*detail.ImageURL, "_photo.JPG"), Equals, true)

	stored := filepath.Join(s.uploadDir, strings.TrimPrefix(*detail.ImageURL, "/static/uploads/"))
	data, err := os.ReadFile(stored)
	c.Assert(err, IsNil)
	c.Assert(string(data), Equals, "jpeg-bytes")
}

func (s *CatalogSuite) TestCreateFromFormIgnoresDisallowedUpload(c *C) {
	ctx := context.Background()
	c.Assert(s.seeder.EnsureSeeded(ctx), IsNil)

	detail, err := s.bridges.CreateBridgeFromForm(ctx, request_models.CreateBridgeForm{
		Name:       "Suspicious Bridge",
		DistrictID: "3",
		ImageURL:   "https://example.com/bridge.jpg",
		ImageFile:  fileHeader(c, "photo.EXE", []byte("MZ")),
	})
	c.Assert(err, IsNil)
	c.Assert(*detail.ImageURL, Equals, "https://example.com/bridge.jpg")

	entries, err := os.ReadDir(s.uploadDir)
	c.Assert(err, IsNil)
	c.Assert(entries, HasLen, 0)
}

func (s *CatalogSuite) TestCreateFromFormRemovesUploadWhenInsertFails(c *C) {
	ctx := context.Background()
	c.Assert(s.seeder.EnsureSeeded(ctx), IsNil)

	_, err := s.bridges.CreateBridgeFromForm(ctx, request_models.CreateBridgeForm{
		Name:       "Lost Bridge",
		DistrictID: "9999",
		ImageFile:  fileHeader(c, "photo.png", []byte("png-bytes")),
	})
	c.Assert(err, Equals, utils.ErrDistrictNotFound)

	entries, err := os.ReadDir(s.uploadDir)
	c.Assert(err, IsNil)
	c.Assert(entries, HasLen, 0)
}

type AuthSuite struct {
	auth  AuthServiceInterface
	store *session.MemoryStore
}

var _ = Suite(&AuthSuite{})

func (s *AuthSuite) SetUpSuite(c *C) {
	verifier, err := NewStaticCredentials(map[string]string{"admin": "password123"})
	c.Assert(err, IsNil)

	s.store = session.NewMemoryStore()
	s.auth = NewAuthService(verifier, s.store, time.Hour, []byte("secret"), time.Hour, zap.NewNop())
}

func (s *AuthSuite) TestLoginMarksSessionAsEditor(c *C) {
	ctx := context.Background()

	id, err := s.auth.Login(ctx, request_models.LoginRequest{Username: "admin", Password: "password123"})
	c.Assert(err, IsNil)
	c.Assert(id, Not(Equals), "")

	data, err := s.auth.Session(ctx, id)
	c.Assert(err, IsNil)
	c.Assert(data.IsEditor(), Equals, true)
	c.Assert(data.Username, Equals, "admin")

	c.Assert(s.auth.Logout(ctx, id), IsNil)
	data, err = s.auth.Session(ctx, id)
	c.Assert(err, IsNil)
	c.Assert(data.IsEditor(), Equals, false)

	// logout is idempotent
	c.Assert(s.auth.Logout(ctx, id), IsNil)
	c.Assert(s.auth.Logout(ctx, ""), IsNil)
}

func (s *AuthSuite) TestLoginRejectsAnythingButTheExactPair(c *C) {
	ctx := context.Background()

	for _, req := range []request_models.LoginRequest{
		{Username: "admin", Password: "password"},
		{Username: "Admin", Password: "password123"},
		{Username: "editor", Password: "password123"},
		{Username: "admin", Password: "password123 "},
		{Username: "", Password: ""},
	} {
		_, err := s.auth.Login(ctx, req)
		c.Check(err, Equals, utils.ErrInvalidCredentials, Commentf("%+v", req))
	}
}

func (s *AuthSuite) TestUnknownSessionIsAnonymous(c *C) {
	data, err := s.auth.Session(context.Background(), "does-not-exist")
	c.Assert(err, IsNil)
	c.Assert(data, Equals, session.Data{})
}

func (s *AuthSuite) TestIssueToken(c *C) {
	ctx := context.Background()

	token, err := s.auth.IssueToken(ctx, request_models.LoginRequest{Username: "admin", Password: "password123"})
	c.Assert(err, IsNil)
	c.Assert(token.Role, Equals, session.RoleEditor)

	claims, err := utils.ValidateToken([]byte("secret"), token.Token)
	c.Assert(err, IsNil)
	c.Assert(claims.Subject, Equals, "admin")

	_, err = s.auth.IssueToken(ctx, request_models.LoginRequest{Username: "admin", Password: "nope"})
	c.Assert(err, Equals, utils.ErrInvalidCredentials)
}

// fileHeader builds a multipart.FileHeader the way net/http would parse it.
func fileHeader(c *C, filename string, content []byte) *multipart.FileHeader {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image_file", filename)
	c.Assert(err, IsNil)
	_, err = part.Write(content)
	c.Assert(err, IsNil)
	c.Assert(w.Close(), IsNil)

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	c.Assert(err, IsNil)
	return form.File["image_file"][0]
}
