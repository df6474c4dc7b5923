package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vango/internal/models"
	"vango/internal/utils"
	"vango/internal/validators"
	"vango/pkg/storage"
)

type memoryDriverRepo struct {
	drivers map[primitive.ObjectID]*models.Driver
}

func newMemoryDriverRepo() *memoryDriverRepo {
	return &memoryDriverRepo{drivers: make(map[primitive.ObjectID]*models.Driver)}
}

func (r *memoryDriverRepo) Create(ctx context.Context, driver *models.Driver) error {
	driver.ID = primitive.NewObjectID()
	driver.CreatedAt = time.Now()
	driver.UpdatedAt = driver.CreatedAt
	r.drivers[driver.ID] = driver
	return nil
}

func (r *memoryDriverRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Driver, error) {
	driver, ok := r.drivers[id]
	if !ok {
		return nil, errors.New("driver not found")
	}
	return driver, nil
}

func (r *memoryDriverRepo) GetByEmail(ctx context.Context, email string) (*models.Driver, error) {
	for _, driver := range r.drivers {
		if driver.Email == email {
			return driver, nil
		}
	}
	return nil, errors.New("driver not found")
}

func (r *memoryDriverRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return nil
}

func (r *memoryDriverRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(r.drivers, id)
	return nil
}

func (r *memoryDriverRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.DriverStatus) error {
	driver, ok := r.drivers[id]
	if !ok {
		return errors.New("driver not found")
	}
	driver.Status = status
	return nil
}

func (r *memoryDriverRepo) AddDocument(ctx context.Context, id primitive.ObjectID, doc *models.DriverDocument) error {
	driver, ok := r.drivers[id]
	if !ok {
		return errors.New("driver not found")
	}
	driver.Documents = append(driver.Documents, *doc)
	return nil
}

func (r *memoryDriverRepo) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Driver, int64, error) {
	drivers := make([]*models.Driver, 0, len(r.drivers))
	for _, driver := range r.drivers {
		drivers = append(drivers, driver)
	}
	return drivers, int64(len(drivers)), nil
}

func (r *memoryDriverRepo) GetByStatus(ctx context.Context, status models.DriverStatus, params *utils.PaginationParams) ([]*models.Driver, int64, error) {
	var drivers []*models.Driver
	for _, driver := range r.drivers {
		if driver.Status == status {
			drivers = append(drivers, driver)
		}
	}
	return drivers, int64(len(drivers)), nil
}

func (r *memoryDriverRepo) GetTotalCount(ctx context.Context) (int64, error) {
	return int64(len(r.drivers)), nil
}

func (r *memoryDriverRepo) GetCountByStatus(ctx context.Context, status models.DriverStatus) (int64, error) {
	var count int64
	for _, driver := range r.drivers {
		if driver.Status == status {
			count++
		}
	}
	return count, nil
}

type memoryStorage struct {
	objects map[string][]byte
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{objects: make(map[string][]byte)}
}

func (s *memoryStorage) Upload(ctx context.Context, request *storage.UploadRequest) (*storage.UploadResponse, error) {
	s.objects[request.Key] = []byte{}
	return &storage.UploadResponse{Key: request.Key, URL: "mem://" + request.Key, Size: request.Size}, nil
}

func (s *memoryStorage) Download(ctx context.Context, key string) (*storage.DownloadResponse, error) {
	return nil, errors.New("not implemented")
}

func (s *memoryStorage) Delete(ctx context.Context, key string) error {
	delete(s.objects, key)
	return nil
}

func (s *memoryStorage) GetURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	if _, ok := s.objects[key]; !ok {
		return "", errors.New("object not found")
	}
	return "mem://" + key + "?expires=soon", nil
}

func (s *memoryStorage) FileExists(ctx context.Context, key string) (bool, error) {
	_, ok := s.objects[key]
	return ok, nil
}

func testDriverService(t *testing.T) (DriverService, *memoryDriverRepo, *memoryStorage) {
	t.Helper()
	repo := newMemoryDriverRepo()
	store := newMemoryStorage()
	return NewDriverService(repo, store, testLogger(t)), repo, store
}

func registration() *models.DriverRegistration {
	return &models.DriverRegistration{
		FullName:     "Dev Patel",
		Email:        "Dev.Patel@Example.com",
		Phone:        "+447700900123",
		VanSize:      "luton",
		Registration: "ab12 cde",
		BaseCity:     "Leeds",
	}
}

func TestRegisterDriver(t *testing.T) {
	service, _, _ := testDriverService(t)

	driver, err := service.Register(context.Background(), registration())
	require.NoError(t, err)

	assert.Equal(t, "dev.patel@example.com", driver.Email)
	assert.Equal(t, "AB12 CDE", driver.Registration)
	assert.Equal(t, "luton", driver.VanSize)
	assert.Equal(t, models.DriverStatusPending, driver.Status)
	assert.Empty(t, driver.Documents)
}

func TestRegisterDriver_DuplicateEmail(t *testing.T) {
	service, _, _ := testDriverService(t)

	_, err := service.Register(context.Background(), registration())
	require.NoError(t, err)

	_, err = service.Register(context.Background(), registration())
	assert.ErrorIs(t, err, ErrDriverExists)
}

func TestRegisterDriver_InvalidPayload(t *testing.T) {
	service, _, _ := testDriverService(t)

	request := registration()
	request.VanSize = "articulated"

	_, err := service.Register(context.Background(), request)

	var errs validators.ValidationErrors
	require.ErrorAs(t, err, &errs)
}

func TestUploadDocument(t *testing.T) {
	service, _, store := testDriverService(t)

	driver, err := service.Register(context.Background(), registration())
	require.NoError(t, err)

	doc, err := service.UploadDocument(
		context.Background(),
		driver.ID.Hex(),
		models.DocumentLicence,
		"licence.PDF",
		"application/pdf",
		1024,
		strings.NewReader("licence bytes"),
	)
	require.NoError(t, err)

	assert.Equal(t, models.DocumentLicence, doc.Type)
	assert.Contains(t, doc.StorageKey, driver.ID.Hex())
	assert.Contains(t, doc.StorageKey, ".pdf")

	exists, err := store.FileExists(context.Background(), doc.StorageKey)
	require.NoError(t, err)
	assert.True(t, exists)

	url, err := service.DocumentURL(context.Background(), driver.ID.Hex(), models.DocumentLicence, time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, url)
}

func TestUploadDocument_Rejections(t *testing.T) {
	service, _, _ := testDriverService(t)

	driver, err := service.Register(context.Background(), registration())
	require.NoError(t, err)

	tests := []struct {
		name     string
		docType  models.DriverDocumentType
		filename string
		size     int64
		wantErr  error
	}{
		{"unknown type", "passport", "passport.pdf", 1024, ErrInvalidDocumentType},
		{"oversized", models.DocumentInsurance, "policy.pdf", utils.MaxDocumentSize + 1, ErrDocumentTooLarge},
		{"bad extension", models.DocumentVanPhoto, "van.heic", 1024, ErrInvalidDocumentType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.UploadDocument(
				context.Background(),
				driver.ID.Hex(),
				tt.docType,
				tt.filename,
				"application/octet-stream",
				tt.size,
				strings.NewReader("x"),
			)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSetApproval(t *testing.T) {
	service, repo, _ := testDriverService(t)

	driver, err := service.Register(context.Background(), registration())
	require.NoError(t, err)

	approved, err := service.SetApproval(context.Background(), driver.ID.Hex(), true)
	require.NoError(t, err)
	assert.Equal(t, models.DriverStatusApproved, approved.Status)

	stored, err := repo.GetByID(context.Background(), driver.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DriverStatusApproved, stored.Status)

	rejected, err := service.SetApproval(context.Background(), driver.ID.Hex(), false)
	require.NoError(t, err)
	assert.Equal(t, models.DriverStatusRejected, rejected.Status)
}

func TestSetApproval_UnknownDriver(t *testing.T) {
	service, _, _ := testDriverService(t)

	_, err := service.SetApproval(context.Background(), primitive.NewObjectID().Hex(), true)
	assert.ErrorIs(t, err, ErrDriverNotFound)
}
