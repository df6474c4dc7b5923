package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vango/internal/models"
	"vango/internal/pricing"
	"vango/internal/repositories/interfaces"
	"vango/internal/utils"
	"vango/internal/validators"
	"vango/pkg/logger"
	"vango/pkg/storage"
)

var (
	ErrDriverNotFound      = errors.New(utils.ErrDriverNotFound)
	ErrDriverExists        = errors.New("driver already registered with this email")
	ErrInvalidDocumentType = errors.New("unsupported document type")
	ErrDocumentTooLarge    = errors.New("document exceeds the size limit")
)

type DriverService interface {
	Register(ctx context.Context, request *models.DriverRegistration) (*models.Driver, error)
	GetDriver(ctx context.Context, id string) (*models.Driver, error)
	ListDrivers(ctx context.Context, status string, params *utils.PaginationParams) ([]*models.Driver, int64, error)
	UploadDocument(ctx context.Context, id string, docType models.DriverDocumentType, filename, contentType string, size int64, content io.Reader) (*models.DriverDocument, error)
	SetApproval(ctx context.Context, id string, approved bool) (*models.Driver, error)
	DocumentURL(ctx context.Context, id string, docType models.DriverDocumentType, expiry time.Duration) (string, error)
}

type driverService struct {
	repo    interfaces.DriverRepository
	storage storage.StorageProvider
	logger  *logger.Logger
}

func NewDriverService(repo interfaces.DriverRepository, storageProvider storage.StorageProvider, log *logger.Logger) DriverService {
	return &driverService{
		repo:    repo,
		storage: storageProvider,
		logger:  log,
	}
}

func (s *driverService) Register(ctx context.Context, request *models.DriverRegistration) (*models.Driver, error) {
	if errs := validators.ValidateStruct(request); len(errs) > 0 {
		return nil, errs
	}

	email := utils.NormalizeEmail(request.Email)
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrDriverExists
	}

	driver := &models.Driver{
		FullName:     request.FullName,
		Email:        email,
		Phone:        request.Phone,
		VanSize:      string(pricing.NormalizeVanSize(request.VanSize)),
		Registration: strings.ToUpper(strings.TrimSpace(request.Registration)),
		BaseCity:     request.BaseCity,
		Status:       models.DriverStatusPending,
		Documents:    []models.DriverDocument{},
	}

	if err := s.repo.Create(ctx, driver); err != nil {
		return nil, err
	}

	s.logger.WithField("driver_id", driver.ID.Hex()).Info("driver registered")

	return driver, nil
}

func (s *driverService) GetDriver(ctx context.Context, id string) (*models.Driver, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrDriverNotFound
	}

	driver, err := s.repo.GetByID(ctx, objectID)
	if err != nil {
		return nil, ErrDriverNotFound
	}

	return driver, nil
}

func (s *driverService) ListDrivers(ctx context.Context, status string, params *utils.PaginationParams) ([]*models.Driver, int64, error) {
	if status != "" {
		return s.repo.GetByStatus(ctx, models.DriverStatus(status), params)
	}
	return s.repo.List(ctx, params)
}

func (s *driverService) UploadDocument(ctx context.Context, id string, docType models.DriverDocumentType, filename, contentType string, size int64, content io.Reader) (*models.DriverDocument, error) {
	driver, err := s.GetDriver(ctx, id)
	if err != nil {
		return nil, err
	}

	if !validDocumentType(docType) {
		return nil, ErrInvalidDocumentType
	}
	if size > utils.MaxDocumentSize {
		return nil, ErrDocumentTooLarge
	}
	if !utils.IsDocumentFile(filename) {
		return nil, ErrInvalidDocumentType
	}

	key := fmt.Sprintf("drivers/%s/%s%s", driver.ID.Hex(), docType, utils.GetFileExtension(filename))

	uploaded, err := s.storage.Upload(ctx, &storage.UploadRequest{
		Key:         key,
		Reader:      content,
		ContentType: contentType,
		Size:        size,
		Metadata: map[string]string{
			"driver_id":     driver.ID.Hex(),
			"document_type": string(docType),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	doc := &models.DriverDocument{
		Type:       docType,
		StorageKey: uploaded.Key,
		URL:        uploaded.URL,
		UploadedAt: time.Now(),
	}

	if err := s.repo.AddDocument(ctx, driver.ID, doc); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"driver_id":     driver.ID.Hex(),
		"document_type": docType,
	}).Info("driver document uploaded")

	return doc, nil
}

func (s *driverService) SetApproval(ctx context.Context, id string, approved bool) (*models.Driver, error) {
	driver, err := s.GetDriver(ctx, id)
	if err != nil {
		return nil, err
	}

	status := models.DriverStatusRejected
	if approved {
		status = models.DriverStatusApproved
	}

	if err := s.repo.UpdateStatus(ctx, driver.ID, status); err != nil {
		return nil, err
	}
	driver.Status = status

	s.logger.WithFields(map[string]interface{}{
		"driver_id": driver.ID.Hex(),
		"status":    status,
	}).Info("driver approval updated")

	return driver, nil
}

func (s *driverService) DocumentURL(ctx context.Context, id string, docType models.DriverDocumentType, expiry time.Duration) (string, error) {
	driver, err := s.GetDriver(ctx, id)
	if err != nil {
		return "", err
	}

	for _, doc := range driver.Documents {
		if doc.Type == docType {
			return s.storage.GetURL(ctx, doc.StorageKey, expiry)
		}
	}

	return "", fmt.Errorf("document %s not found", docType)
}

func validDocumentType(docType models.DriverDocumentType) bool {
	switch docType {
	case models.DocumentLicence, models.DocumentInsurance, models.DocumentVanPhoto:
		return true
	}
	return false
}
