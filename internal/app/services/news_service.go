package services

import (
	"context"
	"mime/multipart"

	"github.com/olamide/gradekeeper/internal/app/models"
	"github.com/olamide/gradekeeper/internal/app/models/dto"
	"github.com/olamide/gradekeeper/internal/pkg/logger"
)

// NewsStore is the newsletter persistence surface.
// Satisfied by repositories.NewsRepository.
type NewsStore interface {
	Create(ctx context.Context, news *models.News) error
	GetByID(ctx context.Context, id int64) (*models.News, error)
	GetAll(ctx context.Context, category string) ([]*models.News, error)
	Delete(ctx context.Context, id int64) error
}

// ImageStorage stores and removes uploaded newsletter images.
// Satisfied by filestorage.LocalStorage.
type ImageStorage interface {
	SaveImage(fileHeader *multipart.FileHeader) (string, error)
	Delete(url string) error
}

// NewsService defines the interface for newsletter management
type NewsService interface {
	// Create stores a newsletter entry with an optional image attachment.
	Create(ctx context.Context, author *models.Admin, req *dto.CreateNewsRequest, image *multipart.FileHeader) (*models.News, error)
	Get(ctx context.Context, id int64) (*models.News, error)
	List(ctx context.Context, category string) ([]*models.News, error)
	Delete(ctx context.Context, id int64) error
}

// newsServiceImpl implements the NewsService interface
type newsServiceImpl struct {
	news    NewsStore
	storage ImageStorage
}

// NewNewsService creates a new news service instance
func NewNewsService(news NewsStore, storage ImageStorage) NewsService {
	return &newsServiceImpl{
		news:    news,
		storage: storage,
	}
}

func (s *newsServiceImpl) Create(ctx context.Context, author *models.Admin, req *dto.CreateNewsRequest, image *multipart.FileHeader) (*models.News, error) {
	var imageURL *string
	if image != nil {
		url, err := s.storage.SaveImage(image)
		if err != nil {
			return nil, err
		}
		imageURL = &url
	}

	news := &models.News{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Image:    imageURL,
		AuthorID: author.ID,
	}
	if err := s.news.Create(ctx, news); err != nil {
		// The row failed, drop the orphaned image.
		if imageURL != nil {
			if rmErr := s.storage.Delete(*imageURL); rmErr != nil {
				logger.Warn().Err(rmErr).Str("image", *imageURL).Msg("Failed to remove orphaned newsletter image")
			}
		}
		return nil, err
	}
	return news, nil
}

func (s *newsServiceImpl) Get(ctx context.Context, id int64) (*models.News, error) {
	return s.news.GetByID(ctx, id)
}

func (s *newsServiceImpl) List(ctx context.Context, category string) ([]*models.News, error) {
	return s.news.GetAll(ctx, category)
}

func (s *newsServiceImpl) Delete(ctx context.Context, id int64) error {
	news, err := s.news.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.news.Delete(ctx, news.ID); err != nil {
		return err
	}
	if news.Image != nil {
		if err := s.storage.Delete(*news.Image); err != nil {
			logger.Warn().Err(err).Str("image", *news.Image).Msg("Failed to remove newsletter image")
		}
	}
	return nil
}
