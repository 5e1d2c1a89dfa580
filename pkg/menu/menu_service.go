package menu

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"gorm.io/gorm"

	"github.com/littlelemon/backend/domain"
	"github.com/littlelemon/backend/entities"
	"github.com/littlelemon/backend/internal/utils/storage"
)

type (
	MenuService interface {
		AddMenuItem(ctx context.Context, req domain.AddMenuItemRequest) (domain.MenuItemResponse, error)
		UpdateMenuItem(ctx context.Context, id uint, req domain.UpdateMenuItemRequest) (domain.MenuItemResponse, error)
		DeleteMenuItem(ctx context.Context, id uint) error
		GetMenuItem(ctx context.Context, id uint) (domain.MenuItemResponse, error)
		ListMenuItems(ctx context.Context, filter domain.MenuItemFilter) ([]domain.MenuItemResponse, error)
		SetFeatured(ctx context.Context, req domain.SetFeaturedRequest) (string, error)
		UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest) error

		AddCategory(ctx context.Context, req domain.AddCategoryRequest) (string, error)
		ListCategories(ctx context.Context) ([]domain.CategoryResponse, error)
	}

	menuService struct {
		menuRepository MenuRepository
		s3             storage.AwsS3
	}
)

func NewMenuService(menuRepository MenuRepository, s3 storage.AwsS3) MenuService {
	return &menuService{
		menuRepository: menuRepository,
		s3:             s3,
	}
}

func (s *menuService) AddMenuItem(ctx context.Context, req domain.AddMenuItemRequest) (domain.MenuItemResponse, error) {
	if req.Price < 0 {
		return domain.MenuItemResponse{}, domain.ErrInvalidPrice
	}

	if _, err := s.menuRepository.GetCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItemResponse{}, domain.ErrCategoryNotFound
		}
		return domain.MenuItemResponse{}, err
	}

	item := &entities.MenuItem{
		Title:      req.Title,
		Price:      req.Price,
		CategoryID: req.CategoryID,
		Featured:   req.Featured,
	}

	if err := s.menuRepository.AddMenuItem(ctx, item); err != nil {
		return domain.MenuItemResponse{}, err
	}

	return toMenuItemResponse(item), nil
}

func (s *menuService) UpdateMenuItem(ctx context.Context, id uint, req domain.UpdateMenuItemRequest) (domain.MenuItemResponse, error) {
	item, err := s.menuRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItemResponse{}, domain.ErrMenuItemNotFound
		}
		return domain.MenuItemResponse{}, err
	}

	if req.Title != "" {
		item.Title = req.Title
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return domain.MenuItemResponse{}, domain.ErrInvalidPrice
		}
		item.Price = *req.Price
	}
	if req.CategoryID != 0 {
		if _, err := s.menuRepository.GetCategoryByID(ctx, req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.MenuItemResponse{}, domain.ErrCategoryNotFound
			}
			return domain.MenuItemResponse{}, err
		}
		item.CategoryID = req.CategoryID
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
	}

	if err := s.menuRepository.UpdateMenuItem(ctx, item); err != nil {
		return domain.MenuItemResponse{}, err
	}
	return toMenuItemResponse(item), nil
}

func (s *menuService) DeleteMenuItem(ctx context.Context, id uint) error {
	if _, err := s.menuRepository.GetMenuItemByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}
	return s.menuRepository.DeleteMenuItem(ctx, id)
}

func (s *menuService) GetMenuItem(ctx context.Context, id uint) (domain.MenuItemResponse, error) {
	item, err := s.menuRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItemResponse{}, domain.ErrMenuItemNotFound
		}
		return domain.MenuItemResponse{}, err
	}
	return toMenuItemResponse(item), nil
}

func (s *menuService) ListMenuItems(ctx context.Context, filter domain.MenuItemFilter) ([]domain.MenuItemResponse, error) {
	// Only the literal "price" ordering is recognized; anything else falls
	// back to storage order.
	if filter.Ordering != domain.OrderingPrice {
		filter.Ordering = ""
	}

	items, err := s.menuRepository.ListMenuItems(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]domain.MenuItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, toMenuItemResponse(item))
	}
	return result, nil
}

// SetFeatured flips the flag on the one requested item. No other item is
// touched, so several items may carry the flag at once.
func (s *menuService) SetFeatured(ctx context.Context, req domain.SetFeaturedRequest) (string, error) {
	item, err := s.menuRepository.GetMenuItemByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrMenuItemNotFound
		}
		return "", err
	}

	item.Featured = *req.Featured
	if err := s.menuRepository.UpdateMenuItem(ctx, item); err != nil {
		return "", err
	}
	return item.Title, nil
}

func (s *menuService) UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest) error {
	item, err := s.menuRepository.GetMenuItemByID(ctx, req.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}

	key := fmt.Sprintf("menu-items/%d%s", item.ID, filepath.Ext(req.Image.Filename))
	url, err := s.s3.UploadFile(ctx, key, req.Image)
	if err != nil {
		return err
	}

	item.ImageURL = url
	return s.menuRepository.UpdateMenuItem(ctx, item)
}

// AddCategory persists without any duplicate-slug check; the storage
// uniqueness constraint is the only guard.
func (s *menuService) AddCategory(ctx context.Context, req domain.AddCategoryRequest) (string, error) {
	category := &entities.Category{
		Title: req.Title,
		Slug:  req.Slug,
	}
	if err := s.menuRepository.AddCategory(ctx, category); err != nil {
		return "", err
	}
	return category.Title, nil
}

func (s *menuService) ListCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.menuRepository.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, domain.CategoryResponse{
			ID:    category.ID,
			Title: category.Title,
			Slug:  category.Slug,
		})
	}
	return result, nil
}

func toMenuItemResponse(item *entities.MenuItem) domain.MenuItemResponse {
	return domain.MenuItemResponse{
		ID:         item.ID,
		Title:      item.Title,
		Price:      item.Price,
		CategoryID: item.CategoryID,
		Featured:   item.Featured,
		ImageURL:   item.ImageURL,
	}
}
