package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/minishop-next/internal/constants"
	"github.com/minishop-next/internal/logger"
	"github.com/minishop-next/internal/models"
	"github.com/minishop-next/internal/repository"

	"github.com/shopspring/decimal"
)

// baselineReviewRatings 每个商品自带的四条已验证评价的评分，参与平均分计算
var baselineReviewRatings = []int{5, 5, 4, 5}

// ReviewForm 评价提交表单
type ReviewForm struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Title  string `json:"title"`
	Text   string `json:"text"`
}

// ReviewService 商品评价服务，提交后通过商品目录更新评分并广播变更
type ReviewService struct {
	store   repository.KVStore
	repo    repository.ReviewRepository
	catalog *CatalogService
	now     func() time.Time
}

// NewReviewService 创建评价服务
func NewReviewService(store repository.KVStore, repo repository.ReviewRepository, catalog *CatalogService) *ReviewService {
	return &ReviewService{
		store:   store,
		repo:    repo,
		catalog: catalog,
		now:     time.Now,
	}
}

// List 按排序方式返回商品评价，未知排序按最新在前
func (s *ReviewService) List(ctx context.Context, productID uint, sortBy string) ([]models.Review, error) {
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	reviews, err := s.repo.List(ctx, productID)
	if err != nil {
		return nil, err
	}
	sortReviews(reviews, sortBy)
	return reviews, nil
}

// Submit 保存评价，并按全部评分重新计算商品的 rating 与 reviewCount
func (s *ReviewService) Submit(ctx context.Context, productID uint, form ReviewForm) (*models.Review, *models.Product, error) {
	form, err := normalizeReviewForm(form)
	if err != nil {
		return nil, nil, err
	}
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, ErrProductNotFound
	}

	now := s.now()
	var review models.Review
	err = s.store.Atomic(ctx, func(tx repository.KVStore) error {
		repo := s.repo.WithStore(tx)
		existing, err := repo.List(ctx, productID)
		if err != nil {
			return err
		}
		review = models.Review{
			ID:        nextReviewID(now, existing),
			ProductID: productID,
			Name:      form.Name,
			Rating:    form.Rating,
			Title:     form.Title,
			Text:      form.Text,
			CreatedAt: now.UTC(),
		}
		return repo.Append(ctx, productID, review)
	})
	if err != nil {
		return nil, nil, err
	}

	// 重新读取，包含并发提交的评价
	reviews, err := s.repo.List(ctx, productID)
	if err != nil {
		return &review, nil, err
	}
	rating, count := aggregateRating(reviews)
	result, updated, err := s.catalog.Update(ctx, productID, models.ProductPatch{Rating: &rating, ReviewCount: &count})
	if err != nil {
		return &review, nil, err
	}
	if !result.Found() {
		logger.Warnw("review_product_missing", "product_id", productID, "review_id", review.ID)
		return &review, nil, nil
	}
	logger.Infow("review_submitted", "product_id", productID, "review_id", review.ID, "rating", rating, "review_count", count)
	return &review, updated, nil
}

func normalizeReviewForm(form ReviewForm) (ReviewForm, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Title = strings.TrimSpace(form.Title)
	form.Text = strings.TrimSpace(form.Text)
	switch {
	case form.Name == "":
		return form, invalidField(ErrReviewInvalid, "name")
	case form.Title == "":
		return form, invalidField(ErrReviewInvalid, "title")
	case form.Text == "":
		return form, invalidField(ErrReviewInvalid, "text")
	case form.Rating < 1 || form.Rating > 5:
		return form, invalidField(ErrReviewInvalid, "rating")
	}
	return form, nil
}

// aggregateRating 内置评分与用户评分的平均值（保留 1 位小数）及总条数
func aggregateRating(reviews []models.Review) (float64, int) {
	sum := 0
	for _, r := range baselineReviewRatings {
		sum += r
	}
	for _, r := range reviews {
		sum += r.Rating
	}
	count := len(baselineReviewRatings) + len(reviews)
	avg := decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(count))).Round(1)
	return avg.InexactFloat64(), count
}

func sortReviews(reviews []models.Review, sortBy string) {
	switch sortBy {
	case constants.ReviewSortOldest:
		sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].CreatedAt.Before(reviews[j].CreatedAt) })
	case constants.ReviewSortHighest:
		sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].Rating > reviews[j].Rating })
	case constants.ReviewSortLowest:
		sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].Rating < reviews[j].Rating })
	default:
		sort.SliceStable(reviews, func(i, j int) bool {
			if reviews[i].CreatedAt.Equal(reviews[j].CreatedAt) {
				return reviews[i].ID > reviews[j].ID
			}
			return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
		})
	}
}

// nextReviewID 毫秒时间戳，与已有评价冲突时顺延
func nextReviewID(now time.Time, existing []models.Review) int64 {
	id := now.UnixMilli()
	for _, r := range existing {
		if r.ID >= id {
			id = r.ID + 1
		}
	}
	return id
}
