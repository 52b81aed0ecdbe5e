package handler

import (
	"errors"
	"petshop_manager/constants"
	"petshop_manager/database"
	"petshop_manager/helper"
	"petshop_manager/model"
	"petshop_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// refreshProductRating tính lại điểm trung bình và số lượt đánh giá đang hiển thị
func refreshProductRating(productId uint) {
	var stats struct {
		Avg   float64
		Count int64
	}
	database.DB.Model(&model.Review{}).
		Where("product_id = ? AND is_visible = ?", productId, true).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Scan(&stats)

	database.DB.Model(&model.Product{}).Where("id = ?", productId).
		Updates(map[string]interface{}{
			"average_rating": stats.Avg,
			"review_count":   stats.Count,
		})
}

func GetReviewsByProduct(c *fiber.Ctx) error {
	productId := c.Locals("inputId").(int)

	filter := new(model.FilterReview)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Review{}).Where("product_id = ? AND is_visible = ?", productId, true)
	if filter.Rating != nil {
		db = db.Where("rating = ?", *filter.Rating)
	}

	var total int64
	db.Count(&total)

	var avgRating float64
	database.DB.Model(&model.Review{}).
		Where("product_id = ? AND is_visible = ?", productId, true).
		Select("COALESCE(AVG(rating), 0)").Scan(&avgRating)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var reviews model.Reviews
	if err := db.Preload("User").Order("created_at DESC").Find(&reviews).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"rows":       reviews,
		"limit":      filter.Limit,
		"page":       filter.Page,
		"totalCount": total,
		"avgRating":  avgRating,
	})
}

// GetMyReviews đánh giá của chính người đang đăng nhập
func GetMyReviews(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
	}

	var reviews model.Reviews
	err := database.DB.
		Preload("Product").
		Where("user_id = ?", claim.UserId).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reviews)
}

func CreateReview(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
	}

	input := c.Locals("inputCreateReview").(model.CreateReviewInput)

	// Chỉ cho đánh giá khi đã mua và nhận hàng thành công
	var purchased int64
	database.DB.Model(&model.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND order_items.product_id = ? AND orders.status = ?",
			claim.UserId, input.ProductId, constants.ORDER_COMPLETED).
		Count(&purchased)
	if purchased == 0 {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Bạn cần mua sản phẩm trước khi đánh giá", errors.New("not purchased"))
	}

	var existed model.Review
	if err := database.DB.Where("user_id = ? AND product_id = ?", claim.UserId, input.ProductId).First(&existed).Error; err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Bạn đã đánh giá sản phẩm này rồi", errors.New("review exists"))
	}

	review := model.Review{
		UserId:    claim.UserId,
		ProductId: input.ProductId,
		Rating:    input.Rating,
		Comment:   input.Comment,
		IsVisible: true,
	}
	if err := database.DB.Create(&review).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	refreshProductRating(review.ProductId)

	return utils.SuccessResponse(c, fiber.StatusCreated, review)
}

func EditReview(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoUserFromToken(c)

	reviewId := c.Locals("inputReviewId").(uint)
	input := c.Locals("inputEditReview").(model.EditReviewInput)

	var review model.Review
	if err := database.DB.First(&review, reviewId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if review.UserId != claim.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Bạn không có quyền sửa đánh giá này", errors.New("not owner"))
	}

	if input.Rating != nil {
		review.Rating = *input.Rating
	}
	if input.Comment != nil {
		review.Comment = input.Comment
	}

	if err := database.DB.Save(&review).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	refreshProductRating(review.ProductId)

	return utils.SuccessResponse(c, fiber.StatusOK, review)
}

func DeleteReview(c *fiber.Ctx) error {
	claim, isAdmin, _, _ := helper.GetInfoUserFromToken(c)

	reviewId := c.Locals("inputId").(int)
	var review model.Review
	if err := database.DB.First(&review, reviewId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	// Admin ẩn đánh giá, chủ đánh giá xóa hẳn
	if isAdmin && review.UserId != claim.UserId {
		if err := database.DB.Model(&review).Update("is_visible", false).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Xóa thất bại", err)
		}
		refreshProductRating(review.ProductId)
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Đã ẩn đánh giá"})
	}

	if review.UserId != claim.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Bạn không có quyền xóa đánh giá này", errors.New("not owner"))
	}

	if err := database.DB.Delete(&review).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Xóa thất bại", err)
	}

	refreshProductRating(review.ProductId)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Xóa thành công"})
}
