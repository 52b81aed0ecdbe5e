package handler

import (
	"errors"
	"petshop_manager/constants"
	"petshop_manager/database"
	"petshop_manager/helper"
	"petshop_manager/model"
	"petshop_manager/utils"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func GetVouchers(c *fiber.Ctx) error {
	_, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	filter := new(model.FilterVoucher)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Voucher{})
	if filter.SearchKey != "" {
		searchKey := "%" + filter.SearchKey + "%"
		db = db.Where("code ILIKE ? OR name ILIKE ?", searchKey, searchKey)
	}
	if filter.Active != nil {
		db = db.Where("is_active = ?", *filter.Active)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var vouchers model.Vouchers
	if err := db.Order("created_at DESC").Find(&vouchers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       vouchers,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// GetActiveVouchers danh sách mã đang hiệu lực cho khách xem
func GetActiveVouchers(c *fiber.Ctx) error {
	now := time.Now()

	var vouchers model.Vouchers
	err := database.DB.
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, now, now).
		Where("usage_limit IS NULL OR used_count < usage_limit").
		Order("end_date ASC").
		Find(&vouchers).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, vouchers)
}

func CreateVoucher(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input := c.Locals("inputCreateVoucher").(model.CreateVoucherInput)

	code := strings.ToUpper(input.Code)
	var existed model.Voucher
	if err := database.DB.Where("code = ?", code).First(&existed).Error; err == nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Mã giảm giá đã tồn tại", errors.New("code exists"), "code")
	}

	startDate, _ := time.Parse("2006-01-02", input.StartDate)
	endDate, _ := time.Parse("2006-01-02", input.EndDate)

	applyTo := input.ApplyTo
	if applyTo == "" {
		applyTo = constants.APPLY_TO_ALL
	}

	voucher := model.Voucher{
		Code:              code,
		Name:              input.Name,
		Description:       input.Description,
		DiscountType:      input.DiscountType,
		DiscountValue:     input.DiscountValue,
		MinOrderAmount:    input.MinOrderAmount,
		MaxDiscount:       input.MaxDiscount,
		ApplyTo:           applyTo,
		StartDate:         startDate,
		EndDate:           endDate,
		UsageLimit:        input.UsageLimit,
		UsageLimitPerUser: input.UsageLimitPerUser,
		IsActive:          true,
	}
	if err := database.DB.Create(&voucher).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, voucher)
}

func EditVoucher(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	voucherId := c.Locals("inputVoucherId").(uint)
	input := c.Locals("inputEditVoucher").(model.EditVoucherInput)

	var voucher model.Voucher
	if err := database.DB.First(&voucher, voucherId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if input.Name != nil {
		voucher.Name = *input.Name
	}
	if input.Description != nil {
		voucher.Description = input.Description
	}
	if input.DiscountValue != nil {
		if voucher.DiscountType == constants.DISCOUNT_PERCENTAGE && *input.DiscountValue > 100 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Phần trăm giảm không được vượt quá 100", errors.New("discountValue invalid"), "discountValue")
		}
		voucher.DiscountValue = *input.DiscountValue
	}
	if input.MinOrderAmount != nil {
		voucher.MinOrderAmount = *input.MinOrderAmount
	}
	if input.MaxDiscount != nil {
		voucher.MaxDiscount = input.MaxDiscount
	}
	if input.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *input.StartDate)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày bắt đầu không hợp lệ", err, "startDate")
		}
		voucher.StartDate = startDate
	}
	if input.EndDate != nil {
		endDate, err := time.Parse("2006-01-02", *input.EndDate)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày kết thúc không hợp lệ", err, "endDate")
		}
		voucher.EndDate = endDate
	}
	if input.UsageLimit != nil {
		voucher.UsageLimit = input.UsageLimit
	}
	if input.UsageLimitPerUser != nil {
		voucher.UsageLimitPerUser = input.UsageLimitPerUser
	}
	if input.IsActive != nil {
		voucher.IsActive = *input.IsActive
	}

	if voucher.EndDate.Before(voucher.StartDate) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày kết thúc phải sau ngày bắt đầu", errors.New("endDate invalid"), "endDate")
	}

	if err := database.DB.Save(&voucher).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, voucher)
}

// ApplyVoucher xem trước số tiền được giảm trước khi đặt hàng
func ApplyVoucher(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
	}

	input := c.Locals("inputApplyVoucher").(model.ApplyVoucherInput)

	var voucher model.Voucher
	if err := database.DB.Where("code = ?", strings.ToUpper(input.Code)).First(&voucher).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Mã giảm giá không tồn tại", err)
	}

	if !voucher.IsValid(time.Now()) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Mã giảm giá đã hết hạn hoặc hết lượt sử dụng", errors.New("voucher invalid"))
	}

	var userUsed int64
	database.DB.Model(&model.Order{}).
		Where("user_id = ? AND voucher_id = ? AND status != ?", claim.UserId, voucher.ID, constants.ORDER_CANCELLED).
		Count(&userUsed)
	if !voucher.WithinUserLimit(int(userUsed)) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Bạn đã dùng hết lượt sử dụng mã giảm giá này", errors.New("user limit reached"))
	}

	discount := voucher.CalculateDiscount(input.OrderAmount)
	if discount == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"Đơn hàng chưa đạt giá trị tối thiểu để áp dụng mã", errors.New("min order not reached"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"code":        voucher.Code,
		"discount":    discount,
		"finalAmount": input.OrderAmount - discount,
	})
}

func DeleteVouchers(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input := c.Locals("deleteIds").(model.ArrayId)

	if err := database.DB.Model(&model.Voucher{}).Where("id IN ?", input.IDs).Update("is_active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Xóa thất bại", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Xóa thành công"})
}
