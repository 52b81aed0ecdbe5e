package handler

import (
	"encoding/base64"
	"errors"
	"fmt"
	"petshop_manager/constants"
	"petshop_manager/database"
	"petshop_manager/helper"
	"petshop_manager/model"
	"petshop_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateBooking(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
	}

	input := c.Locals("inputCreateBooking").(model.CreateBookingInput)

	bookingDate, err := time.Parse("2006-01-02", input.BookingDate)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày hẹn không hợp lệ", err, "bookingDate")
	}
	if bookingDate.Before(time.Now().Truncate(24 * time.Hour)) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Không thể đặt lịch cho ngày trong quá khứ", errors.New("bookingDate in past"), "bookingDate")
	}

	var booking model.Booking
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var pet model.Pet
		if input.PetId != nil {
			if err := tx.Where("id = ? AND owner_id = ? AND is_active = ?", *input.PetId, claim.UserId, true).First(&pet).Error; err != nil {
				return errors.New("thú cưng không tồn tại hoặc không thuộc về bạn")
			}
			if pet.Weight == nil || *pet.Weight <= 0 {
				return errors.New("vui lòng cập nhật cân nặng thú cưng trước khi đặt lịch")
			}
		} else {
			// Khách chưa có hồ sơ thú cưng thì tạo luôn từ thông tin khai kèm
			if input.PetInfo == nil {
				return errors.New("vui lòng chọn thú cưng hoặc khai thông tin thú cưng")
			}
			petType := input.PetInfo.Type
			if !utils.IsValidValueOfConstant(petType, constants.PET_TYPES) {
				petType = constants.PET_TYPE_OTHER
			}
			pet = model.Pet{
				OwnerId:  claim.UserId,
				Name:     input.PetInfo.Name,
				Type:     petType,
				Breed:    input.PetInfo.Breed,
				Weight:   input.PetInfo.Weight,
				IsActive: true,
			}
			if err := tx.Create(&pet).Error; err != nil {
				return err
			}
		}

		var service model.SpaService
		if err := tx.Preload("Pricings", func(db *gorm.DB) *gorm.DB {
			return db.Order("min_weight ASC")
		}).Where("id = ? AND is_active = ?", input.ServiceId, true).First(&service).Error; err != nil {
			return errors.New("dịch vụ không tồn tại hoặc đã ngừng hoạt động")
		}

		price, err := helper.PriceForWeight(service.Pricings, *pet.Weight)
		if err != nil {
			return err
		}

		endTime, err := helper.AddMinutes(input.StartTime, service.DurationMinutes)
		if err != nil {
			return err
		}

		// Mỗi khung giờ chỉ phục vụ một lịch hẹn, bất kể của ai
		var existing model.Bookings
		if err := tx.Where("booking_date = ? AND status NOT IN ?",
			bookingDate, []string{constants.BOOKING_CANCELLED, constants.BOOKING_NO_SHOW}).
			Find(&existing).Error; err != nil {
			return err
		}
		if conflict := helper.FindConflict(existing, input.StartTime, endTime); conflict != nil {
			return fmt.Errorf("khung giờ từ %s đến %s đã có lịch hẹn khác", conflict.StartTime, conflict.EndTime)
		}

		booking = model.Booking{
			BookingCode: helper.GenerateBookingCode(),
			UserId:      claim.UserId,
			PetId:       pet.ID,
			ServiceId:   service.ID,
			BookingDate: bookingDate,
			StartTime:   input.StartTime,
			EndTime:     endTime,
			Status:      constants.BOOKING_PENDING,
			Price:       price,
			PetWeight:   *pet.Weight,
			Note:        input.Note,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	database.DB.Preload("Pet").Preload("Service").First(&booking, booking.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, booking)
}

// CheckAvailability kiểm tra một khung giờ có còn trống hay không,
// lịch của bất kỳ thú cưng nào cũng chiếm khung giờ đó
func CheckAvailability(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
	}

	serviceId := c.QueryInt("serviceId")
	date := c.Query("date")
	startTime := c.Query("startTime")
	if serviceId <= 0 || date == "" || startTime == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Thiếu serviceId, date hoặc startTime", errors.New("missing params"))
	}

	bookingDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày không đúng định dạng YYYY-MM-DD", err, "date")
	}

	var service model.SpaService
	if err := database.DB.Where("id = ? AND is_active = ?", serviceId, true).First(&service).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Dịch vụ không tồn tại", err)
	}

	endTime, err := helper.AddMinutes(startTime, service.DurationMinutes)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, err.Error(), err, "startTime")
	}

	var existing model.Bookings
	if err := database.DB.Where("booking_date = ? AND status NOT IN ?",
		bookingDate, []string{constants.BOOKING_CANCELLED, constants.BOOKING_NO_SHOW}).
		Find(&existing).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	available := helper.FindConflict(existing, startTime, endTime) == nil
	busySlots := []fiber.Map{}
	for _, b := range existing {
		busySlots = append(busySlots, fiber.Map{"startTime": b.StartTime, "endTime": b.EndTime})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"available": available,
		"startTime": startTime,
		"endTime":   endTime,
		"busySlots": busySlots,
	})
}

func GetMyBookings(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
	}

	filter := new(model.FilterBooking)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Booking{}).Where("user_id = ?", claim.UserId)
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var bookings model.Bookings
	if err := db.Preload("Pet").Preload("Service").Order("booking_date DESC, start_time DESC").Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       bookings,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetBookings(c *fiber.Ctx) error {
	_, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	filter := new(model.FilterBooking)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Booking{})
	if filter.SearchKey != "" {
		db = db.Where("booking_code ILIKE ?", "%"+filter.SearchKey+"%")
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.UserId != nil {
		db = db.Where("user_id = ?", *filter.UserId)
	}
	if filter.ServiceId != nil {
		db = db.Where("service_id = ?", *filter.ServiceId)
	}
	if filter.StaffId != nil {
		db = db.Where("staff_id = ?", *filter.StaffId)
	}
	if filter.FromDate != nil {
		db = db.Where("booking_date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		db = db.Where("booking_date <= ?", *filter.ToDate)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var bookings model.Bookings
	err := db.Preload("Pet").Preload("Service").Preload("User").Preload("Staff").
		Order("booking_date DESC, start_time ASC").Find(&bookings).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       bookings,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetBookingByCode(c *fiber.Ctx) error {
	claim, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)

	bookingCode := c.Params("bookingCode")
	var booking model.Booking
	err := database.DB.
		Preload("Pet").
		Preload("Service").
		Preload("User").
		Preload("Staff").
		Where("booking_code = ?", bookingCode).
		First(&booking).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if !isAdmin && !isStaff && booking.UserId != claim.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Bạn không có quyền xem lịch hẹn này", errors.New("not owner"))
	}

	// QR để quét check-in tại quầy
	qrBytes, err := utils.GenerateQRCode(booking.BookingCode, 256)
	var qrBase64 string
	if err == nil {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"booking": booking,
		"qr":      qrBase64,
	})
}

func UpdateBookingStatus(c *fiber.Ctx) error {
	claim, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)

	bookingId := c.Locals("inputBookingId").(uint)
	input := c.Locals("inputUpdateBookingStatus").(model.UpdateBookingStatusInput)

	var booking model.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("User").Preload("Pet").Preload("Service").First(&booking, bookingId).Error; err != nil {
			return errors.New("lịch hẹn không tồn tại")
		}

		// Khách hàng chỉ được hủy lịch của mình
		if !isAdmin && !isStaff {
			if booking.UserId != claim.UserId {
				return errors.New("bạn không có quyền cập nhật lịch hẹn này")
			}
			if input.Status != constants.BOOKING_CANCELLED {
				return errors.New("bạn chỉ có thể hủy lịch hẹn")
			}
		}

		if !helper.CanTransitionBooking(booking.Status, input.Status) {
			return fmt.Errorf("không thể chuyển trạng thái từ %s sang %s", booking.Status, input.Status)
		}

		wasConfirmed := booking.Status == constants.BOOKING_PENDING && input.Status == constants.BOOKING_CONFIRMED

		booking.Status = input.Status
		now := time.Now()
		switch input.Status {
		case constants.BOOKING_CONFIRMED:
			booking.ConfirmedAt = &now
		case constants.BOOKING_COMPLETED:
			booking.CompletedAt = &now
		case constants.BOOKING_CANCELLED:
			booking.CancelledAt = &now
			booking.CancelReason = input.Reason
		}
		if (isAdmin || isStaff) && input.StaffNote != nil {
			booking.StaffNote = input.StaffNote
		}

		if err := tx.Save(&booking).Error; err != nil {
			return err
		}

		if wasConfirmed {
			utils.SendBookingConfirmationEmail(booking.User.Email, utils.BookingConfirmationData{
				BookingCode:  booking.BookingCode,
				CustomerName: booking.User.FullName,
				ServiceName:  booking.Service.Name,
				PetName:      booking.Pet.Name,
				BookingDate:  booking.BookingDate.Format("02/01/2006"),
				StartTime:    booking.StartTime,
				EndTime:      booking.EndTime,
				Price:        booking.Price,
			})
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func AssignStaff(c *fiber.Ctx) error {
	_, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	bookingId := c.Locals("inputBookingId").(uint)
	input := c.Locals("inputAssignStaff").(model.AssignStaffInput)

	var booking model.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingId).Error; err != nil {
			return errors.New("lịch hẹn không tồn tại")
		}
		if booking.Status == constants.BOOKING_CANCELLED || booking.Status == constants.BOOKING_COMPLETED {
			return errors.New("lịch hẹn đã kết thúc, không thể phân công")
		}

		var staff model.User
		if err := tx.Where("id = ? AND role IN ? AND is_active = ?",
			input.StaffId, []string{constants.ROLE_STAFF, constants.ROLE_ADMIN}, true).First(&staff).Error; err != nil {
			return errors.New("nhân viên không tồn tại hoặc đã nghỉ việc")
		}

		// Nhân viên không thể phục vụ hai lịch trùng giờ
		var existing model.Bookings
		if err := tx.Where("staff_id = ? AND booking_date = ? AND id != ? AND status NOT IN ?",
			staff.ID, booking.BookingDate, booking.ID,
			[]string{constants.BOOKING_CANCELLED, constants.BOOKING_NO_SHOW}).
			Find(&existing).Error; err != nil {
			return err
		}
		for _, b := range existing {
			if helper.Overlaps(booking.StartTime, booking.EndTime, b.StartTime, b.EndTime) {
				return fmt.Errorf("nhân viên đã có lịch từ %s đến %s trong ngày này", b.StartTime, b.EndTime)
			}
		}

		booking.StaffId = &staff.ID
		return tx.Save(&booking).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	database.DB.Preload("Staff").First(&booking, booking.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}
