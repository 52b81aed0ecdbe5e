package helper

import (
	"errors"
	"fmt"
	"petshop_manager/constants"
	"petshop_manager/model"
)

// bookingTransitions các bước chuyển trạng thái lịch hẹn hợp lệ
var bookingTransitions = map[string][]string{
	constants.BOOKING_PENDING:     {constants.BOOKING_CONFIRMED, constants.BOOKING_CANCELLED},
	constants.BOOKING_CONFIRMED:   {constants.BOOKING_IN_PROGRESS, constants.BOOKING_CANCELLED, constants.BOOKING_NO_SHOW},
	constants.BOOKING_IN_PROGRESS: {constants.BOOKING_COMPLETED},
	constants.BOOKING_COMPLETED:   {},
	constants.BOOKING_CANCELLED:   {},
	constants.BOOKING_NO_SHOW:     {},
}

// CanTransitionBooking kiểm tra lịch hẹn có được chuyển từ from sang to hay không
func CanTransitionBooking(from, to string) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AddMinutes cộng thêm phút vào chuỗi giờ HH:MM, không cho tràn sang ngày hôm sau
func AddMinutes(timeStr string, minutes int) (string, error) {
	var h, m int
	if _, err := fmt.Sscanf(timeStr, "%d:%d", &h, &m); err != nil {
		return "", errors.New("giờ không đúng định dạng HH:MM")
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return "", errors.New("giờ không hợp lệ")
	}
	total := h*60 + m + minutes
	if total >= 24*60 {
		return "", errors.New("lịch hẹn phải kết thúc trong ngày, vui lòng chọn giờ sớm hơn")
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

// Overlaps hai khoảng [start, end) có giao nhau hay không
func Overlaps(newStart, newEnd, existStart, existEnd string) bool {
	return newStart < existEnd && newEnd > existStart
}

// FindConflict lịch hẹn đầu tiên chiếm khung [start, end), bất kể của thú cưng nào
func FindConflict(existing []model.Booking, start, end string) *model.Booking {
	for i := range existing {
		if Overlaps(start, end, existing[i].StartTime, existing[i].EndTime) {
			return &existing[i]
		}
	}
	return nil
}

// PriceForWeight tìm giá theo cân nặng: lấy khung đầu tiên chứa cân nặng,
// không khung nào chứa thì lấy khung cuối cùng
func PriceForWeight(pricings []model.ServicePricing, weight float64) (float64, error) {
	if len(pricings) == 0 {
		return 0, errors.New("dịch vụ chưa có bảng giá")
	}
	for _, p := range pricings {
		if weight >= p.MinWeight && weight < p.MaxWeight {
			return p.Price, nil
		}
	}
	return pricings[len(pricings)-1].Price, nil
}
