package helper

import (
	"petshop_manager/constants"
	"petshop_manager/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionBooking(t *testing.T) {
	assert.True(t, CanTransitionBooking(constants.BOOKING_PENDING, constants.BOOKING_CONFIRMED))
	assert.True(t, CanTransitionBooking(constants.BOOKING_PENDING, constants.BOOKING_CANCELLED))
	assert.True(t, CanTransitionBooking(constants.BOOKING_CONFIRMED, constants.BOOKING_IN_PROGRESS))
	assert.True(t, CanTransitionBooking(constants.BOOKING_CONFIRMED, constants.BOOKING_CANCELLED))
	assert.True(t, CanTransitionBooking(constants.BOOKING_CONFIRMED, constants.BOOKING_NO_SHOW))
	assert.True(t, CanTransitionBooking(constants.BOOKING_IN_PROGRESS, constants.BOOKING_COMPLETED))

	assert.False(t, CanTransitionBooking(constants.BOOKING_PENDING, constants.BOOKING_IN_PROGRESS))
	assert.False(t, CanTransitionBooking(constants.BOOKING_PENDING, constants.BOOKING_NO_SHOW))
	assert.False(t, CanTransitionBooking(constants.BOOKING_IN_PROGRESS, constants.BOOKING_CANCELLED))
	assert.False(t, CanTransitionBooking(constants.BOOKING_COMPLETED, constants.BOOKING_IN_PROGRESS))
	assert.False(t, CanTransitionBooking(constants.BOOKING_CANCELLED, constants.BOOKING_PENDING))
	assert.False(t, CanTransitionBooking(constants.BOOKING_NO_SHOW, constants.BOOKING_CONFIRMED))
}

func TestAddMinutes(t *testing.T) {
	got, err := AddMinutes("10:00", 30)
	assert.NoError(t, err)
	assert.Equal(t, "10:30", got)

	got, err = AddMinutes("09:45", 30)
	assert.NoError(t, err)
	assert.Equal(t, "10:15", got)

	// tràn sang ngày hôm sau thì từ chối, nếu không giờ kết thúc
	// sẽ nhỏ hơn giờ bắt đầu và kiểm tra trùng giờ mất tác dụng
	_, err = AddMinutes("23:30", 60)
	assert.Error(t, err)

	got, err = AddMinutes("23:00", 59)
	assert.NoError(t, err)
	assert.Equal(t, "23:59", got)

	_, err = AddMinutes("23:00", 60)
	assert.Error(t, err)

	_, err = AddMinutes("abc", 30)
	assert.Error(t, err)

	_, err = AddMinutes("25:00", 30)
	assert.Error(t, err)
}

func TestOverlaps(t *testing.T) {
	// trùng một phần
	assert.True(t, Overlaps("10:15", "10:45", "10:00", "10:30"))
	// bao trọn
	assert.True(t, Overlaps("09:00", "12:00", "10:00", "10:30"))
	// nằm trong
	assert.True(t, Overlaps("10:10", "10:20", "10:00", "10:30"))
	// nối đuôi nhau thì không tính trùng
	assert.False(t, Overlaps("10:30", "11:00", "10:00", "10:30"))
	assert.False(t, Overlaps("09:30", "10:00", "10:00", "10:30"))
	// tách hẳn
	assert.False(t, Overlaps("13:00", "14:00", "10:00", "10:30"))
}

func TestFindConflict(t *testing.T) {
	existing := []model.Booking{
		{PetId: 1, StartTime: "09:00", EndTime: "10:00"},
		{PetId: 2, StartTime: "14:00", EndTime: "15:30"},
	}

	// lịch của thú cưng khác vẫn chiếm khung giờ
	conflict := FindConflict(existing, "14:30", "15:00")
	assert.NotNil(t, conflict)
	assert.Equal(t, uint(2), conflict.PetId)

	conflict = FindConflict(existing, "09:30", "10:30")
	assert.NotNil(t, conflict)
	assert.Equal(t, uint(1), conflict.PetId)

	assert.Nil(t, FindConflict(existing, "10:00", "11:00"))
	assert.Nil(t, FindConflict(existing, "16:00", "17:00"))
	assert.Nil(t, FindConflict(nil, "09:00", "10:00"))
}

func TestPriceForWeight(t *testing.T) {
	pricings := []model.ServicePricing{
		{MinWeight: 0, MaxWeight: 5, Price: 150000},
		{MinWeight: 5, MaxWeight: 10, Price: 200000},
		{MinWeight: 10, MaxWeight: 20, Price: 280000},
	}

	price, err := PriceForWeight(pricings, 3)
	assert.NoError(t, err)
	assert.Equal(t, float64(150000), price)

	// cận dưới thuộc khung, cận trên thuộc khung kế tiếp
	price, err = PriceForWeight(pricings, 5)
	assert.NoError(t, err)
	assert.Equal(t, float64(200000), price)

	price, err = PriceForWeight(pricings, 19.9)
	assert.NoError(t, err)
	assert.Equal(t, float64(280000), price)

	// vượt mọi khung thì lấy khung cuối
	price, err = PriceForWeight(pricings, 35)
	assert.NoError(t, err)
	assert.Equal(t, float64(280000), price)

	_, err = PriceForWeight(nil, 3)
	assert.Error(t, err)
}
