package model

import "time"

type Booking struct {
	DTO
	BookingCode string `gorm:"unique;size:30;not null" json:"bookingCode"` // Ví dụ: BK1712345678ABCD

	UserId uint `gorm:"not null;index" json:"userId"`
	User   User `gorm:"foreignKey:UserId" json:"user"`

	PetId uint `gorm:"not null;index" json:"petId"`
	Pet   Pet  `gorm:"foreignKey:PetId" json:"pet"`

	ServiceId uint       `gorm:"not null;index" json:"serviceId"`
	Service   SpaService `gorm:"foreignKey:ServiceId" json:"service"`

	BookingDate time.Time `gorm:"not null;index" json:"bookingDate"`
	StartTime   string    `gorm:"size:5;not null" json:"startTime"` // HH:MM
	EndTime     string    `gorm:"size:5;not null" json:"endTime"`   // HH:MM

	Status    string  `gorm:"not null;default:'PENDING'" json:"status"`
	Price     float64 `gorm:"not null" json:"price"`     // Giá chốt theo cân nặng lúc đặt
	PetWeight float64 `gorm:"not null" json:"petWeight"` // Cân nặng lúc đặt, giá đã chốt theo số này

	StaffId *uint `gorm:"index" json:"staffId"`
	Staff   *User `gorm:"foreignKey:StaffId" json:"staff,omitempty"`

	Note         *string `gorm:"type:text" json:"note"`
	StaffNote    *string `gorm:"type:text" json:"staffNote"`
	CancelReason *string `json:"cancelReason"`

	ConfirmedAt *time.Time `json:"confirmedAt"`
	CompletedAt *time.Time `json:"completedAt"`
	CancelledAt *time.Time `json:"cancelledAt"`
}

type Bookings []Booking

// BookingPetInfo thông tin thú cưng khai ngay lúc đặt, dùng khi chưa có hồ sơ
type BookingPetInfo struct {
	Name   string   `validate:"required" json:"name"`
	Type   string   `json:"type"` // Không nhận diện được thì lưu OTHER
	Breed  *string  `json:"breed"`
	Weight *float64 `validate:"required,gt=0" json:"weight"`
}

type CreateBookingInput struct {
	PetId       *uint           `json:"petId"`
	PetInfo     *BookingPetInfo `json:"petInfo"` // Bắt buộc khi không có petId
	ServiceId   uint            `validate:"required" json:"serviceId"`
	BookingDate string          `validate:"required" json:"bookingDate"` // YYYY-MM-DD
	StartTime   string          `validate:"required" json:"startTime"`   // HH:MM
	Note        *string         `json:"note"`
}

type UpdateBookingStatusInput struct {
	Status    string  `validate:"required" json:"status"`
	Reason    *string `json:"reason"`
	StaffNote *string `json:"staffNote"`
}

type AssignStaffInput struct {
	StaffId uint `validate:"required" json:"staffId"`
}

type FilterBooking struct {
	Pagination
	SearchKey string  `json:"searchKey"`
	Status    string  `json:"status"`
	UserId    *uint   `json:"userId"`
	ServiceId *uint   `json:"serviceId"`
	StaffId   *uint   `json:"staffId"`
	FromDate  *string `json:"fromDate"`
	ToDate    *string `json:"toDate"`
}
