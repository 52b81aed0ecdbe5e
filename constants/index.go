package constants

// Roles
const (
	ROLE_ADMIN    = "ADMIN"
	ROLE_STAFF    = "STAFF"
	ROLE_CUSTOMER = "CUSTOMER"
)

var ROLE = []string{ROLE_ADMIN, ROLE_STAFF, ROLE_CUSTOMER}

// Order status
const (
	ORDER_PENDING    = "PENDING"
	ORDER_CONFIRMED  = "CONFIRMED"
	ORDER_PROCESSING = "PROCESSING"
	ORDER_SHIPPING   = "SHIPPING"
	ORDER_DELIVERED  = "DELIVERED"
	ORDER_COMPLETED  = "COMPLETED"
	ORDER_CANCELLED  = "CANCELLED"
)

// Payment
const (
	PAYMENT_PENDING  = "PENDING"
	PAYMENT_PAID     = "PAID"
	PAYMENT_FAILED   = "FAILED"
	PAYMENT_REFUNDED = "REFUNDED"

	PAYMENT_METHOD_COD           = "COD"
	PAYMENT_METHOD_BANK_TRANSFER = "BANK_TRANSFER"
	PAYMENT_METHOD_VNPAY         = "VNPAY"
	PAYMENT_METHOD_MOMO          = "MOMO"
	PAYMENT_METHOD_ZALOPAY       = "ZALOPAY"
)

var PAYMENT_METHODS = []string{
	PAYMENT_METHOD_COD, PAYMENT_METHOD_BANK_TRANSFER,
	PAYMENT_METHOD_VNPAY, PAYMENT_METHOD_MOMO, PAYMENT_METHOD_ZALOPAY,
}
var PAYMENT_STATUSES = []string{PAYMENT_PENDING, PAYMENT_PAID, PAYMENT_FAILED, PAYMENT_REFUNDED}

// Booking status
const (
	BOOKING_PENDING     = "PENDING"
	BOOKING_CONFIRMED   = "CONFIRMED"
	BOOKING_IN_PROGRESS = "IN_PROGRESS"
	BOOKING_COMPLETED   = "COMPLETED"
	BOOKING_CANCELLED   = "CANCELLED"
	BOOKING_NO_SHOW     = "NO_SHOW"
)

// Voucher
const (
	DISCOUNT_PERCENTAGE   = "PERCENTAGE"
	DISCOUNT_FIXED_AMOUNT = "FIXED_AMOUNT"

	APPLY_TO_ALL      = "ALL"
	APPLY_TO_PRODUCTS = "PRODUCTS"
	APPLY_TO_SERVICES = "SERVICES"
)

// Stock movement
const (
	MOVEMENT_IMPORT     = "IMPORT"
	MOVEMENT_EXPORT     = "EXPORT"
	MOVEMENT_ADJUSTMENT = "ADJUSTMENT"
	MOVEMENT_RETURN     = "RETURN"
	MOVEMENT_DAMAGED    = "DAMAGED"
)

// Pet type
var PET_TYPES = []string{"DOG", "CAT", "BIRD", "FISH", "HAMSTER", "RABBIT", "OTHER"}

const PET_TYPE_OTHER = "OTHER"

// Defaults
const (
	DEFAULT_SHIPPING_FEE float64 = 30000
	LOW_STOCK_THRESHOLD  int     = 10
)

// Messages
const (
	ERROR_INTERNAL_ERROR       = "Lỗi hệ thống, vui lòng thử lại sau"
	ERROR_INPUT                = "Dữ liệu đầu vào không hợp lệ"
	ERROR_PARSE_DATA_TO_LOCALS = "Lỗi parse dữ liệu"
	ERROR_CREATE               = "Tạo mới thất bại"
	ERROR_EDIT                 = "Cập nhật thất bại"
	DATA_INPUT_IS_NOT_NUMBER   = "Tham số phải là số"
	NOT_FOUND_RECORDS          = "Không tìm thấy dữ liệu"
	NOT_ADMIN                  = "Bạn không có thẩm quyền"
	NOT_LOGGED_IN              = "Vui lòng đăng nhập"
	MISSING_LOGIN_INPUT        = "Thiếu thông tin đăng nhập"
	INVALID_EMAIL              = "Email không tồn tại"
	INVALID_PASSWORD           = "Mật khẩu không đúng"
	ACCOUNT_NOT_ACTIVE         = "Tài khoản đã bị khóa"
	CAN_NOT_HASH_PASSWORD      = "Không thể mã hóa mật khẩu"
	EMAIL_EXISTS               = "Email đã tồn tại"
	PHONE_EXISTS               = "Số điện thoại đã tồn tại"
	ROLE_NOT_EXISTS            = "Vai trò không hợp lệ"
)
