package handler

import (
	"errors"
	"petshop_manager/constants"
	"petshop_manager/database"
	"petshop_manager/helper"
	"petshop_manager/model"
	"petshop_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

func GetDashboardStats(c *fiber.Ctx) error {
	_, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB

	type TopProduct struct {
		ProductId uint    `json:"productId"`
		Name      string  `json:"name"`
		Quantity  int64   `json:"quantity"`
		Revenue   float64 `json:"revenue"`
	}

	var stats struct {
		Products  int64 `json:"products"`
		Orders    int64 `json:"orders"`
		Bookings  int64 `json:"bookings"`
		Customers int64 `json:"customers"`

		PendingOrders   int64 `json:"pendingOrders"`
		PendingBookings int64 `json:"pendingBookings"`
		LowStockCount   int64 `json:"lowStockCount"`

		TodayRevenue     float64 `json:"todayRevenue"`
		YesterdayRevenue float64 `json:"yesterdayRevenue"`
		ThisMonthRevenue float64 `json:"thisMonthRevenue"`
		RevenueGrowth    float64 `json:"revenueGrowth"`

		TodayOrders     int64   `json:"todayOrders"`
		YesterdayOrders int64   `json:"yesterdayOrders"`
		OrdersGrowth    float64 `json:"ordersGrowth"`

		TopProducts []TopProduct `json:"topProducts"`
	}

	now := time.Now().In(time.Local)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)
	yesterdayEnd := todayEnd.AddDate(0, 0, -1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	db.Model(&model.Product{}).Where("is_active = ?", true).Count(&stats.Products)
	db.Model(&model.Order{}).Count(&stats.Orders)
	db.Model(&model.Booking{}).Count(&stats.Bookings)
	db.Model(&model.User{}).Where("role = ?", constants.ROLE_CUSTOMER).Count(&stats.Customers)

	db.Model(&model.Order{}).Where("status = ?", constants.ORDER_PENDING).Count(&stats.PendingOrders)
	db.Model(&model.Booking{}).Where("status = ?", constants.BOOKING_PENDING).Count(&stats.PendingBookings)
	db.Model(&model.ProductVariant{}).
		Where("is_active = ? AND stock <= ?", true, constants.LOW_STOCK_THRESHOLD).
		Count(&stats.LowStockCount)

	// Doanh thu gộp đơn hàng đã thanh toán và lịch spa đã hoàn thành
	revenueBetween := func(from, to time.Time) float64 {
		var orderRevenue, bookingRevenue float64
		db.Raw(`
        SELECT COALESCE(SUM(total_amount), 0)
        FROM orders
        WHERE payment_status = ?
          AND created_at BETWEEN ? AND ?
    `, constants.PAYMENT_PAID, from, to).Scan(&orderRevenue)

		db.Raw(`
        SELECT COALESCE(SUM(price), 0)
        FROM bookings
        WHERE status = ?
          AND completed_at BETWEEN ? AND ?
    `, constants.BOOKING_COMPLETED, from, to).Scan(&bookingRevenue)

		return orderRevenue + bookingRevenue
	}

	stats.TodayRevenue = revenueBetween(todayStart, todayEnd)
	stats.YesterdayRevenue = revenueBetween(yesterdayStart, yesterdayEnd)
	stats.ThisMonthRevenue = revenueBetween(monthStart, todayEnd)
	stats.RevenueGrowth = utils.CalculateGrowth(stats.TodayRevenue, stats.YesterdayRevenue)

	db.Model(&model.Order{}).
		Where("created_at BETWEEN ? AND ?", todayStart, todayEnd).
		Count(&stats.TodayOrders)
	db.Model(&model.Order{}).
		Where("created_at BETWEEN ? AND ?", yesterdayStart, yesterdayEnd).
		Count(&stats.YesterdayOrders)
	stats.OrdersGrowth = utils.CalculateGrowth(float64(stats.TodayOrders), float64(stats.YesterdayOrders))

	// Top 5 sản phẩm bán chạy trong tháng
	db.Raw(`
        SELECT
            oi.product_id,
            oi.product_name AS name,
            COALESCE(SUM(oi.quantity), 0) AS quantity,
            COALESCE(SUM(oi.line_total), 0) AS revenue
        FROM order_items oi
        JOIN orders o ON o.id = oi.order_id
        WHERE o.status NOT IN (?)
          AND o.created_at >= ?
        GROUP BY oi.product_id, oi.product_name
        ORDER BY quantity DESC
        LIMIT 5
    `, constants.ORDER_CANCELLED, monthStart).Scan(&stats.TopProducts)

	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}

// GetRevenueByDay doanh thu theo ngày trong một khoảng, mặc định 30 ngày gần nhất
func GetRevenueByDay(c *fiber.Ctx) error {
	_, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	fromDate := c.Query("fromDate")
	toDate := c.Query("toDate")
	if fromDate == "" {
		fromDate = time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	}
	if toDate == "" {
		toDate = time.Now().Format("2006-01-02")
	}

	type DayRevenue struct {
		Date    string  `json:"date"`
		Orders  int64   `json:"orders"`
		Revenue float64 `json:"revenue"`
	}

	var rows []DayRevenue
	database.DB.Raw(`
        SELECT
            TO_CHAR(created_at, 'YYYY-MM-DD') AS date,
            COUNT(*) AS orders,
            COALESCE(SUM(total_amount), 0) AS revenue
        FROM orders
        WHERE payment_status = ?
          AND created_at BETWEEN ? AND ?
        GROUP BY TO_CHAR(created_at, 'YYYY-MM-DD')
        ORDER BY date ASC
    `, constants.PAYMENT_PAID, fromDate+" 00:00:00", toDate+" 23:59:59").Scan(&rows)

	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}
