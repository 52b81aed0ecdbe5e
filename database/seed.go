package database

import (
	"log"
	"petshop_manager/constants"
	"petshop_manager/model"
	"petshop_manager/utils"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func parseDate(dateStr string) time.Time {
	t, _ := time.Parse("2006-01-02", dateStr)
	return t
}

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("123456cn"), 10)
	HashPassword := string(bytes)
	if err != nil {
		HashPassword = "123456cn"
	}
	users := []model.User{
		{FullName: "Administration", Email: "admin@petshop.vn", Phone: "0369757203", Password: HashPassword, IsActive: true, Role: constants.ROLE_ADMIN},
	}

	for _, user := range users {
		// Tạo mới nếu không tồn tại
		if err := db.Where(model.User{Email: user.Email}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed data for user:", user.Email, "error:", err)
		}
	}

	categories := []model.Category{
		{Name: "Thức ăn cho chó", Slug: "thuc-an-cho-cho"},
		{Name: "Thức ăn cho mèo", Slug: "thuc-an-cho-meo"},
		{Name: "Phụ kiện", Slug: "phu-kien"},
		{Name: "Đồ chơi", Slug: "do-choi"},
		{Name: "Vệ sinh và chăm sóc", Slug: "ve-sinh-va-cham-soc"},
	}
	for i := range categories {
		if err := db.Where("slug = ?", categories[i].Slug).FirstOrCreate(&categories[i]).Error; err != nil {
			log.Println("failed to seed data for category:", categories[i].Slug, "error:", err)
		}
	}

	services := []model.SpaService{
		{Name: "Tắm và vệ sinh", Slug: "tam-va-ve-sinh", DurationMinutes: 60},
		{Name: "Cắt tỉa lông", Slug: "cat-tia-long", DurationMinutes: 90},
		{Name: "Combo tắm và cắt tỉa", Slug: "combo-tam-va-cat-tia", DurationMinutes: 120},
		{Name: "Cạo vôi răng", Slug: "cao-voi-rang", DurationMinutes: 30},
	}
	pricings := map[string][]model.ServicePricing{
		"tam-va-ve-sinh": {
			{MinWeight: 0, MaxWeight: 5, Price: 150000},
			{MinWeight: 5, MaxWeight: 10, Price: 200000},
			{MinWeight: 10, MaxWeight: 20, Price: 280000},
			{MinWeight: 20, MaxWeight: 999, Price: 350000},
		},
		"cat-tia-long": {
			{MinWeight: 0, MaxWeight: 5, Price: 250000},
			{MinWeight: 5, MaxWeight: 10, Price: 320000},
			{MinWeight: 10, MaxWeight: 20, Price: 400000},
			{MinWeight: 20, MaxWeight: 999, Price: 500000},
		},
		"combo-tam-va-cat-tia": {
			{MinWeight: 0, MaxWeight: 5, Price: 350000},
			{MinWeight: 5, MaxWeight: 10, Price: 450000},
			{MinWeight: 10, MaxWeight: 20, Price: 580000},
			{MinWeight: 20, MaxWeight: 999, Price: 700000},
		},
		"cao-voi-rang": {
			{MinWeight: 0, MaxWeight: 999, Price: 500000},
		},
	}
	for i := range services {
		if err := db.Where("slug = ?", services[i].Slug).FirstOrCreate(&services[i]).Error; err != nil {
			log.Println("failed to seed data for service:", services[i].Slug, "error:", err)
			continue
		}
		var count int64
		db.Model(&model.ServicePricing{}).Where("service_id = ?", services[i].ID).Count(&count)
		if count == 0 {
			for _, p := range pricings[services[i].Slug] {
				p.ServiceId = services[i].ID
				db.Create(&p)
			}
		}
	}

	vouchers := []model.Voucher{
		{
			Code:           "SALE10",
			Name:           "Giảm 10% cho đơn từ 200k",
			DiscountType:   constants.DISCOUNT_PERCENTAGE,
			DiscountValue:  10,
			MinOrderAmount: 200000,
			MaxDiscount:    utils.Ptr(50000.0),
			ApplyTo:        constants.APPLY_TO_ALL,
			StartDate:      parseDate("2026-01-01"),
			EndDate:        parseDate("2026-12-31"),
			IsActive:       true,
		},
		{
			Code:           "FREESHIP",
			Name:           "Giảm 30k phí vận chuyển",
			DiscountType:   constants.DISCOUNT_FIXED_AMOUNT,
			DiscountValue:  30000,
			MinOrderAmount: 150000,
			ApplyTo:        constants.APPLY_TO_PRODUCTS,
			StartDate:      parseDate("2026-01-01"),
			EndDate:        parseDate("2026-12-31"),
			IsActive:       true,
		},
	}
	for i := range vouchers {
		if err := db.Where("code = ?", vouchers[i].Code).FirstOrCreate(&vouchers[i]).Error; err != nil {
			log.Println("failed to seed data for voucher:", vouchers[i].Code, "error:", err)
		}
	}
}
