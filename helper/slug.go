package helper

import (
	"fmt"
	"petshop_manager/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// generateUniqueSlug sinh slug duy nhất cho bảng mdl, thêm hậu tố -1, -2... nếu trùng
func generateUniqueSlug(tx *gorm.DB, mdl any, name string) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(mdl).
			Where("slug = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}

func GenerateUniqueProductSlug(tx *gorm.DB, name string) string {
	return generateUniqueSlug(tx, &model.Product{}, name)
}

func GenerateUniqueCategorySlug(tx *gorm.DB, name string) string {
	return generateUniqueSlug(tx, &model.Category{}, name)
}

func GenerateUniqueBrandSlug(tx *gorm.DB, name string) string {
	return generateUniqueSlug(tx, &model.Brand{}, name)
}

func GenerateUniqueServiceSlug(tx *gorm.DB, name string) string {
	return generateUniqueSlug(tx, &model.SpaService{}, name)
}
