package handler

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"petshop_manager/database"
	"petshop_manager/helper"
	"petshop_manager/model"
	"petshop_manager/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GenerateSignature ký tham số upload để client đẩy thẳng file lên Cloudinary
func GenerateSignature(c *fiber.Ctx) error {
	_, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Không có quyền", nil)
	}

	type SigParams struct {
		Folder   string `json:"folder"`
		PublicID string `json:"public_id"`
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Params không hợp lệ", err)
	}

	timestamp := time.Now().Unix()

	paramMap := map[string]string{
		"timestamp": fmt.Sprintf("%d", timestamp),
	}
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Cloudinary ký chuỗi key=value nối bằng & theo thứ tự alphabet, giá trị thô không escape
	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(os.Getenv("CLOUDINARY_API_SECRET"))

	h := sha1.New()
	h.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h.Sum(nil))

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    os.Getenv("CLOUDINARY_API_KEY"),
		"cloudName": os.Getenv("CLOUDINARY_CLOUD_NAME"),
	})
}

// UploadProductImages nhận file multipart, đẩy lên Cloudinary rồi gắn vào sản phẩm
func UploadProductImages(c *fiber.Ctx) error {
	_, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Không có quyền", nil)
	}

	productId := c.Locals("inputProductId").(uint)

	var product model.Product
	if err := database.DB.First(&product, productId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Sản phẩm không tồn tại", err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Form không hợp lệ", err)
	}
	files := form.File["images"]
	if len(files) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Chưa chọn file nào", errors.New("no files"))
	}

	cld := helper.InitCloudinary()

	var created []model.ProductImage
	var failed []fiber.Map

	for idx, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
			failed = append(failed, fiber.Map{
				"filename": file.Filename,
				"error":    "Chỉ hỗ trợ JPG, PNG, WEBP",
			})
			continue
		}
		if file.Size > 5*1024*1024 {
			failed = append(failed, fiber.Map{
				"filename": file.Filename,
				"error":    "File vượt quá 5MB",
			})
			continue
		}

		f, err := file.Open()
		if err != nil {
			failed = append(failed, fiber.Map{
				"filename": file.Filename,
				"error":    "Không thể mở file",
			})
			continue
		}

		publicID := fmt.Sprintf("product_%d_%d_%d", productId, time.Now().UnixNano(), idx)
		uploadResult, err := cld.Upload.Upload(c.Context(), f, uploader.UploadParams{
			Folder:       "products",
			PublicID:     publicID,
			ResourceType: "image",
		})
		f.Close()
		if err != nil {
			failed = append(failed, fiber.Map{
				"filename": file.Filename,
				"error":    "Upload Cloudinary thất bại: " + err.Error(),
			})
			continue
		}

		var maxSort int
		database.DB.Model(&model.ProductImage{}).
			Where("product_id = ?", productId).
			Select("COALESCE(MAX(sort_order), -1)").Scan(&maxSort)

		var existing int64
		database.DB.Model(&model.ProductImage{}).Where("product_id = ?", productId).Count(&existing)

		image := model.ProductImage{
			ProductId: productId,
			ImageUrl:  uploadResult.SecureURL,
			IsPrimary: existing == 0,
			SortOrder: maxSort + 1,
		}
		if err := database.DB.Create(&image).Error; err != nil {
			cld.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: uploadResult.PublicID})
			failed = append(failed, fiber.Map{
				"filename": file.Filename,
				"error":    "Lưu database thất bại",
			})
			continue
		}

		created = append(created, image)
	}

	database.DB.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).First(&product, productId)

	response := fiber.Map{
		"message":      fmt.Sprintf("Upload thành công %d/%d ảnh", len(created), len(files)),
		"product":      product,
		"uploaded":     created,
		"failed_files": failed,
	}
	if len(created) == 0 && len(failed) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(response)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// SetPrimaryImage chọn ảnh đại diện cho sản phẩm
func SetPrimaryImage(c *fiber.Ctx) error {
	_, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Không có quyền", nil)
	}

	productId := c.Locals("inputProductId").(uint)
	imageId := c.Locals("inputImageId").(uint)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var image model.ProductImage
		if err := tx.First(&image, imageId).Error; err != nil {
			return errors.New("ảnh không tồn tại")
		}
		if image.ProductId != productId {
			return errors.New("ảnh không thuộc sản phẩm này")
		}

		if err := tx.Model(&model.ProductImage{}).
			Where("product_id = ? AND is_primary = ?", productId, true).
			Update("is_primary", false).Error; err != nil {
			return err
		}
		return tx.Model(&image).Update("is_primary", true).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Đã cập nhật ảnh đại diện"})
}
