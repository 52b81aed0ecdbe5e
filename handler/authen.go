package handler

import (
	"errors"
	"fmt"
	"os"
	"petshop_manager/constants"
	"petshop_manager/database"
	"petshop_manager/helper"
	"petshop_manager/model"
	"petshop_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func Login(c *fiber.Ctx) error {
	input := c.Locals("inputLogin").(model.LoginInput)

	userModel, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if userModel == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.INVALID_EMAIL, errors.New("email not exists"))
	}

	if !helper.CheckPasswordHash(input.Password, userModel.Password) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.INVALID_PASSWORD, errors.New("password does not match email"))
	}

	if !userModel.IsActive {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("active false"))
	}

	tokenClaim := model.TokenClaim{
		UserId:   userModel.ID,
		Email:    userModel.Email,
		Role:     userModel.Role,
		FullName: userModel.FullName,
	}
	token, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// set access token vào HTTPOnly cookie
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false, // nếu deploy HTTPS thì true
		Path:     "/",
	})

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"message": "login success",
		"user": fiber.Map{
			"id":       userModel.ID,
			"email":    userModel.Email,
			"fullName": userModel.FullName,
			"role":     userModel.Role,
		},
	})
}

func Register(c *fiber.Ctx) error {
	input := c.Locals("inputRegister").(model.RegisterInput)

	db := database.DB

	var existed model.User
	if err := db.Where("email = ?", input.Email).First(&existed).Error; err == nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.EMAIL_EXISTS, errors.New("email exists"), "email")
	}
	if err := db.Where("phone = ?", input.Phone).First(&existed).Error; err == nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.PHONE_EXISTS, errors.New("phone exists"), "phone")
	}

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	user := model.User{
		FullName: input.FullName,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: hashed,
		Role:     constants.ROLE_CUSTOMER,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": "Đăng ký thành công",
		"user": fiber.Map{
			"id":       user.ID,
			"email":    user.Email,
			"fullName": user.FullName,
		},
	})
}

func RefreshToken(c *fiber.Ctx) error {
	refreshCookie := c.Cookies("refresh_token")
	if refreshCookie == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "refresh token not found"})
	}

	token, err := helper.ParseToken(refreshCookie)
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid refresh token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}

	userIdFloat, ok := claims["userId"].(float64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid userId in payload"})
	}
	email, ok := claims["email"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email in payload"})
	}

	var user model.User
	if err := database.DB.First(&user, uint(userIdFloat)).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}

	tokenClaim := model.TokenClaim{
		UserId:   uint(userIdFloat),
		Email:    email,
		Role:     user.Role,
		FullName: user.FullName,
	}

	newAccessToken, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not generate access token"})
	}

	newRefreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not generate refresh token"})
	}

	// update lại cookie
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    newAccessToken,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   false,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    newRefreshToken,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   false,
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"message": "refresh success",
	})
}

func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
	return c.JSON(fiber.Map{"message": "logout success"})
}

func Me(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
	}

	var user model.User
	if err := database.DB.First(&user, claim.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func ChangePassword(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
	}

	input := c.Locals("inputChangePassword").(model.ChangePasswordInput)

	var user model.User
	if err := database.DB.First(&user, claim.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if !helper.CheckPasswordHash(input.CurrentPassword, user.Password) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Mật khẩu hiện tại không đúng", errors.New("currentPassword invalid"), "currentPassword")
	}

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	if err := database.DB.Model(&user).Update("password", hashed).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Đổi mật khẩu thành công"})
}

func ForgotPassword(c *fiber.Ctx) error {
	input := c.Locals("inputForgotPassword").(model.ForgotPasswordRequest)

	user, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	// Không tiết lộ email có tồn tại hay không
	if user == nil {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"message": "Nếu email tồn tại, link đặt lại mật khẩu đã được gửi",
		})
	}

	resetToken := uuid.NewString()
	record := model.PasswordResetToken{
		UserId:    user.ID,
		Token:     resetToken,
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}
	if err := database.DB.Create(&record).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", os.Getenv("FRONTEND_URL"), resetToken)
	go func() {
		if err := utils.SendPasswordResetEmail(user.Email, resetLink); err != nil {
			fmt.Println("send reset email failed:", err)
		}
	}()

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Nếu email tồn tại, link đặt lại mật khẩu đã được gửi",
	})
}

func ResetPassword(c *fiber.Ctx) error {
	input := c.Locals("inputResetPassword").(model.ResetPasswordRequest)

	var record model.PasswordResetToken
	if err := database.DB.Where("token = ?", input.Token).First(&record).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Token không hợp lệ", err)
	}
	if time.Now().After(record.ExpiresAt) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Token đã hết hạn", errors.New("token expired"))
	}

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.User{}).Where("id = ?", record.UserId).Update("password", hashed).Error; err != nil {
			return err
		}
		// Token chỉ dùng một lần
		return tx.Delete(&record).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Đặt lại mật khẩu thành công"})
}
