package helper

import (
	"errors"
	"fmt"
	"log"
	"net/mail"
	"os"
	"petshop_manager/constants"
	"petshop_manager/database"
	"petshop_manager/model"
	"petshop_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetUserByEmail(e string) (*model.User, error) {
	db := database.DB
	var user model.User
	if err := db.Where(&model.User{Email: e}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["email"] = tokenClaim.Email
	claims["role"] = tokenClaim.Role
	claims["fullName"] = tokenClaim.FullName
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["email"] = tokenClaim.Email
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Xác thực thuật toán ký là HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})

	return token, err
}

// GetInfoUserFromToken đọc claim từ token và load user hiện tại từ DB.
// Trả về claim, isAdmin, isStaff, isCustomer.
func GetInfoUserFromToken(c *fiber.Ctx) (model.TokenClaim, bool, bool, bool) {
	token := c.Locals("user").(*jwt.Token)
	tokenClaim := token.Claims.(jwt.MapClaims)
	userId := uint(tokenClaim["userId"].(float64))

	var user model.User
	db := database.DB
	if err := db.First(&user, userId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("User not found: id=%d", userId)
			utils.ErrorResponse(c, fiber.StatusUnauthorized, "Tài khoản không tồn tại", err)
		} else {
			log.Printf("Database query error for user: id=%d, error=%v", userId, err)
			utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		return model.TokenClaim{}, false, false, false
	}

	userInfo := model.TokenClaim{
		UserId:   user.ID,
		Email:    user.Email,
		Role:     user.Role,
		FullName: user.FullName,
	}

	return userInfo,
		user.Role == constants.ROLE_ADMIN,
		user.Role == constants.ROLE_STAFF,
		user.Role == constants.ROLE_CUSTOMER
}

// GetOptionalUserFromToken dùng cho route không bắt buộc đăng nhập, trả về guest nếu không có token
func GetOptionalUserFromToken(c *fiber.Ctx) (model.TokenClaim, *model.User) {
	var guestClaim model.TokenClaim

	u := c.Locals("user")
	if u == nil {
		return guestClaim, nil
	}

	userToken, ok := u.(*jwt.Token)
	if !ok || userToken == nil {
		return guestClaim, nil
	}

	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		return guestClaim, nil
	}

	userIdFloat, ok := claims["userId"].(float64)
	if !ok || userIdFloat == 0 {
		return guestClaim, nil
	}

	var user model.User
	db := database.DB
	if err := db.First(&user, uint(userIdFloat)).Error; err != nil {
		log.Printf("User not found (id=%d): %v", uint(userIdFloat), err)
		return guestClaim, nil
	}

	tokenClaim := model.TokenClaim{
		UserId:   user.ID,
		Email:    user.Email,
		Role:     user.Role,
		FullName: user.FullName,
	}

	return tokenClaim, &user
}
