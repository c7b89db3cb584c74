package authController

import (
	"log"
	"time"

	"pronocoach/config"
	"pronocoach/database"
	"pronocoach/middleware"
	"pronocoach/models"
	"pronocoach/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SendRegistrationCode stages a registration and mails a 6-digit code.
// The account only exists once the code is verified.
func SendRegistrationCode(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegistration").(*struct {
		Firstname string `json:"firstname"`
		Lastname  string `json:"lastname"`
		StudentID string `json:"student_id"`
		Year      string `json:"year"`
		Gender    string `json:"gender"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Check if student id already exists
	if err := db.Where("student_id = ?", reqData.StudentID).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Student ID is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	code := utils.GenerateVerificationCode()
	expiresAt := time.Now().Add(10 * time.Minute)

	pending := models.PendingRegistration{
		Email:     reqData.Email,
		Firstname: reqData.Firstname,
		Lastname:  reqData.Lastname,
		StudentID: reqData.StudentID,
		Year:      reqData.Year,
		Gender:    reqData.Gender,
		Password:  string(hashedPassword),
		Code:      code,
		ExpiresAt: expiresAt,
	}

	// One pending row per email; a second send replaces code and payload
	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"firstname", "lastname", "student_id", "year", "gender",
			"password", "code", "expires_at", "updated_at",
		}),
	}).Create(&pending).Error; err != nil {
		log.Printf("Error saving pending registration: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	if err := utils.SendVerificationCodeEmail(reqData.Email, reqData.Firstname, code); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send verification email!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Verification code sent. Check your inbox.", nil)
}

// VerifyRegistrationCode turns a staged registration into a real account.
func VerifyRegistrationCode(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVerification").(*struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var pending models.PendingRegistration
	if err := db.Where("email = ?", reqData.Email).First(&pending).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid verification code!", nil)
	}

	if pending.Code != reqData.Code {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid verification code!", nil)
	}

	if pending.ExpiresAt.Before(time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Verification code expired. Please request a new code.", nil)
	}

	newUser := models.User{
		Firstname: pending.Firstname,
		Lastname:  pending.Lastname,
		StudentID: pending.StudentID,
		Year:      pending.Year,
		Gender:    pending.Gender,
		Email:     pending.Email,
		Password:  pending.Password,
		Verified:  true,
		Role:      "USER",
	}

	// Account creation and pending cleanup land together
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&pending).Error
	})
	if err != nil {
		log.Printf("Error creating user from pending registration: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create account!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Account created. You can log in now.", fiber.Map{
		"id":         newUser.ID,
		"email":      newUser.Email,
		"student_id": newUser.StudentID,
	})
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		StudentID string `json:"student_id"`
		Password  string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("student_id = ?", reqData.StudentID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	// Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if !user.Verified {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Email not verified!", nil)
	}

	if err := middleware.CreateSession(c, user.ID); err != nil {
		log.Printf("Error creating session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start session!", nil)
	}
	middleware.TouchPresence(user.ID)

	// Generate JWT token
	token, err := middleware.GenerateJWT(user.ID, user.Firstname, user.Role, user.Email, user.StudentID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":  user,
		"token": token,
	})
}

func Logout(c *fiber.Ctx) error {
	if err := middleware.DestroySession(c); err != nil {
		log.Printf("Error destroying session: %v", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out.", nil)
}

// ForgotPassword mails a one-hour reset link.
func ForgotPassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedForgot").(*struct {
		Email string `json:"email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No account with that email!", nil)
	}

	resetToken := models.PasswordResetToken{
		Email:     user.Email,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}
	if err := db.Create(&resetToken).Error; err != nil {
		log.Printf("Error saving reset token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	resetURL := config.AppConfig.AppBaseURL + "/reset/" + resetToken.Token
	if err := utils.SendPasswordResetEmail(user.Email, user.Firstname, resetURL); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send reset email!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reset link sent. Check your inbox.", nil)
}

// ResetPassword consumes a reset token and sets the new password.
func ResetPassword(c *fiber.Ctx) error {
	token := c.Params("token")

	reqData, ok := c.Locals("validatedReset").(*struct {
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var resetToken models.PasswordResetToken
	if err := db.Where("token = ?", token).First(&resetToken).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid or expired reset link!", nil)
	}
	if resetToken.ExpiresAt.Before(time.Now()) {
		db.Unscoped().Delete(&resetToken)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid or expired reset link!", nil)
	}

	var user models.User
	if err := db.Where("email = ?", resetToken.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid or expired reset link!", nil)
	}

	// The new password has to differ from the current one
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "New password must be different from the old one!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to hash password!", nil)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&resetToken).Error
	})
	if err != nil {
		log.Printf("Error updating user password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update password!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password reset successfully.", nil)
}
