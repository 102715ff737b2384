package authentication

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/wolf6905/CCG3/src/core/config"
	"github.com/wolf6905/CCG3/src/core/helpers"
	"github.com/wolf6905/CCG3/src/core/models"
)

type Handler struct {
	db        *gorm.DB
	jwtSecret string
}

func NewHandler(db *gorm.DB, cfg *config.Config) *Handler {
	return &Handler{db: db, jwtSecret: cfg.JWTSecret}
}

type credentialsInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// IssueToken generates a JWT token for an authenticated user.
func IssueToken(user *models.User, jwtSecret string) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)

	claims["sub"] = user.ID.String()
	claims["username"] = user.Username
	claims["iat"] = time.Now().Unix()
	claims["exp"] = time.Now().Add(24 * time.Hour).Unix()

	return token.SignedString([]byte(jwtSecret))
}

// Register handles account creation.
func (h *Handler) Register(c *fiber.Ctx) error {
	body := new(credentialsInput)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Username and password are required", err)
	}

	// Usernames are unique and immutable after creation
	var existing models.User
	err := h.db.Where("username = ?", body.Username).First(&existing).Error
	if err == nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Username already taken", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to check username", err)
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to hash password", err)
	}

	user := models.NewUser(body.Username, string(hashedPwd))
	if result := h.db.Create(&user); result.Error != nil {
		// A concurrent registration can slip past the check above and lose
		// the race on the unique index; report it as taken, not a failure.
		if duplicateUsername(result.Error) {
			return helpers.HandleError(c, fiber.StatusBadRequest, "Username already taken", nil)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to create user account", result.Error)
	}

	return helpers.HandleSuccess(c, fiber.StatusCreated, "User registered successfully", nil)
}

// duplicateUsername reports whether a create failed on the unique username
// index. TranslateError on the connection maps Postgres 23505 to this.
func duplicateUsername(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Login handles user authentication.
func (h *Handler) Login(c *fiber.Ctx) error {
	body := new(credentialsInput)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Username and password are required", err)
	}

	user := new(models.User)
	if result := h.db.Where("username = ?", body.Username).First(user); result.Error != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid username or password", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid username or password", nil)
	}

	token, err := IssueToken(user, h.jwtSecret)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to generate token", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Sign-in successful", fiber.Map{
		"token": token,
		"user":  user,
	})
}
