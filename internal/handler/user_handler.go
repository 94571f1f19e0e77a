package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/codedprincesharma/Marketplace-Microservices/internal/handler/middleware"
	"github.com/codedprincesharma/Marketplace-Microservices/internal/service"
	"github.com/codedprincesharma/Marketplace-Microservices/pkg/validator"
)

type UserHandler struct {
	userService *service.UserService
	validator   *validator.Validator
}

func NewUserHandler(userService *service.UserService, validator *validator.Validator) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator,
	}
}

// GetMe returns the authenticated user's profile
// GET /api/v1/auth/me
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
		})
	}

	profile, err := h.userService.GetProfile(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

// GetAddresses lists the authenticated user's addresses
// GET /api/v1/auth/user/addresses
func (h *UserHandler) GetAddresses(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
		})
	}

	addresses, err := h.userService.ListAddresses(c.Context(), claims.UserID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(addresses)
}

// AddAddress appends an address to the authenticated user
// POST /api/v1/auth/user/addresses
func (h *UserHandler) AddAddress(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
		})
	}

	var req service.AddressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validator.Validate(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	address, err := h.userService.AddAddress(c.Context(), claims.UserID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(address)
}

// DeleteAddress removes one of the authenticated user's addresses by id
// DELETE /api/v1/auth/user/addresses/:addressID
func (h *UserHandler) DeleteAddress(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
		})
	}

	addressID, err := uuid.Parse(c.Params("addressID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid address ID",
		})
	}

	if err := h.userService.DeleteAddress(c.Context(), claims.UserID, addressID); err != nil {
		if errors.Is(err, service.ErrAddressNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Address not found",
			})
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Address deleted successfully",
	})
}
