package apiv1

import (
	"office-tools-backend/controllers"
	authhandler "office-tools-backend/lib/auth"
	apimodels "office-tools-backend/models/api"
	authapimodels "office-tools-backend/models/api/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("/api/v1/auth", func(router fiber.Router) {
		router.Post("register", controller.register)
		router.Post("login", controller.login)
		router.Post("forgot-password", controller.forgotPassword)
		router.Post("reset-password", controller.resetPassword)
	})
}

// @Summary Register a new user
// @Tags Auth
// @Description Register a new user and issue a JWT
// @Param	body	body	authapimodels.RegisterRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=authapimodels.TokenResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/auth/register [post]
func (c *authApiController) register(ctx *fiber.Ctx) error {
	var payload authapimodels.RegisterRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Register(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// @Summary Log in
// @Tags Auth
// @Description Authenticate by email and password
// @Param	body	body	authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.TokenResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Login(payload)
	if err != nil {
		if errors.Is(err, authhandler.ErrInvalidCredentials) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Request a password reset
// @Tags Auth
// @Description Send a reset code to the given email
// @Param	body	body	authapimodels.ForgotPasswordRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/auth/forgot-password [post]
func (c *authApiController) forgotPassword(ctx *fiber.Ctx) error {
	var payload authapimodels.ForgotPasswordRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if payload.Email == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("Missing email"))
	}
	if err := authhandler.Instance.ForgotPassword(payload.Email); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Reset the password
// @Tags Auth
// @Description Set a new password using a reset code
// @Param	body	body	authapimodels.ResetPasswordRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/auth/reset-password [post]
func (c *authApiController) resetPassword(ctx *fiber.Ctx) error {
	var payload authapimodels.ResetPasswordRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := authhandler.Instance.ResetPassword(payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
