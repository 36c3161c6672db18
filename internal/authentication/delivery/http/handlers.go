package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"identity-srv/internal/middleware"
	"identity-srv/pkg/response"
)

// @Summary Login
// @Description Verify credentials and issue an access/refresh token pair
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body loginReq true "Login request"
// @Success 200 {object} tokenResp
// @Failure 401 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Router /api/v1/auth/login [post]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "authentication.delivery.http.Login: processLoginRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.Login(ctx, req.toInput(requestMeta(c)))
	if err != nil {
		middleware.RecordLoginAttempt("failure")
		h.l.Warnf(ctx, "authentication.delivery.http.Login: usecase Login failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	middleware.RecordLoginAttempt("success")
	response.OK(c, h.newTokenResp(o))
}

// @Summary Register
// @Description Self-service signup. New accounts get the USER role.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body registerReq true "Register request"
// @Success 201 {object} userResp
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/auth/register [post]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "authentication.delivery.http.Register: processRegisterRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	u, err := h.uc.Register(ctx, req.toInput(requestMeta(c)))
	if err != nil {
		h.l.Warnf(ctx, "authentication.delivery.http.Register: usecase Register failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	middleware.RecordUserRegistration()
	response.Created(c, h.newUserResp(u))
}

// @Summary Refresh tokens
// @Description Exchange a valid refresh token for a fresh access/refresh pair
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body refreshReq true "Refresh request"
// @Success 200 {object} tokenResp
// @Failure 401 {object} response.Resp
// @Router /api/v1/auth/refresh [post]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRefreshRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "authentication.delivery.http.Refresh: processRefreshRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.Refresh(ctx, req.toInput(requestMeta(c)))
	if err != nil {
		h.l.Warnf(ctx, "authentication.delivery.http.Refresh: usecase Refresh failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTokenResp(o))
}

// @Summary Current user
// @Description Return the account behind the presented access token
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} userResp
// @Failure 401 {object} response.Resp
// @Router /api/v1/auth/me [get]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc := h.processScope(c)

	u, err := h.uc.Me(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "authentication.delivery.http.Me: usecase Me failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUserResp(u))
}

// @Summary Logout
// @Description Record a logout event. Tokens stay valid until expiry; clients drop them.
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/v1/auth/logout [post]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	h.uc.Logout(ctx, h.processScope(c), requestMeta(c))

	response.OK(c, nil)
}

// @Summary Verification public key
// @Description Return the RSA public key as PEM for downstream verifiers
// @Tags Authentication
// @Produce plain
// @Success 200 {string} string "PEM-encoded public key"
// @Router /api/v1/auth/public-key [get]
func (h *handler) PublicKey(c *gin.Context) {
	c.Data(http.StatusOK, "application/x-pem-file", []byte(h.uc.PublicKeyPEM()))
}

// @Summary JWKS
// @Description Return the verification key set in JWKS form
// @Tags Authentication
// @Produce json
// @Success 200 {object} jwt.JWKS
// @Router /api/v1/auth/jwks [get]
func (h *handler) JWKS(c *gin.Context) {
	c.JSON(http.StatusOK, h.uc.JWKS())
}
