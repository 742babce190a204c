package routes

import (
	"logistica_iac/internal/adapter/http/handlers"
	"logistica_iac/internal/usecase"
	"logistica_iac/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	PathShipments = "/shipments"
	PathPayments  = "/payments"
	PathTrash     = "/trash"
	PathTracking  = "/tracking"
	PathAccounts  = "/accounts"
	PathPortal    = "/portal"
)

func addLogisticsRoutes(
	rg *gin.RouterGroup,
	shipmentHandler *handlers.ShipmentHandler,
	paymentHandler *handlers.PaymentHandler,
	accountHandler *handlers.AccountHandler,
	accounts usecase.IAccountUseCase,
) {
	// Public surface: tracking lookup and customer sign-up.
	rg.GET(PathTracking+"/:tracking_id", shipmentHandler.TrackShipment)
	rg.POST(PathAccounts, accountHandler.SignUp)

	// Admin surface: full lifecycle, billing and trash management.
	admin := rg.Group("", gin.BasicAuth(gin.Accounts{
		getenvDefault("ADMIN_USER", "admin"): getenvDefault("ADMIN_PASS", "admin123"),
	}))
	{
		admin.POST(PathShipments, shipmentHandler.RegisterShipment)
		admin.GET(PathShipments, shipmentHandler.ListShipments)
		admin.GET(PathShipments+"/:tracking_id", shipmentHandler.GetShipment)
		admin.PATCH(PathShipments+"/:tracking_id/verify", shipmentHandler.VerifyShipment)
		admin.PATCH(PathShipments+"/:tracking_id/status", shipmentHandler.UpdateShipmentStatus)
		admin.DELETE(PathShipments+"/:tracking_id", shipmentHandler.DeleteShipment)
		admin.POST(PathShipments+"/:tracking_id/restore", shipmentHandler.RestoreShipment)
		admin.GET(PathTrash, shipmentHandler.ListTrash)

		admin.POST(PathPayments+"/:tracking_id", paymentHandler.PostPayment)
		admin.GET(PathPayments+"/:tracking_id", paymentHandler.ListAbonos)
	}

	// Customer portal: basic auth against registered accounts, every view
	// scoped to the authenticated email.
	portal := rg.Group(PathPortal, customerAuth(accounts))
	{
		portal.GET(PathShipments, shipmentHandler.ListMyShipments)
		portal.GET(PathShipments+"/:tracking_id", shipmentHandler.GetMyShipment)
		portal.POST(PathPayments+"/:tracking_id", paymentHandler.PayOutstanding)
	}
}

// customerAuth validates portal credentials against the account store and
// stores the authenticated email on the context.
func customerAuth(accounts usecase.IAccountUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, password, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", `Basic realm="portal"`)
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing credentials", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		account, err := accounts.VerifyCredentials(c.Request.Context(), email, password)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid credentials", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(handlers.CustomerEmailKey, account.Email)
		c.Next()
	}
}
