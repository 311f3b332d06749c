package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/Skotchmaster/inventory/docs"
	"github.com/Skotchmaster/inventory/internal/db"
	loggingmw "github.com/Skotchmaster/inventory/internal/middleware/logging"
)

type Deps struct {
	ProductHandler *ProductHTTP
	CartHandler    *CartHTTP
	DB             *gorm.DB
	// DocsURL is advertised by GET /.
	DocsURL string
}

// New builds the echo instance with the middleware chain and all routes.
func New(logger *slog.Logger, d *Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	Register(e, d)
	return e
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.DB == nil {
			return c.NoContent(http.StatusOK)
		}
		if err := db.Ping(c.Request().Context(), d.DB); err != nil {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable").SetInternal(err)
		}
		return c.NoContent(http.StatusOK)
	})

	e.GET("/", home(d.DocsURL))
	e.GET("/docs", func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	e.GET("/docs/*", echoSwagger.WrapHandler)

	products := e.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.POST("", d.ProductHandler.CreateProduct)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.PUT("/:id", d.ProductHandler.UpdateProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)

	cart := e.Group("/cart")
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.CreateCart)
	cart.GET("/:id", d.CartHandler.GetCartItem)
	cart.PUT("/:id", d.CartHandler.UpdateCart)
	cart.DELETE("/:id", d.CartHandler.DeleteCart)
}

// home godoc
// @Summary  Where to find the API documentation
// @Tags     meta
// @Produce  json
// @Success  200 {string} string
// @Router   / [get]
func home(docsURL string) echo.HandlerFunc {
	msg := "Goto " + docsURL + " to see the API documentation"
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, msg)
	}
}
