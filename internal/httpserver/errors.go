package httpserver

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/inventory/internal/transport"
)

const (
	productNotFound = "Product not found"
	cartNotFound    = "Cart not found"
)

// ErrorHandler renders every error as {"detail": "..."}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	detail := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch m := he.Message.(type) {
		case string:
			detail = m
		case nil:
			detail = http.StatusText(code)
		default:
			detail = fmt.Sprint(m)
		}
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, transport.ErrorResponse{Detail: detail})
	}
	if err != nil {
		c.Logger().Error(err)
	}
}

func parseID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}

// bindBody decodes the JSON body only; path and query parameters are read
// separately. An empty body leaves dst untouched and a body without a
// Content-Type is read as JSON.
func bindBody(c echo.Context, dst any) error {
	req := c.Request()
	if req.ContentLength == 0 {
		return nil
	}
	if ct := req.Header.Get(echo.HeaderContentType); ct != "" && !isJSON(ct) {
		return fmt.Errorf("unsupported content type %q: body must be JSON", ct)
	}
	if err := c.Echo().JSONSerializer.Deserialize(c, dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == echo.MIMEApplicationJSON || strings.HasSuffix(mt, "+json")
}

func bindErrorDetail(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return fmt.Sprint(he.Message)
	}
	return err.Error()
}

func unprocessable(detail string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnprocessableEntity, detail)
}

func internalError(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
}
