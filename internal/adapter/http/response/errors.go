package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func writeError(c echo.Context, status int, code, message string) error {
	return c.JSON(status, &ErrorDetail{Code: code, Message: message})
}

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return writeError(c, http.StatusBadRequest, CodeInvalidRequest, MsgInvalidRequestBody)
}

// ValidationError writes a 400 Bad Request response with validation error details.
func ValidationError(c echo.Context, details map[string]string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: MsgValidationFailed,
		Details: details,
	})
}

// ValidationErrorWithMessage writes a 400 Bad Request response with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return writeError(c, http.StatusBadRequest, CodeValidationError, message)
}

// ExtractionFailed writes a 422 Unprocessable Entity response.
func ExtractionFailed(c echo.Context) error {
	return writeError(c, http.StatusUnprocessableEntity, CodeExtractionFailed, MsgExtractionFailed)
}

// ResolutionFailed writes a 404 Not Found response naming the unresolved place.
func ResolutionFailed(c echo.Context, message string) error {
	return writeError(c, http.StatusNotFound, CodeResolutionFailed, message)
}

// NoFlightsFound writes a 404 Not Found response.
func NoFlightsFound(c echo.Context) error {
	return writeError(c, http.StatusNotFound, CodeNoFlightsFound, MsgNoFlightsFound)
}

// ProviderFailure writes a 502 Bad Gateway response.
func ProviderFailure(c echo.Context) error {
	return writeError(c, http.StatusBadGateway, CodeProviderFailure, MsgProviderFailure)
}

// GatewayTimeout writes a 504 Gateway Timeout response.
func GatewayTimeout(c echo.Context) error {
	return writeError(c, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout)
}

// RequestCancelled writes a 504 Gateway Timeout response for cancelled requests.
func RequestCancelled(c echo.Context) error {
	return writeError(c, http.StatusGatewayTimeout, CodeTimeout, MsgRequestCancelled)
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return writeError(c, http.StatusInternalServerError, CodeInternalError, MsgInternalError)
}
