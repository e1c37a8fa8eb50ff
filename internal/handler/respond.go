package handler

import "github.com/labstack/echo/v4"

// Error type labels carried in the response envelope next to the message.
// Clients branch on errorType; the message is for humans.
const (
	errValidation  = "ValidationError"
	errAuth        = "AuthError"
	errNotFound    = "NotFoundError"
	errConflict    = "ConflictError"
	errDatabase    = "DatabaseError"
	errTransaction = "TransactionError"
)

// respondError writes the machine-readable error envelope every endpoint
// shares: {"error": message, "errorType": type}.
func respondError(c echo.Context, status int, msg, errType string) error {
	return c.JSON(status, echo.Map{"error": msg, "errorType": errType})
}
