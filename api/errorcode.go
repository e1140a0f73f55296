package api

import "github.com/bitmark-inc/covid-trends/session"

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: session.ErrUnknownDataType.Error(),
		1101: session.ErrInvalidWindow.Error(),
		1102: session.ErrInvalidRange.Error(),
		1103: "invalid day",
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorUnknownDataType = errorJSON(1100)
	errorInvalidWindow   = errorJSON(1101)
	errorInvalidRange    = errorJSON(1102)
	errorInvalidDay      = errorJSON(1103)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
