// Package response 统一响应信封和业务错误
// 所有接口都返回 HTTP 200，成败由信封里的业务码区分
package response

type ResponseCode int

// Success 成功码；失败码见 errors.go
const (
	Success ResponseCode = 100
)

// Response 统一响应信封
type Response struct {
	Message string       `json:"message"`
	Code    ResponseCode `json:"code"`
	Data    any          `json:"data"`
}

func SuccessResponse(data any) Response {
	return Response{
		Message: "success",
		Code:    Success,
		Data:    data,
	}
}

func ErrorResponse(code ResponseCode, msg string) Response {
	return Response{
		Message: msg,
		Code:    code,
		Data:    nil,
	}
}
