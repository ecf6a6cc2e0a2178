package response

import "testing"

// TestEnvelope 成功和失败走同一个信封，成败由业务码区分
func TestEnvelope(t *testing.T) {
	ok := SuccessResponse(map[string]int{"id": 1})
	if ok.Code != Success || ok.Message != "success" || ok.Data == nil {
		t.Errorf("success envelope = %+v", ok)
	}

	fail := ErrorResponse(NotFound, "条目不存在")
	if fail.Code != NotFound || fail.Message != "条目不存在" || fail.Data != nil {
		t.Errorf("error envelope = %+v", fail)
	}
}

// TestNewBusinessError 选项覆盖默认值，不传选项时是笼统的失败
func TestNewBusinessError(t *testing.T) {
	plain := NewBusinessError()
	if plain.Code != Fail || plain.Msg == "" {
		t.Errorf("default error = %+v", plain)
	}

	be := NewBusinessError(
		WithErrorCode(StateConflict),
		WithErrorMessage("该请求已结单"),
	)
	if be.Code != StateConflict || be.Msg != "该请求已结单" {
		t.Errorf("BusinessError = %+v", be)
	}
}
