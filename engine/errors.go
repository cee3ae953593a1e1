package engine

import (
	"fmt"
	"net/http"
)

// Error is a client-facing, recoverable validation failure. Code is a
// stable machine identifier; Message is what the staff terminal shows.
// Anything that is not an *Error is treated as internal and rolled back
// the same way, but surfaced as a generic 500.
type Error struct {
	Code    string `json:"error"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *Error) Error() string { return e.Code + ": " + e.Message }

var (
	ErrInvalidGroupSize = &Error{Code: "INVALID_GROUP_SIZE", Status: http.StatusBadRequest,
		Message: "人数は1以上にしてください"}
	ErrGroupTooLarge = &Error{Code: "GROUP_TOO_LARGE", Status: http.StatusConflict,
		Message: "座敷の1グループは4名までにしてください（分割依頼で対応可）"}
	ErrMissingRoom = &Error{Code: "MISSING_ROOM", Status: http.StatusBadRequest,
		Message: "個室には roomId が必要です"}
	ErrRoomNotFound = &Error{Code: "ROOM_NOT_FOUND", Status: http.StatusNotFound,
		Message: "部屋が見つかりません"}
	ErrWrongRoomKind = &Error{Code: "WRONG_ROOM_KIND", Status: http.StatusConflict,
		Message: "個室以外は選べません（系統を確認）"}
	ErrRoomNotAvailable = &Error{Code: "ROOM_NOT_AVAILABLE", Status: http.StatusConflict,
		Message: "その個室は空室ではありません"}
	ErrRequestNotFound = &Error{Code: "REQUEST_NOT_FOUND", Status: http.StatusConflict,
		Message: "入室中の依頼が見つかりません"}
	ErrRoomNotOccupied = &Error{Code: "ROOM_NOT_OCCUPIED", Status: http.StatusConflict,
		Message: "使用中の個室のみ空き予定を変更できます"}
	ErrBadParameters = &Error{Code: "BAD_PARAMETERS", Status: http.StatusBadRequest,
		Message: "パラメータが不正です"}
)

func hallNotFound(name string) *Error {
	return &Error{Code: "ROOM_NOT_FOUND", Status: http.StatusNotFound,
		Message: fmt.Sprintf("%s が見つかりません", name)}
}

func hallDisabled(name string) *Error {
	return &Error{Code: "HALL_DISABLED", Status: http.StatusConflict,
		Message: fmt.Sprintf("%s は使用停止中です", name)}
}

func capacityExceeded(name string, need, remain int) *Error {
	if remain < 0 {
		remain = 0
	}
	return &Error{Code: "CAPACITY_EXCEEDED", Status: http.StatusConflict,
		Message: fmt.Sprintf("%s の残り座席が不足（必要 %d / 残り %d）", name, need, remain)}
}
