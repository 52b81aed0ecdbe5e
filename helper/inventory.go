package helper

import "errors"

// NextStock tính tồn kho mới sau khi điều chỉnh delta, không cho phép âm
func NextStock(current, delta int) (int, error) {
	next := current + delta
	if next < 0 {
		return 0, errors.New("tồn kho sau điều chỉnh không được âm")
	}
	return next, nil
}

// RestoreSoldCount trả soldCount về sau khi hủy đơn, không xuống dưới 0
func RestoreSoldCount(current, quantity int) int {
	next := current - quantity
	if next < 0 {
		return 0
	}
	return next
}
