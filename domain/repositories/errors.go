package repositories

import "errors"

var (
	// ErrNotFound ไม่มี record หรือ record ไม่ได้เป็นของ owner ที่ระบุ
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateUsername ถูกแปลงมาจาก unique violation ของ storage โดยตรง
	ErrDuplicateUsername = errors.New("username already exists")
)
