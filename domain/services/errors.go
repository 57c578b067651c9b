package services

import "errors"

var (
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidCredentials ไม่แยกว่า username ไม่มีหรือ password ผิด
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInvalidToken    = errors.New("invalid token")
	ErrExpiredToken    = errors.New("token has expired")

	// ErrTaskNotFound ใช้ทั้งกรณีไม่มี task และ task เป็นของคนอื่น
	ErrTaskNotFound = errors.New("task not found")

	ErrInvalidTask = errors.New("invalid task")
)
