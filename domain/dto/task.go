package dto

// DateLayout คือรูปแบบ ISO date ที่ใช้กับ due_date
const DateLayout = "2006-01-02"

// TaskRequest ใช้ทั้ง create และ update (update = full replace)
type TaskRequest struct {
	Title       string  `json:"title" validate:"required,notblank,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Status      string  `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	DueDate     string  `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

type TaskResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	DueDate     *string `json:"due_date"`
	UserID      uint    `json:"user_id"`
}
