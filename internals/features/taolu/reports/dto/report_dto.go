// file: internals/features/taolu/reports/dto/report_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type FinishedSessionReport struct {
	SessionID       uuid.UUID `json:"session_id"`
	StudentID       uuid.UUID `json:"student_id"`
	TaoluFormID     uuid.UUID `json:"taolu_form_id"`
	FormName        string    `json:"form_name"`
	Sections        []int     `json:"sections"`
	EndedAt         time.Time `json:"ended_at"`
	DeductionsCount int       `json:"deductions_count"`
	PointsLost      int       `json:"points_lost"`
	PointsEarned    int       `json:"points_earned"`
	// maksimal 3 label code sebagai cuplikan di kartu riwayat
	SampleCodes []string `json:"sample_codes"`
}

type StudentCodeCount struct {
	CodeID     uuid.UUID `json:"code_id"`
	CodeNumber int       `json:"code_number"`
	CodeName   string    `json:"code_name"`
	Count      int       `json:"count"`
}
