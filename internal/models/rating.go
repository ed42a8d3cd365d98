package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// CSV 날짜 직렬화 포맷 (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// CSV 헤더, 컬럼 순서 고정
var CSVHeader = []string{"Name", "Date", "Scale", "Note"}

var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrScaleOutRange = errors.New("scale must be between 1 and 10")
)

// 자기평가 기록 모델, 저장 후 수정/삭제 없음
type Rating struct {
	Name  string    `json:"name" example:"gildong"`
	Date  time.Time `json:"date" example:"2026-08-30T00:00:00Z"`
	Scale int       `json:"scale" example:"7"`
	Note  string    `json:"note" example:"felt productive today"`
}

// 이름 공백 및 점수 범위 검증
func (r Rating) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	if r.Scale < 1 || r.Scale > 10 {
		return ErrScaleOutRange
	}
	return nil
}

// CSV 행으로 변환 (Name, Date, Scale, Note 순서)
func (r Rating) CSVRow() []string {
	return []string{
		r.Name,
		r.Date.Format(DateLayout),
		strconv.Itoa(r.Scale),
		r.Note,
	}
}

// CSV 행을 Rating으로 파싱
func RatingFromCSVRow(row []string) (Rating, error) {
	var r Rating
	if len(row) != len(CSVHeader) {
		return r, errors.Errorf("expected %d columns, got %d", len(CSVHeader), len(row))
	}

	date, err := time.Parse(DateLayout, row[1])
	if err != nil {
		return r, errors.Wrapf(err, "invalid date %q", row[1])
	}
	scale, err := strconv.Atoi(row[2])
	if err != nil {
		return r, errors.Wrapf(err, "invalid scale %q", row[2])
	}

	r.Name = row[0]
	r.Date = date
	r.Scale = scale
	r.Note = row[3]
	return r, nil
}
