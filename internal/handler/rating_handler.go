/**
* Name: 			rating_handler.go
* Description: 		Gin 프레임워크의 HTTP 핸들러
* Workflow: 		평가 제출, 목록 조회, 이름 목록, CSV 다운로드
 */
package handler

import (
	"log"
	"net/http"
	"strings"
	"time"

	"UserRatingApp/internal/analytics"
	"UserRatingApp/internal/models"
	"UserRatingApp/internal/storage"

	"github.com/gin-gonic/gin"
)

var store *storage.Store

// 핸들러들이 사용할 저장소 주입, 라우터 구성 전에 호출
func Init(s *storage.Store) {
	store = s
}

// /api/ratings 요청 바디
type SubmitRequest struct {
	Name  string `json:"name" example:"gildong"`
	Date  string `json:"date" example:"2026-08-30"`
	Scale int    `json:"scale" example:"7"`
	Note  string `json:"note" example:"felt productive today"`
}

type SubmitResponse struct {
	Message string `json:"message" example:"Your rating has been recorded successfully!"`
	Total   int    `json:"total" example:"12"`
}
type ErrorResponse struct {
	Error string `json:"error" example:"에러 원인 및 설명"`
}

// 평가 목록 응답 (Wrapper)
type RatingsResponse struct {
	Ratings []models.Rating `json:"ratings"`
	Empty   bool            `json:"empty"`
}

// 이름 목록 응답
type NamesResponse struct {
	Names []string `json:"names"`
}

// SubmitRating godoc
// @Summary      자기평가 제출 (Submit)
// @Description  이름, 날짜, 점수(1-10), 메모로 새 평가를 기록합니다. 날짜 생략 시 오늘 날짜가 사용됩니다.
// @Tags         Ratings
// @Accept       json
// @Produce      json
// @Param        request body handler.SubmitRequest true "평가 제출 정보"
// @Success      200 {object} handler.SubmitResponse
// @Failure      400 {object} handler.ErrorResponse "이름 누락, 잘못된 날짜/점수"
// @Failure      500 {object} handler.ErrorResponse "저장 실패"
// @Router       /api/ratings [post]
func SubmitRating(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// " "으로 입력되는 케이스 방지
	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter your name."})
		return
	}

	// 날짜 생략 시 오늘 날짜 (원래 폼의 기본값)
	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(models.DateLayout, req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be in YYYY-MM-DD format"})
			return
		}
		date = parsed
	}

	rating := models.Rating{
		Name:  strings.TrimSpace(req.Name),
		Date:  time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Scale: req.Scale,
		Note:  req.Note,
	}
	if err := rating.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	total, err := store.SaveRating(rating)
	if err != nil {
		log.Printf("[ERROR] SubmitRating(): failed to save rating: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save rating"})
		return
	}

	// 열려 있는 대시보드에 실시간 반영
	BroadcastRating(rating)

	c.JSON(http.StatusOK, SubmitResponse{
		Message: "Your rating has been recorded successfully!",
		Total:   total,
	})
}

// ListRatings godoc
// @Summary      평가 목록 조회
// @Description  저장된 전체 평가 목록을 반환합니다. names 파라미터로 특정 사용자들만 필터링할 수 있습니다.
// @Tags         Ratings
// @Produce      json
// @Param        names query string false "쉼표로 구분된 사용자 이름 목록 (예: gildong,younghee)"
// @Success      200 {object} handler.RatingsResponse
// @Failure      500 {object} handler.ErrorResponse "데이터 로드 실패"
// @Router       /api/ratings [get]
func ListRatings(c *gin.Context) {
	table, err := store.Load()
	if err != nil {
		log.Printf("[ERROR] ListRatings(): failed to load table: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load ratings"})
		return
	}

	if selected := parseNames(c); selected != nil {
		table = analytics.Filter(table, selected)
	}

	c.JSON(http.StatusOK, RatingsResponse{Ratings: table, Empty: len(table) == 0})
}

// ListNames godoc
// @Summary      사용자 이름 목록 조회
// @Description  평가를 제출한 적 있는 사용자 이름 목록을 처음 등장한 순서로 반환합니다. (대시보드 선택 박스용)
// @Tags         Ratings
// @Produce      json
// @Success      200 {object} handler.NamesResponse
// @Failure      500 {object} handler.ErrorResponse "데이터 로드 실패"
// @Router       /api/ratings/names [get]
func ListNames(c *gin.Context) {
	table, err := store.Load()
	if err != nil {
		log.Printf("[ERROR] ListNames(): failed to load table: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load ratings"})
		return
	}
	c.JSON(http.StatusOK, NamesResponse{Names: analytics.Names(table)})
}

// ExportCSV godoc
// @Summary      전체 데이터 CSV 다운로드
// @Description  필터와 무관하게 전체 평가 테이블을 저장 파일과 동일한 CSV 형식으로 내려받습니다.
// @Tags         Ratings
// @Produce      text/csv
// @Success      200 {file} file "user_ratings.csv"
// @Failure      500 {object} handler.ErrorResponse "데이터 로드 실패"
// @Router       /api/export [get]
func ExportCSV(c *gin.Context) {
	table, err := store.Load()
	if err != nil {
		log.Printf("[ERROR] ExportCSV(): failed to load table: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load ratings"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="user_ratings.csv"`)
	c.Header("Content-Type", "text/csv")
	if err := storage.WriteCSV(c.Writer, table); err != nil {
		log.Printf("[ERROR] ExportCSV(): failed to write csv: %v", err)
	}
}

// names 쿼리 파라미터 파싱, 없으면 nil (= 전체 보기)
func parseNames(c *gin.Context) map[string]bool {
	raw := c.Query("names")
	if raw == "" {
		return nil
	}
	selected := map[string]bool{}
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			selected[name] = true
		}
	}
	return selected
}
