/**
* Name: 			analytics_handler.go
* Description: 		대시보드용 분석 API (시계열 차트 데이터, 평균/최고 집계)
 */
package handler

import (
	"log"
	"net/http"

	"UserRatingApp/internal/analytics"
	"UserRatingApp/internal/models"

	"github.com/gin-gonic/gin"
)

// 시계열 응답: 사용자별 (날짜, 점수) 포인트 목록
type SeriesResponse struct {
	Series map[string][]analytics.Point `json:"series"`
	Empty  bool                         `json:"empty"`
}

// 집계 응답: 사용자별 평균과 최고 점수
type StatsResponse struct {
	Mean  map[string]float64 `json:"mean"`
	Max   map[string]int     `json:"max"`
	Empty bool               `json:"empty"`
}

// GetSeries godoc
// @Summary      평가 추이 시계열 조회
// @Description  사용자별 (날짜, 점수) 시계열을 날짜 오름차순으로 반환합니다. 라인 차트 데이터 소스.
// @Tags         Analytics
// @Produce      json
// @Param        names query string false "쉼표로 구분된 사용자 이름 목록 (생략 시 전체)"
// @Success      200 {object} handler.SeriesResponse
// @Failure      500 {object} handler.ErrorResponse "데이터 로드 실패"
// @Router       /api/ratings/series [get]
func GetSeries(c *gin.Context) {
	table, err := loadFiltered(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load ratings"})
		return
	}

	series := map[string][]analytics.Point{}
	for _, name := range analytics.Names(table) {
		series[name] = analytics.Series(table, name)
	}

	c.JSON(http.StatusOK, SeriesResponse{Series: series, Empty: len(table) == 0})
}

// GetStats godoc
// @Summary      평가 집계 조회
// @Description  사용자별 평균 점수와 최고 점수를 반환합니다.
// @Tags         Analytics
// @Produce      json
// @Param        names query string false "쉼표로 구분된 사용자 이름 목록 (생략 시 전체)"
// @Success      200 {object} handler.StatsResponse
// @Failure      500 {object} handler.ErrorResponse "데이터 로드 실패"
// @Router       /api/ratings/stats [get]
func GetStats(c *gin.Context) {
	table, err := loadFiltered(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load ratings"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		Mean:  analytics.MeanByName(table),
		Max:   analytics.MaxByName(table),
		Empty: len(table) == 0,
	})
}

// 테이블 로드 후 names 쿼리 파라미터에 따라 필터링
func loadFiltered(c *gin.Context) ([]models.Rating, error) {
	table, err := store.Load()
	if err != nil {
		log.Printf("[ERROR] loadFiltered(): failed to load table: %v", err)
		return nil, err
	}
	if selected := parseNames(c); selected != nil {
		table = analytics.Filter(table, selected)
	}
	return table, nil
}
