package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// InputPage godoc
// @Summary      입력 폼 페이지
// @Description  이름 / 날짜 / 점수 / 메모 입력 폼을 렌더링합니다.
// @Tags         Pages
// @Produce      html
// @Success      200 {string} string "HTML"
// @Router       / [get]
func InputPage(c *gin.Context) {
	c.HTML(http.StatusOK, "input.html", gin.H{
		"Title": "User Rating Input Form",
	})
}

// DashboardPage godoc
// @Summary      분석 대시보드 페이지
// @Description  추이 차트, 데이터 테이블, 평균/최고 집계 테이블을 렌더링합니다.
// @Tags         Pages
// @Produce      html
// @Success      200 {string} string "HTML"
// @Router       /dashboard [get]
func DashboardPage(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title": "User Rating Analytics",
	})
}
