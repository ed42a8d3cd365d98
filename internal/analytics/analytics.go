/**
* Name: 			analytics.go
* Description: 		평가 테이블에 대한 필터 / 시계열 / 집계 계산
 */
package analytics

import (
	"sort"
	"time"

	"UserRatingApp/internal/models"
)

// 차트의 한 포인트 (날짜, 점수)
type Point struct {
	Date  time.Time `json:"date"`
	Scale int       `json:"scale"`
}

// 선택된 이름들에 해당하는 기록만 반환, 입력 순서 유지
func Filter(table []models.Rating, names map[string]bool) []models.Rating {
	out := []models.Rating{}
	for _, r := range table {
		if names[r.Name] {
			out = append(out, r)
		}
	}
	return out
}

// 한 사용자의 (날짜, 점수) 시계열.
// 날짜 오름차순 정렬, 같은 날짜는 입력(제출) 순서 유지.
func Series(table []models.Rating, name string) []Point {
	points := []Point{}
	for _, r := range table {
		if r.Name == name {
			points = append(points, Point{Date: r.Date, Scale: r.Scale})
		}
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// 사용자별 평균 점수
func MeanByName(table []models.Rating) map[string]float64 {
	sums := map[string]int{}
	counts := map[string]int{}
	for _, r := range table {
		sums[r.Name] += r.Scale
		counts[r.Name]++
	}

	means := map[string]float64{}
	for name, sum := range sums {
		means[name] = float64(sum) / float64(counts[name])
	}
	return means
}

// 사용자별 최고 점수
func MaxByName(table []models.Rating) map[string]int {
	maxes := map[string]int{}
	for _, r := range table {
		if cur, ok := maxes[r.Name]; !ok || r.Scale > cur {
			maxes[r.Name] = r.Scale
		}
	}
	return maxes
}

// 테이블에 등장하는 사용자 이름 목록, 처음 등장한 순서대로 (중복 제거)
func Names(table []models.Rating) []string {
	seen := map[string]bool{}
	names := []string{}
	for _, r := range table {
		if !seen[r.Name] {
			seen[r.Name] = true
			names = append(names, r.Name)
		}
	}
	return names
}
