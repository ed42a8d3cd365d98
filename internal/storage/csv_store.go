/**
* Name: 			csv_store.go
* Description: 		평가 테이블의 CSV 파일 저장소
* Workflow: 		로드(파일 없으면 빈 테이블), 추가, 전체 재작성 저장
 */
package storage

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"sync"

	"UserRatingApp/internal/models"

	"github.com/pkg/errors"
)

// 평가 테이블을 하나의 CSV 파일에 보관하는 저장소.
// 쓰기는 항상 전체 테이블 재작성(temp 파일 + rename).
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// 저장 파일 경로 반환
func (s *Store) Path() string {
	return s.path
}

// CSV 파일에서 전체 테이블을 읽음.
// 파일이 없는 경우는 에러가 아니라 빈 테이블 (최초 실행 상태).
func (s *Store) Load() ([]models.Rating, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Rating{}, nil
		}
		return nil, errors.Wrapf(err, "could not open %s", s.path)
	}
	defer f.Close()

	return readTable(f)
}

// 기록을 테이블 끝에 추가한 새 테이블을 반환. 기존 순서 유지.
// 이름 검증은 호출자(핸들러) 책임이지만 빈 이름은 여기서도 거부.
func Append(table []models.Rating, r models.Rating) ([]models.Rating, error) {
	if err := r.Validate(); err != nil {
		return table, err
	}
	out := make([]models.Rating, 0, len(table)+1)
	out = append(out, table...)
	out = append(out, r)
	return out, nil
}

// 전체 테이블을 CSV 파일로 저장 (덮어쓰기).
// 같은 디렉토리의 temp 파일에 쓰고 rename, 읽는 쪽이 중간 상태를 보지 않도록.
func (s *Store) Persist(table []models.Rating) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked(table)
}

func (s *Store) persistLocked(table []models.Rating) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "could not create data directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "could not create temp file")
	}
	tmpName := tmp.Name()

	if err := WriteCSV(tmp, table); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "could not sync %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "could not close %s", tmpName)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "could not replace %s", s.path)
	}
	return nil
}

// 제출 경로: 로드 → 추가 → 저장을 뮤텍스 아래서 수행.
// 프로세스 내 동시 제출은 직렬화되지만, 여러 프로세스가 같은 파일을
// 쓰는 경우는 여전히 last-writer-wins (단일 사용자 도구 전제).
func (s *Store) SaveRating(r models.Rating) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.loadLocked()
	if err != nil {
		return 0, err
	}
	table, err = Append(table, r)
	if err != nil {
		return 0, err
	}
	if err := s.persistLocked(table); err != nil {
		return 0, err
	}
	return len(table), nil
}

func (s *Store) loadLocked() ([]models.Rating, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Rating{}, nil
		}
		return nil, errors.Wrapf(err, "could not open %s", s.path)
	}
	defer f.Close()
	return readTable(f)
}

// 테이블을 저장 파일과 동일한 CSV 형태로 직렬화 (다운로드 응답에도 사용)
func WriteCSV(w io.Writer, table []models.Rating) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(models.CSVHeader); err != nil {
		return errors.Wrap(err, "could not write csv header")
	}
	for _, r := range table {
		if err := cw.Write(r.CSVRow()); err != nil {
			return errors.Wrap(err, "could not write csv row")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "could not flush csv")
}

func readTable(r io.Reader) ([]models.Rating, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		// 빈 파일도 빈 테이블로 취급
		return []models.Rating{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not read csv header")
	}
	if len(header) != len(models.CSVHeader) {
		return nil, errors.Errorf("unexpected csv header: %v", header)
	}

	table := []models.Rating{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "could not read csv row")
		}
		rating, err := models.RatingFromCSVRow(row)
		if err != nil {
			return nil, errors.Wrapf(err, "malformed row %v", row)
		}
		table = append(table, rating)
	}
	return table, nil
}
