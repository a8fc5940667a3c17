package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"photo-catalog-server/internal/model"
)

// Columns 数据集 CSV 的表头，顺序不限但必须全部存在
var Columns = []string{
	"id", "width", "height", "url", "photographer", "photographer_url", "photographer_id", "avg_color",
	"src.original", "src.large2x", "src.large", "src.medium", "src.small", "src.portrait", "src.landscape", "src.tiny",
	"alt",
}

// RowError 指出出错的数据行（表头为第 1 行）
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Reader 逐行把 CSV 记录解析为 model.Photo
type Reader struct {
	csv   *csv.Reader
	index map[string]int
	line  int
}

// NewReader 读取并校验表头
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("csv is empty")
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	var missing []string
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("csv header missing columns: %s", strings.Join(missing, ", "))
	}

	return &Reader{csv: cr, index: index, line: 1}, nil
}

// Next 返回下一张图片，读完时返回 io.EOF。
func (r *Reader) Next() (model.Photo, error) {
	record, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return model.Photo{}, io.EOF
		}
		return model.Photo{}, fmt.Errorf("read csv: %w", err)
	}
	r.line++

	photo, err := r.parse(record)
	if err != nil {
		return model.Photo{}, &RowError{Line: r.line, Err: err}
	}
	return photo, nil
}

func (r *Reader) parse(record []string) (model.Photo, error) {
	get := func(col string) string {
		return record[r.index[col]]
	}

	id, err := strconv.ParseUint(strings.TrimSpace(get("id")), 10, 64)
	if err != nil || id == 0 {
		return model.Photo{}, fmt.Errorf("invalid id %q", get("id"))
	}
	width, err := parsePositive(get("width"))
	if err != nil {
		return model.Photo{}, fmt.Errorf("invalid width: %w", err)
	}
	height, err := parsePositive(get("height"))
	if err != nil {
		return model.Photo{}, fmt.Errorf("invalid height: %w", err)
	}
	photographerID, err := strconv.ParseInt(strings.TrimSpace(get("photographer_id")), 10, 64)
	if err != nil {
		return model.Photo{}, fmt.Errorf("invalid photographer_id %q", get("photographer_id"))
	}

	return model.Photo{
		ID:              uint(id),
		Width:           width,
		Height:          height,
		URL:             get("url"),
		Photographer:    get("photographer"),
		PhotographerURL: get("photographer_url"),
		PhotographerID:  photographerID,
		AvgColor:        optional(get("avg_color")),
		SrcOriginal:     get("src.original"),
		SrcLarge2x:      get("src.large2x"),
		SrcLarge:        get("src.large"),
		SrcMedium:       get("src.medium"),
		SrcSmall:        get("src.small"),
		SrcPortrait:     get("src.portrait"),
		SrcLandscape:    get("src.landscape"),
		SrcTiny:         get("src.tiny"),
		Alt:             optional(get("alt")),
	}, nil
}

func parsePositive(raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", raw)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%d must be positive", v)
	}
	return v, nil
}

// optional 空字符串视为 NULL
func optional(raw string) *string {
	if raw == "" {
		return nil
	}
	return &raw
}
