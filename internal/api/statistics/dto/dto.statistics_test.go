// Package statsdto - Test query params của API thống kê.
package statsdto

import (
	"testing"
	"time"
)

func TestApplyDefaults_MacDinhMotTuan(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	q := OrderStatsQuery{}
	q.ApplyDefaults(now)

	if q.Start != "2024.06.08" {
		t.Errorf("start mặc định phải là 1 tuần trước, nhận được %q", q.Start)
	}
	if q.Finish != "2024.06.15" {
		t.Errorf("finish mặc định phải là hôm nay, nhận được %q", q.Finish)
	}
}

func TestApplyDefaults_KhongGhiDeGiaTriCoSan(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	q := OrderStatsQuery{Start: "2024.01.01", Finish: "2024.02.01"}
	q.ApplyDefaults(now)

	if q.Start != "2024.01.01" || q.Finish != "2024.02.01" {
		t.Errorf("ApplyDefaults không được ghi đè giá trị đã truyền: %+v", q)
	}
}

func TestValidate_KhoangNgayHopLe(t *testing.T) {
	q := OrderStatsQuery{Start: "2024.01.01", Finish: "2024.12.31"}
	if err := q.Validate(); err != nil {
		t.Errorf("khoảng ngày hợp lệ không được trả về lỗi: %v", err)
	}

	q = OrderStatsQuery{Start: "2024.03.05", Finish: "2024.03.05"}
	if err := q.Validate(); err != nil {
		t.Errorf("start == finish phải hợp lệ: %v", err)
	}
}

func TestValidate_StartSauFinish(t *testing.T) {
	q := OrderStatsQuery{Start: "2024.02.01", Finish: "2024.01.01"}
	if err := q.Validate(); err == nil {
		t.Error("start sau finish phải trả về lỗi")
	}
}

func TestValidate_QuaMotNam(t *testing.T) {
	q := OrderStatsQuery{Start: "2023.01.01", Finish: "2024.01.02"}
	if err := q.Validate(); err == nil {
		t.Error("khoảng quá 1 năm phải trả về lỗi")
	}

	// Đúng 1 năm thì vẫn hợp lệ
	q = OrderStatsQuery{Start: "2023.01.01", Finish: "2024.01.01"}
	if err := q.Validate(); err != nil {
		t.Errorf("khoảng đúng 1 năm phải hợp lệ: %v", err)
	}
}

func TestCustomFilter(t *testing.T) {
	q := OrderStatsQuery{Custom: `{"products.seller_id": 3}`}
	filter, err := q.CustomFilter()
	if err != nil {
		t.Fatalf("custom JSON hợp lệ không được trả về lỗi: %v", err)
	}
	if filter["products.seller_id"] != float64(3) {
		t.Errorf("filter parse sai: %+v", filter)
	}

	q = OrderStatsQuery{}
	filter, err = q.CustomFilter()
	if err != nil || filter != nil {
		t.Errorf("custom rỗng phải trả về nil filter, nhận được %+v, %v", filter, err)
	}

	q = OrderStatsQuery{Custom: `{"hỏng`}
	if _, err := q.CustomFilter(); err == nil {
		t.Error("custom không phải JSON phải trả về lỗi")
	}
}
