// Package statssvc - Test lấp ngày trống cho báo cáo theo ngày.
package statssvc

import (
	"testing"

	statsdto "open_market/internal/api/statistics/dto"
)

func TestFillDailyGaps_LapNgayTrong(t *testing.T) {
	rows := []statsdto.DailySalesRow{
		{Date: "2024.01.01", TotalQuantity: 2, TotalSales: 10000},
		{Date: "2024.01.03", TotalQuantity: 1, TotalSales: 5000},
	}

	filled, err := fillDailyGaps(rows, "2024.01.01", "2024.01.04")
	if err != nil {
		t.Fatalf("fillDailyGaps trả về lỗi: %v", err)
	}
	if len(filled) != 4 {
		t.Fatalf("khoảng 4 ngày phải có đúng 4 dòng, nhận được %d", len(filled))
	}

	expected := []statsdto.DailySalesRow{
		{Date: "2024.01.01", TotalQuantity: 2, TotalSales: 10000},
		{Date: "2024.01.02", TotalQuantity: 0, TotalSales: 0},
		{Date: "2024.01.03", TotalQuantity: 1, TotalSales: 5000},
		{Date: "2024.01.04", TotalQuantity: 0, TotalSales: 0},
	}
	for i, want := range expected {
		if filled[i] != want {
			t.Errorf("dòng %d: muốn %+v, nhận được %+v", i, want, filled[i])
		}
	}
}

func TestFillDailyGaps_KhongCoDonHang(t *testing.T) {
	filled, err := fillDailyGaps(nil, "2024.03.01", "2024.03.03")
	if err != nil {
		t.Fatalf("fillDailyGaps trả về lỗi: %v", err)
	}
	if len(filled) != 3 {
		t.Fatalf("không có dữ liệu vẫn phải trả về 3 dòng 0, nhận được %d", len(filled))
	}
	for i, row := range filled {
		if row.TotalQuantity != 0 || row.TotalSales != 0 {
			t.Errorf("dòng %d phải là dòng 0, nhận được %+v", i, row)
		}
	}
}

func TestFillDailyGaps_MotNgay(t *testing.T) {
	rows := []statsdto.DailySalesRow{
		{Date: "2024.05.10", TotalQuantity: 3, TotalSales: 9000},
	}
	filled, err := fillDailyGaps(rows, "2024.05.10", "2024.05.10")
	if err != nil {
		t.Fatalf("fillDailyGaps trả về lỗi: %v", err)
	}
	if len(filled) != 1 {
		t.Fatalf("start == finish phải trả về đúng 1 dòng, nhận được %d", len(filled))
	}
	if filled[0] != rows[0] {
		t.Errorf("dòng dữ liệu bị thay đổi: %+v", filled[0])
	}
}

func TestFillDailyGaps_QuaCuoiThangVaCuoiNam(t *testing.T) {
	filled, err := fillDailyGaps(nil, "2023.12.30", "2024.01.02")
	if err != nil {
		t.Fatalf("fillDailyGaps trả về lỗi: %v", err)
	}
	wantDates := []string{"2023.12.30", "2023.12.31", "2024.01.01", "2024.01.02"}
	if len(filled) != len(wantDates) {
		t.Fatalf("muốn %d dòng, nhận được %d", len(wantDates), len(filled))
	}
	for i, want := range wantDates {
		if filled[i].Date != want {
			t.Errorf("dòng %d: muốn ngày %s, nhận được %s", i, want, filled[i].Date)
		}
	}
}

func TestFillDailyGaps_NamNhuan(t *testing.T) {
	filled, err := fillDailyGaps(nil, "2024.02.28", "2024.03.01")
	if err != nil {
		t.Fatalf("fillDailyGaps trả về lỗi: %v", err)
	}
	wantDates := []string{"2024.02.28", "2024.02.29", "2024.03.01"}
	if len(filled) != len(wantDates) {
		t.Fatalf("năm nhuận 2024 phải có 29/02: muốn %d dòng, nhận được %d", len(wantDates), len(filled))
	}
	for i, want := range wantDates {
		if filled[i].Date != want {
			t.Errorf("dòng %d: muốn ngày %s, nhận được %s", i, want, filled[i].Date)
		}
	}
}

func TestFillDailyGaps_ThieuBienThiGiuNguyen(t *testing.T) {
	rows := []statsdto.DailySalesRow{
		{Date: "2024.01.05", TotalQuantity: 1, TotalSales: 1000},
	}
	filled, err := fillDailyGaps(rows, "", "2024.01.10")
	if err != nil {
		t.Fatalf("fillDailyGaps trả về lỗi: %v", err)
	}
	if len(filled) != 1 || filled[0] != rows[0] {
		t.Errorf("thiếu start thì không được lấp ngày, nhận được %+v", filled)
	}
}

func TestFillDailyGaps_NgayKhongHopLe(t *testing.T) {
	if _, err := fillDailyGaps(nil, "2024-01-01", "2024.01.03"); err == nil {
		t.Error("start sai định dạng phải trả về lỗi")
	}
}
