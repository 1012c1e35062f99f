package statssvc

import (
	"time"

	statsdto "open_market/internal/api/statistics/dto"
)

// fillDailyGaps lấp các ngày không có đơn hàng trong khoảng [start, finish]
// bằng dòng 0, để chuỗi trả về có đúng một dòng cho mỗi ngày dương lịch.
// Trục ngày được sinh bằng số học lịch (AddDate) nên đi qua cuối tháng,
// cuối năm và năm nhuận đúng; rows phải đang sắp tăng dần theo ngày (đầu ra
// của pipeline theo-ngày) và chỉ chứa ngày nằm trong khoảng.
// Nếu start hoặc finish rỗng thì trả về rows nguyên trạng.
func fillDailyGaps(rows []statsdto.DailySalesRow, start string, finish string) ([]statsdto.DailySalesRow, error) {
	if start == "" || finish == "" {
		return rows, nil
	}

	startDay, err := time.Parse(statsdto.DateFormat, start)
	if err != nil {
		return nil, err
	}
	finishDay, err := time.Parse(statsdto.DateFormat, finish)
	if err != nil {
		return nil, err
	}

	filled := make([]statsdto.DailySalesRow, 0, len(rows))
	next := 0
	for day := startDay; !day.After(finishDay); day = day.AddDate(0, 0, 1) {
		key := day.Format(statsdto.DateFormat)
		if next < len(rows) && rows[next].Date == key {
			filled = append(filled, rows[next])
			next++
			continue
		}
		filled = append(filled, statsdto.DailySalesRow{Date: key})
	}
	return filled, nil
}
