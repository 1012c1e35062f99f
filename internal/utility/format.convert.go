package utility

import "strconv"

// Int64ToString chuyển id dạng int64 sang chuỗi (dùng làm cache key, log field)
func Int64ToString(value int64) string {
	return strconv.FormatInt(value, 10)
}

// String2Int64 chuyển chuỗi sang int64, trả về 0 nếu chuỗi không hợp lệ
func String2Int64(value string) int64 {
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return parsed
}
