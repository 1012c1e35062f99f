// Package models - model người dùng (User) thuộc domain auth.
// Người bán (seller) cũng là một User; engine thống kê dùng collection này
// làm nguồn tra cứu tên/ảnh người bán.
package models

// User định nghĩa mô hình người dùng
type User struct {
	ID        int64  `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string `json:"name" bson:"name"`
	Email     string `json:"email,omitempty" bson:"email,omitempty"`
	Password  string `json:"-" bson:"password,omitempty"`
	Type      string `json:"type" bson:"type"` // user | seller | admin
	Image     string `json:"image,omitempty" bson:"image,omitempty"`
	IsBlock   bool   `json:"-" bson:"isBlock"`
	CreatedAt string `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
