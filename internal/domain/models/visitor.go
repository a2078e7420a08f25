package models

import "time"

// Visitor represents a gate visitor record
// 生命周期：登记时创建(check_out为空) → 离场时写入一次check_out
type Visitor struct {
	ID       uint       `gorm:"primaryKey" json:"id"`
	Name     string     `gorm:"type:varchar(100);not null" json:"name"`
	Phone    string     `gorm:"type:varchar(20);not null" json:"phone"`
	Email    string     `gorm:"type:varchar(100)" json:"email"`
	Address  string     `gorm:"type:varchar(200)" json:"address"`
	Purpose  string     `gorm:"type:varchar(200)" json:"purpose"`
	CheckIn  time.Time  `gorm:"autoCreateTime" json:"check_in"`
	CheckOut *time.Time `json:"check_out"`
}
